//go:build linux

package inject

import "fmt"

// platformTap posts a key press and release on Linux
// TODO: Implement using uinput or XTest depending on the session type
func platformTap(vk int) error {
	return fmt.Errorf("key injection not yet implemented on Linux")
}

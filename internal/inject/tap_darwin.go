//go:build darwin

package inject

import "fmt"

// platformTap posts a key press and release on macOS
// TODO: Implement using CGEventPost for regular keys and NSEvent
// system-defined events for the media key codes
func platformTap(vk int) error {
	return fmt.Errorf("key injection not yet implemented on macOS")
}

//go:build windows

package launch

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// platformOpen hands the target to the shell with the "open" verb
func platformOpen(target string) error {
	verb, err := windows.UTF16PtrFromString("open")
	if err != nil {
		return fmt.Errorf("failed to encode verb: %w", err)
	}
	file, err := windows.UTF16PtrFromString(target)
	if err != nil {
		return fmt.Errorf("failed to encode target: %w", err)
	}
	if err := windows.ShellExecute(0, verb, file, nil, nil, windows.SW_SHOWNORMAL); err != nil {
		return fmt.Errorf("ShellExecute %q: %w", target, err)
	}
	return nil
}

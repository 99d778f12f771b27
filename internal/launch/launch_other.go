//go:build !windows

package launch

import (
	"fmt"
	"os/exec"
	"runtime"
)

// platformOpen hands the target to the desktop opener
func platformOpen(target string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", target)
	default:
		cmd = exec.Command("xdg-open", target)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %q: %w", target, err)
	}
	go cmd.Wait()
	return nil
}

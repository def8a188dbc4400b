//go:build windows

package platform

import (
	"fmt"
	"os/exec"
	"strings"
)

// Notify raises a toast, showing the saved frame when opts names one.
func Notify(title, body string, opts Options) error {
	script := toastScript(title, body, strings.TrimSpace(opts.IconPath))
	if out, err := exec.Command("powershell.exe", "-NoProfile", "-NonInteractive", "-Command", script).CombinedOutput(); err != nil {
		return fmt.Errorf("powershell toast: %w: %s", err, out)
	}
	return nil
}

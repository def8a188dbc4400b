//go:build darwin

package platform

import (
	"fmt"
	"os/exec"
)

// Notify shows a Notification Center banner through osascript. Icons are not
// supported by AppleScript notifications.
func Notify(title, body string, opts Options) error {
	if out, err := exec.Command("osascript", "-e", appleScript(title, body)).CombinedOutput(); err != nil {
		return fmt.Errorf("osascript: %w: %s", err, out)
	}
	return nil
}

package watcher

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
)

// Notify sends a desktop notification for the alert: osascript on macOS,
// notify-send on Linux. When neither works it writes the alert to stderr.
func Notify(alert Alert) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		script := fmt.Sprintf(`display notification %q with title "closetwatch" subtitle %q`, alert.Message, alert.Title)
		cmd = exec.Command("osascript", "-e", script)
	case "linux":
		if _, err := exec.LookPath("notify-send"); err == nil {
			cmd = exec.Command("notify-send", "closetwatch: "+alert.Title, alert.Message)
		}
	}

	if cmd == nil || cmd.Run() != nil {
		return WriteAlert(os.Stderr, alert)
	}
	return nil
}

// WriteAlert prints the alert as a single line.
func WriteAlert(w io.Writer, alert Alert) error {
	_, err := fmt.Fprintf(w, "[%s] %s: %s\n", alert.Level, alert.Title, alert.Message)
	return err
}

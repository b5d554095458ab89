// Package clipboard writes text to the system clipboard by shelling out to
// whatever utility the platform provides. Copying is a fire-and-forget side
// effect: callers surface failures as a status message and move on.
package clipboard

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// candidate is one clipboard utility worth trying on the current platform.
type candidate struct {
	name string
	args []string
}

// candidates returns the utilities to try, in preference order.
func candidates() []candidate {
	switch runtime.GOOS {
	case "darwin":
		return []candidate{{name: "pbcopy"}}
	case "windows":
		return []candidate{{name: "cmd", args: []string{"/c", "clip"}}}
	case "linux":
		return []candidate{
			{name: "xclip", args: []string{"-selection", "clipboard"}},
			{name: "xsel", args: []string{"--clipboard", "--input"}},
			{name: "wl-copy"},
		}
	default:
		return nil
	}
}

// Copy writes text to the system clipboard, trying each candidate utility
// until one succeeds.
func Copy(text string) error {
	cands := candidates()
	if len(cands) == 0 {
		return fmt.Errorf("clipboard not supported on %s", runtime.GOOS)
	}

	var lastErr error
	for _, c := range cands {
		if !commandAvailable(c.name) {
			continue
		}
		cmd := exec.Command(c.name, c.args...)
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err == nil {
			return nil
		} else {
			lastErr = fmt.Errorf("%s failed: %w", c.name, err)
		}
	}

	if lastErr != nil {
		return lastErr
	}
	return fmt.Errorf("no clipboard utility found (install xclip, xsel or wl-clipboard)")
}

// CopyWithFallback copies text and returns the confirmation message shown in
// the status line.
func CopyWithFallback(text string) (string, error) {
	if err := Copy(text); err != nil {
		return "", fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return "Copied to clipboard!", nil
}

// Available reports whether some clipboard utility exists on this system.
func Available() bool {
	for _, c := range candidates() {
		if commandAvailable(c.name) {
			return true
		}
	}
	return false
}

func commandAvailable(name string) bool {
	// cmd is a shell builtin host on Windows and always present.
	if name == "cmd" {
		return true
	}
	_, err := exec.LookPath(name)
	return err == nil
}

// Package launcher opens generated decks in the platform's default
// browser.
package launcher

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
)

// OpenBrowser opens the given HTML file with the platform opener. The
// opener is detached; its own failures after startup are not reported.
func OpenBrowser(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", abs)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", abs)
	default:
		cmd = exec.Command("xdg-open", abs)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("opening browser: %w", err)
	}
	return nil
}

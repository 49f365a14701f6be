// Package automation is the OS-facing side of the engine: launching
// targets, synthesizing input, and window management. Everything here is
// best-effort; callers treat errors as a failed action, not a failed
// plan.
package automation

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/pkg/browser"

	"vega/internal/logger"
	"vega/internal/resolver"
)

// Desktop implements the dispatcher's collaborator interfaces against the
// local machine.
type Desktop struct{}

func New() *Desktop { return &Desktop{} }

// OpenTarget opens a URL in the default browser, a file or folder with
// its associated application, or launches an application by name. The
// strategies run in order until one starts.
func (d *Desktop) OpenTarget(value string) error {
	if resolver.LooksLikeURL(value) || strings.Contains(value, ":") && !isWindowsPath(value) {
		// Covers http(s) URLs and protocol handlers like ms-clock:.
		if err := browser.OpenURL(value); err == nil {
			return nil
		}
	}

	if _, err := os.Stat(value); err == nil {
		return openPath(value)
	}

	return launchApp(value)
}

func isWindowsPath(s string) bool {
	return len(s) > 2 && s[1] == ':' && (s[2] == '\\' || s[2] == '/')
}

// openPath opens an existing file or folder with the platform opener.
func openPath(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	case "darwin":
		cmd = exec.Command("open", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("could not open %q: %w", path, err)
	}
	return nil
}

// launchApp starts an application by name: PATH lookup first, then the
// platform's own resolution ("start" on Windows, "open -a" on macOS).
func launchApp(name string) error {
	if p, err := exec.LookPath(name); err == nil {
		if err := exec.Command(p).Start(); err == nil {
			return nil
		}
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", name)
	case "darwin":
		cmd = exec.Command("open", "-a", name)
	default:
		cmd = exec.Command(name)
	}
	if err := cmd.Start(); err != nil {
		logger.Log.Printf("[AUTOMATION] launch %q: %v", name, err)
		return fmt.Errorf("could not launch application %q: %w", name, err)
	}
	return nil
}

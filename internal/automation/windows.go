package automation

import (
	"fmt"
	"strings"

	"github.com/go-vgo/robotgo"
)

// SwitchToApp brings a window of the named application to the front.
func (d *Desktop) SwitchToApp(name string) error {
	ids, err := robotgo.FindIds(name)
	if err != nil || len(ids) == 0 {
		return fmt.Errorf("no window found for %q", name)
	}
	if err := robotgo.ActivePid(ids[0]); err != nil {
		return fmt.Errorf("could not focus %q: %w", name, err)
	}
	return nil
}

var browserProcesses = []string{"chrome", "firefox", "brave", "msedge", "edge", "safari"}

// DetectBrowser reports a running browser's context tag, if one is found.
func (d *Desktop) DetectBrowser() (string, bool) {
	for _, proc := range browserProcesses {
		ids, err := robotgo.FindIds(proc)
		if err == nil && len(ids) > 0 {
			return tagFor(proc), true
		}
	}
	// Fall back on the active window title.
	title := strings.ToLower(robotgo.GetTitle())
	for _, proc := range browserProcesses {
		if strings.Contains(title, proc) {
			return tagFor(proc), true
		}
	}
	return "", false
}

func tagFor(proc string) string {
	if proc == "msedge" {
		return "edge"
	}
	return proc
}

package automation

import (
	"fmt"
	"runtime"

	"vega/internal/dispatcher"
)

// SetAlarm opens the platform clock application positioned for a new
// alarm. Full automation of the alarm UI is not reliable across clock app
// versions, so this reports ErrManualSetup once the app is up: the user
// confirms the pre-parsed time by hand.
func (d *Desktop) SetAlarm(hhmm string) error {
	var target string
	switch runtime.GOOS {
	case "windows":
		target = "ms-clock:"
	case "darwin":
		target = "Clock"
	default:
		target = "gnome-clocks"
	}
	if err := d.OpenTarget(target); err != nil {
		return fmt.Errorf("could not open clock app for %s alarm: %w", hhmm, err)
	}
	return dispatcher.ErrManualSetup
}

package automation

import (
	"fmt"
	"strings"

	"github.com/go-vgo/robotgo"
)

// PressKeys presses a canonical key or "+"-joined combination. Key names
// are expected pre-canonicalized (lowercase, robotgo vocabulary).
func (d *Desktop) PressKeys(spec string) error {
	parts := strings.Split(spec, "+")
	key := parts[len(parts)-1]
	mods := make([]interface{}, 0, len(parts)-1)
	for _, m := range parts[:len(parts)-1] {
		mods = append(mods, m)
	}
	if err := robotgo.KeyTap(key, mods...); err != nil {
		return fmt.Errorf("key press %q: %w", spec, err)
	}
	return nil
}

// Click fires a mouse click at the current cursor position.
func (d *Desktop) Click(button string) error {
	switch button {
	case "", "left", "right", "center":
	case "middle":
		button = "center"
	default:
		return fmt.Errorf("unknown mouse button %q", button)
	}
	if button == "" {
		button = "left"
	}
	robotgo.Click(button, false)
	return nil
}

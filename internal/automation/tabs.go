package automation

import (
	"fmt"

	"vega/internal/dispatcher"
)

// BrowserTabAction drives tab navigation with the universal browser
// hotkeys.
func (d *Desktop) BrowserTabAction(kind dispatcher.TabAction) error {
	var spec string
	switch kind {
	case dispatcher.TabNext:
		spec = "ctrl+tab"
	case dispatcher.TabPrevious:
		spec = "ctrl+shift+tab"
	case dispatcher.TabNew:
		spec = "ctrl+t"
	case dispatcher.TabClose:
		spec = "ctrl+w"
	default:
		return fmt.Errorf("unknown tab action %q", kind)
	}
	return d.PressKeys(spec)
}

package automation

import (
	"fmt"
	"runtime"
	"time"

	"github.com/atotto/clipboard"
	"github.com/go-vgo/robotgo"
)

// Short strings are typed keystroke by keystroke; anything longer goes
// through the clipboard, which is both faster and immune to keyboard
// layout surprises.
const typeDirectlyLimit = 16

// TypeOrPaste places text into the focused window.
func (d *Desktop) TypeOrPaste(text string) error {
	if len(text) <= typeDirectlyLimit {
		robotgo.TypeStr(text)
		return nil
	}

	// Preserve whatever the user had on the clipboard.
	previous, prevErr := clipboard.ReadAll()

	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard write: %w", err)
	}
	mod := "ctrl"
	if runtime.GOOS == "darwin" {
		mod = "cmd"
	}
	if err := robotgo.KeyTap("v", mod); err != nil {
		return fmt.Errorf("paste keystroke: %w", err)
	}

	if prevErr == nil {
		// Give the target app time to read the clipboard before
		// restoring; restoring itself is best-effort.
		time.Sleep(300 * time.Millisecond)
		_ = clipboard.WriteAll(previous)
	}
	return nil
}

package parser

import "strings"

// Canonical names for single keys as understood by the key-press
// collaborator. Unlisted keys pass through unchanged (letters, digits).
var keyNames = map[string]string{
	"enter":      "enter",
	"return":     "enter",
	"space":      "space",
	"tab":        "tab",
	"escape":     "esc",
	"esc":        "esc",
	"backspace":  "backspace",
	"delete":     "delete",
	"insert":     "insert",
	"home":       "home",
	"end":        "end",
	"pageup":     "pageup",
	"pagedown":   "pagedown",
	"up":         "up",
	"down":       "down",
	"left":       "left",
	"right":      "right",
	"volumeup":   "audio_vol_up",
	"volumedown": "audio_vol_down",
	"mute":       "audio_mute",
	"f1":         "f1", "f2": "f2", "f3": "f3", "f4": "f4", "f5": "f5",
	"f6": "f6", "f7": "f7", "f8": "f8", "f9": "f9", "f10": "f10",
	"f11": "f11", "f12": "f12",
}

// CanonicalKeys lowercases a key spec and maps each "+"-joined part through
// the canonical name table. "ctrl+C" becomes "ctrl+c", "Return" "enter".
func CanonicalKeys(spec string) string {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(spec)), "+")
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if mapped, ok := keyNames[p]; ok {
			p = mapped
		}
		parts[i] = p
	}
	return strings.Join(parts, "+")
}

// IsKeyCombo reports whether a spec names a modifier combination rather
// than a single key.
func IsKeyCombo(spec string) bool {
	return strings.Contains(spec, "+")
}

package resolver

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Built-in name→target table. A JSON mappings file, when present, is laid
// over these defaults so users can add or override entries without
// rebuilding.
var defaultMappings = map[string]string{
	"instagram":          "https://www.instagram.com/",
	"instagram chats":    "https://www.instagram.com/direct/inbox/",
	"instagram dms":      "https://www.instagram.com/direct/inbox/",
	"instagram messages": "https://www.instagram.com/direct/inbox/",
	"twitter":            "https://twitter.com/",
	"twitter messages":   "https://twitter.com/messages",
	"twitter dms":        "https://twitter.com/messages",
	"gmail":              "https://mail.google.com/",
	"gmail inbox":        "https://mail.google.com/mail/u/0/#inbox",
	"slack":              "https://app.slack.com/",
	"slack dms":          "https://app.slack.com/client",
	"whatsapp":           "https://web.whatsapp.com/",
	"whatsapp chats":     "https://web.whatsapp.com/",
	"youtube":            "https://www.youtube.com/",
	"facebook":           "https://www.facebook.com/",
	"facebook messages":  "https://www.facebook.com/messages/",
	"reddit":             "https://www.reddit.com/",
	"chatgpt":            "https://chatgpt.com/",
	"brave":              `C:\Program Files\BraveSoftware\Brave-Browser\Application\brave.exe`,
	"chrome":             "chrome",
	"firefox":            "firefox",
	"edge":               "msedge",
	"spotify":            "spotify",
	"notepad":            "notepad",
	"calculator":         "calc",
	"explorer":           "explorer",
	"files":              "explorer",
	"terminal":           "cmd",
	"vs code":            "code",
	"code":               "code",
	"alarm":              "ms-clock:",
	"alarms":             "ms-clock:",
	"clock":              "ms-clock:",
}

// Registry is the static name→target mapping consulted by Resolve.
type Registry struct {
	entries   map[string]string
	keysByLen []string // descending length, for substring matching
}

// LoadRegistry builds a registry from the defaults plus an optional JSON
// overrides file (flat object of name→target). A missing file is not an
// error; an unreadable one is.
func LoadRegistry(path string) (*Registry, error) {
	entries := make(map[string]string, len(defaultMappings))
	for k, v := range defaultMappings {
		entries[strings.ToLower(k)] = v
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// defaults only
		case err != nil:
			return nil, fmt.Errorf("could not read app mappings file: %w", err)
		default:
			var overrides map[string]string
			if err := json.Unmarshal(data, &overrides); err != nil {
				return nil, fmt.Errorf("could not parse app mappings JSON: %w", err)
			}
			for k, v := range overrides {
				entries[strings.ToLower(strings.TrimSpace(k))] = v
			}
		}
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	return &Registry{entries: entries, keysByLen: keys}, nil
}

// Lookup returns the mapping value for an exact (case-insensitive) key.
func (r *Registry) Lookup(key string) (string, bool) {
	v, ok := r.entries[strings.ToLower(strings.TrimSpace(key))]
	return v, ok
}

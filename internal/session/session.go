// Package session holds the cross-plan execution context: which
// application surface is currently considered focused, and the last
// concrete target that was opened. The dispatcher is the single writer;
// the target resolver and the SEARCH handler read it.
package session

import (
	"path/filepath"
	"strings"
)

type Context struct {
	// CurrentApp is an open string tag ("chrome", "whatsapp", "youtube",
	// "alarm", or an opened target's basename). Empty means unknown.
	CurrentApp string
	// LastOpened is the last concrete URL, path, or app name opened.
	LastOpened string
}

func New() *Context {
	return &Context{}
}

// RecordOpen notes a successfully opened target, deriving the short app
// tag from it: basename without extension for path-like targets, the
// lowercased string otherwise.
func (c *Context) RecordOpen(target string) {
	c.CurrentApp = ShortName(target)
	c.LastOpened = target
}

// SetApp records an application switch without touching LastOpened.
func (c *Context) SetApp(app string) {
	c.CurrentApp = strings.ToLower(strings.TrimSpace(app))
}

// InBrowser reports whether the current context is a known browser tag.
func (c *Context) InBrowser() bool {
	switch c.CurrentApp {
	case "chrome", "browser", "firefox", "brave", "edge", "safari":
		return true
	}
	return false
}

// ShortName derives the context tag for an opened target.
func ShortName(target string) string {
	t := strings.TrimSpace(target)
	if strings.ContainsAny(t, `\/`) && !strings.Contains(t, "://") {
		t = filepath.Base(strings.ReplaceAll(t, `\`, `/`))
		t = strings.TrimSuffix(t, filepath.Ext(t))
	}
	return strings.ToLower(t)
}

package resolver

import (
	"os"
	"regexp"
	"strings"
)

// TargetKind classifies what a resolved open-target denotes.
type TargetKind string

const (
	KindURL  TargetKind = "url"
	KindApp  TargetKind = "app"
	KindPath TargetKind = "path"
	KindNone TargetKind = "none"
)

// Target is the result of resolving a raw open-target string.
type Target struct {
	Kind  TargetKind
	Value string
}

var (
	driveLetterRe = regexp.MustCompile(`^[A-Za-z]:[\\/]`)
	executableExt = []string{".exe", ".lnk", ".bat", ".cmd", ".msi", ".app"}
)

// LooksLikeURL reports whether a string is URL-shaped: absolute scheme,
// www. prefix, or a dotted-domain-like token without spaces.
func LooksLikeURL(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return true
	}
	if strings.HasPrefix(s, "www.") {
		return true
	}
	if driveLetterRe.MatchString(s) {
		return false
	}
	if i := strings.Index(s, "/"); i > 0 {
		return strings.Contains(s[:i], ".")
	}
	return strings.Contains(s, ".") && !strings.Contains(s, " ")
}

// Classify maps a mapping value (or raw target) to url/app/path. This is
// the single classification rule used everywhere mapping values are
// interpreted.
func Classify(value string) TargetKind {
	v := strings.TrimSpace(value)
	if v == "" {
		return KindNone
	}
	// Executable names ("app.exe") are dotted tokens too, so the path
	// checks come before the URL shape.
	if driveLetterRe.MatchString(v) {
		return KindPath
	}
	lower := strings.ToLower(v)
	for _, ext := range executableExt {
		if strings.HasSuffix(lower, ext) {
			return KindPath
		}
	}
	if LooksLikeURL(v) {
		return KindURL
	}
	if _, err := os.Stat(v); err == nil {
		return KindPath
	}
	return KindApp
}

// Package resolver turns an ambiguous "open X" phrase into a concrete
// URL, application identifier, or filesystem path.
package resolver

import (
	"context"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Disambiguating suffixes appended to the raw target when the user command
// mentions them, so "open twitter messages" can hit the "twitter messages"
// mapping entry ahead of plain "twitter".
var compoundSuffixes = []string{"messages", "inbox", "chats", "dms"}

const fuzzyThreshold = 0.7

// Normalizer is the planner collaborator used as the last-resort
// resolution step. It answers one line: URL:<v>, APP:<v>, PATH:<v>, NONE.
type Normalizer interface {
	NormalizeTarget(ctx context.Context, rawTarget, userCommand string) (string, error)
}

// Resolve disambiguates a raw open-target against the mapping table, the
// user command, the carried-over app context, and (optionally) the
// planner. Strategies are tried in order; the first hit wins. Exhausting
// all of them yields KindNone and the caller falls back to a generic
// best-effort open.
func (r *Registry) Resolve(ctx context.Context, rawTarget, userCommand, contextApp string, planner Normalizer) Target {
	raw := strings.ToLower(strings.TrimSpace(rawTarget))
	command := strings.ToLower(userCommand)

	// 0. Follow-on phrasing: "open chats" right after "open instagram"
	// means the previous app's chats, not a mapping named "chats".
	if contextApp != "" {
		for _, suffix := range compoundSuffixes {
			if raw != suffix {
				continue
			}
			if v, ok := r.Lookup(contextApp + " " + raw); ok {
				return Target{Kind: Classify(v), Value: v}
			}
		}
	}

	// 1. Exact keys, compound candidates first.
	for _, suffix := range compoundSuffixes {
		if !strings.Contains(command, suffix) {
			continue
		}
		if v, ok := r.Lookup(raw + " " + suffix); ok {
			return Target{Kind: Classify(v), Value: v}
		}
	}
	if v, ok := r.Lookup(raw); ok {
		return Target{Kind: Classify(v), Value: v}
	}

	// 2. Substring match, longest keys first so specific entries win.
	for _, key := range r.keysByLen {
		if strings.Contains(raw, key) || strings.Contains(command, key) {
			v := r.entries[key]
			return Target{Kind: Classify(v), Value: v}
		}
	}

	// 3. Fuzzy match for typo tolerance.
	if key, ok := r.fuzzyMatch(raw); ok {
		v := r.entries[key]
		return Target{Kind: Classify(v), Value: v}
	}

	// 4. The raw target may itself already be a URL.
	if LooksLikeURL(raw) {
		return Target{Kind: KindURL, Value: ensureScheme(raw)}
	}

	// 5. One normalization query to the planner.
	if planner != nil {
		if line, err := planner.NormalizeTarget(ctx, rawTarget, userCommand); err == nil {
			if t, ok := parseNormalized(line); ok {
				return t
			}
		}
	}

	return Target{Kind: KindNone}
}

func (r *Registry) fuzzyMatch(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	bestKey, bestScore := "", 0.0
	for _, key := range r.keysByLen {
		score := similarity(raw, key)
		if score > bestScore {
			bestKey, bestScore = key, score
		}
	}
	if bestScore >= fuzzyThreshold {
		return bestKey, true
	}
	return "", false
}

// similarity is a normalized edit-distance score in [0, 1].
func similarity(a, b string) float64 {
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 1
	}
	d := levenshtein.ComputeDistance(a, b)
	return 1 - float64(d)/float64(longest)
}

func ensureScheme(u string) string {
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	return "https://" + u
}

// parseNormalized reads the planner's single-line answer.
func parseNormalized(line string) (Target, bool) {
	line = strings.TrimSpace(line)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = strings.TrimSpace(line[:i])
	}
	upper := strings.ToUpper(line)
	switch {
	case upper == "NONE":
		return Target{Kind: KindNone}, true
	case strings.HasPrefix(upper, "URL:"):
		return Target{Kind: KindURL, Value: strings.TrimSpace(line[4:])}, true
	case strings.HasPrefix(upper, "APP:"):
		return Target{Kind: KindApp, Value: strings.TrimSpace(line[4:])}, true
	case strings.HasPrefix(upper, "PATH:"):
		return Target{Kind: KindPath, Value: strings.TrimSpace(line[5:])}, true
	}
	return Target{}, false
}

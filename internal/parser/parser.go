package parser

import "strings"

const actionMarker = "action:"

// ParsePlan converts raw plan text into an ordered action sequence.
//
// Only lines whose case-insensitive prefix is "ACTION:" produce actions;
// everything else (commentary, blank lines) is ignored. Lines whose kind
// token is not a recognized instruction are silently dropped so that a
// malformed plan degrades to fewer actions rather than an error.
func ParsePlan(text string) []Action {
	var actions []Action
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) < len(actionMarker) || !strings.EqualFold(line[:len(actionMarker)], actionMarker) {
			continue
		}
		rest := strings.TrimSpace(line[len(actionMarker):])
		if rest == "" {
			continue
		}
		name, param := rest, ""
		if idx := strings.IndexAny(rest, " \t"); idx >= 0 {
			name, param = rest[:idx], strings.TrimSpace(rest[idx+1:])
		}
		kind, ok := knownKinds[strings.ToUpper(name)]
		if !ok {
			continue
		}
		actions = append(actions, Action{Kind: kind, Param: param, Line: i})
	}
	return actions
}

// TrimQuotes strips one layer of surrounding single or double quotes, the
// way planner output tends to quote parameters.
func TrimQuotes(s string) string {
	return strings.Trim(s, `"'`)
}

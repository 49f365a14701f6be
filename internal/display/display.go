package display

import (
	"fmt"
	"strings"

	"vega/internal/audit"
	"vega/internal/parser"
)

const maxParamValueLength = 100

func FormatPlan(actions []parser.Action) string {
	var sb strings.Builder
	sb.WriteString("Parsed action plan:\n")
	sb.WriteString("--------------------------------------------------\n")

	for i, action := range actions {
		sb.WriteString(fmt.Sprintf("%2d. %s", i+1, action.Kind))
		if action.Param != "" {
			sb.WriteString(" " + formatValueForDisplay(action.Param))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("--------------------------------------------------")
	return sb.String()
}

func FormatOutcome(rec *audit.ExecutionRecord) string {
	if rec == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run %s:\n", rec.ID))
	for _, a := range rec.Actions {
		sb.WriteString(fmt.Sprintf("  - %s: %s", a.Action, a.Result))
		if a.Reason != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", formatValueForDisplay(a.Reason)))
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatValueForDisplay(value any) string {
	s := fmt.Sprintf("%v", value)
	s = strings.ReplaceAll(s, "\n", "\\n")

	if len(s) > maxParamValueLength {
		return s[:maxParamValueLength] + "..."
	}
	return s
}

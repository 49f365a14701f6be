package display

import (
	"strings"
	"testing"

	"vega/internal/audit"
	"vega/internal/parser"
)

func TestFormatPlan(t *testing.T) {
	actions := []parser.Action{
		{Kind: parser.KindOpen, Param: "spotify"},
		{Kind: parser.KindPress, Param: "space"},
		{Kind: parser.KindNewTab},
	}

	resultString := FormatPlan(actions)

	if !strings.Contains(resultString, "Parsed action plan") {
		t.Errorf("The plan output is missing the main header.")
	}
	if !strings.Contains(resultString, "1. OPEN spotify") {
		t.Errorf("The plan output is missing the first action.")
	}
	if !strings.Contains(resultString, "2. PRESS space") {
		t.Errorf("The plan output is missing the second action.")
	}
	if !strings.Contains(resultString, "3. NEW_TAB") {
		t.Errorf("The plan output is missing the parameterless action.")
	}
}

func TestFormatPlan_WithLongParam(t *testing.T) {
	longText := strings.Repeat("a", 200)
	actions := []parser.Action{
		{Kind: parser.KindType, Param: longText},
	}

	resultString := FormatPlan(actions)

	if !strings.Contains(resultString, "...") {
		t.Errorf("Expected long param to be truncated with '...', but it wasn't.")
	}
	if strings.Contains(resultString, longText) {
		t.Errorf("Expected long param to be truncated, but the full string was found.")
	}
}

func TestFormatOutcome(t *testing.T) {
	rec := &audit.ExecutionRecord{
		ID: "ab12cd34",
		Actions: []audit.ActionOutcome{
			{Action: "OPEN", Result: "opened_url"},
			{Action: "PRESS", Result: "failed", Reason: "no keyboard"},
		},
	}

	out := FormatOutcome(rec)

	if !strings.Contains(out, "Run ab12cd34") {
		t.Errorf("The outcome output is missing the run ID.")
	}
	if !strings.Contains(out, "OPEN: opened_url") {
		t.Errorf("The outcome output is missing the successful action.")
	}
	if !strings.Contains(out, "PRESS: failed (no keyboard)") {
		t.Errorf("The outcome output is missing the failure reason.")
	}
}

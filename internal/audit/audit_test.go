package audit

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestAppendWritesOneJSONLinePerRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "action_log.jsonl")
	w := NewWriter(path)

	records := []*ExecutionRecord{
		{
			ID:          "a1b2c3d4",
			Timestamp:   time.Now(),
			UserCommand: "open my instagram chats",
			PlanText:    "ACTION: OPEN instagram",
			Actions: []ActionOutcome{
				{Action: "OPEN", Params: map[string]any{"target": "https://www.instagram.com/direct/inbox/"}, Result: "opened_url"},
			},
		},
		{
			ID:          "e5f6a7b8",
			Timestamp:   time.Now(),
			UserCommand: "play song",
			PlanText:    "ACTION: OPEN spotify\nACTION: PRESS space",
			Actions: []ActionOutcome{
				{Action: "OPEN", Params: map[string]any{"target": "spotify"}, Result: "opened_local"},
				{Action: "PAUSE", Result: "injected", Reason: "startup_delay"},
				{Action: "PRESS", Params: map[string]any{"keys": "space"}, Result: "pressed"},
			},
		},
	}
	for _, rec := range records {
		if err := w.Append(rec); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()

	var lines int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec ExecutionRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", lines+1, err)
		}
		if rec.UserCommand != records[lines].UserCommand {
			t.Errorf("line %d user_command = %q, want %q", lines+1, rec.UserCommand, records[lines].UserCommand)
		}
		lines++
	}
	if lines != len(records) {
		t.Fatalf("log has %d lines, want %d", lines, len(records))
	}
}

func TestAppendFailureIsAnError(t *testing.T) {
	w := NewWriter(filepath.Join(t.TempDir(), "missing-dir", "log.jsonl"))
	if err := w.Append(&ExecutionRecord{ID: "x"}); err == nil {
		t.Fatal("expected an error appending under a missing directory")
	}
}

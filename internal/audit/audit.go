// Package audit persists one JSON record per executed plan to a
// line-delimited log file. The log is best-effort telemetry: a failed
// append is reported and otherwise ignored, never rolled back into the
// already-performed actions.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// ActionOutcome is one per-action entry in an execution record.
type ActionOutcome struct {
	Action string         `json:"action"`
	Params map[string]any `json:"params,omitempty"`
	Result string         `json:"result"`
	Reason string         `json:"reason,omitempty"`
}

// ExecutionRecord is the audit entry for one plan execution. Append-only;
// never mutated after being written.
type ExecutionRecord struct {
	ID          string          `json:"id"`
	Timestamp   time.Time       `json:"timestamp"`
	UserCommand string          `json:"user_command"`
	PlanText    string          `json:"plan_text"`
	Actions     []ActionOutcome `json:"actions"`
}

type Writer struct {
	path string
	mu   sync.Mutex
}

func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Append writes the record as one JSON line.
func (w *Writer) Append(rec *ExecutionRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("could not marshal execution record: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("could not open action log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("could not write action log: %w", err)
	}
	return nil
}

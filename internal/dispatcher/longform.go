package dispatcher

import (
	"context"
	"time"

	"github.com/google/uuid"

	"vega/internal/audit"
	"vega/internal/content"
	"vega/internal/logger"
)

// runLongForm handles the direct "write/type" commands that bypass plan
// generation entirely: the text is produced in one planner call and
// pasted into the focused window. Returns handled=false when the command
// is not a long-form request, in which case the normal plan path runs.
func (d *Dispatcher) runLongForm(ctx context.Context, userCommand string) (*Result, bool) {
	req, ok := content.Match(userCommand)
	if !ok {
		return nil, false
	}
	if d.planner == nil || d.collab.Typist == nil {
		return nil, false
	}

	res := &Result{
		Record: &audit.ExecutionRecord{
			ID:          uuid.New().String()[:8],
			Timestamp:   time.Now(),
			UserCommand: userCommand,
			PlanText:    "",
		},
	}

	if req.OpenEditor && d.collab.Opener != nil {
		if err := d.collab.Opener.OpenTarget("notepad"); err != nil {
			logger.Log.Printf("[LONGFORM] editor open failed: %v", err)
			d.record(res, "OPEN", map[string]any{"target": "notepad"}, "failed", err.Error())
		} else {
			d.sess.RecordOpen("notepad")
			res.Executed++
			d.record(res, "OPEN", map[string]any{"target": "notepad"}, "opened_local", "")
			d.sleep(d.startupDelay)
			d.record(res, "PAUSE", map[string]any{"seconds": d.startupDelay.Seconds()}, "injected", "startup_delay")
		}
	}

	text, err := d.planner.GenerateLongForm(ctx, content.BuildPrompt(req))
	if err != nil {
		d.record(res, "LONGFORM", map[string]any{"topic": req.Topic}, "failed", err.Error())
		d.finish(res)
		return res, true
	}
	if req.Kind == content.KindCodePure {
		text = content.SanitizeCode(text)
	}

	if err := d.collab.Typist.TypeOrPaste(text); err != nil {
		d.record(res, "LONGFORM", map[string]any{"topic": req.Topic}, "failed", err.Error())
		d.finish(res)
		return res, true
	}
	res.Executed++
	d.record(res, "LONGFORM", map[string]any{"topic": req.Topic, "chars": len(text)}, "pasted", "")
	d.finish(res)
	return res, true
}

func (d *Dispatcher) finish(res *Result) {
	if res.Executed > 0 {
		d.writeAudit(res.Record)
	}
}

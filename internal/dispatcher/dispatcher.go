// Package dispatcher executes parsed action plans against the OS
// automation collaborators. Actions run strictly in order on the calling
// goroutine; failure is per-action, never whole-plan-fatal.
package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"vega/internal/audit"
	"vega/internal/logger"
	"vega/internal/parser"
	"vega/internal/resolver"
	"vega/internal/session"
)

const (
	defaultStartupDelay    = 1200 * time.Millisecond
	defaultPostToggleDelay = 600 * time.Millisecond
	defaultPageLoadWait    = 3 * time.Second
)

type Options struct {
	Collaborators Collaborators
	Session       *session.Context
	Registry      *resolver.Registry
	Planner       Planner       // optional
	Audit         *audit.Writer // optional
	// StartupDelay is injected between opening a media player and the
	// immediately following play/pause press. Zero means the default.
	StartupDelay time.Duration
	// PostToggleDelay is injected after a play/pause press when the next
	// action would disturb the player. Zero means the default.
	PostToggleDelay time.Duration
	// Sleep, when set, replaces time.Sleep (tests).
	Sleep func(time.Duration)
}

type Dispatcher struct {
	collab          Collaborators
	sess            *session.Context
	reg             *resolver.Registry
	planner         Planner
	auditor         *audit.Writer
	startupDelay    time.Duration
	postToggleDelay time.Duration
	sleep           func(time.Duration)
}

// Result is what crosses the engine boundary: how many actions executed,
// and whether the plan's outcome is actively-playing media (which
// suppresses the spoken confirmation).
type Result struct {
	Executed int
	Playing  bool
	Record   *audit.ExecutionRecord
}

// Succeeded reports overall success: any nonzero count of executed
// actions, even when some failed.
func (r *Result) Succeeded() bool { return r != nil && r.Executed > 0 }

func New(opts Options) *Dispatcher {
	d := &Dispatcher{
		collab:          opts.Collaborators,
		sess:            opts.Session,
		reg:             opts.Registry,
		planner:         opts.Planner,
		auditor:         opts.Audit,
		startupDelay:    opts.StartupDelay,
		postToggleDelay: opts.PostToggleDelay,
		sleep:           opts.Sleep,
	}
	if d.sess == nil {
		d.sess = session.New()
	}
	if d.reg == nil {
		d.reg, _ = resolver.LoadRegistry("")
	}
	if d.startupDelay == 0 {
		d.startupDelay = defaultStartupDelay
	}
	if d.postToggleDelay == 0 {
		d.postToggleDelay = defaultPostToggleDelay
	}
	if d.sleep == nil {
		d.sleep = time.Sleep
	}
	return d
}

// Session exposes the carried-over context for callers that persist it
// across commands.
func (d *Dispatcher) Session() *session.Context { return d.sess }

// Execute handles one user command end to end: the long-form shortcuts
// first, otherwise plan generation followed by dispatch. It never returns
// an error for individual action failures; the error covers only the
// inability to produce any plan at all.
func (d *Dispatcher) Execute(ctx context.Context, userCommand string) (*Result, error) {
	if res, handled := d.runLongForm(ctx, userCommand); handled {
		return res, nil
	}
	if d.planner == nil {
		return nil, errors.New("no planner available")
	}
	planText, err := d.planner.GeneratePlanText(ctx, userCommand)
	if err != nil {
		return nil, fmt.Errorf("plan generation failed: %w", err)
	}
	return d.Run(ctx, userCommand, planText), nil
}

// Run dispatches an already-generated plan. The loop is index-based
// because the delay and elision heuristics need to look at (and skip)
// neighboring actions.
func (d *Dispatcher) Run(ctx context.Context, userCommand, planText string) *Result {
	actions := parser.ParsePlan(planText)
	res := &Result{
		Record: &audit.ExecutionRecord{
			ID:          uuid.New().String()[:8],
			Timestamp:   time.Now(),
			UserCommand: userCommand,
			PlanText:    planText,
		},
	}

	i := 0
	for i < len(actions) {
		act := actions[i]
		var next *parser.Action
		if i+1 < len(actions) {
			next = &actions[i+1]
		}

		skip := d.dispatchOne(ctx, actions, i, userCommand, res)

		if skip == 0 {
			if pause := postTogglePause(act, next, d.postToggleDelay); pause > 0 {
				d.sleep(pause)
				d.record(res, "PAUSE", map[string]any{"seconds": pause.Seconds()}, "injected", "post_toggle_delay")
			}
		}

		i += 1 + skip
	}

	d.finish(res)
	return res
}

// dispatchOne executes the action at index i, records its outcome, and
// returns how many following actions to skip (nonzero only after a direct
// play). Collaborator failures are caught and logged here; nothing
// propagates.
func (d *Dispatcher) dispatchOne(ctx context.Context, actions []parser.Action, i int, userCommand string, res *Result) int {
	act := actions[i]
	var next *parser.Action
	if i+1 < len(actions) {
		next = &actions[i+1]
	}
	param := parser.TrimQuotes(act.Param)

	switch act.Kind {
	case parser.KindOpen:
		d.handleOpen(ctx, param, userCommand, next, res)
	case parser.KindSearch:
		if wantsVideo(param, userCommand) && d.collab.Video != nil {
			if d.handleYoutube(param, res) {
				return d.elide(actions, i, res)
			}
			return 0
		}
		d.handleSearch(param, res)
	case parser.KindType:
		d.handleSimple(res, "TYPE", map[string]any{"text": truncate(param, 200)}, d.collab.Typist == nil, func() error {
			return d.collab.Typist.TypeOrPaste(param)
		}, "typed")
	case parser.KindPress:
		d.handlePress(param, res)
	case parser.KindClick:
		button := strings.ToLower(param)
		if button == "" {
			button = "left"
		}
		d.handleSimple(res, "CLICK", map[string]any{"button": button}, d.collab.Mouse == nil, func() error {
			return d.collab.Mouse.Click(button)
		}, "clicked")
	case parser.KindSwitch:
		d.handleSimple(res, "SWITCH", map[string]any{"app": param}, d.collab.Windows == nil, func() error {
			if err := d.collab.Windows.SwitchToApp(param); err != nil {
				return err
			}
			d.sess.SetApp(param)
			return nil
		}, "switched")
	case parser.KindNextTab, parser.KindPrevTab, parser.KindNewTab, parser.KindCloseTab:
		d.handleTab(act.Kind, res)
	case parser.KindSetAlarm:
		d.handleSetAlarm(param, res)
	case parser.KindYoutubePlay:
		if d.handleYoutube(param, res) {
			return d.elide(actions, i, res)
		}
	case parser.KindSleep:
		d.handleSleep(param, res)
	case parser.KindWaitForPage:
		d.sleep(defaultPageLoadWait)
		res.Executed++
		d.record(res, "WAIT_FOR_PAGE", nil, "waited", "")
	}
	return 0
}

func (d *Dispatcher) handleOpen(ctx context.Context, rawTarget, userCommand string, next *parser.Action, res *Result) {
	if d.collab.Opener == nil {
		d.record(res, "OPEN", map[string]any{"target": rawTarget}, "unavailable", "")
		return
	}

	target := d.reg.Resolve(ctx, rawTarget, userCommand, d.sess.CurrentApp, d.planner)
	value := target.Value
	resultTag := ""
	switch target.Kind {
	case resolver.KindURL:
		resultTag = "opened_url"
	case resolver.KindPath, resolver.KindApp:
		resultTag = "opened_local"
	default:
		// ResolutionMiss: generic best-effort open of the raw target.
		value = rawTarget
		resultTag = "opened_fallback"
	}

	if err := d.collab.Opener.OpenTarget(value); err != nil {
		logger.Log.Printf("[OPEN] %s: %v", value, err)
		d.record(res, "OPEN", map[string]any{"target": value}, "failed", err.Error())
		return
	}

	if target.Kind == resolver.KindURL {
		d.sess.SetApp("chrome")
		d.sess.LastOpened = value
	} else {
		d.sess.RecordOpen(value)
	}
	res.Executed++
	d.record(res, "OPEN", map[string]any{"target": value}, resultTag, "")

	if pause := startupPause(value, next, d.startupDelay); pause > 0 {
		d.sleep(pause)
		d.record(res, "PAUSE", map[string]any{"seconds": pause.Seconds()}, "injected", "startup_delay")
	}
}

// handleSearch performs a web search in the current browser, opening one
// if the context has none. (Video-intent queries are redirected to the
// YouTube path before this is reached.)
func (d *Dispatcher) handleSearch(query string, res *Result) {
	if d.collab.Opener == nil {
		d.record(res, "SEARCH", map[string]any{"query": query}, "unavailable", "")
		return
	}

	if !d.sess.InBrowser() {
		if d.collab.Browser != nil {
			if tag, ok := d.collab.Browser.DetectBrowser(); ok {
				d.sess.SetApp(tag)
			}
		}
		if !d.sess.InBrowser() {
			if err := d.collab.Opener.OpenTarget("about:blank"); err == nil {
				d.sess.SetApp("chrome")
			}
		}
	}

	searchURL := "https://www.google.com/search?q=" + url.QueryEscape(query)
	if err := d.collab.Opener.OpenTarget(searchURL); err != nil {
		d.record(res, "SEARCH", map[string]any{"query": query}, "failed", err.Error())
		return
	}
	// Keep the detected browser tag; "chrome" is only the fallback.
	if !d.sess.InBrowser() {
		d.sess.SetApp("chrome")
	}
	res.Executed++
	d.record(res, "SEARCH", map[string]any{"query": query}, "opened_search", "")
}

func (d *Dispatcher) handlePress(spec string, res *Result) {
	keys := parser.CanonicalKeys(spec)
	if d.collab.Keys == nil {
		d.record(res, "PRESS", map[string]any{"keys": keys}, "unavailable", "")
		return
	}
	if err := d.collab.Keys.PressKeys(keys); err != nil {
		d.record(res, "PRESS", map[string]any{"keys": keys}, "failed", err.Error())
		return
	}
	res.Executed++
	tag := "pressed"
	if parser.IsKeyCombo(keys) {
		tag = "hotkey_executed"
	}
	d.record(res, "PRESS", map[string]any{"keys": keys}, tag, "")
}

func (d *Dispatcher) handleTab(kind parser.Kind, res *Result) {
	var op TabAction
	switch kind {
	case parser.KindNextTab:
		op = TabNext
	case parser.KindPrevTab:
		op = TabPrevious
	case parser.KindNewTab:
		op = TabNew
	case parser.KindCloseTab:
		op = TabClose
	}
	name := string(kind)
	if d.collab.Tabs == nil {
		d.record(res, name, nil, "unavailable", "")
		return
	}
	if err := d.collab.Tabs.BrowserTabAction(op); err != nil {
		d.record(res, name, nil, "failed", err.Error())
		return
	}
	res.Executed++
	d.record(res, name, nil, "done", "")
}

func (d *Dispatcher) handleSetAlarm(raw string, res *Result) {
	hhmm, ok := parser.ParseClockTime(raw)
	if !ok {
		// Unparsable time: still open the clock app so the user can
		// finish by hand.
		d.record(res, "SET_ALARM", map[string]any{"time_raw": raw}, "failed_parse", "")
		if d.collab.Opener != nil {
			if err := d.collab.Opener.OpenTarget("ms-clock:"); err == nil {
				d.sess.SetApp("alarm")
				res.Executed++
				d.record(res, "OPEN", map[string]any{"target": "ms-clock:"}, "opened_for_manual", "")
			}
		}
		return
	}

	if d.collab.Alarm == nil {
		d.record(res, "SET_ALARM", map[string]any{"time": hhmm}, "unavailable", "")
		return
	}
	err := d.collab.Alarm.SetAlarm(hhmm)
	switch {
	case err == nil:
		d.sess.SetApp("alarm")
		res.Executed++
		d.record(res, "SET_ALARM", map[string]any{"time": hhmm}, "ok", "")
	case errors.Is(err, ErrManualSetup):
		d.sess.SetApp("alarm")
		res.Executed++
		d.record(res, "SET_ALARM", map[string]any{"time": hhmm}, "partial", err.Error())
	default:
		d.record(res, "SET_ALARM", map[string]any{"time": hhmm}, "failed", err.Error())
	}
}

// handleYoutube reports whether playback started directly (triggering
// elision of the follow-up steps).
func (d *Dispatcher) handleYoutube(query string, res *Result) bool {
	if d.collab.Video == nil {
		d.record(res, "YOUTUBE_PLAY", map[string]any{"query": query}, "unavailable", "")
		return false
	}
	status, err := d.collab.Video.PlayYoutube(query)
	if err != nil || status == PlayStatusFailed {
		reason := ""
		if err != nil {
			reason = err.Error()
		}
		d.record(res, "YOUTUBE_PLAY", map[string]any{"query": query}, "failed", reason)
		return false
	}

	d.sess.SetApp("youtube")
	res.Executed++
	d.record(res, "YOUTUBE_PLAY", map[string]any{"query": query}, string(status), "")
	if status == PlayStatusPlaying {
		res.Playing = true
		return true
	}
	return false
}

// elide records and skips the redundant follow-up actions after a direct
// play.
func (d *Dispatcher) elide(actions []parser.Action, i int, res *Result) int {
	span := elisionSpan(actions, i)
	for j := i + 1; j <= i+span; j++ {
		d.record(res, string(actions[j].Kind), map[string]any{"param": actions[j].Param}, "skipped_redundant", "direct_playback")
	}
	return span
}

func (d *Dispatcher) handleSleep(param string, res *Result) {
	seconds := 1.0
	if strings.TrimSpace(param) != "" {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(param), 64)
		if err != nil {
			d.record(res, "SLEEP", map[string]any{"seconds_raw": param}, "failed_parse", "")
			return
		}
		seconds = parsed
	}
	if seconds < 0 {
		seconds = 0
	}
	d.sleep(time.Duration(seconds * float64(time.Second)))
	res.Executed++
	d.record(res, "SLEEP", map[string]any{"seconds": seconds}, "slept", "")
}

func (d *Dispatcher) handleSimple(res *Result, name string, params map[string]any, unavailable bool, fn func() error, okTag string) {
	if unavailable {
		d.record(res, name, params, "unavailable", "")
		return
	}
	if err := fn(); err != nil {
		d.record(res, name, params, "failed", err.Error())
		return
	}
	res.Executed++
	d.record(res, name, params, okTag, "")
}

func (d *Dispatcher) record(res *Result, action string, params map[string]any, result, reason string) {
	res.Record.Actions = append(res.Record.Actions, audit.ActionOutcome{
		Action: action,
		Params: params,
		Result: result,
		Reason: reason,
	})
}

func (d *Dispatcher) writeAudit(rec *audit.ExecutionRecord) {
	if d.auditor == nil {
		return
	}
	if err := d.auditor.Append(rec); err != nil {
		logger.Log.Printf("[AUDIT] could not write action log: %v", err)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

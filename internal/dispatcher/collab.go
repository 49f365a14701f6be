package dispatcher

import (
	"context"
	"errors"
)

// ErrManualSetup is returned by an AlarmSetter that opened the alarm app
// but could not automate the alarm itself; the action still counts as a
// partial success.
var ErrManualSetup = errors.New("alarm app opened for manual setup")

// Narrow capability interfaces over the OS-automation collaborators. Each
// is independently optional: a nil field in Collaborators means the
// capability is unavailable on this platform, and actions needing it are
// logged as unavailable rather than failing the plan.

type TargetOpener interface {
	// OpenTarget opens a URL, file, folder, or application by best-effort
	// resolution: browser launch, filesystem check, PATH lookup, then an
	// OS "start"-style fallback.
	OpenTarget(value string) error
}

type KeyPresser interface {
	// PressKeys presses a canonical single key or a "+"-joined combination.
	PressKeys(spec string) error
}

type Clicker interface {
	Click(button string) error
}

type Typist interface {
	// TypeOrPaste places text into the focused window, preferring a
	// clipboard paste for anything beyond a few characters.
	TypeOrPaste(text string) error
}

type WindowSwitcher interface {
	SwitchToApp(name string) error
}

// TabAction names a browser tab operation.
type TabAction string

const (
	TabNext     TabAction = "next"
	TabPrevious TabAction = "previous"
	TabNew      TabAction = "new"
	TabClose    TabAction = "close"
)

type TabNavigator interface {
	BrowserTabAction(kind TabAction) error
}

type AlarmSetter interface {
	// SetAlarm creates an alarm at the given 24-hour HH:MM. May return
	// ErrManualSetup when it could only open the alarm app.
	SetAlarm(hhmm string) error
}

// PlayStatus is the three-way result of a YouTube play attempt. The
// dispatcher's elision behavior depends on distinguishing "actually
// playing" from "only opened a results page".
type PlayStatus string

const (
	PlayStatusPlaying      PlayStatus = "playing"
	PlayStatusSearchOpened PlayStatus = "search_opened"
	PlayStatusFailed       PlayStatus = "failed"
)

type VideoPlayer interface {
	PlayYoutube(query string) (PlayStatus, error)
}

type BrowserDetector interface {
	// DetectBrowser reports an open browser's context tag, if any.
	DetectBrowser() (string, bool)
}

// Planner is the opaque text-producing collaborator.
type Planner interface {
	GeneratePlanText(ctx context.Context, userCommand string) (string, error)
	GenerateLongForm(ctx context.Context, prompt string) (string, error)
	NormalizeTarget(ctx context.Context, rawTarget, userCommand string) (string, error)
}

// Collaborators bundles the capabilities handed to the dispatcher. Any
// field may be nil.
type Collaborators struct {
	Opener  TargetOpener
	Keys    KeyPresser
	Mouse   Clicker
	Typist  Typist
	Windows WindowSwitcher
	Tabs    TabNavigator
	Alarm   AlarmSetter
	Video   VideoPlayer
	Browser BrowserDetector
}

package dispatcher

import (
	"strings"
	"time"

	"vega/internal/parser"
)

// Pure lookahead heuristics over the plan cursor. Keeping these free of
// OS side effects lets the skip/delay rules be tested on their own.

var mediaPlayerNames = []string{"spotify", "vlc", "wmplayer", "itunes", "musicbee", "winamp", "foobar"}

func isMediaPlayerTarget(target string) bool {
	t := strings.ToLower(target)
	for _, name := range mediaPlayerNames {
		if strings.Contains(t, name) {
			return true
		}
	}
	return false
}

// isPlayPauseKey matches the canonical play/pause toggle.
func isPlayPauseKey(spec string) bool {
	k := parser.CanonicalKeys(spec)
	return k == "space" || k == "audio_play" || k == "playpause"
}

func isBackgroundHotkey(spec string) bool {
	switch parser.CanonicalKeys(spec) {
	case "alt+tab", "alt+f9", "cmd+tab", "super+d", "win+d":
		return true
	}
	return false
}

// startupPause returns the pause to inject after opening target when the
// very next action presses the play/pause key: the player needs time to
// finish launching before the toggle lands.
func startupPause(target string, next *parser.Action, d time.Duration) time.Duration {
	if next == nil || !isMediaPlayerTarget(target) {
		return 0
	}
	if next.Kind == parser.KindPress && isPlayPauseKey(next.Param) {
		return d
	}
	return 0
}

// postTogglePause returns the pause to inject after a play/pause press
// when the following action would immediately steal focus or fire more
// input (window switch, another press, an open, or a backgrounding
// hotkey).
func postTogglePause(current parser.Action, next *parser.Action, d time.Duration) time.Duration {
	if next == nil || current.Kind != parser.KindPress || !isPlayPauseKey(current.Param) {
		return 0
	}
	switch next.Kind {
	case parser.KindSwitch, parser.KindPress, parser.KindOpen:
		return d
	}
	return 0
}

// elidable reports whether an action is redundant once direct playback
// has already started. Plans written for the "open a results page and
// click a result" path carry SLEEP/PRESS/CLICK/WAIT_FOR_PAGE steps that
// are unnecessary, and sometimes harmful, after a direct play. A PRESS
// that backgrounds the window is the one exception: that is an explicit
// user intent, not results-page navigation.
func elidable(act parser.Action) bool {
	switch act.Kind {
	case parser.KindSleep, parser.KindClick, parser.KindWaitForPage:
		return true
	case parser.KindPress:
		return !isBackgroundHotkey(act.Param)
	}
	return false
}

// elisionSpan counts how many actions after index i should be skipped
// following a direct-play result.
func elisionSpan(actions []parser.Action, i int) int {
	n := 0
	for j := i + 1; j < len(actions) && elidable(actions[j]); j++ {
		n++
	}
	return n
}

var videoIntentWords = []string{"watch", "video", "play a video", "youtube"}

// wantsVideo reports whether a search query or its originating command is
// really asking for video playback, in which case a generic web search
// would only land on a results page needing clicks this engine does not
// reliably control.
func wantsVideo(query, userCommand string) bool {
	q := strings.ToLower(query + " " + userCommand)
	for _, w := range videoIntentWords {
		if strings.Contains(q, w) {
			return true
		}
	}
	return false
}

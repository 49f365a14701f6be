package parser

// Kind identifies one instruction type in a plan.
type Kind string

const (
	KindOpen        Kind = "OPEN"
	KindSearch      Kind = "SEARCH"
	KindType        Kind = "TYPE"
	KindPress       Kind = "PRESS"
	KindClick       Kind = "CLICK"
	KindSwitch      Kind = "SWITCH"
	KindNextTab     Kind = "NEXT_TAB"
	KindPrevTab     Kind = "PREV_TAB"
	KindNewTab      Kind = "NEW_TAB"
	KindCloseTab    Kind = "CLOSE_TAB"
	KindSetAlarm    Kind = "SET_ALARM"
	KindYoutubePlay Kind = "YOUTUBE_PLAY"
	KindSleep       Kind = "SLEEP"
	KindWaitForPage Kind = "WAIT_FOR_PAGE"
)

var knownKinds = map[string]Kind{
	"OPEN":          KindOpen,
	"SEARCH":        KindSearch,
	"TYPE":          KindType,
	"PRESS":         KindPress,
	"CLICK":         KindClick,
	"SWITCH":        KindSwitch,
	"NEXT_TAB":      KindNextTab,
	"PREV_TAB":      KindPrevTab,
	"NEW_TAB":       KindNewTab,
	"CLOSE_TAB":     KindCloseTab,
	"SET_ALARM":     KindSetAlarm,
	"YOUTUBE_PLAY":  KindYoutubePlay,
	"SLEEP":         KindSleep,
	"WAIT_FOR_PAGE": KindWaitForPage,
}

// Action is one parsed plan instruction. Immutable once parsed.
type Action struct {
	Kind  Kind
	Param string
	// Line is the action's position in the original plan text, used by the
	// dispatcher's lookahead heuristics.
	Line int
}

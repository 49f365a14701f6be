package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var clockLayouts = []string{"15:04", "3:04 PM", "3 PM", "1504", "3:04PM", "3PM"}

// Anchored so that "730 pm" backtracks into hour 7 + minutes 30 instead
// of greedily consuming "73" as the hour and failing.
var looseClockRe = regexp.MustCompile(`^(\d{1,2})(?:[:.]?(\d{2}))?\s*(am|pm)?$`)

// ParseClockTime normalizes a human time string ("19:00", "7 pm", "0730",
// "7:30PM") to 24-hour HH:MM. The second return is false when nothing
// time-like could be extracted.
func ParseClockTime(s string) (string, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.NewReplacer(".", "", "\t", " ").Replace(s)
	s = regexp.MustCompile(`\b(at|for)\b`).ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	upper := strings.ToUpper(s)
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, upper); err == nil {
			return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()), true
		}
	}

	// Loose numeric-plus-meridiem fallback: "7 pm", "7pm", "730 pm".
	m := looseClockRe.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	if hour > 23 || minute > 59 {
		return "", false
	}
	switch m[3] {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), true
}

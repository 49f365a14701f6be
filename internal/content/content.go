// Package content recognizes the direct long-form requests ("write an
// essay on X", "type a reverse-list code") that bypass plan generation,
// and sanitizes generated code down to executable lines.
package content

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/agnivade/levenshtein"
)

// RequestKind labels what the long-form path should produce.
type RequestKind int

const (
	KindEssay RequestKind = iota
	// KindCodePure expects code only: no commentary, no fences.
	KindCodePure
	// KindCodeCommented expects code with explanatory comments kept.
	KindCodeCommented
	KindGeneric
)

// Request is a recognized long-form command.
type Request struct {
	Kind  RequestKind
	Topic string
	// OpenEditor is set for "write ..." phrasings, which open a text
	// editor first; "type ..." pastes into whatever is focused.
	OpenEditor bool
}

var documentWords = []string{"essay", "article", "document", "letter", "story", "note", "paragraph"}

var (
	typeTopicCodeRe = regexp.MustCompile(`(?i)^type\s+(?:a\s+|an\s+)?(.+?)\s+code$`)
	typeCodeRe      = regexp.MustCompile(`(?i)^type\s+code\b\s*(.*)$`)
	docRequestRe    = regexp.MustCompile(`(?i)^(write|type)\s+(?:a\s+|an\s+|the\s+)?(\S+)\s+(?:on|about)\s+(.+)$`)
	genericWriteRe  = regexp.MustCompile(`(?i)^write\s+(.+)$`)
)

// Match recognizes a long-form command. Order matters: the code forms are
// more specific than the document forms, which are more specific than the
// generic write.
func Match(command string) (*Request, bool) {
	c := strings.TrimSpace(command)

	if m := typeCodeRe.FindStringSubmatch(c); m != nil {
		return &Request{Kind: KindCodeCommented, Topic: strings.TrimSpace(m[1])}, true
	}
	if m := typeTopicCodeRe.FindStringSubmatch(c); m != nil {
		return &Request{Kind: KindCodePure, Topic: strings.TrimSpace(m[1])}, true
	}
	if m := docRequestRe.FindStringSubmatch(c); m != nil {
		if isDocumentWord(m[2]) {
			return &Request{
				Kind:       KindEssay,
				Topic:      strings.TrimSpace(m[3]),
				OpenEditor: strings.EqualFold(m[1], "write"),
			}, true
		}
	}
	if m := genericWriteRe.FindStringSubmatch(c); m != nil {
		return &Request{Kind: KindGeneric, Topic: strings.TrimSpace(m[1]), OpenEditor: true}, true
	}
	return nil, false
}

// isDocumentWord tolerates spoken-transcription typos ("esaay") by fuzzy
// matching against the known document nouns.
func isDocumentWord(word string) bool {
	w := strings.ToLower(word)
	for _, doc := range documentWords {
		if w == doc {
			return true
		}
		longest := len(doc)
		if len(w) > longest {
			longest = len(w)
		}
		d := levenshtein.ComputeDistance(w, doc)
		if 1-float64(d)/float64(longest) >= 0.7 {
			return true
		}
	}
	return false
}

// BuildPrompt renders the planner prompt for a long-form request.
func BuildPrompt(req *Request) string {
	switch req.Kind {
	case KindCodePure:
		return fmt.Sprintf(
			"Write code for: %s.\nOutput ONLY the code. No markdown fences, no comments, no explanations.",
			req.Topic)
	case KindCodeCommented:
		topic := req.Topic
		if topic == "" {
			topic = "the user's request"
		}
		return fmt.Sprintf(
			"Write code for: %s.\nInclude brief explanatory comments. No markdown fences.",
			topic)
	case KindEssay:
		return fmt.Sprintf(
			"Write a polished, multi-paragraph piece on: %s.\nNo meta commentary, just the content.",
			req.Topic)
	default:
		return fmt.Sprintf(
			"Write the following for the user: %s.\nNo meta commentary, just the content.",
			req.Topic)
	}
}

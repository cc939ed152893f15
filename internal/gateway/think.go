package gateway

import (
	"regexp"
	"strings"
)

// Reasoning markup emitted by local "thinking" models. LM Studio reasoning
// builds use [THINK]…[/THINK]; several open models use <think>…</think>.
var (
	reThinkBracket = regexp.MustCompile(`(?s)\[THINK\].*?\[/THINK\]`)
	reThinkTag     = regexp.MustCompile(`(?s)<think>.*?</think>`)
)

// StripReasoning removes every reasoning block from s and trims the
// surrounding whitespace. Unmatched markers are left in place.
func StripReasoning(s string) string {
	s = reThinkBracket.ReplaceAllString(s, "")
	s = reThinkTag.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

package interpret

import (
	"regexp"
	"strings"
)

// Models wrap structured output in fences inconsistently. Extraction prefers
// the most specific form first: a fence explicitly tagged as JSON, then any
// fence, then the raw text. This ordering is load-bearing.
var (
	reFenceJSON = regexp.MustCompile("(?s)```json\\s*(\\{.*\\})\\s*```")
	reFenceAny  = regexp.MustCompile("(?s)```\\s*(\\{.*\\})\\s*```")
)

// ExtractJSON pulls the candidate JSON text out of a model reply.
// Falls back to the trimmed whole input when no fenced object is found.
func ExtractJSON(text string) string {
	stripped := strings.TrimSpace(text)

	if m := reFenceJSON.FindStringSubmatch(stripped); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := reFenceAny.FindStringSubmatch(stripped); m != nil {
		return strings.TrimSpace(m[1])
	}
	return stripped
}

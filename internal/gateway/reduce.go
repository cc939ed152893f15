package gateway

import (
	"fmt"
	"strings"
)

// ContentToText reduces a message content value to a plain string.
//
// Accepted shapes:
//   - string: returned as is
//   - map with a "text" field: that field's string form
//   - ordered list of blocks: each block contributes its "text" field when
//     present, otherwise its raw representation (never dropped silently);
//     blocks are joined with newlines in order
//
// Anything else falls back to its raw textual representation.
func ContentToText(content any) string {
	switch v := content.(type) {
	case string:
		return v
	case map[string]any:
		if text, ok := v["text"]; ok {
			return fmt.Sprintf("%v", text)
		}
		return fmt.Sprintf("%v", v)
	case []any:
		parts := make([]string, 0, len(v))
		for _, block := range v {
			switch b := block.(type) {
			case string:
				parts = append(parts, b)
			case map[string]any:
				if text, ok := b["text"]; ok {
					parts = append(parts, fmt.Sprintf("%v", text))
				} else {
					parts = append(parts, fmt.Sprintf("%v", b))
				}
			default:
				parts = append(parts, fmt.Sprintf("%v", b))
			}
		}
		return strings.Join(parts, "\n")
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

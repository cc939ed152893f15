package mcp

import (
	"fmt"

	mcp "trpc.group/trpc-go/trpc-mcp-go"
)

// resultText reduces a tool-call result to a single text value.
//
// Preference order: the conventional "result" field of a structured payload,
// then the first plain-text content block, then the raw representation of the
// content sequence, then the raw representation of the whole result.
func resultText(res *mcp.CallToolResult) string {
	if structured, ok := res.StructuredContent.(map[string]any); ok {
		if v, ok := structured["result"]; ok {
			return fmt.Sprintf("%v", v)
		}
	}

	if len(res.Content) > 0 {
		for _, block := range res.Content {
			if text, ok := block.(mcp.TextContent); ok {
				return text.Text
			}
		}
		return fmt.Sprintf("%v", res.Content)
	}

	return fmt.Sprintf("%v", *res)
}

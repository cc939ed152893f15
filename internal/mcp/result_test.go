package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	mcp "trpc.group/trpc-go/trpc-mcp-go"
)

func TestResultText_StructuredResultField(t *testing.T) {
	res := &mcp.CallToolResult{
		Content:           []mcp.Content{mcp.NewTextContent("ignored")},
		StructuredContent: map[string]any{"result": "structured wins"},
	}
	assert.Equal(t, "structured wins", resultText(res))
}

func TestResultText_StructuredNonStringResult(t *testing.T) {
	res := &mcp.CallToolResult{
		StructuredContent: map[string]any{"result": 7},
	}
	assert.Equal(t, "7", resultText(res))
}

func TestResultText_StructuredWithoutResultFieldFallsThrough(t *testing.T) {
	res := &mcp.CallToolResult{
		Content:           []mcp.Content{mcp.NewTextContent("from content")},
		StructuredContent: map[string]any{"count": 1},
	}
	assert.Equal(t, "from content", resultText(res))
}

func TestResultText_FirstTextBlock(t *testing.T) {
	res := &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent("first"),
			mcp.NewTextContent("second"),
		},
	}
	assert.Equal(t, "first", resultText(res))
}

func TestResultText_NoTextBlockUsesRawContent(t *testing.T) {
	res := &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.ImageContent{Data: "abc", MimeType: "image/png"},
		},
	}
	got := resultText(res)
	assert.NotEmpty(t, got)
	assert.Contains(t, got, "image")
}

func TestResultText_EmptyResult(t *testing.T) {
	res := &mcp.CallToolResult{}
	assert.NotEmpty(t, resultText(res))
}

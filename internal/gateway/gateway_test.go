package gateway_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/openai/openai-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docpilot/docpilot/internal/config"
	"github.com/docpilot/docpilot/internal/gateway"
	"github.com/docpilot/docpilot/internal/schema"
)

type capture struct {
	method string
	url    string
	body   []byte
}

type fakeTransport struct {
	respStatus int
	respBody   []byte
	captured   *capture
}

func (f *fakeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	b, _ := io.ReadAll(req.Body)
	_ = req.Body.Close()
	if f.captured != nil {
		f.captured.method = req.Method
		f.captured.url = req.URL.String()
		f.captured.body = b
	}
	resp := &http.Response{
		StatusCode: f.respStatus,
		Body:       io.NopCloser(bytes.NewReader(f.respBody)),
		Header:     make(http.Header),
		Request:    req,
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp, nil
}

func completionBody(content, finishReason string) []byte {
	b, _ := json.Marshal(map[string]any{
		"id":     "cmpl-1",
		"object": "chat.completion",
		"choices": []map[string]any{
			{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": content},
				"finish_reason": finishReason,
			},
		},
	})
	return b
}

func newTestClient(rt http.RoundTripper) *gateway.Client {
	cfg := config.ModelConfig{
		Name:           "test-model",
		APIBase:        "http://localhost:1234/v1",
		APIKey:         "not-needed",
		TimeoutSeconds: 5,
	}
	return gateway.New(cfg, option.WithHTTPClient(&http.Client{Transport: rt}))
}

type wireMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type wireRequest struct {
	Model       string        `json:"model"`
	Messages    []wireMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	Stop        []string      `json:"stop"`
}

func TestChat_RequestShape(t *testing.T) {
	capReq := &capture{}
	c := newTestClient(&fakeTransport{respStatus: 200, respBody: completionBody("ok", "stop"), captured: capReq})

	turns := []schema.Message{
		schema.NewUserMessage("first question"),
		schema.NewAssistantMessage("earlier reply"),
		schema.NewUserMessage([]any{
			map[string]any{"type": "text", "text": "block one"},
			map[string]any{"type": "text", "text": "block two"},
		}),
	}
	_, err := c.Chat(context.Background(), turns, schema.ChatOptions{
		System:      "you are terse",
		Temperature: 0,
		Stop:        []string{"###"},
	})
	require.NoError(t, err)

	require.NotNil(t, capReq.body, "no request captured")
	assert.Equal(t, http.MethodPost, capReq.method)
	assert.True(t, strings.HasSuffix(capReq.url, "/chat/completions"), "unexpected url %q", capReq.url)

	var req wireRequest
	require.NoError(t, json.Unmarshal(capReq.body, &req))

	assert.Equal(t, "test-model", req.Model)
	assert.Equal(t, float64(0), req.Temperature)
	assert.Equal(t, []string{"###"}, req.Stop)

	require.Len(t, req.Messages, 4)
	assert.Equal(t, wireMessage{Role: "system", Content: "you are terse"}, req.Messages[0])
	assert.Equal(t, wireMessage{Role: "user", Content: "first question"}, req.Messages[1])
	assert.Equal(t, wireMessage{Role: "assistant", Content: "earlier reply"}, req.Messages[2])
	assert.Equal(t, wireMessage{Role: "user", Content: "block one\nblock two"}, req.Messages[3])
}

func TestChat_AllStopSequencesForwarded(t *testing.T) {
	capReq := &capture{}
	c := newTestClient(&fakeTransport{respStatus: 200, respBody: completionBody("ok", "stop"), captured: capReq})

	_, err := c.Chat(context.Background(), []schema.Message{schema.NewUserMessage("q")}, schema.ChatOptions{
		Stop: []string{"###", "END", "\n\n"},
	})
	require.NoError(t, err)

	var req wireRequest
	require.NoError(t, json.Unmarshal(capReq.body, &req))
	assert.Equal(t, []string{"###", "END", "\n\n"}, req.Stop)
}

func TestChat_NoSystemInstruction(t *testing.T) {
	capReq := &capture{}
	c := newTestClient(&fakeTransport{respStatus: 200, respBody: completionBody("ok", "stop"), captured: capReq})

	_, err := c.Chat(context.Background(), []schema.Message{schema.NewUserMessage("hi")}, schema.ChatOptions{})
	require.NoError(t, err)

	var req wireRequest
	require.NoError(t, json.Unmarshal(capReq.body, &req))
	require.Len(t, req.Messages, 1)
	assert.Equal(t, "user", req.Messages[0].Role)
}

func TestChat_StripsReasoningAndTrims(t *testing.T) {
	body := completionBody("[THINK]pondering...[/THINK]\n  {\"answer\": \"42\"}  ", "stop")
	c := newTestClient(&fakeTransport{respStatus: 200, respBody: body})

	got, err := c.Chat(context.Background(), []schema.Message{schema.NewUserMessage("q")}, schema.ChatOptions{})
	require.NoError(t, err)
	assert.Equal(t, `{"answer": "42"}`, got.Text())
	assert.Equal(t, schema.RoleAssistant, got.Message.Role)
	assert.Equal(t, schema.StopEnd, got.StopReason)
}

func TestChat_StopReasonMapping(t *testing.T) {
	tests := []struct {
		finishReason string
		want         string
	}{
		{"stop", schema.StopEnd},
		{"length", schema.StopEnd},
		{"tool_calls", schema.StopToolUse},
		{"function_call", schema.StopToolUse},
	}
	for _, tt := range tests {
		t.Run(tt.finishReason, func(t *testing.T) {
			c := newTestClient(&fakeTransport{respStatus: 200, respBody: completionBody("x", tt.finishReason)})
			got, err := c.Chat(context.Background(), []schema.Message{schema.NewUserMessage("q")}, schema.ChatOptions{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.StopReason)
		})
	}
}

func TestChat_TransportFailurePropagates(t *testing.T) {
	c := newTestClient(&fakeTransport{respStatus: 500, respBody: []byte(`{"error":{"message":"boom"}}`)})

	_, err := c.Chat(context.Background(), []schema.Message{schema.NewUserMessage("q")}, schema.ChatOptions{})
	require.Error(t, err)
}

func TestChat_EmptyChoicesIsError(t *testing.T) {
	b, _ := json.Marshal(map[string]any{"id": "cmpl-1", "object": "chat.completion", "choices": []any{}})
	c := newTestClient(&fakeTransport{respStatus: 200, respBody: b})

	_, err := c.Chat(context.Background(), []schema.Message{schema.NewUserMessage("q")}, schema.ChatOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty choices")
}

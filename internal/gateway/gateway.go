// Package gateway talks to an OpenAI-compatible chat-completions endpoint
// and normalises both directions of the exchange: outgoing turns are reduced
// to plain text, incoming replies are stripped of reasoning markup and mapped
// to a canonical stop reason.
package gateway

import (
	"context"
	"fmt"
	"time"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/docpilot/docpilot/internal/config"
	"github.com/docpilot/docpilot/internal/schema"
)

// Client implements schema.LLMGateway against any OpenAI-compatible endpoint.
type Client struct {
	oa      openai.Client
	model   string
	timeout time.Duration
}

// New builds a gateway from the model configuration. Extra request options
// (e.g. a custom HTTP client in tests) are appended after the configured ones.
func New(cfg config.ModelConfig, opts ...option.RequestOption) *Client {
	clientOpts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.APIBase),
		// One round trip per call; failures surface to the caller as is.
		option.WithMaxRetries(0),
	}
	clientOpts = append(clientOpts, opts...)
	return &Client{
		oa:      openai.NewClient(clientOpts...),
		model:   cfg.Name,
		timeout: cfg.Timeout(),
	}
}

// Chat sends the conversation and returns the normalised assistant turn.
// The optional system instruction goes first, then the turns in their
// original order, each reduced to plain text. Transport failures are not
// handled here; they propagate to the caller.
func (c *Client) Chat(ctx context.Context, turns []schema.Message, opts schema.ChatOptions) (schema.Completion, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(turns)+1)
	if opts.System != "" {
		messages = append(messages, openai.SystemMessage(opts.System))
	}
	for _, m := range turns {
		text := ContentToText(m.Content)
		switch m.Role {
		case schema.RoleSystem:
			messages = append(messages, openai.SystemMessage(text))
		case schema.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(text))
		default:
			messages = append(messages, openai.UserMessage(text))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:       shared.ChatModel(c.model),
		Messages:    messages,
		Temperature: openai.Float(opts.Temperature),
	}
	if len(opts.Stop) > 0 {
		params.Stop = openai.ChatCompletionNewParamsStopUnion{
			OfStringArray: opts.Stop,
		}
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.oa.Chat.Completions.New(ctx, params)
	if err != nil {
		return schema.Completion{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return schema.Completion{}, fmt.Errorf("chat completion: empty choices in response")
	}

	choice := resp.Choices[0]
	text := StripReasoning(choice.Message.Content)

	stopReason := schema.StopEnd
	if choice.FinishReason == "tool_calls" || choice.FinishReason == "function_call" {
		// Informational only; this gateway never performs tool calling itself.
		stopReason = schema.StopToolUse
	}

	return schema.Completion{
		Message:    schema.NewAssistantMessage(text),
		StopReason: stopReason,
	}, nil
}

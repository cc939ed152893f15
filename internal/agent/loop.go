package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/docpilot/docpilot/internal/interpret"
	"github.com/docpilot/docpilot/internal/schema"
)

// OutcomeKind classifies what a single user turn produced.
type OutcomeKind int

const (
	// OutcomeAnswer is a direct answer, no tool involved.
	OutcomeAnswer OutcomeKind = iota
	// OutcomeSynthesized is an answer composed from a tool result.
	OutcomeSynthesized
	// OutcomeMalformed is a reply that was not parseable JSON; Text holds
	// the raw model output, shown to the user as is.
	OutcomeMalformed
	// OutcomeUnrecognized is valid JSON that fits neither protocol shape.
	OutcomeUnrecognized
	// OutcomeToolError is a tool invocation that failed; Text holds the
	// error description. No synthesis happens on this path.
	OutcomeToolError
)

// Outcome is the result of one dispatch turn.
type Outcome struct {
	Kind     OutcomeKind
	Text     string
	ToolName string
}

// Loop drives the decide / execute / synthesize cycle for each user turn.
// Turns are independent: no conversation history is carried between them.
type Loop struct {
	gateway  schema.LLMGateway
	provider schema.ToolProvider
	interp   *interpret.Interpreter

	system  string
	catalog string
}

// NewLoop wires the loop to its collaborators. Call Init before Turn.
func NewLoop(gateway schema.LLMGateway, provider schema.ToolProvider, interp *interpret.Interpreter) *Loop {
	return &Loop{gateway: gateway, provider: provider, interp: interp}
}

// Init fetches the tool catalog once and freezes the decide prompt for the
// session. Tools added to the provider afterwards are not picked up.
func (l *Loop) Init(ctx context.Context) error {
	tools, err := l.provider.ListTools(ctx)
	if err != nil {
		return fmt.Errorf("fetch tool catalog: %w", err)
	}
	l.catalog = FormatToolCatalog(tools)
	l.system = decideSystemPrompt(l.catalog)
	slog.Info("tool catalog loaded", "tools", len(tools))
	return nil
}

// Catalog returns the rendered tool list, for display at session start.
func (l *Loop) Catalog() string {
	return l.catalog
}

// Turn runs one full dispatch cycle for a user message. A returned error
// means the model gateway failed; the caller decides whether to retry the
// conversation. Everything else, including tool failures and unparseable
// model replies, comes back as an Outcome.
func (l *Loop) Turn(ctx context.Context, userText string) (Outcome, error) {
	decision, err := l.gateway.Chat(ctx,
		[]schema.Message{schema.NewUserMessage(userText)},
		schema.ChatOptions{System: l.system, Temperature: 0},
	)
	if err != nil {
		return Outcome{}, fmt.Errorf("decide call: %w", err)
	}

	directive := l.interp.Interpret(decision.Text())
	switch d := directive.(type) {
	case schema.Answer:
		return Outcome{Kind: OutcomeAnswer, Text: d.Text}, nil

	case schema.Malformed:
		return Outcome{Kind: OutcomeMalformed, Text: d.RawText}, nil

	case schema.Unrecognized:
		return Outcome{Kind: OutcomeUnrecognized, Text: d.RawText}, nil

	case schema.ToolCall:
		return l.executeAndSynthesize(ctx, userText, d)

	default:
		return Outcome{}, fmt.Errorf("unhandled directive %T", directive)
	}
}

func (l *Loop) executeAndSynthesize(ctx context.Context, userText string, call schema.ToolCall) (Outcome, error) {
	slog.Info("executing tool", "tool", call.Name)
	result, err := l.provider.CallTool(ctx, call.Name, call.Arguments)
	if err != nil {
		return Outcome{Kind: OutcomeToolError, ToolName: call.Name, Text: err.Error()}, nil
	}

	final, err := l.gateway.Chat(ctx,
		[]schema.Message{schema.NewUserMessage(synthesisUserPrompt(userText, call.Name, result))},
		schema.ChatOptions{System: synthesisSystemPrompt, Temperature: 0},
	)
	if err != nil {
		return Outcome{}, fmt.Errorf("synthesis call: %w", err)
	}

	return Outcome{Kind: OutcomeSynthesized, ToolName: call.Name, Text: final.Text()}, nil
}

// Package schema contains the core contracts shared across docpilot packages.
// Concrete implementations live in their respective packages; this package is
// the single canonical source of truth for every interface definition.
package schema

import "context"

// ChatOptions carries the per-request knobs for one completion call.
type ChatOptions struct {
	System      string // optional system instruction, sent first when non-empty
	Temperature float64
	Stop        []string
}

// LLMGateway normalises a conversation into a completion request and the
// reply into a Completion. One network round trip per call, no retries;
// transport failures propagate to the caller.
type LLMGateway interface {
	Chat(ctx context.Context, turns []Message, opts ChatOptions) (Completion, error)
}

// ToolDescriptor describes one callable tool exposed by the tool provider.
// Descriptors are read-only and immutable for the session.
type ToolDescriptor struct {
	Name        string
	Description string
}

// ToolProvider is the boundary to the external collaborator that owns the
// tool catalog and executes tools on request. CallTool returns the result
// already reduced to plain text, or propagates the provider's error.
type ToolProvider interface {
	ListTools(ctx context.Context) ([]ToolDescriptor, error)
	CallTool(ctx context.Context, name string, args map[string]any) (string, error)
	Close() error
}

// DocStore is the document storage contract behind the document tools.
// Implementations are injected into the tool server's construction, never
// reached through package-level state, so tests can substitute an isolated
// in-memory instance per case.
type DocStore interface {
	Get(id string) (string, error)
	Put(id, content string)
	List() []string
}

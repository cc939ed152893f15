package schema

// Conversation roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one entry in the conversation sent to the model.
//
// Content is normally a plain string, but callers may hand over richer
// shapes (a map with a "text" field, or an ordered list of content blocks).
// The gateway reduces every shape to plain text before it crosses the wire;
// nothing here outlives the request that carries it.
type Message struct {
	Role    string
	Content any // string | map[string]any | []any
}

func NewSystemMessage(content any) Message {
	return Message{Role: RoleSystem, Content: content}
}

func NewUserMessage(content any) Message {
	return Message{Role: RoleUser, Content: content}
}

func NewAssistantMessage(content any) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// Canonical stop reasons reported by the gateway. The provider's own finish
// indicator is collapsed to one of these two values; the signal is
// informational only, the gateway never performs tool calling itself.
const (
	StopEnd     = "end"
	StopToolUse = "tool_use"
)

// Completion is the gateway's normalised reply: the assistant turn reduced
// to plain text, plus the canonical stop reason.
type Completion struct {
	Message    Message
	StopReason string
}

// Text returns the completion's content as a string.
func (c Completion) Text() string {
	if s, ok := c.Message.Content.(string); ok {
		return s
	}
	return ""
}

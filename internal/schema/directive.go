package schema

// Directive is the structured intent extracted from exactly one model reply.
//
// It is a closed union: ToolCall, Answer, Malformed or Unrecognized. A switch
// over the concrete type handles every outcome; there is no partial or
// streaming variant.
type Directive interface {
	isDirective()
}

// ToolCall asks for one named tool to be invoked with the given arguments.
// Arguments have already been normalised: only canonical parameter names
// remain, no alias the model may have used survives.
type ToolCall struct {
	Name      string
	Arguments map[string]any
}

// Answer carries the final user-facing text; no tool is invoked.
type Answer struct {
	Text string
}

// Malformed means the reply could not be parsed as JSON. It is terminal for
// the current turn and expected model behaviour, not an error.
type Malformed struct {
	RawText string
}

// Unrecognized means the reply was valid JSON but matched no known intent
// (neither "tool" nor "answer"). Callers display the raw object.
type Unrecognized struct {
	RawText string
}

func (ToolCall) isDirective()     {}
func (Answer) isDirective()       {}
func (Malformed) isDirective()    {}
func (Unrecognized) isDirective() {}

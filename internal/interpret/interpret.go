// Package interpret turns free-text model output into a structured Directive:
// a tool call, a final answer, or a report that the reply was unusable.
package interpret

import (
	"encoding/json"
	"fmt"

	"github.com/docpilot/docpilot/internal/schema"
)

// Interpreter classifies model replies using a shared alias table.
type Interpreter struct {
	aliases AliasTable
}

// New returns an Interpreter backed by the given alias table.
func New(aliases AliasTable) *Interpreter {
	return &Interpreter{aliases: aliases}
}

// Interpret extracts exactly one JSON object from rawText and classifies it.
//
// Unparseable text yields Malformed — an expected outcome, not an error.
// Valid JSON with neither "answer" nor "tool" yields Unrecognized so callers
// can show the raw object instead of crashing. Tool-call arguments are
// normalised against the alias table before they are returned.
func (i *Interpreter) Interpret(rawText string) schema.Directive {
	candidate := ExtractJSON(rawText)

	var value any
	if err := json.Unmarshal([]byte(candidate), &value); err != nil {
		return schema.Malformed{RawText: rawText}
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return schema.Unrecognized{RawText: rawText}
	}

	answer, hasAnswer := obj["answer"]
	_, hasTool := obj["tool"]

	if hasAnswer && !hasTool {
		if text, ok := answer.(string); ok {
			return schema.Answer{Text: text}
		}
		// Non-string answers still reach the user rather than crash.
		return schema.Answer{Text: fmt.Sprintf("%v", answer)}
	}

	if hasTool {
		name, ok := obj["tool"].(string)
		if !ok {
			return schema.Unrecognized{RawText: rawText}
		}
		args, _ := obj["arguments"].(map[string]any)
		if args == nil {
			args = map[string]any{}
		}
		i.aliases.Normalize(name, args)
		return schema.ToolCall{Name: name, Arguments: args}
	}

	return schema.Unrecognized{RawText: rawText}
}

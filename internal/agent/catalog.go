// Package agent runs the dispatch loop: one model call to decide, an
// optional tool call, an optional model call to synthesize.
package agent

import (
	"fmt"
	"strings"

	"github.com/docpilot/docpilot/internal/schema"
)

// FormatToolCatalog renders tool descriptors as the bulleted list embedded in
// the decide prompt. Order is preserved as the provider reported it.
func FormatToolCatalog(tools []schema.ToolDescriptor) string {
	lines := make([]string, 0, len(tools))
	for _, t := range tools {
		lines = append(lines, fmt.Sprintf("- %s: %s", t.Name, t.Description))
	}
	return strings.Join(lines, "\n")
}

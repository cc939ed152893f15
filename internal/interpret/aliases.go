package interpret

// ParamAliases maps one canonical parameter name to the alias spellings a
// model may use instead, in priority order.
type ParamAliases struct {
	Canonical string
	Aliases   []string
}

// AliasTable declares, per tool, which argument aliases are accepted.
// It is read-only and shared across turns; adding aliases for a new tool is
// a table entry, not new branching logic.
type AliasTable map[string][]ParamAliases

// DefaultAliases covers the document-editing tool family. Models routinely
// misname the replace parameters, including one known misspelling.
var DefaultAliases = AliasTable{
	"edit_document": {
		{Canonical: "old_str", Aliases: []string{"old_string", "old"}},
		{Canonical: "new_str", Aliases: []string{"new_string", "new_striing", "new"}},
	},
}

// Normalize rewrites args in place so that every parameter the model supplied
// under an accepted alias appears under its canonical name instead. For each
// canonical parameter not already present, the alias list is scanned in
// priority order and the first alias found is renamed. Parameters with no
// matching alias are left untouched; nothing the model did not supply is ever
// introduced.
func (t AliasTable) Normalize(tool string, args map[string]any) {
	for _, p := range t[tool] {
		if _, ok := args[p.Canonical]; ok {
			continue
		}
		for _, alias := range p.Aliases {
			if v, ok := args[alias]; ok {
				args[p.Canonical] = v
				delete(args, alias)
				break
			}
		}
	}
}

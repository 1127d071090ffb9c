// Package theme turns a nested design-token table into CSS custom-property
// declarations and var() reference strings. It is independent of the style
// compiler: token references feed the values inside style declarations as
// already-resolved strings.
package theme

import (
	"sort"
	"strings"

	"github.com/maruel/natural"
)

// Table maps category name to key to literal value (color, length,
// duration and so on). Values are emitted verbatim.
type Table map[string]map[string]string

// Theme exposes a token table as custom properties. Safe for concurrent use
// once constructed; the table is not copied, so don't mutate it afterwards.
type Theme struct {
	table Table
}

// New creates a Theme over the given table.
func New(table Table) *Theme {
	return &Theme{table: table}
}

// Vars renders every category/key pair as a custom-property declaration
// inside a single root-scoped rule. Categories and keys are emitted in
// natural order so the output is reproducible regardless of map iteration.
func (t *Theme) Vars() string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, category := range sortedKeys(t.table) {
		entries := t.table[category]
		keys := make([]string, 0, len(entries))
		for k := range entries {
			keys = append(keys, k)
		}
		sort.Sort(natural.StringSlice(keys))
		for _, key := range keys {
			b.WriteString("  ")
			b.WriteString(propertyName(category, key))
			b.WriteString(": ")
			b.WriteString(entries[key])
			b.WriteString(";\n")
		}
	}
	b.WriteString("}")
	return b.String()
}

// Token returns a var() reference for a category/key pair. No cross-check
// against the table happens: referencing an undeclared token yields a
// syntactically valid but dangling lookup. Use Lint to find those.
func (t *Theme) Token(category, key string) string {
	return "var(" + propertyName(category, key) + ")"
}

// Declared returns every declared custom-property name, naturally sorted.
// Feeds the optional lint pass that cross-checks token references.
func (t *Theme) Declared() []string {
	var names []string
	for category, entries := range t.table {
		for key := range entries {
			names = append(names, propertyName(category, key))
		}
	}
	sort.Sort(natural.StringSlice(names))
	return names
}

func propertyName(category, key string) string {
	return "--" + category + "-" + key
}

func sortedKeys(t Table) []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Sort(natural.StringSlice(keys))
	return keys
}

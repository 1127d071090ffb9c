// Package emit renders compiled class maps into build artifacts: JSON for
// generic tooling, generated Go constants for typed access, or any custom
// text template.
package emit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"text/template"
	"unicode"

	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/maruel/natural"
)

// ClassEntry is one logical name with its generated class.
type ClassEntry struct {
	Name   string // logical name from the sheet
	GoName string // exported identifier for generated Go code
	Class  string // generated class name
}

// Values is a struct that holds variables we make available for template
// expansion.
type Values struct {
	Package string
	Classes []ClassEntry
	CSS     string
}

// goConstantsTmpl is the built-in artifact: a constants file so templates
// reference class names by identifier instead of hardcoded strings.
const goConstantsTmpl = `// Code generated by stylec; DO NOT EDIT.

package {{ .Package }}

const (
{{- range .Classes }}
	{{ .GoName }} = "{{ .Class }}"
{{- end }}
)
`

// NewValues prepares template data from a class map, naturally ordered by
// logical name for reproducible artifacts.
func NewValues(pkg string, classes map[string]string, css string) Values {
	entries := make([]ClassEntry, 0, len(classes))
	names := make([]string, 0, len(classes))
	for name := range classes {
		names = append(names, name)
	}
	sort.Sort(natural.StringSlice(names))
	for _, name := range names {
		entries = append(entries, ClassEntry{Name: name, GoName: goName(name), Class: classes[name]})
	}
	return Values{Package: pkg, Classes: entries, CSS: css}
}

// GoConstants renders the built-in Go constants artifact.
func GoConstants(pkg string, classes map[string]string) ([]byte, error) {
	return Render(goConstantsTmpl, NewValues(pkg, classes, ""))
}

// Render expands a text template over the prepared values. Templates get the
// whole slim-sprig function map for string munging.
func Render(tmplText string, values Values) ([]byte, error) {
	tmpl, err := template.New("emit").Funcs(sprig.FuncMap()).Parse(tmplText)
	if err != nil {
		return nil, fmt.Errorf("unable to parse output template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, values); err != nil {
		return nil, fmt.Errorf("unable to expand output template: %w", err)
	}
	return buf.Bytes(), nil
}

// JSON renders the class map alone, for consumption by non-Go tooling.
func JSON(classes map[string]string) ([]byte, error) {
	data, err := json.MarshalIndent(classes, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("unable to marshal class map: %w", err)
	}
	return append(data, '\n'), nil
}

// goName converts a logical name to an exported Go identifier:
// "card-title" or "cardTitle" both become "CardTitle". Characters that
// cannot appear in an identifier are treated as word breaks.
func goName(name string) string {
	var b strings.Builder
	upper := true
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
			continue
		}
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		return "Style"
	}
	out := b.String()
	if unicode.IsDigit(rune(out[0])) {
		out = "Style" + out
	}
	return out
}

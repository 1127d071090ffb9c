package style

import (
	"fmt"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	cssparse "github.com/tdewolff/parse/v2/css"
)

// Warning is a strict-mode finding. Warnings are advisory only: the
// compilation that produced them is complete and usable.
type Warning struct {
	Block   string // logical block name, empty for sheet-wide findings
	Message string
}

func (w Warning) String() string {
	if w.Block == "" {
		return w.Message
	}
	return w.Block + ": " + w.Message
}

// checkBlock inspects one block for likely mistakes: malformed property
// names, pseudo variants that emit nothing, and breakpoint names that look
// like misspelled buckets rather than intentional raw widths.
func checkBlock(name string, b Block) []Warning {
	var warns []Warning

	checkDecls := func(context string, decls []Declaration) {
		for _, d := range decls {
			if d.Property == "" {
				warns = append(warns, Warning{name, context + "declaration with empty property name"})
				continue
			}
			if !validProperty(ToSelectorCase(d.Property)) {
				warns = append(warns, Warning{name, fmt.Sprintf("%sproperty %q does not hyphenate to a CSS identifier", context, d.Property)})
			}
		}
	}

	checkDecls("", b.Declarations)
	for _, p := range b.Pseudo {
		live := 0
		for _, d := range p.Declarations {
			if !d.Value.Undefined() {
				live++
			}
		}
		if live == 0 {
			warns = append(warns, Warning{name, fmt.Sprintf("pseudo variant %q emits no declarations", p.Selector)})
		}
		checkDecls(fmt.Sprintf("pseudo %q: ", p.Selector), p.Declarations)
	}
	for _, m := range b.Media {
		if suspiciousBreakpoint(m.Breakpoint) {
			warns = append(warns, Warning{name, fmt.Sprintf("breakpoint %q is not a named bucket and does not look like a width value", m.Breakpoint)})
		}
		warns = append(warns, checkBlock(name, m.Block)...)
	}
	return warns
}

// validProperty reports whether a hyphenated property name is a plausible
// CSS identifier (letters, digits, hyphens, optional custom-property prefix).
func validProperty(name string) bool {
	s := strings.TrimPrefix(name, "--")
	if s == "" {
		return false
	}
	for _, r := range s {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' {
			continue
		}
		return false
	}
	return true
}

// suspiciousBreakpoint is true when a breakpoint is neither a named bucket,
// nor a parenthesized condition, nor something starting like a width value.
// Such names still compile (min-width fallback) but usually mean a typo.
func suspiciousBreakpoint(name string) bool {
	if _, ok := breakpoints[name]; ok {
		return false
	}
	if strings.HasPrefix(name, "(") {
		return false
	}
	if name == "" {
		return true
	}
	c := name[0]
	return c < '0' || c > '9'
}

// scanCSS tokenizes the final CSS text and reports anything the tokenizer
// rejects. Generated output should always scan cleanly; a finding here means
// a string value smuggled in broken syntax.
func scanCSS(text string) []Warning {
	if text == "" {
		return nil
	}
	p := cssparse.NewParser(parse.NewInputString(text), false)
	for {
		gt, _, _ := p.Next()
		if gt != cssparse.ErrorGrammar {
			continue
		}
		if err := p.Err(); err != nil && err.Error() != "EOF" {
			return []Warning{{Message: "generated CSS does not tokenize: " + err.Error()}}
		}
		return nil
	}
}

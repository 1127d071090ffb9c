package style

import "strings"

// Result is the output of one compilation: logical name to class name, the
// concatenated CSS text, and warnings when strict mode is enabled. Both maps
// and strings are fresh per call; nothing persists inside the compiler.
type Result struct {
	Classes  map[string]string
	CSS      string
	Warnings []Warning
}

type compiler struct {
	namer  Namer
	strict bool
}

// Option adjusts a single compilation.
type Option func(*compiler)

// WithNamer overrides the default HashNamer.
func WithNamer(n Namer) Option {
	return func(c *compiler) {
		c.namer = n
	}
}

// WithStrict enables best-effort validation of the compiled output. Warnings
// are advisory: strict mode never fails a compilation and never changes the
// emitted classes or CSS.
func WithStrict() Option {
	return func(c *compiler) {
		c.strict = true
	}
}

// Compile walks the sheet in insertion order, assigns each block a class name
// and emits its CSS rules. Every block receives a class map entry; blocks
// that produce no rule text contribute nothing to the CSS string.
func Compile(sheet *Sheet, opts ...Option) Result {
	c := compiler{namer: HashNamer{}}
	for _, opt := range opts {
		opt(&c)
	}

	res := Result{Classes: make(map[string]string, sheet.Len())}
	var rules []string
	for _, name := range sheet.Names() {
		block, _ := sheet.Get(name)
		class := c.namer.ClassFor(name)
		res.Classes[name] = class

		text := compileBlock(block, selectorFor(class))
		if c.strict {
			res.Warnings = append(res.Warnings, checkBlock(name, block)...)
		}
		if text == "" {
			continue
		}
		rules = append(rules, text)
	}
	res.CSS = strings.Join(rules, "\n")
	if c.strict {
		res.Warnings = append(res.Warnings, scanCSS(res.CSS)...)
	}
	return res
}

// compileBlock emits the rules for one block against the given selector:
// the base rule first, then pseudo rules, then @media rules, each group in
// declaration order. Media blocks recurse with the full algorithm; pseudo
// blocks carry flat declarations only.
func compileBlock(b Block, selector string) string {
	var rules []string

	if decls := writeDeclarations(b.Declarations); decls != "" {
		rules = append(rules, selector+" {\n"+decls+"}")
	}

	for _, p := range b.Pseudo {
		decls := writeDeclarations(p.Declarations)
		if decls == "" {
			continue
		}
		rules = append(rules, pseudoSelector(selector, p.Selector)+" {\n"+decls+"}")
	}

	for _, m := range b.Media {
		inner := compileBlock(m.Block, selector)
		if inner == "" {
			continue
		}
		rules = append(rules, "@media "+ResolveBreakpoint(m.Breakpoint)+" {\n"+indent(inner)+"\n}")
	}

	return strings.Join(rules, "\n")
}

// writeDeclarations renders "property: value;" lines, two-space indented.
// Undefined values are dropped; an empty result means no rule is emitted.
func writeDeclarations(decls []Declaration) string {
	var b strings.Builder
	for _, d := range decls {
		if d.Value.Undefined() {
			continue
		}
		b.WriteString("  ")
		b.WriteString(ToSelectorCase(d.Property))
		b.WriteString(": ")
		b.WriteString(FormatValue(d.Property, d.Value))
		b.WriteString(";\n")
	}
	return b.String()
}

// pseudoSelector substitutes the class selector into a pseudo fragment.
// "&:hover" becomes ".cls:hover"; a fragment without "&" is appended.
func pseudoSelector(selector, fragment string) string {
	if strings.Contains(fragment, "&") {
		return strings.ReplaceAll(fragment, "&", selector)
	}
	return selector + fragment
}

// indent shifts every line of a rule body right by two spaces.
func indent(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = "  " + line
		}
	}
	return strings.Join(lines, "\n")
}

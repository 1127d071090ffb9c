package theme

import (
	"regexp"
	"sort"

	"github.com/maruel/natural"
)

// varRefPattern matches custom-property lookups in CSS text: var(--name),
// with or without a fallback argument.
var varRefPattern = regexp.MustCompile(`var\(\s*(--[A-Za-z0-9_-]+)`)

// Lint scans CSS text for var() references to tokens this theme does not
// declare. Dangling references are legal CSS (they resolve to the initial or
// inherited value in the browser), so this is a separate advisory pass, not
// part of compilation. Returns the undeclared property names, naturally
// sorted and de-duplicated.
func (t *Theme) Lint(css string) []string {
	declared := make(map[string]bool)
	for _, name := range t.Declared() {
		declared[name] = true
	}

	seen := make(map[string]bool)
	var dangling []string
	for _, m := range varRefPattern.FindAllStringSubmatch(css, -1) {
		name := m[1]
		if declared[name] || seen[name] {
			continue
		}
		seen[name] = true
		dangling = append(dangling, name)
	}
	sort.Sort(natural.StringSlice(dangling))
	return dangling
}

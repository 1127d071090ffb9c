package style

import "strings"

// breakpoints maps named responsive buckets to canonical media conditions.
var breakpoints = map[string]string{
	"mobile":  "(max-width: 767px)",
	"tablet":  "(min-width: 768px)",
	"desktop": "(min-width: 1024px)",
	"wide":    "(min-width: 1280px)",
	"print":   "print",
}

// ResolveBreakpoint maps a breakpoint name to a concrete @media condition.
// Named buckets come from the static table; a parenthesized string is treated
// as a literal condition; anything else is taken as a raw width value and
// wrapped in a min-width condition. The permissive fallback lets callers mix
// named buckets with ad hoc pixel or rem thresholds.
func ResolveBreakpoint(name string) string {
	if cond, ok := breakpoints[name]; ok {
		return cond
	}
	if strings.HasPrefix(name, "(") {
		return name
	}
	return "(min-width: " + name + ")"
}

// BreakpointNames returns the named buckets, for help text and validation.
func BreakpointNames() []string {
	return []string{"mobile", "tablet", "desktop", "wide", "print"}
}

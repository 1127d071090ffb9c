package style

import (
	"fmt"
	"sort"
	"strings"

	"github.com/maruel/natural"
)

// MediaKey is the reserved key carrying responsive variants in the map form.
const MediaKey = "@media"

// FromMap builds a Block from the loosely-typed map form, where key shape
// selects the variant: keys starting with "&" are pseudo-selector variants,
// the reserved "@media" key holds a table of breakpoint to nested map, and
// everything else is a plain declaration. This mirrors the shape style
// documents use on disk; typed callers should construct Blocks directly.
//
// Go maps have no iteration order, so keys are walked in natural string
// order to keep the compiled output reproducible.
func FromMap(m map[string]any) Block {
	var b Block
	for _, key := range sortedKeys(m) {
		val := m[key]
		switch {
		case key == MediaKey:
			table, ok := val.(map[string]any)
			if !ok {
				continue
			}
			for _, bp := range sortedKeys(table) {
				nested, ok := table[bp].(map[string]any)
				if !ok {
					continue
				}
				b.Media = append(b.Media, MediaBlock{Breakpoint: bp, Block: FromMap(nested)})
			}
		case strings.HasPrefix(key, "&"):
			nested, ok := val.(map[string]any)
			if !ok {
				continue
			}
			b.Pseudo = append(b.Pseudo, PseudoBlock{Selector: key, Declarations: declarationsFromMap(nested)})
		default:
			if _, nested := val.(map[string]any); nested {
				// nested map under a plain key is not a declaration value;
				// skipped, same as inside pseudo variants
				continue
			}
			b.Declarations = append(b.Declarations, Declaration{Property: key, Value: valueOf(val)})
		}
	}
	return b
}

// declarationsFromMap extracts plain declarations only. Pseudo or responsive
// sub-keys inside a pseudo variant are not expanded (single-level contract).
func declarationsFromMap(m map[string]any) []Declaration {
	var decls []Declaration
	for _, key := range sortedKeys(m) {
		if key == MediaKey || strings.HasPrefix(key, "&") {
			continue
		}
		if _, nested := m[key].(map[string]any); nested {
			continue
		}
		decls = append(decls, Declaration{Property: key, Value: valueOf(m[key])})
	}
	return decls
}

// valueOf converts a loosely-typed scalar to a Value. Nil stays undefined
// and is dropped downstream; unexpected scalar types render permissively via
// their default formatting rather than failing.
func valueOf(v any) Value {
	switch val := v.(type) {
	case nil:
		return Value{}
	case string:
		return String(val)
	case int:
		return Number(float64(val))
	case int64:
		return Number(float64(val))
	case float64:
		return Number(val)
	case float32:
		return Number(float64(val))
	default:
		return String(fmt.Sprint(val))
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Sort(natural.StringSlice(keys))
	return keys
}

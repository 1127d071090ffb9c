package style

import (
	"strconv"
	"strings"
	"unicode"
)

// unitless lists properties whose numeric values take no unit suffix.
// Everything else gets the default length unit (px).
var unitless = map[string]bool{
	"opacity":                 true,
	"flexGrow":                true,
	"flexShrink":              true,
	"fontWeight":              true,
	"lineHeight":              true,
	"order":                   true,
	"zIndex":                  true,
	"animationIterationCount": true,
	// hyphenated spellings of the same properties
	"flex-grow":                 true,
	"flex-shrink":               true,
	"font-weight":               true,
	"line-height":               true,
	"z-index":                   true,
	"animation-iteration-count": true,
}

// FormatValue renders a declaration value as CSS text. Numeric values are
// suffixed with px unless the property is unitless; strings pass through
// unchanged. It never fails - the caller owns the validity of string values.
func FormatValue(property string, v Value) string {
	if !v.Numeric {
		return v.Raw
	}
	num := strconv.FormatFloat(v.Num, 'f', -1, 64)
	if unitless[property] {
		return num
	}
	return num + "px"
}

// ToSelectorCase converts a lower-camel-case property name to hyphen-case.
// Custom properties (leading "--") pass through verbatim. Names starting with
// the webkit vendor marker are re-prefixed so that naive hyphenation does not
// produce the non-standard "webkit-..." form.
func ToSelectorCase(name string) string {
	if strings.HasPrefix(name, "--") {
		return name
	}
	var b strings.Builder
	b.Grow(len(name) + 4)
	for _, r := range name {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	out := b.String()
	if strings.HasPrefix(out, "webkit-") {
		return "-" + out
	}
	return out
}

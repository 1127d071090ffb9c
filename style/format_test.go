package style

import "testing"

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name     string
		property string
		value    Value
		expected string
	}{
		{"default unit", "padding", Number(16), "16px"},
		{"fractional default unit", "marginTop", Number(1.5), "1.5px"},
		{"unitless opacity", "opacity", Number(0.5), "0.5"},
		{"unitless line height", "lineHeight", Number(1.5), "1.5"},
		{"unitless font weight", "fontWeight", Number(600), "600"},
		{"unitless flex grow", "flexGrow", Number(1), "1"},
		{"unitless z index", "zIndex", Number(10), "10"},
		{"unitless hyphenated spelling", "z-index", Number(10), "10"},
		{"unitless iteration count", "animationIterationCount", Number(3), "3"},
		{"string passthrough", "color", String("red"), "red"},
		{"string with var reference", "color", String("var(--color-brand)"), "var(--color-brand)"},
		{"string number is not inferred", "padding", String("16"), "16"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatValue(tt.property, tt.value); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestToSelectorCase(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"single word", "color", "color"},
		{"camel case", "backgroundColor", "background-color"},
		{"multiple humps", "borderTopLeftRadius", "border-top-left-radius"},
		{"custom property passthrough", "--color-brand", "--color-brand"},
		{"webkit vendor correction", "webkitTransform", "-webkit-transform"},
		{"already hyphenated", "font-weight", "font-weight"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToSelectorCase(tt.input); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestUndefinedValue(t *testing.T) {
	if !(Value{}).Undefined() {
		t.Error("zero Value must be undefined")
	}
	if Number(0).Undefined() {
		t.Error("numeric zero is a real value")
	}
	if String("red").Undefined() {
		t.Error("non-empty string is a real value")
	}
}

package emit

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestGoConstants(t *testing.T) {
	out, err := GoConstants("ui", map[string]string{
		"card-title": "card-title-1a2b3",
		"btn":        "btn-23j0",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := string(out)
	for _, fragment := range []string{
		"package ui",
		"Btn = \"btn-23j0\"",
		"CardTitle = \"card-title-1a2b3\"",
		"DO NOT EDIT",
	} {
		if !strings.Contains(text, fragment) {
			t.Errorf("missing %q in:\n%s", fragment, text)
		}
	}
	// constants should come out in name order
	if !(strings.Index(text, "Btn") < strings.Index(text, "CardTitle")) {
		t.Errorf("expected ordered constants:\n%s", text)
	}
}

func TestGoName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"hyphenated", "card-title", "CardTitle"},
		{"camel", "cardTitle", "CardTitle"},
		{"single word", "btn", "Btn"},
		{"punctuation breaks words", "hero.section", "HeroSection"},
		{"leading digit", "3d-card", "Style3dCard"},
		{"empty", "", "Style"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := goName(tt.input); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestRenderCustomTemplate(t *testing.T) {
	values := NewValues("", map[string]string{"card": "card-1tafk"}, ".card-1tafk {}")

	out, err := Render(`{{ range .Classes }}{{ .Name | upper }}={{ .Class }};{{ end }}`, values)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "CARD=card-1tafk;" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestRenderBadTemplate(t *testing.T) {
	if _, err := Render("{{ .Broken", Values{}); err == nil {
		t.Error("expected an error for an unparsable template")
	}
}

func TestJSON(t *testing.T) {
	out, err := JSON(map[string]string{"card": "card-1tafk"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded map[string]string
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["card"] != "card-1tafk" {
		t.Errorf("unexpected class map %v", decoded)
	}
}

package style

import (
	"strings"
	"testing"
)

func TestHashNamer(t *testing.T) {
	n := HashNamer{}

	tests := []struct {
		name     string
		logical  string
		expected string
	}{
		{"short name", "card", "card-1tafk"},
		{"another short name", "btn", "btn-23j0"},
		{"box", "box", "box-23ez"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.ClassFor(tt.logical); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestHashNamerDeterminism(t *testing.T) {
	n := HashNamer{}
	for _, logical := range []string{"card", "cardTitle", "x", "a-very-long-logical-name"} {
		first := n.ClassFor(logical)
		if second := n.ClassFor(logical); second != first {
			t.Errorf("%q: got %q then %q", logical, first, second)
		}
	}
}

func TestHashNamerCamelBase(t *testing.T) {
	got := HashNamer{}.ClassFor("cardTitle")
	if !strings.HasPrefix(got, "card-title-") {
		t.Errorf("expected hyphenated base, got %q", got)
	}
	suffix := strings.TrimPrefix(got, "card-title-")
	if len(suffix) == 0 || len(suffix) > 5 {
		t.Errorf("expected 1 to 5 character suffix, got %q", suffix)
	}
}

func TestHashNamerSlugsNonIdentifiers(t *testing.T) {
	got := HashNamer{}.ClassFor("hero section!")
	if strings.ContainsAny(got, " !") {
		t.Errorf("class name must be a clean identifier, got %q", got)
	}
}

func TestSeqNamer(t *testing.T) {
	n := NewSeqNamer()

	first := n.ClassFor("card")
	if first != "card-1" {
		t.Errorf("expected card-1, got %q", first)
	}
	if got := n.ClassFor("card"); got != first {
		t.Errorf("repeated name must be stable: got %q then %q", first, got)
	}
	if got := n.ClassFor("btn"); got != "btn-2" {
		t.Errorf("expected btn-2, got %q", got)
	}

	// counter guarantees uniqueness even for colliding bases
	seen := make(map[string]bool)
	for _, logical := range []string{"a", "b", "c", "d"} {
		c := n.ClassFor(logical)
		if seen[c] {
			t.Errorf("duplicate class name %q", c)
		}
		seen[c] = true
	}
}

package theme

import (
	"strings"
	"testing"
)

func TestVars(t *testing.T) {
	th := New(Table{
		"color": {
			"brand":  "#123456",
			"accent": "#654321",
		},
		"spacing": {
			"gutter": "16px",
		},
	})

	vars := th.Vars()

	if !strings.HasPrefix(vars, ":root {\n") || !strings.HasSuffix(vars, "}") {
		t.Errorf("vars must be a single root-scoped rule, got %q", vars)
	}
	for _, decl := range []string{
		"--color-brand: #123456;",
		"--color-accent: #654321;",
		"--spacing-gutter: 16px;",
	} {
		if !strings.Contains(vars, decl) {
			t.Errorf("missing %q in %q", decl, vars)
		}
	}
}

func TestVarsDeterministicOrder(t *testing.T) {
	table := Table{
		"b": {"two": "2", "ten": "10"},
		"a": {"one": "1"},
	}
	first := New(table).Vars()
	for i := 0; i < 10; i++ {
		if got := New(table).Vars(); got != first {
			t.Fatalf("vars output must be reproducible: %q vs %q", first, got)
		}
	}
	if !(strings.Index(first, "--a-one") < strings.Index(first, "--b-")) {
		t.Errorf("categories must be ordered, got %q", first)
	}
}

func TestToken(t *testing.T) {
	th := New(Table{"color": {"brand": "#123456"}})

	if got := th.Token("color", "brand"); got != "var(--color-brand)" {
		t.Errorf("unexpected reference %q", got)
	}
	// referencing an undeclared token is allowed and not cross-checked
	if got := th.Token("color", "missing"); got != "var(--color-missing)" {
		t.Errorf("unexpected reference %q", got)
	}
}

func TestDeclared(t *testing.T) {
	th := New(Table{
		"color":   {"brand": "#123456"},
		"spacing": {"gutter": "16px"},
	})

	declared := th.Declared()
	if len(declared) != 2 {
		t.Fatalf("expected 2 declared tokens, got %v", declared)
	}
	if declared[0] != "--color-brand" || declared[1] != "--spacing-gutter" {
		t.Errorf("unexpected declared list %v", declared)
	}
}

func TestLint(t *testing.T) {
	th := New(Table{"color": {"brand": "#123456"}})

	css := `.a { color: var(--color-brand); background: var(--color-accent); }
.b { margin: var( --spacing-gutter , 8px); color: var(--color-accent); }`

	dangling := th.Lint(css)
	if len(dangling) != 2 {
		t.Fatalf("expected 2 dangling tokens, got %v", dangling)
	}
	if dangling[0] != "--color-accent" || dangling[1] != "--spacing-gutter" {
		t.Errorf("unexpected dangling list %v", dangling)
	}
}

func TestLintClean(t *testing.T) {
	th := New(Table{"color": {"brand": "#123456"}})
	if dangling := th.Lint(".a { color: var(--color-brand); }"); len(dangling) != 0 {
		t.Errorf("expected no findings, got %v", dangling)
	}
}

func TestParseTable(t *testing.T) {
	table, err := ParseTable([]byte("version: 1\ntokens:\n  color:\n    brand: \"#123456\"\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table["color"]["brand"] != "#123456" {
		t.Errorf("unexpected table %v", table)
	}
}

func TestParseTableErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"wrong version", "version: 2\ntokens:\n  a:\n    b: c\n"},
		{"no tokens", "version: 1\n"},
		{"unknown field", "version: 1\ntokenz:\n  a:\n    b: c\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseTable([]byte(tt.doc)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

package generate

import (
	"testing"

	"stylec/config"
	"stylec/state"
	"stylec/style"
)

func TestCompileSheetStrictFlag(t *testing.T) {
	newEnv := func(t *testing.T) *state.LocalEnv {
		t.Helper()
		env := &state.LocalEnv{Cfg: &config.Config{Generate: config.GenerateConfig{ClassFormat: "hash"}}}
		cache, err := style.NewCache(4, env.Cfg.Generate.CompileOptions()...)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		env.Cache = cache
		return env
	}
	sheet := style.NewSheet().Add("card", style.Block{Declarations: []style.Declaration{{Property: "", Value: style.String("red")}}})

	t.Run("without flag", func(t *testing.T) {
		env := newEnv(t)
		res := compileSheet(env, sheet, false)
		if len(res.Warnings) != 0 {
			t.Errorf("no warnings expected without the flag, got %v", res.Warnings)
		}
		if env.Cache.Len() != 1 {
			t.Errorf("result must be cached, have %d entries", env.Cache.Len())
		}
	})

	t.Run("with flag", func(t *testing.T) {
		env := newEnv(t)
		res := compileSheet(env, sheet, true)
		if len(res.Warnings) == 0 {
			t.Error("the flag must turn strict checks on")
		}
		if env.Cache.Len() != 0 {
			t.Error("a run widened beyond the cache options must not use the cache")
		}
	})
}

func TestArtifactBase(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{"yaml document", "/work/styles.yaml", "styles"},
		{"yml document", "tokens.yml", "tokens"},
		{"no extension", "/work/styles", "styles"},
		{"dotted name", "site.styles.yaml", "site.styles"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := artifactBase(tt.src); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

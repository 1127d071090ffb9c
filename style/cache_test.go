package style

import "testing"

func TestCacheCompile(t *testing.T) {
	cache, err := NewCache(4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sheet := NewSheet().Add("card", Block{Declarations: []Declaration{{"color", String("red")}}})

	first := cache.Compile(sheet)
	second := cache.Compile(sheet)

	if first.CSS != second.CSS || first.Classes["card"] != second.Classes["card"] {
		t.Error("cached result must match the computed one")
	}
	if cache.Len() != 1 {
		t.Errorf("expected a single cached entry, got %d", cache.Len())
	}

	other := NewSheet().Add("btn", Block{Declarations: []Declaration{{"color", String("blue")}}})
	cache.Compile(other)
	if cache.Len() != 2 {
		t.Errorf("expected two cached entries, got %d", cache.Len())
	}
}

func TestCacheMatchesCompile(t *testing.T) {
	cache, err := NewCache(2, WithNamer(HashNamer{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sheet := NewSheet().Add("card", FromMap(map[string]any{
		"padding": 16,
		"&:hover": map[string]any{"color": "blue"},
	}))

	direct := Compile(sheet)
	cached := cache.Compile(sheet)
	if direct.CSS != cached.CSS {
		t.Errorf("memoization changed output:\n%q\nvs\n%q", direct.CSS, cached.CSS)
	}
}

func TestSheetSignature(t *testing.T) {
	a := NewSheet().Add("card", Block{Declarations: []Declaration{{"color", String("red")}}})
	b := NewSheet().Add("card", Block{Declarations: []Declaration{{"color", String("red")}}})
	c := NewSheet().Add("card", Block{Declarations: []Declaration{{"color", String("blue")}}})
	d := NewSheet().Add("cardc", Block{Declarations: []Declaration{{"olor", String("red")}}})

	if a.signature() != b.signature() {
		t.Error("identical sheets must share a signature")
	}
	if a.signature() == c.signature() {
		t.Error("different values must produce different signatures")
	}
	if a.signature() == d.signature() {
		t.Error("shifting text between fields must produce different signatures")
	}
}

func TestSheetSignaturePseudoBoundaries(t *testing.T) {
	// Same concatenated field text, different pseudo-block layout. Without
	// length prefixes on the pseudo section these share a signature and the
	// cache would hand the first sheet's CSS to the second.
	a := NewSheet().Add("x", Block{Pseudo: []PseudoBlock{
		{Selector: "a", Declarations: []Declaration{{"b", String("c")}, {"d", String("e")}}},
		{Selector: "f"},
	}})
	b := NewSheet().Add("x", Block{Pseudo: []PseudoBlock{
		{Selector: "a", Declarations: []Declaration{{"b", String("c")}}},
		{Selector: "d", Declarations: []Declaration{{"e", String("f")}}},
	}})

	if a.signature() == b.signature() {
		t.Fatal("pseudo layout must be part of the signature")
	}

	cache, err := NewCache(4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cache.Compile(a)
	if got, want := cache.Compile(b).CSS, Compile(b).CSS; got != want {
		t.Errorf("cache returned a different sheet's result:\n%q\nvs\n%q", got, want)
	}
}

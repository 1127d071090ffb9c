package style

import "strconv"

// Value is a single declaration value: either a literal CSS string used
// verbatim, or a number formatted with unit inference (see FormatValue).
// The zero Value is "undefined" and is silently dropped from output.
type Value struct {
	Raw     string  // literal CSS text when Numeric is false
	Num     float64 // numeric value when Numeric is true
	Numeric bool
}

// String returns a Value holding literal CSS text.
func String(s string) Value {
	return Value{Raw: s}
}

// Number returns a numeric Value. Unit inference happens at format time.
func Number(n float64) Value {
	return Value{Num: n, Numeric: true}
}

// Undefined returns true if the value carries no content and must be omitted.
func (v Value) Undefined() bool {
	return !v.Numeric && v.Raw == ""
}

// text returns the value without unit inference, for signatures and debugging.
func (v Value) text() string {
	if v.Numeric {
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	}
	return v.Raw
}

// Declaration is one property/value pair. Property is the logical
// (lower-camel or already-hyphenated) name; hyphenation happens at emit time.
type Declaration struct {
	Property string
	Value    Value
}

// PseudoBlock scopes a group of declarations to a pseudo-selector variant of
// the block's class. Selector is a fragment like "&:hover" or "&::after";
// every "&" is replaced with the generated class selector. A fragment without
// "&" is appended to the class selector directly.
//
// Pseudo blocks hold plain declarations only. Nesting another pseudo or
// responsive level inside one is not part of the model - the single-level
// restriction keeps the selector grammar flat and is deliberate.
type PseudoBlock struct {
	Selector     string
	Declarations []Declaration
}

// MediaBlock scopes a nested Block to a responsive breakpoint. Breakpoint is
// either a named bucket, a parenthesized raw condition, or a bare width value
// (see ResolveBreakpoint). The nested block is compiled with the full rule
// algorithm, so it may carry pseudo variants of its own.
type MediaBlock struct {
	Breakpoint string
	Block      Block
}

// Block is one style description: ordered base declarations plus optional
// pseudo-selector and responsive variants.
type Block struct {
	Declarations []Declaration
	Pseudo       []PseudoBlock
	Media        []MediaBlock
}

// IsEmpty returns true if the block carries nothing at all. An empty block
// still receives a class name but contributes no CSS.
func (b Block) IsEmpty() bool {
	return len(b.Declarations) == 0 && len(b.Pseudo) == 0 && len(b.Media) == 0
}

// Sheet is an ordered mapping from logical block name to Block. Iteration
// order matches insertion order so output concatenation is reproducible.
// Logical names are assumed unique; adding a name again replaces the block
// but keeps its original position.
type Sheet struct {
	order  []string
	blocks map[string]Block
}

// NewSheet creates an empty sheet.
func NewSheet() *Sheet {
	return &Sheet{blocks: make(map[string]Block)}
}

// Add registers a block under a logical name.
func (s *Sheet) Add(name string, b Block) *Sheet {
	if _, exists := s.blocks[name]; !exists {
		s.order = append(s.order, name)
	}
	s.blocks[name] = b
	return s
}

// Get returns the block registered under name.
func (s *Sheet) Get(name string) (Block, bool) {
	b, ok := s.blocks[name]
	return b, ok
}

// Names returns all logical names in insertion order.
func (s *Sheet) Names() []string {
	return s.order
}

// Len returns the number of registered blocks.
func (s *Sheet) Len() int {
	return len(s.order)
}

// Package style compiles structured style descriptions into CSS text and
// deterministic class names.
//
// A Sheet maps logical block names to Blocks. Compile walks the sheet in
// insertion order, assigns every block a class name derived from its logical
// name only, and emits one CSS rule per non-empty declaration group: base
// declarations, pseudo-selector variants, and responsive @media variants.
//
// The compiler is pure and synchronous: no I/O, no shared state, safe for
// concurrent use. Malformed input never fails a compilation - unknown
// properties are emitted literally, undefined values are dropped, unknown
// breakpoints fall back to a synthesized min-width condition. An optional
// strict mode reports such oddities as warnings without changing the output.
package style

package style

import (
	"hash/fnv"
	"io"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache memoizes Compile results for repeated sheets, keyed by a 64-bit
// signature of the sheet contents. The options are fixed at construction so
// every cached entry was produced the same way. A pure addition over Compile:
// observable output is identical, only recomputation is skipped.
//
// Cached Results are shared between callers; treat them as read-only.
type Cache struct {
	entries *lru.Cache[uint64, Result]
	opts    []Option
}

// NewCache creates a compile cache holding up to size results.
func NewCache(size int, opts ...Option) (*Cache, error) {
	entries, err := lru.New[uint64, Result](size)
	if err != nil {
		return nil, err
	}
	return &Cache{entries: entries, opts: opts}, nil
}

// Compile returns the memoized result for the sheet, compiling on miss.
func (c *Cache) Compile(sheet *Sheet) Result {
	key := sheet.signature()
	if res, ok := c.entries.Get(key); ok {
		return res
	}
	res := Compile(sheet, c.opts...)
	c.entries.Add(key, res)
	return res
}

// Len returns the number of cached results.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// signature hashes the sheet's full contents, separators included so that
// moving text between adjacent fields cannot collide.
func (s *Sheet) signature() uint64 {
	h := fnv.New64a()
	for _, name := range s.order {
		writeField(h, name)
		writeBlock(h, s.blocks[name])
	}
	return h.Sum64()
}

func writeBlock(w io.Writer, b Block) {
	// Every slice is length-prefixed so section boundaries are unambiguous:
	// without the counts a pseudo boundary could not be told apart from a
	// property/value boundary and different sheets could share a key.
	writeDecls(w, b.Declarations)
	writeField(w, strconv.Itoa(len(b.Pseudo)))
	for _, p := range b.Pseudo {
		writeField(w, p.Selector)
		writeDecls(w, p.Declarations)
	}
	writeField(w, strconv.Itoa(len(b.Media)))
	for _, m := range b.Media {
		writeField(w, m.Breakpoint)
		writeBlock(w, m.Block)
	}
}

func writeDecls(w io.Writer, decls []Declaration) {
	writeField(w, strconv.Itoa(len(decls)))
	for _, d := range decls {
		writeField(w, d.Property)
		writeField(w, d.Value.text())
	}
}

func writeField(w io.Writer, s string) {
	io.WriteString(w, s)   //nolint:errcheck
	w.Write([]byte{0xff}) //nolint:errcheck
}

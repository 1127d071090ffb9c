package style

import (
	"strconv"

	"github.com/gosimple/slug"
)

// Namer derives a class name from a logical block name. Implementations must
// be deterministic: the same logical name always yields the same class name,
// independent of block content.
type Namer interface {
	ClassFor(logicalName string) string
}

// classBase turns a logical name into a usable class-name prefix. Camel-case
// names hyphenate; anything that still is not a clean CSS identifier
// (spaces, punctuation, non-ASCII) gets slugified instead.
func classBase(name string) string {
	base := ToSelectorCase(name)
	for _, r := range base {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' || r == '_' {
			continue
		}
		return slug.Make(name)
	}
	if base == "" {
		return "s"
	}
	return base
}

// HashNamer is the default Namer: a 32-bit rolling hash of the logical name,
// base-36 encoded and truncated to 5 characters, appended to the hyphenated
// name. Deterministic across processes, but not collision-free once a sheet
// grows into the hundreds of blocks - use SeqNamer when that matters.
type HashNamer struct{}

func (HashNamer) ClassFor(logicalName string) string {
	var h int32
	for _, r := range logicalName {
		h = h*31 + int32(r)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	suffix := strconv.FormatInt(v, 36)
	if len(suffix) > 5 {
		suffix = suffix[:5]
	}
	return classBase(logicalName) + "-" + suffix
}

// SeqNamer assigns suffixes from a monotonically increasing counter keyed by
// a registry of already-seen logical names, guaranteeing uniqueness by
// construction. Class names are stable within one SeqNamer but depend on
// registration order, so reuse the same instance across related compilations.
//
// Not safe for concurrent use; give each goroutine its own instance.
type SeqNamer struct {
	seen    map[string]string
	counter int64
}

// NewSeqNamer creates an empty sequential namer.
func NewSeqNamer() *SeqNamer {
	return &SeqNamer{seen: make(map[string]string)}
}

func (n *SeqNamer) ClassFor(logicalName string) string {
	if c, ok := n.seen[logicalName]; ok {
		return c
	}
	n.counter++
	c := classBase(logicalName) + "-" + strconv.FormatInt(n.counter, 36)
	n.seen[logicalName] = c
	return c
}

// selectorFor builds the class selector used in emitted rules.
func selectorFor(className string) string {
	return "." + className
}

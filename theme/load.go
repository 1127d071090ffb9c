package theme

import (
	"bytes"
	"fmt"

	yaml "gopkg.in/yaml.v3"
)

// ParseTable reads a YAML token document into a Table. Expected shape:
//
//	version: 1
//	tokens:
//	  color:
//	    brand: "#123456"
//	  spacing:
//	    gutter: 16px
//
// Scalar values are kept as written; quote hex colors so YAML does not eat
// the comment marker.
func ParseTable(data []byte) (Table, error) {
	var doc struct {
		Version int                          `yaml:"version"`
		Tokens  map[string]map[string]string `yaml:"tokens"`
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode token document: %w", err)
	}
	if doc.Version != 1 {
		return nil, fmt.Errorf("unsupported token document version %d", doc.Version)
	}
	if len(doc.Tokens) == 0 {
		return nil, fmt.Errorf("token document has no tokens section")
	}
	return Table(doc.Tokens), nil
}

package style

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// ParseSheet reads a YAML style document into a Sheet, preserving document
// order for blocks, declarations, pseudo variants and breakpoints. Expected
// shape:
//
//	version: 1
//	styles:
//	  card:
//	    padding: 16
//	    color: red
//	    "&:hover":
//	      color: blue
//	    "@media":
//	      tablet:
//	        display: none
//
// Numbers stay numeric (unit inference applies), strings pass through, null
// values are dropped. Unknown top-level keys are an error.
func ParseSheet(data []byte) (*Sheet, error) {
	var doc yaml.Node
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode style document: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("style document is empty")
	}
	root := resolve(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("style document must be a mapping, got %s at line %d", nodeKind(root), root.Line)
	}

	sheet := NewSheet()
	seenStyles := false
	for i := 0; i < len(root.Content); i += 2 {
		key, val := root.Content[i], resolve(root.Content[i+1])
		switch key.Value {
		case "version":
			if val.Value != "1" {
				return nil, fmt.Errorf("unsupported style document version %q", val.Value)
			}
		case "styles":
			if val.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("styles must be a mapping, got %s at line %d", nodeKind(val), val.Line)
			}
			for j := 0; j < len(val.Content); j += 2 {
				name, blockNode := val.Content[j], resolve(val.Content[j+1])
				block, err := blockFromNode(blockNode)
				if err != nil {
					return nil, fmt.Errorf("style %q: %w", name.Value, err)
				}
				sheet.Add(name.Value, block)
			}
			seenStyles = true
		default:
			return nil, fmt.Errorf("unknown field %q at line %d", key.Value, key.Line)
		}
	}
	if !seenStyles {
		return nil, fmt.Errorf("style document has no styles section")
	}
	return sheet, nil
}

// blockFromNode walks one style mapping in document order, discriminating
// keys the same way FromMap does.
func blockFromNode(n *yaml.Node) (Block, error) {
	var b Block
	if n.Kind != yaml.MappingNode {
		return b, fmt.Errorf("expected a mapping, got %s at line %d", nodeKind(n), n.Line)
	}
	for i := 0; i < len(n.Content); i += 2 {
		key, val := n.Content[i], resolve(n.Content[i+1])
		switch {
		case key.Value == MediaKey:
			if val.Kind != yaml.MappingNode {
				return b, fmt.Errorf("%s must be a mapping, got %s at line %d", MediaKey, nodeKind(val), val.Line)
			}
			for j := 0; j < len(val.Content); j += 2 {
				bp, nested := val.Content[j], resolve(val.Content[j+1])
				inner, err := blockFromNode(nested)
				if err != nil {
					return b, fmt.Errorf("breakpoint %q: %w", bp.Value, err)
				}
				b.Media = append(b.Media, MediaBlock{Breakpoint: bp.Value, Block: inner})
			}
		case strings.HasPrefix(key.Value, "&"):
			if val.Kind != yaml.MappingNode {
				return b, fmt.Errorf("pseudo %q must be a mapping, got %s at line %d", key.Value, nodeKind(val), val.Line)
			}
			var decls []Declaration
			for j := 0; j < len(val.Content); j += 2 {
				prop, scalar := val.Content[j], resolve(val.Content[j+1])
				// single-level contract: nested variants inside a pseudo
				// block are not expanded
				if scalar.Kind != yaml.ScalarNode {
					continue
				}
				decls = append(decls, Declaration{Property: prop.Value, Value: valueFromNode(scalar)})
			}
			b.Pseudo = append(b.Pseudo, PseudoBlock{Selector: key.Value, Declarations: decls})
		default:
			if val.Kind != yaml.ScalarNode {
				return b, fmt.Errorf("declaration %q must be a scalar, got %s at line %d", key.Value, nodeKind(val), val.Line)
			}
			b.Declarations = append(b.Declarations, Declaration{Property: key.Value, Value: valueFromNode(val)})
		}
	}
	return b, nil
}

// valueFromNode keeps YAML numbers numeric so unit inference still applies.
func valueFromNode(n *yaml.Node) Value {
	switch n.Tag {
	case "!!int":
		if v, err := strconv.ParseInt(n.Value, 10, 64); err == nil {
			return Number(float64(v))
		}
	case "!!float":
		if v, err := strconv.ParseFloat(n.Value, 64); err == nil {
			return Number(v)
		}
	case "!!null":
		return Value{}
	}
	return String(n.Value)
}

func resolve(n *yaml.Node) *yaml.Node {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		return n.Alias
	}
	return n
}

func nodeKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "document"
	}
}

package manifest

import (
	"fmt"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// decodeSource parses a YAML document into nested map[string]any and []any
// values whose scalars are the text as written in the file. An unquoted
// 24.0 stays "24.0" and 007 stays "007"; null scalars become nil.
//
// An empty document decodes to an empty map. A document whose root is not
// a mapping is an error.
func decodeSource(data []byte) (map[string]any, error) {
	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, err
	}
	if len(file.Docs) == 0 || file.Docs[0] == nil || file.Docs[0].Body == nil {
		return map[string]any{}, nil
	}

	d := &sourceDecoder{anchors: make(map[string]any)}
	root := d.node(file.Docs[0].Body)
	switch m := root.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return m, nil
	default:
		return nil, fmt.Errorf("document root is %T, want a mapping", root)
	}
}

type sourceDecoder struct {
	anchors map[string]any
}

func (d *sourceDecoder) node(n ast.Node) any {
	switch n := n.(type) {
	case nil, *ast.NullNode, *ast.CommentGroupNode:
		return nil
	case *ast.MappingNode:
		return d.mapping(n.Values)
	case *ast.MappingValueNode:
		return d.mapping([]*ast.MappingValueNode{n})
	case *ast.SequenceNode:
		out := make([]any, 0, len(n.Values))
		for _, v := range n.Values {
			out = append(out, d.node(v))
		}
		return out
	case *ast.AnchorNode:
		v := d.node(n.Value)
		d.anchors[nodeText(n.Name)] = v
		return v
	case *ast.AliasNode:
		return d.anchors[nodeText(n.Value)]
	case *ast.TagNode:
		return d.node(n.Value)
	case *ast.StringNode:
		return n.Value
	case *ast.LiteralNode:
		if n.Value == nil {
			return ""
		}
		return n.Value.Value
	default:
		return nodeText(n)
	}
}

// mapping builds a map from key/value pairs. Merge keys (<<) only fill in
// keys the mapping does not set itself.
func (d *sourceDecoder) mapping(values []*ast.MappingValueNode) map[string]any {
	out := make(map[string]any, len(values))
	var merged []map[string]any
	for _, mv := range values {
		if mv == nil || mv.Key == nil {
			continue
		}
		if mv.Key.IsMergeKey() {
			switch v := d.node(mv.Value).(type) {
			case map[string]any:
				merged = append(merged, v)
			case []any:
				for _, item := range v {
					if m, ok := item.(map[string]any); ok {
						merged = append(merged, m)
					}
				}
			}
			continue
		}
		out[d.key(mv.Key)] = d.node(mv.Value)
	}
	for _, m := range merged {
		for k, v := range m {
			if _, ok := out[k]; !ok {
				out[k] = v
			}
		}
	}
	return out
}

func (d *sourceDecoder) key(k ast.MapKeyNode) string {
	if mk, ok := k.(*ast.MappingKeyNode); ok {
		return fmt.Sprint(d.node(mk.Value))
	}
	if v := d.node(k); v != nil {
		return fmt.Sprint(v)
	}
	return "null"
}

func nodeText(n ast.Node) string {
	if n == nil {
		return ""
	}
	if tk := n.GetToken(); tk != nil {
		return tk.Value
	}
	return n.String()
}

package document

import (
	"fmt"
	"sort"

	"cuelang.org/go/cue"
	"gopkg.in/yaml.v3"
)

// nodeKind is the shape of a decoded document node.
type nodeKind int

const (
	scalarNode nodeKind = iota
	mappingNode
	sequenceNode
)

func (k nodeKind) String() string {
	switch k {
	case mappingNode:
		return "mapping"
	case sequenceNode:
		return "sequence"
	default:
		return "scalar"
	}
}

// node is the format-independent view of a document that the builder
// walks. YAML, JSON, CUE and TOML sources all reduce to it.
type node struct {
	kind   nodeKind
	value  string
	keys   []*node // mapping keys, in source order
	values []*node // mapping values, parallel to keys
	items  []*node

	line int // 1-based; 0 when unknown
	col  int // 0-based
}

func (n *node) field(key string) (*node, bool) {
	for i, k := range n.keys {
		if k.value == key {
			return n.values[i], true
		}
	}
	return nil, false
}

// fromYAML converts a decoded yaml.v3 tree. yaml.v3 columns are 1-based.
func fromYAML(y *yaml.Node) *node {
	if y.Kind == yaml.DocumentNode && len(y.Content) > 0 {
		return fromYAML(y.Content[0])
	}
	if y.Kind == yaml.AliasNode && y.Alias != nil {
		n := fromYAML(y.Alias)
		n.line, n.col = y.Line, y.Column-1
		return n
	}

	n := &node{line: y.Line, col: y.Column - 1}
	switch y.Kind {
	case yaml.MappingNode:
		n.kind = mappingNode
		for i := 0; i+1 < len(y.Content); i += 2 {
			n.keys = append(n.keys, fromYAML(y.Content[i]))
			n.values = append(n.values, fromYAML(y.Content[i+1]))
		}
	case yaml.SequenceNode:
		n.kind = sequenceNode
		for _, c := range y.Content {
			n.items = append(n.items, fromYAML(c))
		}
	default:
		n.kind = scalarNode
		n.value = y.Value
	}
	return n
}

// fromCUE converts a concrete CUE value. CUE columns are 1-based.
func fromCUE(v cue.Value) (*node, error) {
	pos := v.Pos()
	n := &node{}
	if pos.IsValid() {
		n.line, n.col = pos.Line(), pos.Column()-1
	}

	switch v.Kind() {
	case cue.StructKind:
		n.kind = mappingNode
		iter, err := v.Fields()
		if err != nil {
			return nil, err
		}
		for iter.Next() {
			val, err := fromCUE(iter.Value())
			if err != nil {
				return nil, err
			}
			key := &node{kind: scalarNode, value: iter.Label(), line: val.line, col: val.col}
			n.keys = append(n.keys, key)
			n.values = append(n.values, val)
		}
	case cue.ListKind:
		n.kind = sequenceNode
		list, err := v.List()
		if err != nil {
			return nil, err
		}
		for list.Next() {
			item, err := fromCUE(list.Value())
			if err != nil {
				return nil, err
			}
			n.items = append(n.items, item)
		}
	case cue.StringKind:
		s, err := v.String()
		if err != nil {
			return nil, err
		}
		n.kind = scalarNode
		n.value = s
	default:
		n.kind = scalarNode
		n.value = fmt.Sprint(v)
	}
	return n, nil
}

// fromTOML converts a decoded TOML table. The decoder keeps no positions,
// so every node is at line 0 and the reporter falls back to the brief form.
// Keys are sorted for a stable error order.
func fromTOML(v any) *node {
	switch t := v.(type) {
	case map[string]any:
		n := &node{kind: mappingNode}
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			n.keys = append(n.keys, &node{kind: scalarNode, value: k})
			n.values = append(n.values, fromTOML(t[k]))
		}
		return n
	case []map[string]any:
		n := &node{kind: sequenceNode}
		for _, item := range t {
			n.items = append(n.items, fromTOML(item))
		}
		return n
	case []any:
		n := &node{kind: sequenceNode}
		for _, item := range t {
			n.items = append(n.items, fromTOML(item))
		}
		return n
	case string:
		return &node{kind: scalarNode, value: t}
	default:
		return &node{kind: scalarNode, value: fmt.Sprint(t)}
	}
}

package cli

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/t14raptor/go-match/value"
)

// fromNode converts a decoded YAML document into matchable values. Mappings
// become *value.Map so key order survives into rest captures and output.
func fromNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return fromNode(n.Content[0])
	case yaml.AliasNode:
		return fromNode(n.Alias)
	case yaml.SequenceNode:
		out := make([]any, len(n.Content))
		for i, c := range n.Content {
			v, err := fromNode(c)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case yaml.MappingNode:
		m := value.NewMap()
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping keys must be scalars", k.Line)
			}
			v, err := fromNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m.Set(k.Value, v)
		}
		return m, nil
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}
	return nil, fmt.Errorf("line %d: unsupported YAML node", n.Line)
}

// toNode converts a matched value back into YAML, keeping hash key order.
func toNode(v any) (*yaml.Node, error) {
	switch value.KindOf(v) {
	case value.KindHash:
		m, _ := value.KeyValues(v, nil)
		n := &yaml.Node{Kind: yaml.MappingNode}
		for _, k := range m.Keys() {
			e, _ := m.Get(k)
			vn, err := toNode(e)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}, vn)
		}
		return n, nil
	case value.KindArray:
		seq, _ := value.Sequence(v)
		n := &yaml.Node{Kind: yaml.SequenceNode}
		for _, e := range seq {
			en, err := toNode(e)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, en)
		}
		return n, nil
	case value.KindOther:
		v = value.Inspect(v)
	}

	n := &yaml.Node{}
	if err := n.Encode(v); err != nil {
		return nil, err
	}
	return n, nil
}

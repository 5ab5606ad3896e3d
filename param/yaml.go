// Package param: YAML codec for List.
//
// A List marshals to a YAML mapping whose pairs appear in list order and
// unmarshals back without reordering, so configuration text replays in
// exactly the order it was written. This is a text codec only; reading and
// writing files belongs to the caller.
package param

import (
	"errors"

	"gopkg.in/yaml.v3"
)

// ErrBadParamDocument indicates YAML input that is not a flat mapping of
// scalar names to scalar values.
var ErrBadParamDocument = errors.New("param: document is not a flat scalar mapping")

// MarshalYAML renders the list as a mapping node, one pair per entry, in
// list order. Duplicate names, while discouraged, are emitted as-is.
func (l List) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, p := range l {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Value},
		)
	}

	return node, nil
}

// UnmarshalYAML decodes a flat mapping into the list, preserving the
// document's pair order. Nested mappings, sequences, and non-scalar keys
// yield ErrBadParamDocument.
func (l *List) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return ErrBadParamDocument
	}
	out := make(List, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
			return ErrBadParamDocument
		}
		out = append(out, Param{Name: key.Value, Value: value.Value})
	}
	*l = out

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

package tree

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// BodyKey is the mapping key holding an element's children in YAML documents.
const BodyKey = "body"

// ParseYAML reads a YAML document and returns its root element.
//
// Every element is a single-key mapping from the element name to its body.
// A body is one of:
//   - a mapping whose scalar entries are attributes and whose "body" entry is
//     a sequence of child elements,
//   - a sequence of child elements,
//   - a scalar, taken as the "name" attribute (u32: magic),
//   - null, for an element with neither attributes nor children.
func ParseYAML(r io.Reader) (*Element, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrEmptyDocument
	}
	return yamlElement(doc.Content[0])
}

func yamlElement(n *yaml.Node) (*Element, error) {
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		return nil, fmt.Errorf("line %d: element must be a mapping with exactly one key", n.Line)
	}
	key, body := n.Content[0], n.Content[1]
	el := NewElement(key.Value)

	switch body.Kind {
	case yaml.ScalarNode:
		if body.Tag != "!!null" {
			el.attrs = append(el.attrs, Attr{Key: "name", Value: body.Value})
		}
	case yaml.SequenceNode:
		if err := yamlChildren(el, body); err != nil {
			return nil, err
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(body.Content); i += 2 {
			k, v := body.Content[i], body.Content[i+1]
			switch {
			case k.Value == BodyKey && v.Kind == yaml.SequenceNode:
				if err := yamlChildren(el, v); err != nil {
					return nil, err
				}
			case v.Kind == yaml.ScalarNode:
				el.attrs = append(el.attrs, Attr{Key: k.Value, Value: v.Value})
			default:
				return nil, fmt.Errorf("line %d: attribute %q of %q must be a scalar", v.Line, k.Value, el.name)
			}
		}
	default:
		return nil, fmt.Errorf("line %d: unsupported body for %q", body.Line, el.name)
	}
	return el, nil
}

func yamlChildren(parent *Element, seq *yaml.Node) error {
	for _, item := range seq.Content {
		child, err := yamlElement(item)
		if err != nil {
			return err
		}
		parent.Append(child)
	}
	return nil
}

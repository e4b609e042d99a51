// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

package tree

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// ErrEmptyDocument is returned when a document contains no root element.
var ErrEmptyDocument = errors.New("document has no root element")

// ParseXML reads an XML document and returns its root element.
// Character data, comments and processing instructions are discarded.
func ParseXML(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)

	var (
		root  *Element
		stack []*Element
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse xml: %w", err)
		}

		switch tok := tok.(type) {
		case xml.StartElement:
			el := NewElement(tok.Name.Local)
			for _, a := range tok.Attr {
				el.attrs = append(el.attrs, Attr{Key: a.Name.Local, Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("parse xml: multiple root elements")
				}
				root = el
			} else {
				stack[len(stack)-1].Append(el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}

	if root == nil {
		return nil, ErrEmptyDocument
	}
	return root, nil
}

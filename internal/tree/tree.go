// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

// Package tree provides the generic element/attribute tree the compiler
// ingests, with adapters for XML and YAML documents.
package tree

// Node is one element of a tree-structured schema document.
type Node interface {
	// Name returns the element name, e.g. "type" or "u32".
	Name() string
	// Attribute returns the value of the attribute key, if present.
	Attribute(key string) (string, bool)
	// Attributes returns all attributes in document order.
	Attributes() []Attr
	// FirstChild returns the first child element, or nil.
	FirstChild() Node
	// NextSibling returns the next element with the same parent, or nil.
	NextSibling() Node
}

// Attr is a single element attribute.
type Attr struct {
	Key   string
	Value string
}

// Element is the Node implementation produced by the adapters.
type Element struct {
	name     string
	attrs    []Attr
	children []*Element
	parent   *Element
	index    int
}

// NewElement returns a detached element.
func NewElement(name string, attrs ...Attr) *Element {
	return &Element{name: name, attrs: attrs}
}

// Append adds child as the last child of e and returns child.
func (e *Element) Append(child *Element) *Element {
	child.parent = e
	child.index = len(e.children)
	e.children = append(e.children, child)
	return child
}

// SetAttribute adds or replaces an attribute.
func (e *Element) SetAttribute(key, value string) {
	for i := range e.attrs {
		if e.attrs[i].Key == key {
			e.attrs[i].Value = value
			return
		}
	}
	e.attrs = append(e.attrs, Attr{Key: key, Value: value})
}

func (e *Element) Name() string { return e.name }

func (e *Element) Attribute(key string) (string, bool) {
	for _, a := range e.attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

func (e *Element) Attributes() []Attr { return e.attrs }

func (e *Element) FirstChild() Node {
	if len(e.children) == 0 {
		return nil
	}
	return e.children[0]
}

func (e *Element) NextSibling() Node {
	if e.parent == nil || e.index+1 >= len(e.parent.children) {
		return nil
	}
	return e.parent.children[e.index+1]
}

// Children iterates over the child elements of n.
func Children(n Node) []Node {
	var out []Node
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		out = append(out, c)
	}
	return out
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

package compiler

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Helios-vmg/Xabin/internal/schema"
	"github.com/Helios-vmg/Xabin/internal/tree"
	"github.com/Helios-vmg/Xabin/pkg/decode"
)

// RootElement is the required name of a tree document's root element.
const RootElement = "spec"

// treeScope is the state inherited by nested tree elements. It is passed by
// value, so changes made inside an element never leak to its siblings'
// parents.
type treeScope struct {
	namespace []string
	format    decode.Format
}

func (s treeScope) child() treeScope {
	s.namespace = append([]string(nil), s.namespace...)
	return s
}

// CompileTree compiles the XML or YAML document at path.
func (c *Compiler) CompileTree(path string) error {
	f, err := openInput(path)
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	root, err := parseTreeDocument(path, f)
	if err != nil {
		return err
	}
	c.logger.Debug().Str("path", path).Msg("ingesting tree document")
	if err := c.LoadTree(root); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func parseTreeDocument(path string, r io.Reader) (*tree.Element, error) {
	var (
		root *tree.Element
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		root, err = tree.ParseYAML(r)
	default:
		root, err = tree.ParseXML(r)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, ErrUnknownTree, err)
	}
	return root, nil
}

// LoadTree compiles an already parsed document. The root must be a spec
// element. The compiler's current format is the starting format.
func (c *Compiler) LoadTree(root tree.Node) error {
	if root == nil || root.Name() != RootElement {
		return fmt.Errorf("%w: root element must be %q", ErrMalformedTree, RootElement)
	}
	return c.loadScope(root, treeScope{format: c.state.format})
}

// loadScope walks the children of a spec, namespace or scope element.
func (c *Compiler) loadScope(n tree.Node, scope treeScope) error {
	for _, el := range tree.Children(n) {
		switch el.Name() {
		case "format":
			f, err := treeFormat(el, scope.format)
			if err != nil {
				return err
			}
			scope.format = f
		case "namespace":
			name, err := nameAttribute(el)
			if err != nil {
				return err
			}
			inner := scope.child()
			inner.namespace = append(inner.namespace, name)
			if err := c.loadScope(el, inner); err != nil {
				return err
			}
		case "scope":
			if err := c.loadScope(el, scope.child()); err != nil {
				return err
			}
		case "type":
			if err := c.loadType(el, scope.child()); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: unexpected element %q", ErrMalformedTree, el.Name())
		}
	}
	return nil
}

func (c *Compiler) loadType(n tree.Node, scope treeScope) error {
	name, err := nameAttribute(n)
	if err != nil {
		return err
	}
	t := schema.NewType(scope.namespace, name)
	if err := loadMembers(t, n, scope); err != nil {
		return fmt.Errorf("type %s: %w", t.QualifiedName("."), err)
	}
	c.commitType(t)
	return nil
}

// loadMembers adds the fields under n to t. Nested scope elements share the
// type but get their own format.
func loadMembers(t *schema.Type, n tree.Node, scope treeScope) error {
	for _, el := range tree.Children(n) {
		var (
			f   schema.Field
			err error
		)
		switch name := el.Name(); name {
		case "format":
			if scope.format, err = treeFormat(el, scope.format); err != nil {
				return err
			}
			continue
		case "scope":
			if err := loadMembers(t, el, scope); err != nil {
				return err
			}
			continue
		case "string":
			f, err = treeString(el)
		case "array":
			f, err = treeArray(el, scope.format)
		default:
			kind, ok := schema.LookupIntegerKind(name)
			if !ok {
				return fmt.Errorf("%w: unexpected element %q", ErrMalformedTree, name)
			}
			f, err = treeInteger(el, kind, scope.format)
		}
		if err != nil {
			return err
		}
		if t.Field(f.FieldName()) != nil {
			return fmt.Errorf("%w: %s", ErrDuplicateField, f.FieldName())
		}
		t.AddField(f)
	}
	return nil
}

func treeInteger(n tree.Node, kind schema.IntegerKind, format decode.Format) (schema.Field, error) {
	name, err := nameAttribute(n)
	if err != nil {
		return nil, err
	}
	f := schema.NewInteger(name, kind.Width, kind.Signed, format)
	if f.Requirement, err = treeRequirement(n); err != nil {
		return nil, err
	}
	return f, nil
}

func treeString(n tree.Node) (schema.Field, error) {
	name, err := nameAttribute(n)
	if err != nil {
		return nil, err
	}
	f := schema.NewString(name)
	if f.Length, err = treeLength(n); err != nil {
		return nil, err
	}
	if f.Requirement, err = treeRequirement(n); err != nil {
		return nil, err
	}
	return f, nil
}

func treeArray(n tree.Node, format decode.Format) (schema.Field, error) {
	name, err := nameAttribute(n)
	if err != nil {
		return nil, err
	}
	of, ok := n.Attribute("of")
	if !ok {
		return nil, fmt.Errorf("%w: array %q has no element type", ErrMalformedTree, name)
	}
	kind, ok := schema.LookupIntegerKind(of)
	if !ok {
		return nil, fmt.Errorf("%w: array %q: %q", ErrExpectedElementType, name, of)
	}
	f := schema.NewArray(name, schema.NewInteger(name, kind.Width, kind.Signed, format))
	if f.Length, err = treeLength(n); err != nil {
		return nil, err
	}
	if tree.Children(n) != nil {
		return nil, fmt.Errorf("%w: array %q", ErrRequireOnlyForSimpleValues, name)
	}
	return f, nil
}

// treeLength decodes a length attribute: "$name" is a previously read
// field, "@name" a caller parameter, anything else a literal. No attribute
// means the data is zero terminated.
func treeLength(n tree.Node) (schema.LengthSpec, error) {
	v, ok := n.Attribute("length")
	if !ok {
		return schema.NullTerminated{}, nil
	}
	switch {
	case v == "", v == "$", v == "@":
		return nil, fmt.Errorf("%w: empty length on %q", ErrMalformedTree, n.Name())
	case v[0] == '$':
		return schema.Prestated{Field: v[1:]}, nil
	case v[0] == '@':
		return schema.UserSupplied{Param: v[1:]}, nil
	default:
		return schema.Fixed{Expr: v}, nil
	}
}

// treeRequirement reads the optional require child. When several relation
// attributes are present the last one wins.
func treeRequirement(n tree.Node) (*schema.Requirement, error) {
	var req *schema.Requirement
	for _, el := range tree.Children(n) {
		if el.Name() != "require" {
			return nil, fmt.Errorf("%w: unexpected element %q in %q", ErrMalformedTree, el.Name(), n.Name())
		}
		req = nil
		for _, a := range el.Attributes() {
			if rel, ok := relationAttributes[a.Key]; ok {
				req = &schema.Requirement{Relation: rel, Literal: a.Value}
			}
		}
		if req == nil {
			return nil, fmt.Errorf("%w: require without a relation", ErrMalformedTree)
		}
	}
	return req, nil
}

// treeFormat applies the end and neg attributes of a format element to base.
func treeFormat(n tree.Node, base decode.Format) (decode.Format, error) {
	f := base
	for _, a := range n.Attributes() {
		switch a.Key {
		case "end":
			order, ok := byteOrderWords[a.Value]
			if !ok {
				return base, fmt.Errorf("%w: end=%q", ErrInvalidFormatSpecifier, a.Value)
			}
			f.Order = order
		case "neg":
			neg, ok := negativeWords[a.Value]
			if !ok {
				return base, fmt.Errorf("%w: neg=%q", ErrInvalidFormatSpecifier, a.Value)
			}
			f.Negative = neg
		}
	}
	return f, nil
}

func nameAttribute(n tree.Node) (string, error) {
	name, ok := n.Attribute("name")
	if !ok {
		return "", fmt.Errorf("%w: %q has no name attribute", ErrMalformedTree, n.Name())
	}
	if !schema.IsIdentifier(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidIdentifier, name)
	}
	return name, nil
}


// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

// Package jsonschema describes decoded records as JSON Schema documents, so
// tools consuming the parsers' output as JSON can validate it.
package jsonschema

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Helios-vmg/Xabin/internal/schema"
	"github.com/Helios-vmg/Xabin/internal/translate"
	"github.com/google/jsonschema-go/jsonschema"
)

// Draft is the JSON Schema dialect of emitted documents.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// Translator generates JSON Schema.
type Translator struct{}

// Name returns "jsonschema".
func (t *Translator) Name() string {
	return "jsonschema"
}

// FileExtension returns the file extension for JSON Schema files.
func (t *Translator) FileExtension() string {
	return ".schema.json"
}

// GenerateDeclarations emits a JSON object mapping each qualified type name
// to its record schema.
func (t *Translator) GenerateDeclarations(types []*schema.Type, opts translate.Options) ([]byte, error) {
	defs, err := Defs(types, opts)
	if err != nil {
		return nil, err
	}
	return marshal(defs)
}

// GenerateDefinitions emits the root schema, which accepts any of the
// declared records.
func (t *Translator) GenerateDefinitions(types []*schema.Type, opts translate.Options) ([]byte, error) {
	return marshal(root(types))
}

// Translate emits a complete JSON Schema document.
func (t *Translator) Translate(types []*schema.Type, opts translate.Options) ([]byte, error) {
	defs, err := Defs(types, opts)
	if err != nil {
		return nil, err
	}
	doc := root(types)
	doc.Schema = Draft
	doc.Defs = defs
	if len(opts.Sources) > 0 {
		doc.Comment = "generated by xabin from " + strings.Join(opts.Sources, ", ")
	}
	return marshal(doc)
}

// DefName is the $defs key of t.
func DefName(t *schema.Type) string {
	return t.QualifiedName(".")
}

func root(types []*schema.Type) *jsonschema.Schema {
	s := &jsonschema.Schema{}
	for _, t := range types {
		s.AnyOf = append(s.AnyOf, &jsonschema.Schema{Ref: "#/$defs/" + DefName(t)})
	}
	return s
}

// Defs builds one record schema per type.
func Defs(types []*schema.Type, opts translate.Options) (map[string]*jsonschema.Schema, error) {
	defs := make(map[string]*jsonschema.Schema, len(types))
	for _, t := range types {
		s, err := Record(t, opts.Mode)
		if err != nil {
			return nil, fmt.Errorf("type %s: %w", t.QualifiedName("::"), err)
		}
		defs[DefName(t)] = s
	}
	return defs, nil
}

// Record describes the decoded form of t. Properties use the schema field
// names; the read order is recorded in $comment.
func Record(t *schema.Type, mode translate.ErrorMode) (*jsonschema.Schema, error) {
	s := &jsonschema.Schema{
		Type:       "object",
		Title:      t.QualifiedName("::"),
		Properties: make(map[string]*jsonschema.Schema, len(t.Fields)),
	}

	order := make([]string, 0, len(t.Fields))
	for _, f := range t.Fields {
		p, err := property(f)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.FieldName(), err)
		}
		s.Properties[f.FieldName()] = p
		s.Required = append(s.Required, f.FieldName())
		order = append(order, f.FieldName())
	}
	if mode == translate.StatusCode {
		if _, ok := s.Properties["ok"]; ok {
			return nil, fmt.Errorf("field ok collides with the status flag")
		}
		s.Properties["ok"] = &jsonschema.Schema{Type: "boolean"}
		s.Required = append(s.Required, "ok")
	}
	if len(order) > 0 {
		s.Comment = "read order: " + strings.Join(order, ", ")
	}
	return s, nil
}

func property(f schema.Field) (*jsonschema.Schema, error) {
	switch f := f.(type) {
	case *schema.IntegerField:
		return integer(f), nil
	case *schema.StringField:
		s := &jsonschema.Schema{Type: "string", Description: lengthDescription(f.Length)}
		if n, ok := fixedLength(f.Length); ok {
			s.MinLength, s.MaxLength = &n, &n
		}
		applyStringRequirement(s, f.Requirement)
		return s, nil
	case *schema.ArrayField:
		s := &jsonschema.Schema{Type: "array", Items: integer(f.Element), Description: lengthDescription(f.Length)}
		if n, ok := fixedLength(f.Length); ok {
			s.MinItems, s.MaxItems = &n, &n
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported field %T", f)
	}
}

func integer(f *schema.IntegerField) *jsonschema.Schema {
	kind := schema.IntegerKind{Width: f.Width, Signed: f.Signed}
	lo, hi := bounds(f)
	s := &jsonschema.Schema{
		Type:        "integer",
		Description: kind.Keyword() + " " + f.Format.String(),
		Minimum:     &lo,
		Maximum:     &hi,
	}
	if f.Requirement != nil {
		applyIntegerRequirement(s, *f.Requirement)
	}
	return s
}

func bounds(f *schema.IntegerField) (float64, float64) {
	bits := f.Bits()
	if f.Signed {
		return -math.Ldexp(1, bits-1), math.Ldexp(1, bits-1) - 1
	}
	return 0, math.Ldexp(1, bits) - 1
}

// integerLiteral parses a decimal, hex, octal or binary literal.
func integerLiteral(lit string) (any, float64, bool) {
	if v, err := strconv.ParseInt(lit, 0, 64); err == nil {
		return v, float64(v), true
	}
	if v, err := strconv.ParseUint(lit, 0, 64); err == nil {
		return v, float64(v), true
	}
	return nil, 0, false
}

// applyIntegerRequirement narrows s to the values r accepts. Literals that
// are not plain integers are only described.
func applyIntegerRequirement(s *jsonschema.Schema, r schema.Requirement) {
	c, lit, ok := integerLiteral(r.Literal)
	if !ok {
		s.Description += "; requires " + r.Relation.String() + " " + r.Literal
		return
	}
	switch r.Relation {
	case schema.Eq:
		s.Const = &c
	case schema.Neq:
		s.Not = &jsonschema.Schema{Const: &c}
	case schema.Lt:
		s.ExclusiveMaximum = &lit
	case schema.Gt:
		s.ExclusiveMinimum = &lit
	case schema.Leq:
		if lit < *s.Maximum {
			s.Maximum = &lit
		}
	case schema.Geq:
		if lit > *s.Minimum {
			s.Minimum = &lit
		}
	}
}

func applyStringRequirement(s *jsonschema.Schema, r *schema.Requirement) {
	if r == nil {
		return
	}
	lit := r.Literal
	if unq, err := strconv.Unquote(lit); err == nil {
		lit = unq
	}
	var c any = lit
	switch r.Relation {
	case schema.Eq:
		s.Const = &c
	case schema.Neq:
		s.Not = &jsonschema.Schema{Const: &c}
	default:
		s.Description += "; requires " + r.Relation.String() + " " + strconv.Quote(lit)
	}
}

func fixedLength(l schema.LengthSpec) (int, bool) {
	f, ok := l.(schema.Fixed)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(f.Expr)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func lengthDescription(l schema.LengthSpec) string {
	switch l := l.(type) {
	case schema.Fixed:
		return "length " + l.Expr
	case schema.Prestated:
		return "length from field " + l.Field
	case schema.UserSupplied:
		return "length from parameter " + l.Param
	case schema.NullTerminated:
		return "zero terminated"
	default:
		return ""
	}
}

func marshal(v any) ([]byte, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return append(out, '\n'), nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

// Package schema is the in-memory model of a compiled binary record schema.
package schema

import (
	"strings"

	"github.com/Helios-vmg/Xabin/pkg/decode"
)

// Relation is the comparison a Requirement applies to a decoded value.
type Relation uint8

const (
	Eq Relation = iota
	Neq
	Lt
	Gt
	Leq
	Geq
)

// String returns the relational operator as written in the domain language.
func (r Relation) String() string {
	switch r {
	case Eq:
		return "=="
	case Neq:
		return "!="
	case Lt:
		return "<"
	case Gt:
		return ">"
	case Leq:
		return "<="
	case Geq:
		return ">="
	default:
		return "?"
	}
}

// Requirement asserts a relation between a just-read value and a literal.
type Requirement struct {
	Relation Relation
	Literal  string
}

// LengthSpec determines how many bytes or elements a variable-size field occupies.
// It is one of Fixed, Prestated, UserSupplied or NullTerminated.
type LengthSpec interface {
	isLengthSpec()
}

// Fixed is a literal or constant-expression count.
type Fixed struct{ Expr string }

// Prestated names a previously declared field that holds the count.
type Prestated struct{ Field string }

// UserSupplied names a parameter the caller passes at parse time.
type UserSupplied struct{ Param string }

// NullTerminated runs until a zero terminator.
type NullTerminated struct{}

func (Fixed) isLengthSpec()          {}
func (Prestated) isLengthSpec()      {}
func (UserSupplied) isLengthSpec()   {}
func (NullTerminated) isLengthSpec() {}

// Field is one named member of a record type: *IntegerField, *StringField or
// *ArrayField.
type Field interface {
	FieldName() string
	SetName(name string)
	isField()
}

// IntegerField is a fixed-width integer. Format is a copy of the numeric
// format in effect when the field was declared.
type IntegerField struct {
	Name        string
	Width       int // bytes: 1, 2, 4 or 8
	Signed      bool
	Format      decode.Format
	Requirement *Requirement
}

// StringField is a byte string whose size is given by Length.
type StringField struct {
	Name        string
	Length      LengthSpec
	Requirement *Requirement
}

// ArrayField is a homogeneous sequence of integers whose count is given by Length.
type ArrayField struct {
	Name    string
	Element *IntegerField
	Length  LengthSpec
}

// NewInteger returns an integer field of width bytes using format f.
func NewInteger(name string, width int, signed bool, f decode.Format) *IntegerField {
	return &IntegerField{Name: name, Width: width, Signed: signed, Format: f}
}

// NewString returns a string field with no length yet.
func NewString(name string) *StringField {
	return &StringField{Name: name}
}

// NewArray returns an array of elem with no length yet.
func NewArray(name string, elem *IntegerField) *ArrayField {
	return &ArrayField{Name: name, Element: elem}
}

func (f *IntegerField) FieldName() string { return f.Name }
func (f *StringField) FieldName() string  { return f.Name }
func (f *ArrayField) FieldName() string   { return f.Name }

func (f *IntegerField) SetName(name string) { f.Name = name }
func (f *StringField) SetName(name string)  { f.Name = name }
func (f *ArrayField) SetName(name string)   { f.Name = name }

func (*IntegerField) isField() {}
func (*StringField) isField()  {}
func (*ArrayField) isField()   {}

// Bits returns the width of the integer in bits.
func (f *IntegerField) Bits() int {
	return f.Width * 8
}

// Type is a compiled record type. Fields are kept in declaration order, which
// is also read order.
type Type struct {
	Namespace []string
	Name      string
	Fields    []Field
}

// NewType returns an empty type in namespace ns. The namespace path is copied.
func NewType(ns []string, name string) *Type {
	return &Type{Namespace: append([]string(nil), ns...), Name: name}
}

// AddField appends f to the type's field sequence.
func (t *Type) AddField(f Field) {
	t.Fields = append(t.Fields, f)
}

// Field returns the field called name, or nil.
func (t *Type) Field(name string) Field {
	for _, f := range t.Fields {
		if f.FieldName() == name {
			return f
		}
	}
	return nil
}

// QualifiedName joins the namespace path and the type name with sep.
func (t *Type) QualifiedName(sep string) string {
	parts := append(append([]string(nil), t.Namespace...), t.Name)
	return strings.Join(parts, sep)
}

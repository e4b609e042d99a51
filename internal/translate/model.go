// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

package translate

import "github.com/Helios-vmg/Xabin/internal/schema"

// SchemaData is the complete input passed to a generator template.
type SchemaData struct {
	Types   []TypeDef
	Mode    ErrorMode
	Sources []string
	Extra   map[string]any // generator-specific template data
}

// StatusCode reports whether the data was prepared for status-code output.
func (d *SchemaData) StatusCode() bool { return d.Mode == StatusCode }

// HasReads reports whether any type reads at least one field.
func (d *SchemaData) HasReads() bool {
	for _, t := range d.Types {
		if len(t.Reads) > 0 {
			return true
		}
	}
	return false
}

// TypeDef is one record type, resolved for a target language.
type TypeDef struct {
	Name      string   // formatted type name
	Namespace []string // namespace path, outermost first
	Close     []string // namespace path in closing order
	Qualified string   // schema name joined with "::"

	Groups  []Group  // integer declarations in layout order
	Members []Member // non-integer declarations in declaration order
	Reads   []Read   // fields in declaration order
	Params  []string // user-supplied length parameters, deduplicated

	Schema *schema.Type
}

// Group is one combined integer declaration.
type Group struct {
	Type  string
	Names []string
}

// Member is a non-integer declaration.
type Member struct {
	Name string
	Type string
}

// ReadKind identifies how a field is read.
type ReadKind uint8

const (
	ReadInteger ReadKind = iota
	ReadString
	ReadArray
)

// LengthKind mirrors the schema length variants for templates.
type LengthKind uint8

const (
	LengthNone LengthKind = iota
	LengthFixed
	LengthPrestated
	LengthUser
	LengthTerminated
)

// Read is a single read step of a parsing constructor.
type Read struct {
	Field  string // schema field name
	Name   string // formatted member name
	Kind   ReadKind
	Type   string // target type of the integer or array element
	Width  int
	Bits   int
	Signed bool

	Order    string // byte order keyword, e.g. "little"
	Negative string // negative encoding keyword, e.g. "twoscomp"

	Length     LengthKind
	LengthExpr string // resolved length expression, empty when terminated

	// Check is the resolved requirement expression; empty if none.
	Check string
}

func (r Read) IsInteger() bool    { return r.Kind == ReadInteger }
func (r Read) IsString() bool     { return r.Kind == ReadString }
func (r Read) IsArray() bool      { return r.Kind == ReadArray }
func (r Read) IsTerminated() bool { return r.Length == LengthTerminated }

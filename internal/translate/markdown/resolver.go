// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

// Package markdown documents record layouts and read order as markdown.
package markdown

import (
	"strings"

	"github.com/Helios-vmg/Xabin/internal/schema"
)

// resolver keeps schema spellings: integer keywords, $field and @param.
type resolver struct{}

func (r *resolver) IntegerType(width int, signed bool) string {
	return schema.IntegerKind{Width: width, Signed: signed}.Keyword()
}

func (r *resolver) StringType() string {
	return "string"
}

func (r *resolver) ArrayType(elemType string) string {
	return elemType + "[]"
}

func (r *resolver) FormatTypeName(namespace []string, name string) string {
	return strings.Join(append(append([]string(nil), namespace...), name), "::")
}

func (r *resolver) FormatFieldName(name string) string {
	return name
}

func (r *resolver) FormatParamName(name string) string {
	return "@" + name
}

func (r *resolver) LengthExpr(l schema.LengthSpec) string {
	switch l := l.(type) {
	case schema.Fixed:
		return l.Expr
	case schema.Prestated:
		return "$" + l.Field
	default:
		return ""
	}
}

func (r *resolver) CheckExpr(member string, _ bool, req schema.Requirement) string {
	return escapeCell(member + " " + req.Relation.String() + " " + req.Literal)
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

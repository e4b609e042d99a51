// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

package golang

import (
	"go/token"
	"strconv"
	"strings"

	"github.com/Helios-vmg/Xabin/internal/schema"
	"github.com/Helios-vmg/Xabin/internal/translate"
)

type resolver struct{}

func (r *resolver) IntegerType(width int, signed bool) string {
	prefix := "uint"
	if signed {
		prefix = "int"
	}
	return prefix + strconv.Itoa(width*8)
}

func (r *resolver) StringType() string {
	return "string"
}

func (r *resolver) ArrayType(elemType string) string {
	return "[]" + elemType
}

// FormatTypeName folds the namespace path into the name, since a Go file
// has a single flat scope.
func (r *resolver) FormatTypeName(namespace []string, name string) string {
	var sb strings.Builder
	for _, ns := range namespace {
		sb.WriteString(translate.PascalCase(ns))
	}
	sb.WriteString(translate.PascalCase(name))
	return sb.String()
}

func (r *resolver) FormatFieldName(name string) string {
	return translate.PascalCase(name)
}

// reservedParams are the identifiers used by the emitted functions themselves.
var reservedParams = map[string]bool{"r": true, "t": true, "s": true, "decode": true, "io": true}

func (r *resolver) FormatParamName(name string) string {
	p := translate.CamelCase(name)
	if reservedParams[p] || token.IsKeyword(p) {
		p += "_"
	}
	return p
}

func (r *resolver) LengthExpr(l schema.LengthSpec) string {
	switch l := l.(type) {
	case schema.Fixed:
		return l.Expr
	case schema.Prestated:
		return "int(t." + r.FormatFieldName(l.Field) + ")"
	default:
		return ""
	}
}

func (r *resolver) CheckExpr(member string, str bool, req schema.Requirement) string {
	lit := req.Literal
	if str && !isQuoted(lit) {
		lit = strconv.Quote(lit)
	}
	return "t." + member + " " + req.Relation.String() + " " + lit
}

func isQuoted(s string) bool {
	if len(s) < 2 {
		return false
	}
	q := s[0]
	return (q == '"' || q == '`') && s[len(s)-1] == q
}

var orderNames = map[string]string{
	"little": "decode.LittleEndian",
	"big":    "decode.BigEndian",
}

var negativeNames = map[string]string{
	"twoscomp":      "decode.TwosComplement",
	"onescomp":      "decode.OnesComplement",
	"signbit":       "decode.SignMagnitude",
	"excesskbiased": "decode.ExcessK",
}

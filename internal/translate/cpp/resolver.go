// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

package cpp

import (
	"strconv"
	"strings"

	"github.com/Helios-vmg/Xabin/internal/schema"
)

type resolver struct{}

func (r *resolver) IntegerType(width int, signed bool) string {
	prefix := "uint"
	if signed {
		prefix = "int"
	}
	return prefix + strconv.Itoa(width*8) + "_t"
}

func (r *resolver) StringType() string {
	return "std::string"
}

func (r *resolver) ArrayType(elemType string) string {
	return "std::vector<" + elemType + ">"
}

// FormatTypeName keeps the bare name; namespaces become namespace blocks.
func (r *resolver) FormatTypeName(_ []string, name string) string {
	return name
}

func (r *resolver) FormatFieldName(name string) string {
	return name
}

func (r *resolver) FormatParamName(name string) string {
	if name == "stream" {
		return "stream_"
	}
	return name
}

func (r *resolver) LengthExpr(l schema.LengthSpec) string {
	switch l := l.(type) {
	case schema.Fixed:
		return l.Expr
	case schema.Prestated:
		return "this->" + l.Field
	default:
		return ""
	}
}

func (r *resolver) CheckExpr(member string, str bool, req schema.Requirement) string {
	lit := req.Literal
	if str && !strings.HasPrefix(lit, `"`) {
		lit = strconv.Quote(lit)
	}
	return "this->" + member + " " + req.Relation.String() + " " + lit
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

package translate

import "github.com/Helios-vmg/Xabin/internal/schema"

// TypeResolver converts schema types to target-language type strings and naming conventions.
// Each generator implements this interface to control how schemas map to its output format.
type TypeResolver interface {
	// IntegerType returns the target type of an integer of width bytes.
	IntegerType(width int, signed bool) string

	// StringType returns the target string type.
	StringType() string

	// ArrayType wraps an element type string in an array type.
	ArrayType(elemType string) string

	// FormatTypeName formats a record name, given its namespace path.
	FormatTypeName(namespace []string, name string) string

	// FormatFieldName formats a schema field name as a member name.
	FormatFieldName(name string) string

	// FormatParamName formats a user-supplied length parameter.
	FormatParamName(name string) string

	// LengthExpr renders a fixed or prestated length as an integer
	// expression. Prestated lengths name a schema field.
	LengthExpr(l schema.LengthSpec) string

	// CheckExpr renders the requirement r applied to the member called
	// member. str reports whether the member is a string.
	CheckExpr(member string, str bool, r schema.Requirement) string
}

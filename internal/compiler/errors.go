// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

package compiler

import (
	"errors"
	"fmt"
)

// Errors reported while compiling a schema. All of them stop compilation.
var (
	ErrFileNotFound                = errors.New("file not found")
	ErrFile                        = errors.New("file could not be read")
	ErrUnknownTree                 = errors.New("unknown tree document error")
	ErrMalformedTree               = errors.New("malformed tree structure")
	ErrInvalidFormatSpecifier      = errors.New("invalid format specifier")
	ErrSyntax                      = errors.New("syntax error")
	ErrExtraneousEnd               = errors.New("extraneous end")
	ErrExpectedIdentifier          = errors.New("expected identifier")
	ErrInvalidIdentifier           = errors.New("invalid identifier")
	ErrUnknownToken                = errors.New("unknown token")
	ErrExpectedRelationalOperator  = errors.New("expected relational operator")
	ErrExpectedValue               = errors.New("expected value")
	ErrDatumNotProperlyDefined     = errors.New("datum not properly defined")
	ErrExpectedLengthSpecification = errors.New("expected length specification")
	ErrInvalidLengthSpecification  = errors.New("invalid length specification")
	ErrExpectedLengthValue         = errors.New("expected length value")
	ErrExpectedLengthName          = errors.New("expected length name")
	ErrRequireOnlyForSimpleValues  = errors.New("require is only allowed on integers and strings")
	ErrExpectedElementType         = errors.New("expected array element type")
	ErrDuplicateField              = errors.New("duplicate field name")
	ErrFieldOutsideType            = errors.New("field declared outside of a type")
	ErrUnterminatedScope           = errors.New("begin without matching end")
)

// LineError locates a domain-language error.
type LineError struct {
	Path string
	Line int
	// Word is the token being consumed when the error was raised, if any.
	Word string
	Err  error
}

func (e *LineError) Error() string {
	msg := fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
	if e.Word != "" {
		msg += fmt.Sprintf(" (at %q)", e.Word)
	}
	return msg
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

package decode

import (
	"fmt"
)

// Status reports the outcome of a read in status-code mode.
type Status uint8

const (
	// Success means the value was read and stored.
	Success Status = iota
	// UnexpectedEOF means fewer bytes were available than the field needs.
	UnexpectedEOF
	// RequirementNotMet means a field's require clause rejected the value.
	RequirementNotMet
	// AllocationError means the buffer for a variable-size field could not be acquired.
	AllocationError
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case UnexpectedEOF:
		return "unexpected end of input"
	case RequirementNotMet:
		return "requirement not met"
	case AllocationError:
		return "allocation error"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// Err converts the status into an error, or nil for Success.
func (s Status) Err() error {
	if s == Success {
		return nil
	}
	return &Error{Status: s}
}

// Error is the error value raised by the Must functions and returned by Catch.
type Error struct {
	Status Status
	// Field names the schema field being read, when known.
	Field string
	// Err is the underlying I/O error, if any.
	Err error
}

// Sentinel errors for use with errors.Is. Matching compares only the status.
var (
	ErrUnexpectedEOF     = &Error{Status: UnexpectedEOF}
	ErrRequirementNotMet = &Error{Status: RequirementNotMet}
	ErrAllocation        = &Error{Status: AllocationError}
)

// Fail builds the error raised when field fails with status.
func Fail(status Status, field string) *Error {
	return &Error{Status: status, Field: field}
}

func (e *Error) Error() string {
	msg := e.Status.String()
	if e.Field != "" {
		msg = e.Field + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same status.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Status == e.Status
}

// Catch runs fn and recovers a panic raised by one of the Must functions,
// returning it as an error. Any other panic is propagated.
func Catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(*Error)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()
	fn()
	return nil
}

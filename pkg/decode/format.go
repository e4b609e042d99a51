// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

// Package decode is the runtime used by parsers generated by xabin.
//
// It implements the two byte orders and four negative-number encodings a
// schema can declare, and the read routines emitted parsing code calls. Each
// routine comes in two flavors matching the generator's error modes: ReadX
// writes through a pointer and returns a Status, MustX returns the value and
// panics with an *Error that Catch turns back into an error.
package decode

import "fmt"

// ByteOrder selects how the bytes of a multi-byte integer are accumulated.
type ByteOrder uint8

const (
	// LittleEndian accumulates the least significant byte first.
	LittleEndian ByteOrder = iota
	// BigEndian accumulates the most significant byte first.
	BigEndian
)

// String returns the schema keyword for the byte order.
func (o ByteOrder) String() string {
	switch o {
	case LittleEndian:
		return "little"
	case BigEndian:
		return "big"
	default:
		return fmt.Sprintf("ByteOrder(%d)", uint8(o))
	}
}

// NegativeEncoding selects how a signed value is mapped onto its bit pattern.
type NegativeEncoding uint8

const (
	// TwosComplement is the usual machine representation.
	TwosComplement NegativeEncoding = iota
	// OnesComplement stores negatives as the bitwise inverse of the magnitude.
	OnesComplement
	// SignMagnitude stores the sign in the top bit and the magnitude below it.
	SignMagnitude
	// ExcessK stores the value plus a bias of 2^(N-1).
	ExcessK
)

// String returns the schema keyword for the encoding.
func (e NegativeEncoding) String() string {
	switch e {
	case TwosComplement:
		return "twoscomp"
	case OnesComplement:
		return "onescomp"
	case SignMagnitude:
		return "signbit"
	case ExcessK:
		return "excesskbiased"
	default:
		return fmt.Sprintf("NegativeEncoding(%d)", uint8(e))
	}
}

// Format is the pair of byte order and negative encoding governing how an
// integer field is decoded. The zero value is little-endian two's complement.
type Format struct {
	Order    ByteOrder
	Negative NegativeEncoding
}

// String renders the format the way a schema "format" line spells it.
func (f Format) String() string {
	return f.Order.String() + " " + f.Negative.String()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

package decode

import (
	"io"
)

// Integer is the set of fixed-width integer types a schema field can decode to.
type Integer interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64
}

// MaxLength bounds the byte or element count of a single variable-size read.
// Larger requests fail with AllocationError instead of allocating.
var MaxLength = 1 << 28

func kindOf[T Integer]() (width int, signed bool) {
	var zero T
	switch any(zero).(type) {
	case int8:
		return 1, true
	case uint8:
		return 1, false
	case int16:
		return 2, true
	case uint16:
		return 2, false
	case int32:
		return 4, true
	case uint32:
		return 4, false
	case int64:
		return 8, true
	default:
		return 8, false
	}
}

func readInt[T Integer](r io.Reader, order ByteOrder, neg NegativeEncoding) (T, error) {
	width, signed := kindOf[T]()
	raw, err := DecodeUnsigned(r, width, order)
	if err != nil {
		return 0, err
	}
	if !signed {
		return T(raw), nil
	}
	return T(ApplySign(raw, neg, width*8)), nil
}

// ReadInt decodes one integer into dst. The negative encoding is ignored for
// unsigned types.
func ReadInt[T Integer](dst *T, r io.Reader, order ByteOrder, neg NegativeEncoding) Status {
	v, err := readInt[T](r, order, neg)
	if err != nil {
		return UnexpectedEOF
	}
	*dst = v
	return Success
}

// MustInt is ReadInt for exception mode.
func MustInt[T Integer](r io.Reader, order ByteOrder, neg NegativeEncoding) T {
	v, err := readInt[T](r, order, neg)
	if err != nil {
		panic(err)
	}
	return v
}

func readSized(r io.Reader, n int) ([]byte, error) {
	if n < 0 || n > MaxLength {
		return nil, ErrAllocation
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, &Error{Status: UnexpectedEOF, Err: err}
	}
	return buf, nil
}

func readTerminated(r io.Reader) ([]byte, error) {
	var (
		out []byte
		b   [1]byte
	)
	for {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return nil, &Error{Status: UnexpectedEOF, Err: err}
		}
		if b[0] == 0 {
			return out, nil
		}
		if len(out) == MaxLength {
			return nil, ErrAllocation
		}
		out = append(out, b[0])
	}
}

func statusOf(err error) Status {
	if e, ok := err.(*Error); ok {
		return e.Status
	}
	return UnexpectedEOF
}

// ReadSizedString reads exactly n bytes into dst.
func ReadSizedString(dst *string, r io.Reader, n int) Status {
	b, err := readSized(r, n)
	if err != nil {
		return statusOf(err)
	}
	*dst = string(b)
	return Success
}

// MustSizedString is ReadSizedString for exception mode.
func MustSizedString(r io.Reader, n int) string {
	b, err := readSized(r, n)
	if err != nil {
		panic(err)
	}
	return string(b)
}

// ReadCString reads bytes up to and including a NUL terminator. The
// terminator is not stored.
func ReadCString(dst *string, r io.Reader) Status {
	b, err := readTerminated(r)
	if err != nil {
		return statusOf(err)
	}
	*dst = string(b)
	return Success
}

// MustCString is ReadCString for exception mode.
func MustCString(r io.Reader) string {
	b, err := readTerminated(r)
	if err != nil {
		panic(err)
	}
	return string(b)
}

func readArray[T Integer](r io.Reader, n int, order ByteOrder, neg NegativeEncoding) ([]T, error) {
	if n < 0 || n > MaxLength {
		return nil, ErrAllocation
	}
	out := make([]T, n)
	for i := range out {
		v, err := readInt[T](r, order, neg)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func readTerminatedArray[T Integer](r io.Reader, order ByteOrder, neg NegativeEncoding) ([]T, error) {
	var out []T
	for {
		v, err := readInt[T](r, order, neg)
		if err != nil {
			return nil, err
		}
		if v == 0 {
			return out, nil
		}
		if len(out) == MaxLength {
			return nil, ErrAllocation
		}
		out = append(out, v)
	}
}

// ReadArray reads n integers into dst.
func ReadArray[T Integer](dst *[]T, r io.Reader, n int, order ByteOrder, neg NegativeEncoding) Status {
	v, err := readArray[T](r, n, order, neg)
	if err != nil {
		return statusOf(err)
	}
	*dst = v
	return Success
}

// MustArray is ReadArray for exception mode.
func MustArray[T Integer](r io.Reader, n int, order ByteOrder, neg NegativeEncoding) []T {
	v, err := readArray[T](r, n, order, neg)
	if err != nil {
		panic(err)
	}
	return v
}

// ReadTerminatedArray reads integers until one decodes to zero. The
// terminating element is consumed but not stored.
func ReadTerminatedArray[T Integer](dst *[]T, r io.Reader, order ByteOrder, neg NegativeEncoding) Status {
	v, err := readTerminatedArray[T](r, order, neg)
	if err != nil {
		return statusOf(err)
	}
	*dst = v
	return Success
}

// MustTerminatedArray is ReadTerminatedArray for exception mode.
func MustTerminatedArray[T Integer](r io.Reader, order ByteOrder, neg NegativeEncoding) []T {
	v, err := readTerminatedArray[T](r, order, neg)
	if err != nil {
		panic(err)
	}
	return v
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

package decode

import (
	"fmt"
	"io"
)

// Unsigned accumulates b into an unsigned integer using order.
// Big-endian takes b[0] as the most significant byte; little-endian takes it
// as the least significant one.
func Unsigned(b []byte, order ByteOrder) uint64 {
	var v uint64
	if order == BigEndian {
		for _, c := range b {
			v = v<<8 | uint64(c)
		}
		return v
	}
	for i := len(b) - 1; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}

// PutUnsigned stores the low len(b) bytes of v into b using order.
func PutUnsigned(b []byte, v uint64, order ByteOrder) {
	if order == BigEndian {
		for i := len(b) - 1; i >= 0; i-- {
			b[i] = byte(v)
			v >>= 8
		}
		return
	}
	for i := range b {
		b[i] = byte(v)
		v >>= 8
	}
}

// DecodeUnsigned reads exactly width bytes from r and accumulates them using
// order. A short read fails with an error matching ErrUnexpectedEOF.
func DecodeUnsigned(r io.Reader, width int, order ByteOrder) (uint64, error) {
	if width < 1 || width > 8 {
		panic(fmt.Sprintf("decode: invalid integer width %d", width))
	}
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:width]); err != nil {
		return 0, &Error{Status: UnexpectedEOF, Err: err}
	}
	return Unsigned(buf[:width], order), nil
}

func widthMask(bits int) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<bits - 1
}

func signExtend(raw uint64, bits int) int64 {
	shift := 64 - bits
	return int64(raw<<shift) >> shift
}

func checkBits(bits int) {
	if bits < 1 || bits > 64 {
		panic(fmt.Sprintf("decode: invalid bit width %d", bits))
	}
}

// ApplySign interprets the low widthBits bits of raw as a signed value under enc.
//
// The all-ones pattern under OnesComplement decodes to 0, the same as all
// zeroes; no negative zero is distinguished.
func ApplySign(raw uint64, enc NegativeEncoding, widthBits int) int64 {
	checkBits(widthBits)
	raw &= widthMask(widthBits)
	top := uint64(1) << (widthBits - 1)

	switch enc {
	case OnesComplement:
		if raw&top == 0 {
			return int64(raw)
		}
		// raw - (2^N - 1)
		return signExtend(raw, widthBits) + 1
	case SignMagnitude:
		if raw&top == 0 {
			return int64(raw)
		}
		return -int64(raw &^ top)
	case ExcessK:
		return int64(raw - top)
	default:
		return signExtend(raw, widthBits)
	}
}

// EncodeSigned is the inverse of ApplySign: it returns the widthBits-bit
// pattern that represents v under enc. Values outside the encoding's range
// are truncated to the width.
func EncodeSigned(v int64, enc NegativeEncoding, widthBits int) uint64 {
	checkBits(widthBits)
	mask := widthMask(widthBits)
	top := uint64(1) << (widthBits - 1)

	switch enc {
	case OnesComplement:
		if v >= 0 {
			return uint64(v) & mask
		}
		return uint64(v-1) & mask
	case SignMagnitude:
		if v >= 0 {
			return uint64(v) & mask
		}
		return (top | uint64(-v)) & mask
	case ExcessK:
		return (uint64(v) + top) & mask
	default:
		return uint64(v) & mask
	}
}

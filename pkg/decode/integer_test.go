// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

package decode

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boundary holds the expected decodings of the four boundary bit patterns
// for one width and encoding.
type boundary struct {
	zero, ones, top, bottom int64
}

func TestApplySign_Boundaries(t *testing.T) {
	tests := []struct {
		bits int
		want map[NegativeEncoding]boundary
	}{
		{
			bits: 8,
			want: map[NegativeEncoding]boundary{
				TwosComplement: {zero: 0, ones: -1, top: math.MinInt8, bottom: 1},
				OnesComplement: {zero: 0, ones: 0, top: -math.MaxInt8, bottom: 1},
				SignMagnitude:  {zero: 0, ones: -math.MaxInt8, top: 0, bottom: 1},
				ExcessK:        {zero: math.MinInt8, ones: math.MaxInt8, top: 0, bottom: math.MinInt8 + 1},
			},
		},
		{
			bits: 16,
			want: map[NegativeEncoding]boundary{
				TwosComplement: {zero: 0, ones: -1, top: math.MinInt16, bottom: 1},
				OnesComplement: {zero: 0, ones: 0, top: -math.MaxInt16, bottom: 1},
				SignMagnitude:  {zero: 0, ones: -math.MaxInt16, top: 0, bottom: 1},
				ExcessK:        {zero: math.MinInt16, ones: math.MaxInt16, top: 0, bottom: math.MinInt16 + 1},
			},
		},
		{
			bits: 32,
			want: map[NegativeEncoding]boundary{
				TwosComplement: {zero: 0, ones: -1, top: math.MinInt32, bottom: 1},
				OnesComplement: {zero: 0, ones: 0, top: -math.MaxInt32, bottom: 1},
				SignMagnitude:  {zero: 0, ones: -math.MaxInt32, top: 0, bottom: 1},
				ExcessK:        {zero: math.MinInt32, ones: math.MaxInt32, top: 0, bottom: math.MinInt32 + 1},
			},
		},
		{
			bits: 64,
			want: map[NegativeEncoding]boundary{
				TwosComplement: {zero: 0, ones: -1, top: math.MinInt64, bottom: 1},
				OnesComplement: {zero: 0, ones: 0, top: -math.MaxInt64, bottom: 1},
				SignMagnitude:  {zero: 0, ones: -math.MaxInt64, top: 0, bottom: 1},
				ExcessK:        {zero: math.MinInt64, ones: math.MaxInt64, top: 0, bottom: math.MinInt64 + 1},
			},
		},
	}

	for _, tt := range tests {
		width := tt.bits / 8
		patterns := map[string][]byte{
			"zero":   bytes.Repeat([]byte{0x00}, width),
			"ones":   bytes.Repeat([]byte{0xff}, width),
			"top":    append([]byte{0x80}, make([]byte, width-1)...),
			"bottom": append(make([]byte, width-1), 0x01),
		}
		for enc, want := range tt.want {
			t.Run(enc.String()+"/"+string(rune('0'+width)), func(t *testing.T) {
				expect := map[string]int64{
					"zero":   want.zero,
					"ones":   want.ones,
					"top":    want.top,
					"bottom": want.bottom,
				}
				for name, pattern := range patterns {
					raw, err := DecodeUnsigned(bytes.NewReader(pattern), width, BigEndian)
					require.NoError(t, err)
					assert.Equal(t, expect[name], ApplySign(raw, enc, tt.bits), name)
				}
			})
		}
	}
}

func TestApplySign_ExcessKIsUniform(t *testing.T) {
	for raw := uint64(0); raw < 256; raw++ {
		assert.Equal(t, int64(raw)-128, ApplySign(raw, ExcessK, 8))
	}
}

func TestApplySign_MasksHighBits(t *testing.T) {
	assert.Equal(t, int64(-1), ApplySign(0xffff_ffff_ffff_ffff, TwosComplement, 8))
	assert.Equal(t, int64(1), ApplySign(0x0100_0001, TwosComplement, 16))
}

func TestApplySign_InvalidWidthPanics(t *testing.T) {
	assert.Panics(t, func() { ApplySign(0, TwosComplement, 0) })
	assert.Panics(t, func() { ApplySign(0, TwosComplement, 65) })
}

func TestTwosComplement_RoundTrip(t *testing.T) {
	t.Run("8 bit exhaustive", func(t *testing.T) {
		for v := int64(math.MinInt8); v <= math.MaxInt8; v++ {
			assert.Equal(t, v, ApplySign(EncodeSigned(v, TwosComplement, 8), TwosComplement, 8))
		}
	})
	t.Run("16 bit exhaustive", func(t *testing.T) {
		for v := int64(math.MinInt16); v <= math.MaxInt16; v++ {
			require.Equal(t, v, ApplySign(EncodeSigned(v, TwosComplement, 16), TwosComplement, 16))
		}
	})
	t.Run("32 and 64 bit sampled", func(t *testing.T) {
		samples := []int64{math.MinInt64, math.MinInt32, -65537, -2, -1, 0, 1, 2, 65537, math.MaxInt32, math.MaxInt64}
		for _, v := range samples {
			if v >= math.MinInt32 && v <= math.MaxInt32 {
				assert.Equal(t, v, ApplySign(EncodeSigned(v, TwosComplement, 32), TwosComplement, 32))
			}
			assert.Equal(t, v, ApplySign(EncodeSigned(v, TwosComplement, 64), TwosComplement, 64))
		}
		for v := int64(math.MinInt32); v <= math.MaxInt32; v += 65521 {
			require.Equal(t, v, ApplySign(EncodeSigned(v, TwosComplement, 32), TwosComplement, 32))
		}
	})
}

func TestEncodeSigned_RoundTripOtherEncodings(t *testing.T) {
	for _, enc := range []NegativeEncoding{OnesComplement, SignMagnitude, ExcessK} {
		t.Run(enc.String(), func(t *testing.T) {
			lo := int64(math.MinInt16)
			if enc != ExcessK {
				lo = -math.MaxInt16
			}
			for v := lo; v <= math.MaxInt16; v++ {
				require.Equal(t, v, ApplySign(EncodeSigned(v, enc, 16), enc, 16))
			}
		})
	}
}

func TestUnsigned_ByteOrder(t *testing.T) {
	b := []byte{0x12, 0x34, 0x56, 0x78}
	assert.Equal(t, uint64(0x12345678), Unsigned(b, BigEndian))
	assert.Equal(t, uint64(0x78563412), Unsigned(b, LittleEndian))

	out := make([]byte, 4)
	PutUnsigned(out, 0x12345678, LittleEndian)
	assert.Equal(t, []byte{0x78, 0x56, 0x34, 0x12}, out)
	PutUnsigned(out, 0x12345678, BigEndian)
	assert.Equal(t, b, out)
}

func TestDecodeUnsigned_ShortRead(t *testing.T) {
	for _, width := range []int{1, 2, 4, 8} {
		for have := 0; have < width; have++ {
			_, err := DecodeUnsigned(bytes.NewReader(make([]byte, have)), width, LittleEndian)
			assert.ErrorIs(t, err, ErrUnexpectedEOF, "width %d with %d bytes", width, have)
		}
	}
}

func TestDecodeUnsigned_ConsumesExactlyWidth(t *testing.T) {
	r := bytes.NewReader([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9})
	v, err := DecodeUnsigned(r, 2, LittleEndian)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0201), v)
	assert.Equal(t, 7, r.Len())

	v, err = DecodeUnsigned(r, 4, BigEndian)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x03040506), v)
	assert.Equal(t, 3, r.Len())
}

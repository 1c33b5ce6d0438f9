// Copyright 2021 trashbyte
// Licensed under the MIT license. See license text in the LICENSE file.

package bitmath

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// MaxSize is the largest supported bit-vector width. The arithmetic and
// mask computations accumulate in 64 bits, so wider vectors are rejected
// at construction.
const MaxSize = 64

// Bits is a binary string of fixed width. Bit index 0 is the most
// significant bit and doubles as the sign bit under the signed
// interpretation.
//
// Bits is a plain value: copy it freely, compare it with ==. The width is
// set at construction and never changes. The zero Bits has width 0 and is
// not usable; build values with New or one of the From constructors.
//
type Bits struct {
	size int
	word uint64 // bits at positions >= size are always zero
}

// mask returns a word with the size low-order bits set.
func mask(size int) uint64 {
	if size >= 64 {
		return ^uint64(0)
	}
	return 1<<uint(size) - 1
}

func checkSize(size int) {
	if size < 1 || size > MaxSize {
		panic(fmt.Sprintf("bitmath: unsupported width %d (must be in [1, %d])", size, MaxSize))
	}
}

// New returns a Bits of the given width with all bits false.
// Widths outside [1, MaxSize] panic.
//
func New(size int) Bits {
	checkSize(size)
	return Bits{size: size}
}

// FromSigned builds a Bits of the given width from the two's-complement
// pattern of x. When size <= 32 the pattern is truncated from the high
// end; when size > 32 it is sign-extended.
//
func FromSigned(size int, x int32) Bits {
	checkSize(size)
	return Bits{size: size, word: uint64(x) & mask(size)}
}

// FromUnsigned builds a Bits of the given width from the bit pattern of x,
// truncating from the high end when size <= 32 and zero-extending when
// size > 32.
//
func FromUnsigned(size int, x uint32) Bits {
	checkSize(size)
	return Bits{size: size, word: uint64(x) & mask(size)}
}

// FromSlice builds a Bits of the given width from a most-significant-first
// bool sequence. The sequence length must equal size exactly; otherwise a
// WidthError is returned.
//
func FromSlice(size int, bits []bool) (Bits, error) {
	checkSize(size)
	if len(bits) != size {
		return Bits{}, &WidthError{Expected: size, Found: len(bits)}
	}
	v := Bits{size: size}
	for i, b := range bits {
		if b {
			v.word |= 1 << uint(size-1-i)
		}
	}
	return v, nil
}

// FromReverseIndex builds a Bits of the given width from the hi:lo bit
// range of a most-significant-first backing sequence. hi and lo use the
// hardware convention and count from the least-significant end, so
// position 0 names the last element of backing; their order does not
// matter. It returns ErrIndexOutOfRange when the higher position exceeds
// the backing sequence's bounds and a WidthError when the range width
// does not equal size. The selected bits are returned reindexed
// most-significant-first.
//
func FromReverseIndex(size int, backing []bool, hi, lo int) (Bits, error) {
	checkSize(size)
	high, low := hi, lo
	if high < low {
		high, low = low, high
	}
	if low < 0 || high >= len(backing) {
		return Bits{}, errors.Wrapf(ErrIndexOutOfRange,
			"bit position %d of a %d-bit sequence", high, len(backing))
	}
	if width := high - low + 1; width != size {
		return Bits{}, &WidthError{Expected: size, Found: width}
	}
	return FromSlice(size, backing[len(backing)-high-1:len(backing)-low])
}

// Parse builds a Bits of the given width from a binary literal. Whitespace
// is stripped first, so the output of PrettyBinaryString parses back. It
// returns ErrInvalidInput when a remaining character is not '0' or '1' or
// when the stripped length differs from size.
//
func Parse(size int, s string) (Bits, error) {
	checkSize(size)
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	if len(s) != size {
		return Bits{}, errors.Wrapf(ErrInvalidInput,
			"literal has %d digits, want %d", len(s), size)
	}
	v := Bits{size: size}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '1':
			v.word |= 1 << uint(size-1-i)
		case '0':
		default:
			return Bits{}, errors.Wrapf(ErrInvalidInput,
				"unexpected character %q", s[i])
		}
	}
	return v, nil
}

// Size returns the width of the vector.
//
func (v Bits) Size() int { return v.size }

func (v Bits) checkIndex(i int) {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("bitmath: bit index %d out of range for a %d-bit value", i, v.size))
	}
}

func (v Bits) checkRange(i, j int) {
	if i < 0 || j > v.size || i > j {
		panic(fmt.Sprintf("bitmath: bit range [%d, %d) out of range for a %d-bit value", i, j, v.size))
	}
}

// Bit returns bit i. Index 0 is the most significant bit. The index must
// be in [0, Size); anything else panics.
//
func (v Bits) Bit(i int) bool {
	v.checkIndex(i)
	return v.word>>uint(v.size-1-i)&1 != 0
}

// SetBit sets bit i to b, under the same index contract as Bit.
//
func (v *Bits) SetBit(i int, b bool) {
	v.checkIndex(i)
	m := uint64(1) << uint(v.size-1-i)
	if b {
		v.word |= m
	} else {
		v.word &^= m
	}
}

// Range returns a copy of bits [i, j) as a most-significant-first bool
// sequence. The range must satisfy 0 <= i <= j <= Size; anything else
// panics.
//
func (v Bits) Range(i, j int) []bool {
	v.checkRange(i, j)
	out := make([]bool, j-i)
	for k := range out {
		out[k] = v.word>>uint(v.size-1-i-k)&1 != 0
	}
	return out
}

// RangeIncl returns a copy of bits [i, j], inclusive on both ends, under
// the same contract as Range.
//
func (v Bits) RangeIncl(i, j int) []bool {
	return v.Range(i, j+1)
}

// SetRange writes bits starting at index i, so bit i+k takes the value
// bits[k]. The written range must lie within the vector; anything else
// panics.
//
func (v *Bits) SetRange(i int, bits []bool) {
	v.checkRange(i, i+len(bits))
	for k, b := range bits {
		m := uint64(1) << uint(v.size-1-i-k)
		if b {
			v.word |= m
		} else {
			v.word &^= m
		}
	}
}

// Bools returns the whole vector as a most-significant-first bool
// sequence. The result is a copy suitable as a backing sequence for
// FromSlice and FromReverseIndex.
//
func (v Bits) Bools() []bool {
	return v.Range(0, v.size)
}

// Slice returns the hi:lo bit range of v as a new Bits of width
// max(hi,lo)-min(hi,lo)+1. Like FromReverseIndex, hi and lo count from
// the least-significant end and their order does not matter. It returns
// ErrIndexOutOfRange when the higher position is not below Size.
//
// Slice is the resolution target for hardware-style v[hi:lo] range
// expressions.
//
func (v Bits) Slice(hi, lo int) (Bits, error) {
	high, low := hi, lo
	if high < low {
		high, low = low, high
	}
	if low < 0 || high >= v.size {
		return Bits{}, errors.Wrapf(ErrIndexOutOfRange,
			"bit position %d of a %d-bit value", high, v.size)
	}
	width := high - low + 1
	return Bits{size: width, word: v.word >> uint(low) & mask(width)}, nil
}

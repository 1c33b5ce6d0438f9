// Copyright 2021 trashbyte
// Licensed under the MIT license. See license text in the LICENSE file.

package bitmath

// Uint interprets up to the 32 least-significant bits of the vector as an
// unsigned integer. For widths above 32 the high-order bits do not
// participate; this is the documented behavior, not an error. Use Uint64
// for a lossless conversion.
//
func (v Bits) Uint() uint32 {
	return uint32(v.word)
}

// Int interprets the vector as a two's-complement signed integer. For
// widths below 32 the missing high-order bits are filled from the
// vector's sign bit; for widths of 32 and above the low-order 32 bits are
// reinterpreted directly. Use Int64 for a lossless conversion.
//
func (v Bits) Int() int32 {
	return int32(uint32(v.Int64()))
}

// Uint64 returns the full width-sized unsigned value of the vector.
//
func (v Bits) Uint64() uint64 {
	return v.word
}

// Int64 returns the full width-sized two's-complement value of the
// vector, sign-extended from its own sign bit.
//
func (v Bits) Int64() int64 {
	if v.word>>uint(v.size-1)&1 != 0 {
		return int64(v.word | ^mask(v.size))
	}
	return int64(v.word)
}

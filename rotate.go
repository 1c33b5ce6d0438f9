// Copyright 2021 trashbyte
// Licensed under the MIT license. See license text in the LICENSE file.

package bitmath

// RotateRight returns v rotated right by n places: the bit at index i
// moves to index (i+n) mod Size. n is reduced modulo Size first, so it
// may exceed the width or be negative.
//
func (v Bits) RotateRight(n int) Bits {
	n = ((n % v.size) + v.size) % v.size
	w := v.word>>uint(n) | v.word<<uint(v.size-n)
	return Bits{size: v.size, word: w & mask(v.size)}
}

// RotateLeft returns v rotated left by n places: the bit at index i moves
// to index (i+Size-n) mod Size. Same reduction rule as RotateRight.
//
func (v Bits) RotateLeft(n int) Bits {
	n = ((n % v.size) + v.size) % v.size
	w := v.word<<uint(n) | v.word>>uint(v.size-n)
	return Bits{size: v.size, word: w & mask(v.size)}
}

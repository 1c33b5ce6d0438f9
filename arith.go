// Copyright 2021 trashbyte
// Licensed under the MIT license. See license text in the LICENSE file.

package bitmath

import (
	"fmt"
	"math/bits"
)

func (v Bits) checkOperand(w Bits) {
	if v.size != w.size {
		panic(fmt.Sprintf("bitmath: operand width mismatch: %d and %d", v.size, w.size))
	}
}

// AddUnsigned adds w to v under the unsigned interpretation. The sum is
// accumulated in 64 bits and masked back to the common width; the flag
// reports whether the unmasked sum needed more than Size bits. Addition
// is total and never fails; overflow is reported, not prevented.
//
// Both operands must have the same width; unequal widths panic.
//
func (v Bits) AddUnsigned(w Bits) (Bits, bool) {
	v.checkOperand(w)
	sum, carry := bits.Add64(v.word, w.word, 0)
	m := mask(v.size)
	return Bits{size: v.size, word: sum & m}, carry != 0 || sum&^m != 0
}

// AddSigned adds w to v under the signed interpretation. The sum is
// accumulated in 64 bits and masked back to the common width; the flag
// reports whether the unmasked sum falls outside the two's-complement
// range of the width. The same totality and width contract as
// AddUnsigned apply.
//
func (v Bits) AddSigned(w Bits) (Bits, bool) {
	v.checkOperand(w)
	a, b := v.Int64(), w.Int64()
	sum := a + b
	var overflow bool
	if v.size == 64 {
		// the accumulator is exactly as wide as the operands here, so
		// compare signs instead of the wrapped sum against the range
		overflow = (a < 0) == (b < 0) && (sum < 0) != (a < 0)
	} else {
		max := int64(1)<<uint(v.size-1) - 1
		overflow = sum < -max-1 || sum > max
	}
	return Bits{size: v.size, word: uint64(sum) & mask(v.size)}, overflow
}

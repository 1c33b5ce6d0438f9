// Copyright 2021 trashbyte
// Licensed under the MIT license. See license text in the LICENSE file.

package bitmath

import (
	"fmt"
	"strings"
)

// BinaryString returns the vector as Size '0'/'1' characters, most
// significant bit first. Parse reproduces the vector from this string.
//
func (v Bits) BinaryString() string {
	return fmt.Sprintf("%0*b", v.size, v.word)
}

// PrettyBinaryString returns the binary string grouped in nibbles: a
// single space before every 4th bit counted from the least-significant
// end, never before the leading group.
//
func (v Bits) PrettyBinaryString() string {
	return group(v.BinaryString(), 4)
}

// HexString returns the unsigned value of the vector as ceil(Size/4)
// zero-padded hex digits grouped in pairs from the least-significant end,
// separated by single spaces. The leading group holds a single digit when
// the digit count is odd.
//
func (v Bits) HexString() string {
	digits := (v.size + 3) / 4
	return group(fmt.Sprintf("%0*x", digits, v.word), 2)
}

// group splits s into n-character chunks counted from the right and joins
// them with single spaces. The leftmost chunk keeps the remainder.
func group(s string, n int) string {
	head := len(s) % n
	if head == 0 {
		head = n
	}
	var b strings.Builder
	b.WriteString(s[:head])
	for i := head; i < len(s); i += n {
		b.WriteByte(' ')
		b.WriteString(s[i : i+n])
	}
	return b.String()
}

// String returns a composite debug form holding the width, the nibble-
// grouped binary string, and the unsigned/signed values in decimal and
// hex. Negative signed values render with a leading '-' before the "0x"
// prefix.
//
func (v Bits) String() string {
	return fmt.Sprintf("Bits<%d>{ %s | dec %d/%d | hex %#x/%#x }",
		v.size, v.PrettyBinaryString(), v.Uint64(), v.Int64(), v.Uint64(), v.Int64())
}

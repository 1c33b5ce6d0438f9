// Copyright 2021 trashbyte
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package bitmath implements fixed-width binary strings with two's-complement
semantics.

A Bits value is an ordered sequence of bits of an exact width between 1 and
64, the kind of quantity found in hardware registers, instruction encodings
and protocol fields. Bit 0 is the most significant bit; under the signed
interpretation it is the sign bit.

The package provides constructors from integers, bool sequences and binary
literals, width-aware addition with overflow reporting, cyclic rotation,
hardware-style high:low slicing, and nibble-grouped binary and hex
rendering. All operations are synchronous, pure computations over plain
values; Bits is freely copyable and comparable with ==.

Fallible construction from caller data reports typed errors (see
ErrInvalidInput, ErrIndexOutOfRange and WidthError). Positional access with
an index chosen by the caller is a documented precondition instead: Bit,
SetBit and the range accessors panic on out-of-range indices, as does
arithmetic on operands of unequal widths.
*/
package bitmath

// Copyright 2021 trashbyte
// Licensed under the MIT license. See license text in the LICENSE file.

package bitmath

import (
	"fmt"

	"github.com/pkg/errors"
)

// Errors reported by the fallible constructors. Constructors may wrap the
// sentinels with additional context; test with errors.Is and errors.As.
var (
	// ErrInvalidInput is returned by Parse when a binary literal contains
	// a character other than '0' or '1' after whitespace stripping, or
	// when its stripped length differs from the target width.
	ErrInvalidInput = errors.New("invalid binary input string")

	// ErrIndexOutOfRange is returned by FromReverseIndex and Slice when
	// the high bit position lies outside the backing sequence.
	ErrIndexOutOfRange = errors.New("bit index out of range")
)

// A WidthError reports a mismatch between the width a constructor was asked
// to produce and the width of the data it was given.
//
type WidthError struct {
	Expected int
	Found    int
}

func (e *WidthError) Error() string {
	return fmt.Sprintf("bit width mismatch: expected %d, found %d", e.Expected, e.Found)
}

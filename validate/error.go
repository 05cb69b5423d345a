// Copyright 2022 The go-recurrence Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validate

import (
	"errors"
	"fmt"

	"github.com/go-recurrence/recur/expr"
)

// Error wraps validation errors with information about where in the
// postfix sequence the error was encountered.
type Error struct {
	Offset int // Index into the postfix token sequence where the error occurs.
	Err    error
}

func (e Error) Error() string {
	return fmt.Sprintf("error while validating postfix at index %d: %v", e.Offset, e.Err)
}

// ErrStackUnderflow is returned if an operator consumes a value, but
// there are no values on the stack.
var ErrStackUnderflow = errors.New("validate: stack underflow")

// ErrEmptyResult is returned if the sequence leaves no value on the
// stack at all.
var ErrEmptyResult = errors.New("validate: no value left on the stack")

// InvalidTokenError is returned if a token kind that cannot appear in
// postfix form (a parenthesis) is encountered.
type InvalidTokenError expr.Kind

func (e InvalidTokenError) Error() string {
	return fmt.Sprintf("encountered non-postfix token %s", expr.Kind(e))
}

// NegativeValueError is returned if a literal token carries a negative
// payload; the grammar recognizes no unary minus.
type NegativeValueError float64

func (e NegativeValueError) Error() string {
	return fmt.Sprintf("negative literal %v", float64(e))
}

// UnbalancedStackErr is returned if more than one value remains on the
// stack after the whole sequence has been consumed.
type UnbalancedStackErr int

func (e UnbalancedStackErr) Error() string {
	return fmt.Sprintf("unbalanced stack (%d values remain)", int(e))
}

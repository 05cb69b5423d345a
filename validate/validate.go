// Copyright 2022 The go-recurrence Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package validate provides functions for validating postfix token
// sequences before they reach the interpreter or a native back end.
package validate

import (
	"github.com/go-recurrence/recur/expr"
)

// Postfix verifies that pf is a well-formed reverse-Polish program: it
// contains only variable, literal and operator tokens, literal
// payloads are non-negative, and a stack machine consuming it from
// left to right ends with exactly one value.
//
// An empty sequence is valid; computing it is the identity on the
// initial value.
func Postfix(pf []expr.Token) error {
	vm := &mockVM{
		stack:    []operand{},
		stackTop: 0,
	}

	for i, tok := range pf {
		logger.Printf("index: %d token: %v", i, tok)
		switch {
		case tok.Kind == expr.Var:
			vm.pushOperand(expr.Var)
		case tok.Kind == expr.Val:
			if tok.Val < 0 {
				return Error{Offset: i, Err: NegativeValueError(tok.Val)}
			}
			vm.pushOperand(expr.Val)
		case tok.Kind.IsOperator():
			for j := 0; j < 2; j++ {
				if _, under := vm.popOperand(); under {
					return Error{Offset: i, Err: ErrStackUnderflow}
				}
			}
			vm.pushOperand(tok.Kind)
		default:
			return Error{Offset: i, Err: InvalidTokenError(tok.Kind)}
		}
	}

	if len(pf) == 0 {
		return nil
	}
	switch vm.stackTop {
	case 1:
		return nil
	case 0:
		return Error{Offset: len(pf) - 1, Err: ErrEmptyResult}
	default:
		return Error{Offset: len(pf) - 1, Err: UnbalancedStackErr(vm.stackTop)}
	}
}

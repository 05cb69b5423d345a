// Copyright 2022 The go-recurrence Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package exec evaluates recurrence programs, either with a stack
// interpreter or through natively compiled step functions.
package exec

import (
	"errors"
	"fmt"

	"github.com/go-recurrence/recur/expr"
)

// ErrStackUnderflow is returned by Run when an operator needs more
// values than the stack holds.
var ErrStackUnderflow = errors.New("exec: stack underflow")

// ErrStackNotEmpty is returned by Run when more than one value
// remains after the program has been consumed.
var ErrStackNotEmpty = errors.New("exec: more than one value left on the stack")

// UnknownTokenError is returned by Run when a token that cannot
// appear in postfix form is encountered.
type UnknownTokenError expr.Kind

func (e UnknownTokenError) Error() string {
	return fmt.Sprintf("exec: unknown token %s", expr.Kind(e))
}

// VM is a stack machine evaluating one postfix program. It defines
// the reference semantics that the native back ends must reproduce
// bit for bit: IEEE 754 binary64 arithmetic in program order, with
// division by zero following IEEE rules.
type VM struct {
	pf       []expr.Token
	stack    []float64
	stackTop int
}

// NewVM returns a VM for the given postfix program. The program is
// not validated here; see the validate package.
func NewVM(pf []expr.Token) *VM {
	return &VM{
		pf:    pf,
		stack: make([]float64, 0, len(pf)),
	}
}

func (vm *VM) pushValue(v float64) {
	if vm.stackTop == len(vm.stack) {
		vm.stack = append(vm.stack, v)
	} else {
		vm.stack[vm.stackTop] = v
	}
	vm.stackTop++
}

func (vm *VM) popValue() (float64, bool) {
	if vm.stackTop == 0 {
		return 0, true
	}
	vm.stackTop--
	return vm.stack[vm.stackTop], false
}

// Run computes the next term of the recurrence from the current one.
// An empty program is the identity.
func (vm *VM) Run(nLast float64) (float64, error) {
	if len(vm.pf) == 0 {
		return nLast, nil
	}

	vm.stackTop = 0
	for _, tok := range vm.pf {
		switch {
		case tok.Kind == expr.Var:
			vm.pushValue(nLast)
		case tok.Kind == expr.Val:
			vm.pushValue(tok.Val)
		case tok.Kind.IsOperator():
			// The later push is the right operand.
			n2, under := vm.popValue()
			if under {
				return 0, ErrStackUnderflow
			}
			n1, under := vm.popValue()
			if under {
				return 0, ErrStackUnderflow
			}
			switch tok.Kind {
			case expr.Add:
				vm.pushValue(n1 + n2)
			case expr.Sub:
				vm.pushValue(n1 - n2)
			case expr.Mul:
				vm.pushValue(n1 * n2)
			case expr.Div:
				vm.pushValue(n1 / n2)
			}
		default:
			return 0, UnknownTokenError(tok.Kind)
		}
	}

	out, under := vm.popValue()
	if under {
		return 0, ErrStackUnderflow
	}
	if vm.stackTop != 0 {
		return 0, ErrStackNotEmpty
	}
	return out, nil
}

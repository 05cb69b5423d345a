// Copyright 2022 The go-recurrence Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validate

import (
	"github.com/go-recurrence/recur/expr"
)

// operand records the token that produced a value on the mock stack,
// so diagnostics can point at something more useful than a count.
type operand struct {
	Kind expr.Kind
}

// mockVM is a minimal stack machine used to check that a postfix
// sequence reduces to exactly one value without executing any
// arithmetic.
type mockVM struct {
	stack    []operand
	stackTop int // the top of the operand stack
}

func (vm *mockVM) popOperand() (operand, bool) {
	var o operand
	stackTop := vm.stackTop - 1
	if stackTop == -1 {
		return o, true
	}
	o = vm.stack[stackTop]
	vm.stackTop--

	logger.Printf("Stack after pop is %v. Popped %v", vm.stack[:vm.stackTop], o)
	return o, false
}

func (vm *mockVM) pushOperand(k expr.Kind) {
	o := operand{k}
	if vm.stackTop == len(vm.stack) {
		vm.stack = append(vm.stack, o)
	} else {
		vm.stack[vm.stackTop] = o
	}
	vm.stackTop++

	logger.Printf("Stack after push is %v. Pushed %v", vm.stack[:vm.stackTop], o)
}

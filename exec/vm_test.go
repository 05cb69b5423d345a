// Copyright 2022 The go-recurrence Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"math"
	"testing"

	"github.com/go-recurrence/recur/expr"
)

func mustPostfix(t *testing.T, src string) []expr.Token {
	t.Helper()
	tokens, err := expr.NewScanner(src).Scan()
	if err != nil {
		t.Fatal(err)
	}
	pf, err := expr.ToPostfix(tokens)
	if err != nil {
		t.Fatal(err)
	}
	return pf
}

func TestVMRun(t *testing.T) {
	vm := NewVM(mustPostfix(t, "(((54 + 3) / 8) - (4 * 2)) + n"))

	got, err := vm.Run(0)
	if err != nil {
		t.Fatal(err)
	}
	if want := -0.875; got != want {
		t.Errorf("Run(0) = %v, want %v", got, want)
	}

	got, err = vm.Run(got)
	if err != nil {
		t.Fatal(err)
	}
	if want := -1.75; got != want {
		t.Errorf("Run(Run(0)) = %v, want %v", got, want)
	}
}

func TestVMRunEmpty(t *testing.T) {
	vm := NewVM(nil)
	got, err := vm.Run(42)
	if err != nil {
		t.Fatal(err)
	}
	if want := 42.0; got != want {
		t.Errorf("Run(42) = %v, want %v", got, want)
	}
}

func TestVMRunDivByZero(t *testing.T) {
	vm := NewVM(mustPostfix(t, "(n / 0)"))

	got, err := vm.Run(1)
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(got, 1) {
		t.Errorf("Run(1) = %v, want +Inf", got)
	}

	got, err = vm.Run(0)
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(got) {
		t.Errorf("Run(0) = %v, want NaN", got)
	}
}

func TestVMRunStackUnderflow(t *testing.T) {
	vm := NewVM([]expr.Token{{Kind: expr.Add}})
	if _, err := vm.Run(0); err != ErrStackUnderflow {
		t.Errorf("Run err = %v, want %v", err, ErrStackUnderflow)
	}
}

func TestVMRunStackNotEmpty(t *testing.T) {
	vm := NewVM([]expr.Token{
		{Kind: expr.Val, Val: 1},
		{Kind: expr.Val, Val: 2},
	})
	if _, err := vm.Run(0); err != ErrStackNotEmpty {
		t.Errorf("Run err = %v, want %v", err, ErrStackNotEmpty)
	}
}

func TestVMRunUnknownToken(t *testing.T) {
	vm := NewVM([]expr.Token{{Kind: expr.LParen}})
	_, err := vm.Run(0)
	if _, ok := err.(UnknownTokenError); !ok {
		t.Errorf("Run err = %v, want UnknownTokenError", err)
	}
}

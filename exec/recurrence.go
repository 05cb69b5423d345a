// Copyright 2022 The go-recurrence Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"runtime"
	"sync"

	"github.com/go-recurrence/recur/expr"
	"github.com/go-recurrence/recur/validate"
)

// nativeStep is compiled native code for one step function.
type nativeStep interface {
	Invoke(n float64, iters uint64) float64
}

// jitBackend compiles postfix programs for the host and owns the
// executable mappings it hands out.
type jitBackend interface {
	Compile(pf []expr.Token) (nativeStep, error)
	Close() error
}

type nativeArch struct {
	Arch, OS string
	make     func() jitBackend
}

// supportedNativeArchs is a list of supported architectures for
// native compilation, injected by platform-specific files.
var supportedNativeArchs []nativeArch

func nativeBackend() (jitBackend, bool) {
	for _, na := range supportedNativeArchs {
		if na.Arch == runtime.GOARCH && na.OS == runtime.GOOS {
			return na.make(), true
		}
	}
	return nil, false
}

// Recurrence evaluates N_{k+1} = f(N_k) for a formula over the
// variable n. The zero value is not usable; construct with New.
type Recurrence struct {
	eqn    string
	tokens []expr.Token
	pf     []expr.Token
	n0     float64
	vm     *VM

	compileOnce sync.Once
	backend     jitBackend
	native      nativeStep
	compileErr  error
	closeOnce   sync.Once
}

// New parses and validates formula and returns a recurrence starting
// at n0. An empty formula yields the identity recurrence.
func New(formula string, n0 float64) (*Recurrence, error) {
	s := expr.NewScanner(formula)
	tokens, err := s.Scan()
	if err != nil {
		return nil, err
	}
	pf, err := expr.ToPostfix(tokens)
	if err != nil {
		return nil, err
	}
	if err := validate.Postfix(pf); err != nil {
		return nil, err
	}
	return &Recurrence{
		eqn:    formula,
		tokens: tokens,
		pf:     pf,
		n0:     n0,
		vm:     NewVM(pf),
	}, nil
}

// Tokens returns the infix token sequence of the formula.
func (r *Recurrence) Tokens() []expr.Token {
	return r.tokens
}

// Postfix returns the postfix program the formula compiled to.
func (r *Recurrence) Postfix() []expr.Token {
	return r.pf
}

// Compute returns N_iters, starting from the initial term. With
// useJIT set the step function is compiled for the host on first
// use; on hosts with no back end it falls back to the interpreter.
// Compilation and mapping failures are returned, not masked.
func (r *Recurrence) Compute(iters uint64, useJIT bool) (float64, error) {
	if len(r.pf) == 0 || iters == 0 {
		return r.n0, nil
	}

	if useJIT {
		r.compileOnce.Do(func() {
			backend, ok := nativeBackend()
			if !ok {
				return
			}
			r.backend = backend
			unit, err := backend.Compile(r.pf)
			if err != nil {
				r.compileErr = err
				return
			}
			r.native = unit
		})
		if r.compileErr != nil {
			return 0, r.compileErr
		}
		if r.native != nil {
			return r.native.Invoke(r.n0, iters), nil
		}
	}

	n := r.n0
	for i := uint64(0); i < iters; i++ {
		var err error
		n, err = r.vm.Run(n)
		if err != nil {
			return 0, err
		}
	}
	return n, nil
}

// Close releases any executable mappings backing the recurrence. It
// is safe to call on a nil receiver and more than once.
func (r *Recurrence) Close() error {
	if r == nil {
		return nil
	}
	var err error
	r.closeOnce.Do(func() {
		if r.backend != nil {
			err = r.backend.Close()
		}
	})
	return err
}

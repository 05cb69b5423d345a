// Copyright 2022 The go-recurrence Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build linux darwin

package compile

// Invoke implements NativeCodeUnit. The amd64 step function computes
// a single term, so the iteration loop stays on the Go side.
func (b *asmBlock) Invoke(n float64, iters uint64) float64 {
	entry := b.entry()
	for i := uint64(0); i < iters; i++ {
		n = jitcall(entry, n)
	}
	return n
}

//go:noescape
func jitcall(code uintptr, n float64) float64

// Copyright 2022 The go-recurrence Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build linux

package compile

// Invoke implements NativeCodeUnit. The arm64 step function carries
// its own iteration loop, so a run is a single call.
func (b *asmBlock) Invoke(n float64, iters uint64) float64 {
	return jitcall(b.entry(), n, iters)
}

//go:noescape
func jitcall(code uintptr, n float64, iters uint64) float64

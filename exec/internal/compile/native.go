// Copyright 2022 The go-recurrence Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compile

import (
	"bytes"
	"os"
	"os/exec"

	"github.com/go-recurrence/recur/expr"
)

// Builder translates a validated postfix program into machine code for
// one architecture.
type Builder interface {
	// Build returns the encoded step function. The caller owns the
	// returned slice and is expected to hand it to an allocator for
	// mapping.
	Build(pf []expr.Token) ([]byte, error)
}

// NativeCodeUnit represents compiled native code.
type NativeCodeUnit interface {
	// Invoke returns the term reached after iters steps starting
	// from n. Back ends that loop natively pass iters to the emitted
	// code; for the others the emitted code computes a single step
	// and Invoke calls it iters times from Go.
	Invoke(n float64, iters uint64) float64
}

func debugPrintAsm(asm []byte) {
	cmd := exec.Command("ndisasm", "-b64", "-")
	cmd.Stdin = bytes.NewReader(asm)
	cmd.Stdout = os.Stdout
	cmd.Run()
}

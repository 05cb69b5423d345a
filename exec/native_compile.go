// Copyright 2022 The go-recurrence Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build linux,amd64 darwin,amd64 linux,arm64

package exec

import (
	"github.com/go-recurrence/recur/exec/internal/compile"
	"github.com/go-recurrence/recur/expr"
)

// nativeCompiler pairs an architecture back end with the allocator
// that maps its output executable.
type nativeCompiler struct {
	Builder   compile.Builder
	allocator *compile.MMapAllocator
}

func (c *nativeCompiler) Compile(pf []expr.Token) (nativeStep, error) {
	code, err := c.Builder.Build(pf)
	if err != nil {
		return nil, err
	}
	unit, err := c.allocator.AllocateExec(code)
	if err != nil {
		return nil, err
	}
	return unit, nil
}

func (c *nativeCompiler) Close() error {
	return c.allocator.Close()
}

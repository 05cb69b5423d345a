// Copyright 2022 The go-recurrence Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build linux darwin

package exec

import (
	"runtime"

	"github.com/go-recurrence/recur/exec/internal/compile"
)

func init() {
	supportedNativeArchs = append(supportedNativeArchs, nativeArch{
		Arch: "amd64",
		OS:   runtime.GOOS,
		make: makeAMD64NativeBackend,
	})
}

func makeAMD64NativeBackend() jitBackend {
	return &nativeCompiler{
		Builder:   &compile.AMD64Backend{},
		allocator: &compile.MMapAllocator{},
	}
}

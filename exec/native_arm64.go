// Copyright 2022 The go-recurrence Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build linux

package exec

import (
	"github.com/go-recurrence/recur/exec/internal/compile"
)

func init() {
	supportedNativeArchs = append(supportedNativeArchs, nativeArch{
		Arch: "arm64",
		OS:   "linux",
		make: makeARM64NativeBackend,
	})
}

func makeARM64NativeBackend() jitBackend {
	return &nativeCompiler{
		Builder:   &compile.ARM64Backend{},
		allocator: &compile.MMapAllocator{},
	}
}

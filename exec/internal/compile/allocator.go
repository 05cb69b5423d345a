// Copyright 2022 The go-recurrence Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build linux,amd64 darwin,amd64 linux,arm64

package compile

import (
	"errors"
	"unsafe"

	"github.com/edsrzf/mmap-go"
	"golang.org/x/sys/unix"
)

// ErrNoCode is returned when an empty code sequence is given to the
// allocator. Mapping zero bytes cannot yield a callable entry point.
var ErrNoCode = errors.New("compile: no code to map")

// asmBlock is an executable mapping holding one compiled step
// function.
type asmBlock struct {
	mem  mmap.MMap
	size int
}

// entry returns the address of the first instruction.
func (b *asmBlock) entry() uintptr {
	return uintptr(unsafe.Pointer(&b.mem[0]))
}

// MMapAllocator copies emitted code into anonymous executable
// mappings. Pages are written while read-write and only then flipped
// to read-execute; a mapped block is never written again.
type MMapAllocator struct {
	blocks []*asmBlock
}

// AllocateExec maps code into executable memory and returns a unit
// that can be invoked from Go.
func (a *MMapAllocator) AllocateExec(code []byte) (NativeCodeUnit, error) {
	if len(code) == 0 {
		return nil, ErrNoCode
	}

	mem, err := mmap.MapRegion(nil, len(code), mmap.RDWR, mmap.ANON, 0)
	if err != nil {
		return nil, err
	}
	copy(mem, code)
	if err := unix.Mprotect(mem, unix.PROT_READ|unix.PROT_EXEC); err != nil {
		mem.Unmap()
		return nil, err
	}

	block := &asmBlock{mem: mem, size: len(code)}
	a.blocks = append(a.blocks, block)
	return block, nil
}

// Close unmaps all blocks handed out by the allocator. Invoking a
// unit after its allocator is closed is invalid.
func (a *MMapAllocator) Close() error {
	var firstErr error
	for _, b := range a.blocks {
		if err := b.mem.Unmap(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.blocks = nil
	return firstErr
}

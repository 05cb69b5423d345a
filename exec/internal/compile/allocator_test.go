// Copyright 2022 The go-recurrence Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build linux,amd64 darwin,amd64 linux,arm64

package compile

import (
	"bytes"
	"testing"
)

func TestMMapAllocator(t *testing.T) {
	a := &MMapAllocator{}
	defer a.Close()

	code := []byte{1, 2, 3, 4}
	if _, err := a.AllocateExec(code); err != nil {
		t.Fatal(err)
	}
	if got := len(a.blocks); got != 1 {
		t.Fatalf("len(a.blocks) = %d, want 1", got)
	}

	b := a.blocks[0]
	if b.size != len(code) {
		t.Errorf("b.size = %d, want %d", b.size, len(code))
	}
	if !bytes.Equal(b.mem[:len(code)], code) {
		t.Errorf("b.mem = %v, want %v", b.mem[:len(code)], code)
	}
	if b.entry() == 0 {
		t.Error("b.entry() = 0, want a mapped address")
	}
}

func TestMMapAllocatorEmpty(t *testing.T) {
	a := &MMapAllocator{}
	defer a.Close()

	if _, err := a.AllocateExec(nil); err != ErrNoCode {
		t.Errorf("AllocateExec(nil) err = %v, want %v", err, ErrNoCode)
	}
}

func TestMMapAllocatorClose(t *testing.T) {
	a := &MMapAllocator{}
	if _, err := a.AllocateExec([]byte{0xc3}); err != nil {
		t.Fatal(err)
	}
	if err := a.Close(); err != nil {
		t.Fatal(err)
	}
	if a.blocks != nil {
		t.Errorf("a.blocks = %v, want nil after Close", a.blocks)
	}
	if err := a.Close(); err != nil {
		t.Fatal(err)
	}
}

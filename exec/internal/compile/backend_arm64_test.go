// Copyright 2022 The go-recurrence Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build linux

package compile

import (
	"bytes"
	"math"
	"testing"

	"github.com/go-recurrence/recur/expr"
)

func TestARM64BuildAdd(t *testing.T) {
	b := &ARM64Backend{}
	got, err := b.Build([]expr.Token{
		{Kind: expr.Var},
		{Kind: expr.Var},
		{Kind: expr.Add},
	})
	if err != nil {
		t.Fatal(err)
	}

	want := &CodeBuffer{}
	for _, w := range []uint32{
		0xa9bf7bfd, 0xb5000060, 0xa8c17bfd, 0xd65f03c0, 0x6dbf0be1, 0xaa0003e9,
		0xfc1f0fe0, 0xfc1f0fe0,
		0xacc107e2, 0x1e622821, 0xfc1f0fe1,
		0xfc4107e0, 0xd1000529,
		0xb5ffff29, // cbnz x9, back over the 7-instruction loop
		0x6cc10be1, 0xa8c17bfd, 0xd65f03c0,
	} {
		want.emit32(w)
	}

	if !bytes.Equal(got, want.Bytes()) {
		t.Errorf("Build = %#x, want %#x", got, want.Bytes())
	}
}

func TestARM64BuildLiteral(t *testing.T) {
	b := &ARM64Backend{}
	got, err := b.Build([]expr.Token{{Kind: expr.Val, Val: 5}})
	if err != nil {
		t.Fatal(err)
	}

	// 5.0 is 0x4014000000000000; only the top 16-bit chunk is
	// non-zero, so a single movz materializes it.
	want := &CodeBuffer{}
	for _, w := range []uint32{
		0xa9bf7bfd, 0xb5000060, 0xa8c17bfd, 0xd65f03c0, 0x6dbf0be1, 0xaa0003e9,
		0xd2e8028a, 0xf81f0fea,
		0xfc4107e0, 0xd1000529,
		0xb5ffff89, // cbnz x9, back over the 4-instruction loop
		0x6cc10be1, 0xa8c17bfd, 0xd65f03c0,
	} {
		want.emit32(w)
	}

	if !bytes.Equal(got, want.Bytes()) {
		t.Errorf("Build = %#x, want %#x", got, want.Bytes())
	}
}

func TestARM64BuildRejectsParens(t *testing.T) {
	b := &ARM64Backend{}
	if _, err := b.Build([]expr.Token{{Kind: expr.RParen}}); err == nil {
		t.Error("Build err = nil, want error")
	}
}

func arm64BuildAndMap(t *testing.T, a *MMapAllocator, pf []expr.Token) NativeCodeUnit {
	t.Helper()
	code, err := (&ARM64Backend{}).Build(pf)
	if err != nil {
		t.Fatal(err)
	}
	unit, err := a.AllocateExec(code)
	if err != nil {
		t.Fatal(err)
	}
	return unit
}

func TestARM64Invoke(t *testing.T) {
	a := &MMapAllocator{}
	defer a.Close()

	double := arm64BuildAndMap(t, a, []expr.Token{
		{Kind: expr.Var},
		{Kind: expr.Var},
		{Kind: expr.Add},
	})
	if got, want := double.Invoke(1, 10), 1024.0; got != want {
		t.Errorf("Invoke(1, 10) = %v, want %v", got, want)
	}
	if got, want := double.Invoke(3, 0), 3.0; got != want {
		t.Errorf("Invoke(3, 0) = %v, want %v", got, want)
	}

	five := arm64BuildAndMap(t, a, []expr.Token{{Kind: expr.Val, Val: 5}})
	if got, want := five.Invoke(0, 3), 5.0; got != want {
		t.Errorf("Invoke(0, 3) = %v, want %v", got, want)
	}
}

func TestARM64InvokeLiteralChunks(t *testing.T) {
	a := &MMapAllocator{}
	defer a.Close()

	// 1/3 has a bit pattern with all four 16-bit chunks non-zero,
	// exercising the movz/movk sequence end to end.
	third := 1.0 / 3.0
	unit := arm64BuildAndMap(t, a, []expr.Token{
		{Kind: expr.Var},
		{Kind: expr.Val, Val: third},
		{Kind: expr.Mul},
	})
	got := unit.Invoke(2, 1)
	if want := 2 * third; math.Float64bits(got) != math.Float64bits(want) {
		t.Errorf("Invoke(2, 1) = %v, want %v", got, want)
	}

	zero := arm64BuildAndMap(t, a, []expr.Token{
		{Kind: expr.Var},
		{Kind: expr.Val, Val: 0},
		{Kind: expr.Add},
	})
	if got, want := zero.Invoke(9, 4), 9.0; got != want {
		t.Errorf("Invoke(9, 4) = %v, want %v", got, want)
	}
}

// Copyright 2022 The go-recurrence Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compile

import (
	"fmt"

	"github.com/go-recurrence/recur/expr"
)

// Register allocations:
//   d0  - argument and return value, holds the current term.
//   d1  - scratch left operand and operator result.
//   d2  - scratch right operand.
//   x0  - iteration count argument.
//   x9  - loop counter.
//   x10 - staging for 64-bit literal bit patterns.
// The evaluation stack lives on the machine stack in 16-byte slots to
// keep sp aligned as AAPCS64 requires.

// ARM64Backend emits an AAPCS64 step function with the signature
// double(double, usize); the emitted code loops over the iteration
// count itself so one call computes the whole run.
type ARM64Backend struct{}

// Build implements Builder.
func (b *ARM64Backend) Build(pf []expr.Token) ([]byte, error) {
	cb := &CodeBuffer{}
	b.emitPrologue(cb)

	loopStart := cb.Len()
	for i, tok := range pf {
		switch {
		case tok.Kind == expr.Var:
			b.emitPushVar(cb)
		case tok.Kind == expr.Val:
			b.emitPushVal(cb, tok.Val)
		case tok.Kind.IsOperator():
			b.emitOperator(cb, tok.Kind)
		default:
			return nil, fmt.Errorf("compile: arm64 backend cannot handle pf[%d] %v", i, tok)
		}
	}
	b.emitEpilogue(cb, (cb.Len()-loopStart)/4)

	return cb.Bytes(), nil
}

func (b *ARM64Backend) emitPrologue(cb *CodeBuffer) {
	cb.emit32(0xa9bf7bfd) // stp x29, x30, [sp, #-16]!
	cb.emit32(0xb5000060) // cbnz x0, +3          skip the early return
	cb.emit32(0xa8c17bfd) // ldp x29, x30, [sp], #16
	cb.emit32(0xd65f03c0) // ret                  zero iterations
	cb.emit32(0x6dbf0be1) // stp d1, d2, [sp, #-16]!
	cb.emit32(0xaa0003e9) // mov x9, x0
}

func (b *ARM64Backend) emitPushVar(cb *CodeBuffer) {
	cb.emit32(0xfc1f0fe0) // str d0, [sp, #-16]!
}

func (b *ARM64Backend) emitPushVal(cb *CodeBuffer, v float64) {
	bits := f64Bits(v)
	if bits == 0 {
		cb.emit32(0xf81f0fff) // str xzr, [sp, #-16]!
		return
	}
	// Materialize the bit pattern in x10 one 16-bit chunk at a
	// time: movz for the first non-zero chunk, movk for the rest.
	first := true
	for hw := uint32(0); hw < 4; hw++ {
		chunk := uint32(bits>>(16*hw)) & 0xffff
		if chunk == 0 {
			continue
		}
		if first {
			cb.emit32(0xd2800000 | hw<<21 | chunk<<5 | 10) // movz x10, #chunk, lsl #(16*hw)
			first = false
		} else {
			cb.emit32(0xf2800000 | hw<<21 | chunk<<5 | 10) // movk x10, #chunk, lsl #(16*hw)
		}
	}
	cb.emit32(0xf81f0fea) // str x10, [sp, #-16]!
}

// opc field of the scalar double data-processing encoding.
var arm64FPOps = map[expr.Kind]uint32{
	expr.Add: 0x0a, // fadd
	expr.Sub: 0x0e, // fsub
	expr.Mul: 0x02, // fmul
	expr.Div: 0x06, // fdiv
}

func (b *ARM64Backend) emitOperator(cb *CodeBuffer, k expr.Kind) {
	// The later push is the right operand and sits at the lower
	// address, so it lands in q2.
	cb.emit32(0xacc107e2) // ldp q2, q1, [sp], #32

	op := 0x1e600000 | 2<<16 | arm64FPOps[k]<<10 | 1<<5 | 1
	cb.emit32(op) // fop d1, d1, d2

	cb.emit32(0xfc1f0fe1) // str d1, [sp, #-16]!
}

// emitEpilogue closes the iteration loop. bodyLen is the number of
// instructions emitted for the postfix body; the back-branch jumps
// over them plus the ldr and sub below.
func (b *ARM64Backend) emitEpilogue(cb *CodeBuffer, bodyLen int) {
	cb.emit32(0xfc4107e0) // ldr d0, [sp], #16
	cb.emit32(0xd1000529) // sub x9, x9, #1

	loopLen := bodyLen + 2
	cb.emit32(0xb5000000 | (uint32(-loopLen)&0x7ffff)<<5 | 9) // cbnz x9, loop

	cb.emit32(0x6cc10be1) // ldp d1, d2, [sp], #16
	cb.emit32(0xa8c17bfd) // ldp x29, x30, [sp], #16
	cb.emit32(0xd65f03c0) // ret
}

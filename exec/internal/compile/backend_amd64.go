// Copyright 2022 The go-recurrence Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compile

import (
	"fmt"

	"github.com/go-recurrence/recur/expr"
)

// Register allocations:
//   xmm0 - argument and return value, scratch left operand.
//   xmm1 - scratch right operand.
//   xmm2 - the current term, live across the whole body.
//   rax  - staging for 64-bit literal bit patterns.
// The evaluation stack lives on the machine stack in 8-byte slots,
// below the frame pointer saved in the prologue.

// AMD64Backend emits a System V step function with the signature
// double(double).
type AMD64Backend struct{}

// Build implements Builder. It lowers pf token by token; the emitted
// code makes one pass over the input term and returns the next term
// in xmm0.
func (b *AMD64Backend) Build(pf []expr.Token) ([]byte, error) {
	cb := &CodeBuffer{}
	b.emitPrologue(cb)

	for i, tok := range pf {
		switch {
		case tok.Kind == expr.Var:
			b.emitPushVar(cb)
		case tok.Kind == expr.Val:
			b.emitPushVal(cb, tok.Val)
		case tok.Kind.IsOperator():
			b.emitOperator(cb, tok.Kind)
		default:
			return nil, fmt.Errorf("compile: amd64 backend cannot handle pf[%d] %v", i, tok)
		}
	}
	b.emitEpilogue(cb, len(pf) > 0)

	out := cb.Bytes()
	// debugPrintAsm(out)
	return out, nil
}

func (b *AMD64Backend) emitPrologue(cb *CodeBuffer) {
	cb.emit(0x55)                   // push %rbp
	cb.emit(0x48, 0x89, 0xe5)       // mov  %rsp,%rbp
	cb.emit(0xf2, 0x0f, 0x10, 0xd0) // movsd %xmm0,%xmm2
}

func (b *AMD64Backend) emitPushVar(cb *CodeBuffer) {
	cb.emit(0xf2, 0x0f, 0x11, 0x54, 0x24, 0xf8) // movsd %xmm2,-0x8(%rsp)
	cb.emit(0x48, 0x83, 0xec, 0x08)             // sub   $0x8,%rsp
}

func (b *AMD64Backend) emitPushVal(cb *CodeBuffer, v float64) {
	cb.emit(0x48, 0xb8) // movabs $imm,%rax
	cb.emit64(f64Bits(v))
	cb.emit(0x50) // push %rax
}

// sub/mul/div opcodes follow addsd at fixed offsets.
var amd64FPOps = map[expr.Kind]byte{
	expr.Add: 0x58, // addsd
	expr.Sub: 0x5c, // subsd
	expr.Mul: 0x59, // mulsd
	expr.Div: 0x5e, // divsd
}

func (b *AMD64Backend) emitOperator(cb *CodeBuffer, k expr.Kind) {
	cb.emit(0xf2, 0x0f, 0x10, 0x0c, 0x24)       // movsd (%rsp),%xmm1      right operand
	cb.emit(0xf2, 0x0f, 0x10, 0x44, 0x24, 0x08) // movsd 0x8(%rsp),%xmm0   left operand
	cb.emit(0xf2, 0x0f, amd64FPOps[k], 0xc1)    // opsd  %xmm1,%xmm0
	cb.emit(0x48, 0x83, 0xc4, 0x08)             // add   $0x8,%rsp
	cb.emit(0xf2, 0x0f, 0x11, 0x04, 0x24)       // movsd %xmm0,(%rsp)
}

func (b *AMD64Backend) emitEpilogue(cb *CodeBuffer, loadResult bool) {
	if loadResult {
		// An operand-only body never runs emitOperator, so the
		// result is still parked on the stack.
		cb.emit(0xf2, 0x0f, 0x10, 0x04, 0x24) // movsd (%rsp),%xmm0
	}
	cb.emit(0x48, 0x89, 0xec) // mov %rbp,%rsp
	cb.emit(0x5d)             // pop %rbp
	cb.emit(0xc3)             // ret
}

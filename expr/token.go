// Copyright 2022 The go-recurrence Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "fmt"

// Kind classifies a scanned token.
//
// The four arithmetic kinds form a contiguous block starting at Add so
// that operator checks reduce to a range test.
type Kind int

const (
	Add Kind = iota
	Sub
	Mul
	Div
	Var
	Val
	LParen
	RParen
)

var kindStrings = [...]string{
	Add:    "PLUS",
	Sub:    "MINUS",
	Mul:    "TIMES",
	Div:    "DIV",
	Var:    "VAR",
	Val:    "VAL",
	LParen: "LPAR",
	RParen: "RPAR",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindStrings) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindStrings[k]
}

// IsOperator reports whether k is one of the four arithmetic kinds.
func (k Kind) IsOperator() bool {
	return Add <= k && k <= Div
}

// Token is a (kind, payload) pair. Val is meaningful only when Kind is
// Val, where it holds a non-negative integer literal. It is carried as
// a float64 because that is how it is ultimately consumed.
type Token struct {
	Kind Kind
	Val  float64
}

func (t Token) String() string {
	if t.Kind == Val {
		return fmt.Sprintf("<%s %v>", t.Kind, t.Val)
	}
	return fmt.Sprintf("<%s>", t.Kind)
}

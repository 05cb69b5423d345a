// Copyright 2022 The go-recurrence Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "errors"

var (
	// ErrMismatchedParen is returned when a closing parenthesis has no
	// matching opening one.
	ErrMismatchedParen = errors.New("expr: mismatched parenthesis")
	// ErrUnclosedParen is returned when an opening parenthesis is never
	// closed before the end of the input.
	ErrUnclosedParen = errors.New("expr: unclosed parenthesis")
)

// ToPostfix reduces a fully-parenthesized infix token sequence to
// reverse-Polish form.
//
// Because the grammar requires every binary application to carry its
// own parentheses, no precedence table is needed: operators are simply
// held on a stack and flushed one at a time whenever a closing
// parenthesis is seen. One trailing operator is flushed at end of
// input, which covers an outermost expression that is not itself
// wrapped in parentheses, e.g. "(a + b) * c" scanned as a whole.
//
// Chained operators at the same nesting level, e.g. "5 + 3 - 4", are
// outside the grammar; the sequence produced for them does not reduce
// to a single value and is rejected by package validate.
func ToPostfix(tokens []Token) ([]Token, error) {
	var ops []Kind
	postfix := make([]Token, 0, len(tokens))
	depth := 0
	for _, tok := range tokens {
		switch {
		case tok.Kind.IsOperator():
			ops = append(ops, tok.Kind)
		case tok.Kind == LParen:
			depth++
		case tok.Kind == RParen:
			depth--
			if depth < 0 {
				return nil, ErrMismatchedParen
			}
			if len(ops) == 0 {
				return nil, ErrMismatchedParen
			}
			postfix = append(postfix, Token{Kind: ops[len(ops)-1]})
			ops = ops[:len(ops)-1]
		case tok.Kind == Var:
			postfix = append(postfix, Token{Kind: Var})
		case tok.Kind == Val:
			postfix = append(postfix, Token{Kind: Val, Val: tok.Val})
		}
	}
	if depth != 0 {
		return nil, ErrUnclosedParen
	}
	if len(ops) != 0 {
		postfix = append(postfix, Token{Kind: ops[len(ops)-1]})
		ops = ops[:len(ops)-1]
	}
	logger.Printf("postfix: %v", postfix)
	return postfix, nil
}

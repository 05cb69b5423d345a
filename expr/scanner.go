// Copyright 2022 The go-recurrence Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package expr turns recurrence formulas into postfix token sequences.
//
// The grammar is deliberately tiny: non-negative integer literals, the
// variable n (or N), the four binary operators, parentheses and
// spaces. Every binary application is expected to carry its own pair
// of parentheses, which is what lets the converter get away without a
// precedence table.
package expr

import "fmt"

// SyntaxError is returned by (*Scanner).Scan when it encounters a byte
// outside the input grammar.
type SyntaxError struct {
	Offset int  // byte offset into the source string
	Sym    byte // the offending byte
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("expr: syntax error: unknown symbol %q at offset %d", e.Sym, e.Offset)
}

// Scanner tokenizes a formula string.
type Scanner struct {
	src    string
	offset int
}

// NewScanner returns a scanner reading from src.
func NewScanner(src string) *Scanner {
	return &Scanner{src: src}
}

// Scan consumes the whole source and returns the infix token sequence.
//
// ASCII spaces are skipped. A maximal run of decimal digits produces
// one Val token. Any byte outside the grammar aborts the scan with a
// SyntaxError naming it.
func (s *Scanner) Scan() ([]Token, error) {
	var tokens []Token
	for s.offset < len(s.src) {
		c := s.src[s.offset]
		switch {
		case c == ' ':
			s.offset++
		case c == '(':
			tokens = append(tokens, Token{Kind: LParen})
			s.offset++
		case c == ')':
			tokens = append(tokens, Token{Kind: RParen})
			s.offset++
		case c == '+':
			tokens = append(tokens, Token{Kind: Add})
			s.offset++
		case c == '-':
			tokens = append(tokens, Token{Kind: Sub})
			s.offset++
		case c == '*':
			tokens = append(tokens, Token{Kind: Mul})
			s.offset++
		case c == '/':
			tokens = append(tokens, Token{Kind: Div})
			s.offset++
		case c == 'n' || c == 'N':
			tokens = append(tokens, Token{Kind: Var})
			s.offset++
		case '0' <= c && c <= '9':
			tokens = append(tokens, s.scanNumber())
		default:
			return nil, SyntaxError{Offset: s.offset, Sym: c}
		}
	}
	logger.Printf("scanned %d tokens from %q", len(tokens), s.src)
	return tokens, nil
}

func (s *Scanner) scanNumber() Token {
	var num float64
	for s.offset < len(s.src) && '0' <= s.src[s.offset] && s.src[s.offset] <= '9' {
		num = num*10 + float64(s.src[s.offset]-'0')
		s.offset++
	}
	return Token{Kind: Val, Val: num}
}

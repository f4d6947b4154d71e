// Copyright 2026 Carl Dahl. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"errors"
	"strconv"
	"strings"
)

var errExprParse = errors.New("expression syntax error")

// A resolver translates identifiers like register names into values while
// an expression is evaluated.
type resolver interface {
	resolveIdentifier(s string) (int64, error)
}

// exprParser evaluates integer expressions with the usual arithmetic,
// shift and bitwise operators. Numbers may be decimal, $- or 0x-prefixed
// hexadecimal, or 0b-prefixed binary. In hex mode, unprefixed numbers are
// treated as hexadecimal.
type exprParser struct {
	hexMode bool
}

func newExprParser() *exprParser {
	return &exprParser{}
}

// Binary operator table, strongest binding first within each precedence.
// Two-character operators must precede one-character prefixes of
// themselves so the scanner matches them greedily.
var binaryOps = []struct {
	symbol string
	prec   int
	eval   func(a, b int64) int64
}{
	{"*", 6, func(a, b int64) int64 { return a * b }},
	{"/", 6, func(a, b int64) int64 { return a / b }},
	{"%", 6, func(a, b int64) int64 { return a % b }},
	{"+", 5, func(a, b int64) int64 { return a + b }},
	{"-", 5, func(a, b int64) int64 { return a - b }},
	{"<<", 4, func(a, b int64) int64 { return a << uint32(b) }},
	{">>", 4, func(a, b int64) int64 { return a >> uint32(b) }},
	{"&", 3, func(a, b int64) int64 { return a & b }},
	{"^", 2, func(a, b int64) int64 { return a ^ b }},
	{"|", 1, func(a, b int64) int64 { return a | b }},
}

type exprScanner struct {
	parser   *exprParser
	resolver resolver
	s        string
	pos      int
}

// Parse evaluates the expression string and returns its value.
func (p *exprParser) Parse(expr string, r resolver) (int64, error) {
	sc := &exprScanner{parser: p, resolver: r, s: expr}
	v, err := sc.parseExpr(0)
	if err != nil {
		return 0, err
	}
	sc.skipSpace()
	if sc.pos != len(sc.s) {
		return 0, errExprParse
	}
	return v, nil
}

func (sc *exprScanner) skipSpace() {
	for sc.pos < len(sc.s) && (sc.s[sc.pos] == ' ' || sc.s[sc.pos] == '\t') {
		sc.pos++
	}
}

func (sc *exprScanner) peekOp() (int, bool) {
	sc.skipSpace()
	for i, op := range binaryOps {
		if strings.HasPrefix(sc.s[sc.pos:], op.symbol) {
			return i, true
		}
	}
	return 0, false
}

// Precedence-climbing over the binary operator table.
func (sc *exprScanner) parseExpr(minPrec int) (int64, error) {
	lhs, err := sc.parseUnary()
	if err != nil {
		return 0, err
	}

	for {
		i, ok := sc.peekOp()
		if !ok || binaryOps[i].prec < minPrec {
			return lhs, nil
		}
		sc.pos += len(binaryOps[i].symbol)

		rhs, err := sc.parseExpr(binaryOps[i].prec + 1)
		if err != nil {
			return 0, err
		}
		sym := binaryOps[i].symbol
		if (sym == "/" || sym == "%") && rhs == 0 {
			return 0, errors.New("division by zero")
		}
		lhs = binaryOps[i].eval(lhs, rhs)
	}
}

func (sc *exprScanner) parseUnary() (int64, error) {
	sc.skipSpace()
	if sc.pos >= len(sc.s) {
		return 0, errExprParse
	}

	switch sc.s[sc.pos] {
	case '-':
		sc.pos++
		v, err := sc.parseUnary()
		return -v, err
	case '+':
		sc.pos++
		return sc.parseUnary()
	case '~':
		sc.pos++
		v, err := sc.parseUnary()
		return ^v, err
	case '(':
		sc.pos++
		v, err := sc.parseExpr(0)
		if err != nil {
			return 0, err
		}
		sc.skipSpace()
		if sc.pos >= len(sc.s) || sc.s[sc.pos] != ')' {
			return 0, errExprParse
		}
		sc.pos++
		return v, nil
	default:
		return sc.parseValue()
	}
}

func (sc *exprScanner) parseValue() (int64, error) {
	start := sc.pos

	// '$' always introduces a hexadecimal number.
	if sc.s[sc.pos] == '$' {
		sc.pos++
		return sc.parseNumber(16, isHexDigit)
	}

	c := sc.s[sc.pos]
	switch {
	case isDecDigit(c):
		if c == '0' && sc.pos+1 < len(sc.s) && !sc.parser.hexMode {
			switch sc.s[sc.pos+1] {
			case 'x':
				sc.pos += 2
				return sc.parseNumber(16, isHexDigit)
			case 'b':
				sc.pos += 2
				return sc.parseNumber(2, isBinDigit)
			}
		}
		if sc.parser.hexMode {
			return sc.parseNumber(16, isHexDigit)
		}
		return sc.parseNumber(10, isDecDigit)

	case isIdentChar(c):
		for sc.pos < len(sc.s) && isIdentChar(sc.s[sc.pos]) {
			sc.pos++
		}
		word := sc.s[start:sc.pos]
		// In hex mode, words like "ff" are numbers, not identifiers.
		if sc.parser.hexMode {
			if v, err := strconv.ParseInt(word, 16, 64); err == nil {
				return v, nil
			}
		}
		return sc.resolver.resolveIdentifier(word)

	case c == '.':
		sc.pos++
		return sc.resolver.resolveIdentifier(".")

	default:
		return 0, errExprParse
	}
}

func (sc *exprScanner) parseNumber(base int, digit func(byte) bool) (int64, error) {
	start := sc.pos
	for sc.pos < len(sc.s) && digit(sc.s[sc.pos]) {
		sc.pos++
	}
	if sc.pos == start {
		return 0, errExprParse
	}
	v, err := strconv.ParseInt(sc.s[start:sc.pos], base, 64)
	if err != nil {
		return 0, errExprParse
	}
	return v, nil
}

func isDecDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isBinDigit(c byte) bool {
	return c == '0' || c == '1'
}

func isIdentChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_'
}

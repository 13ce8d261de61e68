// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"strconv"

	"robpike.io/poly/exec"
	"robpike.io/poly/poly"
	"robpike.io/poly/scan"
)

// ParsePoly parses a polynomial literal. The grammar is
//
//	poly  := coeff | mono { '+' mono }
//	coeff := [ '-' ] digit { digit }	(an int64)
//	mono  := '(' poly ',' exp ')'
//	exp   := digit { digit }		(at most 2147483647)
//
// Any violation yields exec.ErrWrongPoly.
func ParsePoly(line string) (p poly.Poly, err error) {
	defer func() {
		if e := recover(); e != nil {
			if _, ok := e.(exec.Error); !ok {
				panic(e)
			}
			p, err = poly.Zero(), exec.ErrWrongPoly
		}
	}()
	lp := &literalParser{scanner: scan.New(line)}
	lp.next()
	p = lp.poly()
	lp.expect(scan.EOF)
	return p, nil
}

// literalParser is a recursive-descent parser for the literal grammar.
// Errors panic with exec.ErrWrongPoly and are recovered by ParsePoly.
type literalParser struct {
	scanner *scan.Scanner
	tok     scan.Token // The current token, not yet consumed.
}

func (lp *literalParser) next() {
	lp.tok = lp.scanner.Next()
}

// expect consumes the current token, which must be of type t.
func (lp *literalParser) expect(t scan.Type) scan.Token {
	tok := lp.tok
	if tok.Type != t {
		panic(exec.ErrWrongPoly)
	}
	if t != scan.EOF {
		lp.next()
	}
	return tok
}

// poly parses
//
//	coeff | mono { '+' mono }
func (lp *literalParser) poly() poly.Poly {
	if lp.tok.Type == scan.Number {
		v, err := strconv.ParseInt(lp.expect(scan.Number).Text, 10, 64)
		if err != nil {
			panic(exec.ErrWrongPoly)
		}
		return poly.FromScalar(v)
	}
	monos := []poly.Mono{lp.mono()}
	for lp.tok.Type == scan.Plus {
		lp.next()
		monos = append(monos, lp.mono())
	}
	return poly.Build(monos)
}

// mono parses
//
//	'(' poly ',' exp ')'
func (lp *literalParser) mono() poly.Mono {
	lp.expect(scan.LeftParen)
	coeff := lp.poly()
	lp.expect(scan.Comma)
	text := lp.expect(scan.Number).Text
	if text[0] == '-' {
		panic(exec.ErrWrongPoly)
	}
	exp, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		panic(exec.ErrWrongPoly)
	}
	lp.expect(scan.RightParen)
	return poly.Mono{Exp: int32(exp), Coeff: coeff}
}

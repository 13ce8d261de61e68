// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scan tokenizes polynomial literals such as (1,2)+(-3,0).
package scan // import "robpike.io/poly/scan"

import (
	"fmt"
	"strings"
)

// Token represents a token or text string returned from the scanner.
type Token struct {
	Type Type   // The type of this item.
	Pos  int    // Byte offset of the token in the line.
	Text string // The text of this item.
}

// Type identifies the type of lex items.
type Type int

const (
	EOF        Type = iota // end of the line
	Error                  // error occurred; value is text of error
	Comma                  // ','
	LeftParen              // '('
	Number                 // optionally signed decimal integer
	Plus                   // '+'
	RightParen             // ')'
)

var typeNames = [...]string{
	EOF:        "EOF",
	Error:      "Error",
	Comma:      "Comma",
	LeftParen:  "LeftParen",
	Number:     "Number",
	Plus:       "Plus",
	RightParen: "RightParen",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

func (i Token) String() string {
	switch {
	case i.Type == EOF:
		return "EOF"
	case i.Type == Error:
		return "error: " + i.Text
	case len(i.Text) > 10:
		return fmt.Sprintf("%s: %.10q...", i.Type, i.Text)
	}
	return fmt.Sprintf("%s: %q", i.Type, i.Text)
}

const eof = -1

// stateFn represents the state of the scanner as a function that returns the next state.
type stateFn func(*Scanner) stateFn

// Scanner holds the state of the scanner.
// The literal syntax is pure ASCII, so the scanner works on bytes.
type Scanner struct {
	input string // the line of text being scanned.
	pos   int    // current position in the input
	start int    // start position of this item
	token Token
}

// New returns a scanner for the line.
func New(line string) *Scanner {
	return &Scanner{input: line}
}

// Next returns the next token. After the end of the line or an error,
// it keeps returning the same EOF or Error token.
func (l *Scanner) Next() Token {
	if l.token.Type == Error {
		return l.token
	}
	l.token = Token{EOF, l.pos, "EOF"}
	state := lexAny
	for state != nil {
		state = state(l)
	}
	return l.token
}

// next returns the next byte in the input, or eof.
func (l *Scanner) next() int {
	if l.pos >= len(l.input) {
		l.pos = len(l.input) + 1
		return eof
	}
	c := l.input[l.pos]
	l.pos++
	return int(c)
}

// peek returns but does not consume the next byte in the input.
func (l *Scanner) peek() int {
	if l.pos >= len(l.input) {
		return eof
	}
	return int(l.input[l.pos])
}

// backup steps back one byte. Should only be called once per call of next.
func (l *Scanner) backup() {
	l.pos--
}

// emit passes an item back to the client.
func (l *Scanner) emit(t Type) stateFn {
	l.token = Token{t, l.start, l.input[l.start:l.pos]}
	l.start = l.pos
	return nil
}

// accept consumes the next byte if it's from the valid set.
func (l *Scanner) accept(valid string) bool {
	c := l.next()
	if c != eof && strings.IndexByte(valid, byte(c)) >= 0 {
		return true
	}
	l.backup()
	return false
}

// acceptRun consumes a run of bytes from the valid set.
// It reports whether it consumed any.
func (l *Scanner) acceptRun(valid string) bool {
	start := l.pos
	for l.accept(valid) {
	}
	return l.pos > start
}

// errorf records an error token and stops the scan.
func (l *Scanner) errorf(format string, args ...interface{}) stateFn {
	l.token = Token{Error, l.start, fmt.Sprintf(format, args...)}
	l.start = len(l.input)
	l.pos = len(l.input)
	return nil
}

// state functions

// lexAny scans the next item. Spaces are not part of the syntax.
func lexAny(l *Scanner) stateFn {
	switch r := l.next(); {
	case r == eof:
		l.pos = len(l.input)
		return nil
	case r == '(':
		return l.emit(LeftParen)
	case r == ')':
		return l.emit(RightParen)
	case r == ',':
		return l.emit(Comma)
	case r == '+':
		return l.emit(Plus)
	case r == '-' || isDigit(r):
		l.backup()
		return lexNumber
	case r < 0x20 || r >= 0x7f:
		return l.errorf("unrecognized character: %#x", r)
	default:
		return l.errorf("unrecognized character: %q", rune(r))
	}
}

// lexNumber scans an optionally negative run of decimal digits.
func lexNumber(l *Scanner) stateFn {
	l.accept("-")
	if !l.acceptRun("0123456789") {
		return l.errorf("bad number syntax: %q", l.input[l.start:l.pos])
	}
	return l.emit(Number)
}

func isDigit(r int) bool {
	return '0' <= r && r <= '9'
}

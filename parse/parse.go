// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parse turns lines of input into commands for package exec.
//
// Blank lines and lines starting with '#' are ignored. A line starting
// with an ASCII letter is a command; any other line is a polynomial
// literal. Errors are reported as exec.Error values and refer to a
// single line; parsing continues with the next one.
package parse // import "robpike.io/poly/parse"

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"robpike.io/poly/exec"
	"robpike.io/poly/poly"
)

// Parser reads lines of input and returns the commands they hold.
type Parser struct {
	r       *bufio.Reader
	lineNum int
	done    bool
}

// NewParser returns a new parser that will read from r.
func NewParser(r io.Reader) *Parser {
	return &Parser{r: bufio.NewReader(r)}
}

// LineNum returns the 1-based number of the line most recently
// returned by Line.
func (p *Parser) LineNum() int {
	return p.lineNum
}

// Line reads and parses the next line of input. It reports whether the
// line held a command; blank and comment lines do not. At the end of the
// input it returns io.EOF. Other errors are either exec.Error values
// describing a bad line, after which Line may be called again, or errors
// from the underlying reader.
func (p *Parser) Line() (cmd exec.Command, ok bool, err error) {
	if p.done {
		return cmd, false, io.EOF
	}
	text, err := p.r.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			return cmd, false, err
		}
		p.done = true
		if text == "" {
			return cmd, false, io.EOF
		}
	}
	p.lineNum++
	return ParseLine(text)
}

// ParseLine parses a single line of input, which may end with a newline.
func ParseLine(line string) (cmd exec.Command, ok bool, err error) {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	switch {
	case line == "" || line[0] == '#':
		return cmd, false, nil
	case isLetter(line[0]):
		cmd, err = ParseCommand(line)
	default:
		var p poly.Poly
		p, err = ParsePoly(line)
		cmd = exec.Literal(p)
	}
	if err != nil {
		return exec.Command{}, false, err
	}
	return cmd, true, nil
}

// ParseCommand parses a command line such as "DEG_BY 2".
// The word is terminated by the first white space character. Commands
// with an argument require exactly one space before it and nothing after.
func ParseCommand(line string) (exec.Command, error) {
	word, rest := line, ""
	if i := strings.IndexFunc(line, isSpace); i >= 0 {
		word, rest = line[:i], line[i:]
	}
	def := exec.Lookup(word)
	if def == nil {
		return exec.Command{}, exec.ErrWrongCommand
	}
	cmd := exec.Command{Name: def.Name}
	if def.Arg == exec.NoArg {
		if rest != "" {
			return exec.Command{}, exec.ErrWrongCommand
		}
		return cmd, nil
	}
	arg, found := strings.CutPrefix(rest, " ")
	var err error
	switch def.Arg {
	case exec.VarArg:
		cmd.Arg, err = parseUnsigned(arg)
		if !found || err != nil {
			return exec.Command{}, exec.ErrDegByVariable
		}
	case exec.PointArg:
		cmd.X, err = parseSigned(arg)
		if !found || err != nil {
			return exec.Command{}, exec.ErrAtValue
		}
	case exec.CountArg:
		cmd.Arg, err = parseUnsigned(arg)
		if !found || err != nil {
			return exec.Command{}, exec.ErrComposeParameter
		}
	}
	return cmd, nil
}

// parseUnsigned parses a run of decimal digits that fits in a uint64.
func parseUnsigned(s string) (uint64, error) {
	if !isDigits(s) {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseUint(s, 10, 64)
}

// parseSigned parses an optionally negative run of decimal digits
// that fits in an int64.
func parseSigned(s string) (int64, error) {
	if !isDigits(strings.TrimPrefix(s, "-")) {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseInt(s, 10, 64)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || '9' < s[i] {
			return false
		}
	}
	return true
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// isSpace reports whether r is ASCII white space.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

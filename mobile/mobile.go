// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The mobile package provides a very narrow interface to poly,
// suitable for wrapping in a UI. It exposes only primitive types.
// It's also handy for testing.
//
// The package holds a single stack, so only one execution stream
// (Eval or Demo) can be active at a time.
package mobile

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"

	"robpike.io/poly/config"
	"robpike.io/poly/exec"
	"robpike.io/poly/run"
)

var (
	conf    config.Config
	context *exec.Context
)

func init() {
	Reset()
}

// Eval executes the input lines against the current stack and
// returns their output. Diagnostics, if any, are returned together
// in the error. Line numbers in them count from the start of input.
func Eval(input string) (result string, err error) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	run.Poly(context, input, stdout, stderr)
	if stderr.Len() > 0 {
		err = errors.New(stderr.String())
	}
	return stdout.String(), err
}

// Depth returns the number of polynomials on the stack.
func Depth() int {
	return len(context.Stack)
}

// Demo represents a running line-by-line demonstration.
type Demo struct {
	scanner *bufio.Scanner
}

// NewDemo resets the stack and returns a new Demo that will
// execute the input text line by line.
func NewDemo(input string) *Demo {
	Reset()
	return &Demo{
		scanner: bufio.NewScanner(strings.NewReader(input)),
	}
}

// Next returns the result (and error) produced by the next line of
// input. It returns ("", io.EOF) at EOF.
func (d *Demo) Next() (result string, err error) {
	if !d.scanner.Scan() {
		if err := d.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return Eval(d.scanner.Text())
}

// Reset empties the stack and clears all settings.
func Reset() {
	conf = config.Config{}
	context = exec.NewContext(&conf)
}

// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package run provides the execution control for poly.
// It is factored out of main so it can be used for tests.
// This layout also helps out poly/mobile.
package run // import "robpike.io/poly/run"

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"robpike.io/poly/exec"
	"robpike.io/poly/parse"
)

// cpuTime returns the user and system CPU time used by the process.
// It is replaced on systems that can report it.
var cpuTime = func() (user, sys time.Duration) { return 0, 0 }

// Run reads lines from the parser and executes them in the context
// until the input is exhausted. A line that cannot be parsed or executed
// is reported on the configured error output as
//
//	ERROR <line> <message>
//
// and has no other effect; execution continues with the next line.
// If interactive is set, the prompt is printed before each line.
// Run returns an error only if reading the input fails.
func Run(p *parse.Parser, context *exec.Context, interactive bool) error {
	conf := context.Config()
	user, sys := cpuTime()
	defer func() {
		if conf.Debug("cpu") {
			u, s := cpuTime()
			conf.SetCPUTime(u - user + s - sys)
			fmt.Fprintf(conf.ErrOutput(), "(%s)\n", conf.CPUTime())
		}
	}()
	for {
		if interactive {
			fmt.Fprint(conf.Output(), conf.Prompt())
		}
		cmd, ok, err := p.Line()
		if err == io.EOF {
			break
		}
		if err == nil && ok {
			err = context.Do(cmd)
		}
		var diag exec.Error
		switch {
		case err == nil:
		case errors.As(err, &diag):
			fmt.Fprintf(conf.ErrOutput(), "ERROR %d %s\n", p.LineNum(), diag)
		default:
			return fmt.Errorf("line %d: %w", p.LineNum()+1, err)
		}
	}
	if conf.Debug("trace") {
		context.StackTrace()
	}
	return nil
}

// Poly executes the input text in the context, writing results to
// stdout and diagnostics to stderr. It is a convenience for tests and
// embedders; the context's configuration is redirected to the writers.
func Poly(context *exec.Context, input string, stdout, stderr io.Writer) {
	conf := context.Config()
	conf.SetOutput(stdout)
	conf.SetErrOutput(stderr)
	// Reading a string cannot fail.
	Run(parse.NewParser(strings.NewReader(input)), context, false)
}

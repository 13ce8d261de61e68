// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package exec runs commands against a stack of polynomials.
package exec // import "robpike.io/poly/exec"

import (
	"fmt"
	"strconv"

	"robpike.io/poly/config"
	"robpike.io/poly/poly"
)

// Error is the type of the diagnostics reported for a line of input.
// Its text is the message printed after the line number.
type Error string

func (err Error) Error() string {
	return string(err)
}

const (
	ErrUnderflow        Error = "STACK UNDERFLOW"
	ErrWrongCommand     Error = "WRONG COMMAND"
	ErrWrongPoly        Error = "WRONG POLY"
	ErrDegByVariable    Error = "DEG BY WRONG VARIABLE"
	ErrAtValue          Error = "AT WRONG VALUE"
	ErrComposeParameter Error = "COMPOSE WRONG PARAMETER"
)

// Command is a single instruction for a Context.
type Command struct {
	Name string    // Command word; empty for a literal.
	Poly poly.Poly // The literal to push.
	Arg  uint64    // Variable index for DEG_BY, count for COMPOSE.
	X    int64     // Point for AT.
}

// Literal returns the command that pushes p.
func Literal(p poly.Poly) Command {
	return Command{Poly: p}
}

func (cmd Command) String() string {
	def := ops[cmd.Name]
	switch {
	case cmd.Name == "":
		return cmd.Poly.String()
	case def == nil || def.Arg == NoArg:
		return cmd.Name
	case def.Arg == PointArg:
		return cmd.Name + " " + strconv.FormatInt(cmd.X, 10)
	}
	return cmd.Name + " " + strconv.FormatUint(cmd.Arg, 10)
}

// Context holds the stack of polynomials and the configuration
// used to report results.
type Context struct {
	// config is the configuration state used for printing.
	config *config.Config

	// Stack holds the polynomials; the top is the last element.
	Stack []poly.Poly
}

// NewContext returns a new execution context with an empty stack.
func NewContext(conf *config.Config) *Context {
	return &Context{
		config: conf,
	}
}

func (c *Context) Config() *config.Config {
	return c.config
}

// Do executes the command. If the stack holds too few polynomials
// for it, Do returns ErrUnderflow and leaves the stack unchanged.
func (c *Context) Do(cmd Command) error {
	def := ops[cmd.Name]
	if def == nil {
		return ErrWrongCommand
	}
	if def.operands(cmd) > uint64(len(c.Stack)) {
		c.trace(cmd, ErrUnderflow)
		return ErrUnderflow
	}
	def.fn(c, cmd)
	c.trace(cmd, nil)
	return nil
}

// push pushes p onto the stack.
func (c *Context) push(p poly.Poly) {
	c.Stack = append(c.Stack, p)
}

// pop removes and returns the top of the stack.
func (c *Context) pop() poly.Poly {
	n := len(c.Stack) - 1
	p := c.Stack[n]
	c.Stack[n] = poly.Poly{}
	c.Stack = c.Stack[:n]
	return p
}

// peek returns the i'th polynomial from the top of the stack; 0 is the top.
func (c *Context) peek(i int) poly.Poly {
	return c.Stack[len(c.Stack)-1-i]
}

// Printf formats the args and writes them to the configured output writer.
func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.config.Output(), format, args...)
}

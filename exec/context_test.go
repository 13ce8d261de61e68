// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"bytes"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"robpike.io/poly/config"
	"robpike.io/poly/poly"
)

func newTestContext() (*Context, *bytes.Buffer, *bytes.Buffer) {
	var conf config.Config
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	conf.SetOutput(stdout)
	conf.SetErrOutput(stderr)
	return NewContext(&conf), stdout, stderr
}

func stackText(c *Context) []string {
	var s []string
	for _, p := range c.Stack {
		s = append(s, p.String())
	}
	return s
}

// x is the polynomial x0.
var x = poly.Build([]poly.Mono{{Exp: 1, Coeff: poly.FromScalar(1)}})

func lit(v int64) Command { return Literal(poly.FromScalar(v)) }

func TestCommands(t *testing.T) {
	var tests = []struct {
		name   string
		cmds   []Command
		output string
		stack  []string
	}{
		{"zero", []Command{{Name: "ZERO"}, {Name: "IS_ZERO"}}, "1\n", []string{"0"}},
		{"add", []Command{lit(1), lit(2), {Name: "ADD"}, {Name: "PRINT"}}, "3\n", []string{"3"}},
		{"sub top minus next", []Command{lit(1), lit(5), {Name: "SUB"}}, "", []string{"4"}},
		{"mul", []Command{Literal(x), lit(3), {Name: "MUL"}, {Name: "PRINT"}}, "(3,1)\n", []string{"(3,1)"}},
		{"neg", []Command{Literal(x), {Name: "NEG"}}, "", []string{"(-1,1)"}},
		{"clone", []Command{Literal(x), {Name: "CLONE"}, {Name: "IS_EQ"}}, "1\n", []string{"(1,1)", "(1,1)"}},
		{"is_eq differs", []Command{Literal(x), lit(1), {Name: "IS_EQ"}}, "0\n", []string{"(1,1)", "1"}},
		{"is_coeff", []Command{Literal(x), {Name: "IS_COEFF"}, lit(4), {Name: "IS_COEFF"}}, "0\n1\n", []string{"(1,1)", "4"}},
		{"deg", []Command{{Name: "ZERO"}, {Name: "DEG"}, Literal(x), {Name: "DEG"}}, "-1\n1\n", []string{"0", "(1,1)"}},
		{"deg_by", []Command{Literal(x), {Name: "DEG_BY", Arg: 0}, {Name: "DEG_BY", Arg: math.MaxUint64}}, "1\n0\n", []string{"(1,1)"}},
		{"at", []Command{Literal(x), {Name: "AT", X: -7}}, "", []string{"-7"}},
		{"pop", []Command{lit(1), lit(2), {Name: "POP"}}, "", []string{"1"}},
		{"compose", []Command{Literal(x.Scale(2)), lit(2), {Name: "COMPOSE", Arg: 1}, {Name: "PRINT"}}, "4\n", []string{"4"}},
		{"compose none", []Command{lit(9), Literal(x), {Name: "COMPOSE", Arg: 0}}, "", []string{"9", "0"}},
		{"compose order", []Command{
			Literal(poly.Sub(x, poly.Build([]poly.Mono{{Exp: 0, Coeff: x}}))), // x0 - x1
			lit(10), lit(3),
			{Name: "COMPOSE", Arg: 2},
		}, "", []string{"7"}},
	}
	for _, test := range tests {
		c, stdout, stderr := newTestContext()
		for _, cmd := range test.cmds {
			if err := c.Do(cmd); err != nil {
				t.Errorf("%s: %s: %v", test.name, cmd, err)
			}
		}
		if diff := cmp.Diff(test.output, stdout.String()); diff != "" {
			t.Errorf("%s: output (-want +got):\n%s", test.name, diff)
		}
		if diff := cmp.Diff(test.stack, stackText(c)); diff != "" {
			t.Errorf("%s: stack (-want +got):\n%s", test.name, diff)
		}
		if stderr.Len() != 0 {
			t.Errorf("%s: unexpected diagnostics %q", test.name, stderr)
		}
	}
}

func TestUnderflow(t *testing.T) {
	var tests = []struct {
		stack []Command
		cmd   Command
	}{
		{nil, Command{Name: "POP"}},
		{nil, Command{Name: "PRINT"}},
		{nil, Command{Name: "CLONE"}},
		{[]Command{lit(1)}, Command{Name: "ADD"}},
		{[]Command{lit(1)}, Command{Name: "MUL"}},
		{[]Command{lit(1)}, Command{Name: "SUB"}},
		{[]Command{lit(1)}, Command{Name: "IS_EQ"}},
		{nil, Command{Name: "NEG"}},
		{nil, Command{Name: "DEG"}},
		{nil, Command{Name: "DEG_BY", Arg: 1}},
		{nil, Command{Name: "AT", X: 1}},
		{nil, Command{Name: "IS_ZERO"}},
		{nil, Command{Name: "IS_COEFF"}},
		{[]Command{lit(1), lit(2)}, Command{Name: "COMPOSE", Arg: 2}},
		{[]Command{lit(1), lit(2)}, Command{Name: "COMPOSE", Arg: math.MaxUint64}},
	}
	for _, test := range tests {
		c, stdout, _ := newTestContext()
		for _, cmd := range test.stack {
			c.Do(cmd)
		}
		before := stackText(c)
		err := c.Do(test.cmd)
		if err != ErrUnderflow {
			t.Errorf("%s on %v: expected %v; got %v", test.cmd, before, ErrUnderflow, err)
		}
		if diff := cmp.Diff(before, stackText(c)); diff != "" {
			t.Errorf("%s: stack changed (-before +after):\n%s", test.cmd, diff)
		}
		if stdout.Len() != 0 {
			t.Errorf("%s: unexpected output %q", test.cmd, stdout)
		}
	}
}

func TestUnknownCommand(t *testing.T) {
	c, _, _ := newTestContext()
	if err := c.Do(Command{Name: "PUSH"}); err != ErrWrongCommand {
		t.Errorf("expected %v; got %v", ErrWrongCommand, err)
	}
	if Lookup("") != nil {
		t.Errorf("literal push is reachable by name")
	}
	if def := Lookup("COMPOSE"); def == nil || def.Arg != CountArg {
		t.Errorf("bad definition for COMPOSE: %+v", def)
	}
}

func TestTrace(t *testing.T) {
	c, _, stderr := newTestContext()
	c.Config().SetDebug("trace", true)
	c.Do(lit(2))
	c.Do(Command{Name: "AT", X: -1})
	c.Do(Command{Name: "ADD"})
	want := "\t•> 2: depth 1\n\t•> AT -1: depth 1\n\t•> ADD: STACK UNDERFLOW\n"
	if diff := cmp.Diff(want, stderr.String()); diff != "" {
		t.Errorf("trace (-want +got):\n%s", diff)
	}
}

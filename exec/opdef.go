// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import "math"

// ArgKind says what argument, if any, follows a command word.
type ArgKind int

const (
	NoArg    ArgKind = iota
	VarArg           // variable index, as in DEG_BY 1
	PointArg         // signed value, as in AT -3
	CountArg         // operand count, as in COMPOSE 2
)

// OpDef describes a command: its name, its argument, how many
// polynomials it needs on the stack and what it does.
type OpDef struct {
	Name     string
	Arg      ArgKind
	operands func(Command) uint64
	fn       func(*Context, Command)
}

// Lookup returns the definition of the named command, or nil if
// there is no such command.
func Lookup(name string) *OpDef {
	if name == "" {
		return nil
	}
	return ops[name]
}

func fixed(n uint64) func(Command) uint64 {
	return func(Command) uint64 { return n }
}

// composeOperands returns k+1 for COMPOSE k, saturating so that
// COMPOSE with the largest count always underflows.
func composeOperands(cmd Command) uint64 {
	if cmd.Arg == math.MaxUint64 {
		return math.MaxUint64
	}
	return cmd.Arg + 1
}

// ops maps each command word to its definition.
// The literal push has the empty name, which no input line can produce.
var ops map[string]*OpDef

func init() {
	defs := []*OpDef{
		{"", NoArg, fixed(0), (*Context).pushLiteral},
		{"ZERO", NoArg, fixed(0), (*Context).zero},
		{"POP", NoArg, fixed(1), (*Context).discard},
		{"IS_COEFF", NoArg, fixed(1), (*Context).isCoeff},
		{"IS_ZERO", NoArg, fixed(1), (*Context).isZero},
		{"CLONE", NoArg, fixed(1), (*Context).clone},
		{"ADD", NoArg, fixed(2), (*Context).add},
		{"MUL", NoArg, fixed(2), (*Context).mul},
		{"SUB", NoArg, fixed(2), (*Context).sub},
		{"NEG", NoArg, fixed(1), (*Context).neg},
		{"IS_EQ", NoArg, fixed(2), (*Context).isEq},
		{"DEG", NoArg, fixed(1), (*Context).deg},
		{"DEG_BY", VarArg, fixed(1), (*Context).degBy},
		{"AT", PointArg, fixed(1), (*Context).at},
		{"COMPOSE", CountArg, composeOperands, (*Context).compose},
		{"PRINT", NoArg, fixed(1), (*Context).print},
	}
	ops = make(map[string]*OpDef, len(defs))
	for _, def := range defs {
		ops[def.Name] = def
	}
}

// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"robpike.io/poly/poly"
)

// Command implementations. Do has already checked that the
// stack holds enough polynomials for each of them.

func (c *Context) pushLiteral(cmd Command) {
	c.push(cmd.Poly)
}

func (c *Context) zero(Command) {
	c.push(poly.Zero())
}

func (c *Context) discard(Command) {
	c.pop()
}

func (c *Context) isCoeff(Command) {
	c.printBool(c.peek(0).IsScalar())
}

func (c *Context) isZero(Command) {
	c.printBool(c.peek(0).IsZero())
}

func (c *Context) clone(Command) {
	c.push(c.peek(0).Clone())
}

// binary pops the top p and then q and pushes fn(p, q).
func (c *Context) binary(fn func(p, q poly.Poly) poly.Poly) {
	p := c.pop()
	q := c.pop()
	c.push(fn(p, q))
}

func (c *Context) add(Command) {
	c.binary(poly.Add)
}

func (c *Context) mul(Command) {
	c.binary(poly.Mul)
}

func (c *Context) sub(Command) {
	c.binary(poly.Sub)
}

func (c *Context) neg(Command) {
	c.push(c.pop().Neg())
}

func (c *Context) isEq(Command) {
	c.printBool(c.peek(0).Equal(c.peek(1)))
}

func (c *Context) deg(Command) {
	c.Printf("%d\n", c.peek(0).Degree())
}

func (c *Context) degBy(cmd Command) {
	c.Printf("%d\n", c.peek(0).DegreeBy(cmd.Arg))
}

func (c *Context) at(cmd Command) {
	c.push(c.pop().At(cmd.X))
}

// compose composes the polynomial beneath the top k entries with those
// entries. The deepest of them replaces variable 0 and the top one
// variable k-1.
func (c *Context) compose(cmd Command) {
	k := int(cmd.Arg)
	n := len(c.Stack)
	qs := make([]poly.Poly, k)
	copy(qs, c.Stack[n-k:])
	for range k {
		c.pop()
	}
	p := c.pop()
	c.push(p.Compose(qs))
}

func (c *Context) print(Command) {
	w := c.config.Output()
	c.peek(0).Fprint(w)
	w.Write([]byte{'\n'})
}

func (c *Context) printBool(b bool) {
	if b {
		c.Printf("1\n")
	} else {
		c.Printf("0\n")
	}
}

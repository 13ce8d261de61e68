// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Poly is a stack calculator for sparse polynomials in any number of
variables with 64-bit integer coefficients.

A polynomial in variables x0, x1, ... is written as a sum of monomials in
x0, each of whose coefficients is itself a polynomial in x1, x2, and so on.
A constant is written as a decimal integer. A monomial is written
(coefficient,exponent). Thus

	3                   is 3
	(1,2)+(3,0)         is x0² + 3
	((1,0)+(1,1),1)     is x0·(1 + x1)

Spaces are not allowed inside a polynomial. Exponents are non-negative and
at most 2147483647. Like terms are merged and zero terms dropped, so every
polynomial has exactly one printed form. PRINT writes the monomials from
the lowest exponent up.

Usage:

	poly [options] [file]

Poly reads lines from the file, or standard input if none is named. A blank
line or one beginning with # is ignored. A line beginning with a letter is a
command; any other line is a polynomial, which is pushed on the stack.

The commands are

	ZERO       push the zero polynomial
	POP        discard the top polynomial
	CLONE      push a copy of the top polynomial
	IS_COEFF   print 1 if the top polynomial is a constant, else 0
	IS_ZERO    print 1 if the top polynomial is zero, else 0
	IS_EQ      print 1 if the top two polynomials are equal, else 0
	ADD        replace the top two polynomials by their sum
	MUL        replace the top two polynomials by their product
	SUB        replace the top two polynomials by the top minus the next
	NEG        negate the top polynomial
	DEG        print the total degree of the top polynomial (-1 for zero)
	DEG_BY n   print its degree in variable xn (-1 for zero)
	AT x       substitute the integer x for x0; remaining variables shift down
	COMPOSE k  substitute the top k polynomials for x0, ..., x(k-1) in the one
	           beneath them; the deepest replaces x0 and variables past
	           x(k-1) become zero
	PRINT      print the top polynomial

A command takes its argument after exactly one space. Arithmetic wraps
around on overflow.

Problems are reported on standard error, one per line of input, as

	ERROR <line> <message>

where the message is one of WRONG POLY, WRONG COMMAND, DEG BY WRONG
VARIABLE, AT WRONG VALUE, COMPOSE WRONG PARAMETER or STACK UNDERFLOW. A
line in error has no effect on the stack.

The options are

	-prompt string
		print the prompt before each line when reading from a terminal
	-debug names
		enable the comma-separated debug settings: trace reports the
		stack depth after each command and the stack at the end; cpu
		reports the CPU time used
	-config file
		read settings from a YAML file with keys prompt and debug
	-demo
		step through a demonstration; hit return to advance
*/
package main

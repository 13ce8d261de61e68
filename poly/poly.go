// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package poly implements sparse multivariate polynomials with integer
// coefficients.
//
// A Poly is either a scalar coefficient or a list of monomials in the
// variable selected by its nesting depth: the outermost list ranges over
// variable 0, the coefficients of its monomials over variable 1, and so on.
// Every Poly is kept in canonical form, so two polynomials are equal exactly
// when they are structurally equal:
//
//   - monomials are sorted by strictly descending exponent,
//   - no monomial has a zero coefficient,
//   - a list holding only a scalar at exponent 0 is that scalar.
//
// Polys are immutable. Operations never modify their operands and never share
// storage with them, so a result may be kept after its operands are dropped.
//
// Arithmetic is done in int64 for coefficients and int32 for exponents and
// wraps on overflow, as Go integer arithmetic does.
package poly // import "robpike.io/poly/poly"

// Poly is a polynomial in canonical form. The zero value is the scalar 0.
type Poly struct {
	coeff int64  // Value when terms is nil.
	terms []Mono // Descending exponents; nil for a scalar.
}

// Mono is a monomial: Coeff times the current variable to the power Exp.
type Mono struct {
	Exp   int32
	Coeff Poly
}

// FromScalar returns the constant polynomial v.
func FromScalar(v int64) Poly {
	return Poly{coeff: v}
}

// Zero returns the zero polynomial.
func Zero() Poly {
	return Poly{}
}

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool {
	return p.terms == nil && p.coeff == 0
}

// IsScalar reports whether p is a constant, independent of all variables.
func (p Poly) IsScalar() bool {
	return p.terms == nil
}

// Coeff returns the value of a scalar polynomial. It returns 0 for a
// polynomial that is not a scalar.
func (p Poly) Coeff() int64 {
	if p.terms != nil {
		return 0
	}
	return p.coeff
}

// Len returns the number of monomials in p, 0 for a scalar.
func (p Poly) Len() int {
	return len(p.terms)
}

// Terms returns a copy of the monomials of p, by descending exponent.
// It returns nil for a scalar.
func (p Poly) Terms() []Mono {
	if p.terms == nil {
		return nil
	}
	monos := make([]Mono, len(p.terms))
	for i, m := range p.terms {
		monos[i] = m.Clone()
	}
	return monos
}

// Clone returns a deep copy of p.
func (p Poly) Clone() Poly {
	if p.terms == nil {
		return FromScalar(p.coeff)
	}
	return Poly{terms: p.Terms()}
}

// Clone returns a deep copy of m.
func (m Mono) Clone() Mono {
	return Mono{Exp: m.Exp, Coeff: m.Coeff.Clone()}
}

// Equal reports whether p and q are the same polynomial.
func (p Poly) Equal(q Poly) bool {
	if p.IsScalar() || q.IsScalar() {
		return p.IsScalar() && q.IsScalar() && p.coeff == q.coeff
	}
	if len(p.terms) != len(q.terms) {
		return false
	}
	for i := range p.terms {
		if p.terms[i].Exp != q.terms[i].Exp || !p.terms[i].Coeff.Equal(q.terms[i].Coeff) {
			return false
		}
	}
	return true
}

// constTerm returns the coefficient of the exponent-0 monomial of p,
// which is the last one if present.
func (p Poly) constTerm() (Poly, bool) {
	if len(p.terms) == 0 {
		return Poly{}, false
	}
	last := p.terms[len(p.terms)-1]
	if last.Exp != 0 {
		return Poly{}, false
	}
	return last.Coeff, true
}

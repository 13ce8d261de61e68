// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poly

// At returns p with x substituted for variable 0. The result is a
// polynomial in the remaining variables, renumbered to start at 0.
func (p Poly) At(x int64) Poly {
	if p.IsScalar() {
		return p.Clone()
	}
	result := Zero()
	for _, m := range p.terms {
		s := ipow(x, m.Exp)
		if s == 0 {
			continue
		}
		result = WeightedSum(result, m.Coeff, 1, s)
	}
	return result
}

// Compose returns p with qs[i] substituted for variable i.
// Variables beyond len(qs) are replaced by zero, so once the
// substitutions run out only the exponent-0 terms survive.
func (p Poly) Compose(qs []Poly) Poly {
	if p.IsScalar() {
		return p.Clone()
	}
	if len(qs) == 0 {
		if c, ok := p.constTerm(); ok {
			return c.Compose(nil)
		}
		return Zero()
	}
	result := Zero()
	for _, m := range p.terms {
		term := Mul(qs[0].Pow(m.Exp), m.Coeff.Compose(qs[1:]))
		result = Add(result, term)
	}
	return result
}

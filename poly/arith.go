// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poly

// Scale returns s*p.
func (p Poly) Scale(s int64) Poly {
	if s == 0 {
		return Zero()
	}
	if p.IsScalar() {
		return FromScalar(s * p.coeff)
	}
	monos := make([]Mono, 0, len(p.terms))
	for _, m := range p.terms {
		c := m.Coeff.Scale(s)
		if !c.IsZero() {
			monos = append(monos, Mono{Exp: m.Exp, Coeff: c})
		}
	}
	return Build(monos)
}

// Neg returns -p.
func (p Poly) Neg() Poly {
	return p.Scale(-1)
}

// Add returns p+q.
func Add(p, q Poly) Poly {
	return WeightedSum(p, q, 1, 1)
}

// Sub returns p-q.
func Sub(p, q Poly) Poly {
	return WeightedSum(p, q, 1, -1)
}

// WeightedSum returns sp*p + sq*q.
func WeightedSum(p, q Poly, sp, sq int64) Poly {
	switch {
	case p.IsScalar() && q.IsScalar():
		return FromScalar(sp*p.coeff + sq*q.coeff)
	case q.IsScalar():
		return addScalar(p.Scale(sp), sq*q.coeff)
	case p.IsScalar():
		return addScalar(q.Scale(sq), sp*p.coeff)
	}
	monos := make([]Mono, 0, len(p.terms)+len(q.terms))
	keep := func(exp int32, c Poly) {
		if !c.IsZero() {
			monos = append(monos, Mono{Exp: exp, Coeff: c})
		}
	}
	i, j := 0, 0
	for i < len(p.terms) && j < len(q.terms) {
		pm, qm := p.terms[i], q.terms[j]
		switch {
		case pm.Exp == qm.Exp:
			keep(pm.Exp, WeightedSum(pm.Coeff, qm.Coeff, sp, sq))
			i++
			j++
		case pm.Exp > qm.Exp:
			keep(pm.Exp, pm.Coeff.Scale(sp))
			i++
		default:
			keep(qm.Exp, qm.Coeff.Scale(sq))
			j++
		}
	}
	for ; i < len(p.terms); i++ {
		keep(p.terms[i].Exp, p.terms[i].Coeff.Scale(sp))
	}
	for ; j < len(q.terms); j++ {
		keep(q.terms[j].Exp, q.terms[j].Coeff.Scale(sq))
	}
	return Build(monos)
}

// addScalar returns p+c. It takes ownership of p.
func addScalar(p Poly, c int64) Poly {
	if p.IsScalar() {
		return FromScalar(p.coeff + c)
	}
	if c == 0 {
		return p
	}
	monos := make([]Mono, len(p.terms), len(p.terms)+1)
	copy(monos, p.terms)
	return Build(append(monos, Mono{Exp: 0, Coeff: FromScalar(c)}))
}

// Mul returns p*q.
func Mul(p, q Poly) Poly {
	switch {
	case p.IsZero() || q.IsZero():
		return Zero()
	case q.IsScalar():
		return p.Scale(q.coeff)
	case p.IsScalar():
		return q.Scale(p.coeff)
	}
	monos := make([]Mono, 0, len(p.terms)*len(q.terms))
	for _, pm := range p.terms {
		for _, qm := range q.terms {
			monos = append(monos, Mono{
				Exp:   pm.Exp + qm.Exp,
				Coeff: Mul(pm.Coeff, qm.Coeff),
			})
		}
	}
	return Build(monos)
}

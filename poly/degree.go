// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poly

// Degree returns the total degree of p: -1 for the zero polynomial,
// 0 for any other scalar.
func (p Poly) Degree() int {
	if p.IsZero() {
		return -1
	}
	deg := 0
	for _, m := range p.terms {
		deg = max(deg, int(m.Exp)+m.Coeff.Degree())
	}
	return deg
}

// DegreeBy returns the degree of p in variable v: -1 for the zero
// polynomial, 0 for any other scalar.
func (p Poly) DegreeBy(v uint64) int {
	if p.IsZero() {
		return -1
	}
	if p.IsScalar() {
		return 0
	}
	deg := -1
	for _, m := range p.terms {
		if v == 0 {
			deg = max(deg, int(m.Exp))
		} else {
			deg = max(deg, m.Coeff.DegreeBy(v-1))
		}
	}
	return deg
}

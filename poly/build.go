// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poly

import (
	"cmp"
	"slices"
)

// Build returns the canonical polynomial that is the sum of monos.
// The monomials may be in any order, may repeat exponents and may have
// zero coefficients. Build takes ownership of the slice and of the
// coefficients in it; the caller must not use them afterwards.
//
// Every polynomial with monomials is made here.
func Build(monos []Mono) Poly {
	slices.SortStableFunc(monos, func(a, b Mono) int {
		return cmp.Compare(b.Exp, a.Exp)
	})
	out := monos[:0]
	for i := 0; i < len(monos); {
		m := monos[i]
		j := i + 1
		for ; j < len(monos) && monos[j].Exp == m.Exp; j++ {
			m.Coeff = Add(m.Coeff, monos[j].Coeff)
		}
		i = j
		if !m.Coeff.IsZero() {
			out = append(out, m)
		}
	}
	switch {
	case len(out) == 0:
		return Zero()
	case len(out) == 1 && out[0].Exp == 0 && out[0].Coeff.IsScalar():
		return out[0].Coeff
	}
	clear(monos[len(out):])
	return Poly{terms: slices.Clip(out)}
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poly

// Pow returns p to the power n.
// By convention Pow returns 1 when n is 0, even if p is zero.
// A negative n, which only arises from a wrapped exponent sum,
// is taken as its unsigned 32-bit value.
func (p Poly) Pow(n int32) Poly {
	e := uint32(n)
	if e == 0 {
		return FromScalar(1)
	}
	if p.IsZero() {
		return Zero()
	}
	result := FromScalar(1)
	square := p.Clone()
	for {
		if e&1 != 0 {
			result = Mul(result, square)
		}
		e >>= 1
		if e == 0 {
			break
		}
		square = Mul(square, square)
		if square.IsZero() {
			// Coefficients wrapped to zero; every further product is zero.
			return Zero()
		}
	}
	return result
}

// ipow returns x to the power n, with wrapping int64 arithmetic.
func ipow(x int64, n int32) int64 {
	result := int64(1)
	for e := uint32(n); e > 0; e >>= 1 {
		if e&1 != 0 {
			result *= x
		}
		x *= x
	}
	return result
}

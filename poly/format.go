// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poly

import (
	"bytes"
	"io"
	"strconv"
)

// String returns p in the literal syntax accepted by the parser:
// a scalar as a decimal integer, otherwise (c,e)+(c,e)+... with each
// coefficient c formatted recursively. Monomials are written from the
// lowest exponent up.
func (p Poly) String() string {
	var b bytes.Buffer
	p.fprint(&b)
	return b.String()
}

// Fprint writes p to w in the form produced by String.
func (p Poly) Fprint(w io.Writer) error {
	var b bytes.Buffer
	p.fprint(&b)
	_, err := w.Write(b.Bytes())
	return err
}

func (p Poly) fprint(b *bytes.Buffer) {
	if p.IsScalar() {
		b.WriteString(strconv.FormatInt(p.coeff, 10))
		return
	}
	for i := len(p.terms) - 1; i >= 0; i-- {
		if i < len(p.terms)-1 {
			b.WriteByte('+')
		}
		b.WriteByte('(')
		p.terms[i].Coeff.fprint(b)
		b.WriteByte(',')
		b.WriteString(strconv.FormatInt(int64(p.terms[i].Exp), 10))
		b.WriteByte(')')
	}
}

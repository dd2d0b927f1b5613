// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import "math/big"

// SqrtPrecRound sets z to the square root of x rounded to prec bits according
// to mode, and returns the ordering of z relative to the exact root.
//
// Following IEEE754-2008 (section 7.2), the square root of a negative
// number, including -Inf, is NaN, and √±0 = ±0.
//
// SqrtPrecRound panics if prec == 0 or prec > MaxPrec, and with a
// RoundingError if mode is Exact and the root cannot be represented exactly
// with prec bits.
func (z *Float) SqrtPrecRound(x *Float, prec uint, mode RoundingMode) Ordering {
	p := validPrec(prec)
	return z.exact(mode, "square root", func(z *Float) Ordering { return z.sqrt(x, p, mode) })
}

// SqrtPrec is like SqrtPrecRound with mode Nearest.
func (z *Float) SqrtPrec(x *Float, prec uint) Ordering {
	return z.SqrtPrecRound(x, prec, Nearest)
}

// SqrtRound is like SqrtPrecRound with the precision of x, or 1 if it is 0.
func (z *Float) SqrtRound(x *Float, mode RoundingMode) Ordering {
	return z.SqrtPrecRound(x, opPrec(x, x), mode)
}

// Sqrt sets z to the square root of x rounded to nearest with the precision
// of x, and returns it.
func (z *Float) Sqrt(x *Float) *Float {
	z.SqrtPrecRound(x, opPrec(x, x), Nearest)
	return z
}

func (z *Float) sqrt(x *Float, prec uint32, mode RoundingMode) Ordering {
	if debugFloat {
		x.validate()
	}
	z.prec = prec
	switch {
	case x.form == nan || x.neg && x.form != zero:
		z.SetNaN()
		return Equal
	case x.form != finite:
		// ±0 and +Inf
		z.form = x.form
		z.neg = x.neg
		return Equal
	}

	// Write x as X × 2**e with X the integer significand of x, and
	// compute √x as √(X × 2**(2kW+t)) × 2**((e-t)/2 - kW), where t makes
	// the exponent even. k is chosen so that the integer root holds at least
	// words(prec)+1 words.
	nx := len(x.mant)
	e := int64(x.exp) - int64(nx)*_W
	t := uint(e & 1)
	k := words(prec) + 2

	var a, s, r, r2 big.Int
	a.SetBits(x.mant)
	s.Lsh(&a, uint(2*k)*_W+t)
	r.Sqrt(&s)
	sticky := r2.Mul(&r, &r).Cmp(&s) != 0

	m := nat(r.Bits())
	l := m.normalize()
	exp := int64(len(m))*_W - int64(l) + (e-int64(t))>>1 - int64(k)*_W
	z.neg = false
	return z.round(m, exp, sticky, prec, mode)
}

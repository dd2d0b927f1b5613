// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import "math/big"

// QuoPrecRound sets z to the quotient x/y rounded to prec bits according to
// mode, and returns the ordering of z relative to the exact quotient.
//
// 0/0 and Inf/Inf are NaN. A nonzero finite x divided by ±0 is an infinity
// with the sign of the exact quotient, and x/±Inf is a signed zero.
//
// QuoPrecRound panics if prec == 0 or prec > MaxPrec, and with a
// RoundingError if mode is Exact and the quotient cannot be represented
// exactly with prec bits.
func (z *Float) QuoPrecRound(x, y *Float, prec uint, mode RoundingMode) Ordering {
	p := validPrec(prec)
	return z.exact(mode, "division", func(z *Float) Ordering { return z.quo(x, y, p, mode) })
}

// QuoPrec is like QuoPrecRound with mode Nearest.
func (z *Float) QuoPrec(x, y *Float, prec uint) Ordering {
	return z.QuoPrecRound(x, y, prec, Nearest)
}

// QuoRound is like QuoPrecRound with a precision equal to the largest of the
// precisions of x and y, or 1 if both are 0.
func (z *Float) QuoRound(x, y *Float, mode RoundingMode) Ordering {
	return z.QuoPrecRound(x, y, opPrec(x, y), mode)
}

// Quo sets z to the quotient x/y rounded to nearest with the precision of the
// widest operand, and returns z.
func (z *Float) Quo(x, y *Float) *Float {
	z.QuoPrecRound(x, y, opPrec(x, y), Nearest)
	return z
}

// one is the exact value 1 with precision 1.
var one = &Float{mant: nat{_H}, exp: 1, prec: 1, form: finite}

// ReciprocalPrecRound sets z to 1/x rounded to prec bits according to mode,
// and returns the ordering of z relative to the exact reciprocal.
// The reciprocal of ±0 is ±Inf and the reciprocal of ±Inf is ±0.
//
// ReciprocalPrecRound panics if prec == 0 or prec > MaxPrec, and with a
// RoundingError if mode is Exact and the reciprocal cannot be represented
// exactly with prec bits.
func (z *Float) ReciprocalPrecRound(x *Float, prec uint, mode RoundingMode) Ordering {
	p := validPrec(prec)
	return z.exact(mode, "reciprocal", func(z *Float) Ordering { return z.quo(one, x, p, mode) })
}

// ReciprocalPrec is like ReciprocalPrecRound with mode Nearest.
func (z *Float) ReciprocalPrec(x *Float, prec uint) Ordering {
	return z.ReciprocalPrecRound(x, prec, Nearest)
}

// ReciprocalRound is like ReciprocalPrecRound with the precision of x, or 1 if
// it is 0.
func (z *Float) ReciprocalRound(x *Float, mode RoundingMode) Ordering {
	return z.ReciprocalPrecRound(x, opPrec(x, x), mode)
}

// Reciprocal sets z to 1/x rounded to nearest with the precision of x, and
// returns z.
func (z *Float) Reciprocal(x *Float) *Float {
	z.ReciprocalPrecRound(x, opPrec(x, x), Nearest)
	return z
}

func (z *Float) quo(x, y *Float, prec uint32, mode RoundingMode) Ordering {
	if debugFloat {
		x.validate()
		y.validate()
	}
	neg := x.neg != y.neg
	z.prec = prec
	switch {
	case x.form == nan || y.form == nan,
		x.form == zero && y.form == zero,
		x.form == inf && y.form == inf:
		z.SetNaN()
		return Equal
	case x.form == inf || y.form == zero:
		z.SetInf(neg)
		return Equal
	case x.form == zero || y.form == inf:
		z.SetZero(neg)
		return Equal
	}
	return z.uquo(x, y, neg, prec, mode)
}

// uquo sets z to (-1)**neg × |x| / |y| rounded to prec bits for finite
// nonzero x and y.
//
// The significand of x is shifted left by k words so that the integer
// quotient holds at least words(prec)+1 words: its round bit is then exact
// and a nonzero remainder only affects the sticky bit.
func (z *Float) uquo(x, y *Float, neg bool, prec uint32, mode RoundingMode) Ordering {
	nx, ny := len(x.mant), len(y.mant)
	k := words(prec) + 2 + ny - nx
	if k < 0 {
		k = 0
	}

	var a, b, u, q, r big.Int
	a.SetBits(x.mant)
	b.SetBits(y.mant)
	num := &a
	if k > 0 {
		// a shares its words with x and must not be used as a receiver
		num = u.Lsh(&a, uint(k)*_W)
	}
	q.QuoRem(num, &b, &r)

	m := nat(q.Bits())
	s := m.normalize()
	exp := int64(x.exp) - int64(y.exp) + int64(len(m)+ny-nx-k)*_W - int64(s)
	z.neg = neg
	return z.round(m, exp, r.Sign() != 0, prec, mode)
}

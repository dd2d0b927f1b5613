// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import "math/big"

// MulPrecRound sets z to the product x*y rounded to prec bits according to
// mode, and returns the ordering of z relative to the exact product.
//
// The product of an infinity and a zero is NaN.
//
// MulPrecRound panics if prec == 0 or prec > MaxPrec, and with a
// RoundingError if mode is Exact and the product cannot be represented
// exactly with prec bits.
func (z *Float) MulPrecRound(x, y *Float, prec uint, mode RoundingMode) Ordering {
	p := validPrec(prec)
	return z.exact(mode, "multiplication", func(z *Float) Ordering { return z.mul(x, y, p, mode) })
}

// MulPrec is like MulPrecRound with mode Nearest.
func (z *Float) MulPrec(x, y *Float, prec uint) Ordering {
	return z.MulPrecRound(x, y, prec, Nearest)
}

// MulRound is like MulPrecRound with a precision equal to the largest of the
// precisions of x and y, or 1 if both are 0.
func (z *Float) MulRound(x, y *Float, mode RoundingMode) Ordering {
	return z.MulPrecRound(x, y, opPrec(x, y), mode)
}

// Mul sets z to the product x*y rounded to nearest with the precision of the
// widest operand, and returns z.
func (z *Float) Mul(x, y *Float) *Float {
	z.MulPrecRound(x, y, opPrec(x, y), Nearest)
	return z
}

// SquarePrecRound sets z to x*x rounded to prec bits according to mode, and
// returns the ordering of z relative to the exact square. The square of a
// zero is +0.
//
// SquarePrecRound panics if prec == 0 or prec > MaxPrec, and with a
// RoundingError if mode is Exact and the square cannot be represented
// exactly with prec bits.
func (z *Float) SquarePrecRound(x *Float, prec uint, mode RoundingMode) Ordering {
	p := validPrec(prec)
	return z.exact(mode, "square", func(z *Float) Ordering { return z.mul(x, x, p, mode) })
}

// SquarePrec is like SquarePrecRound with mode Nearest.
func (z *Float) SquarePrec(x *Float, prec uint) Ordering {
	return z.SquarePrecRound(x, prec, Nearest)
}

// SquareRound is like SquarePrecRound with the precision of x, or 1 if it is
// 0.
func (z *Float) SquareRound(x *Float, mode RoundingMode) Ordering {
	return z.SquarePrecRound(x, opPrec(x, x), mode)
}

// Square sets z to x*x rounded to nearest with the precision of x, and
// returns z.
func (z *Float) Square(x *Float) *Float {
	z.SquarePrecRound(x, opPrec(x, x), Nearest)
	return z
}

func (z *Float) mul(x, y *Float, prec uint32, mode RoundingMode) Ordering {
	if debugFloat {
		x.validate()
		y.validate()
	}
	neg := x.neg != y.neg
	z.prec = prec
	switch {
	case x.form == nan || y.form == nan:
		z.SetNaN()
		return Equal
	case x.form == inf || y.form == inf:
		if x.form == zero || y.form == zero {
			// ±Inf × ±0
			z.SetNaN()
		} else {
			z.SetInf(neg)
		}
		return Equal
	case x.form == zero || y.form == zero:
		z.SetZero(neg)
		return Equal
	}
	return z.umul(x, y, neg, prec, mode)
}

// umul sets z to (-1)**neg × |x| × |y| rounded to prec bits for finite
// nonzero x and y.
//
// The product of the significands is computed exactly by math/big. It has
// len(x.mant)+len(y.mant) words and needs at most a one bit shift to be
// normalized.
func (z *Float) umul(x, y *Float, neg bool, prec uint32, mode RoundingMode) Ordering {
	var a, b, p big.Int
	a.SetBits(x.mant)
	if x == y {
		p.Mul(&a, &a)
	} else {
		b.SetBits(y.mant)
		p.Mul(&a, &b)
	}
	m := nat(p.Bits())
	s := m.normalize()
	z.neg = neg
	return z.round(m, int64(x.exp)+int64(y.exp)-int64(s), false, prec, mode)
}

// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

// AddPrecRound sets z to the sum x+y rounded to prec bits according to mode,
// and returns the ordering of z relative to the exact sum.
//
// (+Inf)+(-Inf) is NaN. The sum of two zeros of opposite signs, or of
// finite values that cancel exactly, is +0, or -0 when rounding toward -Inf.
//
// AddPrecRound panics if prec == 0 or prec > MaxPrec, and with a
// RoundingError if mode is Exact and the sum cannot be represented exactly
// with prec bits.
func (z *Float) AddPrecRound(x, y *Float, prec uint, mode RoundingMode) Ordering {
	p := validPrec(prec)
	return z.exact(mode, "addition", func(z *Float) Ordering { return z.add(x, y, p, mode) })
}

// AddPrec is like AddPrecRound with mode Nearest.
func (z *Float) AddPrec(x, y *Float, prec uint) Ordering {
	return z.AddPrecRound(x, y, prec, Nearest)
}

// AddRound is like AddPrecRound with a precision equal to the largest of the
// precisions of x and y, or 1 if both are 0.
func (z *Float) AddRound(x, y *Float, mode RoundingMode) Ordering {
	return z.AddPrecRound(x, y, opPrec(x, y), mode)
}

// Add sets z to the sum x+y rounded to nearest with the precision of the
// widest operand, and returns z.
func (z *Float) Add(x, y *Float) *Float {
	z.AddPrecRound(x, y, opPrec(x, y), Nearest)
	return z
}

func (z *Float) add(x, y *Float, prec uint32, mode RoundingMode) Ordering {
	if debugFloat {
		x.validate()
		y.validate()
	}
	if act := addTable[x.class()][y.class()]; act != actKernel {
		return z.apply(act, x, y, prec, mode)
	}
	if x.neg == y.neg {
		return z.uadd(x, y, x.neg, prec, mode)
	}
	return z.usub(x, y, x.neg, prec, mode)
}

// uadd sets z to (-1)**neg × (|x| + |y|) for finite nonzero x and y, rounded
// to prec bits.
func (z *Float) uadd(x, y *Float, neg bool, prec uint32, mode RoundingMode) Ordering {
	if x.prec != prec || y.prec != prec {
		return z.uaddGeneral(x, y, neg, prec, mode)
	}
	switch {
	case prec < _W:
		return z.uadd1(x, y, neg, prec, mode)
	case prec == _W:
		return z.uaddW(x, y, neg, prec, mode)
	case prec < 2*_W:
		return z.uadd2(x, y, neg, prec, mode)
	case prec == 2*_W:
		return z.uadd2W(x, y, neg, prec, mode)
	}
	return z.uaddN(x, y, neg, prec, mode)
}

// uaddGeneral is like uadd for operands and result of arbitrary precisions.
func (z *Float) uaddGeneral(x, y *Float, neg bool, prec uint32, mode RoundingMode) Ordering {
	if x.exp < y.exp {
		x, y = y, x
	}
	ym, d, n := generalWindow(x, y, prec)

	// one extra word for the carry
	wp := getNat(n + 1)
	w := *wp
	tail := alignInto(w[:n], ym, d)
	if debugFloat && tail {
		panic("general window too small")
	}
	w[n] = addTopVV(w[:n], x.mant)
	s := w.normalize()
	z.neg = neg
	o := z.round(w, int64(x.exp)+_W-int64(s), false, prec, mode)
	putNat(wp)
	return o
}

// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

// SubPrecRound sets z to the difference x-y rounded to prec bits according to
// mode, and returns the ordering of z relative to the exact difference.
//
// Special values follow IEEE 754 conventions: x-x is +0 (-0 when rounding
// toward -Inf) for finite x, (+Inf)-(+Inf) and (-Inf)-(-Inf) are NaN, and
// (-0)-(-0) is +0 in all rounding modes.
//
// SubPrecRound panics if prec == 0 or prec > MaxPrec, and with a RoundingError
// if mode is Exact and the difference cannot be represented exactly with prec
// bits.
func (z *Float) SubPrecRound(x, y *Float, prec uint, mode RoundingMode) Ordering {
	p := validPrec(prec)
	return z.exact(mode, "subtraction", func(z *Float) Ordering { return z.sub(x, y, p, mode) })
}

// SubPrec is like SubPrecRound with mode Nearest.
func (z *Float) SubPrec(x, y *Float, prec uint) Ordering {
	return z.SubPrecRound(x, y, prec, Nearest)
}

// SubRound is like SubPrecRound with a precision equal to the largest of the
// precisions of x and y, or 1 if both are 0.
func (z *Float) SubRound(x, y *Float, mode RoundingMode) Ordering {
	return z.SubPrecRound(x, y, opPrec(x, y), mode)
}

// Sub sets z to the difference x-y rounded to nearest with the precision of
// the widest operand, and returns z.
func (z *Float) Sub(x, y *Float) *Float {
	z.SubPrecRound(x, y, opPrec(x, y), Nearest)
	return z
}

func (z *Float) sub(x, y *Float, prec uint32, mode RoundingMode) Ordering {
	if debugFloat {
		x.validate()
		y.validate()
	}
	if act := subTable[x.class()][y.class()]; act != actKernel {
		return z.apply(act, x, y, prec, mode)
	}
	// x - y = x + (-y)
	if x.neg != y.neg {
		return z.uadd(x, y, x.neg, prec, mode)
	}
	return z.usub(x, y, x.neg, prec, mode)
}

// usub sets z to (-1)**neg × (|x| - |y|) for finite nonzero x and y, rounded
// to prec bits, selecting a kernel by word-length class.
func (z *Float) usub(x, y *Float, neg bool, prec uint32, mode RoundingMode) Ordering {
	if x.prec != prec || y.prec != prec {
		return z.usubGeneral(x, y, neg, prec, mode)
	}
	switch {
	case prec < _W:
		return z.usub1(x, y, neg, prec, mode)
	case prec == _W:
		return z.usubW(x, y, neg, prec, mode)
	case prec < 2*_W:
		return z.usub2(x, y, neg, prec, mode)
	case prec == 2*_W:
		return z.usub2W(x, y, neg, prec, mode)
	case prec < 3*_W:
		return z.usub3(x, y, neg, prec, mode)
	}
	return z.usubN(x, y, neg, prec, mode)
}

// stickyBit stands in for an operand lying far below the rounding position
// of the result: only its sign and its being nonzero matter.
var stickyBit = nat{_H}

// generalWindow returns the significand of y to use in a general kernel, its
// shift d relative to x, and the number of words of a window holding both x
// and the shifted y exactly, with at least words(prec) words.
// x must have the larger exponent.
func generalWindow(x, y *Float, prec uint32) (ym nat, d uint64, n int) {
	ym = y.mant
	d = uint64(int64(x.exp) - int64(y.exp))
	if m := uint64(umax32(x.prec, prec)) + 2; d > m {
		// |y| < 2**(x.exp-m) is below the round bit of any result, only the
		// sticky bit is affected.
		ym, d = stickyBit, m+1
	}
	n = len(x.mant)
	if k := int((d + uint64(len(ym))*_W + _W - 1) / _W); k > n {
		n = k
	}
	if k := words(prec); k > n {
		n = k
	}
	return ym, d, n
}

// usubGeneral is like usub for operands and result of arbitrary precisions.
// The difference is computed exactly in a scratch window before rounding.
func (z *Float) usubGeneral(x, y *Float, neg bool, prec uint32, mode RoundingMode) Ordering {
	switch x.ucmp(y) {
	case 0:
		return z.cancel(prec, mode)
	case -1:
		x, y, neg = y, x, !neg
	}
	ym, d, n := generalWindow(x, y, prec)

	wp := getNat(n)
	w := *wp
	tail := alignInto(w, ym, d)
	if debugFloat && tail {
		panic("general window too small")
	}
	subTopVV(w, x.mant)
	s := w.normalize()
	z.neg = neg
	o := z.round(w, int64(x.exp)-int64(s), false, prec, mode)
	putNat(wp)
	return o
}

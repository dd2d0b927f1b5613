// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the size specialized kernels computing the sum of the
// magnitudes of two finite Floats of the same precision as the result.
//
// The operand with the larger exponent is held in the top words of a window
// one word wider than the result and the aligned other operand is added to
// it. A carry out of the top word shifts the window right by one bit, the bit
// shifted out joining the sticky bit.

package bigfloat

// uadd1 sets z to (-1)**neg × (|x| + |y|) for x.prec == y.prec == prec < _W.
func (z *Float) uadd1(x, y *Float, neg bool, prec uint32, mode RoundingMode) Ordering {
	hi, lo, tail, exp := uaddWord(x, y)
	return z.finish1(hi, lo, tail, exp, neg, prec, mode)
}

// uaddW sets z to (-1)**neg × (|x| + |y|) for x.prec == y.prec == prec == _W.
func (z *Float) uaddW(x, y *Float, neg bool, prec uint32, mode RoundingMode) Ordering {
	hi, lo, tail, exp := uaddWord(x, y)
	return z.finishW(hi, lo, tail, exp, neg, prec, mode)
}

// uaddWord returns the normalized 2-word window of |x| + |y| for single word
// significands.
func uaddWord(x, y *Float) (hi, lo Word, tail bool, exp int64) {
	x0, xe := x.mant[0], int64(x.exp)
	y0, ye := y.mant[0], int64(y.exp)
	if xe < ye {
		x0, xe, y0, ye = y0, ye, x0, xe
	}
	a1, a0, tail := align1(y0, uint64(xe-ye))
	lo = a0
	hi, c := addWithCarry(x0, a1, 0)
	if c != 0 {
		tail = tail || lo&1 != 0
		lo = shiftRightFrom(hi, lo, 1)
		hi = hi>>1 | _H
		xe++
	}
	return hi, lo, tail, xe
}

// uadd2 sets z to (-1)**neg × (|x| + |y|) for x.prec == y.prec == prec with
// _W < prec < 2*_W.
func (z *Float) uadd2(x, y *Float, neg bool, prec uint32, mode RoundingMode) Ordering {
	w2, w1, w0, tail, exp := uaddDouble(x, y)
	return z.finish2(w2, w1, w0, tail, exp, neg, prec, mode)
}

// uadd2W sets z to (-1)**neg × (|x| + |y|) for x.prec == y.prec == prec ==
// 2*_W.
func (z *Float) uadd2W(x, y *Float, neg bool, prec uint32, mode RoundingMode) Ordering {
	w2, w1, w0, tail, exp := uaddDouble(x, y)
	return z.finish2W(w2, w1, w0, tail, exp, neg, prec, mode)
}

// uaddDouble returns the normalized 3-word window of |x| + |y| for double
// word significands.
func uaddDouble(x, y *Float) (w2, w1, w0 Word, tail bool, exp int64) {
	x1, x0, xe := x.mant[1], x.mant[0], int64(x.exp)
	y1, y0, ye := y.mant[1], y.mant[0], int64(y.exp)
	if xe < ye {
		x1, x0, xe, y1, y0, ye = y1, y0, ye, x1, x0, xe
	}
	a2, a1, a0, tail := align2(y1, y0, uint64(xe-ye))
	w0 = a0
	w1, c := addWithCarry(x0, a1, 0)
	w2, c = addWithCarry(x1, a2, c)
	if c != 0 {
		tail = tail || w0&1 != 0
		w0 = shiftRightFrom(w1, w0, 1)
		w1 = shiftRightFrom(w2, w1, 1)
		w2 = w2>>1 | _H
		xe++
	}
	return w2, w1, w0, tail, xe
}

// uaddN sets z to (-1)**neg × (|x| + |y|) for x.prec == y.prec == prec >
// 2*_W, using a pooled window of n+1 words.
func (z *Float) uaddN(x, y *Float, neg bool, prec uint32, mode RoundingMode) Ordering {
	if x.exp < y.exp {
		x, y = y, x
	}
	xe := int64(x.exp)
	n := len(x.mant)

	wp := getNat(n + 1)
	w := *wp
	tail := alignInto(w, y.mant, uint64(xe-int64(y.exp)))
	if addTopVV(w, x.mant) != 0 {
		tail = tail || w[0]&1 != 0
		shrVU(w, w, 1)
		w[n] |= _H
		xe++
	}
	z.neg = neg
	o := z.round(w, xe, tail, prec, mode)
	putNat(wp)
	return o
}

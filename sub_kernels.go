// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the size specialized kernels computing the difference
// of the magnitudes of two finite Floats of the same precision as the result.
//
// All kernels share the same shape:
//
//  1. order the operands so that |x| > |y|, flipping the sign of the result
//     if they are swapped;
//  2. if both exponents are equal, the difference is exact: subtract,
//     normalize, done;
//  3. otherwise subtract the aligned y from a window of n+1 words holding x in
//     its top n words. If nonzero bits of y fell below the window, subtract one
//     more unit at the bottom of the window: the exact difference then lies
//     strictly between the window and the window plus one unit, and the
//     lost bits only contribute to the sticky bit;
//  4. normalize, round, and propagate the rounding carry into the exponent.
//
// Renormalization after a cancellation of more than one bit only happens
// when the exponents differ by one, in which case y fits in the window and
// the result is exact before rounding.

package bigfloat

// usub1 sets z to (-1)**neg × (|x| - |y|) for x.prec == y.prec == prec < _W.
func (z *Float) usub1(x, y *Float, neg bool, prec uint32, mode RoundingMode) Ordering {
	x0, xe := x.mant[0], int64(x.exp)
	y0, ye := y.mant[0], int64(y.exp)
	if xe < ye || xe == ye && x0 < y0 {
		x0, xe, y0, ye, neg = y0, ye, x0, xe, !neg
	}

	if xe == ye {
		if x0 == y0 {
			return z.cancel(prec, mode)
		}
		h := x0 - y0
		s := nlz(h)
		return z.setMant1(h<<s, xe-int64(s), neg, prec, Equal, mode)
	}

	a1, a0, tail := align1(y0, uint64(xe-ye))
	lo, b := subWithBorrow(0, a0, 0)
	hi, _ := subWithBorrow(x0, a1, b)
	if tail {
		lo, b = subWithBorrow(lo, 1, 0)
		hi -= b
	}
	hi, lo, s := norm2(hi, lo)
	return z.finish1(hi, lo, tail, xe-int64(s), neg, prec, mode)
}

// usubW sets z to (-1)**neg × (|x| - |y|) for x.prec == y.prec == prec == _W.
func (z *Float) usubW(x, y *Float, neg bool, prec uint32, mode RoundingMode) Ordering {
	x0, xe := x.mant[0], int64(x.exp)
	y0, ye := y.mant[0], int64(y.exp)
	if xe < ye || xe == ye && x0 < y0 {
		x0, xe, y0, ye, neg = y0, ye, x0, xe, !neg
	}

	if xe == ye {
		if x0 == y0 {
			return z.cancel(prec, mode)
		}
		h := x0 - y0
		s := nlz(h)
		return z.setMant1(h<<s, xe-int64(s), neg, prec, Equal, mode)
	}

	a1, a0, tail := align1(y0, uint64(xe-ye))
	lo, b := subWithBorrow(0, a0, 0)
	hi, _ := subWithBorrow(x0, a1, b)
	if tail {
		lo, b = subWithBorrow(lo, 1, 0)
		hi -= b
	}
	// With d == 1, x0 = 0x80...0 and y0 = 0xff...f, the whole top word
	// cancels.
	hi, lo, s := norm2(hi, lo)
	return z.finishW(hi, lo, tail, xe-int64(s), neg, prec, mode)
}

// less2 reports whether the double word (x1, x0) is less than (y1, y0).
func less2(x1, x0, y1, y0 Word) bool {
	return x1 < y1 || x1 == y1 && x0 < y0
}

// usub2 sets z to (-1)**neg × (|x| - |y|) for x.prec == y.prec == prec with
// _W < prec < 2*_W.
func (z *Float) usub2(x, y *Float, neg bool, prec uint32, mode RoundingMode) Ordering {
	x1, x0, xe := x.mant[1], x.mant[0], int64(x.exp)
	y1, y0, ye := y.mant[1], y.mant[0], int64(y.exp)
	if xe < ye || xe == ye && less2(x1, x0, y1, y0) {
		x1, x0, xe, y1, y0, ye, neg = y1, y0, ye, x1, x0, xe, !neg
	}

	if xe == ye {
		if x1 == y1 && x0 == y0 {
			return z.cancel(prec, mode)
		}
		h0, b := subWithBorrow(x0, y0, 0)
		h1, _ := subWithBorrow(x1, y1, b)
		h1, h0, s := norm2(h1, h0)
		return z.setMant2(h1, h0, xe-int64(s), neg, prec, Equal, mode)
	}

	a2, a1, a0, tail := align2(y1, y0, uint64(xe-ye))
	w0, b := subWithBorrow(0, a0, 0)
	w1, b := subWithBorrow(x0, a1, b)
	w2, _ := subWithBorrow(x1, a2, b)
	if tail {
		w0, b = subWithBorrow(w0, 1, 0)
		w1, b = subWithBorrow(w1, 0, b)
		w2 -= b
	}
	w2, w1, w0, s := norm3(w2, w1, w0)
	return z.finish2(w2, w1, w0, tail, xe-int64(s), neg, prec, mode)
}

// usub2W sets z to (-1)**neg × (|x| - |y|) for x.prec == y.prec == prec ==
// 2*_W.
func (z *Float) usub2W(x, y *Float, neg bool, prec uint32, mode RoundingMode) Ordering {
	x1, x0, xe := x.mant[1], x.mant[0], int64(x.exp)
	y1, y0, ye := y.mant[1], y.mant[0], int64(y.exp)
	if xe < ye || xe == ye && less2(x1, x0, y1, y0) {
		x1, x0, xe, y1, y0, ye, neg = y1, y0, ye, x1, x0, xe, !neg
	}

	if xe == ye {
		if x1 == y1 && x0 == y0 {
			return z.cancel(prec, mode)
		}
		h0, b := subWithBorrow(x0, y0, 0)
		h1, _ := subWithBorrow(x1, y1, b)
		h1, h0, s := norm2(h1, h0)
		return z.setMant2(h1, h0, xe-int64(s), neg, prec, Equal, mode)
	}

	a2, a1, a0, tail := align2(y1, y0, uint64(xe-ye))
	w0, b := subWithBorrow(0, a0, 0)
	w1, b := subWithBorrow(x0, a1, b)
	w2, _ := subWithBorrow(x1, a2, b)
	if tail {
		w0, b = subWithBorrow(w0, 1, 0)
		w1, b = subWithBorrow(w1, 0, b)
		w2 -= b
	}
	w2, w1, w0, s := norm3(w2, w1, w0)
	return z.finish2W(w2, w1, w0, tail, xe-int64(s), neg, prec, mode)
}

// less3 reports whether the triple word (x2, x1, x0) is less than
// (y2, y1, y0).
func less3(x2, x1, x0, y2, y1, y0 Word) bool {
	return x2 < y2 || x2 == y2 && less2(x1, x0, y1, y0)
}

// usub3 sets z to (-1)**neg × (|x| - |y|) for x.prec == y.prec == prec with
// 2*_W < prec < 3*_W.
func (z *Float) usub3(x, y *Float, neg bool, prec uint32, mode RoundingMode) Ordering {
	x2, x1, x0, xe := x.mant[2], x.mant[1], x.mant[0], int64(x.exp)
	y2, y1, y0, ye := y.mant[2], y.mant[1], y.mant[0], int64(y.exp)
	if xe < ye || xe == ye && less3(x2, x1, x0, y2, y1, y0) {
		x2, x1, x0, xe, y2, y1, y0, ye, neg = y2, y1, y0, ye, x2, x1, x0, xe, !neg
	}

	if xe == ye {
		if x2 == y2 && x1 == y1 && x0 == y0 {
			return z.cancel(prec, mode)
		}
		h0, b := subWithBorrow(x0, y0, 0)
		h1, b := subWithBorrow(x1, y1, b)
		h2, _ := subWithBorrow(x2, y2, b)
		h2, h1, h0, s := norm3(h2, h1, h0)
		return z.setMant3(h2, h1, h0, xe-int64(s), neg, prec, Equal, mode)
	}

	a3, a2, a1, a0, tail := align3(y2, y1, y0, uint64(xe-ye))
	w0, b := subWithBorrow(0, a0, 0)
	w1, b := subWithBorrow(x0, a1, b)
	w2, b := subWithBorrow(x1, a2, b)
	w3, _ := subWithBorrow(x2, a3, b)
	if tail {
		w0, b = subWithBorrow(w0, 1, 0)
		w1, b = subWithBorrow(w1, 0, b)
		w2, b = subWithBorrow(w2, 0, b)
		w3 -= b
	}
	w3, w2, w1, w0, s := norm4(w3, w2, w1, w0)
	return z.finish3(w3, w2, w1, w0, tail, xe-int64(s), neg, prec, mode)
}

// usubN sets z to (-1)**neg × (|x| - |y|) for x.prec == y.prec == prec >=
// 3*_W. The n+1 word window is borrowed from the scratch pool.
func (z *Float) usubN(x, y *Float, neg bool, prec uint32, mode RoundingMode) Ordering {
	switch x.ucmp(y) {
	case 0:
		return z.cancel(prec, mode)
	case -1:
		x, y, neg = y, x, !neg
	}
	xe := int64(x.exp)
	d := uint64(xe - int64(y.exp))
	n := len(x.mant)

	if d == 0 {
		tp := getNat(n)
		t := *tp
		subVV(t, x.mant, y.mant)
		s := t.normalize()
		z.neg = neg
		o := z.round(t, xe-int64(s), false, prec, mode)
		putNat(tp)
		return o
	}

	wp := getNat(n + 1)
	w := *wp
	tail := alignInto(w, y.mant, d)
	subTopVV(w, x.mant)
	if tail {
		subVW(w, w, 1)
	}
	s := w.normalize()
	z.neg = neg
	o := z.round(w, xe-int64(s), tail, prec, mode)
	putNat(wp)
	return o
}

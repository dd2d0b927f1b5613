// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

// decide returns whether a significand truncated to the target precision
// must be incremented by one ulp, and the ordering of the rounded value
// relative to the exact one.
//
// rbit is the first bit below the retained precision and sticky is the OR of
// all bits below rbit. odd is the value of the last retained bit. neg is the
// sign of the result: Floor and Ceiling depend on it, and the returned
// ordering describes the signed values, not the magnitudes.
//
// Exact never increments. An Exact result with rbit or sticky set has a non
// Equal ordering; it is up to the caller to raise a RoundingError.
func decide(mode RoundingMode, neg, rbit, sticky, odd bool) (inc bool, o Ordering) {
	if !rbit && !sticky {
		return false, Equal
	}
	switch mode {
	case Floor:
		inc = neg
	case Ceiling:
		inc = !neg
	case Down, Exact:
		// nothing to do
	case Up:
		inc = true
	case Nearest:
		inc = rbit && (sticky || odd)
	default:
		panic("unreachable")
	}
	return inc, makeOrd(inc != neg)
}

// round sets z's significand to the top prec bits of the normalized
// significand m, rounded according to mode, and z's exponent to exp, and
// returns the ordering of z relative to the exact value 0.m * 2**exp,
// where sticky reports nonzero bits below m.
//
// z.neg must be set. m may alias z.mant. If m is shorter than the result, it
// must be exact (sticky == false).
//
// Exponent overflow and underflow are handled as described for setExp.
func (z *Float) round(m nat, exp int64, sticky bool, prec uint32, mode RoundingMode) Ordering {
	if debugFloat && (len(m) == 0 || m[len(m)-1]&_H == 0) {
		panic("round of non-normalized significand")
	}
	n := words(prec)
	if len(m) < n {
		// m is exact and narrower than prec: pad with zero words
		if debugFloat && sticky {
			panic("round of a short significand with sticky bits")
		}
		k := n - len(m)
		z.prec = prec
		z.mant = z.mant.make(n)
		copy(z.mant[k:], m)
		z.mant[:k].clear()
		return z.setExp(exp, Equal, mode)
	}
	shift := uint(n*_W) - uint(prec) // unused bits in the lowest retained word
	top, rest := m[len(m)-n:], m[:len(m)-n]

	var rbit bool
	if shift > 0 {
		half := Word(1) << (shift - 1)
		rbit = top[0]&half != 0
		sticky = sticky || top[0]&(half-1) != 0 || rest.nonzero()
	} else if len(rest) > 0 {
		r := rest[len(rest)-1]
		rbit = r&_H != 0
		sticky = sticky || r&(_H-1) != 0 || rest[:len(rest)-1].nonzero()
	}

	z.prec = prec
	z.mant = z.mant.make(n)
	copy(z.mant, top)
	z.mant[0] &^= lowMask(shift)

	inc, o := decide(mode, z.neg, rbit, sticky, z.mant[0]>>shift&1 != 0)
	if inc {
		if addVW(z.mant, z.mant, Word(1)<<shift) != 0 {
			// all retained bits were 1: the significand becomes 0.1
			z.mant[n-1] = _H
			exp++
		}
	}
	return z.setExp(exp, o, mode)
}

// setExp sets the exponent of the rounded finite z to exp, which may be out of
// range, and returns the ordering of the result given the ordering o of the
// in-range result.
//
// On overflow, z becomes ±Inf or the largest finite value of its precision
// depending on the rounding direction. On underflow, z becomes ±0 or the
// smallest positive value of its precision.
func (z *Float) setExp(exp int64, o Ordering, mode RoundingMode) Ordering {
	switch {
	case exp > MaxExp:
		return z.overflow(mode)
	case exp < MinExp:
		return z.underflow(exp, o, mode)
	}
	z.form = finite
	z.exp = int32(exp)
	if debugFloat {
		z.validate()
	}
	return o
}

// overflow sets z to the result of rounding a value of magnitude larger than
// the largest finite value to z.prec bits.
func (z *Float) overflow(mode RoundingMode) Ordering {
	switch mode {
	case Up, Nearest:
		return z.setInfOrd()
	case Ceiling:
		if !z.neg {
			return z.setInfOrd()
		}
	case Floor:
		if z.neg {
			return z.setInfOrd()
		}
	}
	z.setMaxFinite()
	return makeOrd(z.neg)
}

func (z *Float) setInfOrd() Ordering {
	z.form = inf
	return makeOrd(!z.neg)
}

// setMaxFinite sets |z| to the largest finite value of precision z.prec.
func (z *Float) setMaxFinite() {
	n := words(z.prec)
	z.mant = z.mant.make(n)
	for i := range z.mant {
		z.mant[i] = _M
	}
	z.mant[0] &^= lowMask(uint(n*_W) - uint(z.prec))
	z.form = finite
	z.exp = MaxExp
}

// setMinPositive sets |z| to the smallest positive value 0.1 * 2**MinExp.
func (z *Float) setMinPositive() {
	n := words(z.prec)
	z.mant = z.mant.make(n)
	z.mant.clear()
	z.mant[n-1] = _H
	z.form = finite
	z.exp = MinExp
}

// underflow sets z to the result of rounding the nonzero value
// ±0.mant * 2**exp, exp < MinExp, to the representable range. o is the
// ordering of z.mant relative to the exact value.
func (z *Float) underflow(exp int64, o Ordering, mode RoundingMode) Ordering {
	up := false // round to the smallest positive magnitude
	switch mode {
	case Nearest:
		mag := o
		if z.neg {
			mag = o.Reverse()
		}
		// The midpoint between 0 and the smallest positive value is
		// 0.1 * 2**(MinExp-1). Ties go to 0.
		up = exp == MinExp-1 && (mag == Less || !z.mant.isPow2())
	case Up:
		up = true
	case Ceiling:
		up = !z.neg
	case Floor:
		up = z.neg
	}
	if up {
		z.setMinPositive()
		return makeOrd(!z.neg)
	}
	z.form = zero
	return makeOrd(z.neg)
}

// ----------------------------------------------------------------------------
// Rounding of fixed size kernel windows
//
// The finishN functions round a normalized window held in registers to the
// retained words of the result, set z and return the ordering. sticky
// reports nonzero bits below the window.

// finish1 rounds (hi, lo) to prec < _W bits.
func (z *Float) finish1(hi, lo Word, sticky bool, exp int64, neg bool, prec uint32, mode RoundingMode) Ordering {
	shift := _W - uint(prec)
	half := Word(1) << (shift - 1)
	rbit := hi&half != 0
	sticky = sticky || lo != 0 || hi&(half-1) != 0
	hi &^= lowMask(shift)
	inc, o := decide(mode, neg, rbit, sticky, hi&(half<<1) != 0)
	if inc {
		hi += half << 1
		if hi == 0 {
			hi = _H
			exp++
		}
	}
	return z.setMant1(hi, exp, neg, prec, o, mode)
}

// finishW rounds (hi, lo) to prec == _W bits.
func (z *Float) finishW(hi, lo Word, sticky bool, exp int64, neg bool, prec uint32, mode RoundingMode) Ordering {
	rbit := lo&_H != 0
	sticky = sticky || lo&(_H-1) != 0
	inc, o := decide(mode, neg, rbit, sticky, hi&1 != 0)
	if inc {
		hi++
		if hi == 0 {
			hi = _H
			exp++
		}
	}
	return z.setMant1(hi, exp, neg, prec, o, mode)
}

// finish2 rounds (w2, w1, w0) to _W < prec < 2*_W bits.
func (z *Float) finish2(w2, w1, w0 Word, sticky bool, exp int64, neg bool, prec uint32, mode RoundingMode) Ordering {
	shift := 2*_W - uint(prec)
	half := Word(1) << (shift - 1)
	rbit := w1&half != 0
	sticky = sticky || w0 != 0 || w1&(half-1) != 0
	w1 &^= lowMask(shift)
	inc, o := decide(mode, neg, rbit, sticky, w1&(half<<1) != 0)
	if inc {
		var c Word
		w1, c = addWithCarry(w1, half<<1, 0)
		w2, c = addWithCarry(w2, 0, c)
		if c != 0 {
			w2 = _H
			exp++
		}
	}
	return z.setMant2(w2, w1, exp, neg, prec, o, mode)
}

// finish2W rounds (w2, w1, w0) to prec == 2*_W bits.
func (z *Float) finish2W(w2, w1, w0 Word, sticky bool, exp int64, neg bool, prec uint32, mode RoundingMode) Ordering {
	rbit := w0&_H != 0
	sticky = sticky || w0&(_H-1) != 0
	inc, o := decide(mode, neg, rbit, sticky, w1&1 != 0)
	if inc {
		var c Word
		w1, c = addWithCarry(w1, 1, 0)
		w2, c = addWithCarry(w2, 0, c)
		if c != 0 {
			w2 = _H
			exp++
		}
	}
	return z.setMant2(w2, w1, exp, neg, prec, o, mode)
}

// finish3 rounds (w3, w2, w1, w0) to 2*_W < prec < 3*_W bits.
func (z *Float) finish3(w3, w2, w1, w0 Word, sticky bool, exp int64, neg bool, prec uint32, mode RoundingMode) Ordering {
	shift := 3*_W - uint(prec)
	half := Word(1) << (shift - 1)
	rbit := w1&half != 0
	sticky = sticky || w0 != 0 || w1&(half-1) != 0
	w1 &^= lowMask(shift)
	inc, o := decide(mode, neg, rbit, sticky, w1&(half<<1) != 0)
	if inc {
		var c Word
		w1, c = addWithCarry(w1, half<<1, 0)
		w2, c = addWithCarry(w2, 0, c)
		w3, c = addWithCarry(w3, 0, c)
		if c != 0 {
			w3 = _H
			exp++
		}
	}
	return z.setMant3(w3, w2, w1, exp, neg, prec, o, mode)
}

func (z *Float) setMant1(m0 Word, exp int64, neg bool, prec uint32, o Ordering, mode RoundingMode) Ordering {
	z.neg = neg
	z.prec = prec
	z.mant = z.mant.make(1)
	z.mant[0] = m0
	return z.setExp(exp, o, mode)
}

func (z *Float) setMant2(m1, m0 Word, exp int64, neg bool, prec uint32, o Ordering, mode RoundingMode) Ordering {
	z.neg = neg
	z.prec = prec
	z.mant = z.mant.make(2)
	z.mant[1], z.mant[0] = m1, m0
	return z.setExp(exp, o, mode)
}

func (z *Float) setMant3(m2, m1, m0 Word, exp int64, neg bool, prec uint32, o Ordering, mode RoundingMode) Ordering {
	z.neg = neg
	z.prec = prec
	z.mant = z.mant.make(3)
	z.mant[2], z.mant[1], z.mant[0] = m2, m1, m0
	return z.setExp(exp, o, mode)
}

// cancel sets z to the zero resulting from the exact cancellation x - x of
// finite operands: +0, or -0 if mode is Floor.
func (z *Float) cancel(prec uint32, mode RoundingMode) Ordering {
	z.prec = prec
	z.SetZero(mode == Floor)
	return Equal
}

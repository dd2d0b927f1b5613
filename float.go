// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"fmt"
)

// A nonzero finite Float represents a multi-precision binary floating point
// number
//
//	sign × mantissa × 2**exponent
//
// with 0.5 <= mantissa < 1.0, and MinExp <= exponent <= MaxExp. A Float may
// also be zero (+0, -0), infinite (+Inf, -Inf) or not-a-number (NaN).
//
// Each Float value has a precision: the maximum number of mantissa bits
// available to represent the value. Unlike big.Float, a Float has no rounding
// mode or accuracy attached: every operation takes a target precision and a
// rounding mode and returns the Ordering of the rounded result relative to the
// exact one.
//
// The zero (uninitialized) value for a Float is ready to use and represents
// the number +0.0 exactly, with precision 0.
type Float struct {
	mant nat
	exp  int32
	prec uint32
	form form
	neg  bool
}

// Prec returns the mantissa precision of x in bits.
func (x *Float) Prec() uint {
	return uint(x.prec)
}

// opPrec returns the default result precision of an operation on x and y.
func opPrec(x, y *Float) uint {
	if p := umax32(x.prec, y.prec); p > 0 {
		return uint(p)
	}
	return 1
}

// MinPrec returns the minimum precision required to represent x exactly
// (i.e., the smallest prec before x.SetPrec(prec) would start rounding x).
// The result is 0 for |x| == 0, |x| == Inf and NaN.
func (x *Float) MinPrec() uint {
	if x.form != finite {
		return 0
	}
	return uint(len(x.mant))*_W - uint(x.mant.lsb())
}

// Sign returns:
//
//	-1 if x <   0
//	 0 if x is ±0 or NaN
//	+1 if x >   0
func (x *Float) Sign() int {
	if debugFloat {
		x.validate()
	}
	if x.form == zero || x.form == nan {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// Signbit reports whether x is negative or negative zero.
func (x *Float) Signbit() bool {
	return x.neg
}

// IsInf reports whether x is +Inf or -Inf.
func (x *Float) IsInf() bool {
	return x.form == inf
}

// IsNaN reports whether x is a NaN.
func (x *Float) IsNaN() bool {
	return x.form == nan
}

// IsZero reports whether x is +0 or -0.
func (x *Float) IsZero() bool {
	return x.form == zero
}

// IsInt reports whether x is an integer.
// ±Inf and NaN are not integers.
func (x *Float) IsInt() bool {
	if debugFloat {
		x.validate()
	}
	if x.form != finite {
		return x.form == zero
	}
	// x.form == finite
	if x.exp <= 0 {
		return false
	}
	// x.exp > 0
	return uint(x.exp) >= x.MinPrec()
}

// SetInf sets z to the infinite Float -Inf if signbit is
// set, or +Inf if signbit is not set, and returns z. The
// precision of z is unchanged.
func (z *Float) SetInf(signbit bool) *Float {
	z.form = inf
	z.neg = signbit
	return z
}

// SetNaN sets z to NaN and returns z. The precision of z is unchanged.
func (z *Float) SetNaN() *Float {
	z.form = nan
	z.neg = false
	return z
}

// SetZero sets z to -0 if signbit is set, or +0 if signbit is not set, and
// returns z. The precision of z is unchanged.
func (z *Float) SetZero(signbit bool) *Float {
	z.form = zero
	z.neg = signbit
	return z
}

// Set sets z to the exact value of x, including its precision, and returns z.
func (z *Float) Set(x *Float) *Float {
	if debugFloat {
		x.validate()
	}
	if z != x {
		z.form = x.form
		z.neg = x.neg
		z.prec = x.prec
		if x.form == finite {
			z.exp = x.exp
			z.mant = z.mant.set(x.mant)
		}
	}
	return z
}

// Copy is like Set but allocates a new Float if z is nil.
func (z *Float) Copy(x *Float) *Float {
	if z == nil {
		z = new(Float)
	}
	return z.Set(x)
}

// SetPrec sets z's precision to prec and returns the (possibly) rounded
// value of z. Rounding is to nearest, ties to even.
//
// SetPrec panics if prec == 0 or prec > MaxPrec.
func (z *Float) SetPrec(prec uint) *Float {
	z.SetPrecRound(prec, Nearest)
	return z
}

// SetPrecRound sets z's precision to prec, rounds z according to mode and
// returns the ordering of the new value of z relative to the old one.
//
// SetPrecRound panics if prec == 0 or prec > MaxPrec, and with a
// RoundingError if mode is Exact and z cannot be represented exactly with
// prec bits.
func (z *Float) SetPrecRound(prec uint, mode RoundingMode) Ordering {
	p := validPrec(prec)
	return z.exact(mode, "precision reduction", func(t *Float) Ordering {
		t.Set(z)
		return t.setPrecRound(p, mode)
	})
}

// exact calls f with z and returns its result. If mode is Exact, f runs on a
// scratch Float instead and z is only set if the result is exact; otherwise
// exact panics with a RoundingError and z is unchanged.
func (z *Float) exact(mode RoundingMode, op string, f func(*Float) Ordering) Ordering {
	if mode != Exact {
		return f(z)
	}
	var t Float
	if o := f(&t); o != Equal {
		panic(RoundingError{"bigfloat: inexact " + op})
	}
	z.Set(&t)
	return Equal
}

func (z *Float) setPrecRound(prec uint32, mode RoundingMode) Ordering {
	if z.form != finite || prec == z.prec {
		z.prec = prec
		return Equal
	}
	if prec > z.prec {
		// widen: the new bottom words are zero
		m := z.mant
		n := words(prec)
		z.mant = z.mant.make(n)
		copy(z.mant[n-len(m):], m)
		z.mant[:n-len(m)].clear()
		z.prec = prec
		return Equal
	}
	return z.round(z.mant, int64(z.exp), false, prec, mode)
}

// setRounded sets z to x with its sign replaced by neg, rounded to prec bits.
func (z *Float) setRounded(x *Float, neg bool, prec uint32, mode RoundingMode) Ordering {
	z.Set(x)
	if z.form != nan {
		z.neg = neg
	}
	return z.setPrecRound(prec, mode)
}

// Neg sets z to the value of x with its sign negated, and returns z.
// The negation of NaN is NaN.
func (z *Float) Neg(x *Float) *Float {
	z.Set(x)
	if z.form != nan {
		z.neg = !z.neg
	}
	return z
}

// Abs sets z to the value |x| (the absolute value of x) and returns z.
func (z *Float) Abs(x *Float) *Float {
	z.Set(x)
	z.neg = false
	return z
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y (incl. -0 == 0, -Inf == -Inf, and +Inf == +Inf)
//	+1 if x >  y
//
// Cmp panics with ErrNaN if x or y is NaN.
func (x *Float) Cmp(y *Float) int {
	if debugFloat {
		x.validate()
		y.validate()
	}
	if x.form == nan || y.form == nan {
		panic(ErrNaN{"bigfloat: comparison with NaN"})
	}

	mx := x.ord()
	my := y.ord()
	switch {
	case mx < my:
		return -1
	case mx > my:
		return +1
	}
	// mx == my

	// only if |mx| == 1 we have to compare the mantissae
	switch mx {
	case -1:
		return y.ucmp(x)
	case +1:
		return x.ucmp(y)
	}

	return 0
}

// ord classifies x and returns:
//
//	-2 if -Inf == x
//	-1 if -Inf < x < 0
//	 0 if x == 0 (signed or unsigned)
//	+1 if 0 < x < +Inf
//	+2 if x == +Inf
func (x *Float) ord() int {
	var m int
	switch x.form {
	case finite:
		m = 1
	case zero:
		return 0
	case inf:
		m = 2
	}
	if x.neg {
		m = -m
	}
	return m
}

// ucmp returns -1, 0, or +1, depending on whether
// |x| < |y|, |x| == |y|, or |x| > |y|.
// x and y must have a non-empty mantissa and valid exponent.
func (x *Float) ucmp(y *Float) int {
	switch {
	case x.exp < y.exp:
		return -1
	case x.exp > y.exp:
		return +1
	}
	// x.exp == y.exp
	return x.mant.cmpTop(y.mant)
}

// MantExp breaks x into its mantissa and exponent components
// and returns the exponent. If a non-nil mant argument is
// provided its value is set to the mantissa of x, with the
// same precision as x. The components satisfy
//
//	x == mant × 2**exp
//	0.5 <= |mant| < 1.0
//
// Calling MantExp with a nil argument is an efficient way to
// get the exponent of the receiver.
//
// Special cases are:
//
//	(  ±0).MantExp(mant) = 0, with mant set to   ±0
//	(±Inf).MantExp(mant) = 0, with mant set to ±Inf
//	( NaN).MantExp(mant) = 0, with mant set to  NaN
//
// x and mant may be the same in which case x is set to its
// mantissa value.
func (x *Float) MantExp(mant *Float) (exp int) {
	if debugFloat {
		x.validate()
	}
	if x.form == finite {
		exp = int(x.exp)
	}
	if mant != nil {
		mant.Set(x)
		if mant.form == finite {
			mant.exp = 0
		}
	}
	return
}

// SetMantExp sets z to mant × 2**exp and returns z.
// The result z has the same precision as mant. If the
// resulting exponent is out of range, z is rounded to nearest
// according to the overflow and underflow rules of the arithmetic
// operations.
func (z *Float) SetMantExp(mant *Float, exp int) *Float {
	if debugFloat {
		z.validate()
		mant.validate()
	}
	z.Set(mant)
	if z.form != finite {
		return z
	}
	z.setExp(int64(z.exp)+int64(exp), Equal, Nearest)
	return z
}

func (x *Float) validate() {
	if !debugFloat {
		// avoid performance bugs
		panic("validate called but debugFloat is not set")
	}
	if msg := x.validate0(); msg != "" {
		panic(msg)
	}
}

// validate0 returns a description of the first representation invariant x
// violates, or "".
func (x *Float) validate0() string {
	if x.form != finite {
		return ""
	}
	m := len(x.mant)
	if m == 0 {
		return "nonzero finite number with empty mantissa"
	}
	if x.prec == 0 {
		return "zero precision finite number"
	}
	if m != words(x.prec) {
		return fmt.Sprintf("mantissa length %d does not match precision %d", m, x.prec)
	}
	if x.mant[m-1]&_H == 0 {
		return fmt.Sprintf("msb not set in last word %#x", x.mant[m-1])
	}
	if s := uint(m*_W) - uint(x.prec); x.mant[0]&lowMask(s) != 0 {
		return fmt.Sprintf("bits below precision %d are not zero in %#x", x.prec, x.mant[0])
	}
	if x.exp < MinExp || x.exp > MaxExp {
		return fmt.Sprintf("exponent %d out of range", x.exp)
	}
	return ""
}

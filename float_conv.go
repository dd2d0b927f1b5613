// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements conversions between Floats and the integer, rational
// and floating-point types of the standard library. Digit conversion is
// delegated to big.Float.

package bigfloat

import (
	"fmt"
	"io"
	"math"
	"math/big"
	"strings"
)

// NewFloat allocates and returns a new Float set to x, with precision 53.
// Unlike big.NewFloat, a NaN argument returns a NaN Float.
func NewFloat(x float64) *Float {
	return new(Float).SetFloat64(x)
}

// defPrec returns z's precision, or def if it is 0.
func (z *Float) defPrec(def uint32) uint32 {
	if z.prec == 0 {
		return def
	}
	return z.prec
}

// setBitsExp sets z to (-1)**neg × b × 2**e rounded to prec bits, where b
// holds the words of a nonzero integer as returned by big.Int.Bits.
func (z *Float) setBitsExp(neg bool, b []big.Word, e int64, prec uint32, mode RoundingMode) Ordering {
	m, l := z.mant.setBits(b)
	z.neg = neg
	return z.round(m, e+int64(l), false, prec, mode)
}

// SetUint64 sets z to the (possibly rounded) value of x and returns z. If z's
// precision is 0, it is changed to 64 (and rounding will have no effect).
func (z *Float) SetUint64(x uint64) *Float {
	return z.setUint64(false, x)
}

// SetInt64 sets z to the (possibly rounded) value of x and returns z. If z's
// precision is 0, it is changed to 64 (and rounding will have no effect).
func (z *Float) SetInt64(x int64) *Float {
	u := uint64(x)
	if x < 0 {
		u = -u
	}
	return z.setUint64(x < 0, u)
}

func (z *Float) setUint64(neg bool, x uint64) *Float {
	prec := z.defPrec(64)
	if x == 0 {
		z.prec = prec
		return z.SetZero(neg)
	}
	var i big.Int
	i.SetUint64(x)
	z.setBitsExp(neg, i.Bits(), 0, prec, Nearest)
	return z
}

// SetInt sets z to the (possibly rounded) value of x and returns z. If z's
// precision is 0, it is changed to the larger of x.BitLen() or 64 (and
// rounding will have no effect).
func (z *Float) SetInt(x *big.Int) *Float {
	bits := uint32(x.BitLen())
	prec := z.defPrec(umax32(bits, 64))
	if bits == 0 {
		z.prec = prec
		return z.SetZero(false)
	}
	z.setBitsExp(x.Sign() < 0, x.Bits(), 0, prec, Nearest)
	return z
}

// intFloat returns the exact value of the nonzero integer x as a Float.
func intFloat(x *big.Int) *Float {
	z := new(Float)
	z.setBitsExp(x.Sign() < 0, x.Bits(), 0, uint32(x.BitLen()), Exact)
	return z
}

// SetRat sets z to the (possibly rounded) value of x and returns z. If z's
// precision is 0, it is changed to the largest of a.BitLen(), b.BitLen(), or
// 64; with x = a/b.
func (z *Float) SetRat(x *big.Rat) *Float {
	a, b := x.Num(), x.Denom()
	prec := z.defPrec(umax32(umax32(uint32(a.BitLen()), uint32(b.BitLen())), 64))
	if a.Sign() == 0 {
		z.prec = prec
		return z.SetZero(false)
	}
	z.quo(intFloat(a), intFloat(b), prec, Nearest)
	return z
}

// SetFloat64 sets z to the (possibly rounded) value of x and returns z. If z's
// precision is 0, it is changed to 53 (and rounding will have no effect).
func (z *Float) SetFloat64(x float64) *Float {
	prec := z.defPrec(53)
	if math.IsNaN(x) {
		z.prec = prec
		return z.SetNaN()
	}
	var f big.Float
	f.SetFloat64(x)
	z.setBigFloat(&f, prec, Nearest)
	return z
}

// SetBigFloat sets z to the (possibly rounded) value of x and returns z. If
// z's precision is 0, it is changed to the precision of x, or 64 if x has
// precision 0 (and rounding will have no effect).
func (z *Float) SetBigFloat(x *big.Float) *Float {
	prec := uint32(x.Prec())
	if prec == 0 {
		prec = 64
	}
	z.setBigFloat(x, z.defPrec(prec), Nearest)
	return z
}

// SetBigFloatRound is like SetBigFloat but rounds to prec bits according to
// mode and returns the ordering of z relative to x.
func (z *Float) SetBigFloatRound(x *big.Float, prec uint, mode RoundingMode) Ordering {
	p := validPrec(prec)
	return z.exact(mode, "conversion", func(z *Float) Ordering { return z.setBigFloat(x, p, mode) })
}

func (z *Float) setBigFloat(x *big.Float, prec uint32, mode RoundingMode) Ordering {
	z.prec = prec
	switch {
	case x.IsInf():
		z.SetInf(x.Signbit())
		return Equal
	case x.Sign() == 0:
		z.SetZero(x.Signbit())
		return Equal
	}
	// x = t × 2**exp with 0.5 <= |t| < 1 and t × 2**k an integer
	var t big.Float
	exp := x.MantExp(&t)
	k := int(t.MinPrec())
	t.SetMantExp(&t, k)
	t.Abs(&t)
	i, _ := t.Int(nil)
	return z.setBitsExp(x.Signbit(), i.Bits(), int64(exp)-int64(k), prec, mode)
}

// BigFloat sets z to the exact value of x and returns z. If z is nil, a new
// big.Float is allocated. The precision of z is set to the precision of x and
// its rounding mode to big.ToNearestEven.
//
// BigFloat panics with ErrNaN if x is a NaN.
func (x *Float) BigFloat(z *big.Float) *big.Float {
	if x.form == nan {
		panic(ErrNaN{"bigfloat: NaN has no big.Float value"})
	}
	if z == nil {
		z = new(big.Float)
	}
	z.SetMode(big.ToNearestEven)
	z.SetPrec(uint(x.prec))
	switch x.form {
	case zero:
		z.SetInt64(0)
		if x.neg {
			z.Neg(z)
		}
	case inf:
		z.SetInf(x.neg)
	case finite:
		var i big.Int
		i.SetBits(x.mant)
		z.SetInt(&i)
		z.SetMantExp(z, int(x.exp)-len(x.mant)*_W)
		if x.neg {
			z.Neg(z)
		}
	}
	return z
}

// Float64 returns the float64 value nearest to x, and the ordering of the
// result relative to x. A NaN x yields a NaN result with ordering Equal.
// Values out of the float64 range become ±Inf, or ±0 (or denormals) when
// too small.
func (x *Float) Float64() (float64, Ordering) {
	if x.form == nan {
		return math.NaN(), Equal
	}
	f, acc := x.BigFloat(nil).Float64()
	return f, ordOf(acc)
}

// Int returns the result of truncating x towards zero; or nil if x is an
// infinity. The result is Equal if x.IsInt(); otherwise it is Less for x > 0,
// and Greater for x < 0. If a non-nil *big.Int argument z is provided, Int
// stores the result in z instead of allocating a new big.Int.
//
// Int panics with ErrNaN if x is a NaN.
func (x *Float) Int(z *big.Int) (*big.Int, Ordering) {
	if x.form == nan {
		panic(ErrNaN{"bigfloat: NaN has no integer value"})
	}
	i, acc := x.BigFloat(nil).Int(z)
	return i, ordOf(acc)
}

// Rat returns the rational number corresponding to x; or nil if x is an
// infinity. The result is Equal if x is not an Inf. If a non-nil *big.Rat
// argument z is provided, Rat stores the result in z instead of allocating a
// new big.Rat.
//
// Rat panics with ErrNaN if x is a NaN.
func (x *Float) Rat(z *big.Rat) (*big.Rat, Ordering) {
	if x.form == nan {
		panic(ErrNaN{"bigfloat: NaN has no rational value"})
	}
	r, acc := x.BigFloat(nil).Rat(z)
	return r, ordOf(acc)
}

// ----------------------------------------------------------------------------
// Text conversion

const nanText = "NaN"

// String formats x like x.Text('g', 10).
// (String must be called explicitly, Float.Format does not support %s verb.)
func (x *Float) String() string {
	return x.Text('g', 10)
}

// Text converts the floating-point number x to a string according to the given
// format and precision prec, with the same meaning as for big.Float.Text.
// A NaN x is converted to "NaN".
func (x *Float) Text(format byte, prec int) string {
	return string(x.Append(make([]byte, 0, 10), format, prec))
}

// Append appends to buf the string form of the floating-point number x, as
// generated by x.Text, and returns the extended buffer.
func (x *Float) Append(buf []byte, fmt byte, prec int) []byte {
	if x.form == nan {
		return append(buf, nanText...)
	}
	return x.BigFloat(nil).Append(buf, fmt, prec)
}

// Format implements fmt.Formatter. It accepts the same formats as big.Float.
// A NaN x is formatted as "NaN", padded to the requested width.
func (x *Float) Format(s fmt.State, format rune) {
	if x.form == nan {
		w, hasWidth := s.Width()
		pad := 0
		if hasWidth && w > len(nanText) {
			pad = w - len(nanText)
		}
		if s.Flag('-') {
			io.WriteString(s, nanText+strings.Repeat(" ", pad))
		} else {
			io.WriteString(s, strings.Repeat(" ", pad)+nanText)
		}
		return
	}
	x.BigFloat(nil).Format(s, format)
}

// SetString sets z to the value of s and returns z and a boolean indicating
// success. s must be a floating-point number of the same format as accepted
// by Parse, with base argument 0. The entire string (not just a prefix) must
// be valid for success. If the operation failed, the value of z is undefined
// but the returned value is nil.
func (z *Float) SetString(s string) (*Float, bool) {
	if f, _, err := z.Parse(s, 0); err == nil {
		return f, true
	}
	return nil, false
}

// Parse parses s which must contain a text representation of a floating-point
// number with a mantissa in the given conversion base (the exponent is always a
// decimal number), or a string representing an infinite value or a NaN.
//
// Parse accepts the syntax of big.Float.Parse plus "nan" and "NaN". It sets z
// to the value rounded to nearest and returns z, the actual base b, and an
// error err, if any. If z's precision is 0, it is changed to 64 before
// rounding takes effect.
//
// The returned *Float f is nil and the value of z is valid but not defined if
// an error is reported.
func (z *Float) Parse(s string, base int) (f *Float, b int, err error) {
	prec := z.defPrec(64)
	if strings.EqualFold(s, nanText) {
		z.prec = prec
		return z.SetNaN(), base, nil
	}
	var t big.Float
	t.SetPrec(uint(prec))
	t.SetMode(big.ToNearestEven)
	if _, b, err = t.Parse(s, base); err != nil {
		return nil, b, err
	}
	z.setBigFloat(&t, prec, Nearest)
	return z, b, nil
}

package math

import (
	"github.com/db47h/bigfloat"
)

// DefaultPrec is the precision used by functions of this package when neither
// the result nor the operands carry a precision.
const DefaultPrec = 64

// guardBits is the number of bits carried beyond the requested precision by
// intermediate results.
const guardBits = 64

// maxIter bounds iterative algorithms. The ones in this package converge
// quadratically, so that 64 iterations are enough for any precision.
const maxIter = 64

// constants
var (
	one = new(bigfloat.Float).SetPrec(1).SetInt64(1)
	two = new(bigfloat.Float).SetPrec(1).SetInt64(2)
)

// resultPrec returns z's precision, or x's precision if z's is 0, or
// DefaultPrec.
func resultPrec(z, x *bigfloat.Float) uint {
	if p := z.Prec(); p != 0 {
		return p
	}
	if p := x.Prec(); p != 0 {
		return p
	}
	return DefaultPrec
}

// Pow sets z to x**n rounded to nearest and returns z. If z's precision is 0,
// it is changed to x's precision before the operation.
//
// The intermediate products are computed with guard bits and rounded once to
// z's precision: the result is within one ulp of the exact power. x**0 is 1
// for any x, NaN included.
func Pow(z, x *bigfloat.Float, n int) *bigfloat.Float {
	prec := resultPrec(z, x)
	if n == 0 {
		return z.SetPrec(prec).SetInt64(1)
	}
	u := uint64(n)
	if n < 0 {
		u = -u
	}
	var r bigfloat.Float
	pow(&r, x, u, prec+guardBits)
	if n < 0 {
		z.ReciprocalPrec(&r, prec)
		return z
	}
	z.Set(&r)
	return z.SetPrec(prec)
}

// pow sets z to x**n rounded to prec bits and returns z. n must be > 0.
func pow(z, x *bigfloat.Float, n uint64, prec uint) *bigfloat.Float {
	var y, t bigfloat.Float
	y.SetPrec(prec).SetInt64(1)
	t.Set(x)
	for n > 1 {
		if n%2 != 0 {
			y.MulPrec(&y, &t, prec)
		}
		t.SquarePrec(&t, prec)
		n /= 2
	}
	z.MulPrec(&y, &t, prec)
	return z
}

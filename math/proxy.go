package math

import "github.com/db47h/bigfloat"

// Sqrt sets z to the rounded square root of x, and returns it.
//
// If z's precision is 0, it is changed to x's precision before the operation.
// Rounding is to nearest. The square root of a negative number is NaN.
//
// This function is a proxy for z.SqrtPrec(x, prec).
func Sqrt(z, x *bigfloat.Float) *bigfloat.Float {
	z.SqrtPrec(x, resultPrec(z, x))
	return z
}

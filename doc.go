// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bigfloat implements arbitrary-precision, correctly rounded binary
floating-point arithmetic.

A Float is a binary floating-point number with a per value precision in bits,
and may also be ±0, ±Inf or NaN. Unlike big.Float, a Float carries neither a
rounding mode nor an accuracy: every arithmetic operation takes the precision
and rounding mode of its result, and returns an Ordering telling whether the
stored result is Less than, Equal to or Greater than the exact mathematical
result.

The zero value for a Float corresponds to +0 with precision 0. Thus, new values
can be declared in the usual ways and denote 0 without further initialization:

	x := new(Float)  // x is a *Float of value 0

Alternatively, new Float values can be allocated and initialized with the
functions:

	func NewFloat(f float64) *Float
	func FromInt[T constraints.Integer](x T) *Float
	func FromFloat[T constraints.Float](x T) *Float

More flexibility is provided with explicit setters, for instance:

	z := new(Float).SetUint64(123)    // z := 123.0

Each arithmetic operation Op comes in four forms:

	func (z *Float) OpPrecRound(x, y *Float, prec uint, mode RoundingMode) Ordering
	func (z *Float) OpPrec(x, y *Float, prec uint) Ordering         // mode == Nearest
	func (z *Float) OpRound(x, y *Float, mode RoundingMode) Ordering // prec == max(x.Prec(), y.Prec())
	func (z *Float) Op(x, y *Float) *Float                           // both defaults

for Op in Add, Sub, Mul and Quo, and likewise with a single operand for Square,
Reciprocal and Sqrt.

The result is the receiver z; if it is one of the operands x or y it may be
safely overwritten (and its memory reused):

	sum.Add(sum, x)

The rounding modes are Floor, Ceiling, Down, Up, Nearest (ties to even) and
Exact. With Exact, an operation whose result cannot be represented exactly in
the requested precision panics with a RoundingError and leaves its receiver
unchanged.

Special values follow IEEE 754: NaN propagates, Inf-Inf and 0/0 are NaN, and
the sign of zero results follows the rounding direction. Exponents range from
MinExp to MaxExp; results beyond that range overflow to ±Inf or the largest
finite value, or underflow to ±0 or the smallest positive value, depending on
the rounding mode.

Digit conversion to and from text is delegated to big.Float. Float implements
the fmt.Formatter, encoding.TextMarshaler and gob.GobEncoder interfaces and
their decoding counterparts.
*/
package bigfloat

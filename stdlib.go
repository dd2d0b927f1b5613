// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file mirrors types and constants from math/big.

package bigfloat

import (
	"math"
	"math/big"
	"math/bits"
)

// A Word represents a single digit of a significand. It is the same type as
// big.Word so that significands can be handed to big.Int without copying.
type Word = big.Word

const (
	_S = _W / 8 // word size in bytes

	_W = bits.UintSize // word size in bits
	_B = 1 << _W       // digit base
	_M = _B - 1        // digit mask

	_H = 1 << (_W - 1) // high bit of a word
)

// Exponent and precision limits.
const (
	MaxExp  = 1<<30 - 1     // largest supported exponent
	MinExp  = -(1 << 30)    // smallest supported exponent
	MaxPrec = math.MaxInt32 // largest (theoretically) supported precision; likely memory-limited
)

// Internal representation: The mantissa bits x.mant of a nonzero finite
// Float x are stored in a nat slice of exactly words(x.prec) words, least
// significant word first. The mantissa is normalized such that the msb of
// x.mant == 1 and the bits below x.prec are 0. The value of x is
//
//	x = (-1)**neg * 0.mant * 2**exp
//
// A zero, infinite or NaN Float x ignores x.mant and x.exp.
//
// x                 form      neg      mant         exp
// ----------------------------------------------------------
// ±0                zero      sign     -            -
// 0 < |x| < +Inf    finite    sign     mantissa     exponent
// ±Inf              inf       sign     -            -
// NaN               nan       -        -            -

// A form value describes the internal representation.
type form byte

// The form value order is relevant - do not change!
const (
	zero form = iota
	finite
	inf
	nan
)

// RoundingMode determines how a Float value is rounded to the
// desired precision.
type RoundingMode byte

// These constants define supported rounding modes.
const (
	Floor   RoundingMode = iota // == IEEE 754-2008 roundTowardNegative
	Ceiling                     // == IEEE 754-2008 roundTowardPositive
	Down                        // == IEEE 754-2008 roundTowardZero
	Up                          // no IEEE 754-2008 equivalent
	Nearest                     // == IEEE 754-2008 roundTiesToEven
	Exact                       // result must be exact, panics with RoundingError otherwise
)

//go:generate stringer -type=RoundingMode

// Neg returns the rounding mode to use on the negated operands of an
// operation to obtain the negated result: Floor and Ceiling are swapped, other
// modes are unchanged.
func (mode RoundingMode) Neg() RoundingMode {
	switch mode {
	case Floor:
		return Ceiling
	case Ceiling:
		return Floor
	}
	return mode
}

// BigRoundingMode returns the math/big rounding mode equivalent to mode.
// Exact has no equivalent and maps to big.ToZero; callers must check the
// resulting accuracy themselves.
func (mode RoundingMode) BigRoundingMode() big.RoundingMode {
	switch mode {
	case Floor:
		return big.ToNegativeInf
	case Ceiling:
		return big.ToPositiveInf
	case Up:
		return big.AwayFromZero
	case Nearest:
		return big.ToNearestEven
	}
	return big.ToZero
}

// Ordering describes how a rounded result compares to the exact value
// of the operation that produced it.
type Ordering int8

// Constants describing the Ordering of a rounded result.
const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = +1
)

//go:generate stringer -type=Ordering

// Reverse returns the opposite ordering.
func (o Ordering) Reverse() Ordering {
	return -o
}

func makeOrd(above bool) Ordering {
	if above {
		return Greater
	}
	return Less
}

// ordOf converts a big.Accuracy into an Ordering.
func ordOf(acc big.Accuracy) Ordering {
	return Ordering(acc)
}

func umax32(x, y uint32) uint32 {
	if x > y {
		return x
	}
	return y
}

// An ErrNaN panic is raised by a comparison or conversion that has no defined
// result for a NaN operand. An ErrNaN implements the error interface.
type ErrNaN struct {
	msg string
}

func (err ErrNaN) Error() string {
	return err.msg
}

// A RoundingError panic is raised by an operation called with the Exact
// rounding mode whose result cannot be represented exactly in the requested
// precision. A RoundingError implements the error interface.
type RoundingError struct {
	msg string
}

func (err RoundingError) Error() string {
	return err.msg
}

// validPrec panics if prec is not a valid precision for an operation result.
func validPrec(prec uint) uint32 {
	if prec == 0 {
		panic("bigfloat: zero precision")
	}
	if prec > MaxPrec {
		panic("bigfloat: precision exceeds MaxPrec")
	}
	return uint32(prec)
}

// words returns the number of words required to hold prec bits.
func words(prec uint32) int {
	return int((uint(prec) + _W - 1) / _W)
}

// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

// A class identifies an operand of the special-value tables.
type class uint8

const (
	classNaN class = iota
	classPosInf
	classNegInf
	classPosZero
	classNegZero
	classFinite
)

func (x *Float) class() class {
	switch x.form {
	case nan:
		return classNaN
	case inf:
		if x.neg {
			return classNegInf
		}
		return classPosInf
	case zero:
		if x.neg {
			return classNegZero
		}
		return classPosZero
	}
	return classFinite
}

// An action is the outcome of a special-value table lookup.
type action uint8

const (
	actKernel    action = iota // both operands finite and nonzero
	actNaN                     // NaN
	actPosInf                  // +Inf
	actNegInf                  // -Inf
	actPosZero                 // +0
	actNegZero                 // -0
	actZeroFloor               // +0, or -0 if the rounding mode is Floor
	actX                       // x rounded to the target precision
	actY                       // y rounded to the target precision
	actNegY                    // -y rounded to the target precision
)

// subTable[x][y] is the action for x - y.
//
// (+0)-(+0) is -0 under Floor but (-0)-(-0) is +0 under all rounding modes.
// Both entries are deliberate.
var subTable = [6][6]action{
	// y: NaN, +Inf, -Inf, +0, -0, finite
	classNaN:     {actNaN, actNaN, actNaN, actNaN, actNaN, actNaN},
	classPosInf:  {actNaN, actNaN, actPosInf, actPosInf, actPosInf, actPosInf},
	classNegInf:  {actNaN, actNegInf, actNaN, actNegInf, actNegInf, actNegInf},
	classPosZero: {actNaN, actNegInf, actPosInf, actZeroFloor, actPosZero, actNegY},
	classNegZero: {actNaN, actNegInf, actPosInf, actNegZero, actPosZero, actNegY},
	classFinite:  {actNaN, actNegInf, actPosInf, actX, actX, actKernel},
}

// addTable[x][y] is the action for x + y.
var addTable = [6][6]action{
	// y: NaN, +Inf, -Inf, +0, -0, finite
	classNaN:     {actNaN, actNaN, actNaN, actNaN, actNaN, actNaN},
	classPosInf:  {actNaN, actPosInf, actNaN, actPosInf, actPosInf, actPosInf},
	classNegInf:  {actNaN, actNaN, actNegInf, actNegInf, actNegInf, actNegInf},
	classPosZero: {actNaN, actPosInf, actNegInf, actPosZero, actZeroFloor, actY},
	classNegZero: {actNaN, actPosInf, actNegInf, actZeroFloor, actNegZero, actY},
	classFinite:  {actNaN, actPosInf, actNegInf, actX, actX, actKernel},
}

// apply sets z to the result of a non-kernel table action and returns its
// ordering.
func (z *Float) apply(act action, x, y *Float, prec uint32, mode RoundingMode) Ordering {
	switch act {
	case actNaN:
		z.SetNaN()
	case actPosInf, actNegInf:
		z.SetInf(act == actNegInf)
	case actPosZero, actNegZero:
		z.SetZero(act == actNegZero)
	case actZeroFloor:
		z.SetZero(mode == Floor)
	case actX:
		return z.setRounded(x, x.neg, prec, mode)
	case actY:
		return z.setRounded(y, y.neg, prec, mode)
	case actNegY:
		return z.setRounded(y, !y.neg, prec, mode)
	default:
		panic("unreachable")
	}
	z.prec = prec
	return Equal
}

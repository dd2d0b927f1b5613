// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oracle computes correctly rounded reference results of arithmetic
// operations on finite big.Float operands.
//
// Every result is first computed exactly as a big.Rat (or, for square roots,
// bracketed between two consecutive integers far below the rounding
// position) and rounded once by big.Float.SetRat. The exponent range of the
// result is that of big.Float.
package oracle

import (
	"math/big"

	"github.com/pkg/errors"
)

// An Op is an arithmetic operation known to the oracle.
type Op string

// Supported operations.
const (
	Add        Op = "add"
	Sub        Op = "sub"
	Mul        Op = "mul"
	Quo        Op = "quo"
	Square     Op = "square"
	Reciprocal Op = "reciprocal"
	Sqrt       Op = "sqrt"
)

// Arity returns the number of operands of op, or 0 if op is unknown.
func (op Op) Arity() int {
	switch op {
	case Add, Sub, Mul, Quo:
		return 2
	case Square, Reciprocal, Sqrt:
		return 1
	}
	return 0
}

// ErrDomain is returned for operands outside of the domain of the oracle:
// infinities, division by zero and square roots of negative numbers.
var ErrDomain = errors.New("oracle: operand outside of the exact domain")

// Eval returns op applied to args, rounded to prec bits with mode, and the
// accuracy of the rounded result. The operands must be finite.
func Eval(op Op, prec uint, mode big.RoundingMode, args ...*big.Float) (*big.Float, big.Accuracy, error) {
	if n := op.Arity(); n == 0 || n != len(args) {
		return nil, big.Exact, errors.Errorf("oracle: bad operation %q with %d operands", op, len(args))
	}
	xs := make([]*big.Rat, len(args))
	for i, a := range args {
		if a.IsInf() {
			return nil, big.Exact, ErrDomain
		}
		xs[i], _ = a.Rat(nil)
	}

	var r big.Rat
	switch op {
	case Add:
		r.Add(xs[0], xs[1])
	case Sub:
		r.Sub(xs[0], xs[1])
	case Mul:
		r.Mul(xs[0], xs[1])
	case Square:
		r.Mul(xs[0], xs[0])
	case Quo:
		if xs[1].Sign() == 0 {
			return nil, big.Exact, ErrDomain
		}
		r.Quo(xs[0], xs[1])
	case Reciprocal:
		if xs[0].Sign() == 0 {
			return nil, big.Exact, ErrDomain
		}
		r.Inv(xs[0])
	case Sqrt:
		if xs[0].Sign() < 0 {
			return nil, big.Exact, ErrDomain
		}
		sqrtRat(&r, xs[0], prec)
	}
	f, acc := Round(&r, prec, mode)
	return f, acc, nil
}

// Round returns x rounded to prec bits with mode and the accuracy of the
// result.
func Round(x *big.Rat, prec uint, mode big.RoundingMode) (*big.Float, big.Accuracy) {
	z := new(big.Float).SetPrec(prec).SetMode(mode)
	z.SetRat(x)
	return z, z.Acc()
}

// sqrtRat sets z to a rational that rounds like √x to prec bits in any
// rounding mode: √x itself if it is exactly a dyadic rational, or a value
// strictly between the same two consecutive integers as √x, scaled by a power
// of two so that these integers have more than prec+1 bits. x must be a
// dyadic rational, as are all finite big.Float values.
func sqrtRat(z, x *big.Rat, prec uint) {
	if x.Sign() == 0 {
		z.SetInt64(0)
		return
	}
	// x = a/b, √x = √(a·b·4**k) / (b·2**k)
	a, b := x.Num(), x.Denom()
	k := uint(prec+2) + uint(b.BitLen())
	var s, r, r2 big.Int
	s.Mul(a, b)
	s.Lsh(&s, 2*k)
	r.Sqrt(&s)
	num := new(big.Rat).SetInt(&r)
	if r2.Mul(&r, &r).Cmp(&s) != 0 {
		// r < √s < r+1
		num.Add(num, big.NewRat(1, 4))
	}
	var den big.Int
	den.Lsh(b, k)
	z.Quo(num, new(big.Rat).SetInt(&den))
}

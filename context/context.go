// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides IEEE-754 style contexts for Floats.
//
// All factory functions of the form
//
//	func (c *Context) NewT(x T) *bigfloat.Float
//
// create a new bigfloat.Float set to the value of x, rounded using c's
// precision and rounding mode.
//
// Operators that set a receiver z to function of other Float arguments like:
//
//	func (c *Context) UnaryOp(z, x *bigfloat.Float) *bigfloat.Float
//	func (c *Context) BinaryOp(z, x, y *bigfloat.Float) *bigfloat.Float
//
// set z to the result of z.OpPrecRound(args, c.Prec(), c.Mode()) and return z.
//
// Each operation records the conditions it raises (Inexact, Underflow,
// Overflow, DivisionByZero, InvalidOperation) in the context flags. A
// condition that is also set in the context traps, a RoundingError raised by
// the Exact rounding mode, or an ErrNaN panic, is turned into an error: the
// operation returns z unchanged by the failure and further operations with
// the context are no-ops (they simply return the receiver z) until
// (*Context).Err is called to check for errors.
package context

import (
	"math/big"
	"strings"

	"github.com/db47h/bigfloat"
	"github.com/pkg/errors"
)

// DefaultPrec is the precision of a Context created with a precision of 0.
const DefaultPrec = 64

// A Condition is a set of exceptional conditions raised by an operation.
type Condition uint32

// Conditions.
const (
	// Inexact is raised when the result of an operation was rounded.
	Inexact Condition = 1 << iota
	// Underflow is raised when an inexact result is ±0 or lies in the
	// smallest binade.
	Underflow
	// Overflow is raised when a finite exact result rounds to ±Inf.
	Overflow
	// DivisionByZero is raised when a nonzero finite value is divided by
	// zero.
	DivisionByZero
	// InvalidOperation is raised when an operation on non-NaN operands
	// produces a NaN.
	InvalidOperation
)

var conditionNames = [...]string{
	"inexact",
	"underflow",
	"overflow",
	"division by zero",
	"invalid operation",
}

func (r Condition) String() string {
	var names []string
	for i, name := range conditionNames {
		if r&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "no conditions"
	}
	return strings.Join(names, ", ")
}

// Error implements the error interface, so that trapped conditions can be
// reported as errors.
func (r Condition) Error() string {
	return r.String()
}

// DefaultTraps are the conditions trapped by a new Context.
const DefaultTraps = DivisionByZero | InvalidOperation

// A Context is a wrapper around Floats that facilitates management of
// rounding modes, precision and error handling.
type Context struct {
	prec  uint32
	mode  bigfloat.RoundingMode
	traps Condition
	flags Condition
	err   error
}

// New creates a new context with the given precision and rounding mode and
// DefaultTraps. If prec is 0, it will be set to DefaultPrec.
func New(prec uint, mode bigfloat.RoundingMode) *Context {
	return new(Context).SetMode(mode).SetPrec(prec).SetTraps(DefaultTraps)
}

// Mode returns the rounding mode of c.
func (c *Context) Mode() bigfloat.RoundingMode {
	return c.mode
}

// Prec returns the precision of c in bits.
func (c *Context) Prec() uint {
	return uint(c.prec)
}

// SetMode sets c's rounding mode to mode and returns c.
func (c *Context) SetMode(mode bigfloat.RoundingMode) *Context {
	c.mode = mode
	return c
}

// SetPrec sets c's precision to prec and returns c.
//
// If prec > MaxPrec, it is set to MaxPrec. If prec == 0, it is set to
// DefaultPrec.
func (c *Context) SetPrec(prec uint) *Context {
	// special case
	if prec == 0 {
		prec = DefaultPrec
	}
	// general case
	if prec > bigfloat.MaxPrec {
		prec = bigfloat.MaxPrec
	}
	c.prec = uint32(prec)
	return c
}

// Traps returns the conditions trapped by c.
func (c *Context) Traps() Condition {
	return c.traps
}

// SetTraps sets the conditions trapped by c and returns c.
func (c *Context) SetTraps(traps Condition) *Context {
	c.traps = traps
	return c
}

// Flags returns the conditions raised since the last call to ClearFlags.
func (c *Context) Flags() Condition {
	return c.flags
}

// ClearFlags clears the conditions raised so far and returns c.
func (c *Context) ClearFlags() *Context {
	c.flags = 0
	return c
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// New returns a new bigfloat.Float with value 0 and precision set to c's
// precision.
func (c *Context) New() *bigfloat.Float {
	return new(bigfloat.Float).SetPrec(uint(c.prec))
}

// NewInt returns a new *bigfloat.Float set to the (possibly rounded) value of
// x.
func (c *Context) NewInt(x *big.Int) *bigfloat.Float {
	return c.Round(c.New(), new(bigfloat.Float).SetInt(x))
}

// NewInt64 returns a new *bigfloat.Float set to the (possibly rounded) value
// of x.
func (c *Context) NewInt64(x int64) *bigfloat.Float {
	return c.Round(c.New(), new(bigfloat.Float).SetInt64(x))
}

// NewUint64 returns a new *bigfloat.Float set to the (possibly rounded) value
// of x.
func (c *Context) NewUint64(x uint64) *bigfloat.Float {
	return c.Round(c.New(), new(bigfloat.Float).SetUint64(x))
}

// NewFloat returns a new *bigfloat.Float set to the (possibly rounded) value
// of x.
func (c *Context) NewFloat(x *big.Float) *bigfloat.Float {
	return c.Round(c.New(), new(bigfloat.Float).SetBigFloat(x))
}

// NewFloat64 returns a new *bigfloat.Float set to the (possibly rounded) value
// of x.
func (c *Context) NewFloat64(x float64) *bigfloat.Float {
	return c.Round(c.New(), bigfloat.NewFloat(x))
}

// NewRat returns a new *bigfloat.Float set to the value of x rounded with c's
// precision and rounding mode.
func (c *Context) NewRat(x *big.Rat) *bigfloat.Float {
	num := new(bigfloat.Float).SetInt(x.Num())
	den := new(bigfloat.Float).SetInt(x.Denom())
	return c.Quo(c.New(), num, den)
}

// NewString returns a new Float with the value of s and a boolean indicating
// success. s must be a floating-point number of the same format as accepted
// by (*bigfloat.Float).Parse, with base argument 0. The entire string (not
// just a prefix) must be valid for success. If the operation failed, the
// returned value is nil.
func (c *Context) NewString(s string) (f *bigfloat.Float, success bool) {
	f, _, err := c.Parse(s, 0)
	return f, err == nil
}

// Parse parses s like (*bigfloat.Float).Parse into a new Float of precision
// c.Prec(), rounded with c's rounding mode. With the Exact rounding mode,
// digits beyond c's precision are truncated. Parsing errors are returned, not
// recorded in c.
func (c *Context) Parse(s string, base int) (f *bigfloat.Float, b int, err error) {
	if strings.EqualFold(s, "nan") {
		return c.New().SetNaN(), base, nil
	}
	var t big.Float
	t.SetPrec(uint(c.prec)).SetMode(c.mode.BigRoundingMode())
	if _, b, err = t.Parse(s, base); err != nil {
		return nil, b, err
	}
	return c.NewFloat(&t), b, nil
}

// Round sets z's to the value of x rounded using c's precision and rounding
// mode, and returns z.
func (c *Context) Round(z, x *bigfloat.Float) *bigfloat.Float {
	return c.run("Round", z, x, nil, 0, func() bigfloat.Ordering {
		z.Set(x)
		return z.SetPrecRound(uint(c.prec), c.mode)
	})
}

// Add sets z to the rounded sum x+y and returns z.
func (c *Context) Add(z, x, y *bigfloat.Float) *bigfloat.Float {
	return c.run("Add", z, x, y, 0, func() bigfloat.Ordering {
		return z.AddPrecRound(x, y, uint(c.prec), c.mode)
	})
}

// Sub sets z to the rounded difference x-y and returns z.
func (c *Context) Sub(z, x, y *bigfloat.Float) *bigfloat.Float {
	return c.run("Sub", z, x, y, 0, func() bigfloat.Ordering {
		return z.SubPrecRound(x, y, uint(c.prec), c.mode)
	})
}

// Mul sets z to the rounded product x×y and returns z.
func (c *Context) Mul(z, x, y *bigfloat.Float) *bigfloat.Float {
	return c.run("Mul", z, x, y, 0, func() bigfloat.Ordering {
		return z.MulPrecRound(x, y, uint(c.prec), c.mode)
	})
}

// Quo sets z to the rounded quotient x/y and returns z.
func (c *Context) Quo(z, x, y *bigfloat.Float) *bigfloat.Float {
	var pre Condition
	if y.IsZero() && x.Sign() != 0 && !x.IsInf() {
		pre = DivisionByZero
	}
	return c.run("Quo", z, x, y, pre, func() bigfloat.Ordering {
		return z.QuoPrecRound(x, y, uint(c.prec), c.mode)
	})
}

// Square sets z to the rounded square x×x and returns z.
func (c *Context) Square(z, x *bigfloat.Float) *bigfloat.Float {
	return c.run("Square", z, x, nil, 0, func() bigfloat.Ordering {
		return z.SquarePrecRound(x, uint(c.prec), c.mode)
	})
}

// Reciprocal sets z to the rounded reciprocal 1/x and returns z.
func (c *Context) Reciprocal(z, x *bigfloat.Float) *bigfloat.Float {
	var pre Condition
	if x.IsZero() {
		pre = DivisionByZero
	}
	return c.run("Reciprocal", z, x, nil, pre, func() bigfloat.Ordering {
		return z.ReciprocalPrecRound(x, uint(c.prec), c.mode)
	})
}

// Sqrt sets z to the rounded square root of x, and returns z.
func (c *Context) Sqrt(z, x *bigfloat.Float) *bigfloat.Float {
	return c.run("Sqrt", z, x, nil, 0, func() bigfloat.Ordering {
		return z.SqrtPrecRound(x, uint(c.prec), c.mode)
	})
}

// Neg sets z to the rounded value of x with its sign negated, and returns z.
func (c *Context) Neg(z, x *bigfloat.Float) *bigfloat.Float {
	return c.run("Neg", z, x, nil, 0, func() bigfloat.Ordering {
		z.Neg(x)
		return z.SetPrecRound(uint(c.prec), c.mode)
	})
}

// Abs sets z to the rounded value |x| (the absolute value of x) and returns
// z.
func (c *Context) Abs(z, x *bigfloat.Float) *bigfloat.Float {
	return c.run("Abs", z, x, nil, 0, func() bigfloat.Ordering {
		z.Abs(x)
		return z.SetPrecRound(uint(c.prec), c.mode)
	})
}

// run runs op, which sets z, unless c is in an error state. It records the
// conditions raised by op, plus the conditions pre detected on the operands,
// and turns RoundingError and ErrNaN panics into errors. y may be nil for
// unary operations.
func (c *Context) run(name string, z, x, y *bigfloat.Float, pre Condition, op func() bigfloat.Ordering) (r *bigfloat.Float) {
	if c.err != nil {
		return z
	}
	nanIn := x.IsNaN() || y != nil && y.IsNaN()
	defer func() {
		if v := recover(); v != nil {
			err, ok := v.(error)
			if !ok {
				panic(v)
			}
			var re bigfloat.RoundingError
			var en bigfloat.ErrNaN
			if !errors.As(err, &re) && !errors.As(err, &en) {
				panic(v)
			}
			c.err = errors.Wrap(err, name)
			r = z
		}
	}()
	o := op()
	c.raise(name, pre|conditions(z, o, nanIn))
	return z
}

// conditions returns the conditions raised by an operation whose rounded
// result z has ordering o.
func conditions(z *bigfloat.Float, o bigfloat.Ordering, nanIn bool) Condition {
	var r Condition
	if z.IsNaN() && !nanIn {
		r |= InvalidOperation
	}
	if o == bigfloat.Equal {
		return r
	}
	r |= Inexact
	switch {
	case z.IsInf():
		r |= Overflow
	case z.IsZero() || z.MantExp(nil) == bigfloat.MinExp:
		r |= Underflow
	}
	return r
}

// raise records the conditions r in c's flags and sets c's error if any of
// them is trapped.
func (c *Context) raise(name string, r Condition) {
	c.flags |= r
	if t := r & c.traps; t != 0 && c.err == nil {
		c.err = errors.Wrap(t, name)
	}
}

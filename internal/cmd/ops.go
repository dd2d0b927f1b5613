package cmd

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"

	"github.com/db47h/bigfloat"
	"github.com/db47h/bigfloat/internal/oracle"
)

var modeNames = map[string]bigfloat.RoundingMode{
	"floor":   bigfloat.Floor,
	"ceiling": bigfloat.Ceiling,
	"down":    bigfloat.Down,
	"up":      bigfloat.Up,
	"nearest": bigfloat.Nearest,
	"exact":   bigfloat.Exact,
}

// parseMode returns the rounding mode named s, case insensitive.
func parseMode(s string) (bigfloat.RoundingMode, error) {
	mode, ok := modeNames[strings.ToLower(s)]
	if !ok {
		return 0, errors.Errorf("unknown rounding mode %q", s)
	}
	return mode, nil
}

var orderingNames = map[string]bigfloat.Ordering{
	"less":    bigfloat.Less,
	"equal":   bigfloat.Equal,
	"greater": bigfloat.Greater,
}

// parseOrdering returns the ordering named s, case insensitive.
func parseOrdering(s string) (bigfloat.Ordering, error) {
	o, ok := orderingNames[strings.ToLower(s)]
	if !ok {
		return 0, errors.Errorf("unknown ordering %q", s)
	}
	return o, nil
}

// parseOperand parses s as accepted by Float.UnmarshalText. Operands without
// a precision suffix get precision prec.
func parseOperand(s string, prec uint) (*bigfloat.Float, error) {
	x := new(bigfloat.Float).SetPrec(prec)
	if err := x.UnmarshalText([]byte(s)); err != nil {
		return nil, err
	}
	return x, nil
}

// evaluate sets a new Float to op applied to args, rounded to prec bits with
// mode. A RoundingError raised by the Exact mode is returned as an error.
func evaluate(op oracle.Op, prec uint, mode bigfloat.RoundingMode, args ...*bigfloat.Float) (z *bigfloat.Float, o bigfloat.Ordering, err error) {
	if n := op.Arity(); n == 0 || n != len(args) {
		return nil, 0, errors.Errorf("operation %q does not take %d operands", op, len(args))
	}
	if prec == 0 || prec > bigfloat.MaxPrec {
		return nil, 0, errors.Errorf("invalid precision %d", prec)
	}

	defer func() {
		if v := recover(); v != nil {
			re, ok := v.(bigfloat.RoundingError)
			if !ok {
				panic(v)
			}
			z, o, err = nil, 0, errors.Wrap(re, string(op))
		}
	}()

	z = new(bigfloat.Float)
	switch op {
	case oracle.Add:
		o = z.AddPrecRound(args[0], args[1], prec, mode)
	case oracle.Sub:
		o = z.SubPrecRound(args[0], args[1], prec, mode)
	case oracle.Mul:
		o = z.MulPrecRound(args[0], args[1], prec, mode)
	case oracle.Quo:
		o = z.QuoPrecRound(args[0], args[1], prec, mode)
	case oracle.Square:
		o = z.SquarePrecRound(args[0], prec, mode)
	case oracle.Reciprocal:
		o = z.ReciprocalPrecRound(args[0], prec, mode)
	case oracle.Sqrt:
		o = z.SqrtPrecRound(args[0], prec, mode)
	}
	return z, o, nil
}

// reference returns the oracle result for op applied to args. ok is false if
// the oracle cannot serve the operands or the result lies outside of the
// exponent range of Floats.
func reference(op oracle.Op, prec uint, mode bigfloat.RoundingMode, args ...*bigfloat.Float) (ref *bigfloat.Float, o bigfloat.Ordering, ok bool, err error) {
	bigs := make([]*big.Float, len(args))
	for i, a := range args {
		if a.IsNaN() || a.IsInf() {
			return nil, 0, false, nil
		}
		bigs[i] = a.BigFloat(nil)
	}
	f, acc, err := oracle.Eval(op, prec, mode.BigRoundingMode(), bigs...)
	if err != nil {
		if errors.Is(err, oracle.ErrDomain) {
			return nil, 0, false, nil
		}
		return nil, 0, false, err
	}
	if f.Sign() != 0 {
		if e := f.MantExp(nil); e < bigfloat.MinExp || e > bigfloat.MaxExp {
			return nil, 0, false, nil
		}
	}
	ref = new(bigfloat.Float)
	if ref.SetBigFloatRound(f, prec, bigfloat.Nearest) != bigfloat.Equal {
		return nil, 0, false, errors.New("reference result does not fit the requested precision")
	}
	return ref, bigfloat.Ordering(acc), true, nil
}

// exactDecimal returns the exact decimal expansion of x. Every finite binary
// float has one: its last fractional digit is at position MinPrec-exp.
func exactDecimal(x *bigfloat.Float) string {
	if x.IsInf() || x.IsNaN() || x.IsZero() {
		return x.Text('g', -1)
	}
	n := int(x.MinPrec()) - x.MantExp(nil)
	if n < 0 {
		n = 0
	}
	r, _ := x.Rat(nil)
	return r.FloatString(n)
}

// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/bigfloat/internal/oracle"
)

// testModes are the rounding modes with a defined inexact result.
var testModes = [...]RoundingMode{Floor, Ceiling, Down, Up, Nearest}

// testPrecs cover every kernel size class on both sides of the word
// boundaries.
var testPrecs = [...]uint32{
	1, 2, 3, 7,
	_W - 1, _W, _W + 1,
	2*_W - 1, 2 * _W, 2*_W + 1,
	3*_W - 1, 3 * _W, 3*_W + 1,
	5*_W + 17,
}

// fl returns the Float parsed from s as accepted by UnmarshalText.
func fl(s string) *Float {
	var z Float
	if err := z.UnmarshalText([]byte(s)); err != nil {
		panic(err)
	}
	return &z
}

// text returns x in the exact MarshalText format.
func text(x *Float) string {
	b, _ := x.MarshalText()
	return string(b)
}

// identical reports whether x and y have the same representation, precision
// included.
func identical(x, y *Float) bool {
	if x.form != y.form || x.prec != y.prec {
		return false
	}
	if x.form != nan && x.neg != y.neg {
		return false
	}
	if x.form != finite {
		return true
	}
	return x.exp == y.exp && cmpVV(x.mant, y.mant) == 0
}

// randFloat returns a random normalized Float of precision prec.
func randFloat(r *rand.Rand, prec uint32, exp int32, neg bool) *Float {
	n := words(prec)
	z := &Float{prec: prec, form: finite, exp: exp, neg: neg}
	z.mant = make(nat, n)
	for i := range z.mant {
		z.mant[i] = Word(r.Uint64())
	}
	if r.Intn(8) == 0 {
		// sparse significands produce long runs of borrows and carries
		for i := 0; i < n-1; i++ {
			z.mant[i] = 0
		}
		z.mant[n-1] = 0
	}
	z.mant[n-1] |= _H
	z.mant[0] &^= lowMask(uint(n*_W) - uint(prec))
	return z
}

// randDist returns a random exponent difference, biased toward the word and
// precision boundaries where kernels change behavior.
func randDist(r *rand.Rand, px, py uint32) int32 {
	switch r.Intn(7) {
	case 0:
		return 0
	case 1:
		return 1
	case 2:
		return int32(r.Intn(4))
	case 3:
		return int32(r.Intn(3*_W + 2))
	case 4:
		k := int32(r.Intn(4)) * _W
		return k + int32(r.Intn(3)) - 1
	case 5:
		return int32(umax32(px, py)) + int32(r.Intn(5)) - 2
	}
	return int32(r.Intn(int(px) + int(py) + 8))
}

// randPair returns two random operands of precisions px and py with nearby
// or distant exponents. A fourth of the pairs share the leading bits of x to
// exercise cancellations.
func randPair(r *rand.Rand, px, py uint32) (x, y *Float) {
	x = randFloat(r, px, int32(r.Intn(33)-16), r.Intn(2) == 0)
	d := randDist(r, px, py)
	if d < 0 {
		d = 0
	}
	y = randFloat(r, py, x.exp-d, r.Intn(2) == 0)
	if d == 0 && py > 1 && r.Intn(4) == 0 {
		neg := y.neg
		y.Set(x)
		y.setPrecRound(py, Down)
		y.neg = neg
		// flip the last retained bit
		y.mant[0] ^= 1 << (uint(len(y.mant)*_W) - uint(py))
		if msg := y.validate0(); msg != "" {
			panic(msg)
		}
	}
	if r.Intn(2) == 0 {
		x, y = y, x
	}
	return x, y
}

// checkOracle compares the rounded result z and its ordering o of op applied
// to args against the exact rational oracle.
func checkOracle(t *testing.T, op oracle.Op, prec uint32, mode RoundingMode, z *Float, o Ordering, args ...*Float) bool {
	t.Helper()
	bigs := make([]*big.Float, len(args))
	for i, a := range args {
		bigs[i] = a.BigFloat(nil)
	}
	ref, acc, err := oracle.Eval(op, uint(prec), mode.BigRoundingMode(), bigs...)
	require.NoError(t, err)
	require.Empty(t, z.validate0(), text(z))
	if z.IsNaN() || z.BigFloat(nil).Cmp(ref) != 0 || o != Ordering(acc) || z.Prec() != uint(prec) {
		var at string
		for _, a := range args {
			at += " " + text(a)
		}
		t.Errorf("%s%s prec=%d %s: got %s %s, want %s %s", op, at, prec, mode, text(z), o, ref.Text('p', 0), Ordering(acc))
		return false
	}
	return true
}

// catchRounding runs f and returns the RoundingError it panics with, if any.
func catchRounding(f func()) (err error) {
	defer func() {
		if v := recover(); v != nil {
			re, ok := v.(RoundingError)
			if !ok {
				panic(v)
			}
			err = re
		}
	}()
	f()
	return nil
}

func TestFloatZeroValue(t *testing.T) {
	// zero (uninitialized) value is a ready-to-use 0.0
	var x Float
	if s := x.Text('f', 1); s != "0.0" {
		t.Errorf("zero value = %s; want 0.0", s)
	}

	// zero value has precision 0
	if prec := x.Prec(); prec != 0 {
		t.Errorf("prec = %d; want 0", prec)
	}

	// zero value can be used in any and all positions of binary operations
	make := func(x int) *Float {
		var f Float
		if x != 0 {
			f.SetInt64(int64(x))
		}
		// x == 0 translates into the zero value
		return &f
	}
	for _, test := range []struct {
		z, x, y, want int
		opname        rune
		op            func(z, x, y *Float) *Float
	}{
		{0, 0, 0, 0, '+', (*Float).Add},
		{0, 1, 2, 3, '+', (*Float).Add},
		{1, 2, 0, 2, '+', (*Float).Add},
		{2, 0, 1, 1, '+', (*Float).Add},

		{0, 0, 0, 0, '-', (*Float).Sub},
		{0, 1, 2, -1, '-', (*Float).Sub},
		{1, 2, 0, 2, '-', (*Float).Sub},
		{2, 0, 1, -1, '-', (*Float).Sub},

		{0, 0, 0, 0, '*', (*Float).Mul},
		{0, 1, 2, 2, '*', (*Float).Mul},
		{1, 2, 0, 0, '*', (*Float).Mul},
		{2, 0, 1, 0, '*', (*Float).Mul},

		// {0, 0, 0, 0, '/', (*Float).Quo}, // panics
		{0, 2, 1, 2, '/', (*Float).Quo},
		{1, 2, 0, 0, '/', (*Float).Quo}, // = +Inf
		{2, 0, 1, 0, '/', (*Float).Quo},
	} {
		z := make(test.z)
		test.op(z, make(test.x), make(test.y))
		got := 0
		if !z.IsInf() {
			got = int(z.int64())
		}
		if got != test.want {
			t.Errorf("%d %c %d = %d; want %d", test.x, test.opname, test.y, got, test.want)
		}
	}
}

// int64 returns the integer value of the finite integral Float x.
func (x *Float) int64() int64 {
	i, _ := x.Int(nil)
	return i.Int64()
}

func TestFloatSetPrec(t *testing.T) {
	for _, test := range []struct {
		x    string
		prec uint
		mode RoundingMode
		want string
		o    Ordering
	}{
		{"0#10", 3, Nearest, "0#3", Equal},
		{"-0#10", 3, Nearest, "-0#3", Equal},
		{"Inf#10", 3, Nearest, "+Inf#3", Equal},
		{"NaN#10", 3, Nearest, "NaN#3", Equal},
		{"0x.fp+0#4", 4, Exact, "0x.fp+0#4", Equal},
		{"0x.fp+0#4", 200, Exact, "0x.fp+0#200", Equal},
		{"0x.fp+0#4", 3, Nearest, "0x.8p+1#3", Greater},
		{"0x.fp+0#4", 3, Down, "0x.ep+0#3", Less},
		{"-0x.fp+0#4", 3, Floor, "-0x.8p+1#3", Less},
		{"-0x.fp+0#4", 3, Ceiling, "-0x.ep+0#3", Greater},
		{"0x.ap+0#4", 3, Nearest, "0x.ap+0#3", Equal},
		{"0x.9p+0#4", 3, Nearest, "0x.8p+0#3", Less},  // tie to even
		{"0x.bp+0#4", 3, Nearest, "0x.cp+0#3", Greater}, // tie to even
		{"0x.9p+0#4", 3, Up, "0x.ap+0#3", Greater},
	} {
		x := fl(test.x)
		o := x.SetPrecRound(test.prec, test.mode)
		if got := text(x); got != test.want || o != test.o {
			t.Errorf("%s.SetPrecRound(%d, %s) = %s %s; want %s %s", test.x, test.prec, test.mode, got, o, test.want, test.o)
		}
	}

	x := fl("0x.9p+0#4")
	assert.PanicsWithValue(t, RoundingError{"bigfloat: inexact precision reduction"}, func() {
		x.SetPrecRound(3, Exact)
	})
	assert.Panics(t, func() { x.SetPrec(0) })
}

func TestFloatSetPrecWiden(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		p := uint32(r.Intn(4*_W) + 1)
		x := randFloat(r, p, int32(r.Intn(100)-50), r.Intn(2) == 0)
		z := new(Float).Set(x)
		q := p + uint32(r.Intn(3*_W))
		require.Equal(t, Equal, z.SetPrecRound(uint(q), Exact))
		require.Equal(t, 0, z.Cmp(x))
		require.Equal(t, Equal, z.SetPrecRound(uint(p), Exact))
		require.True(t, identical(z, x), "%s != %s", text(z), text(x))
	}
}

func TestFloatPredicates(t *testing.T) {
	for _, test := range []struct {
		x                          string
		sign                       int
		signbit, inf, nan, zero, i bool
		minPrec                    uint
	}{
		{"0", 0, false, false, false, true, true, 0},
		{"-0", 0, true, false, false, true, true, 0},
		{"+Inf", 1, false, true, false, false, false, 0},
		{"-Inf", -1, true, true, false, false, false, 0},
		{"NaN", 0, false, false, true, false, false, 0},
		{"1", 1, false, false, false, false, true, 1},
		{"-12", -1, true, false, false, false, true, 2},
		{"0.5", 1, false, false, false, false, false, 1},
		{"1.5", 1, false, false, false, false, false, 2},
		{"-0x1p-1000#3", -1, true, false, false, false, false, 1},
		{"0x1p1000#3", 1, false, false, false, false, true, 1},
	} {
		x := fl(test.x)
		if x.Sign() != test.sign || x.Signbit() != test.signbit || x.IsInf() != test.inf ||
			x.IsNaN() != test.nan || x.IsZero() != test.zero || x.IsInt() != test.i || x.MinPrec() != test.minPrec {
			t.Errorf("%s: got sign=%d signbit=%v inf=%v nan=%v zero=%v int=%v minPrec=%d",
				test.x, x.Sign(), x.Signbit(), x.IsInf(), x.IsNaN(), x.IsZero(), x.IsInt(), x.MinPrec())
		}
	}
}

func TestFloatCmp(t *testing.T) {
	vals := []string{"-Inf", "-0x.8p+2#1", "-1.5", "-1", "-0x1p-100", "0", "0x1p-100", "1", "1.5", "0x.8p+2#1", "+Inf"}
	for i, a := range vals {
		for j, b := range vals {
			want := 0
			switch {
			case i < j:
				want = -1
			case i > j:
				want = 1
			}
			if got := fl(a).Cmp(fl(b)); got != want {
				t.Errorf("%s.Cmp(%s) = %d; want %d", a, b, got, want)
			}
		}
	}
	assert.Equal(t, 0, fl("-0").Cmp(fl("0")))
	assert.Equal(t, 0, fl("1#1").Cmp(fl("1#200")))
	assert.PanicsWithValue(t, ErrNaN{"bigfloat: comparison with NaN"}, func() { fl("NaN").Cmp(fl("1")) })
}

func TestFloatNegAbs(t *testing.T) {
	for _, test := range []struct{ x, neg, abs string }{
		{"0#5", "-0#5", "0#5"},
		{"-0#5", "0#5", "0#5"},
		{"1.5#5", "-0x.cp+1#5", "0x.cp+1#5"},
		{"-Inf#5", "+Inf#5", "+Inf#5"},
		{"NaN#5", "NaN#5", "NaN#5"},
	} {
		x := fl(test.x)
		if got := text(new(Float).Neg(x)); got != test.neg {
			t.Errorf("Neg(%s) = %s; want %s", test.x, got, test.neg)
		}
		if got := text(new(Float).Abs(x)); got != test.abs {
			t.Errorf("Abs(%s) = %s; want %s", test.x, got, test.abs)
		}
	}
}

func TestFloatMantExp(t *testing.T) {
	for _, test := range []struct {
		x    string
		mant string
		exp  int
	}{
		{"0", "0#64", 0},
		{"+Inf", "+Inf#64", 0},
		{"0x.8p+1#1", "0x.8p+0#1", 1},
		{"-0x.cp-10#2", "-0x.cp+0#2", -10},
	} {
		x := fl(test.x)
		var mant Float
		exp := x.MantExp(&mant)
		if got := text(&mant); got != test.mant || exp != test.exp {
			t.Errorf("%s.MantExp() = %s, %d; want %s, %d", test.x, got, exp, test.mant, test.exp)
		}
		z := new(Float).SetMantExp(&mant, exp)
		if !identical(z, x) {
			t.Errorf("SetMantExp(%s, %d) = %s; want %s", test.mant, exp, text(z), test.x)
		}
	}

	// exponent overflow and underflow round to nearest
	one := fl("1#8")
	assert.True(t, new(Float).SetMantExp(one, MaxExp).IsInf())
	assert.True(t, new(Float).SetMantExp(one, MinExp-5).IsZero())
}

func TestFloatCopy(t *testing.T) {
	x := fl("-0x.ap+3#4")
	var z *Float
	z = z.Copy(x)
	require.NotSame(t, x, z)
	require.True(t, identical(x, z))
	z.mant[0] = 0
	require.Equal(t, "-0x.ap+3#4", text(x), "Copy must not share significands")
}

func TestOrdering(t *testing.T) {
	assert.Equal(t, Greater, Less.Reverse())
	assert.Equal(t, Equal, Equal.Reverse())
	assert.Equal(t, "Less", Less.String())
	assert.Equal(t, "Greater", Greater.String())
	for _, mode := range testModes {
		assert.Equal(t, mode, mode.Neg().Neg())
	}
	assert.Equal(t, Ceiling, Floor.Neg())
	assert.Equal(t, Nearest, Nearest.Neg())
	assert.Equal(t, big.ToNearestEven, Nearest.BigRoundingMode())
	assert.Equal(t, big.AwayFromZero, Up.BigRoundingMode())
}

func TestExactLeavesReceiver(t *testing.T) {
	const orig = "0x.abcp+3#12"
	one, tiny, three := fl("1#8"), fl("0x.1p-20#4"), fl("3#2")
	for _, test := range []struct {
		op string
		f  func(z *Float)
	}{
		{"subtraction", func(z *Float) { z.SubPrecRound(one, tiny, 8, Exact) }},
		{"addition", func(z *Float) { z.AddPrecRound(one, tiny, 8, Exact) }},
		{"multiplication", func(z *Float) { z.MulPrecRound(three, three, 2, Exact) }},
		{"square", func(z *Float) { z.SquarePrecRound(three, 2, Exact) }},
		{"division", func(z *Float) { z.QuoPrecRound(one, three, 4, Exact) }},
		{"reciprocal", func(z *Float) { z.ReciprocalPrecRound(three, 4, Exact) }},
		{"square root", func(z *Float) { z.SqrtPrecRound(three, 4, Exact) }},
		{"conversion", func(z *Float) { z.SetBigFloatRound(big.NewFloat(0.1), 4, Exact) }},
		{"precision reduction", func(z *Float) { z.SetPrecRound(4, Exact) }},
	} {
		z := fl(orig)
		err := catchRounding(func() { test.f(z) })
		assert.EqualError(t, err, "bigfloat: inexact "+test.op)
		assert.Equal(t, orig, text(z), test.op)
	}

	// z aliases an operand
	z := fl("3#2")
	assert.Error(t, catchRounding(func() { z.SqrtRound(z, Exact) }))
	assert.Equal(t, "0x.cp+2#2", text(z))
	assert.Error(t, catchRounding(func() { z.QuoPrecRound(one, z, 2, Exact) }))
	assert.Equal(t, "0x.cp+2#2", text(z))

	// exact results are still stored
	assert.Equal(t, Equal, z.SubPrecRound(fl("1.5#2"), fl("1#2"), 2, Exact))
	assert.Equal(t, "0x.8p+0#2", text(z))
	assert.Equal(t, Equal, z.SetPrecRound(1, Exact))
	assert.Equal(t, "0x.8p+0#1", text(z))
}

func TestFloatValidate(t *testing.T) {
	assert.Empty(t, fl("-0x.abcp+3#12").validate0())
	assert.Empty(t, new(Float).SetNaN().validate0())

	x := fl("0x.cp+2#2")
	x.mant[0] |= 1
	assert.Contains(t, x.validate0(), "bits below precision 2")
	x = fl("0x.cp+2#2")
	x.mant[0] = 1
	assert.Contains(t, x.validate0(), "msb not set")
	x = fl("0x.cp+2#2")
	x.prec = _W + 1
	assert.Contains(t, x.validate0(), "does not match precision")
}

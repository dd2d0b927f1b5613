package math

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/db47h/bigfloat"
)

func TestPow(t *testing.T) {
	for _, test := range []struct {
		x    string
		n    int
		prec uint
		want string
	}{
		{"3", 5, 64, "0x.f3p+8#64"},
		{"2", -3, 64, "0x.8p-2#64"},
		{"-2", 3, 8, "-0x.8p+4#8"},
		{"-2", 4, 8, "0x.8p+5#8"},
		{"1.5", 0, 8, "0x.8p+1#8"},
		{"NaN", 0, 8, "0x.8p+1#8"},
		{"0x.ap+1#4", 1, 2, "0x.8p+1#2"},
		{"0", -1, 8, "+Inf#8"},
		{"-0", 3, 8, "-0#8"},
		{"+Inf", -2, 8, "0#8"},
		{"3", 40, 64, "0x.a8b8b452291fe821p+64#64"},
	} {
		var x bigfloat.Float
		if err := x.UnmarshalText([]byte(test.x)); err != nil {
			t.Fatal(err)
		}
		z := Pow(new(bigfloat.Float).SetPrec(test.prec), &x, test.n)
		if got := text(z); got != test.want {
			t.Errorf("%s**%d = %s; want %s", test.x, test.n, got, test.want)
		}
	}

	// z's precision defaults to x's
	x := new(bigfloat.Float).SetPrec(3).SetInt64(5)
	assert.Equal(t, "0x.cp+5#3", text(Pow(new(bigfloat.Float), x, 2)))
}

func TestPowRat(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		prec := uint(r.Intn(200) + 1)
		n := r.Intn(60) - 30
		if n == 0 {
			n = 1
		}
		x := new(bigfloat.Float).SetPrec(uint(r.Intn(100) + 1)).SetFloat64(r.Float64()*4 - 2)
		if x.IsZero() {
			continue
		}
		xr, _ := x.Rat(nil)
		want := new(big.Rat).SetInt64(1)
		for k := 0; k < abs(n); k++ {
			want.Mul(want, xr)
		}
		if n < 0 {
			want.Inv(want)
		}
		wf := new(big.Float).SetPrec(prec).SetMode(big.ToNearestEven)
		wf.SetRat(want)

		z := Pow(new(bigfloat.Float).SetPrec(prec), x, n)
		if got := text(z); got != text(new(bigfloat.Float).SetBigFloat(wf)) {
			t.Fatalf("%s**%d = %s; want %s", text(x), n, got, wf.Text('p', 0))
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func TestSqrt(t *testing.T) {
	x := new(bigfloat.Float).SetPrec(10).SetInt64(2)
	z := Sqrt(new(bigfloat.Float), x)
	assert.Equal(t, uint(10), z.Prec())
	assert.Equal(t, "0x.b5p+1#10", text(z))
	assert.True(t, Sqrt(z, x.Neg(x)).IsNaN())
}

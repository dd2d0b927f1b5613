// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"math/big"
	"math/rand"
	"testing"
)

// cmpVV compares the equal length vectors x and y, most significant word
// first.
func cmpVV(x, y []Word) int {
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

func rndW(r *rand.Rand) Word {
	switch r.Intn(8) {
	case 0:
		return 0
	case 1:
		return _M
	}
	return Word(r.Uint64())
}

func rndV(r *rand.Rand, n int) []Word {
	v := make([]Word, n)
	for i := range v {
		v[i] = rndW(r)
	}
	return v
}

func toInt(v []Word) *big.Int {
	b := make([]big.Word, len(v))
	copy(b, v)
	return new(big.Int).SetBits(b)
}

// pow returns _B**n.
func pow(n int) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(n)*_W)
}

func TestFunVV(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		n := r.Intn(6) + 1
		x, y := rndV(r, n), rndV(r, n)
		z := make([]Word, n)
		X, Y := toInt(x), toInt(y)

		c := addVV(z, x, y)
		want := new(big.Int).Add(X, Y)
		got := new(big.Int).Add(toInt(z), new(big.Int).Mul(big.NewInt(int64(c)), pow(n)))
		if got.Cmp(want) != 0 {
			t.Fatalf("addVV(%x, %x) = %x, %d; want %x", x, y, z, c, want)
		}

		c = subVV(z, x, y)
		want.Sub(X, Y)
		got.Sub(toInt(z), new(big.Int).Mul(big.NewInt(int64(c)), pow(n)))
		if got.Cmp(want) != 0 {
			t.Fatalf("subVV(%x, %x) = %x, %d; want %x", x, y, z, c, want)
		}

		if cmp := cmpVV(x, y); cmp != X.Cmp(Y) {
			t.Fatalf("cmpVV(%x, %x) = %d", x, y, cmp)
		}
	}
}

func TestFunVW(t *testing.T) {
	r := rand.New(rand.NewSource(43))
	for i := 0; i < 1000; i++ {
		n := r.Intn(6) + 1
		x, y := rndV(r, n), rndW(r)
		z := make([]Word, n)
		X, Y := toInt(x), toInt([]Word{y})

		c := addVW(z, x, y)
		got := new(big.Int).Add(toInt(z), new(big.Int).Mul(big.NewInt(int64(c)), pow(n)))
		if want := new(big.Int).Add(X, Y); got.Cmp(want) != 0 {
			t.Fatalf("addVW(%x, %x) = %x, %d; want %x", x, y, z, c, want)
		}

		c = subVW(z, x, y)
		got = new(big.Int).Sub(toInt(z), new(big.Int).Mul(big.NewInt(int64(c)), pow(n)))
		if want := new(big.Int).Sub(X, Y); got.Cmp(want) != 0 {
			t.Fatalf("subVW(%x, %x) = %x, %d; want %x", x, y, z, c, want)
		}
	}
}

func TestShifts(t *testing.T) {
	r := rand.New(rand.NewSource(44))
	for i := 0; i < 1000; i++ {
		n := r.Intn(6) + 1
		s := uint(r.Intn(_W))
		x := rndV(r, n)
		X := toInt(x)

		z := make([]Word, n)
		c := shlVU(z, x, s)
		// x << s == z + c * _B**n
		want := new(big.Int).Lsh(X, s)
		got := new(big.Int).Add(toInt(z), new(big.Int).Lsh(toInt([]Word{c}), uint(n)*_W))
		if got.Cmp(want) != 0 {
			t.Fatalf("shlVU(%x, %d) = %x, %x", x, s, z, c)
		}

		// in place
		y := append([]Word(nil), x...)
		c = shrVU(y, y, s)
		// x == (y << s) + (c >> (_W - s))
		want = new(big.Int).Rsh(X, s)
		if toInt(y).Cmp(want) != 0 {
			t.Fatalf("shrVU(%x, %d) = %x", x, s, y)
		}
		if s > 0 {
			lost := new(big.Int).And(X, big.NewInt(0).SetUint64(uint64(lowMask(s))))
			if Word(lost.Uint64()) != c>>(_W-s) {
				t.Fatalf("shrVU(%x, %d) carry = %x; want %x", x, s, c, lost)
			}
		} else if c != 0 {
			t.Fatalf("shrVU(%x, 0) carry = %x", x, c)
		}
	}
}

func TestTopVV(t *testing.T) {
	r := rand.New(rand.NewSource(45))
	for i := 0; i < 1000; i++ {
		n := r.Intn(5) + 1
		k := r.Intn(n) + 1
		z, x := rndV(r, n), rndV(r, k)
		Z, X := toInt(z), new(big.Int).Mul(toInt(x), pow(n-k))

		w := append([]Word(nil), z...)
		c := subTopVV(w, x)
		got := new(big.Int).Sub(toInt(w), new(big.Int).Mul(big.NewInt(int64(c)), pow(n)))
		if want := new(big.Int).Sub(X, Z); got.Cmp(want) != 0 {
			t.Fatalf("subTopVV(%x, %x) = %x, %d", z, x, w, c)
		}

		w = append(w[:0], z...)
		c = addTopVV(w, x)
		got = new(big.Int).Add(toInt(w), new(big.Int).Mul(big.NewInt(int64(c)), pow(n)))
		if want := new(big.Int).Add(X, Z); got.Cmp(want) != 0 {
			t.Fatalf("addTopVV(%x, %x) = %x, %d", z, x, w, c)
		}
	}
}

func TestNorm(t *testing.T) {
	r := rand.New(rand.NewSource(46))
	for i := 0; i < 1000; i++ {
		v := rndV(r, 4)
		if v[3]|v[2]|v[1]|v[0] == 0 {
			continue
		}
		V := toInt(v)

		h3, h2, h1, h0, s := norm4(v[3], v[2], v[1], v[0])
		if h3&_H == 0 || toInt([]Word{h0, h1, h2, h3}).Cmp(new(big.Int).Lsh(V, s)) != 0 {
			t.Fatalf("norm4(%x) = %x %x %x %x, %d", v, h3, h2, h1, h0, s)
		}
		if v[2]|v[1]|v[0] != 0 {
			V3 := toInt(v[:3])
			h2, h1, h0, s := norm3(v[2], v[1], v[0])
			if h2&_H == 0 || toInt([]Word{h0, h1, h2}).Cmp(new(big.Int).Lsh(V3, s)) != 0 {
				t.Fatalf("norm3(%x) = %x %x %x, %d", v[:3], h2, h1, h0, s)
			}
		}
		if v[1]|v[0] != 0 {
			V2 := toInt(v[:2])
			h1, h0, s := norm2(v[1], v[0])
			if h1&_H == 0 || toInt([]Word{h0, h1}).Cmp(new(big.Int).Lsh(V2, s)) != 0 {
				t.Fatalf("norm2(%x) = %x %x, %d", v[:2], h1, h0, s)
			}
		}
	}
}

func BenchmarkAddVV(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	x, y := rndV(r, 16), rndV(r, 16)
	z := make([]Word, 16)
	for i := 0; i < b.N; i++ {
		addVV(z, x, y)
	}
}

// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlign(t *testing.T) {
	for _, test := range []struct {
		d uint64
		m int
		a alignment
		q int
		r uint
	}{
		{0, 2, alignNone, 0, 0},
		{1, 2, alignBits, 0, 1},
		{_W - 1, 2, alignBits, 0, _W - 1},
		{_W, 2, alignWords, 1, 0},
		{_W + 3, 2, alignWords, 1, 3},
		{2*_W - 1, 2, alignWords, 1, _W - 1},
		{2 * _W, 2, alignSticky, 2, 0},
		{1 << 40, 3, alignSticky, 3, 0},
	} {
		a, q, r := align(test.d, test.m)
		if a != test.a || q != test.q || r != test.r {
			t.Errorf("align(%d, %d) = %s, %d, %d; want %s, %d, %d", test.d, test.m, a, q, r, test.a, test.q, test.r)
		}
	}
}

// alignRef computes the window of alignInto bit by bit.
func alignRef(m int, y nat, d uint64) (w []Word, tail bool) {
	w = make([]Word, m)
	top := uint64(m) * _W // bit index above the window
	for i := 0; i < len(y)*_W; i++ {
		if y[i/_W]>>(uint(i)%_W)&1 == 0 {
			continue
		}
		// bit i of y lands at position pos of the window
		pos := int64(top) - int64(len(y)*_W) + int64(i) - int64(d)
		if pos < 0 {
			tail = true
			continue
		}
		w[pos/_W] |= 1 << (uint(pos) % _W)
	}
	return w, tail
}

func testDists(r *rand.Rand) []uint64 {
	ds := []uint64{0, 1, 2, _W - 1, _W, _W + 1, 2*_W - 1, 2 * _W, 2*_W + 1, 3*_W - 1, 3 * _W, 3*_W + 1, 4 * _W, 1000}
	for i := 0; i < 20; i++ {
		ds = append(ds, uint64(r.Intn(5*_W)))
	}
	return ds
}

func TestAlignInto(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for _, d := range testDists(r) {
		for i := 0; i < 20; i++ {
			k := r.Intn(3) + 1
			m := k + r.Intn(3)
			y := nat(rndV(r, k))
			y[k-1] |= _H

			w := make([]Word, m)
			for j := range w {
				w[j] = rndW(r) // alignInto clears the window first
			}
			tail := alignInto(w, y, d)
			want, wantTail := alignRef(m, y, d)
			if cmpVV(w, want) != 0 || tail != wantTail {
				t.Fatalf("alignInto(%d, %x, %d) = %x, %v; want %x, %v", m, y, d, w, tail, want, wantTail)
			}
		}
	}
}

func TestAlignFixed(t *testing.T) {
	r := rand.New(rand.NewSource(8))
	for _, d := range testDists(r) {
		for i := 0; i < 20; i++ {
			y := nat(rndV(r, 3))
			y[2] |= _H

			w1, w0, tail := align1(y[2], d)
			want, wantTail := alignRef(2, y[2:], d)
			assert.Equal(t, []Word(want), []Word{w0, w1}, "align1(%x, %d)", y[2], d)
			assert.Equal(t, wantTail, tail, "align1(%x, %d) tail", y[2], d)

			v2, v1, v0, tail := align2(y[2], y[1], d)
			want, wantTail = alignRef(3, y[1:], d)
			assert.Equal(t, []Word(want), []Word{v0, v1, v2}, "align2(%x, %d)", y[1:], d)
			assert.Equal(t, wantTail, tail, "align2(%x, %d) tail", y[1:], d)

			u3, u2, u1, u0, tail := align3(y[2], y[1], y[0], d)
			want, wantTail = alignRef(4, y, d)
			assert.Equal(t, []Word(want), []Word{u0, u1, u2, u3}, "align3(%x, %d)", y, d)
			assert.Equal(t, wantTail, tail, "align3(%x, %d) tail", y, d)
		}
	}
}

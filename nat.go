// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"math/big"
	"sync"
)

const debugFloat = false

// nat is an unsigned integer x of the form
//
//	x = x[n-1]*_B^(n-1) + x[n-2]*_B^(n-2) + ... + x[1]*_B + x[0]
//
// with 0 <= x[i] < _B and 0 <= i < n is stored in a slice of length n,
// with the digits x[i] as the slice elements.
//
// Significands are stored as nats interpreted as binary fractions 0.x, with
// the leading bit of x[n-1] set. Unlike math/big's nat, a significand may have
// trailing zero words but never leading ones.
type nat []Word

func (z nat) make(n int) nat {
	if n <= cap(z) {
		return z[:n] // reuse z
	}
	if n == 1 {
		// Most significands start small and stay that way; don't over-allocate.
		return make(nat, 1)
	}
	// Choosing a good value for e has significant performance impact
	// because it increases the chance that a value can be reused.
	const e = 4 // extra capacity
	return make(nat, n, n+e)
}

func (z nat) set(x nat) nat {
	z = z.make(len(x))
	copy(z, x)
	return z
}

func (z nat) clear() {
	for i := range z {
		z[i] = 0
	}
}

// nonzero reports whether any word of x is not zero.
func (x nat) nonzero() bool {
	for _, w := range x {
		if w != 0 {
			return true
		}
	}
	return false
}

// msw returns the index of the most significant non-zero word of x, or -1 if
// x == 0.
func (x nat) msw() int {
	i := len(x) - 1
	for i >= 0 && x[i] == 0 {
		i--
	}
	return i
}

// lsb returns the index of the least significant set bit of x, or -1 if
// x == 0.
func (x nat) lsb() int {
	for i, w := range x {
		if w != 0 {
			return i*_W + int(ntz(w))
		}
	}
	return -1
}

// isPow2 reports whether the significand x is a power of two, that is, only
// its leading bit is set.
func (x nat) isPow2() bool {
	n := len(x) - 1
	return n >= 0 && x[n] == _H && !x[:n].nonzero()
}

// cmpTop compares the significands x and y aligned on their most
// significant words, the shorter one being padded with zero words at the
// bottom.
func (x nat) cmpTop(y nat) int {
	i, j := len(x)-1, len(y)-1
	for ; i >= 0 && j >= 0; i, j = i-1, j-1 {
		switch {
		case x[i] < y[j]:
			return -1
		case x[i] > y[j]:
			return 1
		}
	}
	switch {
	case i >= 0 && x[:i+1].nonzero():
		return 1
	case j >= 0 && y[:j+1].nonzero():
		return -1
	}
	return 0
}

// normalize shifts x left in place until its top bit is set and returns the
// shift amount in bits. x must not be zero.
func (x nat) normalize() uint {
	n := len(x)
	i := x.msw()
	if debugFloat && i < 0 {
		panic("normalize of zero significand")
	}
	s := uint(n-1-i) * _W
	if i < n-1 {
		copy(x[n-1-i:], x[:i+1])
		x[:n-1-i].clear()
	}
	if l := nlz(x[n-1]); l > 0 {
		shlVU(x, x, l)
		s += l
	}
	return s
}

// setBits sets z to the significand of the integer b (as returned by
// big.Int.Bits) and returns z and the bit length of b. b must not be zero.
func (z nat) setBits(b []big.Word) (nat, uint) {
	n := len(b)
	for n > 0 && b[n-1] == 0 {
		n--
	}
	z = z.make(n)
	copy(z, b[:n])
	l := nlz(z[n-1])
	shlVU(z, z, l)
	return z, uint(n)*_W - l
}

// bytes writes the significand x into buf in big-endian order, leading byte
// first, and returns the number of bytes written. Writing stops when buf is
// full; the remaining low order bits of x are expected to be zero.
func (x nat) bytes(buf []byte) int {
	k := 0
	for i := len(x) - 1; i >= 0; i-- {
		w := x[i]
		for j := 0; j < _S; j++ {
			if k == len(buf) {
				return k
			}
			buf[k] = byte(w >> (_W - 8))
			w <<= 8
			k++
		}
	}
	return k
}

// setBytes sets z to the n-word significand whose leading bytes are buf,
// in big-endian order, and returns z.
func (z nat) setBytes(buf []byte, n int) nat {
	z = z.make(n)
	z.clear()
	k := 0
	for i := n - 1; i >= 0 && k < len(buf); i-- {
		var w Word
		for j := 0; j < _S; j++ {
			w <<= 8
			if k < len(buf) {
				w |= Word(buf[k])
				k++
			}
		}
		z[i] = w
	}
	return z
}

// getNat returns a *nat of len n. The contents may not be zero.
// The pool holds *nat to avoid allocation when converting to interface{}.
func getNat(n int) *nat {
	var z *nat
	if v := natPool.Get(); v != nil {
		z = v.(*nat)
	}
	if z == nil {
		z = new(nat)
	}
	*z = z.make(n)
	return z
}

func putNat(x *nat) {
	natPool.Put(x)
}

var natPool sync.Pool

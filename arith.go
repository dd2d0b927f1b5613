// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file provides Go implementations of elementary multi-word arithmetic
// operations on significand words. The vector forms follow the same
// conventions as their math/big counterparts.

package bigfloat

import "math/bits"

// ----------------------------------------------------------------------------
// Elementary operations on words

// addWithCarry returns x + y + c and the carry out. c must be 0 or 1.
func addWithCarry(x, y, c Word) (z, cout Word) {
	s, cc := bits.Add(uint(x), uint(y), uint(c))
	return Word(s), Word(cc)
}

// subWithBorrow returns x - y - b and the borrow out. b must be 0 or 1.
func subWithBorrow(x, y, b Word) (z, bout Word) {
	d, bb := bits.Sub(uint(x), uint(y), uint(b))
	return Word(d), Word(bb)
}

// shiftLeftInto returns the high word of the double word (hi, lo) shifted
// left by s bits. 0 <= s < _W.
func shiftLeftInto(hi, lo Word, s uint) Word {
	if s == 0 {
		return hi
	}
	return hi<<s | lo>>(_W-s)
}

// shiftRightFrom returns the low word of the double word (hi, lo) shifted
// right by s bits. 0 <= s < _W.
func shiftRightFrom(hi, lo Word, s uint) Word {
	if s == 0 {
		return lo
	}
	return lo>>s | hi<<(_W-s)
}

// nlz returns the number of leading zeros in x.
func nlz(x Word) uint {
	return uint(bits.LeadingZeros(uint(x)))
}

// ntz returns the number of trailing zeros in x.
func ntz(x Word) uint {
	return uint(bits.TrailingZeros(uint(x)))
}

// lowMask returns a word with the s lowest bits set. 0 <= s < _W.
func lowMask(s uint) Word {
	return 1<<s - 1
}

// ----------------------------------------------------------------------------
// Elementary operations on vectors

// addVV sets z = x + y and returns the carry. len(z) == len(x) == len(y).
// The resulting carry c is either 0 or 1.
func addVV(z, x, y []Word) (c Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		z[i], c = addWithCarry(x[i], y[i], c)
	}
	return
}

// subVV sets z = x - y and returns the borrow. len(z) == len(x) == len(y).
// The resulting borrow c is either 0 or 1.
func subVV(z, x, y []Word) (c Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		z[i], c = subWithBorrow(x[i], y[i], c)
	}
	return
}

// addVW sets z = x + y and returns the carry. len(z) == len(x).
func addVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		if c == 0 {
			copy(z[i:], x[i:])
			return 0
		}
		z[i], c = addWithCarry(x[i], c, 0)
	}
	return
}

// subVW sets z = x - y and returns the borrow. len(z) == len(x).
func subVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		if c == 0 {
			copy(z[i:], x[i:])
			return 0
		}
		z[i], c = subWithBorrow(x[i], c, 0)
	}
	return
}

// shlVU sets z = x << s and returns the bits shifted out of the top word, in
// the low bits of c. 0 <= s < _W and len(z) == len(x). z may alias x.
func shlVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return
	}
	if len(z) == 0 {
		return
	}
	n := len(z) - 1
	c = x[n] >> (_W - s)
	for i := n; i > 0; i-- {
		z[i] = shiftLeftInto(x[i], x[i-1], s)
	}
	z[0] = x[0] << s
	return
}

// shrVU sets z = x >> s and returns the bits shifted out of the bottom word,
// in the high bits of c. 0 <= s < _W and len(z) == len(x). z may alias x.
func shrVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return
	}
	if len(z) == 0 {
		return
	}
	n := len(z) - 1
	c = x[0] << (_W - s)
	for i := 0; i < n; i++ {
		z[i] = shiftRightFrom(x[i+1], x[i], s)
	}
	z[n] = x[n] >> s
	return
}

// subTopVV sets z to x·_B**(len(z)-len(x)) - z, that is x placed in the top
// words of z minus z, and returns the borrow. len(x) <= len(z).
func subTopVV(z, x []Word) (c Word) {
	k := len(z) - len(x)
	for i := 0; i < k; i++ {
		z[i], c = subWithBorrow(0, z[i], c)
	}
	for i := k; i < len(z); i++ {
		z[i], c = subWithBorrow(x[i-k], z[i], c)
	}
	return
}

// addTopVV adds x to the top len(x) words of z and returns the carry.
// len(x) <= len(z).
func addTopVV(z, x []Word) (c Word) {
	k := len(z) - len(x)
	return addVV(z[k:], z[k:], x)
}

// ----------------------------------------------------------------------------
// Normalization of fixed size windows

// norm2 shifts the nonzero double word (h1, h0) left until the msb of h1 is
// set and returns the shifted words and the shift amount.
func norm2(h1, h0 Word) (Word, Word, uint) {
	var s uint
	if h1 == 0 {
		h1, h0, s = h0, 0, _W
	}
	l := nlz(h1)
	return shiftLeftInto(h1, h0, l), h0 << l, s + l
}

// norm3 is like norm2 for the triple word (h2, h1, h0).
func norm3(h2, h1, h0 Word) (Word, Word, Word, uint) {
	var s uint
	switch {
	case h2 != 0:
	case h1 != 0:
		h2, h1, h0, s = h1, h0, 0, _W
	default:
		h2, h1, h0, s = h0, 0, 0, 2*_W
	}
	l := nlz(h2)
	return shiftLeftInto(h2, h1, l), shiftLeftInto(h1, h0, l), h0 << l, s + l
}

// norm4 is like norm2 for the quadruple word (h3, h2, h1, h0).
func norm4(h3, h2, h1, h0 Word) (Word, Word, Word, Word, uint) {
	var s uint
	switch {
	case h3 != 0:
	case h2 != 0:
		h3, h2, h1, h0, s = h2, h1, h0, 0, _W
	case h1 != 0:
		h3, h2, h1, h0, s = h1, h0, 0, 0, 2*_W
	default:
		h3, h2, h1, h0, s = h0, 0, 0, 0, 3*_W
	}
	l := nlz(h3)
	return shiftLeftInto(h3, h2, l), shiftLeftInto(h2, h1, l), shiftLeftInto(h1, h0, l), h0 << l, s + l
}

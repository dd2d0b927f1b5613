// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

// An alignment describes how an operand must be shifted right by d bits to
// line up with a window whose top word holds the leading bit of the other
// operand.
type alignment uint8

const (
	alignNone   alignment = iota // d == 0
	alignBits                    // 0 < d < _W: shift within words
	alignWords                   // d >= _W, the operand still overlaps the window
	alignSticky                  // the operand lies entirely below the window
)

var alignNames = [...]string{"alignNone", "alignBits", "alignWords", "alignSticky"}

func (a alignment) String() string { return alignNames[a] }

// align classifies the shift of an operand by d bits into a window of m words
// and returns the whole word offset q and intra-word shift r such that
// d == q*_W + r.
func align(d uint64, m int) (a alignment, q int, r uint) {
	switch {
	case d == 0:
		return alignNone, 0, 0
	case d < _W:
		return alignBits, 0, uint(d)
	case d >= uint64(m)*_W:
		return alignSticky, m, 0
	}
	return alignWords, int(d / _W), uint(d % _W)
}

// alignInto sets w to the top words of the window obtained by placing y in
// the top len(y) words of w and shifting it right by d bits. It reports
// whether any nonzero bits of y were shifted out below w[0].
// len(y) must not exceed len(w).
func alignInto(w []Word, y nat, d uint64) (tail bool) {
	m := len(w)
	a, q, r := align(d, m)
	nat(w).clear()
	switch a {
	case alignSticky:
		return y.nonzero()
	case alignNone:
		copy(w[m-len(y):], y)
		return false
	}
	off := m - len(y) - q // index of y[0] after the whole word shift
	if r == 0 {
		// whole words only
		for i, yi := range y {
			if j := i + off; j >= 0 {
				w[j] = yi
			} else if yi != 0 {
				tail = true
			}
		}
		return tail
	}
	for i, yi := range y {
		j := i + off
		if j >= 0 {
			w[j] |= yi >> r
		} else if yi>>r != 0 {
			tail = true
		}
		lo := yi << (_W - r)
		if j >= 1 {
			w[j-1] |= lo
		} else if lo != 0 {
			tail = true
		}
	}
	return tail
}

// align1 returns the 2-word window (w1, w0) obtained by shifting the 1-word
// significand y0 right by d bits, and whether nonzero bits were lost below w0.
func align1(y0 Word, d uint64) (w1, w0 Word, tail bool) {
	a, _, r := align(d, 2)
	switch a {
	case alignNone:
		return y0, 0, false
	case alignBits:
		return y0 >> r, y0 << (_W - r), false
	case alignSticky:
		return 0, 0, true
	}
	// q == 1
	if r == 0 {
		return 0, y0, false
	}
	return 0, y0 >> r, y0<<(_W-r) != 0
}

// align2 returns the 3-word window (w2, w1, w0) obtained by shifting the
// 2-word significand (y1, y0) right by d bits, and whether nonzero bits
// were lost below w0.
func align2(y1, y0 Word, d uint64) (w2, w1, w0 Word, tail bool) {
	a, q, r := align(d, 3)
	switch a {
	case alignNone:
		return y1, y0, 0, false
	case alignBits:
		return y1 >> r, shiftRightFrom(y1, y0, r), y0 << (_W - r), false
	case alignSticky:
		return 0, 0, 0, true
	}
	switch q {
	case 1:
		if r == 0 {
			return 0, y1, y0, false
		}
		return 0, y1 >> r, shiftRightFrom(y1, y0, r), y0<<(_W-r) != 0
	default: // q == 2
		if r == 0 {
			return 0, 0, y1, y0 != 0
		}
		return 0, 0, y1 >> r, y1<<(_W-r) != 0 || y0 != 0
	}
}

// align3 returns the 4-word window (w3, w2, w1, w0) obtained by shifting the
// 3-word significand (y2, y1, y0) right by d bits, and whether nonzero bits
// were lost below w0.
func align3(y2, y1, y0 Word, d uint64) (w3, w2, w1, w0 Word, tail bool) {
	a, q, r := align(d, 4)
	switch a {
	case alignNone:
		return y2, y1, y0, 0, false
	case alignBits:
		return y2 >> r, shiftRightFrom(y2, y1, r), shiftRightFrom(y1, y0, r), y0 << (_W - r), false
	case alignSticky:
		return 0, 0, 0, 0, true
	}
	switch q {
	case 1:
		if r == 0 {
			return 0, y2, y1, y0, false
		}
		return 0, y2 >> r, shiftRightFrom(y2, y1, r), shiftRightFrom(y1, y0, r), y0<<(_W-r) != 0
	case 2:
		if r == 0 {
			return 0, 0, y2, y1, y0 != 0
		}
		return 0, 0, y2 >> r, shiftRightFrom(y2, y1, r), y1<<(_W-r) != 0 || y0 != 0
	default: // q == 3
		if r == 0 {
			return 0, 0, 0, y2, y1 != 0 || y0 != 0
		}
		return 0, 0, 0, y2 >> r, y2<<(_W-r) != 0 || y1 != 0 || y0 != 0
	}
}

// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Floats.

package bigfloat

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const floatGobVersion byte = 1

// GobEncode implements the gob.GobEncoder interface.
// The Float value and its precision are marshaled.
func (x *Float) GobEncode() ([]byte, error) {
	if x == nil {
		return nil, nil
	}

	// determine max. space (bytes) required for encoding
	sz := 1 + 1 + 4 // version + form|neg (2+1bit) + prec
	n := 0          // number of significand bytes
	if x.form == finite {
		n = int((x.prec + 7) / 8)
		sz += 4 + n // exp + mant
	}
	buf := make([]byte, sz)

	buf[0] = floatGobVersion
	b := byte(x.form&3) << 1
	if x.neg {
		b |= 1
	}
	buf[1] = b
	binary.BigEndian.PutUint32(buf[2:], x.prec)

	if x.form == finite {
		binary.BigEndian.PutUint32(buf[6:], uint32(x.exp))
		x.mant.bytes(buf[10:])
	}

	return buf, nil
}

// GobDecode implements the gob.GobDecoder interface.
// z is set exactly to the decoded value, including its precision.
func (z *Float) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = Float{}
		return nil
	}
	if len(buf) < 6 {
		return errors.New("Float.GobDecode: buffer too small")
	}

	if buf[0] != floatGobVersion {
		return errors.Errorf("Float.GobDecode: encoding version %d not supported", buf[0])
	}

	b := buf[1]
	f := form((b >> 1) & 3)
	neg := b&1 != 0
	prec := binary.BigEndian.Uint32(buf[2:])

	if f == finite {
		n := int((prec + 7) / 8)
		if prec == 0 || prec > MaxPrec || len(buf) < 10+n {
			return errors.Errorf("Float.GobDecode: invalid finite encoding of precision %d", prec)
		}
		exp := int32(binary.BigEndian.Uint32(buf[6:]))
		mant := z.mant.setBytes(buf[10:10+n], words(prec))
		if mant[len(mant)-1]&_H == 0 || exp < MinExp || exp > MaxExp {
			return errors.New("Float.GobDecode: non-normalized significand or exponent out of range")
		}
		z.mant = mant
		z.exp = exp
	}
	z.form = f
	z.neg = neg
	z.prec = prec
	if f == finite {
		// clear bits below prec that a corrupted encoding may carry
		z.mant[0] &^= lowMask(uint(len(z.mant)*_W) - uint(prec))
	}
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface. The Float
// value is marshaled exactly in hexadecimal mantissa form, followed by its
// precision: 3 with a precision of 2 is marshaled as "0x.cp+2#2".
func (x *Float) MarshalText() (text []byte, err error) {
	if x == nil {
		return []byte("<nil>"), nil
	}
	var buf []byte
	buf = x.Append(buf, 'p', 0)
	buf = append(buf, '#')
	return strconv.AppendUint(buf, uint64(x.prec), 10), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// It accepts the format produced by MarshalText. If the precision suffix is
// missing, the value is parsed as with Parse and rounded to nearest.
func (z *Float) UnmarshalText(text []byte) error {
	s := string(text)
	prec := z.prec
	if i := strings.LastIndexByte(s, '#'); i >= 0 {
		p, err := strconv.ParseUint(s[i+1:], 10, 32)
		if err != nil || p == 0 || p > MaxPrec {
			return errors.Errorf("bigfloat: invalid precision in %q", text)
		}
		prec = uint32(p)
		s = s[:i]
	}
	z.prec = prec
	if _, _, err := z.Parse(s, 0); err != nil {
		return errors.Wrapf(err, "bigfloat: cannot unmarshal %q into a *bigfloat.Float", text)
	}
	return nil
}

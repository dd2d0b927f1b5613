// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import "golang.org/x/exp/constraints"

// FromInt returns a new Float set to the exact value of x, with precision 64.
func FromInt[T constraints.Integer](x T) *Float {
	u := uint64(x)
	if x < 0 {
		u = -u
	}
	return new(Float).setUint64(x < 0, u)
}

// FromFloat returns a new Float set to the exact value of x. The precision is
// 24 for float32 values and 53 otherwise. A NaN x yields a NaN.
func FromFloat[T constraints.Float](x T) *Float {
	z := new(Float)
	if _, ok := any(x).(float32); ok {
		z.prec = 24
	}
	return z.SetFloat64(float64(x))
}

package math

import (
	"sync"

	"github.com/db47h/bigfloat"
)

var (
	piMu sync.Mutex
	_pi  *bigfloat.Float // π with guardBits extra bits
)

// Pi sets z to π rounded to nearest with z's precision, and returns z. If z's
// precision is 0, it is set to DefaultPrec.
//
// The value is cached: calls with a precision no larger than the largest
// precision requested so far only round the cached value. Pi is safe for
// concurrent use.
func Pi(z *bigfloat.Float) *bigfloat.Float {
	prec := z.Prec()
	if prec == 0 {
		prec = DefaultPrec
	}
	piMu.Lock()
	if _pi == nil || _pi.Prec() < prec+guardBits {
		_pi = pi(prec + guardBits)
	}
	z.Set(_pi)
	piMu.Unlock()
	return z.SetPrec(prec)
}

// pi computes π with the Gauss-Legendre algorithm. All operations are rounded
// to prec bits, so the last few bits of the result are not significant.
func pi(prec uint) *bigfloat.Float {
	var (
		a = new(bigfloat.Float).SetPrec(prec).SetInt64(1)
		b = new(bigfloat.Float)
		t = new(bigfloat.Float).SetMantExp(one, -2)
		u = new(bigfloat.Float)
		z = new(bigfloat.Float)
		// p is a power of two, tracked by its exponent
		p = 0
	)
	b.SqrtPrec(two, prec)
	b.ReciprocalPrec(b, prec)

	for i := 0; i < maxIter; i++ {
		// a_n+1 = (a_n + b_n)/2
		u.Set(a)
		a.AddPrec(u, b, prec)
		a.SetMantExp(a, -1)
		// b_n+1 = √(a_n × b_n)
		z.MulPrec(u, b, prec)
		b.SqrtPrec(z, prec)
		// t_n+1 = t_n - p_n × (a_n - a_n+1)²
		z.SubPrec(u, a, prec)
		z.SquarePrec(z, prec)
		z.SetMantExp(z, p)
		t.SubPrec(t, z, prec)
		// p_n+1 = 2 × p_n
		p++

		z.SubPrec(a, b, prec)
		if z.IsZero() || z.MantExp(nil) <= 2-int(prec) {
			break
		}
	}
	z.AddPrec(a, b, prec)
	z.SquarePrec(z, prec)
	t.SetMantExp(t, 2)
	z.QuoPrec(z, t, prec)
	return z
}

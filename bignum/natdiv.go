// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements unsigned long division. It follows the same
// 2-by-1 and 3-by-2 digit guess-and-refine structure as math/big's
// divBasic (Knuth's Algorithm D); the recursive divide-and-conquer
// variant math/big uses for very large divisors is dropped, since
// nothing in spec.md's division contract requires it and it would add
// a second, harder-to-audit code path for operand sizes this engine
// does not expect to see (see DESIGN.md).

package bignum

// div returns (q, r) such that u = q*v + r, 0 <= r < v. Panics on a
// zero divisor.
func (z nat) div(u, v nat) (q, r nat) {
	v = v.norm()
	if v.isZero() {
		panic(newDivideByZeroError("div"))
	}

	u = u.norm()
	if u.cmp(v) < 0 {
		return nat(nil).setWord(0), nat(nil).set(u)
	}

	if len(v) == 1 {
		var rw Word
		q, rw = nat(nil).divW(u, v[0])
		return q, nat(nil).setWord(rw)
	}

	return divBasic(u, v)
}

// divW returns (q, r) such that x = q*y + r, 0 <= r < y, for a
// single-word divisor y != 0.
func (z nat) divW(x nat, y Word) (q nat, r Word) {
	x = x.norm()
	if y == 0 {
		panic(newDivideByZeroError("div"))
	}
	if x.isZero() {
		return nat(nil).setWord(0), 0
	}

	m := len(x)
	q = make(nat, m)
	for i := m - 1; i >= 0; i-- {
		q[i], r = divWW(r, x[i], y)
	}
	return q.norm(), r
}

// divBasic implements Knuth's Algorithm D: it returns floor(u/v) and
// the remainder as freshly allocated nats, for a divisor v of at least two
// limbs and a dividend u that is at least as long.
func divBasic(u, v nat) (q, r nat) {
	n := len(v)
	m := len(u) - n

	shift := nlz(v[n-1])
	vn := make(nat, n)
	shlVU(vn, v, shift)

	un := make(nat, len(u)+1)
	un[len(u)] = shlVU(un[0:len(u)], u, shift)

	qn := make(nat, m+1)
	vTop := vn[n-1]
	vNext := vn[n-2]

	qhatv := make(nat, n+1)
	for j := m; j >= 0; j-- {
		var ujn Word
		if j+n < len(un) {
			ujn = un[j+n]
		}

		var qhat, rhat Word
		if ujn == vTop {
			qhat = ^Word(0)
		} else {
			qhat, rhat = divWW(ujn, un[j+n-1], vTop)
			x1, x2 := mulWW(qhat, vNext)
			ujn2 := un[j+n-2]
			for greaterThan(x1, x2, rhat, ujn2) {
				qhat--
				prevRhat := rhat
				rhat += vTop
				if rhat < prevRhat {
					break
				}
				x1, x2 = mulWW(qhat, vNext)
			}
		}

		qhatv[n] = mulAddVWW(qhatv[0:n], vn, qhat, 0)
		qhl := len(qhatv)
		if j+qhl > len(un) && qhatv[n] == 0 {
			qhl--
		}

		c := subVV(un[j:j+qhl], un[j:j+qhl], qhatv[:qhl])
		if c != 0 {
			c := addVV(un[j:j+n], un[j:j+n], vn)
			if n < qhl {
				un[j+n] += c
			}
			qhat--
		}

		qn[j] = qhat
	}

	shrVU(un, un, shift)
	return qn.norm(), un[:n].norm()
}

// greaterThan reports whether the two-limb number x1:x2 > y1:y2.
func greaterThan(x1, x2, y1, y2 Word) bool {
	return x1 > y1 || x1 == y1 && x2 > y2
}

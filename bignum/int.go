// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the signed wrapper around nat: sign-and-magnitude
// Int values, grounded on the same decomposition the original math/big
// Int uses (a case on operand signs around the unsigned nat primitives),
// but exposed as an immutable value type per spec.md §3: every method
// below returns a freshly owned Int rather than mutating its receiver,
// so "x := x.Add(y)" is the compound-assignment idiom, not "x.Add(x, y)".

package bignum

// Int is an arbitrary-precision signed integer. The zero value is not a
// valid Int; use Zero() or one of the other constructors.
type Int struct {
	neg bool
	mag nat
}

// Zero returns the value 0.
func Zero() *Int { return &Int{mag: nat{0}} }

// One returns the value 1.
func One() *Int { return &Int{mag: nat{1}} }

// Two returns the value 2.
func Two() *Int { return &Int{mag: nat{2}} }

// FromInt64 returns the value of x.
func FromInt64(x int64) *Int {
	neg := x < 0
	var abs uint64
	if neg {
		abs = uint64(-x)
	} else {
		abs = uint64(x)
	}
	z := &Int{neg: neg, mag: natFromUint64(abs)}
	z.normalizeSign()
	return z
}

// FromLimbs returns the value represented by limbs (little-endian,
// magnitude only) with the given sign. An empty limb slice denotes zero.
func FromLimbs(limbs []uint64, neg bool) *Int {
	m := nat(nil).set(nat(limbs))
	if len(m) == 0 {
		m = nat{0}
	}
	z := &Int{neg: neg, mag: m.norm()}
	z.normalizeSign()
	return z
}

func newInt(neg bool, mag nat) *Int {
	z := &Int{neg: neg, mag: mag.norm()}
	z.normalizeSign()
	return z
}

// normalizeSign enforces the unique-zero invariant: zero is never negative.
func (z *Int) normalizeSign() {
	if z.mag.isZero() {
		z.neg = false
	}
}

func (x *Int) clone() *Int {
	return &Int{neg: x.neg, mag: nat(nil).set(x.mag)}
}

// IsZero reports whether x == 0.
func (x *Int) IsZero() bool { return x.mag.isZero() }

// IsOne reports whether x == 1.
func (x *Int) IsOne() bool { return !x.neg && len(x.mag) == 1 && x.mag[0] == 1 }

// IsNegative reports whether x < 0.
func (x *Int) IsNegative() bool { return x.neg && !x.mag.isZero() }

// IsEven reports whether x is divisible by two.
func (x *Int) IsEven() bool { return x.mag[0]&1 == 0 }

// IsOdd reports whether x is not divisible by two.
func (x *Int) IsOdd() bool { return x.mag[0]&1 == 1 }

// BitLen returns the bit length of |x|; BitLen of zero is 0.
func (x *Int) BitLen() int { return x.mag.bitLen() }

// ByteLen returns ceil(BitLen/8).
func (x *Int) ByteLen() int { return (x.BitLen() + 7) / 8 }

// Cmp returns -1, 0, or +1 depending on whether x < y, x == y, or x > y.
func (x *Int) Cmp(y *Int) int {
	if x.neg != y.neg {
		if x.neg {
			return -1
		}
		return 1
	}
	c := x.mag.cmp(y.mag)
	if x.neg {
		return -c
	}
	return c
}

// Equal reports whether x == y.
func (x *Int) Equal(y *Int) bool { return x.Cmp(y) == 0 }

// Neg returns -x. Negating zero yields the unique positive zero.
func (x *Int) Neg() *Int {
	if x.mag.isZero() {
		return Zero()
	}
	return newInt(!x.neg, nat(nil).set(x.mag))
}

// Add returns x+y.
func (x *Int) Add(y *Int) *Int {
	if x.neg == y.neg {
		return newInt(x.neg, nat(nil).add(x.mag, y.mag))
	}
	if x.mag.cmp(y.mag) >= 0 {
		return newInt(x.neg, nat(nil).sub(x.mag, y.mag))
	}
	return newInt(y.neg, nat(nil).sub(y.mag, x.mag))
}

// Sub returns x-y.
func (x *Int) Sub(y *Int) *Int {
	return x.Add(y.Neg())
}

// Mul returns x*y.
func (x *Int) Mul(y *Int) *Int {
	return newInt(x.neg != y.neg, mulNat(x.mag, y.mag))
}

// quoRem returns (q, r) such that x = q*y + r, q truncated toward zero
// and r taking the sign of x (Go's native integer division semantics).
func (x *Int) quoRem(y *Int) (q, r *Int) {
	if y.mag.isZero() {
		panic(newDivideByZeroError("divmod"))
	}
	qm, rm := nat(nil).div(x.mag, y.mag)
	return newInt(x.neg != y.neg, qm), newInt(x.neg, rm)
}

// Div returns the truncating quotient x/y. Panics if y == 0.
func (x *Int) Div(y *Int) *Int {
	q, _ := x.quoRem(y)
	return q
}

// Mod returns the remainder of truncating division; the result takes
// the sign of x (the dividend) and satisfies |Mod(y)| < |y|. Panics if
// y == 0.
func (x *Int) Mod(y *Int) *Int {
	_, r := x.quoRem(y)
	return r
}

// DivMod returns both the truncating quotient and remainder in one pass.
func (x *Int) DivMod(y *Int) (q, r *Int) {
	return x.quoRem(y)
}

// NonNegMod returns x reduced into [0, |y|), regardless of the sign of
// x. This is the normalization spec.md's Open Questions require at the
// Miller-Rabin witness domain and the modular-inverse call site.
func (x *Int) NonNegMod(y *Int) *Int {
	r := x.Mod(y)
	if r.IsNegative() {
		r = r.Add(newInt(false, nat(nil).set(y.mag)))
	}
	return r
}

// Lsh returns x<<s for a non-negative shift count s.
func (x *Int) Lsh(s uint) *Int {
	return newInt(x.neg, nat(nil).shl(x.mag, s))
}

// Rsh returns x>>s for a non-negative shift count s. The sign is
// preserved; this engine shifts the magnitude, it does not implement
// two's-complement arithmetic shift.
func (x *Int) Rsh(s uint) *Int {
	return newInt(x.neg, nat(nil).shr(x.mag, s))
}

// And returns x&y, treating both operands as non-negative magnitudes.
func (x *Int) And(y *Int) *Int { return newInt(false, nat(nil).and(x.mag, y.mag)) }

// Or returns x|y, treating both operands as non-negative magnitudes.
func (x *Int) Or(y *Int) *Int { return newInt(false, nat(nil).or(x.mag, y.mag)) }

// Xor returns x^y, treating both operands as non-negative magnitudes.
func (x *Int) Xor(y *Int) *Int { return newInt(false, nat(nil).xor(x.mag, y.mag)) }

// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements unsigned multi-precision integers (magnitudes).
// They are the building block for the signed Int type in int.go.

package bignum

// A nat represents the magnitude
//
//	x = x[n-1]*B^(n-1) + ... + x[1]*B + x[0]
//
// with B = 2^64, as a little-endian slice of limbs. A nat is normalized
// if it has no leading zero limb; the normalized representation of zero
// is a single zero limb (never an empty slice, see norm).
type nat []Word

func (z nat) clear() {
	for i := range z {
		z[i] = 0
	}
}

// norm strips leading zero limbs, leaving at least one limb.
func (z nat) norm() nat {
	i := len(z)
	for i > 1 && z[i-1] == 0 {
		i--
	}
	return z[0:i]
}

// make returns a nat of length n, reusing z's storage when it fits.
func (z nat) make(n int) nat {
	if n <= cap(z) {
		return z[:n]
	}
	const e = 4 // extra capacity, most nats start small and stay that way
	return make(nat, n, n+e)
}

func (z nat) setWord(x Word) nat {
	z = z.make(1)
	z[0] = x
	return z
}

func (z nat) set(x nat) nat {
	z = z.make(len(x))
	copy(z, x)
	return z
}

func natFromUint64(x uint64) nat {
	return nat(nil).setWord(x)
}

func (x nat) isZero() bool {
	return len(x) == 1 && x[0] == 0
}

func (x nat) cmp(y nat) int {
	m, n := len(x), len(y)
	if m != n {
		if m < n {
			return -1
		}
		return 1
	}
	for i := m - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// add sets z = x+y and returns the normalized result.
func (z nat) add(x, y nat) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	m, n := len(x), len(y)

	z = z.make(m + 1)
	c := addVV(z[0:n], x[0:n], y)
	if m > n {
		c = addVW(z[n:m], x[n:m], c)
	}
	z[m] = c

	return z.norm()
}

// sub sets z = x-y and returns the normalized result. Precondition: x >= y.
func (z nat) sub(x, y nat) nat {
	m, n := len(x), len(y)
	if m < n {
		panic(newModulusError("subtraction underflow"))
	}

	z = z.make(m)
	c := subVV(z[0:n], x[0:n], y)
	if m > n {
		c = subVW(z[n:m], x[n:m], c)
	}
	if c != 0 {
		panic(newModulusError("subtraction underflow"))
	}

	return z.norm()
}

func max(x, y int) int {
	if x > y {
		return x
	}
	return y
}

// basicMul computes the schoolbook product of x and y into z, which
// must have length len(x)+len(y). The result is not normalized.
func basicMul(z, x, y nat) {
	for i := range z {
		z[i] = 0
	}
	for i, d := range y {
		if d != 0 {
			z[i+len(x)] = addMulVVW(z[i:i+len(x)], x, d)
		}
	}
}

// karatsubaThreshold is the limb count at or above which mulNat switches
// from the schoolbook product to Karatsuba splitting. Fixed at 8 for
// reproducibility, per the modulus of spec.md's algorithm dispatch.
const karatsubaThreshold = 8

// mulNat returns the normalized product x*y. Every caller in this
// package multiplies into a freshly allocated result rather than an
// existing buffer, so this is a plain function rather than a method
// with a reusable-receiver-buffer convention.
func mulNat(x, y nat) nat {
	x = x.norm()
	y = y.norm()
	if x.isZero() || y.isZero() {
		return nat{0}
	}
	if max(len(x), len(y)) < karatsubaThreshold {
		r := make(nat, len(x)+len(y))
		basicMul(r, x, y)
		return r.norm()
	}
	return karatsubaMul(x, y).norm()
}

// karatsubaMul implements the three-multiplication Karatsuba identity
// described in spec.md §4.1: pad both operands to a common even limb
// length n, split each into a low and high half of n/2 limbs, and
// combine z0 = a0*b0, z2 = a1*b1, z1 = (a1+a0)*(b1+b0) - z2 - z0 as
// z0 + z1<<(64*n/2) + z2<<(64*n). Operands below karatsubaThreshold are
// delegated to the schoolbook product by mulNat, which every recursive
// call below funnels back through.
func karatsubaMul(x, y nat) nat {
	n := max(len(x), len(y))
	if n%2 != 0 {
		n++
	}
	half := n / 2

	a0, a1 := splitAt(x, half, n)
	b0, b1 := splitAt(y, half, n)

	z0 := mulNat(a0, b0)
	z2 := mulNat(a1, b1)

	apb := nat(nil).add(a1, a0)
	bpb := nat(nil).add(b1, b0)
	z1 := mulNat(apb, bpb)
	z1 = z1.sub(z1, z2)
	z1 = z1.sub(z1, z0)

	result := nat(nil).set(z0)
	result = result.add(result, nat(nil).shl(z1, uint(half)*_W))
	result = result.add(result, nat(nil).shl(z2, uint(n)*_W))
	return result
}

// splitAt pads x to n limbs (zero-extending) and returns its low `half`
// limbs and its remaining high limbs, both normalized.
func splitAt(x nat, half, n int) (lo, hi nat) {
	padded := make(nat, n)
	copy(padded, x)
	return padded[:half].norm(), padded[half:].norm()
}

// shl returns x<<s.
func (z nat) shl(x nat, s uint) nat {
	x = x.norm()
	if x.isZero() || s == 0 {
		return z.set(x)
	}

	wordShift := int(s / _W)
	bitShift := s % _W

	n := len(x) + wordShift
	z = z.make(n + 1)
	if bitShift == 0 {
		copy(z[wordShift:n], x)
		z[n] = 0
	} else {
		z[n] = shlVU(z[wordShift:n], x, bitShift)
	}
	for i := 0; i < wordShift; i++ {
		z[i] = 0
	}
	return z.norm()
}

// shr returns x>>s.
func (z nat) shr(x nat, s uint) nat {
	x = x.norm()
	wordShift := int(s / _W)
	bitShift := s % _W

	if wordShift >= len(x) {
		return z.setWord(0)
	}

	rest := x[wordShift:]
	n := len(rest)
	z = z.make(n)
	if bitShift == 0 {
		copy(z, rest)
	} else {
		shrVU(z, rest, bitShift)
	}
	return z.norm()
}

// bitLen returns the bit length of x; bitLen of zero is 0.
func (x nat) bitLen() int {
	x = x.norm()
	if x.isZero() {
		return 0
	}
	return (len(x)-1)*_W + wordBitLen(x[len(x)-1])
}

// bit returns the value (0 or 1) of the i'th bit of x, counting from
// the least significant bit.
func (x nat) bit(i int) uint {
	limb := i / _W
	if limb >= len(x) {
		return 0
	}
	return uint(x[limb]>>(uint(i)%_W)) & 1
}

// bitwise applies op limb-wise over the zero-extended operands.
func bitwise(z, x, y nat, op func(a, b Word) Word) nat {
	n := max(len(x), len(y))
	z = z.make(n)
	for i := 0; i < n; i++ {
		var a, b Word
		if i < len(x) {
			a = x[i]
		}
		if i < len(y) {
			b = y[i]
		}
		z[i] = op(a, b)
	}
	return z.norm()
}

func (z nat) and(x, y nat) nat { return bitwise(z, x, y, func(a, b Word) Word { return a & b }) }
func (z nat) or(x, y nat) nat  { return bitwise(z, x, y, func(a, b Word) Word { return a | b }) }
func (z nat) xor(x, y nat) nat { return bitwise(z, x, y, func(a, b Word) Word { return a ^ b }) }

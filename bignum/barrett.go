// This file implements Barrett modular reduction (spec.md §4.5),
// grounded on original_source/bignum-cpp's BarrettContext class: a
// precomputed mu = floor(b^(2k)/m) lets reduce() replace a long
// division with two multiplications and a bounded correction loop that
// subtracts m at most twice.

package bignum

// barrettThreshold is the minimum modulus limb count at which modPow
// prefers Barrett reduction over plain long-division exponentiation,
// for moduli that do not take the Montgomery path (even moduli, or odd
// ones whose Montgomery setup fails).
const barrettThreshold = 8

// BarrettContext precomputes the reduction constant for a fixed
// modulus so that repeated reductions avoid long division.
type BarrettContext struct {
	m  nat // modulus, normalized, k limbs
	k  int
	mu nat // floor(b^(2k) / m), b = 2^_W
}

// NewBarrettContext builds a context for reduction modulo m. m must be
// positive; zero or negative panics with a ModulusError.
func NewBarrettContext(m *Int) *BarrettContext {
	if m.IsZero() || m.IsNegative() {
		panic(newModulusError("barrett modulus must be positive"))
	}

	mm := m.mag.norm()
	k := len(mm)

	b2k := nat(nil).shl(nat{1}, uint(2*k)*_W)
	mu, _ := nat(nil).div(b2k, mm)

	return &BarrettContext{m: mm, k: k, mu: mu.norm()}
}

// Reduce returns x mod m for a non-negative x with at most 2k limbs,
// using Barrett's approximate-quotient method: q1 = floor(x / b^(k-1)),
// q2 = q1*mu, q3 = floor(q2 / b^(k+1)) approximates floor(x/m); the true
// remainder is recovered with at most two corrective subtractions of m.
func (c *BarrettContext) Reduce(x *Int) *Int {
	if x.IsNegative() {
		x = x.NonNegMod(newInt(false, c.m))
	}
	xm := x.mag.norm()

	k := c.k
	if len(xm) > 2*k {
		// Fall back to long division for operands outside Barrett's
		// designed range rather than producing a wrong answer.
		_, r := nat(nil).div(xm, c.m)
		return newInt(false, r)
	}

	q1 := shrWords(xm, k-1)
	q2 := mulNat(q1, c.mu)
	q3 := shrWords(q2, k+1)

	r1 := truncWords(xm, k+1)
	t := mulNat(q3, c.m)
	t = truncWords(t, k+1)

	var r nat
	if r1.cmp(t) >= 0 {
		r = nat(nil).sub(r1, t)
	} else {
		// r1 < t can only happen because we truncated to k+1 limbs;
		// borrow one "digit" of b^(k+1) to restore a valid subtraction.
		borrow := nat(nil).shl(nat{1}, uint(k+1)*_W)
		r1 = nat(nil).add(r1, borrow)
		r = nat(nil).sub(r1, t)
	}

	for r.cmp(c.m) >= 0 {
		r = nat(nil).sub(r, c.m)
	}
	return newInt(false, r)
}

// shrWords returns x shifted right by n whole limbs (i.e. x / b^n,
// truncated).
func shrWords(x nat, n int) nat {
	x = x.norm()
	if n <= 0 {
		return x.norm()
	}
	if n >= len(x) {
		return nat{0}
	}
	return x[n:].norm()
}

// truncWords returns x mod b^n, the low n limbs of x.
func truncWords(x nat, n int) nat {
	x = x.norm()
	if n >= len(x) {
		return x.norm()
	}
	return x[:n].norm()
}

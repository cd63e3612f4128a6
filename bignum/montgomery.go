// This file implements Montgomery modular multiplication and
// exponentiation (spec.md §4.4), grounded on
// _examples/jiajunxin-multiexp/nat.go's montgomery (the CIOS "Almost
// Montgomery Multiplication" of Gueron, "Efficient Software
// Implementations of Modular Exponentiation") and on
// original_source/bignum-cpp's MontgomeryContext class for the
// conversion/exponentiation wrapper around it.

package bignum

// montgomeryThreshold is the minimum modulus limb count at which modPow
// prefers Montgomery reduction over plain binary exponentiation.
const montgomeryThreshold = 4

// MontgomeryContext precomputes the constants needed to repeatedly
// reduce products modulo an odd modulus without performing long
// division on every step.
type MontgomeryContext struct {
	m   nat // odd modulus, normalized, n limbs
	n   int
	k   Word // k = -m[0]^-1 mod 2^_W
	rr  nat  // R^2 mod m, R = 2^(n*_W)
	one nat  // Montgomery representation of 1, i.e. R mod m
}

// NewMontgomeryContext builds a context for reduction modulo m. m must
// be a positive odd integer; any other value panics with a
// ModulusError.
func NewMontgomeryContext(m *Int) *MontgomeryContext {
	if m.IsZero() || m.IsNegative() || m.IsEven() {
		panic(newModulusError("montgomery modulus must be positive and odd"))
	}

	mm := m.mag.norm()
	n := len(mm)
	k := negModInverseWord(mm[0])

	ctx := &MontgomeryContext{m: mm, n: n, k: k}

	// R^2 mod m, computed by shifting 1 left by 2*n*_W bits and reducing.
	rr := nat(nil).shl(nat{1}, uint(2*n)*_W)
	_, rr = nat(nil).div(rr, mm)
	ctx.rr = rr.norm()

	// Montgomery representation of 1: multiply 1 (padded) by R^2 and
	// reduce once, which yields 1*R mod m.
	one := padTo(nat{1}, n)
	rrPadded := padTo(ctx.rr, n)
	ctx.one = ctx.reduceProduct(one, rrPadded)

	return ctx
}

// padTo zero-extends x to exactly n limbs. x must have at most n limbs.
func padTo(x nat, n int) nat {
	x = x.norm()
	z := make(nat, n)
	copy(z, x)
	return z
}

// negModInverseWord returns k such that m0*k == -1 (mod 2^_W), for odd
// m0, via Newton's method / Hensel lifting: the number of correct bits
// of y doubles each iteration, starting from 3 correct bits (y=m0 is
// already a correct inverse mod 8 for any odd m0).
func negModInverseWord(m0 Word) Word {
	y := m0
	for i := 0; i < 6; i++ {
		y = y * (2 - m0*y)
	}
	return -y
}

// reduceProduct computes x*y*R^-1 mod m for x, y already reduced to n
// limbs (the raw CIOS step, possibly leaving an "almost reduced" value
// in [0, 2m) as the teacher's comment describes); callers normalize
// with finalize when a canonical residue is required.
func (c *MontgomeryContext) reduceProduct(x, y nat) nat {
	return montgomeryCIOS(x, y, c.m, c.k, c.n)
}

// montgomeryCIOS computes z mod m = x*y*2^(-n*_W) mod m, assuming
// k = -1/m mod 2^_W and that x, y, m all have exactly n limbs. Per
// Gueron, "Efficient Software Implementations of Modular
// Exponentiation" (https://eprint.iacr.org/2011/239.pdf), this is an
// "Almost Montgomery Multiplication": x and y must satisfy
// 0 <= value < 2^(n*_W), and the result is guaranteed to satisfy the
// same bound, but it may not be < m — callers normalize separately.
func montgomeryCIOS(x, y, m nat, k Word, n int) nat {
	if len(x) != n || len(y) != n || len(m) != n {
		panic(newModulusError("mismatched montgomery operand lengths"))
	}

	z := make(nat, 2*n)
	var c Word
	for i := 0; i < n; i++ {
		d := y[i]
		c2 := addMulVVW(z[i:n+i], x, d)
		t := z[i] * k
		c3 := addMulVVW(z[i:n+i], m, t)
		cx := c + c2
		cy := cx + c3
		z[n+i] = cy
		if cx < c2 || cy < c3 {
			c = 1
		} else {
			c = 0
		}
	}

	result := make(nat, n)
	if c != 0 {
		subVV(result, z[n:], m)
	} else {
		copy(result, z[n:])
	}
	return result
}

// finalize brings an almost-reduced value into the canonical range [0, m).
func (c *MontgomeryContext) finalize(z nat) nat {
	z = padTo(z, c.n)
	if z.cmp(c.m) >= 0 {
		z = nat(nil).sub(z, c.m)
	}
	return z.norm()
}

// ToMontgomery converts x (reduced mod the context's modulus first) into
// Montgomery form, i.e. x*R mod m.
func (c *MontgomeryContext) ToMontgomery(x *Int) *Int {
	r := x.NonNegMod(newInt(false, c.m))
	xp := padTo(r.mag, c.n)
	rrp := padTo(c.rr, c.n)
	return newInt(false, c.finalize(c.reduceProduct(xp, rrp)))
}

// FromMontgomery converts xm, assumed to be in Montgomery form, back to
// an ordinary residue.
func (c *MontgomeryContext) FromMontgomery(xm *Int) *Int {
	xp := padTo(xm.mag, c.n)
	onep := padTo(nat{1}, c.n)
	return newInt(false, c.finalize(c.reduceProduct(xp, onep)))
}

// MulMod multiplies two Montgomery-form values and returns their
// Montgomery-form product: if x=a*R, y=b*R (mod m), the result is
// a*b*R (mod m).
func (c *MontgomeryContext) MulMod(x, y *Int) *Int {
	xp := padTo(x.mag, c.n)
	yp := padTo(y.mag, c.n)
	return newInt(false, c.finalize(c.reduceProduct(xp, yp)))
}

// Pow computes base^exp mod m for a non-negative exponent, via
// left-to-right binary exponentiation entirely in Montgomery form:
// the base is converted in once, every squaring and multiply step
// uses MulMod, and the accumulator is converted back out once at the
// end.
func (c *MontgomeryContext) Pow(base, exp *Int) *Int {
	if exp.IsNegative() {
		panic(newModulusError("montgomery exponentiation requires a non-negative exponent"))
	}

	baseM := c.ToMontgomery(base)
	accM := newInt(false, c.one)

	bitLen := exp.BitLen()
	for i := bitLen - 1; i >= 0; i-- {
		accM = c.MulMod(accM, accM)
		if exp.mag.bit(i) == 1 {
			accM = c.MulMod(accM, baseM)
		}
	}
	return c.FromMontgomery(accM)
}

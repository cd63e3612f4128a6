// This file implements the number-theoretic operations of spec.md
// §4.6/§4.7: GCD, the extended Euclidean algorithm, modular inverse,
// and modular exponentiation with algorithm dispatch by modulus size.
// Grounded on original_source/bignum-cpp's gcd/extendedGcd/modInverse/
// modPow/modPowMontgomery/modPowBinary.

package bignum

// Gcd returns the non-negative greatest common divisor of x and y.
// Gcd(0, 0) is 0.
func Gcd(x, y *Int) *Int {
	a := nat(nil).set(x.mag)
	b := nat(nil).set(y.mag)
	for !b.isZero() {
		_, r := nat(nil).div(a, b)
		a, b = b, r
	}
	return newInt(false, a)
}

// ExtendedGcd returns (g, s, t) such that g = gcd(x, y) = x*s + y*t.
// The sign of s and t is derived from the original signed x and y, not
// from their absolute values, matching the reference implementation's
// convention (see DESIGN.md).
func ExtendedGcd(x, y *Int) (g, s, t *Int) {
	oldR, r := x.clone(), y.clone()
	oldS, s0 := One(), Zero()
	oldT, t0 := Zero(), One()

	for !r.IsZero() {
		q := oldR.Div(r)
		oldR, r = r, oldR.Sub(q.Mul(r))
		oldS, s0 = s0, oldS.Sub(q.Mul(s0))
		oldT, t0 = t0, oldT.Sub(q.Mul(t0))
	}

	if oldR.IsNegative() {
		oldR = oldR.Neg()
		oldS = oldS.Neg()
		oldT = oldT.Neg()
	}

	return oldR, oldS, oldT
}

// ModInverse returns y such that x*y == 1 (mod m), normalized into
// [0, |m|). It panics with a NotInvertibleError if gcd(x, m) != 1.
func ModInverse(x, m *Int) *Int {
	g, s, _ := ExtendedGcd(x, m)
	if !g.IsOne() {
		panic(&NotInvertibleError{GCD: g})
	}
	return s.NonNegMod(m)
}

// ModPow returns base^exp mod m for a non-negative exponent and a
// positive modulus. exp = 0 always returns 1, checked before the mod-1
// case, matching the reference implementation's ordering
// (original_source/bignum-cpp/src/bignum.cpp:494-504). Otherwise it
// dispatches on the modulus's size: an odd modulus of at least
// montgomeryThreshold limbs tries Montgomery exponentiation first,
// falling back to modPowBinary if context construction panics; every
// other modulus goes straight to modPowBinary, which itself tries
// Barrett reduction for moduli of at least barrettThreshold limbs and
// falls back to plain long-division exponentiation on the same terms.
// This mirrors the reference's nested try/catch around
// MontgomeryContext and BarrettContext construction rather than the
// mutually-exclusive three-way dispatch a flat switch would suggest.
func ModPow(base, exp, m *Int) *Int {
	if m.IsZero() || m.IsNegative() {
		panic(newModulusError("modPow requires a positive modulus"))
	}
	if exp.IsNegative() {
		panic(newModulusError("modPow requires a non-negative exponent"))
	}
	if exp.IsZero() {
		return One()
	}
	if m.IsOne() {
		return Zero()
	}

	limbs := len(m.mag.norm())
	if m.IsOdd() && limbs >= montgomeryThreshold {
		if r, ok := tryModPowMontgomery(base, exp, m); ok {
			return r
		}
	}
	return modPowBinary(base, exp, m)
}

// tryModPowMontgomery attempts Montgomery exponentiation, recovering a
// panic from NewMontgomeryContext the way the reference's
// modPowMontgomery catches std::exception around MontgomeryContext
// construction and falls back to the binary method.
func tryModPowMontgomery(base, exp, m *Int) (result *Int, ok bool) {
	defer func() {
		if recover() != nil {
			result, ok = nil, false
		}
	}()
	return NewMontgomeryContext(m).Pow(base, exp), true
}

// modPowBinary computes base^exp mod m by left-to-right
// square-and-multiply. For moduli of at least barrettThreshold limbs it
// tries Barrett reduction first, falling back to ordinary long-division
// modulo at each step if BarrettContext construction panics, mirroring
// the reference's try/catch around BarrettContext inside its own
// modPowBinary.
func modPowBinary(base, exp, m *Int) *Int {
	limbs := len(m.mag.norm())
	if limbs >= barrettThreshold {
		if r, ok := tryModPowBarrett(base, exp, m); ok {
			return r
		}
	}

	b := base.NonNegMod(m)
	acc := One()

	bitLen := exp.BitLen()
	for i := bitLen - 1; i >= 0; i-- {
		acc = acc.Mul(acc).Mod(m)
		if exp.mag.bit(i) == 1 {
			acc = acc.Mul(b).Mod(m)
		}
	}
	return acc
}

// tryModPowBarrett attempts Barrett-reduced exponentiation, recovering a
// panic from NewBarrettContext the way the reference catches
// std::exception around BarrettContext construction and falls back to
// basic modular arithmetic.
func tryModPowBarrett(base, exp, m *Int) (result *Int, ok bool) {
	defer func() {
		if recover() != nil {
			result, ok = nil, false
		}
	}()
	return modPowBarrett(base, exp, m), true
}

func modPowBarrett(base, exp, m *Int) *Int {
	ctx := NewBarrettContext(m)
	b := ctx.Reduce(base.NonNegMod(m))
	acc := One()

	bitLen := exp.BitLen()
	for i := bitLen - 1; i >= 0; i-- {
		acc = ctx.Reduce(acc.Mul(acc))
		if exp.mag.bit(i) == 1 {
			acc = ctx.Reduce(acc.Mul(b))
		}
	}
	return acc
}

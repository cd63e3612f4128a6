// This file implements random magnitude generation, Miller-Rabin
// probabilistic primality testing, and random prime search (spec.md
// §4.8/§4.9), grounded on original_source/bignum-cpp's random/
// isProbablePrime/randomPrime. The reference implementation draws from
// a non-cryptographic PRNG (mt19937); this engine draws from
// crypto/rand instead, since a library producing values destined for
// modular-exponentiation and primality APIs should not hand callers
// predictable randomness by default (see DESIGN.md).
package bignum

import (
	"crypto/rand"
	"fmt"
)

// Random returns a uniformly random value with exactly bits bits: its
// most significant bit is always set. Random(0) returns zero.
func Random(bits int) *Int {
	if bits == 0 {
		return Zero()
	}
	if bits < 0 {
		panic(newModulusError("bit length must be non-negative"))
	}

	numLimbs := (bits + _W - 1) / _W
	buf := make([]byte, numLimbs*8)
	if _, err := rand.Read(buf); err != nil {
		// A failure here is a system-level entropy-source error, not a
		// caller argument mistake, so it doesn't get one of the five
		// named error types; %w keeps it unwrappable to the os-level
		// cause.
		panic(fmt.Errorf("bignum: failed to read random bytes: %w", err))
	}

	limbs := make(nat, numLimbs)
	for i := 0; i < numLimbs; i++ {
		for b := 0; b < 8; b++ {
			limbs[i] |= Word(buf[i*8+b]) << (8 * b)
		}
	}

	topBits := bits % _W
	if topBits == 0 {
		limbs[numLimbs-1] |= 1 << (_W - 1)
	} else {
		mask := Word(1)<<uint(topBits) - 1
		limbs[numLimbs-1] &= mask
		limbs[numLimbs-1] |= 1 << uint(topBits-1)
	}

	return newInt(false, limbs)
}

// IsProbablePrime reports whether x is prime with a false-positive
// probability of at most 4^-rounds, using the Miller-Rabin test. x <= 1
// is never prime; x == 2 is always prime; even x > 2 is never prime.
func (x *Int) IsProbablePrime(rounds int) bool {
	if x.Cmp(One()) <= 0 {
		return false
	}
	if x.Equal(Two()) {
		return true
	}
	if x.IsEven() {
		return false
	}

	nMinus1 := x.Sub(One())
	d := nMinus1
	r := 0
	for d.IsEven() {
		d = d.Rsh(1)
		r++
	}

	for i := 0; i < rounds; i++ {
		a := Random(x.BitLen() - 1)
		if a.Cmp(One()) <= 0 || a.Cmp(nMinus1) >= 0 {
			continue
		}

		y := ModPow(a, d, x)
		if y.Equal(One()) || y.Equal(nMinus1) {
			continue
		}

		composite := true
		for j := 0; j < r-1; j++ {
			y = ModPow(y, Two(), x)
			if y.Equal(nMinus1) {
				composite = false
				break
			}
		}
		if composite {
			return false
		}
	}

	return true
}

// millerRabinRounds is the round count randomPrime uses to validate
// candidates, matching the reference implementation's fixed choice.
const millerRabinRounds = 20

// RandomPrime returns a prime with exactly bits bits. bits must be at
// least 2. It panics with a PrimeGenerationExhaustedError if no prime
// is found within 50*bits attempts.
func RandomPrime(bits int) *Int {
	if bits < 2 {
		panic(newModulusError("prime bit length must be at least 2"))
	}
	if bits == 2 {
		return FromInt64(2)
	}
	if bits == 3 {
		return FromInt64(5)
	}

	maxAttempts := bits * 50
	highBit := One().Lsh(uint(bits - 1))

	for attempt := 0; attempt < maxAttempts; attempt++ {
		candidate := Random(bits)
		if candidate.IsEven() {
			candidate = candidate.Add(One())
		}
		if candidate.BitLen() < bits {
			candidate = candidate.Or(highBit)
		}

		if candidate.IsProbablePrime(millerRabinRounds) {
			return candidate
		}

		candidate = candidate.Add(Two())
		if candidate.BitLen() == bits && candidate.IsProbablePrime(millerRabinRounds) {
			return candidate
		}
	}

	panic(&PrimeGenerationExhaustedError{Bits: bits, Attempts: maxAttempts})
}

package bignum_test

import (
	"testing"

	"github.com/dchatterjee/bignum/bignum"
)

func TestIsProbablePrimeKnownValues(t *testing.T) {
	tests := []struct {
		x    int64
		want bool
	}{
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		{4, false},
		{17, true},
		{561, false}, // smallest Carmichael number
		{104729, true},
		{104730, false},
		{2147483647, true}, // 2^31 - 1, a Mersenne prime
	}
	for _, tt := range tests {
		got := bignum.FromInt64(tt.x).IsProbablePrime(20)
		if got != tt.want {
			t.Errorf("IsProbablePrime(%d) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestRandomHasExactBitLength(t *testing.T) {
	for _, bits := range []int{1, 8, 63, 64, 65, 128, 200} {
		x := bignum.Random(bits)
		if got := x.BitLen(); got != bits {
			t.Errorf("Random(%d).BitLen() = %d, want %d", bits, got, bits)
		}
	}
}

func TestRandomZeroBits(t *testing.T) {
	if !bignum.Random(0).IsZero() {
		t.Error("Random(0) should be zero")
	}
}

func TestRandomPrimeHasExactBitLengthAndIsPrime(t *testing.T) {
	for _, bits := range []int{2, 3, 8, 16, 64} {
		p := bignum.RandomPrime(bits)
		if got := p.BitLen(); got != bits {
			t.Errorf("RandomPrime(%d).BitLen() = %d, want %d", bits, got, bits)
		}
		if !p.IsProbablePrime(20) {
			t.Errorf("RandomPrime(%d) = %s is not prime", bits, p.ToHex())
		}
	}
}

func TestRandomPrimeRejectsTinyBitLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for bit length < 2")
		}
	}()
	bignum.RandomPrime(1)
}

package bignum_test

import (
	"testing"

	"github.com/dchatterjee/bignum/bignum"
)

func TestAddSub(t *testing.T) {
	tests := []struct {
		x, y, want int64
	}{
		{3, 4, 7},
		{-3, 4, 1},
		{3, -4, -1},
		{-3, -4, -7},
		{0, 0, 0},
		{5, -5, 0},
	}
	for _, tt := range tests {
		x, y := bignum.FromInt64(tt.x), bignum.FromInt64(tt.y)
		if got := x.Add(y).ToInt64(); got != tt.want {
			t.Errorf("Add(%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
		if got := x.Add(y).Sub(y).ToInt64(); got != tt.x {
			t.Errorf("Add(%d,%d).Sub(%d) = %d, want %d", tt.x, tt.y, tt.y, got, tt.x)
		}
	}
}

func TestMul(t *testing.T) {
	tests := []struct {
		x, y, want int64
	}{
		{6, 7, 42},
		{-6, 7, -42},
		{-6, -7, 42},
		{0, 100, 0},
	}
	for _, tt := range tests {
		got := bignum.FromInt64(tt.x).Mul(bignum.FromInt64(tt.y)).ToInt64()
		if got != tt.want {
			t.Errorf("Mul(%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestMulHexLiteral(t *testing.T) {
	x := bignum.FromHex("123456789")
	y := bignum.FromHex("abcdef")
	want := bignum.FromHex("c379aaaa375de7")
	if got := x.Mul(y); !got.Equal(want) {
		t.Errorf("fromHex(123456789)*fromHex(abcdef) = %s, want %s", got.ToHex(), want.ToHex())
	}
}

func TestDivModTruncating(t *testing.T) {
	tests := []struct {
		x, y, q, r int64
	}{
		{7, 2, 3, 1},
		{-7, 2, -3, -1},
		{7, -2, -3, 1},
		{-7, -2, 3, -1},
	}
	for _, tt := range tests {
		x, y := bignum.FromInt64(tt.x), bignum.FromInt64(tt.y)
		q, r := x.DivMod(y)
		if q.ToInt64() != tt.q || r.ToInt64() != tt.r {
			t.Errorf("DivMod(%d,%d) = (%d,%d), want (%d,%d)", tt.x, tt.y, q.ToInt64(), r.ToInt64(), tt.q, tt.r)
		}
	}
}

func TestDivByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on division by zero")
		}
	}()
	bignum.FromInt64(1).Div(bignum.Zero())
}

func TestNonNegMod(t *testing.T) {
	tests := []struct {
		x, m, want int64
	}{
		{-1, 5, 4},
		{7, 5, 2},
		{-7, 5, 3},
		{0, 5, 0},
	}
	for _, tt := range tests {
		got := bignum.FromInt64(tt.x).NonNegMod(bignum.FromInt64(tt.m)).ToInt64()
		if got != tt.want {
			t.Errorf("NonNegMod(%d,%d) = %d, want %d", tt.x, tt.m, got, tt.want)
		}
	}
}

func TestShifts(t *testing.T) {
	x := bignum.FromInt64(1)
	if got := x.Lsh(10).ToInt64(); got != 1024 {
		t.Errorf("1<<10 = %d, want 1024", got)
	}
	y := bignum.FromInt64(1024)
	if got := y.Rsh(10).ToInt64(); got != 1 {
		t.Errorf("1024>>10 = %d, want 1", got)
	}
}

func TestBitwise(t *testing.T) {
	x, y := bignum.FromInt64(0b1100), bignum.FromInt64(0b1010)
	if got := x.And(y).ToInt64(); got != 0b1000 {
		t.Errorf("And = %b, want %b", got, 0b1000)
	}
	if got := x.Or(y).ToInt64(); got != 0b1110 {
		t.Errorf("Or = %b, want %b", got, 0b1110)
	}
	if got := x.Xor(y).ToInt64(); got != 0b0110 {
		t.Errorf("Xor = %b, want %b", got, 0b0110)
	}
}

func TestCmpAndSign(t *testing.T) {
	neg, zero, pos := bignum.FromInt64(-5), bignum.Zero(), bignum.FromInt64(5)
	if neg.Cmp(zero) >= 0 {
		t.Error("expected -5 < 0")
	}
	if pos.Cmp(zero) <= 0 {
		t.Error("expected 5 > 0")
	}
	if !neg.IsNegative() || zero.IsNegative() || pos.IsNegative() {
		t.Error("IsNegative disagreement")
	}
	if !zero.Equal(neg.Neg().Add(pos.Neg())) {
		t.Error("expected -(-5) + -5 == 0")
	}
}

func TestKaratsubaCrossoverAgreesWithRepeatedAddition(t *testing.T) {
	// 9 limbs of all-ones exceeds karatsubaThreshold (8), exercising the
	// Karatsuba path; the product by 3 is compared with big+big+big,
	// which involves no multiplication at all.
	limbs := make([]uint64, 9)
	for i := range limbs {
		limbs[i] = ^uint64(0)
	}
	big := bignum.FromLimbs(limbs, false)
	small := bignum.FromInt64(3)

	got := big.Mul(small)
	want := big.Add(big).Add(big)
	if !got.Equal(want) {
		t.Errorf("karatsuba product mismatch: got %s want %s", got.ToHex(), want.ToHex())
	}
}

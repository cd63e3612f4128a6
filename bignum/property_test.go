// Property-based tests for the algebraic laws the engine's arithmetic
// must satisfy, grounded on
// agbruneau-FibGo/internal/fibonacci/fibonacci_property_test.go's use
// of gopter: gen.Int64/gen.UInt64Range feed random operands through
// prop.ForAll. The multiplication property is also checked against
// math/big as an independent oracle.

package bignum_test

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/dchatterjee/bignum/bignum"
)

func toBig(x *bignum.Int) *big.Int {
	b := new(big.Int)
	b.SetString(x.ToHex(), 16)
	return b
}

func defaultProps() *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	return gopter.NewProperties(parameters)
}

func TestAddCommutative_PropertyBased(t *testing.T) {
	properties := defaultProps()

	properties.Property("x+y == y+x", prop.ForAll(
		func(x, y int64) bool {
			a, b := bignum.FromInt64(x), bignum.FromInt64(y)
			return a.Add(b).Equal(b.Add(a))
		},
		gen.Int64(), gen.Int64(),
	))

	properties.TestingRun(t)
}

func TestAddAssociative_PropertyBased(t *testing.T) {
	properties := defaultProps()

	properties.Property("(x+y)+z == x+(y+z)", prop.ForAll(
		func(x, y, z int64) bool {
			a, b, c := bignum.FromInt64(x), bignum.FromInt64(y), bignum.FromInt64(z)
			return a.Add(b).Add(c).Equal(a.Add(b.Add(c)))
		},
		gen.Int64(), gen.Int64(), gen.Int64(),
	))

	properties.TestingRun(t)
}

func TestMulCommutative_PropertyBased(t *testing.T) {
	properties := defaultProps()

	properties.Property("x*y == y*x", prop.ForAll(
		func(x, y int64) bool {
			a, b := bignum.FromInt64(x), bignum.FromInt64(y)
			return a.Mul(b).Equal(b.Mul(a))
		},
		gen.Int64(), gen.Int64(),
	))

	properties.TestingRun(t)
}

func TestMulDistributesOverAdd_PropertyBased(t *testing.T) {
	properties := defaultProps()

	properties.Property("x*(y+z) == x*y + x*z", prop.ForAll(
		func(x, y, z int64) bool {
			a, b, c := bignum.FromInt64(x), bignum.FromInt64(y), bignum.FromInt64(z)
			lhs := a.Mul(b.Add(c))
			rhs := a.Mul(b).Add(a.Mul(c))
			return lhs.Equal(rhs)
		},
		gen.Int64(), gen.Int64(), gen.Int64(),
	))

	properties.TestingRun(t)
}

func TestDivModIdentity_PropertyBased(t *testing.T) {
	properties := defaultProps()

	properties.Property("x == (x/y)*y + x%y", prop.ForAll(
		func(x, y int64) bool {
			if y == 0 {
				y = 1
			}
			a, b := bignum.FromInt64(x), bignum.FromInt64(y)
			q, r := a.DivMod(b)
			return q.Mul(b).Add(r).Equal(a)
		},
		gen.Int64(), gen.Int64(),
	))

	properties.TestingRun(t)
}

func TestMulMatchesMathBig_PropertyBased(t *testing.T) {
	properties := defaultProps()

	properties.Property("x*y agrees with math/big", prop.ForAll(
		func(x, y int64) bool {
			a, b := bignum.FromInt64(x), bignum.FromInt64(y)
			want := new(big.Int).Mul(big.NewInt(x), big.NewInt(y))
			return toBig(a.Mul(b)).Cmp(want) == 0
		},
		gen.Int64(), gen.Int64(),
	))

	properties.TestingRun(t)
}

func TestBezoutIdentity_PropertyBased(t *testing.T) {
	properties := defaultProps()

	properties.Property("g == gcd(x,y) and g == x*s + y*t", prop.ForAll(
		func(x, y int64) bool {
			a, b := bignum.FromInt64(x), bignum.FromInt64(y)
			if a.IsZero() && b.IsZero() {
				return true
			}
			g, s, t := bignum.ExtendedGcd(a, b)
			return g.Equal(bignum.Gcd(a, b)) && g.Equal(a.Mul(s).Add(b.Mul(t)))
		},
		gen.Int64(), gen.Int64(),
	))

	properties.TestingRun(t)
}

func TestShiftMatchesMultiplyByPowerOfTwo_PropertyBased(t *testing.T) {
	properties := defaultProps()

	properties.Property("x<<s == x * 2^s", prop.ForAll(
		func(x int64, s uint64) bool {
			shift := s % 200
			a := bignum.FromInt64(x)
			lhs := a.Lsh(uint(shift))

			powerOfTwo := bignum.One()
			if shift > 0 {
				powerOfTwo = bignum.Two().Lsh(uint(shift) - 1)
			}
			rhs := a.Mul(powerOfTwo)

			return lhs.Equal(rhs)
		},
		gen.Int64(), gen.UInt64Range(0, 1000),
	))

	properties.TestingRun(t)
}

func TestModPowAgreesWithRepeatedMultiplication_PropertyBased(t *testing.T) {
	properties := defaultProps()

	properties.Property("x^e mod m via ModPow matches repeated ModMul", prop.ForAll(
		func(baseV int64, expV, modV uint64) bool {
			if modV < 2 {
				modV = 2
			}
			if expV > 64 {
				expV = 64
			}
			base := bignum.FromInt64(baseV)
			m := bignum.FromInt64(int64(modV))

			want := bignum.One()
			for i := uint64(0); i < expV; i++ {
				want = want.Mul(base).Mod(m)
			}
			want = want.NonNegMod(m)

			got := bignum.ModPow(base, bignum.FromInt64(int64(expV)), m)
			return got.Equal(want)
		},
		gen.Int64(), gen.UInt64Range(0, 64), gen.UInt64Range(2, 1<<20),
	))

	properties.TestingRun(t)
}

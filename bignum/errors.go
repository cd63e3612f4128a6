// This file defines the engine's structured error types, mirroring
// spec.md §7's three error families (invalid-argument, overflow,
// budget-exhaustion) split into the five named types SPEC_FULL.md
// commits to. Each is a concrete type implementing error and Unwrap so
// a caller that recovers from the panic can inspect it with errors.As
// or errors.Is, in the manner of agbruneau-FibGo/internal/errors's
// CalculationError.Unwrap — but the engine panics with them rather than
// returning them, per spec.md §7's "all three surface as fatal
// conditions at the call site."

package bignum

import (
	"errors"
	"fmt"
)

// Sentinel causes returned by each error type's Unwrap, so callers can
// test a whole error family with errors.Is without matching on the
// concrete struct type or its fields.
var (
	ErrDivideByZero             = errors.New("bignum: division by zero")
	ErrInvalidModulus           = errors.New("bignum: invalid argument")
	ErrNotInvertible            = errors.New("bignum: modular inverse does not exist")
	ErrValueOutOfRange          = errors.New("bignum: value out of range")
	ErrPrimeGenerationExhausted = errors.New("bignum: prime generation exhausted")
)

// DivideByZeroError reports that division or modulo was attempted with
// a zero divisor.
type DivideByZeroError struct {
	Operation string // "divmod" from Int division/modulo, "div" from the unsigned primitives
}

func (e *DivideByZeroError) Error() string {
	return fmt.Sprintf("bignum: %s by zero", e.Operation)
}

func (e *DivideByZeroError) Unwrap() error { return ErrDivideByZero }

func newDivideByZeroError(operation string) *DivideByZeroError {
	return &DivideByZeroError{Operation: operation}
}

// ModulusError reports any other caller argument error the operation
// cannot recover from: a malformed hex string, an even or zero
// Montgomery modulus, a zero or negative Barrett/modPow modulus, a
// negative bit length, or a mismatched internal operand length.
type ModulusError struct {
	Message string
}

func (e *ModulusError) Error() string {
	return fmt.Sprintf("bignum: invalid argument: %s", e.Message)
}

func (e *ModulusError) Unwrap() error { return ErrInvalidModulus }

func newModulusError(format string, args ...any) *ModulusError {
	return &ModulusError{Message: fmt.Sprintf(format, args...)}
}

// NotInvertibleError reports that modInverse was asked for the inverse
// of an element that shares a nontrivial factor with the modulus.
type NotInvertibleError struct {
	GCD *Int
}

func (e *NotInvertibleError) Error() string {
	return fmt.Sprintf("bignum: modular inverse does not exist: gcd = %s", e.GCD.ToHex())
}

func (e *NotInvertibleError) Unwrap() error { return ErrNotInvertible }

// OverflowError reports that ToInt64 was asked to extract a magnitude
// outside the signed 64-bit range.
type OverflowError struct {
	Value *Int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("bignum: value %s does not fit in an int64", e.Value.ToHex())
}

func (e *OverflowError) Unwrap() error { return ErrValueOutOfRange }

// PrimeGenerationExhaustedError reports that randomPrime exhausted its
// attempt budget (50*bits outer attempts) without finding a candidate
// that passed Miller-Rabin.
type PrimeGenerationExhaustedError struct {
	Bits     int
	Attempts int
}

func (e *PrimeGenerationExhaustedError) Error() string {
	return fmt.Sprintf("bignum: failed to generate a %d-bit prime after %d attempts", e.Bits, e.Attempts)
}

func (e *PrimeGenerationExhaustedError) Unwrap() error { return ErrPrimeGenerationExhausted }

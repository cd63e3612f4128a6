// Package bignum implements arbitrary-precision signed integer
// arithmetic: the four basic operations, bitwise operations and
// shifts, Karatsuba multiplication and Knuth long division for large
// operands, Montgomery and Barrett modular reduction, modular
// exponentiation, the extended Euclidean algorithm and modular
// inverse, Miller-Rabin primality testing, and random/random-prime
// generation.
//
// Every Int method returns a freshly allocated result; none mutate
// their receiver or arguments.
package bignum

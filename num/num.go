// Package num implements various utility functions regarding numeric types.
package num

import (
	"math/bits"

	"github.com/bits-and-blooms/bitset"
)

// MulMod returns a * b mod m.
// The product is computed in 128 bits, so it never overflows.
func MulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a%m, b%m)
	_, rem := bits.Div64(hi, lo, m)
	return rem
}

// ModExp returns x^y mod m.
func ModExp(x, y, m uint64) uint64 {
	r := uint64(1) % m
	x %= m
	for y > 0 {
		if y&1 == 1 {
			r = MulMod(r, x, m)
		}
		x = MulMod(x, x, m)
		y >>= 1
	}
	return r
}

// GCD returns the greatest common divisor of a and b.
// Output is always non-negative; GCD(math.MinInt64, 0) does not fit and wraps.
func GCD(a, b int64) int64 {
	ua, ub := absUint64(a), absUint64(b)
	for ub != 0 {
		ua, ub = ub, ua%ub
	}
	return int64(ua)
}

func absUint64(x int64) uint64 {
	if x < 0 {
		return uint64(-(x + 1)) + 1
	}
	return uint64(x)
}

// UnitSet returns the set of residues in [0, n) that are invertible modulo n.
// Panics if n < 2.
func UnitSet(n int64) *bitset.BitSet {
	if n < 2 {
		panic("modulus must be at least 2")
	}

	units := bitset.New(uint(n))
	for x := int64(1); x < n; x++ {
		if _, ok := ModInverse(x, n); ok {
			units.Set(uint(x))
		}
	}
	return units
}

// Totient returns Euler's totient of n, i.e. the number of units modulo n.
// Panics if n < 2.
func Totient(n int64) int64 {
	return int64(UnitSet(n).Count())
}

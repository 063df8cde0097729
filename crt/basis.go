// Package crt implements the Chinese Remainder decomposition of integers
// over a basis of pairwise coprime moduli.
package crt

import (
	"math"
	"math/bits"

	"github.com/pkg/errors"
	"github.com/sp301415/ringo-modinv/num"
	"github.com/tuneinsight/lattigo/v6/core/rlwe"
	"github.com/tuneinsight/lattigo/v6/ring"
)

// BasisLiteral is a literal for Basis.
// Use [BasisLiteral.Compile] to create a Basis.
type BasisLiteral struct {
	// Moduli are the pairwise coprime moduli of the basis.
	// Each modulus must be at least 2, and their product must fit in an int64.
	Moduli []uint64
}

// Compile transforms BasisLiteral to read-only Basis.
// If there is any invalid modulus in the literal, it panics.
func (b BasisLiteral) Compile() Basis {
	basis, err := NewBasis(b.Moduli)
	if err != nil {
		panic(err)
	}
	return basis
}

// Basis is a read-only set of pairwise coprime moduli q_i,
// together with the constants needed to reconstruct an integer modulo Q = prod q_i.
type Basis struct {
	moduli  []uint64
	modulus uint64

	// gadget[i] = (Q/q_i) * ((Q/q_i)^-1 mod q_i) mod Q.
	gadget []uint64
}

// NewBasis creates a new Basis from moduli.
// It returns an error if a modulus is smaller than 2,
// if two moduli share a common factor, or if the product overflows an int64.
func NewBasis(moduli []uint64) (Basis, error) {
	if len(moduli) == 0 {
		return Basis{}, errors.New("basis must have at least one modulus")
	}

	Q := uint64(1)
	for i, qi := range moduli {
		if qi < 2 || qi > math.MaxInt64 {
			return Basis{}, errors.Errorf("modulus %d out of range: %d", i, qi)
		}

		for j := 0; j < i; j++ {
			if _, ok := num.ModInverse(int64(moduli[j]), int64(qi)); !ok {
				return Basis{}, errors.Errorf("moduli %d and %d are not coprime: gcd(%d, %d) = %d",
					j, i, moduli[j], qi, num.GCD(int64(moduli[j]), int64(qi)))
			}
		}

		hi, lo := bits.Mul64(Q, qi)
		if hi != 0 || lo > math.MaxInt64 {
			return Basis{}, errors.Errorf("product of moduli overflows at modulus %d", i)
		}
		Q = lo
	}

	gadget := make([]uint64, len(moduli))
	for i, qi := range moduli {
		qDiv := Q / qi
		qDivMod := int64(qDiv % qi)

		// qDiv is coprime to qi, so the preconditions of BinaryModInverse hold for odd qi.
		var qInv int64
		if qi&1 == 1 {
			qInv = num.BinaryModInverse(qDivMod, int64(qi))
		} else {
			qInv, _ = num.ModInverse(qDivMod, int64(qi))
		}

		gadget[i] = num.MulMod(qDiv, uint64(qInv), Q)
	}

	return Basis{
		moduli:  append([]uint64(nil), moduli...),
		modulus: Q,
		gadget:  gadget,
	}, nil
}

// GenNTTBasis creates a Basis of NTT-friendly primes,
// i.e. primes q_i = 1 mod 2^logNthRoot with bit sizes given by logQ.
func GenNTTBasis(logNthRoot int, logQ []int) (Basis, error) {
	q, _, err := rlwe.GenModuli(logNthRoot, logQ, nil)
	if err != nil {
		return Basis{}, errors.Wrap(err, "cannot generate moduli")
	}

	if _, err := ring.NewRing(1<<(logNthRoot-1), q); err != nil {
		return Basis{}, errors.Wrap(err, "moduli are not NTT-friendly")
	}

	return NewBasis(q)
}

// Moduli returns a copy of the moduli of the Basis.
func (b Basis) Moduli() []uint64 {
	return append([]uint64(nil), b.moduli...)
}

// Modulus returns the product Q of all moduli.
func (b Basis) Modulus() uint64 {
	return b.modulus
}

// Len returns the number of moduli in the Basis.
func (b Basis) Len() int {
	return len(b.moduli)
}

// Decompose returns the residues of x modulo each q_i.
func (b Basis) Decompose(x uint64) []uint64 {
	r := make([]uint64, len(b.moduli))
	b.DecomposeAssign(x, r)
	return r
}

// DecomposeAssign writes the residues of x modulo each q_i to rOut.
func (b Basis) DecomposeAssign(x uint64, rOut []uint64) {
	for i, qi := range b.moduli {
		rOut[i] = x % qi
	}
}

// Reconstruct returns the unique x in [0, Q) with x = r[i] mod q_i for all i.
// Panics if len(r) does not match the number of moduli.
func (b Basis) Reconstruct(r []uint64) uint64 {
	if len(r) != len(b.moduli) {
		panic("residue count mismatch")
	}

	var x uint64
	for i := range b.moduli {
		// Both terms are below Q <= MaxInt64, so the sum does not overflow.
		x += num.MulMod(r[i], b.gadget[i], b.modulus)
		if x >= b.modulus {
			x -= b.modulus
		}
	}
	return x
}

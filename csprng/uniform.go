// Package csprng provides the random sources used to draw moduli and operands.
package csprng

import (
	"crypto/rand"
	"encoding/binary"
	"math"

	"github.com/sp301415/ringo-modinv/num"
	"golang.org/x/crypto/blake2b"
)

// bufSize is the default buffer size of UniformSampler.
const bufSize = 8192

// UniformSampler samples values from uniform distribution.
// This uses blake2b as a underlying prng.
type UniformSampler struct {
	prng blake2b.XOF

	buf [bufSize]byte
	ptr int
}

// NewUniformSampler creates a new UniformSampler.
//
// Panics when read from crypto/rand or blake2b initialization fails.
func NewUniformSampler() *UniformSampler {
	seed := make([]byte, 16)
	if _, err := rand.Read(seed); err != nil {
		panic(err)
	}
	return NewUniformSamplerWithSeed(seed)
}

// NewUniformSamplerWithSeed creates a new UniformSampler, with user supplied seed.
// Two samplers with the same seed produce the same stream.
//
// Panics when blake2b initialization fails.
func NewUniformSamplerWithSeed(seed []byte) *UniformSampler {
	prng, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, nil)
	if err != nil {
		panic(err)
	}

	if _, err = prng.Write(seed); err != nil {
		panic(err)
	}

	return &UniformSampler{
		prng: prng,

		buf: [bufSize]byte{},
		ptr: bufSize,
	}
}

// Read implements the [io.Reader] interface.
func (s *UniformSampler) Read(p []byte) (n int, err error) {
	return s.prng.Read(p)
}

// Sample uniformly samples a random uint64.
func (s *UniformSampler) Sample() uint64 {
	if s.ptr == bufSize {
		if _, err := s.prng.Read(s.buf[:]); err != nil {
			panic(err)
		}
		s.ptr = 0
	}

	res := binary.LittleEndian.Uint64(s.buf[s.ptr : s.ptr+8])
	s.ptr += 8

	return res
}

// SampleN uniformly samples a random integer in [0, N).
// Panics if N == 0.
func (s *UniformSampler) SampleN(N uint64) uint64 {
	if N == 0 {
		panic("bound must be positive")
	}

	bound := math.MaxUint64 - (math.MaxUint64 % N)
	for {
		res := s.Sample()
		if res < bound {
			return res % N
		}
	}
}

// SampleRange uniformly samples a random integer in [lo, hi].
// Panics if lo > hi.
func (s *UniformSampler) SampleRange(lo, hi int64) int64 {
	if lo > hi {
		panic("empty range")
	}

	width := uint64(hi) - uint64(lo)
	if width == math.MaxUint64 {
		return int64(s.Sample())
	}
	return int64(uint64(lo) + s.SampleN(width+1))
}

// SampleOdd uniformly samples a random odd integer in [lo, hi].
// Panics if there is no odd integer in [lo, hi].
func (s *UniformSampler) SampleOdd(lo, hi int64) int64 {
	if lo&1 == 0 {
		lo++
	}
	if hi&1 == 0 {
		if hi == math.MinInt64 {
			panic("empty range")
		}
		hi--
	}
	if lo > hi {
		panic("empty range")
	}

	k := s.SampleN((uint64(hi)-uint64(lo))/2 + 1)
	return int64(uint64(lo) + 2*k)
}

// SampleCoprime samples a random integer in [1, n) that is coprime to n.
// Panics if n < 2.
func (s *UniformSampler) SampleCoprime(n int64) int64 {
	if n < 2 {
		panic("modulus must be at least 2")
	}

	for {
		x := s.SampleRange(1, n-1)
		if num.GCD(x, n) == 1 {
			return x
		}
	}
}

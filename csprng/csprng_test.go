package csprng_test

import (
	"math"
	"testing"

	"github.com/sp301415/ringo-modinv/csprng"
	"github.com/sp301415/ringo-modinv/num"
	"github.com/stretchr/testify/assert"
)

func TestUniformSampler(t *testing.T) {
	t.Run("Seed", func(t *testing.T) {
		us0 := csprng.NewUniformSamplerWithSeed([]byte("seed"))
		us1 := csprng.NewUniformSamplerWithSeed([]byte("seed"))
		for i := 0; i < 2048; i++ {
			assert.Equal(t, us0.Sample(), us1.Sample())
		}
	})

	t.Run("SampleN", func(t *testing.T) {
		us := csprng.NewUniformSampler()
		for i := 0; i < 1024; i++ {
			assert.Less(t, us.SampleN(97), uint64(97))
		}
		assert.Panics(t, func() { us.SampleN(0) })
	})

	t.Run("SampleRange", func(t *testing.T) {
		us := csprng.NewUniformSampler()
		for i := 0; i < 1024; i++ {
			x := us.SampleRange(-5, 5)
			assert.GreaterOrEqual(t, x, int64(-5))
			assert.LessOrEqual(t, x, int64(5))
		}
		assert.Equal(t, int64(7), us.SampleRange(7, 7))
		assert.NotPanics(t, func() { us.SampleRange(math.MinInt64, math.MaxInt64) })
		assert.Panics(t, func() { us.SampleRange(1, 0) })
	})

	t.Run("SampleOdd", func(t *testing.T) {
		us := csprng.NewUniformSampler()
		for i := 0; i < 1024; i++ {
			x := us.SampleOdd(-10, 10)
			assert.Equal(t, int64(1), x&1)
			assert.GreaterOrEqual(t, x, int64(-9))
			assert.LessOrEqual(t, x, int64(9))
		}
		assert.Equal(t, int64(3), us.SampleOdd(2, 4))
		assert.Panics(t, func() { us.SampleOdd(4, 4) })
		assert.Panics(t, func() { us.SampleOdd(math.MinInt64, math.MinInt64) })
	})

	t.Run("SampleCoprime", func(t *testing.T) {
		us := csprng.NewUniformSampler()
		for i := 0; i < 1024; i++ {
			x := us.SampleCoprime(360)
			assert.Equal(t, int64(1), num.GCD(x, 360))
			assert.Greater(t, x, int64(0))
			assert.Less(t, x, int64(360))
		}
		assert.Equal(t, int64(1), us.SampleCoprime(2))
		assert.Panics(t, func() { us.SampleCoprime(1) })
	})
}

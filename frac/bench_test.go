package frac_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/ratsolve/frac"
)

// randomFracs builds a deterministic slice of non-zero fractions with
// small magnitudes so benchmark iterations never overflow.
func randomFracs(n int) []frac.Frac {
	rng := rand.New(rand.NewSource(42))
	out := make([]frac.Frac, n)
	for i := range out {
		out[i] = frac.New(int64(rng.Intn(999)+1), int64(rng.Intn(999)+1))
		if rng.Intn(2) == 1 {
			out[i] = out[i].Negate()
		}
	}

	return out
}

// BenchmarkAdd measures mixed-sign exact addition with reduction.
func BenchmarkAdd(b *testing.B) {
	vals := randomFracs(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = frac.Add(vals[i%1024], vals[(i+1)%1024])
	}
}

// BenchmarkMul measures overflow-checked multiplication with reduction.
func BenchmarkMul(b *testing.B) {
	vals := randomFracs(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = frac.Mul(vals[i%1024], vals[(i+1)%1024])
	}
}

// BenchmarkReduce measures the Euclid GCD reduction path alone.
func BenchmarkReduce(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = frac.Reduce(frac.Frac{Num: 123456, Den: 789012})
	}
}

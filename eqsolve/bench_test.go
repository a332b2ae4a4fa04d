package eqsolve_test

import (
	"testing"

	"github.com/katalvlaran/ratsolve/eqsolve"
)

// denseSystem builds the n×n system (nI + J)x = b with b chosen so the
// solution is all ones. Diagonally dominant, solvable, and its exact
// intermediate fractions stay far below the overflow bounds.
func denseSystem(b *testing.B, n int) *eqsolve.System {
	b.Helper()
	s := eqsolve.New()
	if err := s.Resize(n); err != nil {
		b.Fatalf("setup Resize failed: %v", err)
	}
	for r := 1; r <= n; r++ {
		for c := 1; c <= n; c++ {
			v := int32(1)
			if r == c {
				v = int32(n + 1)
			}
			s.SetCoefficient(r, c, v)
		}
		s.SetCoefficient(r, n+1, int32(2*n)) // row sum: n+1 + (n-1)·1
	}

	return s
}

// BenchmarkSolve_Dense8 measures a full solve (copy, elimination,
// verification) of a dense 8×8 system.
func BenchmarkSolve_Dense8(b *testing.B) {
	s := denseSystem(b, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if st, err := s.Solve(); err != nil || st != eqsolve.Solved {
			b.Fatalf("solve: status=%v err=%v", st, err)
		}
	}
}

// BenchmarkSolve_Diagonal64 measures the sparse fast path: a 64×64
// diagonal system where each pivot column clears nothing.
func BenchmarkSolve_Diagonal64(b *testing.B) {
	const n = 64
	s := eqsolve.New()
	if err := s.Resize(n); err != nil {
		b.Fatalf("setup Resize failed: %v", err)
	}
	for r := 1; r <= n; r++ {
		s.SetCoefficient(r, r, int32(r))
		s.SetCoefficient(r, n+1, int32(2*r))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if st, err := s.Solve(); err != nil || st != eqsolve.Solved {
			b.Fatalf("solve: status=%v err=%v", st, err)
		}
	}
}

// SPDX-License-Identifier: MIT

// Package ratsolve is an exact-rational linear algebra toolkit:
// solve square systems of integer-coefficient equations with
// bit-for-bit reproducible results — no floating point, no rounding,
// no FPU required.
//
// 🚀 What is ratsolve?
//
//	A small, deterministic library built from two pieces:
//	  • frac/    — a 32-bit exact rational value type: reduced
//	    fractions, a separate sign bit for full unsigned magnitude
//	    range, and eager overflow detection on every operation
//	  • eqsolve/ — Gauss-Jordan elimination with full pivoting over
//	    frac values: unique solutions are verified by re-substitution,
//	    degenerate systems are classified (NoSolution vs
//	    InfiniteSolutions), and overflow aborts cleanly
//
// ✨ Why choose ratsolve?
//
//   - Deterministic — identical inputs give identical results on every
//     platform, every time
//   - Honest about limits — results that leave the 32-bit magnitude
//     range are reported as Overflow, never silently wrapped
//   - Degeneracy-aware — "no solution" and "infinitely many" are
//     first-class outcomes, not errors
//   - Pure Go — no cgo, no hidden deps
//
// Quick example:
//
//	s := eqsolve.New()
//	_ = s.Resize(2)
//	s.SetCoefficient(1, 1, 2) // 2x + y = 5
//	s.SetCoefficient(1, 2, 1)
//	s.SetCoefficient(1, 3, 5)
//	s.SetCoefficient(2, 1, 1) //  x - y = 1
//	s.SetCoefficient(2, 2, -1)
//	s.SetCoefficient(2, 3, 1)
//	status, _ := s.Solve() // Solved; s.Solution() = [2 1]
//
// Intended for combinatorial and lattice computations, verification
// tooling, and embedded targets where floating point is unacceptable.
//
//	go get github.com/katalvlaran/ratsolve
package ratsolve

// SPDX-License-Identifier: MIT

// Package eqsolve solves square systems of linear equations with
// integer (or integer-ratio) coefficients using exact rational
// arithmetic — Gauss-Jordan elimination over frac.Frac values, with
// full pivoting, degeneracy classification and post-solve
// verification.
//
// 🚀 What does it give you?
//
//	Bit-for-bit reproducible solutions with no floating-point rounding:
//	  • Solved systems yield the exact solution vector, one reduced
//	    fraction per unknown
//	  • Degenerate systems are classified, not approximated:
//	    NoSolution vs InfiniteSolutions
//	  • Arithmetic overflow is detected before any truncation and
//	    aborts the solve with status Overflow
//
// ✨ Key design points:
//   - Two matrices per System: the original (set by you, never touched
//     by the engine) and the working copy (re-cloned from the original
//     at every Solve, reduced in place). Solve is therefore repeatable
//     and independent of prior attempts.
//   - Row swaps exchange row handles, O(1).
//   - Before Solved is declared, the candidate solution is
//     re-substituted into the original system and must match every
//     constant term exactly.
//   - Accessors are 1-indexed and out-of-range access is a silent
//     no-op — pre-validate your indices.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/ratsolve/eqsolve"
//
//	s := eqsolve.New()
//	if err := s.Resize(2); err != nil { ... }
//
//	// 2x +  y = 5
//	//  x -  y = 1
//	s.SetCoefficient(1, 1, 2)
//	s.SetCoefficient(1, 2, 1)
//	s.SetCoefficient(1, 3, 5)
//	s.SetCoefficient(2, 1, 1)
//	s.SetCoefficient(2, 2, -1)
//	s.SetCoefficient(2, 3, 1)
//
//	status, err := s.Solve()
//	if status == eqsolve.Solved {
//	  fmt.Println(s.Solution()) // [2 1]
//	}
//
// Concurrency: a System is single-threaded and a Solve is not
// reentrant; use one System per goroutine. No internal locking is
// provided or needed when instances are not shared.
//
// Complexity: O(N²) row operations, each O(N) wide; N ≤ 65,535.
package eqsolve

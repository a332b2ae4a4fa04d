// SPDX-License-Identifier: MIT

// Package eqsolve: the System container — storage lifecycle and
// coefficient accessors. Row operations live in rows.go, the
// elimination engine in solve.go.
package eqsolve

import (
	"strings"

	"github.com/katalvlaran/ratsolve/frac"
)

// System holds one square system of N simultaneous equations as two
// N×(N+1) augmented matrices of fractions: the original, populated by
// the caller and never mutated by the engine, and the working copy,
// re-cloned from the original at the start of every Solve and reduced
// in place. Column N+1 (1-indexed) holds each equation's constant
// term.
//
// The zero value is an empty system; call Resize before populating.
// A System must not be shared across goroutines.
type System struct {
	n        int           // number of equations (and unknowns)
	original [][]frac.Frac // caller's system, read-only for the engine
	working  [][]frac.Frac // elimination target, refreshed per solve
	solution []frac.Frac   // valid only after a Solved status
}

// New returns an empty System (N = 0).
// Complexity: O(1).
func New() *System {
	return &System{}
}

// Resize (re)allocates storage for n equations: both matrices sized
// n×(n+1) and the solution vector sized n, all cells initialized to
// the canonical zero fraction. Any previously stored coefficients are
// discarded. n may be 0 (equivalent to Reset).
// Returns ErrNegativeCount or ErrTooManyEquations on bad counts.
// Complexity: O(n²) time and memory.
func (s *System) Resize(n int) error {
	if n < 0 {
		return ErrNegativeCount
	}
	if n > MaxEquations {
		return ErrTooManyEquations
	}
	if n == 0 {
		s.Reset()

		return nil
	}

	s.n = n
	s.original = newMatrix(n)
	s.working = newMatrix(n)
	s.solution = make([]frac.Frac, n)

	return nil
}

// Reset releases all matrix and solution storage and returns the
// System to the empty state.
// Complexity: O(1).
func (s *System) Reset() {
	s.n = 0
	s.original = nil
	s.working = nil
	s.solution = nil
}

// Equations returns N, the current number of equations.
// Complexity: O(1).
func (s *System) Equations() int {
	return s.n
}

// SetCoefficient stores the integer v at the 1-indexed (row, col) of
// both the original and the working matrix. Valid rows are 1..N,
// valid columns 1..N+1 (column N+1 is the constant term). Out-of-range
// indices are a silent no-op. v = 0 stores the canonical zero
// fraction, not 0/1.
// Complexity: O(1).
func (s *System) SetCoefficient(row, col int, v int32) {
	if !s.inBounds(row, col) {
		return
	}
	s.store(row-1, col-1, frac.FromInt(int64(v)))
}

// SetCoefficientFrac stores the ratio num/den at the 1-indexed
// (row, col) of both matrices. The sign bit is the XOR of the operand
// signs (negative over negative is positive). A zero denominator — or
// a zero numerator — collapses the stored value to the canonical zero
// fraction regardless of the other operand. The magnitudes are stored
// exactly as given, without reduction. Out-of-range indices are a
// silent no-op.
// Complexity: O(1).
func (s *System) SetCoefficientFrac(row, col int, num, den int32) {
	if !s.inBounds(row, col) {
		return
	}
	if num == 0 || den == 0 {
		s.store(row-1, col-1, frac.Zero)

		return
	}
	s.store(row-1, col-1, frac.Frac{
		Num: mag32(num),
		Den: mag32(den),
		Neg: (num < 0) != (den < 0),
	})
}

// OriginalCoefficient returns the signed numerator stored at the
// 1-indexed (row, col) of the original matrix, or 0 when out of
// range. The denominator is ignored; use OriginalCoefficientFrac for
// ratio-valued cells.
// Complexity: O(1).
func (s *System) OriginalCoefficient(row, col int) int64 {
	if !s.inBounds(row, col) {
		return 0
	}
	f := s.original[row-1][col-1]
	v := int64(f.Num)
	if f.Neg {
		v = -v
	}

	return v
}

// OriginalCoefficientFrac returns the signed numerator and the
// denominator stored at the 1-indexed (row, col) of the original
// matrix, both 0 when out of range.
// Complexity: O(1).
func (s *System) OriginalCoefficientFrac(row, col int) (num, den int64) {
	if !s.inBounds(row, col) {
		return 0, 0
	}
	f := s.original[row-1][col-1]
	num = int64(f.Num)
	if f.Neg {
		num = -num
	}

	return num, int64(f.Den)
}

// WorkingCoefficient returns the fraction at the 1-indexed (row, col)
// of the working matrix and ok=true, or (Zero, false) when out of
// range. After a Solve the working matrix holds the reduced
// row-echelon form reached by the engine.
// Complexity: O(1).
func (s *System) WorkingCoefficient(row, col int) (f frac.Frac, ok bool) {
	if !s.inBounds(row, col) {
		return frac.Zero, false
	}

	return s.working[row-1][col-1], true
}

// Solution returns a copy of the solution vector, one fraction per
// unknown in equation order. It is meaningful only after a Solve that
// returned Solved; contents are stale or zero otherwise.
// Complexity: O(n).
func (s *System) Solution() []frac.Frac {
	out := make([]frac.Frac, len(s.solution))
	copy(out, s.solution)

	return out
}

// String implements fmt.Stringer: the working matrix, one bracketed
// row per line with the constant term separated by "|".
// Complexity: O(n²).
func (s *System) String() string {
	var b strings.Builder
	for i := 0; i < s.n; i++ {
		b.WriteString("[")
		for j := 0; j <= s.n; j++ {
			if j == s.n {
				b.WriteString(" | ")
			} else if j > 0 {
				b.WriteString(" ")
			}
			b.WriteString(s.working[i][j].String())
		}
		b.WriteString("]\n")
	}

	return b.String()
}

// inBounds reports whether the 1-indexed (row, col) addresses a cell:
// 1 ≤ row ≤ N and 1 ≤ col ≤ N+1.
func (s *System) inBounds(row, col int) bool {
	return row >= 1 && row <= s.n && col >= 1 && col <= s.n+1
}

// store writes v to the 0-indexed cell of both matrices.
func (s *System) store(i, j int, v frac.Frac) {
	s.original[i][j] = v
	s.working[i][j] = v
}

// newMatrix allocates an n×(n+1) grid; Go zero values are already the
// canonical zero fraction.
func newMatrix(n int) [][]frac.Frac {
	m := make([][]frac.Frac, n)
	for i := range m {
		m[i] = make([]frac.Frac, n+1)
	}

	return m
}

// mag32 returns |v| as uint32 (MinInt32's magnitude fits).
func mag32(v int32) uint32 {
	w := int64(v)
	if w < 0 {
		w = -w
	}

	return uint32(w)
}

// SPDX-License-Identifier: MIT

package eqsolve

import "github.com/katalvlaran/ratsolve/frac"

// Solve — Gauss-Jordan elimination with full pivoting
//
// Description:
//
//	Solve reduces the working matrix to reduced row-echelon form one
//	pivot column at a time and classifies the system when a full set
//	of pivots cannot be found. All arithmetic is exact; any overflow
//	aborts the solve.
//
// Algorithm outline, for pivot column c = 0..N-1 with pivot row r
// (advanced only when a column yields a pivot):
//  1. If cell (r,c) is zero, search the rows strictly below r for a
//     non-zero entry in column c and swap it up.
//  2. No such row → the column contributes no pivot: advance c
//     without advancing r. If the SKIP exhausts the columns, classify
//     on the stuck row r: zero right-hand side → InfiniteSolutions;
//     otherwise an all-zero row anywhere means a redundant equation →
//     InfiniteSolutions, else NoSolution.
//  3. Pivot not exactly 1 → divide the pivot row by it.
//  4. Negate the pivot row, then for every other row with a non-zero
//     entry m in column c: scale the pivot row by m, add it into that
//     row, divide the pivot row back by m. The negated pivot makes
//     the addition cancel column c exactly — frac has no subtract
//     primitive. Negate the pivot row back and advance.
//  5. After the loop — the last column yielded a pivot, whether or
//     not earlier skips left rows unpivoted — the final diagonal cell
//     (N-1, N-1) decides: non-zero → verify the candidate solution
//     against the original system (verify.go); zero → the right-hand
//     side of row N-1 distinguishes a redundant tail row
//     (InfiniteSolutions) from a contradiction (NoSolution).
//
// Complexity:
//
//	Time = O(N²) row operations, each O(N) wide; Memory = O(N²) for
//	the working copy refresh.
//
// Solve is repeatable: each call re-copies the original matrix into
// the working matrix first, so the outcome is independent of prior
// solve attempts and of any row operations applied in between.
//
// Returns (Status, error): NoSolution and InfiniteSolutions are
// classifications with a nil error; Overflow pairs with
// frac.ErrOverflow and MemoryError with ErrNoSystem. The solution
// vector is written only under Solved.
func (s *System) Solve() (Status, error) {
	if s.n == 0 {
		return MemoryError, ErrNoSystem
	}
	n, w := s.n, s.working

	// Fresh working copy of the original system.
	for i := range w {
		copy(w[i], s.original[i])
	}

	r := 0
	for c := 0; c < n && r < n; c++ {
		if w[r][c].IsZero() {
			swapped := false
			for rr := r + 1; rr < n; rr++ {
				if !w[rr][c].IsZero() {
					swapRows(w, r, rr)
					swapped = true

					break
				}
			}
			if !swapped {
				// No pivot in this column; try the next one. Running
				// out of columns mid-skip leaves row r stuck, and the
				// stuck row drives the classification.
				if c == n-1 {
					return s.classify(r), nil
				}

				continue
			}
		}

		// Normalize the pivot to exactly 1.
		if !w[r][c].IsOne() {
			if err := divRow(w, r, w[r][c]); err != nil {
				return Overflow, err
			}
		}

		// Temporarily negated pivot row: adding (pivot × m) into a
		// target row cancels its column-c entry exactly.
		negRow(w, r)
		for rr := r - 1; rr >= 0; rr-- {
			if err := clearEntry(w, rr, r, c); err != nil {
				return Overflow, err
			}
		}
		for rr := r + 1; rr < n; rr++ {
			if err := clearEntry(w, rr, r, c); err != nil {
				return Overflow, err
			}
		}
		negRow(w, r)

		r++
	}

	// The last column produced a pivot, so any unpivoted rows were
	// pushed below it as zero coefficient rows. The final diagonal
	// cell decides: zero there with a zero constant term is a
	// redundant tail row, a non-zero constant term a contradiction.
	if w[n-1][n-1].IsZero() {
		if w[n-1][n].IsZero() {
			return InfiniteSolutions, nil
		}

		return NoSolution, nil
	}

	return s.verify()
}

// clearEntry eliminates column c from row rr using the (negated)
// pivot row r: scale the pivot row by the target entry, add it in,
// then divide the pivot row back to restore it. A zero target entry
// is already clear. Any overflow aborts.
// Complexity: O(n).
func clearEntry(w [][]frac.Frac, rr, r, c int) error {
	m := w[rr][c]
	if m.IsZero() {
		return nil
	}
	if err := mulRow(w, r, m); err != nil {
		return err
	}
	if err := addRows(w, rr, r); err != nil {
		return err
	}

	return divRow(w, r, m)
}

// classify decides between the two degenerate outcomes once row r
// cannot receive a pivot: a zero constant term on row r means the row
// imposes no constraint (InfiniteSolutions); otherwise a fully zero
// row anywhere still marks a redundant equation (InfiniteSolutions),
// and failing that the system is contradictory (NoSolution).
// Complexity: O(n²) worst case.
func (s *System) classify(r int) Status {
	if s.working[r][s.n].IsZero() {
		return InfiniteSolutions
	}
	for i := 0; i < s.n; i++ {
		if rowIsZero(s.working[i]) {
			return InfiniteSolutions
		}
	}

	return NoSolution
}

// rowIsZero reports whether every entry of the row, constant term
// included, is the zero sentinel.
func rowIsZero(row []frac.Frac) bool {
	for _, v := range row {
		if !v.IsZero() {
			return false
		}
	}

	return true
}

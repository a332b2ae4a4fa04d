// SPDX-License-Identifier: MIT

package eqsolve

import "github.com/katalvlaran/ratsolve/frac"

// verify re-substitutes the candidate solution — the constant-term
// column of the reduced working matrix — into every row of the
// ORIGINAL, unreduced system and requires exact equality (numerator,
// denominator and sign) with each stored constant term. Reaching
// reduced row-echelon form does not by itself prove consistency under
// exact arithmetic, so any mismatch classifies the system NoSolution
// rather than Solved. Overflow during the check aborts the solve.
//
// On success the candidate values are copied into the solution vector
// and Solved is returned.
// Complexity: O(n²) fraction operations.
func (s *System) verify() (Status, error) {
	n, w := s.n, s.working
	for i := 0; i < n; i++ {
		sum := frac.Zero
		for j := 0; j < n; j++ {
			term, err := frac.Mul(s.original[i][j], w[j][n])
			if err != nil {
				return Overflow, err
			}
			if sum, err = frac.Add(sum, term); err != nil {
				return Overflow, err
			}
		}
		// Exact member-wise equality against the stored constant term.
		if sum != s.original[i][n] {
			return NoSolution, nil
		}
	}

	for i := 0; i < n; i++ {
		s.solution[i] = w[i][n]
	}

	return Solved, nil
}

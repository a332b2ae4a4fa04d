// SPDX-License-Identifier: MIT

// Package eqsolve: elementary row operations on the working matrix.
// The exported forms are 1-indexed with silent out-of-bounds no-ops;
// the unexported 0-indexed helpers are shared with the elimination
// engine in solve.go.
package eqsolve

import "github.com/katalvlaran/ratsolve/frac"

// SwapRows exchanges working-matrix rows r1 and r2 (1-indexed) by
// swapping their row handles — no elements are copied. Out-of-range
// rows are a silent no-op.
// Complexity: O(1).
func (s *System) SwapRows(r1, r2 int) {
	if r1 < 1 || r2 < 1 || r1 > s.n || r2 > s.n {
		return
	}
	swapRows(s.working, r1-1, r2-1)
}

// MulRow multiplies every entry of working-matrix row (1-indexed) by
// m. On overflow the row is left partially scaled and ErrOverflow is
// returned; an out-of-range row is a silent no-op with a nil error, so
// callers must not use the error to distinguish a no-op from partial
// success.
// Complexity: O(n).
func (s *System) MulRow(row int, m frac.Frac) error {
	if row < 1 || row > s.n {
		return nil
	}

	return mulRow(s.working, row-1, m)
}

// DivRow divides every entry of working-matrix row (1-indexed) by d,
// with the same overflow and bounds behavior as MulRow.
// Complexity: O(n).
func (s *System) DivRow(row int, d frac.Frac) error {
	if row < 1 || row > s.n {
		return nil
	}

	return divRow(s.working, row-1, d)
}

// AddRows adds working-matrix row src into row dst element-wise
// (1-indexed), with the same overflow and bounds behavior as MulRow.
// Complexity: O(n).
func (s *System) AddRows(dst, src int) error {
	if dst < 1 || dst > s.n || src < 1 || src > s.n {
		return nil
	}

	return addRows(s.working, dst-1, src-1)
}

// swapRows exchanges the row slices at i and j.
func swapRows(m [][]frac.Frac, i, j int) {
	m[i], m[j] = m[j], m[i]
}

// mulRow scales row i of m by v. On overflow the failing cell holds
// the aborted zero result, the remaining entries are unmodified, and
// the scan stops.
func mulRow(m [][]frac.Frac, i int, v frac.Frac) error {
	row := m[i]
	for c := range row {
		p, err := frac.Mul(row[c], v)
		row[c] = p
		if err != nil {
			return err
		}
	}

	return nil
}

// divRow divides row i of m by v, with the same overflow
// short-circuit as mulRow.
func divRow(m [][]frac.Frac, i int, v frac.Frac) error {
	row := m[i]
	for c := range row {
		q, err := frac.Div(row[c], v)
		row[c] = q
		if err != nil {
			return err
		}
	}

	return nil
}

// addRows adds row j of m into row i element-wise, with the same
// overflow short-circuit as mulRow.
func addRows(m [][]frac.Frac, i, j int) error {
	dst, src := m[i], m[j]
	for c := range dst {
		sum, err := frac.Add(dst[c], src[c])
		dst[c] = sum
		if err != nil {
			return err
		}
	}

	return nil
}

// negRow flips the sign of every non-sentinel entry of row i — the
// elimination engine's pivot-row bookkeeping (frac has no subtract
// primitive; clearing a column uses multiply/add/divide against a
// temporarily negated pivot row).
func negRow(m [][]frac.Frac, i int) {
	row := m[i]
	for c := range row {
		row[c] = row[c].Negate()
	}
}

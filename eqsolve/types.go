// SPDX-License-Identifier: MIT

// Package eqsolve: solve statuses and system-wide bounds.
package eqsolve

// MaxEquations is the largest supported number of simultaneous
// equations (and unknowns) in one System.
const MaxEquations = 65535

// Status is the outcome of a Solve call.
//
//   - Solved            — unique solution found and verified; the
//     solution vector is readable until the next Solve or Reset.
//   - NoSolution        — the system is inconsistent. This is a
//     classification, not an error.
//   - InfiniteSolutions — the system is underdetermined (dependent or
//     redundant equations). Also a classification.
//   - Overflow          — a fraction operation exceeded the 32-bit
//     magnitude bounds; the solve was aborted. Paired with
//     frac.ErrOverflow.
//   - MemoryError       — no system storage is available (the System
//     is unsized or was Reset). Paired with ErrNoSystem.
type Status int

const (
	// Solved: unique, verified solution available via Solution().
	Solved Status = iota + 1
	// NoSolution: the equations are contradictory.
	NoSolution
	// InfiniteSolutions: the equations do not determine every unknown.
	InfiniteSolutions
	// MemoryError: the System has no allocated storage to solve.
	MemoryError
	// Overflow: exact arithmetic left the representable range.
	Overflow
)

// String implements fmt.Stringer for Status.
func (st Status) String() string {
	switch st {
	case Solved:
		return "Solved"
	case NoSolution:
		return "NoSolution"
	case InfiniteSolutions:
		return "InfiniteSolutions"
	case MemoryError:
		return "MemoryError"
	case Overflow:
		return "Overflow"
	default:
		return "Unknown"
	}
}

// SPDX-License-Identifier: MIT

package eqsolve

import "errors"

// Sentinel errors for eqsolve operations. All are matched via
// errors.Is; out-of-range accessor indices are deliberately NOT errors
// (silent no-ops per the package contract).
var (
	// ErrTooManyEquations indicates a Resize beyond MaxEquations.
	ErrTooManyEquations = errors.New("eqsolve: equation count exceeds 65535")
	// ErrNegativeCount indicates a Resize with a negative count.
	ErrNegativeCount = errors.New("eqsolve: equation count must be non-negative")
	// ErrNoSystem indicates a Solve on an unsized or reset System.
	ErrNoSystem = errors.New("eqsolve: system has no equations")
)

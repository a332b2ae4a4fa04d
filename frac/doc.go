// SPDX-License-Identifier: MIT

// Package frac implements exact rational arithmetic on 32-bit unsigned
// magnitudes with a separate sign bit — no floating point anywhere.
//
// 🚀 Why another rational type?
//
//	math/big.Rat is arbitrary-precision: it never overflows, so it can
//	never TELL you it overflowed. frac targets callers who need
//	bit-for-bit reproducible results inside a fixed magnitude budget:
//	  • combinatorial / lattice computations
//	  • verification tooling that must reject out-of-range results
//	  • embedded contexts without an FPU
//
// ✨ Key properties:
//   - Frac is a plain comparable value: {Num, Den uint32, Neg bool}.
//     Exact equality is ==; the zero value IS the canonical zero.
//   - Every arithmetic result is reduced to lowest terms (Euclid GCD).
//   - Keeping the sign outside the magnitude doubles the usable range
//     versus a native int32 representation.
//   - Add, Mul and Div detect overflow in double-width arithmetic
//     BEFORE any truncation and report it as ErrOverflow; no silent
//     wraparound is possible.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/ratsolve/frac"
//
//	a := frac.New(2, 3)   // 2/3
//	b := frac.New(-1, 6)  // -1/6
//	sum, err := frac.Add(a, b)
//	if err != nil {
//	  // errors.Is(err, frac.ErrOverflow)
//	}
//	fmt.Println(sum) // 1/2
//
// The canonical zero is Frac{} (numerator 0, denominator 0, sign 0),
// not 0/1. A fraction with a zero denominator and a non-zero numerator
// is malformed and never produced by this package.
package frac

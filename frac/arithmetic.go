// SPDX-License-Identifier: MIT

package frac

import "math"

// Add, Mul and Div implement exact rational arithmetic with eager
// overflow detection.
//
// Every intermediate product is computed in 64-bit width and checked
// against the 32-bit magnitude bound BEFORE the result is narrowed;
// on violation the operation returns (Zero, ErrOverflow) immediately.
// Results are always reduced to lowest terms.
//
// Sign rules:
//   - Mul/Div: result sign is the XOR of the operand signs.
//   - Add with equal signs: magnitudes are summed in unsigned 64-bit
//     space (bound math.MaxUint32) and the shared sign is kept.
//   - Add with mixed signs: each signed numerator and each signed
//     cross product must fit int32 before the final signed sum is
//     taken; its sign is recorded separately.

// Reduce cancels f down to lowest terms via Euclid's algorithm on the
// two unsigned magnitudes. A zero numerator or denominator collapses
// to the canonical zero sentinel; a unit fraction (Num == Den) is
// shortcut to ±1 without a GCD pass.
// Complexity: O(log min(Num, Den)).
func Reduce(f Frac) Frac {
	// Zero first: the Den==0 half of the test also neutralizes any
	// malformed input rather than dividing by it below.
	if f.Num == 0 || f.Den == 0 {
		return Zero
	}
	if f.Num == f.Den {
		return Frac{Num: 1, Den: 1, Neg: f.Neg}
	}

	a, b := f.Num, f.Den
	for b != 0 {
		a, b = b, a%b
	}

	return Frac{Num: f.Num / a, Den: f.Den / a, Neg: f.Neg}
}

// Mul multiplies a by b. Numerators and denominators are multiplied
// pairwise in 64-bit space and bound-checked; the result is reduced.
// Returns (Zero, ErrOverflow) on any bound violation.
// Complexity: O(log min) for the reduction.
func Mul(a, b Frac) (Frac, error) {
	num := uint64(a.Num) * uint64(b.Num)
	if num > math.MaxUint32 {
		return Zero, ErrOverflow
	}

	den := uint64(a.Den) * uint64(b.Den)
	if den > math.MaxUint32 {
		return Zero, ErrOverflow
	}

	// Zero-division guard: a non-zero numerator over a computed zero
	// denominator cannot be represented; hand back the first operand
	// unaltered (should not occur with well-formed inputs).
	if num != 0 && den == 0 {
		return a, nil
	}

	return Reduce(Frac{
		Num: uint32(num),
		Den: uint32(den),
		Neg: a.Neg != b.Neg,
	}), nil
}

// Div divides a by b via reciprocal cross-multiplication: numerator
// a.Num×b.Den, denominator a.Den×b.Num, each bound-checked in 64-bit
// space. Dividing by the zero sentinel would produce a zero numerator
// and zero denominator, which reduces to the canonical zero; a
// non-zero numerator over a zero denominator returns the dividend
// unaltered instead (defensive, callers pre-check their divisors).
// Returns (Zero, ErrOverflow) on any bound violation.
// Complexity: O(log min) for the reduction.
func Div(a, b Frac) (Frac, error) {
	num := uint64(a.Num) * uint64(b.Den)
	if num > math.MaxUint32 {
		return Zero, ErrOverflow
	}

	den := uint64(a.Den) * uint64(b.Num)
	if den > math.MaxUint32 {
		return Zero, ErrOverflow
	}

	if num != 0 && den == 0 {
		return a, nil
	}

	return Reduce(Frac{
		Num: uint32(num),
		Den: uint32(den),
		Neg: a.Neg != b.Neg,
	}), nil
}

// Add sums a and b. The zero sentinel is the identity element and
// short-circuits. With equal signs the cross-multiplied numerator sum
// stays in unsigned 64-bit space; with mixed signs every signed
// intermediate is checked against int32 bounds before the final
// signed sum. The denominator is the overflow-checked product of the
// operand denominators. Returns (Zero, ErrOverflow) on any violation.
// Complexity: O(log min) for the reduction.
func Add(a, b Frac) (Frac, error) {
	if a.IsZero() {
		return b, nil
	}
	if b.IsZero() {
		return a, nil
	}

	var num uint32
	var neg bool
	if a.Neg == b.Neg {
		// Equal signs: magnitudes accumulate, sign is shared.
		sum := uint64(a.Num)*uint64(b.Den) + uint64(b.Num)*uint64(a.Den)
		if sum > math.MaxUint32 {
			return Zero, ErrOverflow
		}
		num, neg = uint32(sum), a.Neg
	} else {
		// Mixed signs: drop to signed arithmetic, losing one bit of
		// range, and check every step against the int32 window.
		n1 := int64(a.Num)
		if a.Neg {
			n1 = -n1
		}
		if n1 > math.MaxInt32 || n1 < math.MinInt32 {
			return Zero, ErrOverflow
		}
		n2 := int64(b.Num)
		if b.Neg {
			n2 = -n2
		}
		if n2 > math.MaxInt32 || n2 < math.MinInt32 {
			return Zero, ErrOverflow
		}

		cross1 := n1 * int64(b.Den)
		if cross1 > math.MaxInt32 || cross1 < math.MinInt32 {
			return Zero, ErrOverflow
		}
		cross2 := n2 * int64(a.Den)
		if cross2 > math.MaxInt32 || cross2 < math.MinInt32 {
			return Zero, ErrOverflow
		}

		sum := cross1 + cross2
		if sum > math.MaxInt32 || sum < math.MinInt32 {
			return Zero, ErrOverflow
		}
		neg = sum < 0
		if neg {
			sum = -sum
		}
		num = uint32(sum)
	}

	den := uint64(a.Den) * uint64(b.Den)
	if den > math.MaxUint32 {
		return Zero, ErrOverflow
	}

	if num != 0 && den == 0 {
		return a, nil
	}

	return Reduce(Frac{Num: num, Den: uint32(den), Neg: neg}), nil
}

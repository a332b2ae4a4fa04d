// SPDX-License-Identifier: MIT

// Package frac: the Frac value type and its constructors.
// Arithmetic lives in arithmetic.go, sentinel errors in errors.go.
package frac

import "fmt"

// Frac is a signed rational number in lowest terms.
//
// The magnitude is kept unsigned with the sign stored separately:
// this yields a full 32-bit numerator and denominator range instead of
// the 31 bits a native signed representation would leave. Neg=true
// means negative.
//
// The zero value (Num=0, Den=0, Neg=false) is the canonical
// representation of the numeric value zero — deliberately NOT 0/1, so
// that a single comparison distinguishes "empty" cells in matrix code.
// Any other value with Den==0 is malformed and never produced here.
//
// Frac is comparable; exact equality of two reduced fractions is ==.
type Frac struct {
	Num uint32 // numerator magnitude
	Den uint32 // denominator magnitude
	Neg bool   // sign bit: true = negative
}

// Zero is the canonical zero fraction.
var Zero = Frac{}

// One is the exact value 1 (numerator 1, denominator 1, positive).
var One = Frac{Num: 1, Den: 1}

// New builds a reduced Frac from a signed numerator and denominator.
// A zero denominator or zero numerator collapses to the canonical
// zero, matching the coefficient-ingestion contract of eqsolve.
// Magnitudes must fit uint32; New is a constructor for caller input,
// not an arithmetic primitive, so it does not report overflow.
// Complexity: O(log min(|num|,|den|)) for the reduction.
func New(num, den int64) Frac {
	if num == 0 || den == 0 {
		return Zero
	}

	return Reduce(Frac{
		Num: magnitude(num),
		Den: magnitude(den),
		Neg: (num < 0) != (den < 0),
	})
}

// FromInt builds a Frac holding the integer v (v/1).
// Complexity: O(1).
func FromInt(v int64) Frac {
	if v == 0 {
		return Zero
	}

	return Frac{Num: magnitude(v), Den: 1, Neg: v < 0}
}

// IsZero reports whether f is the canonical zero.
// Complexity: O(1).
func (f Frac) IsZero() bool {
	return f.Num == 0 && f.Den == 0
}

// IsOne reports whether f is exactly 1 (1/1, positive).
// Complexity: O(1).
func (f Frac) IsOne() bool {
	return f == One
}

// Negate returns f with the sign flipped. The zero sentinel carries
// no sign and is returned unchanged.
// Complexity: O(1).
func (f Frac) Negate() Frac {
	if f.IsZero() {
		return f
	}
	f.Neg = !f.Neg

	return f
}

// String implements fmt.Stringer: "0", "-3", "2/3", "-5/7".
func (f Frac) String() string {
	if f.IsZero() {
		return "0"
	}
	sign := ""
	if f.Neg {
		sign = "-"
	}
	if f.Den == 1 {
		return fmt.Sprintf("%s%d", sign, f.Num)
	}

	return fmt.Sprintf("%s%d/%d", sign, f.Num, f.Den)
}

// magnitude returns |v| as uint32; callers guarantee the range.
func magnitude(v int64) uint32 {
	if v < 0 {
		v = -v
	}

	return uint32(v)
}

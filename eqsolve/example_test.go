package eqsolve_test

import (
	"fmt"

	"github.com/katalvlaran/ratsolve/eqsolve"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSystem_Solve
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Solve the 2×2 system
//	  2x +  y = 5
//	   x -  y = 1
//	using exact rational arithmetic. The unique solution (2, 1) is
//	verified against the original equations before Solved is reported.
//
// Complexity: O(N²) row operations, each O(N) wide.
func ExampleSystem_Solve() {
	s := eqsolve.New()
	if err := s.Resize(2); err != nil {
		fmt.Println("resize:", err)

		return
	}
	s.SetCoefficient(1, 1, 2)
	s.SetCoefficient(1, 2, 1)
	s.SetCoefficient(1, 3, 5)
	s.SetCoefficient(2, 1, 1)
	s.SetCoefficient(2, 2, -1)
	s.SetCoefficient(2, 3, 1)

	status, _ := s.Solve()
	fmt.Println(status)
	fmt.Println(s.Solution())
	// Output:
	// Solved
	// [2 1]
}

// ExampleSystem_Solve_degenerate shows that degenerate systems are
// classified, not treated as errors: dependent rows yield
// InfiniteSolutions, contradictory rows NoSolution.
func ExampleSystem_Solve_degenerate() {
	s := eqsolve.New()
	_ = s.Resize(2)

	// x + y = 2 and 2x + 2y = 4 are the same line.
	for c, v := range []int32{1, 1, 2} {
		s.SetCoefficient(1, c+1, v)
	}
	for c, v := range []int32{2, 2, 4} {
		s.SetCoefficient(2, c+1, v)
	}
	status, _ := s.Solve()
	fmt.Println(status)

	// x + y = 2 and x + y = 5 are parallel lines.
	s.SetCoefficient(2, 1, 1)
	s.SetCoefficient(2, 2, 1)
	s.SetCoefficient(2, 3, 5)
	status, _ = s.Solve()
	fmt.Println(status)
	// Output:
	// InfiniteSolutions
	// NoSolution
}

// ExampleSystem_SetCoefficientFrac solves a system entered in ratio
// form; the exact answer is a pair of non-integer rationals.
func ExampleSystem_SetCoefficientFrac() {
	s := eqsolve.New()
	_ = s.Resize(2)

	// x/2 + y/3 = 2
	//  x  -  y  = 1
	s.SetCoefficientFrac(1, 1, 1, 2)
	s.SetCoefficientFrac(1, 2, 1, 3)
	s.SetCoefficient(1, 3, 2)
	s.SetCoefficient(2, 1, 1)
	s.SetCoefficient(2, 2, -1)
	s.SetCoefficient(2, 3, 1)

	status, _ := s.Solve()
	fmt.Println(status)
	fmt.Println(s.Solution())
	// Output:
	// Solved
	// [14/5 9/5]
}

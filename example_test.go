package tally_test

import (
	"fmt"

	"github.com/tallycalc/tally"
)

func ExampleEvaluate() {
	fmt.Println(tally.Evaluate("2+3×4"))
	fmt.Println(tally.Evaluate("9%"))
	fmt.Println(tally.Evaluate("2^3^2"))
	fmt.Println(tally.Evaluate("5÷0"))
	// Output:
	// 14
	// 0.09
	// 512
	// Error
}

func ExampleSession() {
	s := tally.NewSession()
	s.Digit('2')
	s.Operator('√')
	s.Digit('9')
	fmt.Println(s.Text(), "=", s.LiveResult())
	s.Equals()
	fmt.Println(s.Text())
	// Output:
	// 2×√9 = 6
	// 6
}

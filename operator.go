package tally

import "math"

// opDesc describes one operator. Unary descriptors receive their single
// operand as the right argument of apply; the normalizer rewrites unary minus
// into a subtraction from zero, so minus needs no unary descriptor.
type opDesc struct {
	// prec is the precedence value. Higher is more binding.
	prec int
	// right indicates right-associativity.
	right bool
	// unary indicates a one-operand operator.
	unary bool
	// apply computes the operator. Failure is signaled by a non-finite
	// result, never by a panic.
	apply func(l, r float64) float64
}

var (
	mulOp = &opDesc{prec: 3, apply: func(l, r float64) float64 { return l * r }}
	// Division by zero yields a non-finite quotient, which the evaluator
	// reports as an error rather than a signed infinity.
	divOp = &opDesc{prec: 3, apply: func(l, r float64) float64 { return l / r }}
)

// opTable is fixed at startup and never mutated.
var opTable = map[string]*opDesc{
	"^": {prec: 4, right: true, apply: math.Pow},
	"√": {prec: 5, right: true, unary: true, apply: func(_, r float64) float64 { return math.Sqrt(r) }},
	"%": {prec: 5, unary: true, apply: func(_, r float64) float64 { return r / 100 }},
	"×": mulOp,
	"*": mulOp,
	"÷": divOp,
	"/": divOp,
	"+": {prec: 2, apply: func(l, r float64) float64 { return l + r }},
	"-": {prec: 2, apply: func(l, r float64) float64 { return l - r }},
}

// lookupOp gets the descriptor for an operator token string. If there is no
// such operator, then the result is nil.
func lookupOp(text string) *opDesc {
	return opTable[text]
}

package tally

import (
	"math"
	"strconv"
	"strings"
)

// evalPostfix reduces a postfix token sequence over an operand stack. Binary
// operators pop their right operand first, then their left. Any application
// whose result is not finite fails, so division by zero and the square root
// of a negative number report errors instead of producing Inf or NaN.
func evalPostfix(toks []token) (float64, error) {
	var stack []float64
	for _, t := range toks {
		switch t.kind {
		case tokenNum:
			v, err := strconv.ParseFloat(t.text, 64)
			if err != nil {
				return 0, &LexError{Text: t.text, Kind: "number", Col: t.pos}
			}
			stack = append(stack, v)
		case tokenOp:
			d := lookupOp(t.text)
			if d == nil {
				return 0, &LexError{Text: t.text, Kind: "operator", Col: t.pos}
			}
			need := 2
			if d.unary {
				need = 1
			}
			if len(stack) < need {
				return 0, &OperandError{Col: t.pos, Op: t.text, N: len(stack)}
			}
			r := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			var l float64
			if !d.unary {
				l = stack[len(stack)-1]
				stack = stack[:len(stack)-1]
			}
			v := d.apply(l, r)
			if math.IsInf(v, 0) || math.IsNaN(v) {
				return 0, &DomainError{Op: t.text, X: r}
			}
			stack = append(stack, v)
		default:
			return 0, &LexError{Text: t.text, Col: t.pos}
		}
	}
	if len(stack) != 1 {
		return 0, &OperandError{N: len(stack)}
	}
	return stack[0], nil
}

// EvaluateErr runs the full pipeline on expr and returns the numeric result,
// or the first error any stage reported. Input errors implement InputError
// and carry rune positions.
func EvaluateErr(expr string) (float64, error) {
	rpn, err := toPostfix(normalizeUnary(scan(expr)))
	if err != nil {
		return 0, err
	}
	return evalPostfix(rpn)
}

// Evaluate evaluates expr and renders the result for display. The result is
// the empty string if expr is empty or all whitespace, the literal "Error" if
// any pipeline stage fails, and the formatted number otherwise. Evaluate
// never panics, whatever the input.
func Evaluate(expr string) string {
	if strings.TrimSpace(expr) == "" {
		return ""
	}
	v, err := EvaluateErr(expr)
	if err != nil {
		return "Error"
	}
	return Format(v)
}

package tally

import (
	"strconv"
)

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused it.
	Pos() int
}

// LexError indicates a token that is not part of the expression language. It
// implements InputError.
type LexError struct {
	// Text is the offending token.
	Text string
	// Kind is the type of token expected, e.g. "number", or the empty string
	// if the token matched no kind at all.
	Kind string
	// Col is the rune position of the token.
	Col int
}

func (err *LexError) Error() string {
	if err.Kind == "" {
		return errpos(err.Col, "invalid token "+strconv.Quote(err.Text))
	}
	return errpos(err.Col, "invalid "+err.Kind+" token "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}

// ParenError indicates unbalanced or mismatched parentheses. It implements
// InputError.
type ParenError struct {
	// Col is the rune position of the paren.
	Col int
	// Left is "(" for an unclosed open paren, empty otherwise.
	Left string
	// Right is ")" for a close paren with no open paren, empty otherwise.
	Right string
}

func (err *ParenError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close paren with no open paren")
	}
	return errpos(err.Col, "open paren with no close paren")
}

func (err *ParenError) Pos() int {
	return err.Col
}

// OperandError indicates an operator applied with too few operands, or an
// expression that does not reduce to a single value.
type OperandError struct {
	// Col is the rune position of the operator, or 0 if the error is a
	// leftover stack after evaluation.
	Col int
	// Op is the operator that was starved, or the empty string.
	Op string
	// N is the number of values that were on the operand stack.
	N int
}

func (err *OperandError) Error() string {
	if err.Op != "" {
		return errpos(err.Col, "operator "+err.Op+" with "+strconv.Itoa(err.N)+" operands")
	}
	return "expression reduces to " + strconv.Itoa(err.N) + " values"
}

func (err *OperandError) Pos() int {
	return err.Col
}

// DomainError indicates an operator application whose result is not finite:
// division by zero, the square root of a negative number, or overflow.
type DomainError struct {
	// Op is the operator that was applied.
	Op string
	// X is the right (or only) operand it was applied to.
	X float64
}

func (err *DomainError) Error() string {
	return "result of " + err.Op + " on " + strconv.FormatFloat(err.X, 'g', -1, 64) + " is not finite"
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*ParenError)(nil)
	_ InputError = (*OperandError)(nil)
)

// Package tally implements an incremental keypad calculator engine.
//
// The pipeline tokenizes a live, possibly incomplete expression, makes unary
// minus explicit, converts the infix form to postfix with a shunting-yard
// pass, and reduces the postfix form over an operand stack. Evaluate ties the
// stages together and renders the result for display, degrading to the
// literal "Error" on any lexical, structural, or arithmetic failure.
//
// Session owns an expression being edited one keystroke at a time. It applies
// discrete edit actions (digits, operators, parentheses, sign toggle),
// inserting implicit multiplication and rejecting edits that could not parse,
// and keeps a live result preview whenever the text plausibly evaluates.
package tally

package tally

import (
	"strings"
	"unicode/utf8"
)

// sessionState distinguishes ordinary editing from the moment immediately
// after an equals, when the next entry either chains onto the result or
// starts over.
type sessionState int

const (
	stateFresh sessionState = iota
	stateJustEvaluated
)

// Session owns an expression being edited one keystroke at a time, along
// with a live preview of its value. Each action is a total transformation of
// the session; actions that would make the text unparsable are rejected
// instead of applied. A Session is not safe for concurrent use.
type Session struct {
	text  string
	live  string
	state sessionState
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{}
}

// Text returns the expression as typed, or the result of the last equals.
func (s *Session) Text() string {
	return s.text
}

// LiveResult returns the current value preview: a formatted number, the
// literal "Error", or the empty string while the expression has no opinion.
func (s *Session) LiveResult() string {
	return s.live
}

// resume inspects and clears the just-evaluated state, exactly once per
// action. Entries that chain onto the result keep the text; any other entry
// starts a fresh expression.
func (s *Session) resume(chains bool) {
	if s.state != stateJustEvaluated {
		return
	}
	s.state = stateFresh
	if !chains {
		s.text = ""
		s.live = ""
	}
}

// refresh recomputes the live result when the trailing rune suggests a
// complete expression, and clears it otherwise. An expression that looks
// complete but fails still previews as "Error" without blocking edits.
func (s *Session) refresh() {
	if endsOperand(s.text) {
		s.live = Evaluate(s.text)
	} else {
		s.live = ""
	}
}

// Digit enters a digit or a decimal point. A decimal point is rejected if the
// trailing number already contains one, and becomes "0." when typed at a
// non-numeric boundary.
func (s *Session) Digit(r rune) {
	if (r < '0' || r > '9') && r != '.' {
		return
	}
	s.resume(false)
	if r == '.' {
		switch seg := trailingNumber(s.text); {
		case strings.Contains(seg, "."):
			return
		case seg == "":
			s.text += "0."
		default:
			s.text += "."
		}
	} else {
		s.text += string(r)
	}
	s.refresh()
}

// Operator enters an operator key: + - × ÷ ^ √ %. The ASCII spellings * and /
// are accepted for × and ÷.
func (s *Session) Operator(r rune) {
	switch r {
	case '*':
		s.binary('×')
	case '/':
		s.binary('÷')
	case '+', '-', '×', '÷', '^':
		s.binary(r)
	case '√':
		s.root()
	case '%':
		s.percent()
	}
}

// binary appends a binary operator. An expression cannot start with one, and
// a trailing binary operator is replaced rather than doubled.
func (s *Session) binary(r rune) {
	s.resume(true)
	if s.text == "" {
		return
	}
	if head, last := splitLast(s.text); isBinaryOp(last) {
		s.text = head + string(r)
	} else {
		s.text += string(r)
	}
	s.refresh()
}

// root appends √, inserting an implicit × after a completed operand so that
// "2" followed by root reads 2×√. Root may open an expression.
func (s *Session) root() {
	s.resume(false)
	if endsOperand(s.text) {
		s.text += "×"
	}
	s.text += "√"
	s.refresh()
}

// percent appends %, which postfixes a completed value: the trailing rune
// must be a digit or a close paren.
func (s *Session) percent() {
	s.resume(true)
	_, last := splitLast(s.text)
	if last != ")" && !isDigit(last) {
		return
	}
	s.text += "%"
	s.refresh()
}

// OpenParen appends an open paren, inserting an implicit × after a completed
// operand.
func (s *Session) OpenParen() {
	s.resume(false)
	if endsOperand(s.text) {
		s.text += "×"
	}
	s.text += "("
	s.refresh()
}

// CloseParen appends a close paren if one is owed and the trailing rune
// completes an operand; otherwise the action is a no-op.
func (s *Session) CloseParen() {
	s.resume(false)
	if strings.Count(s.text, "(") <= strings.Count(s.text, ")") {
		return
	}
	if !endsOperand(s.text) {
		return
	}
	s.text += ")"
	s.refresh()
}

// Equals evaluates the expression. On success the text becomes the formatted
// result and the live preview clears; on failure the text is left alone and
// the preview reads "Error". Either way the next entry is treated as chaining
// or starting over. Equals on an empty session does nothing.
func (s *Session) Equals() {
	if s.text == "" {
		return
	}
	switch r := Evaluate(s.text); r {
	case "", "Error":
		s.live = "Error"
	default:
		s.text = r
		s.live = ""
	}
	s.state = stateJustEvaluated
}

// Clear resets the session to empty.
func (s *Session) Clear() {
	s.text = ""
	s.live = ""
	s.state = stateFresh
}

// Backspace removes the last rune of the text. No-op when empty.
func (s *Session) Backspace() {
	s.state = stateFresh
	if s.text == "" {
		return
	}
	_, sz := utf8.DecodeLastRuneInString(s.text)
	s.text = s.text[:len(s.text)-sz]
	s.refresh()
}

// ToggleSign negates the trailing number by wrapping it in a parenthesized
// group, "1+2" becoming "1+(-2)", and unwraps the group again on a second
// toggle. A bare leading minus, as on a negative equals result, is removed
// in place. With no trailing number the action is a no-op.
func (s *Session) ToggleSign() {
	s.state = stateFresh
	if strings.HasSuffix(s.text, ")") {
		head := s.text[:len(s.text)-1]
		num := trailingNumber(head)
		if num != "" && strings.HasSuffix(head[:len(head)-len(num)], "(-") {
			cut := len(head) - len(num) - len("(-")
			s.text = s.text[:cut] + num
			s.refresh()
		}
		return
	}
	num := trailingNumber(s.text)
	if num == "" {
		return
	}
	head := s.text[:len(s.text)-len(num)]
	if strings.HasSuffix(head, "-") && (len(head) == 1 || strings.HasSuffix(head[:len(head)-1], "(")) {
		s.text = head[:len(head)-1] + num
	} else {
		s.text = head + "(-" + num + ")"
	}
	s.refresh()
}

// trailingNumber returns the maximal run of digits and decimal points ending
// the text. Digits and points are single bytes, so byte-wise scanning is
// safe even though the text holds multi-byte operators.
func trailingNumber(text string) string {
	i := len(text)
	for i > 0 {
		c := text[i-1]
		if (c < '0' || c > '9') && c != '.' {
			break
		}
		i--
	}
	return text[i:]
}

// endsOperand reports whether the trailing rune of text completes an operand:
// a digit, a close paren, or a percent. The same test gates implicit
// multiplication and live recomputation.
func endsOperand(text string) bool {
	r, _ := utf8.DecodeLastRuneInString(text)
	return r == ')' || r == '%' || '0' <= r && r <= '9'
}

// splitLast splits text around its final rune.
func splitLast(text string) (head, last string) {
	_, sz := utf8.DecodeLastRuneInString(text)
	return text[:len(text)-sz], text[len(text)-sz:]
}

func isBinaryOp(s string) bool {
	switch s {
	case "+", "-", "×", "÷", "^":
		return true
	}
	return false
}

func isDigit(s string) bool {
	return len(s) == 1 && '0' <= s[0] && s[0] <= '9'
}

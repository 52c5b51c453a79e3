//go:build go1.18
// +build go1.18

package tally_test

import (
	"testing"

	"github.com/tallycalc/tally"
)

// Every key sequence leaves the session in a state that still accepts keys
// and never panics. < is backspace, ! is sign toggle, r is root.
func FuzzSession(f *testing.F) {
	f.Add("52+=")
	f.Add("2r9=")
	f.Add("1+2!<<=")
	f.Add("((3))%=")
	f.Fuzz(func(t *testing.T, keys string) {
		s := tally.NewSession()
		for _, r := range keys {
			switch {
			case r >= '0' && r <= '9', r == '.':
				s.Digit(r)
			case r == '(':
				s.OpenParen()
			case r == ')':
				s.CloseParen()
			case r == '=':
				s.Equals()
			case r == '<':
				s.Backspace()
			case r == '!':
				s.ToggleSign()
			case r == 'r':
				s.Operator('√')
			default:
				s.Operator(r)
			}
		}
		if live := s.LiveResult(); live != "" && live != "Error" {
			if got := tally.Evaluate(s.Text()); got != live {
				t.Errorf("live result %q does not match evaluation %q of %q", live, got, s.Text())
			}
		}
	})
}

package tally

import (
	"testing"
)

func TestScan(t *testing.T) {
	cases := []struct {
		src    string
		tokens []token
	}{
		// spaces
		{"", nil},
		{" \t \r\n ", nil},
		// numbers
		{"0", []token{{"0", tokenNum, 1}}},
		{"9876543210", []token{{"9876543210", tokenNum, 1}}},
		{"1 0", []token{{"1", tokenNum, 1}, {"0", tokenNum, 3}}},
		{"1.5", []token{{"1.5", tokenNum, 1}}},
		{".5", []token{{".5", tokenNum, 1}}},
		{"1.", []token{{"1.", tokenNum, 1}}},
		// a malformed literal is still one maximal run; evaluation rejects it
		{"1.2.3", []token{{"1.2.3", tokenNum, 1}}},
		{".", []token{{".", tokenNum, 1}}},
		// operators
		{"1+0", []token{{"1", tokenNum, 1}, {"+", tokenOp, 2}, {"0", tokenNum, 3}}},
		{"2×3", []token{{"2", tokenNum, 1}, {"×", tokenOp, 2}, {"3", tokenNum, 3}}},
		{"2*3", []token{{"2", tokenNum, 1}, {"*", tokenOp, 2}, {"3", tokenNum, 3}}},
		{"8÷2", []token{{"8", tokenNum, 1}, {"÷", tokenOp, 2}, {"2", tokenNum, 3}}},
		{"9%", []token{{"9", tokenNum, 1}, {"%", tokenOp, 2}}},
		{"√9", []token{{"√", tokenOp, 1}, {"9", tokenNum, 2}}},
		{"2×√9", []token{{"2", tokenNum, 1}, {"×", tokenOp, 2}, {"√", tokenOp, 3}, {"9", tokenNum, 4}}},
		{"-1", []token{{"-", tokenOp, 1}, {"1", tokenNum, 2}}},
		{"2^10", []token{{"2", tokenNum, 1}, {"^", tokenOp, 2}, {"10", tokenNum, 3}}},
		// parens
		{"(1)", []token{{"(", tokenOpen, 1}, {"1", tokenNum, 2}, {")", tokenClose, 3}}},
		{"()", []token{{"(", tokenOpen, 1}, {")", tokenClose, 2}}},
		// erroneous symbols
		{"$", []token{{"$", tokenBad, 1}}},
		{"2a", []token{{"2", tokenNum, 1}, {"a", tokenBad, 2}}},
		{"a2", []token{{"a", tokenBad, 1}, {"2", tokenNum, 2}}},
		{"1 $ 2", []token{{"1", tokenNum, 1}, {"$", tokenBad, 3}, {"2", tokenNum, 5}}},
	}

	for _, c := range cases {
		got := scan(c.src)
		if len(got) != len(c.tokens) {
			t.Errorf("scanning %q: want %v, got %v", c.src, c.tokens, got)
			continue
		}
		for i, want := range c.tokens {
			if got[i] != want {
				t.Errorf("scanning %q: token %d: want %v, got %v", c.src, i, want, got[i])
			}
		}
	}
}

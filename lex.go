package tally

import (
	"strconv"
	"strings"
	"unicode"
)

type token struct {
	text string
	kind tokenKind
	pos  int
}

func (t token) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenNum is a run of digits and decimal points.
	tokenNum
	// tokenOp is an operator.
	tokenOp
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
	// tokenBad is a rune outside the recognized character set. It always
	// fails conversion, so a lexically invalid input can never evaluate.
	tokenBad
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenNum:
		return "Num"
	case tokenOp:
		return "Op"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	case tokenBad:
		return "Bad"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are considered to be operators. The
// ASCII spellings * and / are aliases for × and ÷.
const Operators = "+-*/^%×÷√"

// scan splits src into tokens in a single left-to-right pass. Whitespace
// separates tokens and is otherwise ignored. A maximal run of digits and
// decimal points forms one number token; whether the run is a valid literal
// is decided during evaluation, not here. Positions are 1-based rune counts.
func scan(src string) []token {
	var toks []token
	var num strings.Builder
	pos, numpos := 0, 0
	flush := func() {
		if num.Len() > 0 {
			toks = append(toks, token{text: num.String(), kind: tokenNum, pos: numpos})
			num.Reset()
		}
	}
	for _, r := range src {
		pos++
		switch {
		case '0' <= r && r <= '9', r == '.':
			if num.Len() == 0 {
				numpos = pos
			}
			num.WriteRune(r)
		case unicode.IsSpace(r):
			flush()
		case strings.ContainsRune(Operators, r):
			flush()
			toks = append(toks, token{text: string(r), kind: tokenOp, pos: pos})
		case r == '(':
			flush()
			toks = append(toks, token{text: "(", kind: tokenOpen, pos: pos})
		case r == ')':
			flush()
			toks = append(toks, token{text: ")", kind: tokenClose, pos: pos})
		default:
			flush()
			toks = append(toks, token{text: string(r), kind: tokenBad, pos: pos})
		}
	}
	flush()
	return toks
}

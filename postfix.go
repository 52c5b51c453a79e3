package tally

// normalizeUnary makes unary minus explicit. A - token at the start of the
// input, after an open paren, or after another operator is rewritten as the
// pair "0 -", turning negation into a subtraction from zero. No other token
// is touched, and no lookback beyond the previous token is needed.
func normalizeUnary(toks []token) []token {
	out := make([]token, 0, len(toks)+2)
	for i, t := range toks {
		if t.kind == tokenOp && t.text == "-" {
			if i == 0 || toks[i-1].kind == tokenOpen || toks[i-1].kind == tokenOp {
				out = append(out, token{text: "0", kind: tokenNum, pos: t.pos})
			}
		}
		out = append(out, t)
	}
	return out
}

// toPostfix converts an infix token sequence to postfix order using the
// shunting-yard algorithm. Postfix-unary % runs through the same precedence
// popping loop as the binary operators; the operator table drives all
// tie-breaking.
func toPostfix(toks []token) ([]token, error) {
	out := make([]token, 0, len(toks))
	var ops []token
	for _, t := range toks {
		switch t.kind {
		case tokenNum:
			out = append(out, t)
		case tokenOp:
			d := lookupOp(t.text)
			if d == nil {
				return nil, &LexError{Text: t.text, Kind: "operator", Col: t.pos}
			}
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.kind != tokenOp {
					break
				}
				td := lookupOp(top.text)
				if d.right && d.prec >= td.prec || !d.right && d.prec > td.prec {
					break
				}
				out = append(out, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, t)
		case tokenOpen:
			ops = append(ops, t)
		case tokenClose:
			for {
				if len(ops) == 0 {
					return nil, &ParenError{Col: t.pos, Right: ")"}
				}
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.kind == tokenOpen {
					break
				}
				out = append(out, top)
			}
		default:
			return nil, &LexError{Text: t.text, Col: t.pos}
		}
	}
	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.kind == tokenOpen {
			return nil, &ParenError{Col: top.pos, Left: "("}
		}
		out = append(out, top)
	}
	return out, nil
}

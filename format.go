package tally

import (
	"math"
	"strconv"
	"strings"
)

// formatDigits is the fractional precision results are rounded to before
// display. Ten digits absorb float64 representation noise, so 0.1+0.2 shows
// as 0.3.
const formatDigits = 10

// Format renders v for display: rounded to formatDigits fractional digits
// with trailing zeros removed, and the decimal point removed if nothing
// follows it. A non-finite v renders as the literal "Error".
func Format(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return "Error"
	}
	s := strconv.FormatFloat(v, 'f', formatDigits, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

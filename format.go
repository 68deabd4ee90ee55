package calculator

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// FormatFloat formats x in the canonical form used to splice numbers into
// symbolic expressions: the shortest scientific notation that parses back to
// x, with an unpadded exponent, e.g. 1e0, -2.5e-1, 6.02214076e23. The
// non-finite values are inf, -inf and NaN.
func FormatFloat(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(x, 'e', -1, 64)
	k := strings.IndexByte(s, 'e')
	mant, exp := s[:k+1], s[k+1:]
	sign := ""
	if exp[0] == '-' {
		sign = "-"
	}
	exp = strings.TrimLeft(exp[1:], "0")
	if exp == "" {
		exp = "0"
	}
	return mant + sign + exp
}

// operand returns the text of x for use as an operand of an operator,
// parenthesizing symbolic text unless it is already a single term.
func operand(x Scalar) string {
	if !x.sym || grouped(x.text) {
		return x.String()
	}
	return "(" + x.text + ")"
}

// grouped returns whether text is a name, a number, a function call, or a
// single parenthesized group.
func grouped(text string) bool {
	i := strings.IndexFunc(text, func(r rune) bool {
		return r != '_' && r != '.' && !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if i < 0 {
		return text != ""
	}
	if text[i] != '(' {
		return false
	}
	depth := 0
	for j := i; j < len(text); j++ {
		switch text[j] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return j == len(text)-1
			}
		}
	}
	return false
}

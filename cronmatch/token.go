package cronmatch

import (
	"math"
	"strconv"
	"strings"
)

// names maps three-letter month and weekday abbreviations to their
// numeric values. It is never modified after initialization.
var names = map[string]int{
	"jan": 1,
	"feb": 2,
	"mar": 3,
	"apr": 4,
	"may": 5,
	"jun": 6,
	"jul": 7,
	"aug": 8,
	"sep": 9,
	"oct": 10,
	"nov": 11,
	"dec": 12,

	"sun": 0,
	"mon": 1,
	"tue": 2,
	"wed": 3,
	"thu": 4,
	"fri": 5,
	"sat": 6,
}

// nameLength is the number of leading characters used to look up a name.
const nameLength = 3

// ExprToNumeric resolves a single field token to its numeric value.
//
// Numeric tokens are returned unchanged, with no range validation, so that
// the same resolver serves every field. Otherwise the first three letters of
// the token are looked up, case-insensitively, among the English month
// (jan-dec) and weekday (sun-sat) abbreviations. Long forms such as
// "January" or "monday" resolve as well, as does any text starting with a
// known abbreviation.
//
// The boolean result reports whether the token was resolved; an unresolved
// token is not an error by itself.
func ExprToNumeric(token string) (float64, bool) {
	if value, ok := parseNumeric(token); ok {
		return value, true
	}
	if len(token) < nameLength {
		return 0, false
	}
	value, ok := names[strings.ToLower(token[:nameLength])]
	if !ok {
		return 0, false
	}
	return float64(value), true
}

// parseNumeric parses a decimal numeral, allowing surrounding whitespace,
// a sign, a fractional part and an exponent.
func parseNumeric(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for _, c := range s {
		if !isNumeralRune(c) {
			return 0, false
		}
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, false
	}
	return value, true
}

func isNumeralRune(c rune) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c == '+', c == '-', c == '.', c == 'e', c == 'E':
		return true
	}
	return false
}

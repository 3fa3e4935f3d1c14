package cronmatch

import (
	"math"
	"strings"
)

const (
	wildcard       = "*"
	listSeparator  = ","
	stepSeparator  = "/"
	rangeSeparator = "-"
)

// Bounds used for a stepped wildcard, e.g. */5. The range covers every
// field domain; values outside a field's domain never occur as candidates.
const (
	wildcardMin = 0
	wildcardMax = 60
)

// term is a single element of a field component list: an inclusive range
// filtered by a step modulus, or a bare wildcard matching anything.
type term struct {
	any     bool
	from    float64
	to      float64
	modulus int
}

func (t term) matches(num int) bool {
	if t.any {
		return true
	}
	n := float64(num)
	return n >= t.from && n <= t.to && num%t.modulus == 0
}

// MatchTimeComponent reports whether num satisfies a single cron field
// component.
//
// A component is either a wildcard "*" or a comma-separated list of terms,
// where each term is a value, a from-to range or a wildcard, optionally
// followed by a /modulus step. Values may be numbers or month and weekday
// names, see ExprToNumeric. A stepped term matches multiples of the modulus
// within its range: "0-thu/2" matches 0, 2 and 4.
//
// Every list element is parsed before matching, so a malformed element
// returns an error wrapping ErrInvalidExpression even when another element
// matches.
func MatchTimeComponent(expr string, num int) (bool, error) {
	terms, err := parseComponent(expr)
	if err != nil {
		return false, err
	}
	for _, t := range terms {
		if t.matches(num) {
			return true, nil
		}
	}
	return false, nil
}

// parseComponent parses a field component into its list of terms.
func parseComponent(expr string) ([]term, error) {
	if expr == wildcard {
		return []term{{any: true}}, nil
	}

	if strings.Contains(expr, listSeparator) {
		elements := strings.Split(expr, listSeparator)
		terms := make([]term, 0, len(elements))
		for _, element := range elements {
			elementTerms, err := parseComponent(element)
			if err != nil {
				return nil, err
			}
			terms = append(terms, elementTerms...)
		}
		return terms, nil
	}

	t, err := parseTerm(expr)
	if err != nil {
		return nil, err
	}
	return []term{t}, nil
}

// parseTerm parses a single list element with no commas.
func parseTerm(expr string) (term, error) {
	body, modulus := expr, 1
	if strings.Contains(expr, stepSeparator) {
		parts := strings.Split(expr, stepSeparator)
		if len(parts) != 2 {
			return term{}, invalidExpressionError(
				"expecting match/modulus, %q given", expr)
		}
		var err error
		if modulus, err = parseModulus(parts[1], expr); err != nil {
			return term{}, err
		}
		body = parts[0]
	}

	var from, to float64
	switch {
	case body == wildcard:
		from, to = wildcardMin, wildcardMax
	case strings.Contains(body, rangeSeparator):
		parts := strings.Split(body, rangeSeparator)
		if len(parts) != 2 {
			return term{}, invalidExpressionError(
				"expecting from-to structure, %q given", body)
		}
		var fromOk, toOk bool
		from, fromOk = ExprToNumeric(parts[0])
		to, toOk = ExprToNumeric(parts[1])
		if !fromOk || !toOk {
			return term{}, invalidExpressionError(
				"expecting numeric or valid string, %q given", body)
		}
	default:
		value, ok := ExprToNumeric(body)
		if !ok {
			return term{}, invalidExpressionError(
				"expecting numeric or valid string, %q given", body)
		}
		from, to = value, value
	}

	return term{from: from, to: to, modulus: modulus}, nil
}

// parseModulus parses the step part of a term. Fractional values are
// truncated toward zero.
func parseModulus(s, expr string) (int, error) {
	value, ok := parseNumeric(s)
	if !ok {
		return 0, invalidExpressionError(
			"expecting numeric modulus, %q given", expr)
	}
	value = math.Trunc(value)
	if value == 0 || math.Abs(value) > math.MaxInt32 {
		return 0, invalidExpressionError(
			"modulus out of range, %q given", expr)
	}
	return int(value), nil
}

package cronmatch

import (
	"fmt"
	"strings"
	"time"
)

// <minute> <hour> <day-of-month> <month> <day-of-week>
const (
	minuteIndex = iota
	hourIndex
	dayOfMonthIndex
	monthIndex
	dayOfWeekIndex

	fieldCount
)

var fieldNames = [fieldCount]string{
	minuteIndex:     "minute",
	hourIndex:       "hour",
	dayOfMonthIndex: "day-of-month",
	monthIndex:      "month",
	dayOfWeekIndex:  "day-of-week",
}

// defaultMatcher backs the package level functions.
var defaultMatcher = NewMatcher()

// MatchTime reports whether t satisfies the five-field cron expression expr.
// The fields are matched against the calendar breakdown of t in its own
// location.
//
// Fields are evaluated left to right and evaluation stops at the first field
// that does not match, so a malformed field following a non-matching one is
// not reported. An expression without exactly five whitespace-separated
// fields always returns an error wrapping ErrInvalidExpression.
func MatchTime(t time.Time, expr string) (bool, error) {
	return defaultMatcher.MatchTime(t, expr)
}

// MatchCalendarPoint reports whether the calendar point satisfies the
// five-field cron expression expr. See MatchTime for the evaluation order.
func MatchCalendarPoint(point CalendarPoint, expr string) (bool, error) {
	return defaultMatcher.MatchCalendarPoint(point, expr)
}

// Validate checks the syntax of all five fields of expr, with no
// short-circuit evaluation. The returned error names the first
// invalid field and wraps ErrInvalidExpression.
func Validate(expr string) error {
	fields, err := splitExpression(expr)
	if err != nil {
		return err
	}
	for i, field := range fields {
		if _, err := parseComponent(field); err != nil {
			return fieldError(i, err)
		}
	}
	return nil
}

// splitExpression splits expr on runs of whitespace, requiring exactly
// five fields.
func splitExpression(expr string) ([]string, error) {
	fields := strings.Fields(expr)
	if len(fields) != fieldCount {
		return nil, invalidExpressionError(
			"expression should have exactly %d fields, %d given in %q",
			fieldCount, len(fields), expr)
	}
	return fields, nil
}

func fieldError(index int, err error) error {
	return fmt.Errorf("%s field: %w", fieldNames[index], err)
}

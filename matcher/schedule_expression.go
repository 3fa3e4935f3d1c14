//nolint:dupl
package matcher

// ScheduleExpression implements the Matcher interface with the type argument
// Schedule, matching schedules by the text of their cron expression.
type ScheduleExpression struct {
	Operator *StringOperator // uses a pointer to compare with standard operators
	Pattern  string
}

var _ Matcher[Schedule] = (*ScheduleExpression)(nil)

// NewScheduleExpression returns a new ScheduleExpression matcher given the
// string operator and pattern.
func NewScheduleExpression(operator *StringOperator, pattern string) Matcher[Schedule] {
	return &ScheduleExpression{
		Operator: operator,
		Pattern:  pattern,
	}
}

// ScheduleExpressionEquals returns a new ScheduleExpression, matching
// schedules whose expression is identical to the given string pattern.
func ScheduleExpressionEquals(pattern string) Matcher[Schedule] {
	return NewScheduleExpression(&StringEquals, pattern)
}

// ScheduleExpressionContains returns a new ScheduleExpression, matching
// schedules whose expression contains the given string pattern.
func ScheduleExpressionContains(pattern string) Matcher[Schedule] {
	return NewScheduleExpression(&StringContains, pattern)
}

// IsMatch evaluates ScheduleExpression matcher on the given schedule.
func (e *ScheduleExpression) IsMatch(schedule Schedule) bool {
	return (*e.Operator)(schedule.Expression, e.Pattern)
}

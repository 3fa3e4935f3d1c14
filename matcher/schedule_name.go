//nolint:dupl
package matcher

// ScheduleName implements the Matcher interface with the type argument
// Schedule, matching schedules by their name.
type ScheduleName struct {
	Operator *StringOperator // uses a pointer to compare with standard operators
	Pattern  string
}

var _ Matcher[Schedule] = (*ScheduleName)(nil)

// NewScheduleName returns a new ScheduleName matcher given the string
// operator and pattern.
func NewScheduleName(operator *StringOperator, pattern string) Matcher[Schedule] {
	return &ScheduleName{
		Operator: operator,
		Pattern:  pattern,
	}
}

// ScheduleNameEquals returns a new ScheduleName, matching schedules whose
// name is identical to the given string pattern.
func ScheduleNameEquals(pattern string) Matcher[Schedule] {
	return NewScheduleName(&StringEquals, pattern)
}

// ScheduleNameStartsWith returns a new ScheduleName, matching schedules
// whose name starts with the given string pattern.
func ScheduleNameStartsWith(pattern string) Matcher[Schedule] {
	return NewScheduleName(&StringStartsWith, pattern)
}

// ScheduleNameEndsWith returns a new ScheduleName, matching schedules whose
// name ends with the given string pattern.
func ScheduleNameEndsWith(pattern string) Matcher[Schedule] {
	return NewScheduleName(&StringEndsWith, pattern)
}

// ScheduleNameContains returns a new ScheduleName, matching schedules whose
// name contains the given string pattern.
func ScheduleNameContains(pattern string) Matcher[Schedule] {
	return NewScheduleName(&StringContains, pattern)
}

// IsMatch evaluates ScheduleName matcher on the given schedule.
func (n *ScheduleName) IsMatch(schedule Schedule) bool {
	return (*n.Operator)(schedule.Name, n.Pattern)
}

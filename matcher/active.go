package matcher

import (
	"time"

	"github.com/reugn/go-cronmatch/cronmatch"
)

// Active implements the Matcher interface with the type argument Schedule,
// matching schedules whose cron expression is satisfied at a point in time.
// Schedules with a malformed expression never match; the error is reported
// to the logger of the cronmatch.Matcher.
type Active struct {
	At      time.Time
	matcher *cronmatch.Matcher
}

var _ Matcher[Schedule] = (*Active)(nil)

// ActiveAt returns a new Active matcher for the time t.
func ActiveAt(t time.Time) Matcher[Schedule] {
	return ActiveAtWith(cronmatch.NewMatcher(), t)
}

// ActiveAtWith returns a new Active matcher for the time t, evaluated by
// the given cronmatch.Matcher.
func ActiveAtWith(m *cronmatch.Matcher, t time.Time) Matcher[Schedule] {
	return &Active{
		At:      t,
		matcher: m,
	}
}

// IsMatch evaluates Active matcher on the given schedule.
func (a *Active) IsMatch(schedule Schedule) bool {
	ok, err := a.matcher.MatchTime(a.At, schedule.Expression)
	return err == nil && ok
}

package cronmatch

import "time"

// CalendarPoint is the breakdown of a point in time into the values matched
// by the five fields of a cron expression.
type CalendarPoint struct {
	Minute  int // [0,59]
	Hour    int // [0,23]
	Day     int // [1,31]
	Month   int // [1,12]
	Weekday int // [0,6], 0 is Sunday
}

// NewCalendarPoint returns the CalendarPoint of t in t's location.
func NewCalendarPoint(t time.Time) CalendarPoint {
	return CalendarPoint{
		Minute:  t.Minute(),
		Hour:    t.Hour(),
		Day:     t.Day(),
		Month:   int(t.Month()),
		Weekday: int(t.Weekday()),
	}
}

// values returns the point values in expression field order.
func (p CalendarPoint) values() [fieldCount]int {
	return [fieldCount]int{p.Minute, p.Hour, p.Day, p.Month, p.Weekday}
}

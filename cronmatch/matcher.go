package cronmatch

import (
	"fmt"
	"time"

	"github.com/reugn/go-cronmatch/logger"
)

// TimeResolver converts free-form text into a point in time.
// Implementations are provided by the timeparse package.
type TimeResolver interface {
	// ResolveTime returns the time described by value.
	ResolveTime(value string) (time.Time, error)
}

// rfc3339Resolver is the TimeResolver used when none is configured.
type rfc3339Resolver struct{}

func (rfc3339Resolver) ResolveTime(value string) (time.Time, error) {
	return time.Parse(time.RFC3339, value)
}

// Matcher matches points in time against cron expressions.
// A Matcher holds no mutable state and is safe for concurrent use.
type Matcher struct {
	opts MatcherOptions
}

// MatcherOptions configures a Matcher.
type MatcherOptions struct {
	// Location is used to break down Unix timestamps and resolved time
	// strings into calendar points. Defaults to time.Local.
	Location *time.Location

	// TimeResolver converts the text passed to MatchString into a time.
	// When nil, only RFC 3339 timestamps are accepted.
	TimeResolver TimeResolver

	// Logger receives a trace record for every evaluated field and a debug
	// record for every rejected expression. Defaults to logger.NoOpLogger.
	Logger logger.Logger
}

// NewMatcher returns a new Matcher with the default configuration.
func NewMatcher() *Matcher {
	return NewMatcherWithOptions(MatcherOptions{})
}

// NewMatcherWithOptions returns a new Matcher configured as specified.
// Zero value options are replaced with their defaults.
func NewMatcherWithOptions(opts MatcherOptions) *Matcher {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.TimeResolver == nil {
		opts.TimeResolver = rfc3339Resolver{}
	}
	if opts.Logger == nil {
		opts.Logger = logger.NoOpLogger{}
	}
	return &Matcher{opts: opts}
}

// Location returns the location used to break down timestamps.
func (m *Matcher) Location() *time.Location {
	return m.opts.Location
}

// MatchTime reports whether t satisfies the cron expression expr,
// using the calendar breakdown of t in its own location.
func (m *Matcher) MatchTime(t time.Time, expr string) (bool, error) {
	return m.MatchCalendarPoint(NewCalendarPoint(t), expr)
}

// MatchUnix reports whether the Unix time sec satisfies the cron
// expression expr, in the Matcher's location.
func (m *Matcher) MatchUnix(sec int64, expr string) (bool, error) {
	return m.MatchTime(time.Unix(sec, 0).In(m.opts.Location), expr)
}

// MatchString resolves value into a point in time using the configured
// TimeResolver and reports whether it satisfies the cron expression expr,
// in the Matcher's location. A resolution failure is returned as is,
// wrapped with the offending value.
func (m *Matcher) MatchString(value, expr string) (bool, error) {
	t, err := m.opts.TimeResolver.ResolveTime(value)
	if err != nil {
		return false, fmt.Errorf("resolve time %q: %w", value, err)
	}
	return m.MatchTime(t.In(m.opts.Location), expr)
}

// MatchCalendarPoint reports whether the calendar point satisfies the
// cron expression expr. Fields are evaluated in order, stopping at the
// first field that does not match.
func (m *Matcher) MatchCalendarPoint(point CalendarPoint, expr string) (bool, error) {
	fields, err := splitExpression(expr)
	if err != nil {
		m.opts.Logger.Debug("Rejected expression", "expr", expr, "error", err)
		return false, err
	}

	values := point.values()
	for i, field := range fields {
		ok, err := MatchTimeComponent(field, values[i])
		if err != nil {
			err = fieldError(i, err)
			m.opts.Logger.Debug("Rejected expression", "expr", expr, "error", err)
			return false, err
		}
		m.opts.Logger.Trace("Matched field", "field", fieldNames[i],
			"component", field, "value", values[i], "match", ok)
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

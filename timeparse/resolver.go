// Package timeparse resolves free-form text into a point in time. Its
// Resolver is the cronmatch.TimeResolver used by the cronmatch command line
// tool.
package timeparse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jinzhu/now"
	"github.com/reugn/go-cronmatch/cronmatch"
)

// ErrUnresolvableTime is returned when a value cannot be resolved into
// a point in time.
var ErrUnresolvableTime = errors.New("unresolvable time")

// unixPrefix marks a Unix timestamp in seconds, e.g. "@1712286900".
const unixPrefix = "@"

// Resolver resolves text into a point in time, in a fixed location.
//
// The following forms are supported, in order of precedence:
//   - "now", "today", "tomorrow" and "yesterday", case-insensitive;
//     the last three denote midnight of the respective day
//   - a signed duration relative to now, e.g. "+90m" or "-1h30m"
//   - a Unix timestamp in seconds prefixed with "@"
//   - any layout known to github.com/jinzhu/now, plus RFC 3339 and the
//     configured extra layouts; missing parts are taken from the current time
type Resolver struct {
	location *time.Location
	config   *now.Config
	clock    func() time.Time
}

var _ cronmatch.TimeResolver = (*Resolver)(nil)

// ResolverOptions configures a Resolver.
type ResolverOptions struct {
	// Location of the resolved times. Defaults to time.Local.
	Location *time.Location

	// TimeFormats are layouts tried after the default ones.
	TimeFormats []string

	// Clock returns the current time. Defaults to time.Now.
	Clock func() time.Time
}

// NewResolver returns a new Resolver with the default configuration.
func NewResolver() *Resolver {
	return NewResolverWithOptions(ResolverOptions{})
}

// NewResolverWithOptions returns a new Resolver configured as specified.
func NewResolverWithOptions(opts ResolverOptions) *Resolver {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	formats := make([]string, 0, len(now.TimeFormats)+len(opts.TimeFormats)+1)
	formats = append(formats, now.TimeFormats...)
	formats = append(formats, time.RFC3339)
	formats = append(formats, opts.TimeFormats...)

	return &Resolver{
		location: opts.Location,
		config: &now.Config{
			WeekStartDay: time.Monday,
			TimeLocation: opts.Location,
			TimeFormats:  formats,
		},
		clock: opts.Clock,
	}
}

// ResolveTime returns the time described by value.
func (r *Resolver) ResolveTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	current := r.clock().In(r.location)

	switch strings.ToLower(value) {
	case "":
		return time.Time{}, fmt.Errorf("%w: empty value", ErrUnresolvableTime)
	case "now":
		return current, nil
	case "today":
		return r.config.With(current).BeginningOfDay(), nil
	case "tomorrow":
		return r.config.With(current.AddDate(0, 0, 1)).BeginningOfDay(), nil
	case "yesterday":
		return r.config.With(current.AddDate(0, 0, -1)).BeginningOfDay(), nil
	}

	if value[0] == '+' || value[0] == '-' {
		d, err := time.ParseDuration(value)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q: %v", ErrUnresolvableTime, value, err)
		}
		return current.Add(d), nil
	}

	if strings.HasPrefix(value, unixPrefix) {
		sec, err := strconv.ParseInt(strings.TrimPrefix(value, unixPrefix), 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q: %v", ErrUnresolvableTime, value, err)
		}
		return time.Unix(sec, 0).In(r.location), nil
	}

	t, err := r.config.With(current).Parse(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrUnresolvableTime, value, err)
	}
	return t, nil
}

// Package clock resolves timezone identifiers and answers "what time is it
// there". All calendar and daylight-saving logic stays in the time package.
package clock

import (
	"errors"
	"fmt"
	"strings"
	"time"

	// Embedded IANA database so lookups do not depend on the host zoneinfo.
	_ "time/tzdata"

	"github.com/araddon/dateparse"
)

// ErrInvalidTimezone is wrapped by every error caused by an unknown zone name.
var ErrInvalidTimezone = errors.New("invalid timezone")

// Provider returns the current moment localized to a timezone.
type Provider interface {
	Now(tz string) (time.Time, error)
}

// WallClock abstracts the source of "now" for deterministic tests.
type WallClock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

// Now returns the current time using the system clock.
func (RealClock) Now() time.Time {
	return time.Now()
}

// System is the production Provider.
type System struct {
	Clock WallClock
}

func (s System) Now(tz string) (time.Time, error) {
	loc, err := Location(tz)
	if err != nil {
		return time.Time{}, err
	}
	c := s.Clock
	if c == nil {
		c = RealClock{}
	}
	return c.Now().In(loc), nil
}

// Fixed always answers with the same instant, shown in the requested zone.
type Fixed struct {
	At time.Time
}

func (f Fixed) Now(tz string) (time.Time, error) {
	loc, err := Location(tz)
	if err != nil {
		return time.Time{}, err
	}
	return f.At.In(loc), nil
}

// Location loads tz from the zone database exactly as given; the time
// package decides which names exist.
func Location(tz string) (*time.Location, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidTimezone, tz, err)
	}
	return loc, nil
}

// ParseInstant reads a point in time in any layout dateparse recognizes.
// Values without an explicit zone or offset are taken as UTC.
func ParseInstant(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty instant")
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse instant %q: %w", s, err)
	}
	return t, nil
}

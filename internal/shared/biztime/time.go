// Package biztime provides utilities for business timezone calculations.
// All storage and transport use UTC; the business timezone is only used
// for date boundaries and display formatting.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "Asia/Riyadh"

	// DateLayout is the wire format for date-only fields (dateOfBirth,
	// idExpiryDate) exchanged with the console.
	DateLayout = "2006-01-02"
)

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init initializes the business timezone. Should be called once at startup.
// If tz is empty, defaults to Asia/Riyadh.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// Location returns the business timezone location, auto-initializing with
// the default timezone when Init was never called.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseDate parses a date-only string (YYYY-MM-DD) as business timezone
// midnight and returns the UTC equivalent.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q: %w", s, err)
	}
	return t.UTC(), nil
}

// FormatDate formats a UTC time as a date-only string in business timezone.
func FormatDate(t time.Time) string {
	return t.In(Location()).Format(DateLayout)
}

// StartOfDayUTC returns the start of day (00:00:00) in business timezone,
// converted to UTC.
func StartOfDayUTC(t time.Time) time.Time {
	bizTime := t.In(Location())
	startOfDay := time.Date(bizTime.Year(), bizTime.Month(), bizTime.Day(), 0, 0, 0, 0, Location())
	return startOfDay.UTC()
}

// YearsSince returns whole calendar years elapsed from t to now, adjusted
// for month and day. Used for age checks against a date of birth.
func YearsSince(t time.Time, now time.Time) int {
	years := now.Year() - t.Year()
	if now.Month() < t.Month() ||
		(now.Month() == t.Month() && now.Day() < t.Day()) {
		years--
	}
	return years
}

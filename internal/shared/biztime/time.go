// Package biztime provides business-timezone date boundary calculations.
// All storage and transport use UTC; the business timezone only decides where
// a calendar day starts and ends (attendance, daily stats).
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "UTC"
)

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init initializes the business timezone. Should be called once at startup.
// If tz is empty, defaults to UTC.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// Location returns the business timezone location, defaulting to UTC when
// Init was never called.
func Location() *time.Location {
	if bizLocation == nil {
		return time.UTC
	}
	return bizLocation
}

// DayBounds returns the UTC instants bounding the business-timezone calendar
// day containing t. The end bound is exclusive.
func DayBounds(t time.Time) (start, end time.Time) {
	local := t.In(Location())
	y, m, d := local.Date()
	start = time.Date(y, m, d, 0, 0, 0, 0, Location()).UTC()
	end = start.Add(24 * time.Hour)
	return start, end
}

// SameBusinessDay reports whether a and b fall on the same business-timezone
// calendar day.
func SameBusinessDay(a, b time.Time) bool {
	al := a.In(Location())
	bl := b.In(Location())
	ay, am, ad := al.Date()
	by, bm, bd := bl.Date()
	return ay == by && am == bm && ad == bd
}

// MustInit initializes the business timezone and panics on failure.
func MustInit(tz string) {
	if err := Init(tz); err != nil {
		panic(fmt.Sprintf("invalid business timezone %q: %v", tz, err))
	}
}

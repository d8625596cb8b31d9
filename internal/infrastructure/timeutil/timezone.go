package timeutil

import (
	"fmt"
	"sync"
	"time"
)

// locationCache memoizes time.LoadLocation lookups, which hit the zoneinfo
// database on every call otherwise.
var locationCache sync.Map

// Timezones of major hub airports, for convenience in tests and fixtures.
const (
	UTC = "UTC"

	// EasternUS covers JFK, EWR, BOS, ATL and MIA.
	EasternUS = "America/New_York"

	// PacificUS covers LAX, SFO and SEA.
	PacificUS = "America/Los_Angeles"

	// LondonUK covers LHR and LGW.
	LondonUK = "Europe/London"

	// TokyoJP covers NRT and HND.
	TokyoJP = "Asia/Tokyo"
)

// DateLayout is the wire format for calendar dates (e.g. departure dates).
const DateLayout = "2006-01-02"

// GetLocation returns the named timezone location, caching it for reuse.
func GetLocation(name string) (*time.Location, error) {
	if loc, ok := locationCache.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	locationCache.Store(name, loc)
	return loc, nil
}

// MustGetLocation is GetLocation for known-good names; it panics on error.
func MustGetLocation(name string) *time.Location {
	loc, err := GetLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// InTimezone converts t to the named timezone.
func InTimezone(t time.Time, timezone string) (time.Time, error) {
	loc, err := GetLocation(timezone)
	if err != nil {
		return t, err
	}
	return t.In(loc), nil
}

// ParseInTimezone parses value with the given layout in the named timezone.
func ParseInTimezone(layout, value, timezone string) (time.Time, error) {
	loc, err := GetLocation(timezone)
	if err != nil {
		return time.Time{}, err
	}
	return time.ParseInLocation(layout, value, loc)
}

// ParseDate parses a YYYY-MM-DD calendar date in UTC.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatTime renders t as HH:MM.
func FormatTime(t time.Time) string {
	return t.Format("15:04")
}

// ClearLocationCache empties the location cache. Test helper.
func ClearLocationCache() {
	locationCache.Range(func(key, _ any) bool {
		locationCache.Delete(key)
		return true
	})
}

// Package timeutil abstracts wall-clock access so time-sensitive logic, such
// as booking-window advisories, stays deterministic under test.
package timeutil

import (
	"time"
)

// Clock abstracts time.Now(). Production code uses RealClock; tests pin the
// clock with MockClock.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock reads the system time.
type RealClock struct{}

// NewRealClock creates a RealClock.
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock reports a controllable fixed time.
type MockClock struct {
	fixedTime time.Time
}

// NewMockClock creates a mock clock pinned to t.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{fixedTime: t}
}

// NewMockClockFromString creates a mock clock from an RFC3339 string.
// Panics on a malformed string; intended for tests only.
func NewMockClockFromString(value string) *MockClock {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic("invalid time string: " + err.Error())
	}
	return &MockClock{fixedTime: t}
}

// Now returns the pinned time.
func (m *MockClock) Now() time.Time {
	return m.fixedTime
}

// Set pins the mock clock to t.
func (m *MockClock) Set(t time.Time) {
	m.fixedTime = t
}

// Advance moves the mock clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.fixedTime = m.fixedTime.Add(d)
}

// AdvanceDays moves the mock clock forward by whole days.
func (m *MockClock) AdvanceDays(days int) {
	m.Advance(time.Duration(days) * 24 * time.Hour)
}

var (
	_ Clock = (*RealClock)(nil)
	_ Clock = (*MockClock)(nil)
)

package clock

import "time"

type Clock interface {
	Now() time.Time
}

type RealClock struct {
	loc *time.Location
}

// NewRealClock reads the wall clock in loc. A nil loc means time.Local.
func NewRealClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return &RealClock{loc: loc}
}

func (c *RealClock) Now() time.Time {
	return time.Now().In(c.loc)
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) AddDays(n int) {
	c.currentTime = c.currentTime.AddDate(0, 0, n)
}

// Today returns the calendar day of c as midnight UTC, so day arithmetic never crosses DST.
func Today(c Clock) time.Time {
	return DateOf(c.Now())
}

// DateOf drops the time of day of t, keeping the calendar day t has in its own location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

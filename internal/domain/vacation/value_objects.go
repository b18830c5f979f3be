package vacation

import (
	"strings"
	"time"
	"unicode/utf8"

	"vacation-desk/internal/pkg/clock"
)

const (
	DateLayout     = "2006-01-02"
	MaxNotesLength = 500
	hoursPerDay    = 24
)

// DateRange is an inclusive range of calendar days, normalised to midnight UTC.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.IsZero() || end.IsZero() {
		return DateRange{}, ErrInvalidDateRange
	}
	s, e := clock.DateOf(start), clock.DateOf(end)
	if e.Before(s) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{start: s, end: e}, nil
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }

// Days counts both ends: 2025-06-10..2025-06-20 is 11 days.
func (r DateRange) Days() int {
	return daysBetween(r.start, r.end) + 1
}

// Overlaps is inclusive on both ends, so ranges that share a boundary day conflict.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.start.After(other.end) && !r.end.Before(other.start)
}

func (r DateRange) String() string {
	return r.start.Format(DateLayout) + ".." + r.end.Format(DateLayout)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / hoursPerDay)
}

type Notes struct {
	value string
}

func NewNotes(value string) (Notes, error) {
	v := strings.TrimSpace(value)
	if utf8.RuneCountInString(v) > MaxNotesLength {
		return Notes{}, ErrNotesTooLong
	}
	return Notes{value: v}, nil
}

func (n Notes) String() string {
	return n.value
}

func (n Notes) IsEmpty() bool {
	return n.value == ""
}

// Policy holds the period limits and the annual allotment. There is no accrual,
// carry-over or pro-rating: every requester starts each cycle with AnnualAllotment days.
type Policy struct {
	MinDays         int
	MaxDays         int
	AnnualAllotment int
}

func DefaultPolicy() Policy {
	return Policy{
		MinDays:         5,
		MaxDays:         30,
		AnnualAllotment: 30,
	}
}

func NewPolicy(minDays, maxDays, allotment int) (Policy, error) {
	p := Policy{MinDays: minDays, MaxDays: maxDays, AnnualAllotment: allotment}
	if err := p.Validate(); err != nil {
		return Policy{}, err
	}
	return p, nil
}

func (p Policy) Validate() error {
	if p.MinDays < 1 || p.MinDays > p.MaxDays || p.AnnualAllotment < 0 {
		return ErrInvalidPolicy
	}
	return nil
}

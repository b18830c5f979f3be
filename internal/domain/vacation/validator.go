package vacation

import (
	"time"

	"vacation-desk/internal/pkg/clock"
)

type ValidRequest struct {
	Period        DateRange
	RequestedDays int
}

type Validator struct {
	policy Policy
	clock  clock.Clock
}

func NewValidator(policy Policy, c clock.Clock) *Validator {
	return &Validator{policy: policy, clock: c}
}

func (v *Validator) Policy() Policy {
	return v.policy
}

// Validate runs the checks in a fixed order and stops at the first failure; the
// order decides which message the requester sees. existing must hold only the
// requester's own history.
func (v *Validator) Validate(start, end time.Time, existing []*Request, balance Balance) (ValidRequest, error) {
	if start.IsZero() || end.IsZero() {
		return ValidRequest{}, ErrMissingDates
	}

	s, e := clock.DateOf(start), clock.DateOf(end)
	if s.Before(clock.Today(v.clock)) {
		return ValidRequest{}, ErrStartDateInPast
	}
	if !e.After(s) {
		return ValidRequest{}, ErrEndDateNotAfterStart
	}

	period := DateRange{start: s, end: e}
	days := period.Days()

	if days < v.policy.MinDays {
		return ValidRequest{}, ErrBelowMinimumPeriod
	}
	if days > v.policy.MaxDays {
		return ValidRequest{}, ErrAboveMaximumPeriod
	}
	if days > balance.AvailableDays {
		return ValidRequest{}, &InsufficientBalanceError{Available: balance.AvailableDays, Requested: days}
	}

	for _, r := range existing {
		if r.IsRejected() {
			continue
		}
		if period.Overlaps(r.Period()) {
			return ValidRequest{}, &OverlapError{Existing: r}
		}
	}

	return ValidRequest{Period: period, RequestedDays: days}, nil
}

//go:build unit

package vacation_test

import (
	"errors"
	"testing"
	"time"

	"vacation-desk/internal/domain/vacation"
	"vacation-desk/internal/pkg/clock"
	"vacation-desk/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validateCase struct {
	name     string
	start    string
	end      string
	existing []*vacation.Request
	balance  *vacation.Balance
	errIs    error
	days     int
}

func newValidator() *vacation.Validator {
	// mid-afternoon so that "today" only matches when time of day is ignored
	return vacation.NewValidator(vacation.DefaultPolicy(), clock.NewMockClock(builder.Today.Add(15*time.Hour)))
}

func fullBalance() vacation.Balance {
	return vacation.ComputeBalance(nil, uuid.New(), vacation.DefaultPolicy())
}

func TestValidate(t *testing.T) {
	requesterID := uuid.New()
	existing := func(start, end string, status vacation.Status) *vacation.Request {
		return builder.NewVacationRequestBuilder().
			WithRequester(requesterID).
			WithRange(start, end).
			WithStatus(status).
			BuildDomain()
	}

	t.Run("date presence and ordering", func(t *testing.T) {
		runValidateCases(t, []validateCase{
			{name: "missing start", start: "", end: "2025-06-20", errIs: vacation.ErrMissingDates},
			{name: "missing end", start: "2025-06-10", end: "", errIs: vacation.ErrMissingDates},
			{name: "start yesterday", start: "2025-05-31", end: "2025-06-10", errIs: vacation.ErrStartDateInPast},
			{name: "start today", start: "2025-06-01", end: "2025-06-05", days: 5},
			{name: "end equals start", start: "2025-06-10", end: "2025-06-10", errIs: vacation.ErrEndDateNotAfterStart},
			{name: "end before start", start: "2025-06-10", end: "2025-06-09", errIs: vacation.ErrEndDateNotAfterStart},
			{name: "past start wins over reversed range", start: "2025-05-20", end: "2025-05-10", errIs: vacation.ErrStartDateInPast},
		})
	})

	t.Run("period limits", func(t *testing.T) {
		runValidateCases(t, []validateCase{
			{name: "4 days rejected", start: "2025-06-10", end: "2025-06-13", errIs: vacation.ErrBelowMinimumPeriod},
			{name: "5 days accepted", start: "2025-06-10", end: "2025-06-14", days: 5},
			{name: "30 days accepted", start: "2025-06-10", end: "2025-07-09", days: 30},
			{name: "31 days rejected", start: "2025-06-10", end: "2025-07-10", errIs: vacation.ErrAboveMaximumPeriod},
		})
	})

	t.Run("balance", func(t *testing.T) {
		approved15 := []*vacation.Request{existing("2025-08-01", "2025-08-15", vacation.StatusApproved)}
		b := vacation.ComputeBalance(approved15, requesterID, vacation.DefaultPolicy())

		runValidateCases(t, []validateCase{
			{name: "15 approved + 10 fits", start: "2025-06-10", end: "2025-06-19", existing: approved15, balance: &b, days: 10},
			{name: "15 approved + 15 exactly fits", start: "2025-06-10", end: "2025-06-24", existing: approved15, balance: &b, days: 15},
			{name: "15 approved + 20 exceeds", start: "2025-06-10", end: "2025-06-29", existing: approved15, balance: &b, errIs: vacation.ErrInsufficientBalance},
		})

		_, err := newValidator().Validate(builder.Date("2025-06-10"), builder.Date("2025-06-29"), approved15, b)
		var balErr *vacation.InsufficientBalanceError
		require.True(t, errors.As(err, &balErr))
		assert.Equal(t, 15, balErr.Available)
		assert.Equal(t, 20, balErr.Requested)
	})

	t.Run("overlap", func(t *testing.T) {
		pending := existing("2025-07-01", "2025-07-10", vacation.StatusPending)
		approved := existing("2025-07-01", "2025-07-10", vacation.StatusApproved)
		rejected := existing("2025-07-01", "2025-07-10", vacation.StatusRejected)

		runValidateCases(t, []validateCase{
			{name: "intersects pending", start: "2025-07-05", end: "2025-07-15", existing: []*vacation.Request{pending}, errIs: vacation.ErrOverlappingRequest},
			{name: "intersects approved", start: "2025-06-25", end: "2025-07-01", existing: []*vacation.Request{approved}, errIs: vacation.ErrOverlappingRequest},
			{name: "touching end boundary", start: "2025-07-10", end: "2025-07-14", existing: []*vacation.Request{pending}, errIs: vacation.ErrOverlappingRequest},
			{name: "contained", start: "2025-06-28", end: "2025-07-12", existing: []*vacation.Request{pending}, errIs: vacation.ErrOverlappingRequest},
			{name: "day after", start: "2025-07-11", end: "2025-07-15", existing: []*vacation.Request{pending}, days: 5},
			{name: "same range as rejected", start: "2025-07-01", end: "2025-07-10", existing: []*vacation.Request{rejected}, days: 10},
		})

		_, err := newValidator().Validate(builder.Date("2025-07-05"), builder.Date("2025-07-15"), []*vacation.Request{pending}, fullBalance())
		var overlapErr *vacation.OverlapError
		require.True(t, errors.As(err, &overlapErr))
		assert.Equal(t, pending.ID(), overlapErr.Existing.ID())
	})

	t.Run("balance is checked before overlap", func(t *testing.T) {
		pending := existing("2025-07-01", "2025-07-25", vacation.StatusPending)
		hist := []*vacation.Request{pending}
		b := vacation.ComputeBalance(hist, requesterID, vacation.DefaultPolicy())

		_, err := newValidator().Validate(builder.Date("2025-07-05"), builder.Date("2025-07-15"), hist, b)
		require.ErrorIs(t, err, vacation.ErrInsufficientBalance)
	})

	t.Run("custom policy", func(t *testing.T) {
		policy, err := vacation.NewPolicy(3, 10, 12)
		require.NoError(t, err)
		v := vacation.NewValidator(policy, clock.NewMockClock(builder.Today))

		_, err = v.Validate(builder.Date("2025-06-10"), builder.Date("2025-06-12"), nil, vacation.ComputeBalance(nil, requesterID, policy))
		require.NoError(t, err)

		_, err = v.Validate(builder.Date("2025-06-10"), builder.Date("2025-06-20"), nil, vacation.ComputeBalance(nil, requesterID, policy))
		require.ErrorIs(t, err, vacation.ErrAboveMaximumPeriod)
	})

	t.Run("time of day on inputs is ignored", func(t *testing.T) {
		start := builder.Date("2025-06-10").Add(23 * time.Hour)
		end := builder.Date("2025-06-14").Add(1 * time.Hour)

		valid, err := newValidator().Validate(start, end, nil, fullBalance())
		require.NoError(t, err)
		assert.Equal(t, 5, valid.RequestedDays)
		assert.Equal(t, builder.Date("2025-06-10"), valid.Period.Start())
	})
}

func runValidateCases(t *testing.T, cases []validateCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			balance := fullBalance()
			if c.balance != nil {
				balance = *c.balance
			}

			valid, err := newValidator().Validate(parseOrZero(c.start), parseOrZero(c.end), c.existing, balance)

			if c.errIs == nil {
				require.NoError(t, err)
				assert.Equal(t, c.days, valid.RequestedDays)
				assert.Equal(t, c.days, valid.Period.Days())
			} else {
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
				assert.Zero(t, valid.RequestedDays)
			}
		})
	}
}

func parseOrZero(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	return builder.Date(s)
}

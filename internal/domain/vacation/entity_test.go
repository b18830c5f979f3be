//go:build unit

package vacation_test

import (
	"testing"
	"time"

	"vacation-desk/internal/domain/vacation"
	"vacation-desk/internal/pkg/clock"
	"vacation-desk/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	b := builder.NewVacationRequestBuilder().WithRange("2025-06-10", "2025-06-20")
	requester := b.BuildRequester()
	v := vacation.NewValidator(vacation.DefaultPolicy(), clock.NewMockClock(builder.Today))

	valid, err := v.Validate(b.Start, b.End, nil, vacation.ComputeBalance(nil, requester.ID(), vacation.DefaultPolicy()))
	require.NoError(t, err)

	notes, err := vacation.NewNotes("  beach  ")
	require.NoError(t, err)

	now := time.Date(2025, 6, 1, 12, 30, 0, 0, time.FixedZone("BRT", -3*60*60))
	actual := vacation.NewRequest(valid, requester, notes, now)

	assert.NotEqual(t, uuid.Nil, actual.ID())
	assert.Equal(t, vacation.StatusPending, actual.Status())
	assert.Equal(t, 11, actual.RequestedDays())
	assert.Equal(t, "beach", actual.Notes().String())
	assert.Equal(t, requester.ID(), actual.RequesterID())
	assert.Equal(t, requester.Name(), actual.RequesterName())
	assert.Equal(t, requester.JobTitle(), actual.RequesterTitle())
	assert.True(t, actual.RequestedAt().Equal(now))
	assert.Equal(t, time.UTC, actual.RequestedAt().Location())
	assert.Empty(t, actual.ApprovedBy())
	assert.Nil(t, actual.ApprovedAt())
	assert.Empty(t, actual.RejectionReason())

	t.Run("scenario: balance after creation", func(t *testing.T) {
		after := vacation.ComputeBalance([]*vacation.Request{actual}, requester.ID(), vacation.DefaultPolicy())
		assert.Equal(t, 19, after.AvailableDays)
		assert.Equal(t, 11, after.DaysPending)
	})

	t.Run("ids are unique", func(t *testing.T) {
		other := vacation.NewRequest(valid, requester, notes, now)
		assert.NotEqual(t, actual.ID(), other.ID())
	})
}

func TestStatusTransitions(t *testing.T) {
	approver := builder.NewApproverBuilder().BuildDomain()
	now := builder.Today.Add(10 * time.Hour)

	t.Run("approve pending", func(t *testing.T) {
		r := builder.NewVacationRequestBuilder().BuildDomain()
		require.NoError(t, r.Approve(approver, now))

		assert.Equal(t, vacation.StatusApproved, r.Status())
		assert.Equal(t, approver.Name(), r.ApprovedBy())
		require.NotNil(t, r.ApprovedAt())
		assert.True(t, r.ApprovedAt().Equal(now))
		assert.Empty(t, r.RejectionReason())
	})

	t.Run("reject pending", func(t *testing.T) {
		r := builder.NewVacationRequestBuilder().BuildDomain()
		require.NoError(t, r.Reject(approver, "  team coverage ", now))

		assert.Equal(t, vacation.StatusRejected, r.Status())
		assert.Equal(t, "team coverage", r.RejectionReason())
		assert.Equal(t, approver.Name(), r.ApprovedBy())
	})

	t.Run("reject needs a reason", func(t *testing.T) {
		r := builder.NewVacationRequestBuilder().BuildDomain()
		require.ErrorIs(t, r.Reject(approver, "  ", now), vacation.ErrRejectionReasonRequired)
		assert.True(t, r.IsPending())
	})

	t.Run("decided requests are terminal", func(t *testing.T) {
		for _, status := range []vacation.Status{vacation.StatusApproved, vacation.StatusRejected} {
			r := builder.NewVacationRequestBuilder().WithStatus(status).BuildDomain()
			before := *r

			require.ErrorIs(t, r.Approve(approver, now), vacation.ErrAlreadyDecided)
			require.ErrorIs(t, r.Reject(approver, "late", now), vacation.ErrAlreadyDecided)

			if diff := cmp.Diff(&before, r, cmp.AllowUnexported(vacation.Request{}, vacation.DateRange{}, vacation.Notes{})); diff != "" {
				t.Errorf("%s request changed (-before +after):\n%s", status, diff)
			}
		}
	})
}

func TestDateRange(t *testing.T) {
	r, err := vacation.NewDateRange(builder.Date("2025-07-01"), builder.Date("2025-07-10"))
	require.NoError(t, err)
	assert.Equal(t, 10, r.Days())
	assert.Equal(t, "2025-07-01..2025-07-10", r.String())

	single, err := vacation.NewDateRange(builder.Date("2025-07-10"), builder.Date("2025-07-10"))
	require.NoError(t, err)
	assert.Equal(t, 1, single.Days())
	assert.True(t, r.Overlaps(single))
	assert.True(t, single.Overlaps(r))

	_, err = vacation.NewDateRange(builder.Date("2025-07-10"), builder.Date("2025-07-01"))
	require.ErrorIs(t, err, vacation.ErrInvalidDateRange)

	_, err = vacation.NewDateRange(time.Time{}, builder.Date("2025-07-01"))
	require.ErrorIs(t, err, vacation.ErrInvalidDateRange)

	t.Run("days across DST change", func(t *testing.T) {
		loc, err := time.LoadLocation("America/New_York")
		if err != nil {
			t.Skip("tzdata not available")
		}
		dst, err := vacation.NewDateRange(
			time.Date(2025, 3, 8, 0, 0, 0, 0, loc),
			time.Date(2025, 3, 12, 0, 0, 0, 0, loc),
		)
		require.NoError(t, err)
		assert.Equal(t, 5, dst.Days())
	})
}

func TestPolicy(t *testing.T) {
	assert.NoError(t, vacation.DefaultPolicy().Validate())

	_, err := vacation.NewPolicy(0, 30, 30)
	require.ErrorIs(t, err, vacation.ErrInvalidPolicy)
	_, err = vacation.NewPolicy(10, 5, 30)
	require.ErrorIs(t, err, vacation.ErrInvalidPolicy)
	_, err = vacation.NewPolicy(5, 30, -1)
	require.ErrorIs(t, err, vacation.ErrInvalidPolicy)
}

func TestNotes(t *testing.T) {
	n, err := vacation.NewNotes("")
	require.NoError(t, err)
	assert.True(t, n.IsEmpty())

	long := make([]rune, vacation.MaxNotesLength+1)
	for i := range long {
		long[i] = 'é'
	}
	_, err = vacation.NewNotes(string(long))
	require.ErrorIs(t, err, vacation.ErrNotesTooLong)
}

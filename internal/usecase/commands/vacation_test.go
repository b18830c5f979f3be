//go:build unit

package commands_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"vacation-desk/internal/domain/employee"
	"vacation-desk/internal/domain/vacation"
	"vacation-desk/internal/infra"
	"vacation-desk/internal/infra/kvstore"
	"vacation-desk/internal/infra/repository"
	"vacation-desk/internal/pkg/clock"
	"vacation-desk/internal/pkg/errs"
	"vacation-desk/internal/usecase/commands"
	"vacation-desk/tests/common/builder"
	commandsmock "vacation-desk/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo     *repository.VacationRequestRepository
	clock    *clock.MockClock
	uc       commands.VacationCommands
	employee employee.Requester
	approver employee.Requester
}

func newFixture(t *testing.T, seed ...*vacation.Request) *fixture {
	t.Helper()
	repo := repository.NewVacationRequestRepository(kvstore.NewMemoryStore())
	if len(seed) > 0 {
		require.NoError(t, repo.SaveAll(context.Background(), seed))
	}
	clk := clock.NewMockClock(builder.Today.Add(10 * time.Hour))
	return &fixture{
		repo:     repo,
		clock:    clk,
		uc:       commands.NewVacationUseCase(repo, vacation.NewValidator(vacation.DefaultPolicy(), clk), clk),
		employee: builder.NewEmployeeBuilder().BuildDomain(),
		approver: builder.NewApproverBuilder().BuildDomain(),
	}
}

func input(start, end, notes string) commands.SubmitVacationInput {
	return commands.SubmitVacationInput{StartDate: builder.Date(start), EndDate: builder.Date(end), Notes: notes}
}

// =============================================================================
// Submit
// =============================================================================

func TestSubmitVacationRequest_Accepted(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	res, err := f.uc.SubmitVacationRequest(ctx, f.employee, input("2025-06-10", "2025-06-20", "  Beach  "))
	require.NoError(t, err)

	assert.Equal(t, 11, res.Request.RequestedDays())
	assert.Equal(t, vacation.StatusPending, res.Request.Status())
	assert.Equal(t, "Beach", res.Request.Notes().String())
	assert.Equal(t, f.employee.Name(), res.Request.RequesterName())
	assert.Equal(t, f.clock.Now().UTC(), res.Request.RequestedAt())
	assert.Equal(t, 19, res.Balance.AvailableDays)
	assert.Equal(t, 11, res.Balance.DaysPending)

	stored, err := f.repo.FindByRequester(ctx, f.employee.ID())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, res.Request.ID(), stored[0].ID())
}

func TestSubmitVacationRequest_Rejected(t *testing.T) {
	ctx := context.Background()
	requester := builder.NewEmployeeBuilder().BuildDomain()
	mine := func(start, end string, status vacation.Status) *vacation.Request {
		return builder.NewVacationRequestBuilder().WithRequester(requester.ID()).WithRange(start, end).WithStatus(status).BuildDomain()
	}

	testCases := []struct {
		name  string
		seed  []*vacation.Request
		in    commands.SubmitVacationInput
		errIs error
	}{
		{name: "missing dates", in: commands.SubmitVacationInput{EndDate: builder.Date("2025-06-20")}, errIs: vacation.ErrMissingDates},
		{name: "start in past", in: input("2025-05-30", "2025-06-10", ""), errIs: vacation.ErrStartDateInPast},
		{name: "end not after start", in: input("2025-06-10", "2025-06-10", ""), errIs: vacation.ErrEndDateNotAfterStart},
		{name: "below minimum", in: input("2025-06-10", "2025-06-13", ""), errIs: vacation.ErrBelowMinimumPeriod},
		{name: "above maximum", in: input("2025-06-10", "2025-07-10", ""), errIs: vacation.ErrAboveMaximumPeriod},
		{
			name:  "insufficient balance",
			seed:  []*vacation.Request{mine("2025-07-01", "2025-07-25", vacation.StatusApproved)},
			in:    input("2025-08-01", "2025-08-10", ""),
			errIs: vacation.ErrInsufficientBalance,
		},
		{
			name:  "overlaps pending request",
			seed:  []*vacation.Request{mine("2025-06-15", "2025-06-20", vacation.StatusPending)},
			in:    input("2025-06-10", "2025-06-15", ""),
			errIs: vacation.ErrOverlappingRequest,
		},
		{name: "notes too long", in: input("2025-06-10", "2025-06-20", strings.Repeat("n", 501)), errIs: vacation.ErrNotesTooLong},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, tc.seed...)

			res, err := f.uc.SubmitVacationRequest(ctx, requester, tc.in)

			assert.Nil(t, res)
			assert.ErrorIs(t, err, tc.errIs)

			all, err := f.repo.LoadAll(ctx)
			require.NoError(t, err)
			assert.Len(t, all, len(tc.seed), "collection must not change on rejection")
		})
	}
}

func TestSubmitVacationRequest_RejectedRequestsFreeTheRange(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	rejected := builder.NewVacationRequestBuilder().
		WithRequester(f.employee.ID()).
		WithRange("2025-06-10", "2025-06-20").
		WithStatus(vacation.StatusRejected).
		BuildDomain()
	require.NoError(t, f.repo.SaveAll(ctx, []*vacation.Request{rejected}))

	res, err := f.uc.SubmitVacationRequest(ctx, f.employee, input("2025-06-10", "2025-06-20", ""))

	require.NoError(t, err)
	assert.Equal(t, 19, res.Balance.AvailableDays)
}

func TestSubmitVacationRequest_OtherRequestersDoNotCount(t *testing.T) {
	ctx := context.Background()
	other := builder.NewVacationRequestBuilder().WithRange("2025-06-01", "2025-06-30").WithStatus(vacation.StatusApproved).BuildDomain()
	f := newFixture(t, other)

	res, err := f.uc.SubmitVacationRequest(ctx, f.employee, input("2025-06-10", "2025-06-20", ""))

	require.NoError(t, err)
	assert.Equal(t, 19, res.Balance.AvailableDays)
}

func TestSubmitVacationRequest_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	writer := commandsmock.NewMockVacationRequestWriter(ctrl)
	storeErr := infra.WrapRepoErr("failed to save vacation requests", errors.New("connection reset"))
	writer.EXPECT().Mutate(gomock.Any(), gomock.Any()).Return(storeErr)

	clk := clock.NewMockClock(builder.Today)
	uc := commands.NewVacationUseCase(writer, vacation.NewValidator(vacation.DefaultPolicy(), clk), clk)

	res, err := uc.SubmitVacationRequest(context.Background(), builder.NewEmployeeBuilder().BuildDomain(), input("2025-06-10", "2025-06-20", ""))

	assert.Nil(t, res)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

// =============================================================================
// Approve / Reject
// =============================================================================

func TestApproveVacationRequest(t *testing.T) {
	ctx := context.Background()
	pending := builder.NewVacationRequestBuilder().BuildDomain()
	f := newFixture(t, pending)
	f.clock.AddDays(1)

	decided, err := f.uc.ApproveVacationRequest(ctx, f.approver, pending.ID())
	require.NoError(t, err)
	assert.Equal(t, vacation.StatusApproved, decided.Status())
	assert.Equal(t, f.approver.Name(), decided.ApprovedBy())
	require.NotNil(t, decided.ApprovedAt())
	assert.Equal(t, f.clock.Now().UTC(), *decided.ApprovedAt())

	stored, err := f.repo.FindByID(ctx, pending.ID())
	require.NoError(t, err)
	assert.Equal(t, vacation.StatusApproved, stored.Status())
}

func TestRejectVacationRequest(t *testing.T) {
	ctx := context.Background()
	pending := builder.NewVacationRequestBuilder().BuildDomain()
	f := newFixture(t, pending)

	decided, err := f.uc.RejectVacationRequest(ctx, f.approver, pending.ID(), "Team coverage")
	require.NoError(t, err)
	assert.Equal(t, vacation.StatusRejected, decided.Status())
	assert.Equal(t, "Team coverage", decided.RejectionReason())

	stored, err := f.repo.FindByID(ctx, pending.ID())
	require.NoError(t, err)
	assert.Equal(t, "Team coverage", stored.RejectionReason())
}

func TestDecideVacationRequest_Errors(t *testing.T) {
	ctx := context.Background()
	approver := builder.NewApproverBuilder().BuildDomain()
	pending := builder.NewVacationRequestBuilder().BuildDomain()
	approved := builder.NewVacationRequestBuilder().WithRange("2025-08-01", "2025-08-10").WithStatus(vacation.StatusApproved).BuildDomain()
	own := builder.NewVacationRequestBuilder().WithRequester(approver.ID()).WithRange("2025-09-01", "2025-09-10").BuildDomain()

	testCases := []struct {
		name   string
		actor  employee.Requester
		id     uuid.UUID
		reject bool
		reason string
		errIs  error
	}{
		{name: "unknown id", actor: approver, id: uuid.New(), errIs: commands.ErrVacationRequestNotFound},
		{name: "already approved", actor: approver, id: approved.ID(), errIs: vacation.ErrAlreadyDecided},
		{name: "reject already approved", actor: approver, id: approved.ID(), reject: true, reason: "late", errIs: vacation.ErrAlreadyDecided},
		{name: "own request", actor: approver, id: own.ID(), errIs: commands.ErrSelfApproval},
		{name: "reject without reason", actor: approver, id: pending.ID(), reject: true, reason: "  ", errIs: vacation.ErrRejectionReasonRequired},
		{name: "not an approver", actor: builder.NewEmployeeBuilder().BuildDomain(), id: pending.ID(), errIs: commands.ErrNotApprover},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, pending, approved, own)

			var err error
			if tc.reject {
				_, err = f.uc.RejectVacationRequest(ctx, tc.actor, tc.id, tc.reason)
			} else {
				_, err = f.uc.ApproveVacationRequest(ctx, tc.actor, tc.id)
			}
			assert.ErrorIs(t, err, tc.errIs)

			stored, err := f.repo.FindByID(ctx, pending.ID())
			require.NoError(t, err)
			assert.True(t, stored.IsPending())
		})
	}
}

func TestErrNotApprover_IsForbidden(t *testing.T) {
	assert.True(t, errs.Is(commands.ErrNotApprover, errs.ErrForbidden))
	assert.True(t, errs.Is(commands.ErrVacationRequestNotFound, errs.ErrNotFound))
}

package commands

import (
	"context"
	"log/slog"
	"time"

	"vacation-desk/internal/domain/employee"
	"vacation-desk/internal/domain/vacation"
	"vacation-desk/internal/pkg/clock"
	"vacation-desk/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrVacationRequestNotFound = errs.Mark(errs.New("vacation request not found"), errs.ErrNotFound)
	ErrSelfApproval            = errs.New("approver cannot decide own vacation request")
	ErrNotApprover             = errs.Mark(errs.New("only approvers can decide vacation requests"), errs.ErrForbidden)
)

type SubmitVacationInput struct {
	StartDate time.Time
	EndDate   time.Time
	Notes     string
}

type SubmitResult struct {
	Request *vacation.Request
	// Balance is recomputed after the new request was added.
	Balance vacation.Balance
}

//go:generate mockgen -source=vacation.go -destination=../../../tests/mock/commands/vacation.go -package=commandsmock

type VacationCommands interface {
	SubmitVacationRequest(ctx context.Context, requester employee.Requester, input SubmitVacationInput) (*SubmitResult, error)
	ApproveVacationRequest(ctx context.Context, approver employee.Requester, id uuid.UUID) (*vacation.Request, error)
	RejectVacationRequest(ctx context.Context, approver employee.Requester, id uuid.UUID, reason string) (*vacation.Request, error)
}

type vacationUseCaseImpl struct {
	repo      VacationRequestWriter
	validator *vacation.Validator
	clock     clock.Clock
}

func NewVacationUseCase(repo VacationRequestWriter, validator *vacation.Validator, clk clock.Clock) VacationCommands {
	return &vacationUseCaseImpl{repo: repo, validator: validator, clock: clk}
}

func (uc *vacationUseCaseImpl) SubmitVacationRequest(ctx context.Context, requester employee.Requester, input SubmitVacationInput) (*SubmitResult, error) {
	policy := uc.validator.Policy()

	var result SubmitResult
	err := uc.repo.Mutate(ctx, func(all []*vacation.Request) ([]*vacation.Request, error) {
		mine := ownedBy(all, requester.ID())
		balance := vacation.ComputeBalance(mine, requester.ID(), policy)

		valid, err := uc.validator.Validate(input.StartDate, input.EndDate, mine, balance)
		if err != nil {
			return nil, err
		}
		notes, err := vacation.NewNotes(input.Notes)
		if err != nil {
			return nil, err
		}

		req := vacation.NewRequest(valid, requester, notes, uc.clock.Now())
		mine = append(mine, req)

		result.Request = req
		result.Balance = vacation.ComputeBalance(mine, requester.ID(), policy)
		return append(all, req), nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("vacation request submitted",
		slog.String("request_id", result.Request.ID().String()),
		slog.String("requester_id", requester.ID().String()),
		slog.String("period", result.Request.Period().String()),
		slog.Int("days", result.Request.RequestedDays()),
		slog.Int("available_days", result.Balance.AvailableDays),
	)
	return &result, nil
}

func (uc *vacationUseCaseImpl) ApproveVacationRequest(ctx context.Context, approver employee.Requester, id uuid.UUID) (*vacation.Request, error) {
	return uc.decide(ctx, approver, id, func(r *vacation.Request) error {
		return r.Approve(approver, uc.clock.Now())
	})
}

func (uc *vacationUseCaseImpl) RejectVacationRequest(ctx context.Context, approver employee.Requester, id uuid.UUID, reason string) (*vacation.Request, error) {
	return uc.decide(ctx, approver, id, func(r *vacation.Request) error {
		return r.Reject(approver, reason, uc.clock.Now())
	})
}

func (uc *vacationUseCaseImpl) decide(ctx context.Context, approver employee.Requester, id uuid.UUID, apply func(*vacation.Request) error) (*vacation.Request, error) {
	if !approver.CanApprove() {
		return nil, ErrNotApprover
	}

	var decided *vacation.Request
	err := uc.repo.Mutate(ctx, func(all []*vacation.Request) ([]*vacation.Request, error) {
		for _, r := range all {
			if r.ID() != id {
				continue
			}
			if r.BelongsTo(approver.ID()) {
				return nil, ErrSelfApproval
			}
			if err := apply(r); err != nil {
				return nil, err
			}
			decided = r
			return all, nil
		}
		return nil, ErrVacationRequestNotFound
	})
	if err != nil {
		return nil, err
	}

	slog.Info("vacation request decided",
		slog.String("request_id", decided.ID().String()),
		slog.String("status", decided.Status().String()),
		slog.String("approver_id", approver.ID().String()),
	)
	return decided, nil
}

func ownedBy(all []*vacation.Request, requesterID uuid.UUID) []*vacation.Request {
	mine := make([]*vacation.Request, 0, len(all))
	for _, r := range all {
		if r.BelongsTo(requesterID) {
			mine = append(mine, r)
		}
	}
	return mine
}

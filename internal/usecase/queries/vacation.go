package queries

import (
	"context"
	"slices"
	"strings"
	"time"

	"vacation-desk/internal/domain/employee"
	"vacation-desk/internal/domain/vacation"
	"vacation-desk/internal/infra"
	"vacation-desk/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrVacationRequestNotFound = errs.Mark(errs.New("vacation request not found"), errs.ErrNotFound)
	ErrVacationRequestAccess   = errs.Mark(errs.New("vacation request access denied"), errs.ErrForbidden)
	ErrInvalidCursor           = errs.New("invalid cursor")
)

//go:generate mockgen -source=vacation.go -destination=../../../tests/mock/queries/vacation.go -package=queriesmock

type VacationRequestReader interface {
	LoadAll(ctx context.Context) ([]*vacation.Request, error)
	FindByRequester(ctx context.Context, requesterID uuid.UUID) ([]*vacation.Request, error)
	FindByID(ctx context.Context, id uuid.UUID) (*vacation.Request, error)
}

type VacationQueries interface {
	GetBalance(ctx context.Context, requesterID uuid.UUID) (*BalanceView, error)
	ListMine(ctx context.Context, requesterID uuid.UUID, filter ListFilter) ([]*VacationRequestView, error)
	ListAll(ctx context.Context, filter ListFilter, cursor *Cursor, limit int) ([]*VacationRequestView, *Cursor, error)
	GetByID(ctx context.Context, actor employee.Requester, id uuid.UUID) (*VacationRequestView, error)
}

type vacationQueriesImpl struct {
	repo   VacationRequestReader
	policy vacation.Policy
}

func NewVacationQueries(repo VacationRequestReader, policy vacation.Policy) VacationQueries {
	return &vacationQueriesImpl{repo: repo, policy: policy}
}

func (q *vacationQueriesImpl) GetBalance(ctx context.Context, requesterID uuid.UUID) (*BalanceView, error) {
	mine, err := q.repo.FindByRequester(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	return ToBalanceView(vacation.ComputeBalance(mine, requesterID, q.policy)), nil
}

func (q *vacationQueriesImpl) ListMine(ctx context.Context, requesterID uuid.UUID, filter ListFilter) ([]*VacationRequestView, error) {
	match, err := filter.matcher()
	if err != nil {
		return nil, err
	}
	mine, err := q.repo.FindByRequester(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	return toViews(newestFirst(mine, match)), nil
}

func (q *vacationQueriesImpl) ListAll(ctx context.Context, filter ListFilter, cursor *Cursor, limit int) ([]*VacationRequestView, *Cursor, error) {
	limit = ValidateLimit(limit)
	match, err := filter.matcher()
	if err != nil {
		return nil, nil, err
	}
	all, err := q.repo.LoadAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	rows := newestFirst(all, match)

	if cursor != nil && cursor.After != "" {
		lastAt, lastID, err := DecodeAfterCursor(cursor.After)
		if err != nil {
			return nil, nil, err
		}
		start := len(rows)
		for i, r := range rows {
			if olderThan(r, lastAt, lastID) {
				start = i
				break
			}
		}
		rows = rows[start:]
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.RequestedAt(), last.ID())}
		rows = rows[:limit]
	}
	return toViews(rows), next, nil
}

func (q *vacationQueriesImpl) GetByID(ctx context.Context, actor employee.Requester, id uuid.UUID) (*VacationRequestView, error) {
	r, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVacationRequestNotFound
		}
		return nil, err
	}
	if !r.BelongsTo(actor.ID()) && !actor.CanApprove() {
		return nil, ErrVacationRequestAccess
	}
	return ToView(r), nil
}

func (f ListFilter) matcher() (func(*vacation.Request) bool, error) {
	var status vacation.Status
	if f.Status != "" {
		s, err := vacation.NewStatus(f.Status)
		if err != nil {
			return nil, err
		}
		status = s
	}
	search := strings.ToLower(strings.TrimSpace(f.Search))

	return func(r *vacation.Request) bool {
		if status != "" && r.Status() != status {
			return false
		}
		if search != "" && !strings.Contains(strings.ToLower(r.RequesterName()), search) {
			return false
		}
		return true
	}, nil
}

func newestFirst(requests []*vacation.Request, match func(*vacation.Request) bool) []*vacation.Request {
	rows := make([]*vacation.Request, 0, len(requests))
	for _, r := range requests {
		if match(r) {
			rows = append(rows, r)
		}
	}
	slices.SortFunc(rows, func(a, b *vacation.Request) int {
		if c := b.RequestedAt().Compare(a.RequestedAt()); c != 0 {
			return c
		}
		return strings.Compare(b.ID().String(), a.ID().String())
	})
	return rows
}

// olderThan reports whether r sorts after the (at, id) position in newest-first order.
func olderThan(r *vacation.Request, at time.Time, id uuid.UUID) bool {
	if c := r.RequestedAt().Compare(at); c != 0 {
		return c < 0
	}
	return strings.Compare(r.ID().String(), id.String()) < 0
}

func toViews(requests []*vacation.Request) []*VacationRequestView {
	views := make([]*VacationRequestView, 0, len(requests))
	for _, r := range requests {
		views = append(views, ToView(r))
	}
	return views
}

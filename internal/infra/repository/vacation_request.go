package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"vacation-desk/internal/domain/vacation"
	"vacation-desk/internal/infra"
	"vacation-desk/internal/infra/kvstore"

	"github.com/google/uuid"
)

const VacationRequestsKey = "vacation_requests"

type VacationRequestRepository struct {
	store kvstore.Store
	// mu serialises Mutate so two writers in this process never interleave load and save.
	mu sync.Mutex
}

func NewVacationRequestRepository(store kvstore.Store) *VacationRequestRepository {
	return &VacationRequestRepository{store: store}
}

// LoadAll returns an empty collection when nothing was stored yet.
func (r *VacationRequestRepository) LoadAll(ctx context.Context) ([]*vacation.Request, error) {
	raw, err := r.store.Get(ctx, VacationRequestsKey)
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return []*vacation.Request{}, nil
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load vacation requests", err)
	}

	var records []VacationRequestRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, infra.WrapRepoErr("failed to decode vacation requests", err, infra.KindCorruptData)
	}
	return toDomainList(records)
}

// SaveAll replaces the whole collection in a single put.
func (r *VacationRequestRepository) SaveAll(ctx context.Context, requests []*vacation.Request) error {
	raw, err := json.Marshal(toRecords(requests))
	if err != nil {
		return infra.WrapRepoErr("failed to encode vacation requests", err)
	}
	if err := r.store.Put(ctx, VacationRequestsKey, raw); err != nil {
		return infra.WrapRepoErr("failed to save vacation requests", err)
	}
	return nil
}

func (r *VacationRequestRepository) FindByRequester(ctx context.Context, requesterID uuid.UUID) ([]*vacation.Request, error) {
	all, err := r.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	mine := make([]*vacation.Request, 0, len(all))
	for _, req := range all {
		if req.BelongsTo(requesterID) {
			mine = append(mine, req)
		}
	}
	return mine, nil
}

func (r *VacationRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*vacation.Request, error) {
	all, err := r.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, req := range all {
		if req.ID() == id {
			return req, nil
		}
	}
	return nil, infra.WrapRepoErr("vacation request not found", nil, infra.KindNotFound)
}

// Mutate loads the collection, hands it to fn and saves what fn returns. When fn
// fails nothing is written.
func (r *VacationRequestRepository) Mutate(ctx context.Context, fn func([]*vacation.Request) ([]*vacation.Request, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}
	updated, err := fn(all)
	if err != nil {
		return err
	}
	return r.SaveAll(ctx, updated)
}

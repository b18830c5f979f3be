package commands

import (
	"context"

	"vacation-desk/internal/domain/vacation"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

// VacationRequestWriter runs fn against the whole collection and persists its result
// atomically with respect to other writers.
type VacationRequestWriter interface {
	Mutate(ctx context.Context, fn func([]*vacation.Request) ([]*vacation.Request, error)) error
}

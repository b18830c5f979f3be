package vacation

import "github.com/google/uuid"

// Balance is derived from history on every call and never persisted.
type Balance struct {
	Allotment     int
	DaysApproved  int
	DaysPending   int
	AvailableDays int
}

func ComputeBalance(existing []*Request, requesterID uuid.UUID, policy Policy) Balance {
	b := Balance{Allotment: policy.AnnualAllotment}
	for _, r := range existing {
		if !r.BelongsTo(requesterID) {
			continue
		}
		switch r.Status() {
		case StatusApproved:
			b.DaysApproved += r.RequestedDays()
		case StatusPending:
			b.DaysPending += r.RequestedDays()
		}
	}
	b.AvailableDays = policy.AnnualAllotment - b.DaysApproved - b.DaysPending
	return b
}

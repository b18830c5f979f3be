package queries

import (
	"time"

	"vacation-desk/internal/domain/vacation"

	"github.com/google/uuid"
)

// VacationRequestView represents read-optimized vacation request data
type VacationRequestView struct {
	ID              uuid.UUID  `json:"id"`
	RequesterID     uuid.UUID  `json:"requester_id"`
	RequesterName   string     `json:"requester_name"`
	RequesterTitle  string     `json:"requester_title"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         time.Time  `json:"end_date"`
	RequestedDays   int        `json:"requested_days"`
	Notes           string     `json:"notes,omitempty"`
	Status          string     `json:"status"`
	RequestedAt     time.Time  `json:"requested_at"`
	ApprovedBy      string     `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
}

type BalanceView struct {
	Allotment     int `json:"allotment"`
	DaysApproved  int `json:"days_approved"`
	DaysPending   int `json:"days_pending"`
	AvailableDays int `json:"available_days"`
}

// ListFilter narrows a request list. Empty fields match everything; Search is a
// case-insensitive substring of the requester name.
type ListFilter struct {
	Status string
	Search string
}

func ToView(r *vacation.Request) *VacationRequestView {
	return &VacationRequestView{
		ID:              r.ID(),
		RequesterID:     r.RequesterID(),
		RequesterName:   r.RequesterName(),
		RequesterTitle:  r.RequesterTitle(),
		StartDate:       r.Period().Start(),
		EndDate:         r.Period().End(),
		RequestedDays:   r.RequestedDays(),
		Notes:           r.Notes().String(),
		Status:          r.Status().String(),
		RequestedAt:     r.RequestedAt(),
		ApprovedBy:      r.ApprovedBy(),
		ApprovedAt:      r.ApprovedAt(),
		RejectionReason: r.RejectionReason(),
	}
}

func ToBalanceView(b vacation.Balance) *BalanceView {
	return &BalanceView{
		Allotment:     b.Allotment,
		DaysApproved:  b.DaysApproved,
		DaysPending:   b.DaysPending,
		AvailableDays: b.AvailableDays,
	}
}

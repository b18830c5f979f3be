package repository

import (
	"time"

	"vacation-desk/internal/domain/vacation"
	"vacation-desk/internal/infra"
	"vacation-desk/internal/pkg/errs"

	"github.com/google/uuid"
)

// VacationRequestRecord is the stored shape of one request inside the collection.
type VacationRequestRecord struct {
	ID              uuid.UUID  `json:"id"`
	RequesterID     uuid.UUID  `json:"requesterId"`
	RequesterName   string     `json:"requesterName"`
	RequesterTitle  string     `json:"requesterTitle"`
	StartDate       string     `json:"startDate"`
	EndDate         string     `json:"endDate"`
	RequestedDays   int        `json:"requestedDays"`
	Notes           string     `json:"notes,omitempty"`
	Status          string     `json:"status"`
	RequestedAt     time.Time  `json:"requestedAt"`
	ApprovedBy      string     `json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time `json:"approvedAt,omitempty"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
}

func ToRecord(r *vacation.Request) VacationRequestRecord {
	return VacationRequestRecord{
		ID:              r.ID(),
		RequesterID:     r.RequesterID(),
		RequesterName:   r.RequesterName(),
		RequesterTitle:  r.RequesterTitle(),
		StartDate:       r.Period().Start().Format(vacation.DateLayout),
		EndDate:         r.Period().End().Format(vacation.DateLayout),
		RequestedDays:   r.RequestedDays(),
		Notes:           r.Notes().String(),
		Status:          r.Status().String(),
		RequestedAt:     r.RequestedAt(),
		ApprovedBy:      r.ApprovedBy(),
		ApprovedAt:      r.ApprovedAt(),
		RejectionReason: r.RejectionReason(),
	}
}

func ToDomain(rec VacationRequestRecord) (*vacation.Request, error) {
	start, err := time.Parse(vacation.DateLayout, rec.StartDate)
	if err != nil {
		return nil, corrupt(rec.ID, "start date", err)
	}
	end, err := time.Parse(vacation.DateLayout, rec.EndDate)
	if err != nil {
		return nil, corrupt(rec.ID, "end date", err)
	}
	period, err := vacation.NewDateRange(start, end)
	if err != nil {
		return nil, corrupt(rec.ID, "date range", err)
	}
	notes, err := vacation.NewNotes(rec.Notes)
	if err != nil {
		return nil, corrupt(rec.ID, "notes", err)
	}
	status, err := vacation.NewStatus(rec.Status)
	if err != nil {
		return nil, corrupt(rec.ID, "status", err)
	}

	return vacation.ReconstructRequest(
		rec.ID, rec.RequesterID,
		rec.RequesterName, rec.RequesterTitle,
		period, rec.RequestedDays,
		notes, status,
		rec.RequestedAt,
		rec.ApprovedBy, rec.ApprovedAt, rec.RejectionReason,
	), nil
}

func corrupt(id uuid.UUID, field string, err error) error {
	return infra.WrapRepoErr("invalid "+field+" in vacation request "+id.String(), err, infra.KindCorruptData)
}

func toRecords(requests []*vacation.Request) []VacationRequestRecord {
	records := make([]VacationRequestRecord, 0, len(requests))
	for _, r := range requests {
		records = append(records, ToRecord(r))
	}
	return records
}

func toDomainList(records []VacationRequestRecord) ([]*vacation.Request, error) {
	requests := make([]*vacation.Request, 0, len(records))
	for _, rec := range records {
		r, err := ToDomain(rec)
		if err != nil {
			return nil, errs.Wrap(err, "failed to convert vacation requests")
		}
		requests = append(requests, r)
	}
	return requests, nil
}

//go:build unit || e2e

package builder

import (
	"time"

	"vacation-desk/internal/domain/employee"
	"vacation-desk/internal/domain/vacation"
	reqdto "vacation-desk/internal/handler/dto/request"
	"vacation-desk/internal/infra/repository"
	"vacation-desk/internal/usecase/queries"

	"github.com/google/uuid"
)

// Today is the fixed "now" the vacation tests run against.
var Today = Date("2025-06-01")

type VacationRequestBuilder struct {
	ID              uuid.UUID
	RequesterID     uuid.UUID
	RequesterName   string
	RequesterTitle  string
	Start           time.Time
	End             time.Time
	Notes           string
	Status          vacation.Status
	RequestedAt     time.Time
	ApprovedBy      string
	ApprovedAt      *time.Time
	RejectionReason string
}

func NewVacationRequestBuilder() *VacationRequestBuilder {
	return &VacationRequestBuilder{
		ID:             uuid.New(),
		RequesterID:    uuid.New(),
		RequesterName:  "Ana Souza",
		RequesterTitle: "Analyst",
		Start:          Date("2025-07-01"),
		End:            Date("2025-07-10"),
		Notes:          "Family trip",
		Status:         vacation.StatusPending,
		RequestedAt:    Today.Add(9 * time.Hour),
	}
}

func (b *VacationRequestBuilder) With(mutate func(*VacationRequestBuilder)) *VacationRequestBuilder {
	mutate(b)
	return b
}

func (b *VacationRequestBuilder) WithRange(start, end string) *VacationRequestBuilder {
	b.Start = Date(start)
	b.End = Date(end)
	return b
}

func (b *VacationRequestBuilder) WithRequester(id uuid.UUID) *VacationRequestBuilder {
	b.RequesterID = id
	return b
}

func (b *VacationRequestBuilder) WithStatus(s vacation.Status) *VacationRequestBuilder {
	b.Status = s
	if s.IsTerminal() {
		at := b.RequestedAt.Add(24 * time.Hour)
		b.ApprovedBy = "Carla Lima"
		b.ApprovedAt = &at
	}
	if s == vacation.StatusRejected {
		b.RejectionReason = "Team coverage"
	}
	return b
}

// Build methods
func (b *VacationRequestBuilder) BuildDomain() *vacation.Request {
	period, err := vacation.NewDateRange(b.Start, b.End)
	if err != nil {
		panic(err)
	}
	notes, err := vacation.NewNotes(b.Notes)
	if err != nil {
		panic(err)
	}
	return vacation.ReconstructRequest(
		b.ID, b.RequesterID,
		b.RequesterName, b.RequesterTitle,
		period, period.Days(),
		notes, b.Status,
		b.RequestedAt,
		b.ApprovedBy, b.ApprovedAt, b.RejectionReason,
	)
}

func (b *VacationRequestBuilder) BuildRequester() employee.Requester {
	r, err := employee.NewRequester(b.RequesterID, b.RequesterName, b.RequesterTitle, employee.RoleEmployee)
	if err != nil {
		panic(err)
	}
	return r
}

func (b *VacationRequestBuilder) BuildSubmitRequestDTO() reqdto.SubmitVacationRequest {
	notes := b.Notes
	return reqdto.SubmitVacationRequest{
		StartDate: b.Start.Format(reqdto.DisplayDateLayout),
		EndDate:   b.End.Format(reqdto.DisplayDateLayout),
		Notes:     &notes,
	}
}

func (b *VacationRequestBuilder) BuildRecord() repository.VacationRequestRecord {
	return repository.VacationRequestRecord{
		ID:              b.ID,
		RequesterID:     b.RequesterID,
		RequesterName:   b.RequesterName,
		RequesterTitle:  b.RequesterTitle,
		StartDate:       b.Start.Format(vacation.DateLayout),
		EndDate:         b.End.Format(vacation.DateLayout),
		RequestedDays:   int(b.End.Sub(b.Start).Hours()/24) + 1,
		Notes:           b.Notes,
		Status:          b.Status.String(),
		RequestedAt:     b.RequestedAt,
		ApprovedBy:      b.ApprovedBy,
		ApprovedAt:      b.ApprovedAt,
		RejectionReason: b.RejectionReason,
	}
}

func (b *VacationRequestBuilder) BuildView() *queries.VacationRequestView {
	return &queries.VacationRequestView{
		ID:              b.ID,
		RequesterID:     b.RequesterID,
		RequesterName:   b.RequesterName,
		RequesterTitle:  b.RequesterTitle,
		StartDate:       b.Start,
		EndDate:         b.End,
		RequestedDays:   int(b.End.Sub(b.Start).Hours()/24) + 1,
		Notes:           b.Notes,
		Status:          b.Status.String(),
		RequestedAt:     b.RequestedAt,
		ApprovedBy:      b.ApprovedBy,
		ApprovedAt:      b.ApprovedAt,
		RejectionReason: b.RejectionReason,
	}
}

func Date(s string) time.Time {
	t, err := time.Parse(vacation.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

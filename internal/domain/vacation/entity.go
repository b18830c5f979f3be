package vacation

import (
	"strings"
	"time"

	"vacation-desk/internal/domain/employee"

	"github.com/google/uuid"
)

type Request struct {
	id              uuid.UUID
	requesterID     uuid.UUID
	requesterName   string
	requesterTitle  string
	period          DateRange
	requestedDays   int
	notes           Notes
	status          Status
	requestedAt     time.Time
	approvedBy      string
	approvedAt      *time.Time
	rejectionReason string
}

// NewRequest builds a pending request from a validated range. requestedDays is
// taken from the validation result and never recomputed afterwards.
func NewRequest(valid ValidRequest, requester employee.Requester, notes Notes, now time.Time) *Request {
	return &Request{
		id:             uuid.New(),
		requesterID:    requester.ID(),
		requesterName:  requester.Name(),
		requesterTitle: requester.JobTitle(),
		period:         valid.Period,
		requestedDays:  valid.RequestedDays,
		notes:          notes,
		status:         StatusPending,
		requestedAt:    now.UTC(),
	}
}

func ReconstructRequest(
	id, requesterID uuid.UUID,
	requesterName, requesterTitle string,
	period DateRange,
	requestedDays int,
	notes Notes,
	status Status,
	requestedAt time.Time,
	approvedBy string,
	approvedAt *time.Time,
	rejectionReason string,
) *Request {
	return &Request{
		id:              id,
		requesterID:     requesterID,
		requesterName:   requesterName,
		requesterTitle:  requesterTitle,
		period:          period,
		requestedDays:   requestedDays,
		notes:           notes,
		status:          status,
		requestedAt:     requestedAt,
		approvedBy:      approvedBy,
		approvedAt:      approvedAt,
		rejectionReason: rejectionReason,
	}
}

func (r *Request) Approve(approver employee.Requester, now time.Time) error {
	if r.status != StatusPending {
		return ErrAlreadyDecided
	}
	r.decide(StatusApproved, approver, now)
	return nil
}

func (r *Request) Reject(approver employee.Requester, reason string, now time.Time) error {
	if r.status != StatusPending {
		return ErrAlreadyDecided
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrRejectionReasonRequired
	}
	r.decide(StatusRejected, approver, now)
	r.rejectionReason = reason
	return nil
}

func (r *Request) decide(status Status, approver employee.Requester, now time.Time) {
	at := now.UTC()
	r.status = status
	r.approvedBy = approver.Name()
	r.approvedAt = &at
}

func (r *Request) IsPending() bool  { return r.status == StatusPending }
func (r *Request) IsRejected() bool { return r.status == StatusRejected }

func (r *Request) BelongsTo(requesterID uuid.UUID) bool {
	return r.requesterID == requesterID
}

func (r *Request) ID() uuid.UUID           { return r.id }
func (r *Request) RequesterID() uuid.UUID  { return r.requesterID }
func (r *Request) RequesterName() string   { return r.requesterName }
func (r *Request) RequesterTitle() string  { return r.requesterTitle }
func (r *Request) Period() DateRange       { return r.period }
func (r *Request) RequestedDays() int      { return r.requestedDays }
func (r *Request) Notes() Notes            { return r.notes }
func (r *Request) Status() Status          { return r.status }
func (r *Request) RequestedAt() time.Time  { return r.requestedAt }
func (r *Request) ApprovedBy() string      { return r.approvedBy }
func (r *Request) ApprovedAt() *time.Time  { return r.approvedAt }
func (r *Request) RejectionReason() string { return r.rejectionReason }

package employee

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	MaxNameLength     = 120
	MaxJobTitleLength = 120
)

// Requester is the session identity stamped onto the requests an employee submits.
// No referential integrity with an employee registry is enforced.
type Requester struct {
	id       uuid.UUID
	name     string
	jobTitle string
	role     Role
}

func NewRequester(id uuid.UUID, name, jobTitle string, role Role) (Requester, error) {
	if id == uuid.Nil {
		return Requester{}, ErrMissingEmployeeID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Requester{}, ErrMissingEmployeeName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return Requester{}, ErrEmployeeNameTooLong
	}
	jobTitle = strings.TrimSpace(jobTitle)
	if utf8.RuneCountInString(jobTitle) > MaxJobTitleLength {
		return Requester{}, ErrJobTitleTooLong
	}
	if !role.IsValid() {
		return Requester{}, ErrInvalidRole
	}
	return Requester{id: id, name: name, jobTitle: jobTitle, role: role}, nil
}

func (r Requester) ID() uuid.UUID    { return r.id }
func (r Requester) Name() string     { return r.name }
func (r Requester) JobTitle() string { return r.jobTitle }
func (r Requester) Role() Role       { return r.role }
func (r Requester) CanApprove() bool { return r.role.CanApprove() }

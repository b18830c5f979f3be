package employee

import "errors"

var (
	ErrInvalidRole         = errors.New("invalid role")
	ErrMissingEmployeeID   = errors.New("employee id is required")
	ErrMissingEmployeeName = errors.New("employee name is required")
	ErrEmployeeNameTooLong = errors.New("employee name exceeds maximum length")
	ErrJobTitleTooLong     = errors.New("job title exceeds maximum length")
)

type Role string

const (
	RoleEmployee Role = "employee"
	RoleApprover Role = "approver"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleEmployee, RoleApprover:
		return true
	default:
		return false
	}
}

// CanApprove reports whether r may decide other employees' vacation requests.
func (r Role) CanApprove() bool {
	return r == RoleApprover
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

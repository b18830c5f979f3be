//go:build unit || e2e

package builder

import (
	"vacation-desk/internal/domain/employee"

	"github.com/google/uuid"
)

type EmployeeBuilder struct {
	ID       uuid.UUID
	Name     string
	JobTitle string
	Role     employee.Role
}

func NewEmployeeBuilder() *EmployeeBuilder {
	return &EmployeeBuilder{
		ID:       uuid.New(),
		Name:     "Ana Souza",
		JobTitle: "Analyst",
		Role:     employee.RoleEmployee,
	}
}

func NewApproverBuilder() *EmployeeBuilder {
	return &EmployeeBuilder{
		ID:       uuid.New(),
		Name:     "Carla Lima",
		JobTitle: "HR Manager",
		Role:     employee.RoleApprover,
	}
}

func (e *EmployeeBuilder) With(mutate func(*EmployeeBuilder)) *EmployeeBuilder {
	mutate(e)
	return e
}

func (e *EmployeeBuilder) BuildDomain() employee.Requester {
	r, err := employee.NewRequester(e.ID, e.Name, e.JobTitle, e.Role)
	if err != nil {
		panic(err)
	}
	return r
}

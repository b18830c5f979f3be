// Command devtoken issues a bearer token for local testing. In production tokens
// come from the company identity provider, signed with the same JWT_SECRET.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"vacation-desk/internal/domain/employee"
	"vacation-desk/internal/pkg/config"
	"vacation-desk/internal/pkg/jwt"

	"github.com/google/uuid"
)

func main() {
	var (
		id    = flag.String("id", "", "employee id (uuid); random when empty")
		name  = flag.String("name", "", "employee name")
		title = flag.String("title", "", "job title")
		role  = flag.String("role", employee.RoleEmployee.String(), "employee or approver")
	)
	flag.Parse()

	if err := run(*id, *name, *title, *role); err != nil {
		slog.Error("failed to issue token", "error", err)
		os.Exit(1)
	}
}

func run(id, name, title, roleName string) error {
	cfg, err := config.LoadJWTConfig()
	if err != nil {
		return err
	}

	employeeID := uuid.New()
	if id != "" {
		if employeeID, err = uuid.Parse(id); err != nil {
			return fmt.Errorf("invalid -id: %w", err)
		}
	}
	role, err := employee.NewRole(roleName)
	if err != nil {
		return err
	}
	requester, err := employee.NewRequester(employeeID, name, title, role)
	if err != nil {
		return err
	}

	token, err := jwt.NewService(cfg.Secret, cfg.Duration).GenerateToken(requester)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}

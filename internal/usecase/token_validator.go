package usecase

import (
	"vacation-desk/internal/domain/employee"
	"vacation-desk/internal/pkg/jwt"
)

// TokenValidator resolves a bearer token into the requester it was issued for.
type TokenValidator interface {
	ValidateToken(tokenString string) (employee.Requester, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (employee.Requester, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return employee.Requester{}, err
	}

	role, err := employee.NewRole(claims.Role)
	if err != nil {
		return employee.Requester{}, err
	}

	return employee.NewRequester(claims.UserID, claims.Name, claims.JobTitle, role)
}

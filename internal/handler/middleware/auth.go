package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"vacation-desk/internal/domain/employee"
	"vacation-desk/internal/handler/httperr"
	"vacation-desk/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxRequesterKey = "requester"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "Access token required")
			return
		}

		requester, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token")
			return
		}

		SetRequester(c, requester)
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(role employee.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		requester, ok := GetRequester(c)
		if !ok {
			httperr.Abort(c, http.StatusInternalServerError, "INTERNAL", "Internal server error")
			return
		}
		if requester.Role() != role {
			httperr.Abort(c, http.StatusForbidden, "FORBIDDEN", "Insufficient permissions")
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

func SetRequester(c *gin.Context, r employee.Requester) {
	c.Set(ctxRequesterKey, r)
}

func GetRequester(c *gin.Context) (employee.Requester, bool) {
	v, exists := c.Get(ctxRequesterKey)
	if !exists {
		return employee.Requester{}, false
	}
	r, ok := v.(employee.Requester)
	return r, ok
}

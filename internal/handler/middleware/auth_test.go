//go:build unit

package middleware_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"vacation-desk/internal/domain/employee"
	"vacation-desk/internal/handler/middleware"
	"vacation-desk/internal/pkg/config"
	"vacation-desk/internal/usecase"
	"vacation-desk/tests/common/authtest"
	"vacation-desk/tests/common/builder"
	"vacation-desk/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *authtest.JWTHelper) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	helper := authtest.NewJWTHelper(config.NewTestConfig().JWT)
	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(helper.Service()))

	router := gin.New()
	whoami := func(c *gin.Context) {
		r, ok := middleware.GetRequester(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": r.ID().String(), "name": r.Name(), "role": r.Role().String()})
	}
	router.GET("/me", auth.RequireAuth(), whoami)
	router.GET("/approvals", auth.RequireAuth(), auth.RequireRole(employee.RoleApprover), whoami)
	return router, helper
}

func TestRequireAuth(t *testing.T) {
	router, helper := newAuthRouter(t)
	emp := builder.NewEmployeeBuilder().BuildDomain()

	t.Run("valid token exposes the requester", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, helper.GenerateToken(t, emp))

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, emp.ID().String(), body["id"])
		assert.Equal(t, "Ana Souza", body["name"])
		assert.Equal(t, "employee", body["role"])
	})

	cases := []struct {
		name  string
		token string
		msg   string
	}{
		{name: "missing token", token: "", msg: "Access token required"},
		{name: "garbage token", token: "not.a.jwt", msg: "Invalid or expired token"},
		{name: "expired token", token: helper.CreateExpiredToken(t, emp), msg: "Invalid or expired token"},
		{name: "token signed with another secret", token: mustToken(t, "other-secret", emp), msg: "Invalid or expired token"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, tc.token)
			httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "UNAUTHORIZED", tc.msg)
		})
	}

	t.Run("non-bearer scheme is rejected", func(t *testing.T) {
		req := nethttptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Basic "+helper.GenerateToken(t, emp))
		rec := nethttptest.NewRecorder()
		router.ServeHTTP(rec, req)

		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "UNAUTHORIZED", "Access token required")
	})
}

func TestRequireRole(t *testing.T) {
	router, helper := newAuthRouter(t)

	t.Run("approver passes", func(t *testing.T) {
		approver := builder.NewApproverBuilder().BuildDomain()
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/approvals", nil, helper.GenerateToken(t, approver))
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
	})

	t.Run("employee is forbidden", func(t *testing.T) {
		emp := builder.NewEmployeeBuilder().BuildDomain()
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/approvals", nil, helper.GenerateToken(t, emp))
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "FORBIDDEN", "Insufficient permissions")
	})
}

func mustToken(t *testing.T, secret string, r employee.Requester) string {
	t.Helper()
	cfg := config.NewTestConfig().JWT
	cfg.Secret = secret
	return authtest.NewJWTHelper(cfg).GenerateToken(t, r)
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/usermgmt/user-management-api/internal/core/domain"
)

func invokeRequireAdmin(t *testing.T, user *domain.User) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/admin/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		SetCurrentUser(c, user)
	}

	handler := RequireAdmin()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return handler(c)
}

func TestRequireAdmin_AdminPasses(t *testing.T) {
	admin := &domain.User{ID: "a1", Role: domain.RoleAdmin, IsActive: true}
	if err := invokeRequireAdmin(t, admin); err != nil {
		t.Fatalf("expected passthrough for admin, got %v", err)
	}
}

func TestRequireAdmin_RegularUserForbidden(t *testing.T) {
	user := &domain.User{ID: "u1", Role: domain.RoleUser, IsActive: true}
	err := invokeRequireAdmin(t, user)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for regular user, got %v", err)
	}
}

func TestRequireAdmin_MissingUser(t *testing.T) {
	err := invokeRequireAdmin(t, nil)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 when no user is in context, got %v", err)
	}
}

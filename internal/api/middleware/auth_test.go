package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/usermgmt/user-management-api/internal/core/domain"
	"github.com/usermgmt/user-management-api/internal/core/ports"
	"github.com/usermgmt/user-management-api/internal/core/service"
)

// stubAuthService resolves token subjects from a fixed user set.
type stubAuthService struct {
	users map[string]*domain.User
}

func (s *stubAuthService) Register(context.Context, ports.RegisterInput) (*domain.User, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAuthService) Login(context.Context, string, string) (string, *domain.User, error) {
	return "", nil, errors.New("not implemented")
}

func (s *stubAuthService) CurrentUser(_ context.Context, id string) (*domain.User, error) {
	user, ok := s.users[id]
	if !ok || !user.IsActive {
		return nil, domain.ErrUnauthenticated
	}
	return user, nil
}

func (s *stubAuthService) UpdateProfile(context.Context, string, ports.UpdateUserInput) (*domain.User, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAuthService) Deactivate(context.Context, string) error { return errors.New("not implemented") }

func (s *stubAuthService) ListUsers(context.Context) ([]*domain.User, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAuthService) DeleteUser(context.Context, string) error { return errors.New("not implemented") }

func newAuthFixture(t *testing.T) (ports.TokenService, *stubAuthService, *domain.User) {
	t.Helper()
	user := &domain.User{
		ID:       "64a7f1e2c3b4d5e6f7a8b9c0",
		Email:    "alice@example.com",
		Role:     domain.RoleUser,
		IsActive: true,
	}
	tokens := service.NewTokenService("test-secret", time.Hour, nil)
	auth := &stubAuthService{users: map[string]*domain.User{user.ID: user}}
	return tokens, auth, user
}

// invoke runs the Auth middleware around a trivial handler and reports the
// resulting error plus whether the user landed in the context.
func invoke(t *testing.T, tokens ports.TokenService, auth ports.AuthService, header string) (*domain.User, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var resolved *domain.User
	handler := Auth(tokens, auth)(func(c echo.Context) error {
		resolved, _ = CurrentUser(c)
		return c.NoContent(http.StatusOK)
	})
	err := handler(c)
	return resolved, err
}

func TestAuth_ValidToken(t *testing.T) {
	tokens, auth, user := newAuthFixture(t)

	token, err := tokens.Issue(user)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	resolved, err := invoke(t, tokens, auth, "Bearer "+token)
	if err != nil {
		t.Fatalf("expected passthrough, got %v", err)
	}
	if resolved == nil || resolved.ID != user.ID {
		t.Fatalf("expected user in context, got %+v", resolved)
	}
}

func TestAuth_LowercaseScheme(t *testing.T) {
	tokens, auth, user := newAuthFixture(t)
	token, _ := tokens.Issue(user)

	if _, err := invoke(t, tokens, auth, "bearer "+token); err != nil {
		t.Fatalf("scheme comparison must be case-insensitive, got %v", err)
	}
}

func TestAuth_Rejections(t *testing.T) {
	tokens, auth, user := newAuthFixture(t)
	otherSecret := service.NewTokenService("other-secret", time.Hour, nil)
	foreign, _ := otherSecret.Issue(user)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"no scheme", "sometoken"},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"garbage token", "Bearer not-a-jwt"},
		{"wrong signing key", "Bearer " + foreign},
	}

	for _, tc := range cases {
		resolved, err := invoke(t, tokens, auth, tc.header)
		httpErr, ok := err.(*echo.HTTPError)
		if !ok || httpErr.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected 401, got %v", tc.name, err)
		}
		if resolved != nil {
			t.Errorf("%s: user must not reach context", tc.name)
		}
	}
}

func TestAuth_SubjectGone(t *testing.T) {
	tokens, auth, user := newAuthFixture(t)
	token, _ := tokens.Issue(user)

	delete(auth.users, user.ID)

	_, err := invoke(t, tokens, auth, "Bearer "+token)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for vanished subject, got %v", err)
	}
}

func TestAuth_SubjectDeactivated(t *testing.T) {
	tokens, auth, user := newAuthFixture(t)
	token, _ := tokens.Issue(user)

	user.IsActive = false

	_, err := invoke(t, tokens, auth, "Bearer "+token)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for deactivated subject, got %v", err)
	}
}

package ports

import (
	"context"

	"github.com/usermgmt/user-management-api/internal/core/domain"
)

// RegisterInput carries all data needed to create a new account.
// Role is the raw string from the request; the service validates it.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
}

// AuthService defines the credential and account lifecycle.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login returns a signed bearer token and the authenticated user.
	// Unknown email, wrong password and inactive account are all reported
	// as domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// CurrentUser resolves a verified token subject to a live account.
	// Fails with domain.ErrUnauthenticated when the user is gone or inactive.
	CurrentUser(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	// Deactivate soft-deletes the account; the row is kept for audit.
	Deactivate(ctx context.Context, id string) error
	ListUsers(ctx context.Context) ([]*domain.User, error)
	// DeleteUser removes the account row entirely. Admin-only caller context.
	DeleteUser(ctx context.Context, id string) error
}

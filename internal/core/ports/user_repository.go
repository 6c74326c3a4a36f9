package ports

import (
	"context"

	"github.com/usermgmt/user-management-api/internal/core/domain"
)

// UpdateUserInput carries a partial user update. Nil fields are left
// untouched by the repository.
type UpdateUserInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Role      *domain.Role
}

// UserRepository defines the persistence operations the credential
// store requires from its backing storage.
type UserRepository interface {
	// FindByEmail performs an exact-match lookup, case-sensitive as stored.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Create fails with domain.ErrUserExists when the email is already present.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// Update applies only the present fields; domain.ErrUserNotFound if unknown.
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	// SoftDelete sets is_active=false. Idempotent for already-inactive users.
	SoftDelete(ctx context.Context, id string) error
	// HardDelete removes the row entirely; domain.ErrUserNotFound if unknown.
	HardDelete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.User, error)
}

package ports

import (
	"context"

	"github.com/usermgmt/user-management-api/internal/core/domain"
)

// Caller identifies the authenticated user performing an operation.
// The ownership policy is evaluated against it on every call.
type Caller struct {
	UserID string
	Role   domain.Role
}

// ProductInput carries the writable fields of a product.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
}

// ProductService defines use-case operations for products. All reads and
// writes are gated by the owner-or-admin policy; existence is checked
// before ownership, so a missing id is always reported as not found.
type ProductService interface {
	List(ctx context.Context, caller Caller, category string) ([]*domain.Product, error)
	Get(ctx context.Context, caller Caller, id int) (*domain.Product, error)
	Create(ctx context.Context, caller Caller, input ProductInput) (*domain.Product, error)
	Update(ctx context.Context, caller Caller, id int, input ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, caller Caller, id int) error
}

package ports

import (
	"context"

	"github.com/usermgmt/user-management-api/internal/core/domain"
)

// ListProductsFilter carries the query parameters for listing products.
// OwnerID is enforced by the service layer: empty = no filter (admin),
// non-empty = scoped to that owner.
type ListProductsFilter struct {
	OwnerID  string
	Category string // optional, matched case-insensitively
}

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	FindByID(ctx context.Context, id int) (*domain.Product, error)
	List(ctx context.Context, filter ListProductsFilter) ([]*domain.Product, error)
	// Create assigns the next identity and stores the product.
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id int) error
}

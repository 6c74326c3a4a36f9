package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/usermgmt/user-management-api/internal/core/domain"
	"github.com/usermgmt/user-management-api/internal/core/ports"
)

// ProductService implements product use-cases with the owner-or-admin
// policy evaluated on every operation.
type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

// List returns products visible to the caller. Non-admins only see their
// own products; the scoping happens in the repository filter so an
// unauthorized product never leaves storage.
func (s *ProductService) List(ctx context.Context, caller ports.Caller, category string) ([]*domain.Product, error) {
	filter := ports.ListProductsFilter{Category: category}
	if caller.Role != domain.RoleAdmin {
		filter.OwnerID = caller.UserID
	}
	return s.repo.List(ctx, filter)
}

// Get retrieves a single product. Existence is checked before ownership,
// so a missing id is reported as not found even to callers who would not
// have been allowed to see it.
func (s *ProductService) Get(ctx context.Context, caller ports.Caller, id int) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(caller, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Create stores a new product owned by the caller.
func (s *ProductService) Create(ctx context.Context, caller ports.Caller, input ports.ProductInput) (*domain.Product, error) {
	product := &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		OwnerID:     caller.UserID,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("product_id", created.ID).Str("owner_id", created.OwnerID).Msg("product created")
	return created, nil
}

// Update replaces the writable fields of a product the caller may act on.
func (s *ProductService) Update(ctx context.Context, caller ports.Caller, id int, input ports.ProductInput) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(caller, product); err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Category = input.Category

	updated, err := s.repo.Update(ctx, product)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("product_id", id).Msg("product updated")
	return updated, nil
}

// Delete removes a product the caller may act on.
func (s *ProductService) Delete(ctx context.Context, caller ports.Caller, id int) error {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorize(caller, product); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int("product_id", id).Msg("product deleted")
	return nil
}

// authorize applies the ownership rule: admins act on anything, everyone
// else only on products they own.
func (s *ProductService) authorize(caller ports.Caller, product *domain.Product) error {
	if caller.Role == domain.RoleAdmin {
		return nil
	}
	if product.OwnerID != caller.UserID {
		return domain.ErrForbidden
	}
	return nil
}

// Package memory provides the transient, non-authoritative product store.
// It exists to demonstrate ownership-based authorization; nothing here
// survives a restart.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/usermgmt/user-management-api/internal/core/domain"
	"github.com/usermgmt/user-management-api/internal/core/ports"
)

// ProductRepository is an in-memory ports.ProductRepository. All access is
// guarded by a RWMutex so concurrent request handling is safe.
type ProductRepository struct {
	mu       sync.RWMutex
	products map[int]*domain.Product
	nextID   int
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		products: make(map[int]*domain.Product),
		nextID:   1,
	}
}

func (r *ProductRepository) FindByID(_ context.Context, id int) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *ProductRepository) List(_ context.Context, filter ports.ListProductsFilter) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*domain.Product, 0)
	for _, p := range r.products {
		if filter.OwnerID != "" && p.OwnerID != filter.OwnerID {
			continue
		}
		if filter.Category != "" && !strings.EqualFold(p.Category, filter.Category) {
			continue
		}
		clone := *p
		matched = append(matched, &clone)
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched, nil
}

func (r *ProductRepository) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *p
	clone.ID = r.nextID
	r.nextID++
	r.products[clone.ID] = &clone

	result := clone
	return &result, nil
}

func (r *ProductRepository) Update(_ context.Context, p *domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[p.ID]; !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	r.products[p.ID] = &clone

	result := clone
	return &result, nil
}

func (r *ProductRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

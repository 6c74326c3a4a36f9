package service

import (
	"context"
	"testing"

	"github.com/usermgmt/user-management-api/internal/core/domain"
	"github.com/usermgmt/user-management-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubProductRepo struct {
	products map[int]*domain.Product
	nextID   int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[int]*domain.Product), nextID: 1}
}

func cloneProduct(p *domain.Product) *domain.Product {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

func (r *stubProductRepo) FindByID(_ context.Context, id int) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return cloneProduct(p), nil
}

func (r *stubProductRepo) List(_ context.Context, filter ports.ListProductsFilter) ([]*domain.Product, error) {
	out := make([]*domain.Product, 0)
	for id := 1; id < r.nextID; id++ {
		p, ok := r.products[id]
		if !ok {
			continue
		}
		if filter.OwnerID != "" && p.OwnerID != filter.OwnerID {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		out = append(out, cloneProduct(p))
	}
	return out, nil
}

func (r *stubProductRepo) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	clone := cloneProduct(product)
	clone.ID = r.nextID
	r.nextID++
	r.products[clone.ID] = cloneProduct(clone)
	return clone, nil
}

func (r *stubProductRepo) Update(_ context.Context, product *domain.Product) (*domain.Product, error) {
	if _, ok := r.products[product.ID]; !ok {
		return nil, domain.ErrProductNotFound
	}
	r.products[product.ID] = cloneProduct(product)
	return cloneProduct(product), nil
}

func (r *stubProductRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var (
	ownerCaller = ports.Caller{UserID: "owner-1", Role: domain.RoleUser}
	otherCaller = ports.Caller{UserID: "other-2", Role: domain.RoleUser}
	adminCaller = ports.Caller{UserID: "admin-9", Role: domain.RoleAdmin}
)

func seedProduct(t *testing.T, svc *ProductService, caller ports.Caller, name, category string) *domain.Product {
	t.Helper()
	product, err := svc.Create(context.Background(), caller, ports.ProductInput{
		Name:        name,
		Description: "test item",
		Price:       99.50,
		Category:    category,
	})
	if err != nil {
		t.Fatalf("seeding product failed: %v", err)
	}
	return product
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestProductService_Create(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), discardLogger)

	product := seedProduct(t, svc, ownerCaller, "Keyboard", "Electronics")
	if product.ID == 0 {
		t.Fatal("expected an assigned id")
	}
	if product.OwnerID != ownerCaller.UserID {
		t.Fatalf("owner must be the caller, got %q", product.OwnerID)
	}
	if product.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be set")
	}
}

func TestProductService_Get_Owner(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), discardLogger)
	product := seedProduct(t, svc, ownerCaller, "Keyboard", "Electronics")

	got, err := svc.Get(context.Background(), ownerCaller, product.ID)
	if err != nil {
		t.Fatalf("owner read failed: %v", err)
	}
	if got.Name != "Keyboard" {
		t.Fatalf("wrong product: %s", got.Name)
	}
}

func TestProductService_Get_NonOwnerForbidden(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), discardLogger)
	product := seedProduct(t, svc, ownerCaller, "Keyboard", "Electronics")

	if _, err := svc.Get(context.Background(), otherCaller, product.ID); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestProductService_Get_AdminBypass(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), discardLogger)
	product := seedProduct(t, svc, ownerCaller, "Keyboard", "Electronics")

	if _, err := svc.Get(context.Background(), adminCaller, product.ID); err != nil {
		t.Fatalf("admin must read any product, got %v", err)
	}
}

// A missing product reports not-found to everyone, including callers who
// would have been forbidden had it existed. Probing ids must not reveal
// which ones exist.
func TestProductService_MissingBeatsForbidden(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), discardLogger)

	if _, err := svc.Get(context.Background(), otherCaller, 404); err != domain.ErrProductNotFound {
		t.Errorf("Get: expected ErrProductNotFound, got %v", err)
	}
	input := ports.ProductInput{Name: "X", Description: "d", Price: 1, Category: "c"}
	if _, err := svc.Update(context.Background(), otherCaller, 404, input); err != domain.ErrProductNotFound {
		t.Errorf("Update: expected ErrProductNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), otherCaller, 404); err != domain.ErrProductNotFound {
		t.Errorf("Delete: expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_Update(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), discardLogger)
	product := seedProduct(t, svc, ownerCaller, "Keyboard", "Electronics")

	updated, err := svc.Update(context.Background(), ownerCaller, product.ID, ports.ProductInput{
		Name:        "Mechanical Keyboard",
		Description: "tactile switches",
		Price:       120,
		Category:    "Electronics",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Mechanical Keyboard" || updated.Price != 120 {
		t.Fatalf("fields not replaced: %+v", updated)
	}
	if updated.OwnerID != ownerCaller.UserID {
		t.Fatal("ownership must survive updates")
	}
}

func TestProductService_Update_NonOwnerForbidden(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), discardLogger)
	product := seedProduct(t, svc, ownerCaller, "Keyboard", "Electronics")

	input := ports.ProductInput{Name: "Hijacked", Description: "d", Price: 1, Category: "c"}
	if _, err := svc.Update(context.Background(), otherCaller, product.ID, input); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	// And the product is untouched.
	got, _ := svc.Get(context.Background(), ownerCaller, product.ID)
	if got.Name != "Keyboard" {
		t.Fatalf("forbidden update must not mutate, got %s", got.Name)
	}
}

func TestProductService_Delete(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), discardLogger)
	product := seedProduct(t, svc, ownerCaller, "Keyboard", "Electronics")

	if err := svc.Delete(context.Background(), ownerCaller, product.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), ownerCaller, product.ID); err != domain.ErrProductNotFound {
		t.Fatalf("expected product gone, got %v", err)
	}
}

func TestProductService_Delete_NonOwnerForbidden(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), discardLogger)
	product := seedProduct(t, svc, ownerCaller, "Keyboard", "Electronics")

	if err := svc.Delete(context.Background(), otherCaller, product.ID); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestProductService_Delete_AdminBypass(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), discardLogger)
	product := seedProduct(t, svc, ownerCaller, "Keyboard", "Electronics")

	if err := svc.Delete(context.Background(), adminCaller, product.ID); err != nil {
		t.Fatalf("admin must delete any product, got %v", err)
	}
}

func TestProductService_List_ScopedToOwner(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), discardLogger)
	seedProduct(t, svc, ownerCaller, "Keyboard", "Electronics")
	seedProduct(t, svc, ownerCaller, "Novel", "Books")
	seedProduct(t, svc, otherCaller, "Blender", "Appliances")

	mine, err := svc.List(context.Background(), ownerCaller, "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 owned products, got %d", len(mine))
	}
	for _, p := range mine {
		if p.OwnerID != ownerCaller.UserID {
			t.Fatalf("leaked foreign product %d", p.ID)
		}
	}
}

func TestProductService_List_AdminSeesAll(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), discardLogger)
	seedProduct(t, svc, ownerCaller, "Keyboard", "Electronics")
	seedProduct(t, svc, otherCaller, "Blender", "Appliances")

	all, err := svc.List(context.Background(), adminCaller, "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("admin must see every product, got %d", len(all))
	}
}

func TestProductService_List_CategoryFilter(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), discardLogger)
	seedProduct(t, svc, ownerCaller, "Keyboard", "Electronics")
	seedProduct(t, svc, ownerCaller, "Novel", "Books")

	books, err := svc.List(context.Background(), ownerCaller, "Books")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(books) != 1 || books[0].Name != "Novel" {
		t.Fatalf("category filter broken: %+v", books)
	}
}

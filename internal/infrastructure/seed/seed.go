// Package seed provisions demo accounts and products so the API is usable
// out of the box in development. Seeding is idempotent: existing accounts
// are left untouched.
package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/usermgmt/user-management-api/internal/core/domain"
	"github.com/usermgmt/user-management-api/internal/core/ports"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "admin123"
	userEmail     = "user@example.com"
	userPassword  = "user123"
)

// Seeder creates the demo fixtures through the same services the API uses,
// so seeded data obeys every invariant the services enforce.
type Seeder struct {
	auth     ports.AuthService
	users    ports.UserRepository
	products ports.ProductRepository
	log      zerolog.Logger
}

func New(auth ports.AuthService, users ports.UserRepository, products ports.ProductRepository, log zerolog.Logger) *Seeder {
	return &Seeder{auth: auth, users: users, products: products, log: log}
}

// Run creates the demo admin and regular user if absent, then the demo
// product catalog owned by them.
func (s *Seeder) Run(ctx context.Context) error {
	admin, err := s.ensureUser(ctx, ports.RegisterInput{
		FirstName: "Admin",
		LastName:  "User",
		Email:     adminEmail,
		Password:  adminPassword,
		Role:      string(domain.RoleAdmin),
	})
	if err != nil {
		return err
	}

	regular, err := s.ensureUser(ctx, ports.RegisterInput{
		FirstName: "Regular",
		LastName:  "User",
		Email:     userEmail,
		Password:  userPassword,
		Role:      string(domain.RoleUser),
	})
	if err != nil {
		return err
	}

	s.seedProducts(ctx, admin.ID, regular.ID)

	s.log.Info().Msg("demo data seeded")
	return nil
}

func (s *Seeder) ensureUser(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	created, err := s.auth.Register(ctx, input)
	if err == nil {
		return created, nil
	}
	if errors.Is(err, domain.ErrUserExists) {
		return s.users.FindByEmail(ctx, input.Email)
	}
	return nil, err
}

func (s *Seeder) seedProducts(ctx context.Context, adminID, userID string) {
	demo := []*domain.Product{
		{Name: "Lenovo ThinkPad laptop", Description: "Business laptop for professionals", Price: 85000, Category: "Electronics", OwnerID: adminID},
		{Name: "Samsung Galaxy smartphone", Description: "Flagship smartphone with a great camera", Price: 45000, Category: "Electronics", OwnerID: userID},
		{Name: "DeLonghi coffee machine", Description: "Automatic coffee machine for home use", Price: 25000, Category: "Appliances", OwnerID: adminID},
		{Name: "Programming for Beginners", Description: "Introductory programming textbook", Price: 1200, Category: "Books", OwnerID: userID},
	}

	for _, p := range demo {
		if _, err := s.products.Create(ctx, p); err != nil {
			s.log.Warn().Err(err).Str("name", p.Name).Msg("failed to seed product")
		}
	}
}

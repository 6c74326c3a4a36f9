package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/usermgmt/user-management-api/internal/core/domain"
	"github.com/usermgmt/user-management-api/internal/core/ports"
)

// dummyHash is compared against when a login email is unknown, so the
// unknown-email path costs roughly the same as a real password check.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("login-timing-pad"), bcrypt.DefaultCost)

// AuthService implements the credential and account lifecycle.
type AuthService struct {
	repo   ports.UserRepository
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, logger: logger}
}

// Register creates a new account. The password arrives pre-validated by the
// transport layer (presence, confirmation match); role strings are validated
// here so no unrecognized value ever reaches storage.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	role, err := domain.ParseRole(input.Role)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("account created")
	return created, nil
}

// Login authenticates an email/password pair and mints a bearer token.
// Unknown email, wrong password and inactive account are indistinguishable
// to the caller: same error, same response shape, comparable latency.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		// Burn a compare so this path is not measurably faster.
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return "", nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if !user.IsActive {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("login succeeded")
	return token, user, nil
}

// CurrentUser resolves a verified token subject to a live account. The token
// may outlive the account: a vanished or deactivated subject fails here.
func (s *AuthService) CurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}
	if !user.IsActive {
		return nil, domain.ErrUnauthenticated
	}
	return user, nil
}

// UpdateProfile applies only the present fields to the user's own record.
func (s *AuthService) UpdateProfile(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	updated, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", id).Msg("profile updated")
	return updated, nil
}

// Deactivate soft-deletes the account. The row remains so referential
// history stays intact; the user simply stops authenticating.
func (s *AuthService) Deactivate(ctx context.Context, id string) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("account deactivated")
	return nil
}

func (s *AuthService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

// DeleteUser removes the account row entirely. Only reachable through the
// admin-gated route.
func (s *AuthService) DeleteUser(ctx context.Context, id string) error {
	if err := s.repo.HardDelete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("account hard-deleted")
	return nil
}

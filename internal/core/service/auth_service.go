package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mahndi/payment-api/internal/api/metrics"
	"github.com/mahndi/payment-api/internal/core/domain"
	"github.com/mahndi/payment-api/internal/core/ports"
)

// bcryptCost matches the work factor used by the previous backend so old
// and new hashes stay interchangeable.
const bcryptCost = 10

// AuthService implements stateless registration and login.
type AuthService struct {
	repo   ports.AccountRepository
	logger zerolog.Logger
}

func NewAuthService(repo ports.AccountRepository, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, logger: logger}
}

// Register creates a new account. The email must not already be taken.
// Only the public projection is returned; the hash never leaves the
// service layer.
func (s *AuthService) Register(ctx context.Context, email, phone, password string) (*domain.AccountPublic, error) {
	if email == "" || phone == "" || password == "" {
		return nil, domain.ErrMissingFields
	}

	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return nil, domain.ErrAccountExists
	}
	if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Email:        email,
		Phone:        phone,
		PasswordHash: string(hash),
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to create account")
		return nil, err
	}

	metrics.AccountsRegisteredTotal.Inc()
	s.logger.Info().Str("email", email).Msg("account registered")

	public := created.Public()
	return &public, nil
}

// Login checks the supplied password against the stored hash. On success
// the account's public fields are returned. No token is issued.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.AccountPublic, error) {
	if email == "" || password == "" {
		return nil, domain.ErrMissingFields
	}

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("not_found").Inc()
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("bad_password").Inc()
		return nil, domain.ErrIncorrectPassword
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()

	public := account.Public()
	return &public, nil
}

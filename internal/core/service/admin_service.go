package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mahndi/payment-api/internal/api/metrics"
	"github.com/mahndi/payment-api/internal/core/domain"
	"github.com/mahndi/payment-api/internal/core/ports"
)

// AdminService implements back-office operations over accounts.
type AdminService struct {
	repo   ports.AccountRepository
	logger zerolog.Logger
}

func NewAdminService(repo ports.AccountRepository, logger zerolog.Logger) *AdminService {
	return &AdminService{repo: repo, logger: logger}
}

// ListAccounts returns every account projected to {email, phone}.
// The credential hash never appears in the result shape.
func (s *AdminService) ListAccounts(ctx context.Context) ([]domain.AccountPublic, error) {
	accounts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.AccountPublic, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, a.Public())
	}
	return out, nil
}

// DeleteAccount permanently removes an account by id. Orders keyed by the
// account's email snapshot are left untouched.
func (s *AdminService) DeleteAccount(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.AccountsDeletedTotal.Inc()
	s.logger.Info().Str("account_id", id).Msg("account deleted")
	return nil
}

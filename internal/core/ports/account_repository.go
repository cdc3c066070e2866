package ports

import (
	"context"

	"github.com/mahndi/payment-api/internal/core/domain"
)

// AccountRepository defines persistence operations for registered accounts.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	// List returns every account. Callers are responsible for projecting
	// away the credential fields before serialization.
	List(ctx context.Context) ([]*domain.Account, error)
	Delete(ctx context.Context, id string) error
}

package ports

import (
	"context"

	"github.com/mahndi/payment-api/internal/core/domain"
)

// AdminService defines back-office operations over accounts.
type AdminService interface {
	// ListAccounts returns every account projected to {email, phone}.
	ListAccounts(ctx context.Context) ([]domain.AccountPublic, error)
	// DeleteAccount permanently removes an account. Orders referencing
	// the account's email are unaffected.
	DeleteAccount(ctx context.Context, id string) error
}

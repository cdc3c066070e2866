package ports

import (
	"context"

	"github.com/mahndi/payment-api/internal/core/domain"
)

// AuthService implements stateless registration and login.
// No session or token is issued: callers re-authenticate on every
// privileged call.
type AuthService interface {
	Register(ctx context.Context, email, phone, password string) (*domain.AccountPublic, error)
	Login(ctx context.Context, email, password string) (*domain.AccountPublic, error)
}

package ports

import (
	"context"

	"github.com/mahndi/payment-api/internal/core/domain"
)

// OrderRepository defines persistence operations for payment orders.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	// FindByEmail returns all orders whose email matches exactly,
	// sorted by createdAt descending (most recent first).
	FindByEmail(ctx context.Context, email string) ([]*domain.Order, error)
	// FindByStatus returns all orders with the given status,
	// sorted by createdAt descending.
	FindByStatus(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	// UpdateStatus overwrites the order's status unconditionally.
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
}

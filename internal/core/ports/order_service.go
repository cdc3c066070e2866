package ports

import (
	"context"

	"github.com/mahndi/payment-api/internal/core/domain"
)

// SubmitOrderInput carries all data needed to submit a payment order.
// All fields are required; a zero quantity or price is treated the same
// as a missing field.
type SubmitOrderInput struct {
	ProductID   string
	ProductName string
	Email       string
	Phone       string
	Quantity    int
	Price       float64
	Address     string
	// IdempotencyKey is optional. When set and already seen, the
	// submission is acknowledged without inserting a second order.
	IdempotencyKey string
}

// SubmitOrderResult is returned by the service after a submission.
type SubmitOrderResult struct {
	// AlreadyExisted is true when the idempotency key matched a
	// previous submission and no new order was inserted.
	AlreadyExisted bool
}

// OrderService defines use-case operations over payment orders:
// intake, querying and the status pipeline.
type OrderService interface {
	Submit(ctx context.Context, input SubmitOrderInput) (*SubmitOrderResult, error)
	ListByEmail(ctx context.Context, email string) ([]*domain.Order, error)
	ListByStatus(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error)
	Accept(ctx context.Context, id string) error
	Deliver(ctx context.Context, id string) error
}

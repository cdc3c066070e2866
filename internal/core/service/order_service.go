package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/mahndi/payment-api/internal/api/metrics"
	"github.com/mahndi/payment-api/internal/core/domain"
	"github.com/mahndi/payment-api/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis). A nil checker
// disables deduplication entirely.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, key string) (bool, error)
	Mark(ctx context.Context, key string) error
}

// OrderService implements order intake, querying and the status pipeline.
type OrderService struct {
	repo   ports.OrderRepository
	dedup  DedupChecker
	logger zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, dedup DedupChecker, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, dedup: dedup, logger: logger}
}

// Submit validates and persists a new order with status pending.
// A zero quantity or price is rejected the same as a missing field.
// When an idempotency key is provided and already seen, the submission
// is acknowledged without inserting a second order.
func (s *OrderService) Submit(ctx context.Context, input ports.SubmitOrderInput) (*ports.SubmitOrderResult, error) {
	if input.ProductID == "" || input.ProductName == "" || input.Email == "" ||
		input.Phone == "" || input.Address == "" || input.Quantity == 0 || input.Price == 0 {
		metrics.OrdersSubmittedTotal.WithLabelValues("invalid").Inc()
		return nil, domain.ErrMissingFields
	}

	if s.dedup != nil && input.IdempotencyKey != "" {
		isDup, err := s.dedup.IsDuplicate(ctx, input.IdempotencyKey)
		if err != nil {
			s.logger.Warn().Err(err).Str("key", input.IdempotencyKey).Msg("dedup check failed, processing anyway")
		} else if isDup {
			s.logger.Info().Str("key", input.IdempotencyKey).Msg("idempotent replay")
			metrics.OrdersSubmittedTotal.WithLabelValues("replay").Inc()
			return &ports.SubmitOrderResult{AlreadyExisted: true}, nil
		}
	}

	order := &domain.Order{
		ProductID:   input.ProductID,
		ProductName: input.ProductName,
		Email:       input.Email,
		Phone:       input.Phone,
		Quantity:    input.Quantity,
		Price:       input.Price,
		Address:     input.Address,
		Status:      domain.StatusPending,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Str("email", input.Email).Msg("failed to create order")
		metrics.OrdersSubmittedTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	if s.dedup != nil && input.IdempotencyKey != "" {
		if err := s.dedup.Mark(ctx, input.IdempotencyKey); err != nil {
			s.logger.Warn().Err(err).Str("key", input.IdempotencyKey).Msg("failed to set dedup key")
		}
	}

	metrics.OrdersSubmittedTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("email", input.Email).Str("product_id", input.ProductID).Msg("order submitted")

	return &ports.SubmitOrderResult{}, nil
}

// ListByEmail returns a customer's orders, most recent first.
func (s *OrderService) ListByEmail(ctx context.Context, email string) ([]*domain.Order, error) {
	if email == "" {
		return nil, domain.ErrMissingFields
	}
	return s.repo.FindByEmail(ctx, email)
}

// ListByStatus returns all orders in the given pipeline state.
func (s *OrderService) ListByStatus(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error) {
	return s.repo.FindByStatus(ctx, status)
}

// Accept moves an order to accepted.
func (s *OrderService) Accept(ctx context.Context, id string) error {
	return s.transition(ctx, id, domain.StatusAccepted)
}

// Deliver moves an order to delivered.
func (s *OrderService) Deliver(ctx context.Context, id string) error {
	return s.transition(ctx, id, domain.StatusDelivered)
}

// transition overwrites the order's status unconditionally, preserving
// the permissive behavior of the previous backend. A write that violates
// the forward-only pipeline is logged but not rejected.
func (s *OrderService) transition(ctx context.Context, id string, next domain.OrderStatus) error {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !order.Status.CanTransitionTo(next) {
		s.logger.Warn().
			Str("order_id", id).
			Str("from", string(order.Status)).
			Str("to", string(next)).
			Msg("status overwrite outside the forward pipeline")
	}

	if err := s.repo.UpdateStatus(ctx, id, next); err != nil {
		return err
	}

	metrics.OrderTransitionsTotal.WithLabelValues(string(next)).Inc()
	s.logger.Info().Str("order_id", id).Str("status", string(next)).Msg("order status updated")
	return nil
}

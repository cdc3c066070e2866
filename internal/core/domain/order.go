package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the lifecycle state of a payment order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusAccepted  OrderStatus = "accepted"
	StatusDelivered OrderStatus = "delivered"
)

// validTransitions defines the forward-only status pipeline.
// There is no rejection or cancellation state and no rollback.
var validTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:  {StatusAccepted},
	StatusAccepted: {StatusDelivered},
}

var ErrOrderNotFound = errors.New("order not found")
var ErrMissingFields = errors.New("missing required fields")
var ErrAccountNotFound = errors.New("account not found")
var ErrAccountExists = errors.New("account already exists")
var ErrIncorrectPassword = errors.New("incorrect password")

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Valid reports whether s is one of the three known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusDelivered:
		return true
	}
	return false
}

// Order is a submitted payment record with delivery info and a status.
// Field names stay camelCase on the wire to remain compatible with the
// documents written by the previous backend.
type Order struct {
	ID          string      `json:"_id,omitempty"`
	ProductID   string      `json:"productId"`
	ProductName string      `json:"productName"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Quantity    int         `json:"quantity"`
	Price       float64     `json:"price"`
	Address     string      `json:"address"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
}

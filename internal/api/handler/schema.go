package handler

import (
	"github.com/mahndi/payment-api/internal/core/domain"
)

// messageResponse is the plain success/failure envelope.
type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// --- Request types ---

type registerRequest struct {
	Email    string `json:"email"    validate:"required"`
	Phone    string `json:"phone"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// submitPaymentRequest carries the payment form fields. All fields are
// required; a zero quantity or price fails the required check, matching
// the presence-only validation contract.
type submitPaymentRequest struct {
	ProductID   string  `json:"productId"   validate:"required"`
	ProductName string  `json:"productName" validate:"required"`
	Email       string  `json:"email"       validate:"required"`
	Phone       string  `json:"phone"       validate:"required"`
	Quantity    int     `json:"quantity"    validate:"required"`
	Price       float64 `json:"price"       validate:"required"`
	Address     string  `json:"address"     validate:"required"`
}

// --- Response types ---

type userResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message,omitempty"`
	User    domain.AccountPublic `json:"user"`
}

type usersResponse struct {
	Success bool                   `json:"success"`
	Users   []domain.AccountPublic `json:"users"`
}

type ordersResponse struct {
	Success bool            `json:"success"`
	Orders  []*domain.Order `json:"orders"`
}

// requestsResponse is the admin view of orders; the legacy API calls
// them "requests".
type requestsResponse struct {
	Success  bool            `json:"success"`
	Requests []*domain.Order `json:"requests"`
}

package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mahndi/payment-api/internal/core/domain"
	"github.com/mahndi/payment-api/internal/core/ports"
)

// OrderHandler handles payment submission and customer order queries.
type OrderHandler struct {
	orderService ports.OrderService
}

func NewOrderHandler(orderService ports.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Submit persists a new payment order with status pending.
//
// @Summary      Submit payment information
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string                false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      submitPaymentRequest  true   "Payment form fields"
// @Success      201              {object}  messageResponse
// @Failure      400              {object}  messageResponse
// @Failure      500              {object}  messageResponse
// @Router       /submit-payment [post]
func (h *OrderHandler) Submit(c echo.Context) error {
	var req submitPaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Missing required fields"})
	}

	_, err := h.orderService.Submit(c.Request().Context(), ports.SubmitOrderInput{
		ProductID:      req.ProductID,
		ProductName:    req.ProductName,
		Email:          req.Email,
		Phone:          req.Phone,
		Quantity:       req.Quantity,
		Price:          req.Price,
		Address:        req.Address,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		if errors.Is(err, domain.ErrMissingFields) {
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Missing required fields"})
		}
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Internal server error"})
	}

	return c.JSON(http.StatusCreated, messageResponse{
		Success: true,
		Message: "Payment information saved successfully!",
	})
}

// List returns a customer's orders, newest first.
//
// @Summary      List orders for an email
// @Tags         orders
// @Produce      json
// @Param        email  query     string  true  "Customer email"
// @Success      200    {object}  ordersResponse
// @Failure      400    {object}  messageResponse
// @Failure      500    {object}  messageResponse
// @Router       /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Email is required"})
	}

	orders, err := h.orderService.ListByEmail(c.Request().Context(), email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Internal server error"})
	}

	return c.JSON(http.StatusOK, ordersResponse{Success: true, Orders: orders})
}

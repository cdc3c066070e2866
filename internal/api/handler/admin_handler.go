package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mahndi/payment-api/internal/core/domain"
	"github.com/mahndi/payment-api/internal/core/ports"
)

// AdminHandler handles the back-office endpoints: account management and
// the order status pipeline. The legacy API calls orders "requests" on
// these routes.
type AdminHandler struct {
	adminService ports.AdminService
	orderService ports.OrderService
}

func NewAdminHandler(adminService ports.AdminService, orderService ports.OrderService) *AdminHandler {
	return &AdminHandler{adminService: adminService, orderService: orderService}
}

// ListUsers returns every account projected to {email, phone}.
//
// @Summary      List registered users
// @Tags         admin
// @Produce      json
// @Success      200  {object}  usersResponse
// @Failure      500  {object}  messageResponse
// @Router       /admin/registered-users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.adminService.ListAccounts(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Internal server error"})
	}
	return c.JSON(http.StatusOK, usersResponse{Success: true, Users: users})
}

// DeleteUser permanently removes an account by id.
//
// @Summary      Delete a user
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /admin/delete-user/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	err := h.adminService.DeleteAccount(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Internal server error"})
	}
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "User deleted successfully!"})
}

// PendingRequests lists orders awaiting acceptance.
//
// @Summary      List pending orders
// @Tags         admin
// @Produce      json
// @Success      200  {object}  requestsResponse
// @Failure      500  {object}  messageResponse
// @Router       /admin/pending-requests [get]
func (h *AdminHandler) PendingRequests(c echo.Context) error {
	return h.listByStatus(c, domain.StatusPending)
}

// AcceptedRequests lists orders accepted but not yet delivered.
//
// @Summary      List accepted orders
// @Tags         admin
// @Produce      json
// @Success      200  {object}  requestsResponse
// @Failure      500  {object}  messageResponse
// @Router       /admin/accepted-requests [get]
func (h *AdminHandler) AcceptedRequests(c echo.Context) error {
	return h.listByStatus(c, domain.StatusAccepted)
}

// FinishedRequests lists delivered orders.
//
// @Summary      List delivered orders
// @Tags         admin
// @Produce      json
// @Success      200  {object}  requestsResponse
// @Failure      500  {object}  messageResponse
// @Router       /admin/finished-requests [get]
func (h *AdminHandler) FinishedRequests(c echo.Context) error {
	return h.listByStatus(c, domain.StatusDelivered)
}

func (h *AdminHandler) listByStatus(c echo.Context, status domain.OrderStatus) error {
	orders, err := h.orderService.ListByStatus(c.Request().Context(), status)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Internal server error"})
	}
	return c.JSON(http.StatusOK, requestsResponse{Success: true, Requests: orders})
}

// AcceptRequest moves an order to accepted.
//
// @Summary      Accept an order
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /admin/accept-request/{id} [put]
func (h *AdminHandler) AcceptRequest(c echo.Context) error {
	if err := h.orderService.Accept(c.Request().Context(), c.Param("id")); err != nil {
		return h.requestError(c, err)
	}
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "Request accepted successfully!"})
}

// DeliverRequest moves an order to delivered.
//
// @Summary      Mark an order delivered
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /admin/deliver-request/{id} [put]
func (h *AdminHandler) DeliverRequest(c echo.Context) error {
	if err := h.orderService.Deliver(c.Request().Context(), c.Param("id")); err != nil {
		return h.requestError(c, err)
	}
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "Request marked as delivered!"})
}

func (h *AdminHandler) requestError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrOrderNotFound) {
		return c.JSON(http.StatusNotFound, messageResponse{Message: "Request not found"})
	}
	return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Internal server error"})
}

package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// Welcome handles GET /api — the legacy greeting endpoint, plain text.
func Welcome(c echo.Context) error {
	return c.String(http.StatusOK, "Welcome to the Payment API")
}

// HealthHandler handles GET /health — liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// ReadinessHandler handles GET /health/ready — readiness probe.
// Checks both MongoDB deployments and Redis before declaring the service
// ready.
type ReadinessHandler struct {
	authDB    *mongo.Database
	paymentDB *mongo.Database
	redis     *redis.Client
}

func NewReadinessHandler(authDB, paymentDB *mongo.Database, rdb *redis.Client) *ReadinessHandler {
	return &ReadinessHandler{
		authDB:    authDB,
		paymentDB: paymentDB,
		redis:     rdb,
	}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	deps := make(map[string]dependencyStatus)
	healthy := true

	probe := func(name string, err error) {
		if err != nil {
			deps[name] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
			healthy = false
		} else {
			deps[name] = dependencyStatus{Status: "ok"}
		}
	}

	probe("auth_db", h.authDB.Client().Ping(ctx, nil))
	probe("payment_db", h.paymentDB.Client().Ping(ctx, nil))
	probe("redis", h.redis.Ping(ctx).Err())

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}

package api

import (
	"context"
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mahndi/payment-api/internal/api/handler"
	"github.com/mahndi/payment-api/internal/core/service"
	mongodb "github.com/mahndi/payment-api/internal/infrastructure/db/mongo"
	redisdb "github.com/mahndi/payment-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// authDB and paymentDB are the two independent document stores; rdb backs
// the submission dedup checker.
func NewRouter(authDB, paymentDB *mongo.Database, rdb *redis.Client, corsOrigin string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{corsOrigin},
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodDelete, http.MethodPatch, http.MethodOptions,
		},
	}))
	e.Use(echoprometheus.NewMiddleware("payment"))

	// --- Dependencies ---
	accountRepo := mongodb.NewAccountRepository(authDB)
	orderRepo := mongodb.NewOrderRepository(paymentDB)
	if err := accountRepo.EnsureIndexes(context.Background()); err != nil {
		log.Warn().Err(err).Msg("failed to ensure account indexes")
	}
	if err := orderRepo.EnsureIndexes(context.Background()); err != nil {
		log.Warn().Err(err).Msg("failed to ensure order indexes")
	}

	dedup := redisdb.NewDedupChecker(rdb)
	authService := service.NewAuthService(accountRepo, log)
	orderService := service.NewOrderService(orderRepo, dedup, log)
	adminService := service.NewAdminService(accountRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	orderHandler := handler.NewOrderHandler(orderService)
	adminHandler := handler.NewAdminHandler(adminService, orderService)

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Order routes ---
	e.POST("/submit-payment", orderHandler.Submit)
	e.GET("/orders", orderHandler.List)

	// --- Admin routes (distinct endpoints, no extra authorization by design) ---
	e.GET("/admin/registered-users", adminHandler.ListUsers)
	e.DELETE("/admin/delete-user/:id", adminHandler.DeleteUser)
	e.GET("/admin/pending-requests", adminHandler.PendingRequests)
	e.PUT("/admin/accept-request/:id", adminHandler.AcceptRequest)
	e.GET("/admin/accepted-requests", adminHandler.AcceptedRequests)
	e.PUT("/admin/deliver-request/:id", adminHandler.DeliverRequest)
	e.GET("/admin/finished-requests", adminHandler.FinishedRequests)

	// --- Operational routes ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(authDB, paymentDB, rdb)

	e.GET("/api", handler.Welcome)
	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Legacy plain-text catch-all.
	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.String(http.StatusNotFound, "404, Page Not Found")
	})

	return e
}

package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/ihsanbank/core/internal/adapter/http/handler"
	"github.com/ihsanbank/core/internal/adapter/http/middleware"
	"github.com/ihsanbank/core/internal/infrastructure/metrics"
	"github.com/ihsanbank/core/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	CustomerHandler  *handler.CustomerHandler
	AccountHandler   *handler.AccountHandler
	TellerHandler    *handler.TellerHandler
	TransferHandler  *handler.TransferHandler
	ProductHandler   *handler.ProductHandler
	ApprovalHandler  *handler.ApprovalHandler
	LedgerHandler    *handler.LedgerHandler
	HealthHandler    *handler.HealthHandler
	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
	RateLimiter      *middleware.RateLimiter
	Metrics          *metrics.Metrics
	Logger           zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	if cfg.Metrics != nil {
		r.Use(middleware.NewMetricsMiddleware(cfg.Metrics).Wrap)
	}
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Customers
		r.Route("/customers", func(r chi.Router) {
			r.Post("/", cfg.CustomerHandler.Create)
			r.Get("/", cfg.CustomerHandler.List)
			r.Get("/{id}", cfg.CustomerHandler.Get)
			r.Get("/{id}/accounts", cfg.CustomerHandler.ListAccounts)
		})

		// Accounts
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", cfg.AccountHandler.Open)
			r.Get("/", cfg.AccountHandler.List)
			r.Get("/number/{number}", cfg.AccountHandler.GetByNumber)
			r.Get("/{id}", cfg.AccountHandler.Get)
			r.Get("/{id}/transactions", cfg.AccountHandler.Statement)
		})

		// Teller operations
		r.Route("/teller", func(r chi.Router) {
			r.Post("/deposits", cfg.TellerHandler.Deposit)
			r.Post("/withdrawals", cfg.TellerHandler.Withdraw)
		})

		// Transfers
		r.Route("/transfers", func(r chi.Router) {
			r.Post("/", cfg.TransferHandler.Execute)
			r.Post("/validate", cfg.TransferHandler.Validate)
		})

		// Products
		r.Route("/products", func(r chi.Router) {
			r.Post("/", cfg.ProductHandler.Create)
			r.Get("/", cfg.ProductHandler.List)
			r.Get("/{code}", cfg.ProductHandler.GetByCode)
		})

		// Approvals
		r.Route("/approvals", func(r chi.Router) {
			r.Post("/", cfg.ApprovalHandler.Submit)
			r.Get("/pending", cfg.ApprovalHandler.ListPending)
			r.Get("/{id}", cfg.ApprovalHandler.Get)
			r.Post("/{id}/approve", cfg.ApprovalHandler.Approve)
			r.Post("/{id}/reject", cfg.ApprovalHandler.Reject)
		})

		// Ledger
		r.Get("/ledger/consistency", cfg.LedgerHandler.CheckConsistency)
	})

	return r
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/ihsanbank/core/internal/adapter/http"
	"github.com/ihsanbank/core/internal/adapter/http/handler"
	"github.com/ihsanbank/core/internal/adapter/http/middleware"
	postgresRepo "github.com/ihsanbank/core/internal/adapter/repository/postgres"
	redisRepo "github.com/ihsanbank/core/internal/adapter/repository/redis"
	"github.com/ihsanbank/core/internal/domain"
	"github.com/ihsanbank/core/internal/infrastructure/config"
	"github.com/ihsanbank/core/internal/infrastructure/logger"
	"github.com/ihsanbank/core/internal/infrastructure/metrics"
	"github.com/ihsanbank/core/internal/infrastructure/postgres"
	"github.com/ihsanbank/core/internal/infrastructure/redis"
	"github.com/ihsanbank/core/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger

	ctx := context.Background()

	// Run migrations before taking traffic
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns, cfg.DatabaseTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	appMetrics := metrics.New()

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	transactionRepo := postgresRepo.NewTransactionRepository(pool)
	customerRepo := postgresRepo.NewCustomerRepository(pool)
	productRepo := postgresRepo.NewProductRepository(pool)
	approvalRepo := postgresRepo.NewApprovalRepository(pool)
	sequenceRepo := postgresRepo.NewSequenceRepository(pool)
	ledgerRepo := postgresRepo.NewLedgerRepository(pool)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier(appLogger)

	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)

	// Initialize use cases
	sequenceUC := usecase.NewSequenceUseCase(txManager, sequenceRepo, appMetrics)
	approvalUC := usecase.NewApprovalUseCase(txManager, approvalRepo, idGen, appMetrics)
	productUC := usecase.NewProductUseCase(productRepo, cache, idGen)
	customerUC := usecase.NewCustomerUseCase(customerRepo, approvalUC, sequenceUC, idGen)
	accountUC := usecase.NewAccountUseCase(accountRepo, transactionRepo, customerRepo, productUC, approvalUC, sequenceUC, idGen, appMetrics)
	tellerUC := usecase.NewTellerUseCase(txManager, accountRepo, transactionRepo, sequenceUC, idGen, retrier, appMetrics)
	transferUC := usecase.NewTransferUseCase(txManager, accountRepo, transactionRepo, sequenceUC, idGen, retrier, appMetrics)
	ledgerUC := usecase.NewLedgerUseCase(ledgerRepo, appMetrics)

	// Approved registrations and openings flow back through their owner.
	approvalUC.RegisterActivator(domain.EntityTypeCustomer, customerUC)
	approvalUC.RegisterActivator(domain.EntityTypeAccount, accountUC)

	// Rate limiter with periodic cleanup
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, appMetrics)
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			rateLimiter.CleanupLimiters()
		}
	}()

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		CustomerHandler:  handler.NewCustomerHandler(customerUC, accountUC),
		AccountHandler:   handler.NewAccountHandler(accountUC),
		TellerHandler:    handler.NewTellerHandler(tellerUC),
		TransferHandler:  handler.NewTransferHandler(transferUC),
		ProductHandler:   handler.NewProductHandler(productUC),
		ApprovalHandler:  handler.NewApprovalHandler(approvalUC),
		LedgerHandler:    handler.NewLedgerHandler(ledgerUC),
		HealthHandler:    handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   cfg.IdempotencyTTL,
		RateLimiter:      rateLimiter,
		Metrics:          appMetrics,
		Logger:           appLogger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Str("branch", cfg.BranchCode).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

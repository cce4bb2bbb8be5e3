package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/ihsanbank/core/internal/adapter/http/handler"
	apimiddleware "github.com/ihsanbank/core/internal/adapter/http/middleware"
	"github.com/ihsanbank/core/internal/usecase"
	"github.com/ihsanbank/core/internal/usecase/mocks"
)

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_RateLimiterBlocksExcessRequests(t *testing.T) {
	rl := apimiddleware.NewRateLimiter(1, 1, nil)
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.RateLimiter = rl
	}))

	req1 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req1.RemoteAddr = "1.2.3.4:1234"
	rec1 := httptest.NewRecorder()
	router.ServeHTTP(rec1, req1)
	if rec1.Code != http.StatusOK {
		t.Fatalf("expected first request to succeed, got %d", rec1.Code)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req2.RemoteAddr = "1.2.3.4:1234"
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req2)
	if rec2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled, got %d", rec2.Code)
	}
}

func TestNewRouter_IdempotencyMiddlewareInvokesStore(t *testing.T) {
	store := &stubIdempotencyStore{}
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.IdempotencyStore = store
	}))

	body := `{"code":"WAD-01","name":"Wadiah Basic","type":"WADIAH","profit_sharing":"NONE"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apimiddleware.IdempotencyKeyHeader, "key-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if !store.checkCalled {
		t.Fatalf("expected idempotency store to be used")
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	chiRoutes, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Routes")
	}

	seen := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"GET /health",
		"GET /ready",
		"POST /api/v1/customers/",
		"POST /api/v1/accounts/",
		"GET /api/v1/accounts/{id}",
		"GET /api/v1/accounts/{id}/transactions",
		"POST /api/v1/teller/deposits",
		"POST /api/v1/teller/withdrawals",
		"POST /api/v1/transfers/",
		"POST /api/v1/transfers/validate",
		"POST /api/v1/approvals/",
		"GET /api/v1/approvals/pending",
		"POST /api/v1/approvals/{id}/approve",
		"POST /api/v1/approvals/{id}/reject",
		"GET /api/v1/ledger/consistency",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered", route)
		}
	}
}

func newRouterConfig(opts ...func(*RouterConfig)) RouterConfig {
	txManager := mocks.NewMockTransactionManager()
	accountRepo := mocks.NewMockAccountRepository()
	transactionRepo := mocks.NewMockTransactionRepository()
	customerRepo := mocks.NewMockCustomerRepository()
	productRepo := mocks.NewMockProductRepository()
	approvalRepo := mocks.NewMockApprovalRepository()
	seqRepo := mocks.NewMockSequenceRepository()
	idGen := mocks.NewMockIDGenerator()
	retrier := mocks.NewMockRetrier()

	sequences := usecase.NewSequenceUseCase(txManager, seqRepo, nil)
	approvals := usecase.NewApprovalUseCase(txManager, approvalRepo, idGen, nil)
	products := usecase.NewProductUseCase(productRepo, stubCache{}, idGen)
	customers := usecase.NewCustomerUseCase(customerRepo, approvals, sequences, idGen)
	accounts := usecase.NewAccountUseCase(accountRepo, transactionRepo, customerRepo, products, approvals, sequences, idGen, nil)
	teller := usecase.NewTellerUseCase(txManager, accountRepo, transactionRepo, sequences, idGen, retrier, nil)
	transfers := usecase.NewTransferUseCase(txManager, accountRepo, transactionRepo, sequences, idGen, retrier, nil)
	ledger := usecase.NewLedgerUseCase(stubLedgerRepository{}, nil)

	cfg := RouterConfig{
		CustomerHandler: handler.NewCustomerHandler(customers, accounts),
		AccountHandler:  handler.NewAccountHandler(accounts),
		TellerHandler:   handler.NewTellerHandler(teller),
		TransferHandler: handler.NewTransferHandler(transfers),
		ProductHandler:  handler.NewProductHandler(products),
		ApprovalHandler: handler.NewApprovalHandler(approvals),
		LedgerHandler:   handler.NewLedgerHandler(ledger),
		HealthHandler:   &handler.HealthHandler{},
		Logger:          zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

type stubCache struct{}

func (stubCache) Get(ctx context.Context, key string) (string, error) {
	return "", errors.New("cache miss")
}

func (stubCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return nil
}

func (stubCache) Delete(ctx context.Context, key string) error {
	return nil
}

type stubLedgerRepository struct{}

func (stubLedgerRepository) CheckConsistency(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	return decimal.Zero, decimal.Zero, nil
}

type stubIdempotencyStore struct {
	checkCalled bool
}

func (s *stubIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.checkCalled = true
	return false, nil, nil
}

func (s *stubIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return nil
}

package mocks

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/ihsanbank/core/internal/domain"
	"github.com/ihsanbank/core/internal/usecase"
	"github.com/shopspring/decimal"
)

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account

	CreateFunc            func(ctx context.Context, account *domain.Account) error
	GetByIDFunc           func(ctx context.Context, id string) (*domain.Account, error)
	GetByNumberFunc       func(ctx context.Context, accountNumber string) (*domain.Account, error)
	GetByIDForUpdateFunc  func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Account, error)
	GetByIDsForUpdateFunc func(ctx context.Context, tx usecase.Transaction, ids []string) ([]*domain.Account, error)
	UpdateBalanceFunc     func(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error
	UpdateStatusFunc      func(ctx context.Context, tx usecase.Transaction, id string, status domain.AccountStatus, updatedAt time.Time) error
	ListFunc              func(ctx context.Context, limit, offset int) ([]*domain.Account, error)
	ListByCustomerFunc    func(ctx context.Context, customerID string) ([]*domain.Account, error)
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		accounts: make(map[string]*domain.Account),
	}
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
	return nil
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[id]; ok {
		return acc, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) GetByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, accountNumber)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, acc := range m.accounts {
		if acc.AccountNumber == accountNumber {
			return acc, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Account, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockAccountRepository) GetByIDsForUpdate(ctx context.Context, tx usecase.Transaction, ids []string) ([]*domain.Account, error) {
	if m.GetByIDsForUpdateFunc != nil {
		return m.GetByIDsForUpdateFunc(ctx, tx, ids)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, id := range ids {
		if acc, ok := m.accounts[id]; ok {
			accounts = append(accounts, acc)
		}
	}
	return accounts, nil
}

func (m *MockAccountRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error {
	if m.UpdateBalanceFunc != nil {
		return m.UpdateBalanceFunc(ctx, tx, id, balance, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if acc, ok := m.accounts[id]; ok {
		acc.Balance = balance
		acc.Version++
		acc.UpdatedAt = updatedAt
	}
	return nil
}

func (m *MockAccountRepository) UpdateStatus(ctx context.Context, tx usecase.Transaction, id string, status domain.AccountStatus, updatedAt time.Time) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, tx, id, status, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if acc, ok := m.accounts[id]; ok {
		acc.Status = status
		acc.UpdatedAt = updatedAt
	}
	return nil
}

func (m *MockAccountRepository) List(ctx context.Context, limit, offset int) ([]*domain.Account, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, acc := range m.accounts {
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

func (m *MockAccountRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Account, error) {
	if m.ListByCustomerFunc != nil {
		return m.ListByCustomerFunc(ctx, customerID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, acc := range m.accounts {
		if acc.CustomerID == customerID {
			accounts = append(accounts, acc)
		}
	}
	return accounts, nil
}

// MockTransactionRepository is a mock implementation of TransactionRepository.
type MockTransactionRepository struct {
	mu      sync.RWMutex
	records map[string]*domain.Transaction

	CreateFunc          func(ctx context.Context, tx usecase.Transaction, record *domain.Transaction) error
	GetByIDFunc         func(ctx context.Context, id string) (*domain.Transaction, error)
	ListByAccountFunc   func(ctx context.Context, accountID string, limit, offset int) ([]*domain.Transaction, error)
	ListByReferenceFunc func(ctx context.Context, referenceNumber string) ([]*domain.Transaction, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		records: make(map[string]*domain.Transaction),
	}
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx usecase.Transaction, record *domain.Transaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, record)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[record.ID] = record
	return nil
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if rec, ok := m.records[id]; ok {
		return rec, nil
	}
	return nil, domain.ErrTransactionNotFound
}

func (m *MockTransactionRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Transaction, error) {
	if m.ListByAccountFunc != nil {
		return m.ListByAccountFunc(ctx, accountID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var records []*domain.Transaction
	for _, rec := range m.records {
		if rec.AccountID == accountID {
			records = append(records, rec)
		}
	}
	return records, nil
}

func (m *MockTransactionRepository) ListByReference(ctx context.Context, referenceNumber string) ([]*domain.Transaction, error) {
	if m.ListByReferenceFunc != nil {
		return m.ListByReferenceFunc(ctx, referenceNumber)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var records []*domain.Transaction
	for _, rec := range m.records {
		if rec.ReferenceNumber == referenceNumber {
			records = append(records, rec)
		}
	}
	return records, nil
}

// MockSequenceRepository is a mock implementation of SequenceRepository.
// The default behavior mirrors the lazy-create contract: unknown names
// start at zero.
type MockSequenceRepository struct {
	mu       sync.Mutex
	counters map[string]*domain.SequenceCounter

	GetForUpdateFunc func(ctx context.Context, tx usecase.Transaction, name string) (*domain.SequenceCounter, error)
	SetValueFunc     func(ctx context.Context, tx usecase.Transaction, name string, value int64, updatedAt time.Time) error
}

func NewMockSequenceRepository() *MockSequenceRepository {
	return &MockSequenceRepository{
		counters: make(map[string]*domain.SequenceCounter),
	}
}

// Seed sets a counter's last issued value without going through a transaction.
func (m *MockSequenceRepository) Seed(name string, lastValue int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[name] = &domain.SequenceCounter{Name: name, LastValue: lastValue}
}

func (m *MockSequenceRepository) GetForUpdate(ctx context.Context, tx usecase.Transaction, name string) (*domain.SequenceCounter, error) {
	if m.GetForUpdateFunc != nil {
		return m.GetForUpdateFunc(ctx, tx, name)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.counters[name]; ok {
		return c, nil
	}
	c := &domain.SequenceCounter{Name: name, LastValue: 0}
	m.counters[name] = c
	return c, nil
}

func (m *MockSequenceRepository) SetValue(ctx context.Context, tx usecase.Transaction, name string, value int64, updatedAt time.Time) error {
	if m.SetValueFunc != nil {
		return m.SetValueFunc(ctx, tx, name, value, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.counters[name]; ok {
		c.LastValue = value
		c.UpdatedAt = updatedAt
	}
	return nil
}

// MockApprovalRepository is a mock implementation of ApprovalRepository.
type MockApprovalRepository struct {
	mu       sync.RWMutex
	requests map[string]*domain.ApprovalRequest

	CreateFunc           func(ctx context.Context, req *domain.ApprovalRequest) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.ApprovalRequest, error)
	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id string) (*domain.ApprovalRequest, error)
	HasPendingFunc       func(ctx context.Context, entityType domain.EntityType, entityID string) (bool, error)
	UpdateReviewFunc     func(ctx context.Context, tx usecase.Transaction, req *domain.ApprovalRequest) error
	ListPendingFunc      func(ctx context.Context, filter usecase.ApprovalFilter) ([]*domain.ApprovalRequest, error)
}

func NewMockApprovalRepository() *MockApprovalRepository {
	return &MockApprovalRepository{
		requests: make(map[string]*domain.ApprovalRequest),
	}
}

func (m *MockApprovalRepository) Create(ctx context.Context, req *domain.ApprovalRequest) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests[req.ID] = req
	return nil
}

func (m *MockApprovalRepository) GetByID(ctx context.Context, id string) (*domain.ApprovalRequest, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if req, ok := m.requests[id]; ok {
		return req, nil
	}
	return nil, domain.ErrApprovalNotFound
}

func (m *MockApprovalRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.ApprovalRequest, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockApprovalRepository) HasPending(ctx context.Context, entityType domain.EntityType, entityID string) (bool, error) {
	if m.HasPendingFunc != nil {
		return m.HasPendingFunc(ctx, entityType, entityID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, req := range m.requests {
		if req.EntityType == entityType && req.EntityID == entityID && req.Status == domain.ApprovalStatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockApprovalRepository) UpdateReview(ctx context.Context, tx usecase.Transaction, req *domain.ApprovalRequest) error {
	if m.UpdateReviewFunc != nil {
		return m.UpdateReviewFunc(ctx, tx, req)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests[req.ID] = req
	return nil
}

func (m *MockApprovalRepository) ListPending(ctx context.Context, filter usecase.ApprovalFilter) ([]*domain.ApprovalRequest, error) {
	if m.ListPendingFunc != nil {
		return m.ListPendingFunc(ctx, filter)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var requests []*domain.ApprovalRequest
	for _, req := range m.requests {
		if req.Status != domain.ApprovalStatusPending {
			continue
		}
		if filter.EntityType != nil && req.EntityType != *filter.EntityType {
			continue
		}
		if filter.BranchCode != nil && req.BranchCode != *filter.BranchCode {
			continue
		}
		if filter.RequestedBy != nil && req.RequestedBy != *filter.RequestedBy {
			continue
		}
		requests = append(requests, req)
	}
	return requests, nil
}

// MockCustomerRepository is a mock implementation of CustomerRepository.
type MockCustomerRepository struct {
	mu        sync.RWMutex
	customers map[string]*domain.Customer

	CreateFunc       func(ctx context.Context, customer *domain.Customer) error
	GetByIDFunc      func(ctx context.Context, id string) (*domain.Customer, error)
	UpdateStatusFunc func(ctx context.Context, tx usecase.Transaction, id string, status domain.CustomerStatus, updatedAt time.Time) error
	ListFunc         func(ctx context.Context, limit, offset int) ([]*domain.Customer, error)
}

func NewMockCustomerRepository() *MockCustomerRepository {
	return &MockCustomerRepository{
		customers: make(map[string]*domain.Customer),
	}
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, customer)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.customers[customer.ID] = customer
	return nil
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.customers[id]; ok {
		return c, nil
	}
	return nil, domain.ErrCustomerNotFound
}

func (m *MockCustomerRepository) UpdateStatus(ctx context.Context, tx usecase.Transaction, id string, status domain.CustomerStatus, updatedAt time.Time) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, tx, id, status, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.customers[id]; ok {
		c.Status = status
		c.UpdatedAt = updatedAt
	}
	return nil
}

func (m *MockCustomerRepository) List(ctx context.Context, limit, offset int) ([]*domain.Customer, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var customers []*domain.Customer
	for _, c := range m.customers {
		customers = append(customers, c)
	}
	return customers, nil
}

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mu       sync.RWMutex
	products map[string]*domain.Product

	CreateFunc    func(ctx context.Context, product *domain.Product) error
	GetByIDFunc   func(ctx context.Context, id string) (*domain.Product, error)
	GetByCodeFunc func(ctx context.Context, code string) (*domain.Product, error)
	ListFunc      func(ctx context.Context) ([]*domain.Product, error)
}

func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]*domain.Product),
	}
}

func (m *MockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, product)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[product.ID] = product
	return nil
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.products[id]; ok {
		return p, nil
	}
	return nil, domain.ErrProductNotFound
}

func (m *MockProductRepository) GetByCode(ctx context.Context, code string) (*domain.Product, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, code)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.products {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (m *MockProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var products []*domain.Product
	for _, p := range m.products {
		products = append(products, p)
	}
	return products, nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return &MockDBTransaction{}, nil
}

// MockDBTransaction is a mock implementation of Transaction.
type MockDBTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (m *MockDBTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	return nil
}

func (m *MockDBTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	return nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	GenerateFunc func() string
	counter      int
	mu           sync.Mutex
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return "mock-id-" + strconv.Itoa(m.counter)
}

// MockRetrier is a mock implementation of Retrier. The default runs the
// operation exactly once.
type MockRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}

// MockIdempotencyStore is a mock implementation of IdempotencyStore.
type MockIdempotencyStore struct {
	mu   sync.RWMutex
	data map[string][]byte

	CheckAndSetFunc func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	UpdateFunc      func(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

func NewMockIdempotencyStore() *MockIdempotencyStore {
	return &MockIdempotencyStore{
		data: make(map[string][]byte),
	}
}

func (m *MockIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	if m.CheckAndSetFunc != nil {
		return m.CheckAndSetFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.data[key]; ok {
		return true, existing, nil
	}
	if response != nil {
		m.data[key] = response
	} else {
		m.data[key] = []byte("processing")
	}
	return false, nil, nil
}

func (m *MockIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = response
	return nil
}

package usecase

import (
	"context"
	"time"

	"github.com/ihsanbank/core/internal/domain"
)

// CustomerUseCase handles customer registration and the activation
// callback invoked by the approval workflow.
type CustomerUseCase struct {
	customerRepo CustomerRepository
	approvals    *ApprovalUseCase
	sequences    *SequenceUseCase
	idGen        IDGenerator
}

// NewCustomerUseCase creates a new CustomerUseCase.
func NewCustomerUseCase(
	customerRepo CustomerRepository,
	approvals *ApprovalUseCase,
	sequences *SequenceUseCase,
	idGen IDGenerator,
) *CustomerUseCase {
	return &CustomerUseCase{
		customerRepo: customerRepo,
		approvals:    approvals,
		sequences:    sequences,
		idGen:        idGen,
	}
}

// CreateCustomerInput carries the tagged-variant payload. Exactly one of
// Personal or Corporate must be set, matching Kind.
type CreateCustomerInput struct {
	Kind        domain.CustomerKind
	Email       string
	Phone       string
	BranchCode  string
	Personal    *domain.PersonalDetails
	Corporate   *domain.CorporateDetails
	RequestedBy string
}

// CreateCustomer mints a customer number, stores the customer pending
// approval and submits the registration for review.
func (uc *CustomerUseCase) CreateCustomer(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error) {
	number, err := uc.sequences.Next(ctx, domain.SequenceCustomerNumber, "CUS")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	customer := &domain.Customer{
		ID:             uc.idGen.Generate(),
		CustomerNumber: number,
		Kind:           input.Kind,
		Status:         domain.CustomerStatusPendingApproval,
		Email:          input.Email,
		Phone:          input.Phone,
		BranchCode:     input.BranchCode,
		Personal:       input.Personal,
		Corporate:      input.Corporate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	_, err = uc.approvals.Submit(ctx, SubmitInput{
		EntityType:  domain.EntityTypeCustomer,
		EntityID:    customer.ID,
		RequestType: domain.RequestTypeCustomerRegistration,
		BranchCode:  input.BranchCode,
		RequestedBy: input.RequestedBy,
	})
	if err != nil {
		return nil, err
	}

	return customer, nil
}

// GetCustomer retrieves a customer by id.
func (uc *CustomerUseCase) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	return uc.customerRepo.GetByID(ctx, id)
}

// ListCustomersInput represents input for listing customers.
type ListCustomersInput struct {
	Limit  int
	Offset int
}

// ListCustomers lists customers with pagination.
func (uc *CustomerUseCase) ListCustomers(ctx context.Context, input ListCustomersInput) ([]*domain.Customer, error) {
	if input.Limit <= 0 {
		input.Limit = DefaultListLimit
	}
	if input.Limit > MaxListLimit {
		input.Limit = MaxListLimit
	}

	return uc.customerRepo.List(ctx, input.Limit, input.Offset)
}

// Activate implements EntityActivator for approved registrations.
func (uc *CustomerUseCase) Activate(ctx context.Context, tx Transaction, entityID string) error {
	return uc.customerRepo.UpdateStatus(ctx, tx, entityID, domain.CustomerStatusActive, time.Now().UTC())
}

// Reject implements EntityActivator for rejected registrations.
func (uc *CustomerUseCase) Reject(ctx context.Context, tx Transaction, entityID, _ string) error {
	return uc.customerRepo.UpdateStatus(ctx, tx, entityID, domain.CustomerStatusRejected, time.Now().UTC())
}

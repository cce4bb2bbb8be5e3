package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ihsanbank/core/internal/adapter/http/dto"
	"github.com/ihsanbank/core/internal/usecase"
)

// CustomerHandler handles customer-related HTTP requests.
type CustomerHandler struct {
	customerUC *usecase.CustomerUseCase
	accountUC  *usecase.AccountUseCase
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(customerUC *usecase.CustomerUseCase, accountUC *usecase.AccountUseCase) *CustomerHandler {
	return &CustomerHandler{
		customerUC: customerUC,
		accountUC:  accountUC,
	}
}

// Create registers a new customer pending approval.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	customer, err := h.customerUC.CreateCustomer(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create customer", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.CustomerFromDomain(customer))
}

// Get retrieves a customer by ID.
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing customer ID", "")
		return
	}

	customer, err := h.customerUC.GetCustomer(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get customer", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.CustomerFromDomain(customer))
}

// List lists customers.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	customers, err := h.customerUC.ListCustomers(r.Context(), usecase.ListCustomersInput{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list customers", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CustomersFromDomain(customers))
}

// ListAccounts lists all accounts owned by a customer.
func (h *CustomerHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing customer ID", "")
		return
	}

	accounts, err := h.accountUC.ListByCustomer(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list customer accounts", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.AccountsFromDomain(accounts))
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ihsanbank/core/internal/adapter/http/dto"
	"github.com/ihsanbank/core/internal/usecase"
)

// TellerService defines the behavior needed by TellerHandler.
type TellerService interface {
	Deposit(ctx context.Context, input usecase.CashInput) (*usecase.TransactionResult, error)
	Withdraw(ctx context.Context, input usecase.CashInput) (*usecase.TransactionResult, error)
}

// TellerHandler handles teller cash operations over HTTP.
type TellerHandler struct {
	tellerUC TellerService
}

// NewTellerHandler creates a new TellerHandler.
func NewTellerHandler(tellerUC TellerService) *TellerHandler {
	return &TellerHandler{tellerUC: tellerUC}
}

// Deposit posts a cash deposit.
func (h *TellerHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	var req dto.CashRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.tellerUC.Deposit(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to post deposit", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.PostingFromResult(result))
}

// Withdraw posts a cash withdrawal.
func (h *TellerHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req dto.CashRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.tellerUC.Withdraw(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to post withdrawal", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.PostingFromResult(result))
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ihsanbank/core/internal/adapter/http/dto"
	"github.com/ihsanbank/core/internal/usecase"
)

// TransferHandler handles transfer-related HTTP requests.
type TransferHandler struct {
	transferUC *usecase.TransferUseCase
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(transferUC *usecase.TransferUseCase) *TransferHandler {
	return &TransferHandler{transferUC: transferUC}
}

// Validate dry-runs a transfer without moving funds.
func (h *TransferHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req dto.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	validated, err := h.transferUC.Validate(r.Context(), req.FromAccountID, req.ToAccountNumber, req.Amount)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "transfer validation failed", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.TransferValidationResponse{
		Valid:           true,
		FromAccountID:   validated.FromAccountID,
		ToAccountID:     validated.ToAccountID,
		ToAccountNumber: validated.ToAccountNumber,
		Amount:          validated.Amount,
	})
}

// Execute validates and executes a transfer atomically.
func (h *TransferHandler) Execute(w http.ResponseWriter, r *http.Request) {
	var req dto.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	validated, err := h.transferUC.Validate(r.Context(), req.FromAccountID, req.ToAccountNumber, req.Amount)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "transfer validation failed", err.Error())

		return
	}

	validated.Description = req.Description
	validated.PerformedBy = req.PerformedBy

	result, err := h.transferUC.Execute(r.Context(), validated)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to execute transfer", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.TransferFromResult(result))
}

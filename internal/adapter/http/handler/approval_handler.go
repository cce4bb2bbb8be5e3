package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ihsanbank/core/internal/adapter/http/dto"
	"github.com/ihsanbank/core/internal/domain"
	"github.com/ihsanbank/core/internal/usecase"
)

// ApprovalHandler handles maker-checker review requests.
type ApprovalHandler struct {
	approvalUC *usecase.ApprovalUseCase
}

// NewApprovalHandler creates a new ApprovalHandler.
func NewApprovalHandler(approvalUC *usecase.ApprovalUseCase) *ApprovalHandler {
	return &ApprovalHandler{approvalUC: approvalUC}
}

// Submit creates a pending approval request directly. Registration and
// account opening submit their own requests; this endpoint covers
// resubmission after a rejected review.
func (h *ApprovalHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitApprovalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input := req.ToUseCaseInput()

	if !input.EntityType.IsValid() {
		writeError(w, http.StatusBadRequest, "invalid entity type", "entity_type must be CUSTOMER or ACCOUNT")
		return
	}
	if !input.RequestType.IsValid() {
		writeError(w, http.StatusBadRequest, "invalid request type", "unknown request_type")
		return
	}
	if input.EntityID == "" {
		writeError(w, http.StatusBadRequest, "missing entity", "entity_id is required")
		return
	}
	if input.RequestedBy == "" {
		writeError(w, http.StatusBadRequest, "missing requester", "requested_by is required")
		return
	}

	created, err := h.approvalUC.Submit(r.Context(), input)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to submit approval request", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.ApprovalFromDomain(created))
}

// ListPending lists pending approval requests for the checker dashboard.
func (h *ApprovalHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	filter := usecase.ApprovalFilter{
		Limit:  parseIntQuery(r, "limit", 20),
		Offset: parseIntQuery(r, "offset", 0),
	}

	if v := r.URL.Query().Get("entity_type"); v != "" {
		entityType := domain.EntityType(v)
		filter.EntityType = &entityType
	}
	if v := r.URL.Query().Get("branch_code"); v != "" {
		filter.BranchCode = &v
	}
	if v := r.URL.Query().Get("requested_by"); v != "" {
		filter.RequestedBy = &v
	}

	requests, err := h.approvalUC.ListPending(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list pending approvals", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ApprovalsFromDomain(requests))
}

// Get retrieves an approval request by ID.
func (h *ApprovalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing approval request ID", "")
		return
	}

	req, err := h.approvalUC.GetRequest(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get approval request", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ApprovalFromDomain(req))
}

// Approve approves a pending request and activates the entity.
func (h *ApprovalHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.approvalUC.Approve)
}

// Reject rejects a pending request.
func (h *ApprovalHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.approvalUC.Reject)
}

func (h *ApprovalHandler) review(w http.ResponseWriter, r *http.Request, decide func(ctx context.Context, requestID, reviewedBy, notes string) error) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing approval request ID", "")
		return
	}

	var req dto.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.ReviewedBy == "" {
		writeError(w, http.StatusBadRequest, "missing reviewer", "reviewed_by is required")
		return
	}

	if err := decide(r.Context(), id, req.ReviewedBy, req.Notes); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to review approval request", err.Error())
		return
	}

	reviewed, err := h.approvalUC.GetRequest(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to load reviewed request", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ApprovalFromDomain(reviewed))
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ihsanbank/core/internal/adapter/http/dto"
	"github.com/ihsanbank/core/internal/usecase"
)

// ProductHandler handles product catalogue HTTP requests.
type ProductHandler struct {
	productUC *usecase.ProductUseCase
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productUC *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{productUC: productUC}
}

// Create defines a new savings product.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	product, err := h.productUC.CreateProduct(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create product", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.ProductFromDomain(product))
}

// GetByCode retrieves a product by its code.
func (h *ProductHandler) GetByCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		writeError(w, http.StatusBadRequest, "missing product code", "")
		return
	}

	product, err := h.productUC.GetProductByCode(r.Context(), code)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get product", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ProductFromDomain(product))
}

// List lists all products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.productUC.ListProducts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list products", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ProductsFromDomain(products))
}

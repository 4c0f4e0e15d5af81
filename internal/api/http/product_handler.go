package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"tooltrack-backend/internal/domain"
	"tooltrack-backend/internal/logger"
	"tooltrack-backend/internal/service"

	"github.com/gorilla/mux"
)

// ProductHandler serves the product catalog endpoints.
type ProductHandler struct {
	productSvc service.ProductService
}

func NewProductHandler(productSvc service.ProductService) *ProductHandler {
	return &ProductHandler{productSvc: productSvc}
}

func (h *ProductHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/products", h.GetProducts).Methods(http.MethodGet)
	router.HandleFunc("/api/products/search", h.SearchProducts).Methods(http.MethodGet)
	router.HandleFunc("/api/products/{id}", h.GetProduct).Methods(http.MethodGet)
}

func (h *ProductHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page := queryInt(query.Get("pageNumber"), 1)
	pageSize := queryInt(query.Get("pageSize"), 20)
	activeOnly := true
	if raw := query.Get("activeOnly"); raw != "" {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			activeOnly = parsed
		}
	}

	products, err := h.productSvc.GetProducts(r.Context(), page, pageSize, query.Get("searchTerm"), activeOnly)
	if err != nil {
		logger.ErrorContext(r.Context(), "Error retrieving products", "error", err)
		respondError(w, http.StatusInternalServerError, "An error occurred while processing the request.")
		return
	}
	respondJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "Product ID must be greater than 0.")
		return
	}

	product, err := h.productSvc.GetProduct(r.Context(), int32(id))
	if errors.Is(err, domain.ErrNotFound) {
		respondError(w, http.StatusNotFound, fmt.Sprintf("Product with ID %d not found.", id))
		return
	}
	if err != nil {
		logger.ErrorContext(r.Context(), "Error retrieving product", "product_id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "An error occurred while processing the request.")
		return
	}
	respondJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit := queryInt(query.Get("limit"), 10)

	products, err := h.productSvc.SearchProducts(r.Context(), query.Get("term"), limit)
	if err != nil {
		logger.ErrorContext(r.Context(), "Error searching products", "error", err)
		respondError(w, http.StatusInternalServerError, "An error occurred while processing the request.")
		return
	}
	respondJSON(w, http.StatusOK, products)
}

func queryInt(raw string, fallback int32) int32 {
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return fallback
	}
	return int32(v)
}

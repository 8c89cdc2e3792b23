package handler

import (
	"net/http"

	"kart-store/internal/model"
	"kart-store/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles catalogue HTTP requests, both the customer
// listing and the admin add/update flows.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// productRequest is the admin payload for creating or updating a product.
type productRequest struct {
	ID        string            `json:"id"`
	Name      string            `json:"name" validate:"required"`
	Price     float64           `json:"price" validate:"required,gt=0"`
	Stock     int               `json:"stock" validate:"gte=0"`
	Discounts []discountRequest `json:"discounts" validate:"dive"`
}

// discountRequest is a single discount tier in an admin payload.
type discountRequest struct {
	Quantity int     `json:"quantity" validate:"required,gt=0"`
	Rate     float64 `json:"rate" validate:"gte=0,lt=1"`
}

func (req *productRequest) toModel() model.Product {
	discounts := make([]model.Discount, len(req.Discounts))
	for i, d := range req.Discounts {
		discounts[i] = model.Discount{Quantity: d.Quantity, Rate: d.Rate}
	}
	return model.Product{
		ID:        req.ID,
		Name:      req.Name,
		Price:     req.Price,
		Stock:     req.Stock,
		Discounts: discounts,
	}
}

// GetAll handles GET /api/products requests.
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	products, err := h.service.GetAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve products", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	productID := r.URL.Path[len("/api/products/"):]
	if productID == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	product, err := h.service.GetByID(r.Context(), productID)
	if err != nil {
		writeError(w, domainStatus(err), "product not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Create handles POST /api/products requests (admin add).
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	product, err := h.service.Create(r.Context(), req.toModel())
	if err != nil {
		writeError(w, domainStatus(err), err.Error(), h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

// Update handles PUT /api/products/{id} requests (admin update). The
// payload replaces the product wholesale, discount tiers included.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	productID := r.URL.Path[len("/api/products/"):]
	if productID == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	req.ID = productID

	product, err := h.service.Update(r.Context(), req.toModel())
	if err != nil {
		writeError(w, domainStatus(err), err.Error(), h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

package handler

import (
	"net/http"
	"strings"

	"kart-store/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CartHandler handles cart HTTP requests. Every mutation responds with
// the freshly priced cart view, mirroring a view re-render per event.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// addItemRequest is the payload for adding a product to a cart.
type addItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// updateQuantityRequest is the payload for setting a line's quantity.
// Zero and negative values remove the line, so no bound is validated;
// a pointer distinguishes an omitted quantity from an explicit zero.
type updateQuantityRequest struct {
	Quantity *int `json:"quantity"`
}

// applyCouponRequest is the payload for selecting a coupon. An empty
// code clears the selection.
type applyCouponRequest struct {
	Code string `json:"code"`
}

// cartPathParts returns the path segments after /api/carts/.
func cartPathParts(path string) []string {
	rest := strings.Trim(strings.TrimPrefix(path, "/api/carts/"), "/")
	if rest == "" {
		return nil
	}
	return strings.Split(rest, "/")
}

// cartID parses the cart ID segment of the request path.
func (h *CartHandler) cartID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	parts := cartPathParts(r.URL.Path)
	if len(parts) == 0 {
		writeError(w, http.StatusBadRequest, "cart ID is required", h.logger)
		return uuid.Nil, false
	}

	id, err := uuid.Parse(parts[0])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid cart ID format", h.logger)
		return uuid.Nil, false
	}
	return id, true
}

// Create handles POST /api/carts requests.
func (h *CartHandler) Create(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Create(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create cart", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, view)
}

// GetByID handles GET /api/carts/{id} requests.
func (h *CartHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.cartID(w, r)
	if !ok {
		return
	}

	view, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, domainStatus(err), err.Error(), h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// Catalog handles GET /api/carts/{id}/products requests: the catalogue
// annotated with remaining stock for this cart.
func (h *CartHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	id, ok := h.cartID(w, r)
	if !ok {
		return
	}

	availability, err := h.service.Catalog(r.Context(), id)
	if err != nil {
		writeError(w, domainStatus(err), err.Error(), h.logger)
		return
	}

	writeJSON(w, http.StatusOK, availability)
}

// AddItem handles POST /api/carts/{id}/items requests.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.cartID(w, r)
	if !ok {
		return
	}

	var req addItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	view, err := h.service.AddItem(r.Context(), id, req.ProductID)
	if err != nil {
		writeError(w, domainStatus(err), err.Error(), h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// UpdateQuantity handles PUT /api/carts/{id}/items/{productId} requests.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := h.cartID(w, r)
	if !ok {
		return
	}

	parts := cartPathParts(r.URL.Path)
	if len(parts) < 3 || parts[2] == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	var req updateQuantityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	if req.Quantity == nil {
		writeError(w, http.StatusBadRequest, "quantity is required", h.logger)
		return
	}

	view, err := h.service.UpdateQuantity(r.Context(), id, parts[2], *req.Quantity)
	if err != nil {
		writeError(w, domainStatus(err), err.Error(), h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// RemoveItem handles DELETE /api/carts/{id}/items/{productId} requests.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.cartID(w, r)
	if !ok {
		return
	}

	parts := cartPathParts(r.URL.Path)
	if len(parts) < 3 || parts[2] == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	view, err := h.service.RemoveItem(r.Context(), id, parts[2])
	if err != nil {
		writeError(w, domainStatus(err), err.Error(), h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// ApplyCoupon handles PUT /api/carts/{id}/coupon requests. The new
// selection replaces any prior one; an empty code clears it.
func (h *CartHandler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	id, ok := h.cartID(w, r)
	if !ok {
		return
	}

	var req applyCouponRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	view, err := h.service.ApplyCoupon(r.Context(), id, req.Code)
	if err != nil {
		writeError(w, domainStatus(err), err.Error(), h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

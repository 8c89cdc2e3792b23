package handler

import (
	"net/http"

	"kart-store/internal/model"
	"kart-store/internal/service"

	"github.com/rs/zerolog"
)

// CouponHandler handles coupon listing and the admin add flow.
type CouponHandler struct {
	service service.CouponService
	logger  zerolog.Logger
}

// NewCouponHandler creates a new coupon handler.
func NewCouponHandler(service service.CouponService, logger zerolog.Logger) *CouponHandler {
	return &CouponHandler{
		service: service,
		logger:  logger.With().Str("handler", "coupon").Logger(),
	}
}

// couponRequest is the admin payload for creating a coupon.
type couponRequest struct {
	Name          string  `json:"name" validate:"required"`
	Code          string  `json:"code" validate:"required"`
	DiscountType  string  `json:"discountType" validate:"required,oneof=amount percentage"`
	DiscountValue float64 `json:"discountValue" validate:"gte=0"`
}

// GetAll handles GET /api/coupons requests.
func (h *CouponHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	coupons, err := h.service.GetAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve coupons", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, coupons)
}

// Create handles POST /api/coupons requests (admin add).
func (h *CouponHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req couponRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	coupon, err := h.service.Create(r.Context(), model.Coupon{
		Name:          req.Name,
		Code:          req.Code,
		DiscountType:  model.DiscountType(req.DiscountType),
		DiscountValue: req.DiscountValue,
	})
	if err != nil {
		writeError(w, domainStatus(err), err.Error(), h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, coupon)
}

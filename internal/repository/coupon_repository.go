package repository

import (
	"context"
	"sync"

	"kart-store/internal/model"

	"github.com/rs/zerolog"
)

// couponRepository implements CouponRepository with an in-memory store.
type couponRepository struct {
	mu      sync.RWMutex
	coupons []model.Coupon
	logger  zerolog.Logger
}

// NewCouponRepository creates a new in-memory coupon repository.
func NewCouponRepository(logger zerolog.Logger) CouponRepository {
	return &couponRepository{
		logger: logger.With().Str("repository", "coupon").Logger(),
	}
}

// GetAll retrieves all coupons in insertion order.
func (r *couponRepository) GetAll(ctx context.Context) ([]model.Coupon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	coupons := make([]model.Coupon, len(r.coupons))
	copy(coupons, r.coupons)
	return coupons, nil
}

// GetByCode retrieves a single coupon by its code, or nil if absent.
func (r *couponRepository) GetByCode(ctx context.Context, code string) (*model.Coupon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.coupons {
		if c.Code == code {
			coupon := c
			return &coupon, nil
		}
	}

	r.logger.Debug().Str("coupon_code", code).Msg("coupon not found")
	return nil, nil
}

// Create appends a new coupon to the list. Codes are the lookup key for
// the cart view's coupon selection, so duplicates are rejected here.
func (r *couponRepository) Create(ctx context.Context, coupon model.Coupon) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.coupons {
		if c.Code == coupon.Code {
			r.logger.Warn().Str("coupon_code", coupon.Code).Msg("duplicate coupon code")
			return model.ErrDuplicateCoupon
		}
	}

	r.coupons = append(r.coupons, coupon)
	return nil
}

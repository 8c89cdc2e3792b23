package service

import (
	"context"
	"fmt"

	"kart-store/internal/model"
	"kart-store/internal/repository"

	"github.com/rs/zerolog"
)

// couponService implements CouponService.
type couponService struct {
	couponRepo repository.CouponRepository
	logger     zerolog.Logger
}

// NewCouponService creates a new coupon service.
func NewCouponService(couponRepo repository.CouponRepository, logger zerolog.Logger) CouponService {
	return &couponService{
		couponRepo: couponRepo,
		logger:     logger.With().Str("service", "coupon").Logger(),
	}
}

// GetAll retrieves all coupons.
func (s *couponService) GetAll(ctx context.Context) ([]model.Coupon, error) {
	coupons, err := s.couponRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get all coupons")
		return nil, fmt.Errorf("failed to get coupons: %w", err)
	}

	s.logger.Debug().Int("count", len(coupons)).Msg("retrieved coupons")
	return coupons, nil
}

// Create appends a new coupon.
func (s *couponService) Create(ctx context.Context, coupon model.Coupon) (*model.Coupon, error) {
	if err := s.couponRepo.Create(ctx, coupon); err != nil {
		s.logger.Warn().Err(err).Str("coupon_code", coupon.Code).Msg("failed to create coupon")
		return nil, err
	}

	s.logger.Info().
		Str("coupon_code", coupon.Code).
		Str("discount_type", string(coupon.DiscountType)).
		Msg("coupon created")

	return &coupon, nil
}

package repository

import (
	"context"
	"fmt"

	"kart-store/internal/model"

	"github.com/rs/zerolog"
)

// sampleProducts is the demo catalogue loaded when seeding is enabled.
var sampleProducts = []model.Product{
	{
		ID:    "p1",
		Name:  "Product 1",
		Price: 10000,
		Stock: 20,
		Discounts: []model.Discount{
			{Quantity: 10, Rate: 0.1},
			{Quantity: 20, Rate: 0.2},
		},
	},
	{
		ID:    "p2",
		Name:  "Product 2",
		Price: 20000,
		Stock: 20,
		Discounts: []model.Discount{
			{Quantity: 10, Rate: 0.15},
		},
	},
	{
		ID:    "p3",
		Name:  "Product 3",
		Price: 30000,
		Stock: 20,
		Discounts: []model.Discount{
			{Quantity: 10, Rate: 0.2},
		},
	},
}

// sampleCoupons is the demo coupon list loaded when seeding is enabled.
var sampleCoupons = []model.Coupon{
	{
		Name:          "Flat 5000 Off",
		Code:          "AMOUNT5000",
		DiscountType:  model.DiscountAmount,
		DiscountValue: 5000,
	},
	{
		Name:          "10% Off",
		Code:          "PERCENT10",
		DiscountType:  model.DiscountPercentage,
		DiscountValue: 10,
	},
}

// Seed loads the sample catalogue and coupon list into the repositories.
func Seed(ctx context.Context, products ProductRepository, coupons CouponRepository, logger zerolog.Logger) error {
	for _, p := range sampleProducts {
		if err := products.Create(ctx, p); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.ID, err)
		}
	}

	for _, c := range sampleCoupons {
		if err := coupons.Create(ctx, c); err != nil {
			return fmt.Errorf("failed to seed coupon %s: %w", c.Code, err)
		}
	}

	logger.Info().
		Int("product_count", len(sampleProducts)).
		Int("coupon_count", len(sampleCoupons)).
		Msg("sample catalogue seeded")

	return nil
}

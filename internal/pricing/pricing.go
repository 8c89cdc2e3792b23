// Package pricing computes item and cart totals from quantity-tiered
// product discounts and an optional cart-wide coupon. All functions are
// pure: no state, no errors, edge cases resolve to zero effect.
package pricing

import (
	"math"

	"kart-store/internal/model"
)

// ItemSummary holds the pre- and post-discount totals for a single cart line.
type ItemSummary struct {
	BeforeDiscount float64 `json:"beforeDiscount"`
	AfterDiscount  float64 `json:"afterDiscount"`
	DiscountAmount float64 `json:"discountAmount"`
}

// CartSummary holds the aggregate totals for a whole cart.
type CartSummary struct {
	TotalBeforeDiscount float64 `json:"totalBeforeDiscount"`
	TotalAfterDiscount  float64 `json:"totalAfterDiscount"`
	TotalDiscount       float64 `json:"totalDiscount"`
}

// MaxApplicableRate scans every discount tier and returns the highest
// rate whose quantity threshold is met, or 0 when none applies. Scan
// order is irrelevant since only the maximum is kept.
func MaxApplicableRate(discounts []model.Discount, quantity int) float64 {
	var best float64
	for _, d := range discounts {
		if quantity >= d.Quantity && d.Rate > best {
			best = d.Rate
		}
	}
	return best
}

// ItemTotals computes a single line's totals using the best applicable
// tiered discount.
func ItemTotals(line model.CartLine) ItemSummary {
	before := line.Product.Price * float64(line.Quantity)
	rate := MaxApplicableRate(line.Product.Discounts, line.Quantity)
	after := before * (1 - rate)

	return ItemSummary{
		BeforeDiscount: before,
		AfterDiscount:  after,
		DiscountAmount: before - after,
	}
}

// CartTotals sums the item totals and then applies the coupon, if any,
// once to the aggregate. Item-level tiered discounts always run before
// the coupon; the coupon never changes individual line figures. An
// amount coupon floors the total at zero.
func CartTotals(lines []model.CartLine, coupon *model.Coupon) CartSummary {
	var before, after float64
	for _, line := range lines {
		item := ItemTotals(line)
		before += item.BeforeDiscount
		after += item.AfterDiscount
	}

	if coupon != nil {
		switch coupon.DiscountType {
		case model.DiscountAmount:
			after = math.Max(0, after-coupon.DiscountValue)
		case model.DiscountPercentage:
			after *= 1 - coupon.DiscountValue/100
		}
	}

	// TotalDiscount is derived rather than accumulated so the three
	// figures always stay mutually consistent.
	return CartSummary{
		TotalBeforeDiscount: before,
		TotalAfterDiscount:  after,
		TotalDiscount:       before - after,
	}
}

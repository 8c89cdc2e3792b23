package model

// DiscountType distinguishes flat-amount coupons from percentage coupons.
type DiscountType string

const (
	// DiscountAmount subtracts an absolute currency value from the cart total.
	DiscountAmount DiscountType = "amount"

	// DiscountPercentage takes a 0-100 percentage off the cart total.
	// Note this is a percentage, not a fraction like Discount.Rate.
	DiscountPercentage DiscountType = "percentage"
)

// Coupon is a single cart-wide adjustment applied once to the aggregate
// total, after all item-level tiered discounts.
type Coupon struct {
	Name          string       `json:"name"`
	Code          string       `json:"code"`
	DiscountType  DiscountType `json:"discountType"`
	DiscountValue float64      `json:"discountValue"`
}

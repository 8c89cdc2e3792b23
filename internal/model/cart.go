package model

import "github.com/google/uuid"

// CartLine pairs a product with the quantity of it in the cart. The
// embedded product is refreshed from the catalogue before every mutation
// and pricing pass, so stock checks never act on a stale copy.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart holds the ordered cart lines and at most one selected coupon.
// Lines preserve insertion order and are unique by product ID.
type Cart struct {
	ID     uuid.UUID  `json:"id"`
	Lines  []CartLine `json:"lines"`
	Coupon *Coupon    `json:"coupon,omitempty"`
}

package model

// Product represents a catalogue item together with its quantity-tiered
// discounts.
type Product struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Price     float64    `json:"price"`
	Stock     int        `json:"stock"`
	Discounts []Discount `json:"discounts"`
}

// Discount is a quantity-tiered discount: buying at least Quantity units
// applies Rate (a fraction in [0,1)) to the whole line.
type Discount struct {
	Quantity int     `json:"quantity"`
	Rate     float64 `json:"rate"`
}

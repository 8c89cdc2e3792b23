package service

import (
	"context"

	"kart-store/internal/model"
	"kart-store/internal/pricing"

	"github.com/google/uuid"
)

// ProductService defines operations for catalogue management.
type ProductService interface {
	// GetAll retrieves the full catalogue.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Create adds a new product; an empty ID gets a generated one.
	Create(ctx context.Context, product model.Product) (*model.Product, error)

	// Update replaces an existing product, including its discount tiers.
	Update(ctx context.Context, product model.Product) (*model.Product, error)
}

// CouponService defines operations for coupon management.
type CouponService interface {
	// GetAll retrieves all coupons.
	GetAll(ctx context.Context) ([]model.Coupon, error)

	// Create appends a new coupon.
	Create(ctx context.Context, coupon model.Coupon) (*model.Coupon, error)
}

// CartService defines the cart operations behind the customer cart view.
// Every mutation returns the freshly priced cart view, the way the view
// re-renders after each event.
type CartService interface {
	// Create allocates a new empty cart.
	Create(ctx context.Context) (*CartView, error)

	// Get retrieves a cart with its current pricing figures.
	Get(ctx context.Context, id uuid.UUID) (*CartView, error)

	// Catalog lists the catalogue annotated with the stock remaining
	// once the cart's committed quantities are taken into account.
	Catalog(ctx context.Context, id uuid.UUID) ([]ProductAvailability, error)

	// AddItem puts one more unit of the product into the cart.
	AddItem(ctx context.Context, id uuid.UUID, productID string) (*CartView, error)

	// RemoveItem deletes the cart line for the product.
	RemoveItem(ctx context.Context, id uuid.UUID, productID string) (*CartView, error)

	// UpdateQuantity sets a line's quantity, clamped to stock; zero or
	// negative removes the line.
	UpdateQuantity(ctx context.Context, id uuid.UUID, productID string, quantity int) (*CartView, error)

	// ApplyCoupon selects the coupon with the given code, replacing any
	// prior selection. An empty code clears the selection.
	ApplyCoupon(ctx context.Context, id uuid.UUID, code string) (*CartView, error)
}

// CartView is a cart enriched with pricing figures: per-line totals plus
// the aggregate summary. All figures are plain numbers; display
// formatting belongs to the consumer.
type CartView struct {
	ID      uuid.UUID           `json:"id"`
	Lines   []CartLineView      `json:"lines"`
	Coupon  *model.Coupon       `json:"coupon,omitempty"`
	Summary pricing.CartSummary `json:"summary"`
}

// CartLineView is a single cart line with its computed totals.
type CartLineView struct {
	Product  model.Product       `json:"product"`
	Quantity int                 `json:"quantity"`
	Totals   pricing.ItemSummary `json:"totals"`
}

// ProductAvailability pairs a product with the stock still available to
// a given cart. Recomputed fresh on every request, never cached.
type ProductAvailability struct {
	Product        model.Product `json:"product"`
	RemainingStock int           `json:"remainingStock"`
}

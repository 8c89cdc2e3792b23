package repository

import (
	"context"

	"kart-store/internal/model"

	"github.com/google/uuid"
)

// ProductRepository defines the interface for catalogue data access.
type ProductRepository interface {
	// GetAll retrieves all products in insertion order.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by its ID, or nil if absent.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Create appends a new product to the catalogue.
	Create(ctx context.Context, product model.Product) error

	// Update replaces an existing product, including its discount tiers.
	Update(ctx context.Context, product model.Product) error
}

// CouponRepository defines the interface for coupon data access.
type CouponRepository interface {
	// GetAll retrieves all coupons in insertion order.
	GetAll(ctx context.Context) ([]model.Coupon, error)

	// GetByCode retrieves a single coupon by its code, or nil if absent.
	GetByCode(ctx context.Context, code string) (*model.Coupon, error)

	// Create appends a new coupon to the list.
	Create(ctx context.Context, coupon model.Coupon) error
}

// CartRepository defines the interface for cart session storage.
type CartRepository interface {
	// Create allocates a new empty cart and returns it.
	Create(ctx context.Context) (*model.Cart, error)

	// Get retrieves a cart by its ID, or nil if absent.
	Get(ctx context.Context, id uuid.UUID) (*model.Cart, error)

	// Save replaces the stored state of an existing cart wholesale.
	Save(ctx context.Context, c *model.Cart) error
}

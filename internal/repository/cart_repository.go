package repository

import (
	"context"
	"sync"

	"kart-store/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// cartRepository implements CartRepository with an in-memory store keyed
// by cart ID. Carts are session-scoped and transient.
type cartRepository struct {
	mu     sync.RWMutex
	carts  map[uuid.UUID]*model.Cart
	logger zerolog.Logger
}

// NewCartRepository creates a new in-memory cart repository.
func NewCartRepository(logger zerolog.Logger) CartRepository {
	return &cartRepository{
		carts:  make(map[uuid.UUID]*model.Cart),
		logger: logger.With().Str("repository", "cart").Logger(),
	}
}

// Create allocates a new empty cart and returns it.
func (r *cartRepository) Create(ctx context.Context) (*model.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := &model.Cart{
		ID:    uuid.New(),
		Lines: []model.CartLine{},
	}
	r.carts[c.ID] = c

	r.logger.Debug().Str("cart_id", c.ID.String()).Msg("cart created")
	return cloneCart(c), nil
}

// Get retrieves a cart by its ID, or nil if absent.
func (r *cartRepository) Get(ctx context.Context, id uuid.UUID) (*model.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.carts[id]
	if !ok {
		r.logger.Debug().Str("cart_id", id.String()).Msg("cart not found")
		return nil, nil
	}
	return cloneCart(c), nil
}

// Save replaces the stored state of an existing cart wholesale.
func (r *cartRepository) Save(ctx context.Context, c *model.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.carts[c.ID]; !ok {
		r.logger.Debug().Str("cart_id", c.ID.String()).Msg("cart not found for save")
		return model.ErrCartNotFound
	}

	r.carts[c.ID] = cloneCart(c)
	return nil
}

// cloneCart deep-copies a cart so callers never share line slices or
// coupon pointers with the store.
func cloneCart(c *model.Cart) *model.Cart {
	cloned := &model.Cart{
		ID:    c.ID,
		Lines: make([]model.CartLine, len(c.Lines)),
	}
	for i, line := range c.Lines {
		cloned.Lines[i] = model.CartLine{
			Product:  cloneProduct(line.Product),
			Quantity: line.Quantity,
		}
	}
	if c.Coupon != nil {
		coupon := *c.Coupon
		cloned.Coupon = &coupon
	}
	return cloned
}

package repository

import (
	"context"
	"sync"

	"kart-store/internal/model"

	"github.com/rs/zerolog"
)

// productRepository implements ProductRepository with an in-memory store.
// All storefront state is transient and process-local; the RWMutex only
// guards against concurrent HTTP requests.
type productRepository struct {
	mu       sync.RWMutex
	products []model.Product
	logger   zerolog.Logger
}

// NewProductRepository creates a new in-memory product repository.
func NewProductRepository(logger zerolog.Logger) ProductRepository {
	return &productRepository{
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// GetAll retrieves all products in insertion order.
func (r *productRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]model.Product, len(r.products))
	for i, p := range r.products {
		products[i] = cloneProduct(p)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID, or nil if absent.
func (r *productRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			product := cloneProduct(p)
			return &product, nil
		}
	}

	r.logger.Debug().Str("product_id", id).Msg("product not found")
	return nil, nil
}

// Create appends a new product to the catalogue.
func (r *productRepository) Create(ctx context.Context, product model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if p.ID == product.ID {
			r.logger.Warn().Str("product_id", product.ID).Msg("duplicate product ID")
			return model.ErrDuplicateProduct
		}
	}

	r.products = append(r.products, cloneProduct(product))
	return nil
}

// Update replaces an existing product, including its discount tiers.
func (r *productRepository) Update(ctx context.Context, product model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == product.ID {
			r.products[i] = cloneProduct(product)
			return nil
		}
	}

	r.logger.Debug().Str("product_id", product.ID).Msg("product not found for update")
	return model.ErrProductNotFound
}

// cloneProduct copies a product including its discount slice, so callers
// can never mutate the stored catalogue through a returned value.
func cloneProduct(p model.Product) model.Product {
	cloned := p
	cloned.Discounts = make([]model.Discount, len(p.Discounts))
	copy(cloned.Discounts, p.Discounts)
	return cloned
}

package service

import (
	"context"
	"fmt"

	"kart-store/internal/model"
	"kart-store/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// GetAll retrieves the full catalogue.
func (s *productService) GetAll(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get all products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	s.logger.Debug().Int("count", len(products)).Msg("retrieved products")
	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if id == "" {
		s.logger.Warn().Msg("product ID is empty")
		return nil, model.ErrProductNotFound
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// Create adds a new product; an empty ID gets a generated one.
func (s *productService) Create(ctx context.Context, product model.Product) (*model.Product, error) {
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	if product.Discounts == nil {
		product.Discounts = []model.Discount{}
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Warn().Err(err).Str("product_id", product.ID).Msg("failed to create product")
		return nil, err
	}

	s.logger.Info().
		Str("product_id", product.ID).
		Str("name", product.Name).
		Msg("product created")

	return &product, nil
}

// Update replaces an existing product, including its discount tiers.
// The admin view's add/remove discount flows come through here as full
// product replacements.
func (s *productService) Update(ctx context.Context, product model.Product) (*model.Product, error) {
	if product.Discounts == nil {
		product.Discounts = []model.Discount{}
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		s.logger.Warn().Err(err).Str("product_id", product.ID).Msg("failed to update product")
		return nil, err
	}

	s.logger.Info().
		Str("product_id", product.ID).
		Int("discount_count", len(product.Discounts)).
		Msg("product updated")

	return &product, nil
}

package service

import (
	"context"
	"fmt"

	"kart-store/internal/cart"
	"kart-store/internal/model"
	"kart-store/internal/pricing"
	"kart-store/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// cartService implements CartService. It joins the stored cart state
// with the current catalogue, delegates every mutation to the pure cart
// functions, and replaces the stored state wholesale.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	couponRepo  repository.CouponRepository
	logger      zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	couponRepo repository.CouponRepository,
	logger zerolog.Logger,
) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		couponRepo:  couponRepo,
		logger:      logger.With().Str("service", "cart").Logger(),
	}
}

// Create allocates a new empty cart.
func (s *cartService) Create(ctx context.Context) (*CartView, error) {
	c, err := s.cartRepo.Create(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create cart")
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}

	s.logger.Info().Str("cart_id", c.ID.String()).Msg("cart created")
	return s.view(c), nil
}

// Get retrieves a cart with its current pricing figures.
func (s *cartService) Get(ctx context.Context, id uuid.UUID) (*CartView, error) {
	c, err := s.getCart(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Lines, err = s.refresh(ctx, c.Lines)
	if err != nil {
		return nil, err
	}

	return s.view(c), nil
}

// Catalog lists the catalogue annotated with the stock remaining once
// the cart's committed quantities are taken into account.
func (s *cartService) Catalog(ctx context.Context, id uuid.UUID) ([]ProductAvailability, error) {
	c, err := s.getCart(ctx, id)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get catalogue")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	availability := make([]ProductAvailability, len(products))
	for i, p := range products {
		availability[i] = ProductAvailability{
			Product:        p,
			RemainingStock: cart.RemainingStock(p, c.Lines),
		}
	}
	return availability, nil
}

// AddItem puts one more unit of the product into the cart. Adding an
// out-of-stock product, or adding past stock, leaves the quantity
// unchanged rather than erroring.
func (s *cartService) AddItem(ctx context.Context, id uuid.UUID, productID string) (*CartView, error) {
	c, err := s.getCart(ctx, id)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", productID).Msg("failed to get product")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		s.logger.Debug().Str("product_id", productID).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	c.Lines, err = s.refresh(ctx, c.Lines)
	if err != nil {
		return nil, err
	}
	c.Lines = cart.Add(c.Lines, *product)

	return s.save(ctx, c)
}

// RemoveItem deletes the cart line for the product; absent is a no-op.
func (s *cartService) RemoveItem(ctx context.Context, id uuid.UUID, productID string) (*CartView, error) {
	c, err := s.getCart(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Lines, err = s.refresh(ctx, c.Lines)
	if err != nil {
		return nil, err
	}
	c.Lines = cart.Remove(c.Lines, productID)

	return s.save(ctx, c)
}

// UpdateQuantity sets a line's quantity, clamped to the product's
// current stock; zero or negative removes the line, an absent product ID
// is a no-op.
func (s *cartService) UpdateQuantity(ctx context.Context, id uuid.UUID, productID string, quantity int) (*CartView, error) {
	c, err := s.getCart(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Lines, err = s.refresh(ctx, c.Lines)
	if err != nil {
		return nil, err
	}
	c.Lines = cart.SetQuantity(c.Lines, productID, quantity)

	return s.save(ctx, c)
}

// ApplyCoupon selects the coupon with the given code, replacing any
// prior selection unconditionally. An empty code clears the selection.
func (s *cartService) ApplyCoupon(ctx context.Context, id uuid.UUID, code string) (*CartView, error) {
	c, err := s.getCart(ctx, id)
	if err != nil {
		return nil, err
	}

	if code == "" {
		c.Coupon = nil
	} else {
		coupon, err := s.couponRepo.GetByCode(ctx, code)
		if err != nil {
			s.logger.Error().Err(err).Str("coupon_code", code).Msg("failed to get coupon")
			return nil, fmt.Errorf("failed to get coupon: %w", err)
		}
		if coupon == nil {
			s.logger.Debug().Str("coupon_code", code).Msg("coupon not found")
			return nil, model.ErrCouponNotFound
		}
		c.Coupon = coupon
	}

	c.Lines, err = s.refresh(ctx, c.Lines)
	if err != nil {
		return nil, err
	}

	return s.save(ctx, c)
}

// getCart loads a cart or reports it missing.
func (s *cartService) getCart(ctx context.Context, id uuid.UUID) (*model.Cart, error) {
	c, err := s.cartRepo.Get(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("cart_id", id.String()).Msg("failed to get cart")
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	if c == nil {
		s.logger.Debug().Str("cart_id", id.String()).Msg("cart not found")
		return nil, model.ErrCartNotFound
	}
	return c, nil
}

// refresh re-reads every line's product from the catalogue so stock and
// price checks never act on a copy that diverged from the catalogue. A
// line whose product vanished keeps its last known product.
func (s *cartService) refresh(ctx context.Context, lines []model.CartLine) ([]model.CartLine, error) {
	refreshed := make([]model.CartLine, len(lines))
	for i, line := range lines {
		product, err := s.productRepo.GetByID(ctx, line.Product.ID)
		if err != nil {
			s.logger.Error().Err(err).Str("product_id", line.Product.ID).Msg("failed to refresh cart line")
			return nil, fmt.Errorf("failed to refresh cart line: %w", err)
		}
		refreshed[i] = line
		if product != nil {
			refreshed[i].Product = *product
		}
	}
	return refreshed, nil
}

// save stores the cart and returns its freshly priced view.
func (s *cartService) save(ctx context.Context, c *model.Cart) (*CartView, error) {
	if err := s.cartRepo.Save(ctx, c); err != nil {
		s.logger.Error().Err(err).Str("cart_id", c.ID.String()).Msg("failed to save cart")
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return s.view(c), nil
}

// view assembles the cart view: per-line item totals plus the cart
// summary with the selected coupon applied to the aggregate.
func (s *cartService) view(c *model.Cart) *CartView {
	lines := make([]CartLineView, len(c.Lines))
	for i, line := range c.Lines {
		lines[i] = CartLineView{
			Product:  line.Product,
			Quantity: line.Quantity,
			Totals:   pricing.ItemTotals(line),
		}
	}

	return &CartView{
		ID:      c.ID,
		Lines:   lines,
		Coupon:  c.Coupon,
		Summary: pricing.CartTotals(c.Lines, c.Coupon),
	}
}

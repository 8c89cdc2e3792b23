package service

import (
	"context"
	"testing"

	"kart-store/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("empty ID", func(t *testing.T) {
		repo := new(MockProductRepository)
		svc := NewProductService(repo, zerolog.Nop())

		product, err := svc.GetByID(ctx, "")

		assert.Nil(t, product)
		assert.ErrorIs(t, err, model.ErrProductNotFound)
		repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("GetByID", ctx, "p9").Return(nil, nil)
		svc := NewProductService(repo, zerolog.Nop())

		product, err := svc.GetByID(ctx, "p9")

		assert.Nil(t, product)
		assert.ErrorIs(t, err, model.ErrProductNotFound)
	})

	t.Run("found", func(t *testing.T) {
		want := tieredProduct("p1", 10000, 20, 0.1)
		repo := new(MockProductRepository)
		repo.On("GetByID", ctx, "p1").Return(&want, nil)
		svc := NewProductService(repo, zerolog.Nop())

		product, err := svc.GetByID(ctx, "p1")

		require.NoError(t, err)
		assert.Equal(t, &want, product)
	})
}

func TestProductService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("generates an ID when empty", func(t *testing.T) {
		repo := new(MockProductRepository)
		var created model.Product
		repo.On("Create", ctx, mock.AnythingOfType("model.Product")).Run(func(args mock.Arguments) {
			created = args.Get(1).(model.Product)
		}).Return(nil)
		svc := NewProductService(repo, zerolog.Nop())

		product, err := svc.Create(ctx, model.Product{Name: "New Product", Price: 5000, Stock: 3})

		require.NoError(t, err)
		require.NotEmpty(t, product.ID)
		_, parseErr := uuid.Parse(product.ID)
		assert.NoError(t, parseErr)
		assert.Equal(t, product.ID, created.ID)
		assert.NotNil(t, created.Discounts)
	})

	t.Run("keeps a provided ID", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("Create", ctx, mock.AnythingOfType("model.Product")).Return(nil)
		svc := NewProductService(repo, zerolog.Nop())

		product, err := svc.Create(ctx, model.Product{ID: "p1", Name: "New Product", Price: 5000, Stock: 3})

		require.NoError(t, err)
		assert.Equal(t, "p1", product.ID)
	})

	t.Run("duplicate ID error passes through", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("Create", ctx, mock.AnythingOfType("model.Product")).Return(model.ErrDuplicateProduct)
		svc := NewProductService(repo, zerolog.Nop())

		product, err := svc.Create(ctx, model.Product{ID: "p1", Name: "New Product", Price: 5000, Stock: 3})

		assert.Nil(t, product)
		assert.ErrorIs(t, err, model.ErrDuplicateProduct)
	})
}

func TestProductService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces discounts wholesale", func(t *testing.T) {
		repo := new(MockProductRepository)
		var updated model.Product
		repo.On("Update", ctx, mock.AnythingOfType("model.Product")).Run(func(args mock.Arguments) {
			updated = args.Get(1).(model.Product)
		}).Return(nil)
		svc := NewProductService(repo, zerolog.Nop())

		_, err := svc.Update(ctx, model.Product{ID: "p1", Name: "Product 1", Price: 10000, Stock: 20})

		require.NoError(t, err)
		assert.NotNil(t, updated.Discounts)
		assert.Empty(t, updated.Discounts)
	})

	t.Run("not found error passes through", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("Update", ctx, mock.AnythingOfType("model.Product")).Return(model.ErrProductNotFound)
		svc := NewProductService(repo, zerolog.Nop())

		product, err := svc.Update(ctx, model.Product{ID: "p9", Name: "Nope", Price: 1, Stock: 1})

		assert.Nil(t, product)
		assert.ErrorIs(t, err, model.ErrProductNotFound)
	})
}

func TestProductService_GetAll(t *testing.T) {
	ctx := context.Background()

	want := []model.Product{
		tieredProduct("p1", 10000, 20, 0.1),
		tieredProduct("p2", 20000, 10, 0.15),
	}
	repo := new(MockProductRepository)
	repo.On("GetAll", ctx).Return(want, nil)
	svc := NewProductService(repo, zerolog.Nop())

	products, err := svc.GetAll(ctx)

	require.NoError(t, err)
	assert.Equal(t, want, products)
}

package repository

import (
	"context"
	"testing"

	"kart-store/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCoupon(code string) model.Coupon {
	return model.Coupon{
		Name:          "Coupon " + code,
		Code:          code,
		DiscountType:  model.DiscountAmount,
		DiscountValue: 5000,
	}
}

func TestCouponRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewCouponRepository(zerolog.Nop())

	require.NoError(t, repo.Create(ctx, testCoupon("AMOUNT5000")))
	require.NoError(t, repo.Create(ctx, testCoupon("PERCENT10")))

	t.Run("get by code", func(t *testing.T) {
		coupon, err := repo.GetByCode(ctx, "PERCENT10")
		require.NoError(t, err)
		require.NotNil(t, coupon)
		assert.Equal(t, "Coupon PERCENT10", coupon.Name)
	})

	t.Run("get by unknown code returns nil", func(t *testing.T) {
		coupon, err := repo.GetByCode(ctx, "NOPE")
		require.NoError(t, err)
		assert.Nil(t, coupon)
	})

	t.Run("get all preserves insertion order", func(t *testing.T) {
		coupons, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, coupons, 2)
		assert.Equal(t, "AMOUNT5000", coupons[0].Code)
		assert.Equal(t, "PERCENT10", coupons[1].Code)
	})
}

func TestCouponRepository_CreateDuplicateCode(t *testing.T) {
	ctx := context.Background()
	repo := NewCouponRepository(zerolog.Nop())

	require.NoError(t, repo.Create(ctx, testCoupon("AMOUNT5000")))

	err := repo.Create(ctx, testCoupon("AMOUNT5000"))
	assert.ErrorIs(t, err, model.ErrDuplicateCoupon)
}

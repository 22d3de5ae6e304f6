package queries_test

import (
	"context"

	"shop/internal/core/domain/model/catalog"
	"shop/internal/core/domain/model/coupon"
	"shop/internal/core/domain/model/inventory"
	"shop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
)

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) FindVariantsByIDs(ctx context.Context, ids []kernel.UUID) ([]catalog.VariantSummary, error) {
	args := m.Called(ctx, ids)
	if variants, ok := args.Get(0).([]catalog.VariantSummary); ok {
		return variants, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) GetStock(ctx context.Context, skuID kernel.UUID) (*inventory.Stock, error) {
	args := m.Called(ctx, skuID)
	if s, ok := args.Get(0).(*inventory.Stock); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) SaveStock(ctx context.Context, skuID kernel.UUID, stock *inventory.Stock) error {
	args := m.Called(ctx, skuID, stock)
	return args.Error(0)
}

type MockCouponRepository struct{ mock.Mock }

func (m *MockCouponRepository) FindByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	args := m.Called(ctx, code)
	if c, ok := args.Get(0).(*coupon.Coupon); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCouponRepository) UpdateUsageCount(ctx context.Context, c *coupon.Coupon) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

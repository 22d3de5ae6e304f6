package commands_test

import (
	"context"
	"log/slog"
	"time"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/catalog"
	"shop/internal/core/domain/model/coupon"
	"shop/internal/core/domain/model/inventory"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var discardLogger = slog.New(slog.DiscardHandler)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetNextSequenceNumber(ctx context.Context, year int) (int64, error) {
	args := m.Called(ctx, year)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) GetPendingCreatedBefore(ctx context.Context, t time.Time, limit int) ([]*order.Order, error) {
	args := m.Called(ctx, t, limit)
	if orders, ok := args.Get(0).([]*order.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

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

type MockShippingMethodRepository struct{ mock.Mock }

func (m *MockShippingMethodRepository) FindByID(ctx context.Context, id kernel.UUID) (catalog.ShippingMethod, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.ShippingMethod), args.Error(1)
}

type MockPaymentMethodRepository struct{ mock.Mock }

func (m *MockPaymentMethodRepository) FindByID(ctx context.Context, id kernel.UUID) (catalog.PaymentMethod, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.PaymentMethod), args.Error(1)
}

// MockUoW satisfies every unit of work flavour used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) CouponRepository() ports.CouponRepository {
	args := m.Called()
	return args.Get(0).(ports.CouponRepository)
}

func (m *MockUoW) ShippingMethodRepository() ports.ShippingMethodRepository {
	args := m.Called()
	return args.Get(0).(ports.ShippingMethodRepository)
}

func (m *MockUoW) PaymentMethodRepository() ports.PaymentMethodRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentMethodRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCouponUoWFactory struct{ mock.Mock }

func (m *MockCouponUoWFactory) Create() commands.CouponUoW {
	args := m.Called()
	return args.Get(0).(commands.CouponUoW)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	args := m.Called()
	return args.Get(0).(commands.CheckoutUoW)
}

type MockStockUoWFactory struct{ mock.Mock }

func (m *MockStockUoWFactory) Create() commands.StockUoW {
	args := m.Called()
	return args.Get(0).(commands.StockUoW)
}

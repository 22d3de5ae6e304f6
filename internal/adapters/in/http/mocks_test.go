package http_test

import (
	"context"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/inventory"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/services"

	"github.com/stretchr/testify/mock"
)

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockChangeOrderStatusHandler struct{ mock.Mock }

func (m *MockChangeOrderStatusHandler) Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCancelOrderHandler struct{ mock.Mock }

func (m *MockCancelOrderHandler) Handle(ctx context.Context, cmd commands.CancelOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockAddDeliveryInfoHandler struct{ mock.Mock }

func (m *MockAddDeliveryInfoHandler) Handle(ctx context.Context, cmd commands.AddDeliveryInfoCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockRedeemCouponHandler struct{ mock.Mock }

func (m *MockRedeemCouponHandler) Handle(ctx context.Context, cmd commands.RedeemCouponCommand) (services.CouponApplication, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(services.CouponApplication), args.Error(1)
}

type MockGetOrderHandler struct{ mock.Mock }

func (m *MockGetOrderHandler) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetOrderQueryResponse), args.Error(1)
}

type MockPreviewCartHandler struct{ mock.Mock }

func (m *MockPreviewCartHandler) Handle(ctx context.Context, query queries.PreviewCartQuery) (queries.PreviewCartQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.PreviewCartQueryResponse), args.Error(1)
}

type MockAdjustStockHandler struct{ mock.Mock }

func (m *MockAdjustStockHandler) Handle(ctx context.Context, cmd commands.AdjustStockCommand) (*inventory.Stock, error) {
	args := m.Called(ctx, cmd)
	if s, ok := args.Get(0).(*inventory.Stock); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

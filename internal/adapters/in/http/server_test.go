package http_test

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "shop/internal/adapters/in/http"
	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/inventory"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/services"
	"shop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	createOrder  *MockCreateOrderHandler
	changeStatus *MockChangeOrderStatusHandler
	cancelOrder  *MockCancelOrderHandler
	addDelivery  *MockAddDeliveryInfoHandler
	redeemCoupon *MockRedeemCouponHandler
	adjustStock  *MockAdjustStockHandler
	getOrder     *MockGetOrderHandler
	previewCart  *MockPreviewCartHandler
	metrics      *httpadapter.Metrics
	echo         *echo.Echo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		createOrder:  new(MockCreateOrderHandler),
		changeStatus: new(MockChangeOrderStatusHandler),
		cancelOrder:  new(MockCancelOrderHandler),
		addDelivery:  new(MockAddDeliveryInfoHandler),
		redeemCoupon: new(MockRedeemCouponHandler),
		adjustStock:  new(MockAdjustStockHandler),
		getOrder:     new(MockGetOrderHandler),
		previewCart:  new(MockPreviewCartHandler),
		metrics:      httpadapter.NewMetrics(prometheus.NewRegistry()),
	}
	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:       f.createOrder,
		ChangeOrderStatus: f.changeStatus,
		CancelOrder:       f.cancelOrder,
		AddDeliveryInfo:   f.addDelivery,
		RedeemCoupon:      f.redeemCoupon,
		AdjustStock:       f.adjustStock,
		GetOrder:          f.getOrder,
		PreviewCart:       f.previewCart,
	}, f.metrics, slog.New(slog.DiscardHandler))
	f.echo = httpadapter.NewEcho(server)
	return f
}

func (f *fixture) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()

	number, err := order.NewOrderNumber(2024, 7)
	require.NoError(t, err)
	customer, err := order.NewCustomerInfo("Yuki Tanaka", "yuki@example.com", "080-0000-1111")
	require.NoError(t, err)
	address, err := order.NewAddress("060-0001", "Hokkaido", "Sapporo", "Kita 1-jo 1-1", "")
	require.NoError(t, err)
	shipping, err := order.NewShippingInfo(kernel.NewUUID(), "Standard", kernel.MustMoneyFromYen(800), address)
	require.NoError(t, err)
	payment, err := order.NewPaymentInfo(kernel.NewUUID(), "Cash on delivery", kernel.MustMoneyFromYen(330), nil)
	require.NoError(t, err)
	item, err := order.NewOrderItem(kernel.NewUUID(), "CAP-GRN", "Wool Cap", "Green", kernel.MustMoneyFromYen(3000), 2)
	require.NoError(t, err)
	pricing, err := order.CalculateOrderPricing(kernel.MustMoneyFromYen(6000), shipping.Fee(), payment.Fee())
	require.NoError(t, err)

	now := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
	o, err := order.RestoreOrder(order.RestoreOrderParams{
		ID:        kernel.NewUUID(),
		Number:    number,
		Customer:  customer,
		Items:     []order.OrderItem{item},
		Shipping:  shipping,
		Payment:   payment,
		Pricing:   pricing,
		Status:    order.Pending,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)
	return o
}

const createOrderBody = `{
	"customer": {"name": "Yuki Tanaka", "email": "yuki@example.com", "phone": "080-0000-1111"},
	"shipping_address": {"postal_code": "060-0001", "prefecture": "Hokkaido", "city": "Sapporo", "line1": "Kita 1-jo 1-1"},
	"items": [{"sku_id": "7f1f7e84-4a5c-4d1e-9a39-5d7c8e3b2a10", "quantity": 2}],
	"shipping_method_id": "0b6f9f6e-3b0a-4f4e-8a43-3d4a3f3b8c21",
	"payment_method_id": "9c3e2d1a-5b6c-4e7f-8a9b-0c1d2e3f4a5b"
}`

func TestHealth(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestCreateOrder(t *testing.T) {
	f := newFixture(t)
	o := newOrder(t)
	f.createOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
		lines := cmd.Lines()
		return len(lines) == 1 && lines[0].Quantity == 2 && cmd.Customer().Name() == "Yuki Tanaka"
	})).Return(o, nil).Once()

	rec := f.do(http.MethodPost, "/api/v1/orders", createOrderBody)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	resp := decode[httpadapter.OrderResponse](t, rec)
	assert.Equal(t, o.ID().String(), resp.ID)
	assert.Equal(t, "ORD-2024-000007", resp.Number)
	assert.Equal(t, "Pending", resp.Status)
	assert.Equal(t, int64(6000), resp.Pricing.Subtotal)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "CAP-GRN", resp.Items[0].SKUCode)
	assert.InDelta(t, 1.0, testutil.ToFloat64(f.metrics.OrdersCreated), 0)
	f.createOrder.AssertExpectations(t)
}

func TestCreateOrder_ValidationFailure(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/orders", `{"customer": {"name": "Yuki"}, "items": []}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode[httpadapter.ErrorResponse](t, rec)
	assert.Equal(t, "validation failed", resp.Message)
	assert.Contains(t, resp.Fields, "CreateOrderRequest.Customer.Email")
	assert.Contains(t, resp.Fields, "CreateOrderRequest.Items")
	f.createOrder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestCreateOrder_MalformedBody(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/orders", `{"items": `)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid request body", decode[httpadapter.ErrorResponse](t, rec).Message)
}

func TestCreateOrder_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown sku", errs.NewObjectNotFoundError("sku", "x"), http.StatusNotFound},
		{"insufficient stock", errs.NewInsufficientStockError(2, 1), http.StatusBadRequest},
		{"lost race", errs.ErrConcurrencyConflict, http.StatusConflict},
		{"database down", errors.New("dial tcp: connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.createOrder.On("Handle", mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			rec := f.do(http.MethodPost, "/api/v1/orders", createOrderBody)

			require.Equal(t, tt.want, rec.Code)
			resp := decode[httpadapter.ErrorResponse](t, rec)
			assert.Equal(t, tt.want, resp.Code)
			if tt.want == http.StatusInternalServerError {
				assert.Equal(t, "Internal Server Error", resp.Message)
			}
			assert.InDelta(t, 0.0, testutil.ToFloat64(f.metrics.OrdersCreated), 0)
		})
	}
}

func TestGetOrder(t *testing.T) {
	f := newFixture(t)
	o := newOrder(t)
	f.getOrder.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetOrderQuery) bool {
		return q.OrderID().IsEqual(o.ID())
	})).Return(queries.NewGetOrderQueryResponse(o), nil).Once()

	rec := f.do(http.MethodGet, "/api/v1/orders/"+o.ID().String(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[httpadapter.OrderResponse](t, rec)
	assert.Equal(t, "Sapporo", resp.ShippingAddress.City)
	assert.Equal(t, int64(330), resp.PaymentMethod.Fee)
}

func TestGetOrder_NotFound(t *testing.T) {
	f := newFixture(t)
	f.getOrder.On("Handle", mock.Anything, mock.Anything).
		Return(queries.GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", "x")).Once()

	rec := f.do(http.MethodGet, "/api/v1/orders/"+kernel.NewUUID().String(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetOrder_InvalidID(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/orders/not-a-uuid", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	f.getOrder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestChangeOrderStatus(t *testing.T) {
	f := newFixture(t)
	o := newOrder(t)
	require.NoError(t, o.MarkAsPaid())
	f.changeStatus.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ChangeOrderStatusCommand) bool {
		return cmd.Status() == order.Paid
	})).Return(o, nil).Once()

	rec := f.do(http.MethodPost, "/api/v1/orders/"+o.ID().String()+"/status", `{"status": "paid"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Paid", decode[httpadapter.OrderResponse](t, rec).Status)
	assert.InDelta(t, 1.0, testutil.ToFloat64(f.metrics.OrderTransitions.WithLabelValues("Paid")), 0)
}

func TestChangeOrderStatus_Errors(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/status", `{"status": "lost"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("transition not allowed", func(t *testing.T) {
		f := newFixture(t)
		f.changeStatus.On("Handle", mock.Anything, mock.Anything).
			Return(nil, errs.NewBusinessRuleViolationError("cannot move from Pending to Shipped")).Once()

		rec := f.do(http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/status", `{"status": "shipped"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("stock changed concurrently", func(t *testing.T) {
		f := newFixture(t)
		f.changeStatus.On("Handle", mock.Anything, mock.Anything).
			Return(nil, errs.ErrConcurrencyConflict).Once()

		rec := f.do(http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/status", `{"status": "shipped"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestCancelOrder(t *testing.T) {
	f := newFixture(t)
	o := newOrder(t)
	require.NoError(t, o.Cancel("changed my mind"))
	f.cancelOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CancelOrderCommand) bool {
		return cmd.Reason() == "changed my mind"
	})).Return(o, nil).Once()

	rec := f.do(http.MethodPost, "/api/v1/orders/"+o.ID().String()+"/cancel", `{"reason": "changed my mind"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[httpadapter.OrderResponse](t, rec)
	assert.Equal(t, "Cancelled", resp.Status)
	assert.NotNil(t, resp.CancelledAt)
	assert.InDelta(t, 1.0, testutil.ToFloat64(f.metrics.OrderTransitions.WithLabelValues("Cancelled")), 0)
}

func TestAddDeliveryInfo(t *testing.T) {
	f := newFixture(t)
	o := newOrder(t)
	require.NoError(t, o.MarkAsPaid())
	info, err := order.NewDeliveryInfo("Sagawa", "SG-0001", nil)
	require.NoError(t, err)
	require.NoError(t, o.AddDeliveryInfo(info))
	f.addDelivery.On("Handle", mock.Anything, mock.Anything).Return(o, nil).Once()

	rec := f.do(http.MethodPost, "/api/v1/orders/"+o.ID().String()+"/delivery",
		`{"carrier": "Sagawa", "tracking_number": "SG-0001"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[httpadapter.OrderResponse](t, rec)
	require.NotNil(t, resp.Delivery)
	assert.Equal(t, "SG-0001", resp.Delivery.TrackingNumber)
}

func TestAddDeliveryInfo_MissingCarrier(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/delivery", `{"tracking_number": "SG-0001"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[httpadapter.ErrorResponse](t, rec).Fields, "AddDeliveryInfoRequest.Carrier")
}

func TestPreviewCart(t *testing.T) {
	f := newFixture(t)
	skuID := kernel.NewUUID()
	f.previewCart.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.PreviewCartQuery) bool {
		return q.CouponCode() == "WELCOME" && len(q.Lines()) == 1
	})).Return(queries.PreviewCartQueryResponse{
		Items:         []queries.CartLineView{{SKUID: skuID, ProductID: kernel.NewUUID(), ProductName: "Wool Cap (Green)", UnitPrice: 3000, Quantity: 2, Subtotal: 6000}},
		ItemCount:     1,
		TotalQuantity: 2,
		Subtotal:      6000,
		TaxAmount:     600,
		TotalWithTax:  6600,
		Coupon:        &queries.CouponPreview{Code: "WELCOME", Message: "coupon has expired"},
	}, nil).Once()

	rec := f.do(http.MethodPost, "/api/v1/carts/preview",
		`{"items": [{"sku_id": "`+skuID.String()+`", "quantity": 2}], "coupon_code": "welcome"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[httpadapter.CartResponse](t, rec)
	assert.Equal(t, int64(6600), resp.TotalWithTax)
	require.NotNil(t, resp.Coupon)
	assert.False(t, resp.Coupon.Applied)
	assert.Equal(t, "coupon has expired", resp.Coupon.Message)
}

func TestRedeemCoupon(t *testing.T) {
	f := newFixture(t)
	f.redeemCoupon.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.RedeemCouponCommand) bool {
		return cmd.Code() == "SUMMER"
	})).Return(services.CouponApplication{
		CouponCode:       "SUMMER",
		DiscountAmount:   kernel.MustMoneyFromYen(600),
		DiscountedAmount: kernel.MustMoneyFromYen(5400),
		Message:          "coupon SUMMER applied",
	}, nil).Once()

	rec := f.do(http.MethodPost, "/api/v1/coupons/summer/redeem",
		`{"items": [{"sku_id": "`+kernel.NewUUID().String()+`", "quantity": 2}]}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[httpadapter.CouponResponse](t, rec)
	assert.True(t, resp.Applied)
	assert.Equal(t, int64(600), resp.DiscountAmount)
	assert.InDelta(t, 1.0, testutil.ToFloat64(f.metrics.CouponsRedeemed), 0)
}

func TestRedeemCoupon_Invalid(t *testing.T) {
	f := newFixture(t)
	f.redeemCoupon.On("Handle", mock.Anything, mock.Anything).
		Return(services.CouponApplication{}, errs.NewInvalidCouponError("SUMMER", "coupon usage limit reached")).Once()

	rec := f.do(http.MethodPost, "/api/v1/coupons/SUMMER/redeem",
		`{"items": [{"sku_id": "`+kernel.NewUUID().String()+`", "quantity": 1}]}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[httpadapter.ErrorResponse](t, rec).Message, "coupon usage limit reached")
	assert.InDelta(t, 0.0, testutil.ToFloat64(f.metrics.CouponsRedeemed), 0)
}

func TestAdjustStock(t *testing.T) {
	f := newFixture(t)
	skuID := kernel.NewUUID()
	stock, err := inventory.RestoreStock(15, 4, inventory.DefaultLowStockThreshold, 2)
	require.NoError(t, err)
	f.adjustStock.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AdjustStockCommand) bool {
		return cmd.SKUID() == skuID && cmd.Adjustment().IsIncrease() && cmd.Adjustment().Quantity() == 5
	})).Return(stock, nil).Once()

	rec := f.do(http.MethodPost, "/api/v1/skus/"+skuID.String()+"/stock/adjustments",
		`{"direction": "increase", "quantity": 5}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[httpadapter.StockResponse](t, rec)
	assert.Equal(t, skuID.String(), resp.SKUID)
	assert.Equal(t, 15, resp.Total)
	assert.Equal(t, 11, resp.Available)
	assert.False(t, resp.SoldOut)
	f.adjustStock.AssertExpectations(t)
}

func TestAdjustStock_Errors(t *testing.T) {
	t.Run("unknown direction", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/skus/"+kernel.NewUUID().String()+"/stock/adjustments",
			`{"direction": "sideways", "quantity": 5}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "oneof", decode[httpadapter.ErrorResponse](t, rec).Fields["AdjustStockRequest.Direction"])
		f.adjustStock.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("write-off beyond available", func(t *testing.T) {
		f := newFixture(t)
		f.adjustStock.On("Handle", mock.Anything, mock.Anything).
			Return(nil, errs.NewInsufficientStockError(9, 2)).Once()

		rec := f.do(http.MethodPost, "/api/v1/skus/"+kernel.NewUUID().String()+"/stock/adjustments",
			`{"direction": "decrease", "quantity": 9}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("concurrent update", func(t *testing.T) {
		f := newFixture(t)
		f.adjustStock.On("Handle", mock.Anything, mock.Anything).Return(nil, errs.ErrConcurrencyConflict).Once()

		rec := f.do(http.MethodPost, "/api/v1/skus/"+kernel.NewUUID().String()+"/stock/adjustments",
			`{"direction": "increase", "quantity": 1}`)

		require.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(t)
	f.do(http.MethodGet, "/health", "")

	rec := f.do(http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `shop_http_requests_total{method="GET",route="/health",status="200"} 1`)
}

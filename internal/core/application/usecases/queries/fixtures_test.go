package queries_test

import (
	"encoding/json"
	"testing"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

// newTestOrder returns a pending order ORD-2024-000042 with two mug lines
// (3 × ¥1,200 and 1 × ¥1,000).
func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	number, err := order.NewOrderNumber(2024, 42)
	require.NoError(t, err)
	customer, err := order.NewCustomerInfo("Taro Yamada", "taro@example.com", "03-1234-5678")
	require.NoError(t, err)
	address, err := order.NewAddress("150-0001", "Tokyo", "Shibuya-ku", "Jingumae 1-2-3", "")
	require.NoError(t, err)
	shipping, err := order.NewShippingInfo(kernel.NewUUID(), "Express", kernel.MustMoneyFromYen(600), address)
	require.NoError(t, err)
	payment, err := order.NewPaymentInfo(kernel.NewUUID(), "Credit card", kernel.ZeroMoney(),
		json.RawMessage(`{"brand":"visa"}`))
	require.NoError(t, err)

	blue, err := order.NewOrderItem(kernel.NewUUID(), "MUG-BLU", "Stoneware Mug", "Blue", kernel.MustMoneyFromYen(1200), 3)
	require.NoError(t, err)
	red, err := order.NewOrderItem(kernel.NewUUID(), "MUG-RED", "Stoneware Mug", "Red", kernel.MustMoneyFromYen(1000), 1)
	require.NoError(t, err)

	pricing, err := order.CalculateOrderPricing(kernel.MustMoneyFromYen(4600), shipping.Fee(), payment.Fee())
	require.NoError(t, err)

	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	o, err := order.RestoreOrder(order.RestoreOrderParams{
		ID:        kernel.NewUUID(),
		Number:    number,
		Customer:  customer,
		Items:     []order.OrderItem{blue, red},
		Shipping:  shipping,
		Payment:   payment,
		Pricing:   pricing,
		Status:    order.Pending,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	})
	require.NoError(t, err)
	return o
}

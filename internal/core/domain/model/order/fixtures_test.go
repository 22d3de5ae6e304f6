package order_test

import (
	"testing"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func newCustomer(t *testing.T) order.CustomerInfo {
	t.Helper()
	c, err := order.NewCustomerInfo("Hanako Yamada", "hanako@example.com", "090-1234-5678")
	require.NoError(t, err)
	return c
}

func newAddress(t *testing.T) order.Address {
	t.Helper()
	a, err := order.NewAddress("150-0001", "Tokyo", "Shibuya-ku", "Jingumae 1-2-3", "Room 401")
	require.NoError(t, err)
	return a
}

func newShipping(t *testing.T, fee int64) order.ShippingInfo {
	t.Helper()
	s, err := order.NewShippingInfo(kernel.NewUUID(), "Standard", kernel.MustMoneyFromYen(fee), newAddress(t))
	require.NoError(t, err)
	return s
}

func newPayment(t *testing.T, fee int64) order.PaymentInfo {
	t.Helper()
	p, err := order.NewPaymentInfo(kernel.NewUUID(), "Cash on delivery", kernel.MustMoneyFromYen(fee), nil)
	require.NoError(t, err)
	return p
}

func newOrderItem(t *testing.T, price int64, quantity int) order.OrderItem {
	t.Helper()
	item, err := order.NewOrderItem(kernel.NewUUID(), "SHIRT-RED-M", "Linen Shirt", "Red / M", kernel.MustMoneyFromYen(price), quantity)
	require.NoError(t, err)
	return item
}

func newNumber(t *testing.T) order.OrderNumber {
	t.Helper()
	n, err := order.NewOrderNumber(2024, 123)
	require.NoError(t, err)
	return n
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		newNumber(t),
		newCustomer(t),
		[]order.OrderItem{newOrderItem(t, 1000, 2), newOrderItem(t, 999, 1)},
		newShipping(t, 500),
		newPayment(t, 330),
	)
	require.NoError(t, err)
	return o
}

func orderInStatus(t *testing.T, path ...order.Status) *order.Order {
	t.Helper()
	o := newPendingOrder(t)
	for _, s := range path {
		require.NoError(t, o.TransitionTo(s))
	}
	return o
}

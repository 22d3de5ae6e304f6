package commands_test

import (
	"testing"

	"shop/internal/core/domain/model/catalog"
	"shop/internal/core/domain/model/inventory"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func newCustomer(t *testing.T) order.CustomerInfo {
	t.Helper()
	c, err := order.NewCustomerInfo("Taro Suzuki", "taro@example.com", "03-1234-5678")
	require.NoError(t, err)
	return c
}

func newAddress(t *testing.T) order.Address {
	t.Helper()
	a, err := order.NewAddress("530-0001", "Osaka", "Kita-ku", "Umeda 1-1", "")
	require.NoError(t, err)
	return a
}

func newVariant(t *testing.T, skuID kernel.UUID, price int64, available int) catalog.VariantSummary {
	t.Helper()
	v, err := catalog.NewVariantSummary(catalog.VariantSummaryParams{
		SKUID:       skuID,
		ProductID:   kernel.NewUUID(),
		ProductName: "Canvas Tote",
		SKUName:     "Natural",
		SKUCode:     "TOTE-NAT",
		Price:       kernel.MustMoneyFromYen(price),
		Available:   available,
		IsActive:    true,
	})
	require.NoError(t, err)
	return v
}

func newStock(t *testing.T, total, reserved int) *inventory.Stock {
	t.Helper()
	s, err := inventory.RestoreStock(total, reserved, inventory.DefaultLowStockThreshold, 1)
	require.NoError(t, err)
	return s
}

func newShippingMethod(t *testing.T, fee int64, active bool) catalog.ShippingMethod {
	t.Helper()
	m, err := catalog.NewShippingMethod(kernel.NewUUID(), "Standard", kernel.MustMoneyFromYen(fee), active)
	require.NoError(t, err)
	return m
}

func newPaymentMethod(t *testing.T, code string, fee int64, active bool) catalog.PaymentMethod {
	t.Helper()
	m, err := catalog.NewPaymentMethod(kernel.NewUUID(), code, "Payment "+code, kernel.MustMoneyFromYen(fee), active)
	require.NoError(t, err)
	return m
}

// newOrder returns a Pending order with one line of quantity units of skuID,
// moved along path.
func newOrder(t *testing.T, skuID kernel.UUID, quantity int, path ...order.Status) *order.Order {
	t.Helper()
	item, err := order.NewOrderItem(skuID, "TOTE-NAT", "Canvas Tote", "Natural", kernel.MustMoneyFromYen(1500), quantity)
	require.NoError(t, err)
	shipping, err := order.NewShippingInfo(kernel.NewUUID(), "Standard", kernel.MustMoneyFromYen(500), newAddress(t))
	require.NoError(t, err)
	payment, err := order.NewPaymentInfo(kernel.NewUUID(), "Card", kernel.ZeroMoney(), nil)
	require.NoError(t, err)
	number, err := order.NewOrderNumber(2024, 1)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), number, newCustomer(t), []order.OrderItem{item}, shipping, payment)
	require.NoError(t, err)
	for _, s := range path {
		require.NoError(t, o.TransitionTo(s))
	}
	return o
}

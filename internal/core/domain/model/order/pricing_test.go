package order_test

import (
	"testing"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateOrderPricing(t *testing.T) {
	tests := []struct {
		name                       string
		subtotal, shipping, fee    int64
		expectedTax, expectedTotal int64
	}{
		{"round tax", 1000, 0, 0, 100, 1100},
		{"tax is rounded up", 999, 0, 0, 100, 1099},
		{"fees are taxed", 10000, 800, 440, 1124, 12364},
		{"single yen", 1, 0, 0, 1, 2},
		{"nothing to pay", 0, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := order.CalculateOrderPricing(
				kernel.MustMoneyFromYen(tt.subtotal),
				kernel.MustMoneyFromYen(tt.shipping),
				kernel.MustMoneyFromYen(tt.fee),
			)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedTax, p.TaxAmount().Yen())
			assert.Equal(t, tt.expectedTotal, p.Total().Yen())
			assert.Equal(t, tt.subtotal+tt.shipping+tt.fee+tt.expectedTax, p.Total().Yen())
		})
	}
}

func TestRestoreOrderPricing(t *testing.T) {
	yen := kernel.MustMoneyFromYen

	t.Run("consistent figures are accepted", func(t *testing.T) {
		p, err := order.RestoreOrderPricing(yen(2999), yen(500), yen(330), yen(383), yen(4212))

		require.NoError(t, err)
		assert.Equal(t, int64(4212), p.Total().Yen())
	})

	t.Run("tampered total is rejected", func(t *testing.T) {
		_, err := order.RestoreOrderPricing(yen(2999), yen(500), yen(330), yen(383), yen(4000))

		require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
	})

	t.Run("tampered tax is rejected", func(t *testing.T) {
		_, err := order.RestoreOrderPricing(yen(2999), yen(500), yen(330), yen(382), yen(4212))

		require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
	})
}

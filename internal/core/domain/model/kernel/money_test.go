package kernel_test

import (
	"math"
	"testing"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func yen(t *testing.T, n int64) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromYen(n)
	require.NoError(t, err)
	return m
}

func TestMoneyFromYen(t *testing.T) {
	t.Run("should accept zero and positive amounts", func(t *testing.T) {
		assert.Equal(t, int64(0), yen(t, 0).Yen())
		assert.Equal(t, int64(1500), yen(t, 1500).Yen())
		assert.True(t, kernel.ZeroMoney().IsZero())
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.MoneyFromYen(-1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidPrice)
	})

	t.Run("must panics on negative amounts", func(t *testing.T) {
		assert.Panics(t, func() { kernel.MustMoneyFromYen(-5) })
	})
}

func TestMoney_AddSubtract(t *testing.T) {
	t.Run("subtract then add restores the original amount", func(t *testing.T) {
		pairs := [][2]int64{{0, 0}, {10, 0}, {10, 10}, {1000, 1}, {999999, 123456}, {math.MaxInt64, math.MaxInt64 - 1}}

		for _, p := range pairs {
			a, b := yen(t, p[0]), yen(t, p[1])

			diff, err := a.Subtract(b)
			require.NoError(t, err)
			sum, err := diff.Add(b)
			require.NoError(t, err)
			assert.True(t, sum.IsEqual(a), "a=%d b=%d", p[0], p[1])
		}
	})

	t.Run("subtracting a larger amount fails", func(t *testing.T) {
		_, err := yen(t, 100).Subtract(yen(t, 101))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidProductData)
		assert.Contains(t, err.Error(), "negative")
	})

	t.Run("addition overflow fails", func(t *testing.T) {
		_, err := yen(t, math.MaxInt64).Add(yen(t, 1))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "overflow")
	})
}

func TestMoney_Multiply(t *testing.T) {
	t.Run("should multiply by quantity", func(t *testing.T) {
		m, err := yen(t, 1980).Multiply(3)

		require.NoError(t, err)
		assert.Equal(t, int64(5940), m.Yen())
	})

	t.Run("multiplying by zero yields zero", func(t *testing.T) {
		m, err := yen(t, math.MaxInt64).Multiply(0)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})

	t.Run("overflow fails", func(t *testing.T) {
		_, err := yen(t, math.MaxInt64/2+1).Multiply(2)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidProductData)
	})

	t.Run("negative factor fails", func(t *testing.T) {
		_, err := yen(t, 10).Multiply(-1)

		require.Error(t, err)
	})
}

func TestMoney_Percentage(t *testing.T) {
	testCases := []struct {
		amount   int64
		pct      int64
		expected int64
	}{
		{2000, 20, 400},
		{999, 10, 100},
		{1, 1, 1},
		{101, 50, 51},
		{100, 0, 0},
		{100, 100, 100},
		{0, 35, 0},
	}

	for _, tc := range testCases {
		got, err := yen(t, tc.amount).Percentage(tc.pct)

		require.NoError(t, err)
		assert.Equal(t, tc.expected, got.Yen(), "%d%% of %d", tc.pct, tc.amount)
	}

	t.Run("out of range percentage fails", func(t *testing.T) {
		_, err := yen(t, 100).Percentage(101)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = yen(t, 100).Percentage(-1)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("overflow fails", func(t *testing.T) {
		_, err := yen(t, math.MaxInt64).Percentage(10)

		require.ErrorIs(t, err, errs.ErrInvalidProductData)
	})
}

func TestMoney_ApplyDiscount(t *testing.T) {
	discounted, err := yen(t, 2000).ApplyDiscount(20)
	require.NoError(t, err)
	assert.Equal(t, int64(1600), discounted.Yen())

	// the discount is rounded up, so the remainder is rounded down
	discounted, err = yen(t, 999).ApplyDiscount(15)
	require.NoError(t, err)
	assert.Equal(t, int64(849), discounted.Yen())
}

func TestMoney_Tax(t *testing.T) {
	testCases := []struct {
		amount  int64
		tax     int64
		withTax int64
	}{
		{999, 100, 1099},
		{1000, 100, 1100},
		{1001, 101, 1102},
		{1, 1, 2},
		{0, 0, 0},
	}

	for _, tc := range testCases {
		m := yen(t, tc.amount)

		tax, err := m.TaxAmount()
		require.NoError(t, err)
		withTax, err := m.WithTax()
		require.NoError(t, err)

		assert.Equal(t, tc.tax, tax.Yen(), "tax of %d", tc.amount)
		assert.Equal(t, tc.withTax, withTax.Yen(), "with tax of %d", tc.amount)
	}
}

func TestMoney_Comparison(t *testing.T) {
	small, big := yen(t, 10), yen(t, 20)

	assert.Equal(t, -1, small.Compare(big))
	assert.Equal(t, 1, big.Compare(small))
	assert.Equal(t, 0, small.Compare(yen(t, 10)))
	assert.True(t, small.IsLessThan(big))
	assert.True(t, big.IsGreaterThan(small))
	assert.True(t, small.IsPositive())
	assert.Equal(t, small, kernel.MinMoney(big, small))
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "¥0", yen(t, 0).String())
	assert.Equal(t, "¥999", yen(t, 999).String())
	assert.Equal(t, "¥1,000", yen(t, 1000).String())
	assert.Equal(t, "¥1,234,567", yen(t, 1234567).String())
}

package kernel

import (
	"math"
	"strconv"

	"shop/internal/pkg/errs"
)

// TaxRatePercent is the consumption tax rate applied to every taxable amount.
const TaxRatePercent int64 = 10

// Money is a non-negative amount of Japanese yen.
//
// All arithmetic is checked: a subtraction that would go below zero and an
// addition or multiplication that would overflow int64 return an error instead
// of a clamped or wrapped value. Percentage-based results (tax, discounts) are
// rounded up to the next whole yen so that rounding always favors the seller.
//
// The zero value is a valid ¥0. Money is an immutable value type and is compared
// by its underlying amount.
//
// Example:
//
//	price, err := kernel.MoneyFromYen(999)
//	if err != nil {
//	    return err
//	}
//	tax, _ := price.TaxAmount()   // ¥100, not ¥99
//	gross, _ := price.WithTax()   // ¥1,099
type Money struct {
	amount int64
}

// ZeroMoney returns ¥0.
func ZeroMoney() Money {
	return Money{}
}

// MoneyFromYen creates Money from a yen amount. Negative amounts are rejected
// with an InvalidPriceError.
func MoneyFromYen(yen int64) (Money, error) {
	if yen < 0 {
		return Money{}, errs.NewInvalidPriceError("amount %d must not be negative", yen)
	}
	return Money{amount: yen}, nil
}

// MustMoneyFromYen is MoneyFromYen for constants known to be valid. It panics on
// a negative amount.
func MustMoneyFromYen(yen int64) Money {
	m, err := MoneyFromYen(yen)
	if err != nil {
		panic(err)
	}
	return m
}

// Yen returns the amount as an integer number of yen.
func (m Money) Yen() int64 {
	return m.amount
}

// Add returns m + other.
func (m Money) Add(other Money) (Money, error) {
	if m.amount > math.MaxInt64-other.amount {
		return Money{}, errs.NewInvalidProductDataError("money overflow: %d + %d", m.amount, other.amount)
	}
	return Money{amount: m.amount + other.amount}, nil
}

// Subtract returns m - other. Subtracting a larger amount is an error, never a
// negative value.
func (m Money) Subtract(other Money) (Money, error) {
	if other.amount > m.amount {
		return Money{}, errs.NewInvalidProductDataError(
			"cannot subtract %d from %d: result would be negative", other.amount, m.amount)
	}
	return Money{amount: m.amount - other.amount}, nil
}

// Multiply returns m × n for a non-negative factor n.
func (m Money) Multiply(n int64) (Money, error) {
	if n < 0 {
		return Money{}, errs.NewInvalidProductDataError("multiplier %d must not be negative", n)
	}
	if n != 0 && m.amount > math.MaxInt64/n {
		return Money{}, errs.NewInvalidProductDataError("money overflow: %d × %d", m.amount, n)
	}
	return Money{amount: m.amount * n}, nil
}

// Percentage returns ceiling(m × pct / 100) for pct in [0, 100].
func (m Money) Percentage(pct int64) (Money, error) {
	if pct < 0 || pct > 100 {
		return Money{}, errs.NewValueIsOutOfRangeError("percentage", pct, 0, 100)
	}
	if pct == 0 {
		return Money{}, nil
	}
	if m.amount > (math.MaxInt64-99)/pct {
		return Money{}, errs.NewInvalidProductDataError("money overflow: %d × %d%%", m.amount, pct)
	}
	return Money{amount: ceilDiv(m.amount*pct, 100)}, nil
}

// ApplyDiscount returns m minus pct percent of m, the discount itself being
// rounded up.
func (m Money) ApplyDiscount(pct int64) (Money, error) {
	discount, err := m.Percentage(pct)
	if err != nil {
		return Money{}, err
	}
	return m.Subtract(discount)
}

// TaxAmount returns the consumption tax on m, rounded up.
func (m Money) TaxAmount() (Money, error) {
	return m.Percentage(TaxRatePercent)
}

// WithTax returns m plus its TaxAmount.
func (m Money) WithTax() (Money, error) {
	tax, err := m.TaxAmount()
	if err != nil {
		return Money{}, err
	}
	return m.Add(tax)
}

// Compare returns -1, 0 or +1 depending on whether m is less than, equal to or
// greater than other.
func (m Money) Compare(other Money) int {
	switch {
	case m.amount < other.amount:
		return -1
	case m.amount > other.amount:
		return 1
	default:
		return 0
	}
}

func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

func (m Money) IsGreaterThan(other Money) bool {
	return m.amount > other.amount
}

func (m Money) IsLessThan(other Money) bool {
	return m.amount < other.amount
}

func (m Money) IsZero() bool {
	return m.amount == 0
}

func (m Money) IsPositive() bool {
	return m.amount > 0
}

// MinMoney returns the smaller of a and b.
func MinMoney(a, b Money) Money {
	if a.amount <= b.amount {
		return a
	}
	return b
}

// String formats m as "¥1,234".
func (m Money) String() string {
	digits := strconv.FormatInt(m.amount, 10)
	out := make([]byte, 0, len(digits)+len(digits)/3)
	for i := range len(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, digits[i])
	}
	return "¥" + string(out)
}

func ceilDiv(numerator, denominator int64) int64 {
	return (numerator + denominator - 1) / denominator
}

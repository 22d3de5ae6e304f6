package coupon

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

// ErrDiscountIsNotConstructed is returned when a Discount was not created via one of its constructors.
var ErrDiscountIsNotConstructed = errors.New("Discount must be created via NewFixedAmountDiscount or NewPercentageDiscount")

type DiscountType int

const (
	DiscountTypeUnknown DiscountType = iota
	FixedAmount
	Percentage
)

func (t DiscountType) String() string {
	switch t {
	case FixedAmount:
		return "fixed_amount"
	case Percentage:
		return "percentage"
	default:
		return "unknown"
	}
}

// ParseDiscountType is the inverse of DiscountType.String.
func ParseDiscountType(s string) (DiscountType, error) {
	switch s {
	case "fixed_amount":
		return FixedAmount, nil
	case "percentage":
		return Percentage, nil
	default:
		return DiscountTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
			"discount type", fmt.Errorf("unknown discount type %q", s))
	}
}

// Discount is either a fixed yen amount or a whole percentage in 1..100.
type Discount struct {
	kind    DiscountType
	amount  kernel.Money
	percent int64

	guard guard.ConstructorGuard
}

// NewFixedAmountDiscount takes a positive amount off the subtotal.
func NewFixedAmountDiscount(amount kernel.Money) (Discount, error) {
	if !amount.IsPositive() {
		return Discount{}, errs.NewInvalidPriceError("fixed discount %s must be positive", amount)
	}
	return Discount{kind: FixedAmount, amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// NewPercentageDiscount takes percent of the subtotal, rounded up.
func NewPercentageDiscount(percent int64) (Discount, error) {
	if percent < 1 || percent > 100 {
		return Discount{}, errs.NewValueIsOutOfRangeError("discount percent", percent, 1, 100)
	}
	return Discount{kind: Percentage, percent: percent, guard: guard.NewConstructorGuard()}, nil
}

func (d Discount) Validate() error {
	return d.guard.Validate(ErrDiscountIsNotConstructed)
}

func (d Discount) Type() DiscountType {
	return d.kind
}

// Amount is the fixed amount; zero for percentage discounts.
func (d Discount) Amount() kernel.Money {
	return d.amount
}

// Percent is the percentage; zero for fixed amount discounts.
func (d Discount) Percent() int64 {
	return d.percent
}

// AmountFor returns how much this discount takes off subtotal. A fixed amount
// is capped at subtotal so the result never goes below zero.
func (d Discount) AmountFor(subtotal kernel.Money) (kernel.Money, error) {
	switch d.kind {
	case FixedAmount:
		return kernel.MinMoney(d.amount, subtotal), nil
	case Percentage:
		return subtotal.Percentage(d.percent)
	default:
		return kernel.Money{}, ErrDiscountIsNotConstructed
	}
}

// Describe renders the discount for messages, e.g. "20% off" or "¥3,000 off".
func (d Discount) Describe() string {
	if d.kind == Percentage {
		return fmt.Sprintf("%d%% off", d.percent)
	}
	return d.amount.String() + " off"
}

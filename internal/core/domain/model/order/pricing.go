package order

import (
	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

// OrderPricing is the immutable price breakdown of an order.
//
// Invariants:
//   - TaxAmount = ceiling(10% × (Subtotal + ShippingFee + PaymentFee))
//   - Total = Subtotal + ShippingFee + PaymentFee + TaxAmount
type OrderPricing struct {
	subtotal    kernel.Money
	shippingFee kernel.Money
	paymentFee  kernel.Money
	taxAmount   kernel.Money
	total       kernel.Money
}

// CalculateOrderPricing derives tax and total from the three pre-tax components.
func CalculateOrderPricing(subtotal, shippingFee, paymentFee kernel.Money) (OrderPricing, error) {
	pretax, err := subtotal.Add(shippingFee)
	if err != nil {
		return OrderPricing{}, err
	}
	if pretax, err = pretax.Add(paymentFee); err != nil {
		return OrderPricing{}, err
	}

	tax, err := pretax.TaxAmount()
	if err != nil {
		return OrderPricing{}, err
	}

	total, err := pretax.Add(tax)
	if err != nil {
		return OrderPricing{}, err
	}

	return OrderPricing{
		subtotal:    subtotal,
		shippingFee: shippingFee,
		paymentFee:  paymentFee,
		taxAmount:   tax,
		total:       total,
	}, nil
}

// RestoreOrderPricing rebuilds a persisted breakdown, recomputing it and
// rejecting stored figures that no longer satisfy the invariants.
func RestoreOrderPricing(subtotal, shippingFee, paymentFee, taxAmount, total kernel.Money) (OrderPricing, error) {
	pricing, err := CalculateOrderPricing(subtotal, shippingFee, paymentFee)
	if err != nil {
		return OrderPricing{}, err
	}

	if !pricing.taxAmount.IsEqual(taxAmount) || !pricing.total.IsEqual(total) {
		return OrderPricing{}, errs.NewBusinessRuleViolationError(
			"stored pricing is inconsistent: tax %s total %s, expected tax %s total %s",
			taxAmount, total, pricing.taxAmount, pricing.total)
	}

	return pricing, nil
}

func (p OrderPricing) Subtotal() kernel.Money {
	return p.subtotal
}

func (p OrderPricing) ShippingFee() kernel.Money {
	return p.shippingFee
}

func (p OrderPricing) PaymentFee() kernel.Money {
	return p.paymentFee
}

func (p OrderPricing) TaxAmount() kernel.Money {
	return p.taxAmount
}

func (p OrderPricing) Total() kernel.Money {
	return p.total
}

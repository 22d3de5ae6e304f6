package services

import (
	"shop/internal/core/domain/model/catalog"
	"shop/internal/core/domain/model/kernel"
)

// codFeeBand is one row of the cash-on-delivery fee table. The band covers
// amounts strictly below upTo.
type codFeeBand struct {
	upTo int64
	fee  int64
}

var codFeeTable = []codFeeBand{
	{upTo: 10_000, fee: 330},
	{upTo: 30_000, fee: 440},
	{upTo: 100_000, fee: 660},
	{upTo: 300_000, fee: 1_100},
}

const (
	codMaxFee               = 1_650
	convenienceStoreFlatFee = 200
)

// PaymentFeeCalculator returns the handling fee for a payment method.
//
// Fee rules:
//   - cod: tiered by the amount collected, see the table below
//   - convenience_store: flat ¥200
//   - any other code: free
//
// Cash on delivery bands (lower bound inclusive, upper bound exclusive):
//
//	      0 –   9,999   ¥330
//	 10,000 –  29,999   ¥440
//	 30,000 –  99,999   ¥660
//	100,000 – 299,999   ¥1,100
//	300,000 and above   ¥1,650
type PaymentFeeCalculator struct{}

func NewPaymentFeeCalculator() PaymentFeeCalculator {
	return PaymentFeeCalculator{}
}

// Calculate returns the fee for paying amount with the method identified by methodCode.
func (PaymentFeeCalculator) Calculate(methodCode string, amount kernel.Money) kernel.Money {
	switch methodCode {
	case catalog.PaymentCodeCashOnDelivery:
		return kernel.MustMoneyFromYen(codFee(amount.Yen()))
	case catalog.PaymentCodeConvenienceStore:
		return kernel.MustMoneyFromYen(convenienceStoreFlatFee)
	default:
		return kernel.ZeroMoney()
	}
}

// FeeFor resolves the fee for a catalogue payment method. Methods without a
// fee table entry fall back to their configured flat fee.
func (c PaymentFeeCalculator) FeeFor(method catalog.PaymentMethod, amount kernel.Money) kernel.Money {
	if fee := c.Calculate(method.Code(), amount); !fee.IsZero() {
		return fee
	}
	return method.Fee()
}

func codFee(amount int64) int64 {
	for _, band := range codFeeTable {
		if amount < band.upTo {
			return band.fee
		}
	}
	return codMaxFee
}

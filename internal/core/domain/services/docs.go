// Package services provides domain services for pricing rules that do not
// belong to a single aggregate.
//
// The package includes:
//   - PaymentFeeCalculator: the handling fee charged by a payment method
//   - CouponDiscountService: checks a coupon against a purchase and computes the discount
//
// Both services are pure: they read the aggregates they are given and perform no I/O.
package services

// Package coupon models discount coupons: what they take off (Discount), who
// may use them (Condition), when (validity window) and how often (usage limit).
//
// Computing the discount for a concrete purchase is done by
// services.CouponDiscountService; this package only guards the coupon's own
// invariants and its usage counter.
package coupon

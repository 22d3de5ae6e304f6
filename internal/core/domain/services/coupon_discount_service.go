package services

import (
	"fmt"
	"time"

	"shop/internal/core/domain/model/cart"
	"shop/internal/core/domain/model/coupon"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

// PurchaseInfo is what a coupon is checked against.
type PurchaseInfo struct {
	Subtotal   kernel.Money
	ProductIDs []kernel.UUID
}

// PurchaseInfoFromCart summarises the pre-tax total and products of c.
func PurchaseInfoFromCart(c *cart.Cart) (PurchaseInfo, error) {
	if err := c.Validate(); err != nil {
		return PurchaseInfo{}, err
	}

	subtotal, err := c.Total()
	if err != nil {
		return PurchaseInfo{}, err
	}

	return PurchaseInfo{Subtotal: subtotal, ProductIDs: c.ProductIDs()}, nil
}

// CouponApplication is the outcome of applying a coupon to a purchase.
type CouponApplication struct {
	CouponCode       string
	DiscountAmount   kernel.Money
	DiscountedAmount kernel.Money
	Message          string
}

// CouponDiscountService decides whether a coupon applies to a purchase and how
// much it takes off. It never changes the coupon's usage count; callers record
// a redemption separately with Coupon.IncrementUsage once the order is placed.
type CouponDiscountService struct {
	now func() time.Time
}

func NewCouponDiscountService() CouponDiscountService {
	return CouponDiscountService{now: time.Now}
}

// NewCouponDiscountServiceWithClock is used where the current time must be fixed.
func NewCouponDiscountServiceWithClock(now func() time.Time) CouponDiscountService {
	return CouponDiscountService{now: now}
}

// ApplyCoupon checks availability and condition of c against purchase and
// computes the discount.
//
// Returns an InvalidCouponError when the coupon is expired, not yet valid, used
// up, restricted by a condition the purchase does not meet, or category
// specific (not supported).
func (s CouponDiscountService) ApplyCoupon(c *coupon.Coupon, purchase PurchaseInfo) (CouponApplication, error) {
	if err := c.Validate(); err != nil {
		return CouponApplication{}, err
	}

	now := time.Now
	if s.now != nil {
		now = s.now
	}
	if err := c.CheckAvailability(now()); err != nil {
		return CouponApplication{}, err
	}

	if err := checkCondition(c, purchase); err != nil {
		return CouponApplication{}, err
	}

	discount, err := c.Discount().AmountFor(purchase.Subtotal)
	if err != nil {
		return CouponApplication{}, err
	}

	discounted, err := purchase.Subtotal.Subtract(discount)
	if err != nil {
		return CouponApplication{}, err
	}

	return CouponApplication{
		CouponCode:       c.Code(),
		DiscountAmount:   discount,
		DiscountedAmount: discounted,
		Message:          fmt.Sprintf("coupon %s applied: %s (-%s)", c.Code(), c.Discount().Describe(), discount),
	}, nil
}

func checkCondition(c *coupon.Coupon, purchase PurchaseInfo) error {
	cond := c.Condition()

	switch cond.Type() {
	case coupon.ConditionNone:
		return nil
	case coupon.MinimumPurchase:
		if purchase.Subtotal.IsLessThan(cond.MinimumAmount()) {
			return errs.NewInvalidCouponError(c.Code(),
				fmt.Sprintf("requires a minimum purchase of %s", cond.MinimumAmount()))
		}
		return nil
	case coupon.ProductSpecific:
		if !cond.MatchesAnyProduct(purchase.ProductIDs) {
			return errs.NewInvalidCouponError(c.Code(), "no eligible products in the cart")
		}
		return nil
	case coupon.CategorySpecific:
		return errs.NewInvalidCouponError(c.Code(), "category specific coupons are not supported")
	default:
		return errs.NewInvalidCouponError(c.Code(), "unknown coupon condition")
	}
}

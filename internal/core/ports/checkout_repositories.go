package ports

import (
	"context"

	"shop/internal/core/domain/model/catalog"
	"shop/internal/core/domain/model/coupon"
	"shop/internal/core/domain/model/kernel"
)

// ShippingMethodRepository looks up shipping methods offered at checkout.
type ShippingMethodRepository interface {
	// FindByID returns errs.ObjectNotFoundError for unknown ids.
	FindByID(ctx context.Context, id kernel.UUID) (catalog.ShippingMethod, error)
}

// PaymentMethodRepository looks up payment methods offered at checkout.
type PaymentMethodRepository interface {
	// FindByID returns errs.ObjectNotFoundError for unknown ids.
	FindByID(ctx context.Context, id kernel.UUID) (catalog.PaymentMethod, error)
}

// CouponRepository loads coupons and records redemptions.
type CouponRepository interface {
	// FindByCode returns errs.ObjectNotFoundError when no coupon has code.
	FindByCode(ctx context.Context, code string) (*coupon.Coupon, error)

	// UpdateUsageCount stores c.UsageCount(). The write is rejected with
	// errs.ErrConcurrencyConflict if another redemption was recorded meanwhile.
	UpdateUsageCount(ctx context.Context, c *coupon.Coupon) error
}

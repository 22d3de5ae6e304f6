package commands

import (
	"context"
	"log/slog"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/services"
)

// RedeemCouponCommandHandler checks a coupon against the priced lines and,
// when it applies, increments its usage count in the same transaction.
type RedeemCouponCommandHandler struct {
	uowFactory CouponUoWFactory
	discounts  services.CouponDiscountService
	logger     *slog.Logger
}

func NewRedeemCouponCommandHandler(
	uowFactory CouponUoWFactory,
	discounts services.CouponDiscountService,
	logger *slog.Logger,
) RedeemCouponCommandHandler {
	return RedeemCouponCommandHandler{
		uowFactory: uowFactory,
		discounts:  discounts,
		logger:     logger.With("component", "redeem_coupon_handler"),
	}
}

func (h RedeemCouponCommandHandler) Handle(ctx context.Context, cmd RedeemCouponCommand) (services.CouponApplication, error) {
	if err := cmd.Validate(); err != nil {
		return services.CouponApplication{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.CouponApplication{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	couponRepo := uow.CouponRepository()
	c, err := couponRepo.FindByCode(ctx, cmd.Code())
	if err != nil {
		return services.CouponApplication{}, err
	}

	variants, err := uow.ProductRepository().FindVariantsByIDs(ctx, cmd.skuIDs())
	if err != nil {
		return services.CouponApplication{}, err
	}

	basket, err := services.AssembleCart(kernel.NewUUID(), variants, cmd.Lines())
	if err != nil {
		return services.CouponApplication{}, err
	}

	purchase, err := services.PurchaseInfoFromCart(basket)
	if err != nil {
		return services.CouponApplication{}, err
	}

	application, err := h.discounts.ApplyCoupon(c, purchase)
	if err != nil {
		return services.CouponApplication{}, err
	}

	if err = c.IncrementUsage(); err != nil {
		return services.CouponApplication{}, err
	}
	if err = couponRepo.UpdateUsageCount(ctx, c); err != nil {
		return services.CouponApplication{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.CouponApplication{}, err
	}

	h.logger.InfoContext(ctx, "coupon redeemed",
		"code", c.Code(),
		"discount", application.DiscountAmount.Yen(),
		"usage_count", c.UsageCount(),
	)
	return application, nil
}

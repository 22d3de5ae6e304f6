package queries

import (
	"context"
	"errors"

	"shop/internal/core/domain/model/cart"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/services"
	"shop/internal/core/ports"
	"shop/internal/pkg/errs"
)

// PreviewCartQueryHandler builds a throwaway cart from current catalog prices.
// Nothing is reserved and coupon usage is left untouched.
type PreviewCartQueryHandler struct {
	products  ports.ProductRepository
	coupons   ports.CouponRepository
	discounts services.CouponDiscountService
}

func NewPreviewCartQueryHandler(
	products ports.ProductRepository,
	coupons ports.CouponRepository,
	discounts services.CouponDiscountService,
) PreviewCartQueryHandler {
	return PreviewCartQueryHandler{products: products, coupons: coupons, discounts: discounts}
}

// Handle fails like checkout would for unknown, inactive or short SKUs. An
// unknown or inapplicable coupon does not fail the preview; it is reported as
// not applied.
func (h PreviewCartQueryHandler) Handle(ctx context.Context, query PreviewCartQuery) (PreviewCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return PreviewCartQueryResponse{}, err
	}

	variants, err := h.products.FindVariantsByIDs(ctx, query.skuIDs())
	if err != nil {
		return PreviewCartQueryResponse{}, err
	}

	basket, err := services.AssembleCart(kernel.NewUUID(), variants, query.Lines())
	if err != nil {
		return PreviewCartQueryResponse{}, err
	}

	response, err := cartResponse(basket)
	if err != nil {
		return PreviewCartQueryResponse{}, err
	}

	if query.HasCoupon() {
		preview, previewErr := h.previewCoupon(ctx, query.CouponCode(), basket)
		if previewErr != nil {
			return PreviewCartQueryResponse{}, previewErr
		}
		response.Coupon = &preview
	}

	return response, nil
}

func (h PreviewCartQueryHandler) previewCoupon(ctx context.Context, code string, basket *cart.Cart) (CouponPreview, error) {
	c, err := h.coupons.FindByCode(ctx, code)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return CouponPreview{Code: code, Message: "coupon not found"}, nil
	}
	if err != nil {
		return CouponPreview{}, err
	}

	purchase, err := services.PurchaseInfoFromCart(basket)
	if err != nil {
		return CouponPreview{}, err
	}

	application, err := h.discounts.ApplyCoupon(c, purchase)
	var invalid *errs.InvalidCouponError
	if errors.As(err, &invalid) {
		return CouponPreview{Code: code, Message: invalid.Reason}, nil
	}
	if err != nil {
		return CouponPreview{}, err
	}

	return CouponPreview{
		Code:             application.CouponCode,
		Applied:          true,
		DiscountAmount:   application.DiscountAmount.Yen(),
		DiscountedAmount: application.DiscountedAmount.Yen(),
		Message:          application.Message,
	}, nil
}

func cartResponse(basket *cart.Cart) (PreviewCartQueryResponse, error) {
	subtotal, err := basket.Total()
	if err != nil {
		return PreviewCartQueryResponse{}, err
	}
	tax, err := basket.TaxAmount()
	if err != nil {
		return PreviewCartQueryResponse{}, err
	}
	total, err := basket.TotalWithTax()
	if err != nil {
		return PreviewCartQueryResponse{}, err
	}

	items := basket.Items()
	lines := make([]CartLineView, 0, len(items))
	for _, item := range items {
		lineSubtotal, subErr := item.Subtotal()
		if subErr != nil {
			return PreviewCartQueryResponse{}, subErr
		}
		lines = append(lines, CartLineView{
			SKUID:       item.SKUID(),
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			UnitPrice:   item.UnitPrice().Yen(),
			Quantity:    item.Quantity(),
			Subtotal:    lineSubtotal.Yen(),
		})
	}

	return PreviewCartQueryResponse{
		Items:         lines,
		ItemCount:     basket.ItemCount(),
		TotalQuantity: basket.TotalQuantity(),
		Subtotal:      subtotal.Yen(),
		TaxAmount:     tax.Yen(),
		TotalWithTax:  total.Yen(),
	}, nil
}

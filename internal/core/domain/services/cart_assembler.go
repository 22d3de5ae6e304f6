package services

import (
	"shop/internal/core/domain/model/cart"
	"shop/internal/core/domain/model/catalog"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"
)

// LineRequest is one requested SKU and quantity.
type LineRequest struct {
	SKUID    kernel.UUID
	Quantity int
}

// AssembleCart builds a cart from requested lines, pricing each line at the
// variant's effective price. Every requested SKU must be among variants and
// purchasable in the requested quantity.
func AssembleCart(cartID kernel.UUID, variants []catalog.VariantSummary, lines []LineRequest) (*cart.Cart, error) {
	c, err := cart.NewCart(cartID)
	if err != nil {
		return nil, err
	}

	bySKU := IndexVariants(variants)
	for _, line := range lines {
		v, ok := bySKU[line.SKUID]
		if !ok {
			return nil, errs.NewObjectNotFoundError("sku", line.SKUID)
		}
		if err = v.CheckPurchasable(line.Quantity); err != nil {
			return nil, err
		}

		item, err := cart.NewCartItem(v.SKUID(), v.ProductID(), v.DisplayName(), v.EffectivePrice(), line.Quantity)
		if err != nil {
			return nil, err
		}
		if err = c.AddItem(item); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// IndexVariants maps variants by SKU id.
func IndexVariants(variants []catalog.VariantSummary) map[kernel.UUID]catalog.VariantSummary {
	bySKU := make(map[kernel.UUID]catalog.VariantSummary, len(variants))
	for _, v := range variants {
		bySKU[v.SKUID()] = v
	}
	return bySKU
}

// MergeLines validates requested lines and sums quantities of repeated SKUs,
// keeping the order in which SKUs first appear.
func MergeLines(lines []LineRequest) ([]LineRequest, error) {
	if len(lines) == 0 {
		return nil, errs.NewInvalidProductDataError("at least one line is required")
	}

	merged := make([]LineRequest, 0, len(lines))
	index := make(map[kernel.UUID]int, len(lines))
	for _, line := range lines {
		if err := line.SKUID.Validate(); err != nil {
			return nil, errs.NewValueIsRequiredErrorWithCause("sku id", err)
		}
		if line.Quantity < order.MinItemQuantity {
			return nil, errs.NewInvalidProductDataError("quantity %d of sku %s must be positive", line.Quantity, line.SKUID)
		}

		if i, ok := index[line.SKUID]; ok {
			merged[i].Quantity += line.Quantity
		} else {
			index[line.SKUID] = len(merged)
			merged = append(merged, line)
		}
	}

	for _, line := range merged {
		if line.Quantity > order.MaxItemQuantity {
			return nil, errs.NewInvalidProductDataError(
				"quantity %d of sku %s exceeds %d", line.Quantity, line.SKUID, order.MaxItemQuantity)
		}
	}

	return merged, nil
}

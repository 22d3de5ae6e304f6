package catalog

import (
	"errors"
	"strings"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

// VariantSummary is a purchasable SKU as seen at checkout time.
type VariantSummary struct {
	skuID       kernel.UUID
	productID   kernel.UUID
	productName string
	skuName     string
	skuCode     string
	price       kernel.Money
	salePrice   *kernel.Money
	available   int
	isActive    bool
}

// VariantSummaryParams carries the data needed to build a VariantSummary.
type VariantSummaryParams struct {
	SKUID       kernel.UUID
	ProductID   kernel.UUID
	ProductName string
	SKUName     string
	SKUCode     string
	Price       kernel.Money
	SalePrice   *kernel.Money
	Available   int
	IsActive    bool
}

// NewVariantSummary validates p. A missing product id is an error; it is never
// filled in with a generated value.
func NewVariantSummary(p VariantSummaryParams) (VariantSummary, error) {
	var problems []error
	if err := p.SKUID.Validate(); err != nil {
		problems = append(problems, err)
	}
	if p.ProductID.Validate() != nil {
		problems = append(problems, errs.NewInvalidProductDataError("variant %s has no product id", p.SKUID))
	}
	if strings.TrimSpace(p.ProductName) == "" {
		problems = append(problems, errs.NewInvalidProductDataError("variant %s has no product name", p.SKUID))
	}
	if !p.Price.IsPositive() {
		problems = append(problems, errs.NewInvalidPriceError("variant %s price %s must be positive", p.SKUID, p.Price))
	}
	if p.SalePrice != nil && (!p.SalePrice.IsPositive() || !p.SalePrice.IsLessThan(p.Price)) {
		problems = append(problems, errs.NewInvalidPriceError(
			"variant %s sale price %s must be positive and below %s", p.SKUID, *p.SalePrice, p.Price))
	}
	if p.Available < 0 {
		problems = append(problems, errs.NewInvalidStockError("variant %s available quantity %d is negative", p.SKUID, p.Available))
	}
	if err := errors.Join(problems...); err != nil {
		return VariantSummary{}, err
	}

	v := VariantSummary{
		skuID:       p.SKUID,
		productID:   p.ProductID,
		productName: strings.TrimSpace(p.ProductName),
		skuName:     strings.TrimSpace(p.SKUName),
		skuCode:     strings.TrimSpace(p.SKUCode),
		price:       p.Price,
		available:   p.Available,
		isActive:    p.IsActive,
	}
	if p.SalePrice != nil {
		sale := *p.SalePrice
		v.salePrice = &sale
	}
	return v, nil
}

func (v VariantSummary) SKUID() kernel.UUID {
	return v.skuID
}

func (v VariantSummary) ProductID() kernel.UUID {
	return v.productID
}

func (v VariantSummary) ProductName() string {
	return v.productName
}

func (v VariantSummary) SKUName() string {
	return v.skuName
}

func (v VariantSummary) SKUCode() string {
	return v.skuCode
}

func (v VariantSummary) Price() kernel.Money {
	return v.price
}

func (v VariantSummary) SalePrice() *kernel.Money {
	if v.salePrice == nil {
		return nil
	}
	sale := *v.salePrice
	return &sale
}

// EffectivePrice is the sale price when one is set, otherwise the list price.
func (v VariantSummary) EffectivePrice() kernel.Money {
	if v.salePrice != nil {
		return *v.salePrice
	}
	return v.price
}

// Available is the quantity not yet reserved.
func (v VariantSummary) Available() int {
	return v.available
}

func (v VariantSummary) IsActive() bool {
	return v.isActive
}

// IsSoldOut reports whether nothing can be bought.
func (v VariantSummary) IsSoldOut() bool {
	return v.available == 0
}

// DisplayName joins product and SKU names, e.g. "Linen Shirt (Red / M)".
func (v VariantSummary) DisplayName() string {
	if v.skuName == "" {
		return v.productName
	}
	return v.productName + " (" + v.skuName + ")"
}

// CheckPurchasable returns an error when quantity units cannot be bought.
func (v VariantSummary) CheckPurchasable(quantity int) error {
	if !v.isActive {
		return errs.NewInvalidProductDataError("variant %s is not on sale", v.skuCode)
	}
	if quantity > v.available {
		return errs.NewInsufficientStockError(quantity, v.available)
	}
	return nil
}

package coupon

import (
	"fmt"
	"slices"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

type ConditionType int

const (
	ConditionNone ConditionType = iota
	MinimumPurchase
	ProductSpecific
	CategorySpecific
)

func (t ConditionType) String() string {
	switch t {
	case MinimumPurchase:
		return "minimum_purchase"
	case ProductSpecific:
		return "product_specific"
	case CategorySpecific:
		return "category_specific"
	default:
		return "none"
	}
}

func ParseConditionType(s string) (ConditionType, error) {
	switch s {
	case "", "none":
		return ConditionNone, nil
	case "minimum_purchase":
		return MinimumPurchase, nil
	case "product_specific":
		return ProductSpecific, nil
	case "category_specific":
		return CategorySpecific, nil
	default:
		return ConditionNone, errs.NewValueIsInvalidErrorWithCause(
			"condition type", fmt.Errorf("unknown condition type %q", s))
	}
}

// Condition restricts which purchases a coupon applies to. The zero value is
// "no condition".
type Condition struct {
	kind          ConditionType
	minimumAmount kernel.Money
	productIDs    []kernel.UUID
	categoryIDs   []kernel.UUID
}

func NoCondition() Condition {
	return Condition{kind: ConditionNone}
}

// NewMinimumPurchaseCondition requires the subtotal to be at least amount.
func NewMinimumPurchaseCondition(amount kernel.Money) (Condition, error) {
	if !amount.IsPositive() {
		return Condition{}, errs.NewInvalidPriceError("minimum purchase %s must be positive", amount)
	}
	return Condition{kind: MinimumPurchase, minimumAmount: amount}, nil
}

// NewProductSpecificCondition requires at least one purchased product to be in ids.
func NewProductSpecificCondition(ids []kernel.UUID) (Condition, error) {
	if err := validateIDs("product ids", ids); err != nil {
		return Condition{}, err
	}
	return Condition{kind: ProductSpecific, productIDs: slices.Clone(ids)}, nil
}

// NewCategorySpecificCondition records a category restriction. Such coupons
// can be stored but are never applicable.
func NewCategorySpecificCondition(ids []kernel.UUID) (Condition, error) {
	if err := validateIDs("category ids", ids); err != nil {
		return Condition{}, err
	}
	return Condition{kind: CategorySpecific, categoryIDs: slices.Clone(ids)}, nil
}

func (c Condition) Type() ConditionType {
	return c.kind
}

func (c Condition) MinimumAmount() kernel.Money {
	return c.minimumAmount
}

func (c Condition) ProductIDs() []kernel.UUID {
	return slices.Clone(c.productIDs)
}

func (c Condition) CategoryIDs() []kernel.UUID {
	return slices.Clone(c.categoryIDs)
}

// MatchesAnyProduct reports whether any of productIDs is covered by a
// ProductSpecific condition.
func (c Condition) MatchesAnyProduct(productIDs []kernel.UUID) bool {
	for _, id := range productIDs {
		if slices.ContainsFunc(c.productIDs, id.IsEqual) {
			return true
		}
	}
	return false
}

func validateIDs(param string, ids []kernel.UUID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError(param)
	}
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(param, err)
		}
	}
	return nil
}

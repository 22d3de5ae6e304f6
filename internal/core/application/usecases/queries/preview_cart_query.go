package queries

import (
	"errors"
	"slices"

	"shop/internal/core/domain/model/coupon"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/services"
	"shop/internal/pkg/guard"
)

var ErrPreviewCartQueryIsNotConstructed = errors.New(
	"PreviewCartQuery must be created via NewPreviewCartQuery constructor",
)

// PreviewCartQuery prices a set of lines, optionally with a coupon. An empty
// coupon code means no coupon.
type PreviewCartQuery struct {
	lines      []services.LineRequest
	couponCode string

	guard guard.ConstructorGuard
}

func NewPreviewCartQuery(lines []services.LineRequest, couponCode string) (PreviewCartQuery, error) {
	merged, err := services.MergeLines(lines)
	if err != nil {
		return PreviewCartQuery{}, err
	}

	return PreviewCartQuery{
		lines:      merged,
		couponCode: coupon.NormalizeCode(couponCode),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q PreviewCartQuery) Validate() error {
	return q.guard.Validate(ErrPreviewCartQueryIsNotConstructed)
}

func (q PreviewCartQuery) Lines() []services.LineRequest {
	return slices.Clone(q.lines)
}

func (q PreviewCartQuery) CouponCode() string {
	return q.couponCode
}

func (q PreviewCartQuery) HasCoupon() bool {
	return q.couponCode != ""
}

func (q PreviewCartQuery) skuIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(q.lines))
	for _, line := range q.lines {
		ids = append(ids, line.SKUID)
	}
	return ids
}

// PreviewCartQueryResponse carries the cart totals in yen. Coupon is nil when
// no code was given.
type PreviewCartQueryResponse struct {
	Items         []CartLineView
	ItemCount     int
	TotalQuantity int
	Subtotal      int64
	TaxAmount     int64
	TotalWithTax  int64
	Coupon        *CouponPreview
}

type CartLineView struct {
	SKUID       kernel.UUID
	ProductID   kernel.UUID
	ProductName string
	UnitPrice   int64
	Quantity    int
	Subtotal    int64
}

// CouponPreview tells whether the coupon would apply. When Applied is false,
// Message holds the reason and both amounts are zero.
type CouponPreview struct {
	Code             string
	Applied          bool
	DiscountAmount   int64
	DiscountedAmount int64
	Message          string
}

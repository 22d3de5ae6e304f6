// Package couponrepo persists coupons. Product and category targets of a
// coupon condition live in "coupon_targets".
package couponrepo

import (
	"time"

	"shop/internal/core/domain/model/coupon"
	"shop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

const (
	targetKindProduct  = "product"
	targetKindCategory = "category"
)

// CouponDTO represents the database structure for persisting coupons.
type CouponDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code            string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	Name            string    `gorm:"type:varchar(255);not null"`
	DiscountType    string    `gorm:"type:varchar(20);not null"`
	DiscountAmount  int64     `gorm:"not null;default:0"`
	DiscountPercent int64     `gorm:"not null;default:0"`
	ConditionType   string    `gorm:"type:varchar(20);not null;default:'none'"`
	MinimumAmount   int64     `gorm:"not null;default:0"`
	ValidFrom       time.Time `gorm:"not null"`
	ValidUntil      time.Time `gorm:"not null"`
	UsageLimit      *int
	UsageCount      int               `gorm:"not null;default:0"`
	Targets         []CouponTargetDTO `gorm:"foreignKey:CouponID;constraint:OnDelete:CASCADE"`
}

func (CouponDTO) TableName() string {
	return "coupons"
}

// CouponTargetDTO links a coupon to a product or category it is restricted to.
type CouponTargetDTO struct {
	ID       uint      `gorm:"primaryKey;autoIncrement"`
	CouponID uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind     string    `gorm:"type:varchar(10);not null"`
	TargetID uuid.UUID `gorm:"type:uuid;not null"`
}

func (CouponTargetDTO) TableName() string {
	return "coupon_targets"
}

func fromDomain(c *coupon.Coupon) CouponDTO {
	couponID := c.ID().Bytes()
	discount := c.Discount()
	condition := c.Condition()

	targets := make([]CouponTargetDTO, 0, len(condition.ProductIDs())+len(condition.CategoryIDs()))
	for _, id := range condition.ProductIDs() {
		targets = append(targets, CouponTargetDTO{CouponID: couponID, Kind: targetKindProduct, TargetID: id.Bytes()})
	}
	for _, id := range condition.CategoryIDs() {
		targets = append(targets, CouponTargetDTO{CouponID: couponID, Kind: targetKindCategory, TargetID: id.Bytes()})
	}

	return CouponDTO{
		ID:              couponID,
		Code:            c.Code(),
		Name:            c.Name(),
		DiscountType:    discount.Type().String(),
		DiscountAmount:  discount.Amount().Yen(),
		DiscountPercent: discount.Percent(),
		ConditionType:   condition.Type().String(),
		MinimumAmount:   condition.MinimumAmount().Yen(),
		ValidFrom:       c.ValidFrom(),
		ValidUntil:      c.ValidUntil(),
		UsageLimit:      c.UsageLimit(),
		UsageCount:      c.UsageCount(),
		Targets:         targets,
	}
}

func toDomain(dto CouponDTO) (*coupon.Coupon, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	discount, err := discountToDomain(dto)
	if err != nil {
		return nil, err
	}

	condition, err := conditionToDomain(dto)
	if err != nil {
		return nil, err
	}

	return coupon.RestoreCoupon(
		id,
		dto.Code,
		dto.Name,
		discount,
		condition,
		dto.ValidFrom.UTC(),
		dto.ValidUntil.UTC(),
		dto.UsageLimit,
		dto.UsageCount,
	)
}

func discountToDomain(dto CouponDTO) (coupon.Discount, error) {
	kind, err := coupon.ParseDiscountType(dto.DiscountType)
	if err != nil {
		return coupon.Discount{}, err
	}

	if kind == coupon.Percentage {
		return coupon.NewPercentageDiscount(dto.DiscountPercent)
	}

	amount, err := kernel.MoneyFromYen(dto.DiscountAmount)
	if err != nil {
		return coupon.Discount{}, err
	}
	return coupon.NewFixedAmountDiscount(amount)
}

func conditionToDomain(dto CouponDTO) (coupon.Condition, error) {
	kind, err := coupon.ParseConditionType(dto.ConditionType)
	if err != nil {
		return coupon.Condition{}, err
	}

	switch kind {
	case coupon.MinimumPurchase:
		amount, amountErr := kernel.MoneyFromYen(dto.MinimumAmount)
		if amountErr != nil {
			return coupon.Condition{}, amountErr
		}
		return coupon.NewMinimumPurchaseCondition(amount)
	case coupon.ProductSpecific:
		ids, idsErr := targetIDs(dto.Targets, targetKindProduct)
		if idsErr != nil {
			return coupon.Condition{}, idsErr
		}
		return coupon.NewProductSpecificCondition(ids)
	case coupon.CategorySpecific:
		ids, idsErr := targetIDs(dto.Targets, targetKindCategory)
		if idsErr != nil {
			return coupon.Condition{}, idsErr
		}
		return coupon.NewCategorySpecificCondition(ids)
	default:
		return coupon.NoCondition(), nil
	}
}

func targetIDs(targets []CouponTargetDTO, kind string) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(targets))
	for _, t := range targets {
		if t.Kind != kind {
			continue
		}
		id, err := kernel.UUIDFromBytes(t.TargetID[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

package couponrepo

import (
	"context"
	"errors"
	"fmt"

	"shop/internal/core/domain/model/coupon"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCouponRepository implements CouponRepository using GORM.
type GormCouponRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCouponRepository creates a new GORM coupon repository.
func NewGormCouponRepository(db *gorm.DB, tracker aggregateTracker) *GormCouponRepository {
	return &GormCouponRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new coupon with its condition targets.
func (r *GormCouponRepository) Add(ctx context.Context, aggregate *coupon.Coupon) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// FindByCode retrieves a coupon by its normalized code.
func (r *GormCouponRepository) FindByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	code = coupon.NormalizeCode(code)
	if code == "" {
		return nil, errs.NewValueIsRequiredError("coupon code")
	}

	var dto CouponDTO
	if err := r.db.WithContext(ctx).Preload("Targets").First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("coupon", code)
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateUsageCount stores the usage count if no other redemption was recorded
// since the coupon was loaded.
func (r *GormCouponRepository) UpdateUsageCount(ctx context.Context, c *coupon.Coupon) error {
	if err := c.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&CouponDTO{}).
		Where("id = ? AND usage_count = ?", c.ID().Bytes(), c.PersistedUsageCount()).
		Update("usage_count", c.UsageCount())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("usage of coupon %s changed since it was read: %w", c.Code(), errs.ErrConcurrencyConflict)
	}

	r.tracker.TrackAggregate(c.ID(), c)
	return nil
}

package orderrepo

import (
	"context"
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"gorm.io/gorm"
)

// updatableColumns are the order columns that may change after placement.
// Lines, customer, shipping, payment and pricing are fixed at creation.
var updatableColumns = []string{
	"status",
	"note",
	"updated_at",
	"paid_at",
	"shipped_at",
	"delivered_at",
	"cancelled_at",
	"delivery_carrier",
	"delivery_tracking_number",
	"delivery_estimated_at",
}

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its lines.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update saves the mutable state of an existing order.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select(updatableColumns).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withItems(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetNextSequenceNumber increments the counter of year and returns the new value.
// The upsert holds a row lock until the surrounding transaction ends, so
// concurrent checkouts never share a number.
func (r *GormOrderRepository) GetNextSequenceNumber(ctx context.Context, year int) (int64, error) {
	var next int64
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO order_sequences (year, last_value)
		VALUES (?, 1)
		ON CONFLICT (year) DO UPDATE
			SET last_value = order_sequences.last_value + 1
		RETURNING last_value
	`, year).Scan(&next).Error
	if err != nil {
		return 0, err
	}

	return next, nil
}

// GetPendingCreatedBefore retrieves the oldest Pending orders created before t.
func (r *GormOrderRepository) GetPendingCreatedBefore(ctx context.Context, t time.Time, limit int) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.withItems(ctx).
		Where("status = ? AND created_at < ?", int(order.Pending), t.UTC()).
		Order("created_at, id").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *GormOrderRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

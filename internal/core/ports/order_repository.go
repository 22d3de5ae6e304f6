package ports

import (
	"context"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, timestamps, note and delivery info of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id.
	// Returns errs.ObjectNotFoundError when it does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetNextSequenceNumber allocates the next order number sequence for year,
	// starting at 1. Allocation is atomic across concurrent callers.
	GetNextSequenceNumber(ctx context.Context, year int) (int64, error)

	// GetPendingCreatedBefore returns Pending orders created strictly before t,
	// oldest first, at most limit of them.
	GetPendingCreatedBefore(ctx context.Context, t time.Time, limit int) ([]*order.Order, error)
}

// Package inventory keeps per-SKU stock bookkeeping: how many units exist and
// how many of them are held by pending checkouts.
package inventory

import (
	"errors"
	"math"

	"shop/internal/pkg/errs"
)

// DefaultLowStockThreshold is used when a SKU has no threshold of its own.
const DefaultLowStockThreshold = 5

// ErrStockIsNotConstructed is returned when a Stock was not created via NewStock or RestoreStock.
var ErrStockIsNotConstructed = errors.New("Stock must be created via NewStock or RestoreStock constructor")

// Stock tracks the total and reserved quantity of a single SKU.
//
// Invariants:
//   - 0 ≤ reserved ≤ total
//   - Available = total − reserved
//
// Every successful mutation bumps the version. Stock itself only guarantees
// the arithmetic for a consistent snapshot; persistence adapters write it back
// with a conditional update on the version read, so two concurrent
// reservations against the same snapshot cannot both succeed.
type Stock struct {
	total             int
	reserved          int
	lowStockThreshold int
	version           int64
	persistedVersion  int64
	isConstructed     bool
}

// NewStock creates stock with nothing reserved.
func NewStock(total int, lowStockThreshold int) (*Stock, error) {
	return RestoreStock(total, 0, lowStockThreshold, 0)
}

// RestoreStock rehydrates stock loaded from persistence.
func RestoreStock(total, reserved, lowStockThreshold int, version int64) (*Stock, error) {
	if total < 0 {
		return nil, errs.NewInvalidStockError("total quantity %d must not be negative", total)
	}
	if reserved < 0 || reserved > total {
		return nil, errs.NewInvalidStockError("reserved quantity %d must be within [0, %d]", reserved, total)
	}
	if lowStockThreshold < 0 {
		return nil, errs.NewInvalidStockError("low stock threshold %d must not be negative", lowStockThreshold)
	}

	return &Stock{
		total:             total,
		reserved:          reserved,
		lowStockThreshold: lowStockThreshold,
		version:           version,
		persistedVersion:  version,
		isConstructed:     true,
	}, nil
}

// Validate ensures the stock was created through a constructor.
func (s *Stock) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStockIsNotConstructed
	}
	return nil
}

func (s *Stock) Total() int {
	return s.total
}

func (s *Stock) Reserved() int {
	return s.reserved
}

func (s *Stock) LowStockThreshold() int {
	return s.lowStockThreshold
}

// Version is the optimistic-concurrency token of the last persisted state plus
// the number of mutations applied since.
func (s *Stock) Version() int64 {
	return s.version
}

// PersistedVersion is the version the stock was restored with; adapters use it
// as the expected value of their conditional update.
func (s *Stock) PersistedVersion() int64 {
	return s.persistedVersion
}

// IsChanged reports whether any mutation succeeded since the stock was restored.
func (s *Stock) IsChanged() bool {
	return s.version != s.persistedVersion
}

// Available returns total − reserved.
func (s *Stock) Available() int {
	return s.total - s.reserved
}

// IsLowStock reports 0 < available ≤ threshold.
func (s *Stock) IsLowStock() bool {
	available := s.Available()
	return available > 0 && available <= s.lowStockThreshold
}

// IsSoldOut reports whether nothing is available.
func (s *Stock) IsSoldOut() bool {
	return s.Available() == 0
}

// Reserve holds quantity units for a checkout.
func (s *Stock) Reserve(quantity int) error {
	if err := validatePositive(quantity); err != nil {
		return err
	}
	if quantity > s.Available() {
		return errs.NewInsufficientStockError(quantity, s.Available())
	}

	s.reserved += quantity
	s.version++
	return nil
}

// ReleaseReservation gives quantity held units back to available stock.
func (s *Stock) ReleaseReservation(quantity int) error {
	if err := validatePositive(quantity); err != nil {
		return err
	}
	if quantity > s.reserved {
		return errs.NewInvalidStockError("cannot release %d units, only %d reserved", quantity, s.reserved)
	}

	s.reserved -= quantity
	s.version++
	return nil
}

// Adjust applies a manual restock or write-off.
func (s *Stock) Adjust(adjustment StockAdjustment) error {
	if err := validatePositive(adjustment.quantity); err != nil {
		return err
	}

	switch adjustment.kind {
	case adjustmentIncrease:
		if s.total > math.MaxInt-adjustment.quantity {
			return errs.NewInvalidStockError("stock overflow: %d + %d", s.total, adjustment.quantity)
		}
		s.total += adjustment.quantity
	case adjustmentDecrease:
		if adjustment.quantity > s.Available() {
			return errs.NewInsufficientStockError(adjustment.quantity, s.Available())
		}
		s.total -= adjustment.quantity
	default:
		return errs.NewInvalidStockError("unknown stock adjustment")
	}

	s.version++
	return nil
}

// Consume permanently removes quantity sold units. Reserved units are drawn
// first; any remainder must be covered by unreserved available stock.
//
// Example: total 10, reserved 3, Consume(5) leaves total 5, reserved 0.
func (s *Stock) Consume(quantity int) error {
	if err := validatePositive(quantity); err != nil {
		return err
	}
	if quantity > s.total {
		return errs.NewInsufficientStockError(quantity, s.total)
	}

	fromReserved := min(quantity, s.reserved)
	remainder := quantity - fromReserved
	if remainder > s.Available() {
		return errs.NewInsufficientStockError(quantity, s.reserved+s.Available())
	}

	s.reserved -= fromReserved
	s.total -= quantity
	s.version++
	return nil
}

func validatePositive(quantity int) error {
	if quantity <= 0 {
		return errs.NewInvalidStockError("quantity %d must be positive", quantity)
	}
	return nil
}

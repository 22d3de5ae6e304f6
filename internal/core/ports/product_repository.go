// Package ports defines the repository interfaces the ordering core depends on.
// Adapters under internal/adapters implement them; use cases only see these contracts.
package ports

import (
	"context"

	"shop/internal/core/domain/model/catalog"
	"shop/internal/core/domain/model/inventory"
	"shop/internal/core/domain/model/kernel"
)

// ProductRepository supplies catalogue variants and their stock.
type ProductRepository interface {
	// FindVariantsByIDs returns the variants for skuIDs. Unknown ids are
	// skipped; callers compare the result with what they asked for.
	FindVariantsByIDs(ctx context.Context, skuIDs []kernel.UUID) ([]catalog.VariantSummary, error)

	// GetStock loads the stock record of a SKU.
	// Returns errs.ObjectNotFoundError when the SKU has no stock record.
	GetStock(ctx context.Context, skuID kernel.UUID) (*inventory.Stock, error)

	// SaveStock writes stock back only if the stored version still equals
	// stock.PersistedVersion(). A concurrent change yields errs.ErrConcurrencyConflict.
	SaveStock(ctx context.Context, skuID kernel.UUID, stock *inventory.Stock) error
}

package productrepo

import (
	"context"
	"errors"
	"fmt"

	"shop/internal/core/domain/model/catalog"
	"shop/internal/core/domain/model/inventory"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

// FindVariantsByIDs loads the variants for skuIDs together with their
// available quantity. SKUs without a stock record report zero available.
func (r *GormProductRepository) FindVariantsByIDs(ctx context.Context, skuIDs []kernel.UUID) ([]catalog.VariantSummary, error) {
	if len(skuIDs) == 0 {
		return []catalog.VariantSummary{}, nil
	}

	ids := make([]uuid.UUID, 0, len(skuIDs))
	for _, id := range skuIDs {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		ids = append(ids, id.Bytes())
	}

	var rows []variantRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			s.id AS sku_id,
			s.product_id,
			COALESCE(p.name, '') AS product_name,
			s.name AS sku_name,
			s.code AS sku_code,
			s.price,
			s.sale_price,
			COALESCE(st.total - st.reserved, 0) AS available,
			s.is_active AND COALESCE(p.is_active, FALSE) AS is_active
		FROM skus s
		LEFT JOIN products p ON p.id = s.product_id
		LEFT JOIN stocks st ON st.sku_id = s.id
		WHERE s.id IN ?
		ORDER BY s.code
	`, ids).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	variants := make([]catalog.VariantSummary, 0, len(rows))
	for _, row := range rows {
		v, err := variantToDomain(row)
		if err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}

	return variants, nil
}

// GetStock retrieves the stock record of a SKU.
func (r *GormProductRepository) GetStock(ctx context.Context, skuID kernel.UUID) (*inventory.Stock, error) {
	if err := skuID.Validate(); err != nil {
		return nil, err
	}

	var dto StockDTO
	if err := r.db.WithContext(ctx).First(&dto, "sku_id = ?", skuID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stock", skuID.String())
		}
		return nil, err
	}

	return stockToDomain(dto)
}

// SaveStock writes stock back if nobody changed the row since it was read.
// Unchanged stock is not written.
func (r *GormProductRepository) SaveStock(ctx context.Context, skuID kernel.UUID, stock *inventory.Stock) error {
	if err := errors.Join(skuID.Validate(), stock.Validate()); err != nil {
		return err
	}
	if !stock.IsChanged() {
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(&StockDTO{}).
		Where("sku_id = ? AND version = ?", skuID.Bytes(), stock.PersistedVersion()).
		Updates(map[string]any{
			"total":               stock.Total(),
			"reserved":            stock.Reserved(),
			"low_stock_threshold": stock.LowStockThreshold(),
			"version":             stock.Version(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("stock of sku %s changed since it was read: %w", skuID, errs.ErrConcurrencyConflict)
	}

	r.tracker.TrackAggregate(skuID, stock)
	return nil
}

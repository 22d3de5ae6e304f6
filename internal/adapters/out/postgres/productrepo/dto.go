// Package productrepo reads catalogue variants and keeps per-SKU stock records.
// Catalogue rows ("products", "skus") are maintained elsewhere and only read
// here; "stocks" is written back with a version check.
package productrepo

import (
	"shop/internal/core/domain/model/catalog"
	"shop/internal/core/domain/model/inventory"
	"shop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ProductDTO is a catalogue product.
type ProductDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"type:varchar(255);not null"`
	IsActive bool      `gorm:"not null;default:true"`
	SKUs     []SKUDTO  `gorm:"foreignKey:ProductID"`
}

func (ProductDTO) TableName() string {
	return "products"
}

// SKUDTO is a sellable variant of a product. ProductID is nullable so that
// orphaned SKUs surface as invalid product data instead of vanishing from reads.
type SKUDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ProductID *uuid.UUID `gorm:"type:uuid;index"`
	Code      string     `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name      string     `gorm:"type:varchar(255);not null;default:''"`
	Price     int64      `gorm:"not null"`
	SalePrice *int64
	IsActive  bool `gorm:"not null;default:true"`
}

func (SKUDTO) TableName() string {
	return "skus"
}

// StockDTO is the stock record of one SKU.
type StockDTO struct {
	SKUID             uuid.UUID `gorm:"column:sku_id;type:uuid;primaryKey"`
	Total             int       `gorm:"not null;check:chk_stocks_total,total >= 0"`
	Reserved          int       `gorm:"not null;default:0;check:chk_stocks_reserved,reserved >= 0 AND reserved <= total"`
	LowStockThreshold int       `gorm:"not null;default:5"`
	Version           int64     `gorm:"not null;default:0"`
}

func (StockDTO) TableName() string {
	return "stocks"
}

// variantRow is the joined read model behind FindVariantsByIDs.
type variantRow struct {
	SKUID       uuid.UUID
	ProductID   *uuid.UUID
	ProductName string
	SKUName     string
	SKUCode     string
	Price       int64
	SalePrice   *int64
	Available   int
	IsActive    bool
}

func variantToDomain(row variantRow) (catalog.VariantSummary, error) {
	skuID, err := kernel.UUIDFromBytes(row.SKUID[:])
	if err != nil {
		return catalog.VariantSummary{}, err
	}

	// A missing product stays the zero UUID and is rejected by NewVariantSummary.
	var productID kernel.UUID
	if row.ProductID != nil {
		if productID, err = kernel.UUIDFromBytes(row.ProductID[:]); err != nil {
			return catalog.VariantSummary{}, err
		}
	}

	price, err := kernel.MoneyFromYen(row.Price)
	if err != nil {
		return catalog.VariantSummary{}, err
	}

	var salePrice *kernel.Money
	if row.SalePrice != nil {
		sale, saleErr := kernel.MoneyFromYen(*row.SalePrice)
		if saleErr != nil {
			return catalog.VariantSummary{}, saleErr
		}
		salePrice = &sale
	}

	return catalog.NewVariantSummary(catalog.VariantSummaryParams{
		SKUID:       skuID,
		ProductID:   productID,
		ProductName: row.ProductName,
		SKUName:     row.SKUName,
		SKUCode:     row.SKUCode,
		Price:       price,
		SalePrice:   salePrice,
		Available:   row.Available,
		IsActive:    row.IsActive,
	})
}

func stockToDomain(dto StockDTO) (*inventory.Stock, error) {
	return inventory.RestoreStock(dto.Total, dto.Reserved, dto.LowStockThreshold, dto.Version)
}

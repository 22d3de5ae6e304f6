package postgres

import (
	"shop/internal/adapters/out/postgres/catalogrepo"
	"shop/internal/adapters/out/postgres/couponrepo"
	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/adapters/out/postgres/productrepo"

	"gorm.io/gorm"
)

// Models lists every table owned by the postgres adapters, parents first.
func Models() []any {
	return []any{
		&productrepo.ProductDTO{},
		&productrepo.SKUDTO{},
		&productrepo.StockDTO{},
		&catalogrepo.ShippingMethodDTO{},
		&catalogrepo.PaymentMethodDTO{},
		&couponrepo.CouponDTO{},
		&couponrepo.CouponTargetDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.OrderSequenceDTO{},
	}
}

// AutoMigrate creates or updates the schema of all adapter tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

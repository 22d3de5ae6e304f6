// Package commands contains business operations that modify system state.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"shop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductRepoFactory provides access to variants and stock within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// CouponRepoFactory provides access to coupon repository within a transaction.
	CouponRepoFactory interface {
		CouponRepository() ports.CouponRepository
	}

	// CheckoutMethodRepoFactory provides access to shipping and payment methods.
	CheckoutMethodRepoFactory interface {
		ShippingMethodRepository() ports.ShippingMethodRepository
		PaymentMethodRepository() ports.PaymentMethodRepository
	}

	// OrderUoW manages transactions for operations on existing orders. Product
	// access is needed because status changes reserve, consume or release stock.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CouponUoW manages transactions for coupon redemption.
	CouponUoW interface {
		TxManager
		CouponRepoFactory
		ProductRepoFactory
	}

	// CouponUoWFactory creates new coupon unit of work instances.
	CouponUoWFactory interface {
		Create() CouponUoW
	}

	// StockUoW manages transactions for manual stock adjustments.
	StockUoW interface {
		TxManager
		ProductRepoFactory
	}

	// StockUoWFactory creates new stock unit of work instances.
	StockUoWFactory interface {
		Create() StockUoW
	}

	// CheckoutUoW manages the transaction that places an order.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   shipping, err := uow.ShippingMethodRepository().FindByID(ctx, id)
	//   stock, err := uow.ProductRepository().GetStock(ctx, skuID)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	CheckoutUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		CheckoutMethodRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}
)

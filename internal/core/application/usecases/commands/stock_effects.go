package commands

import (
	"context"
	"fmt"

	"shop/internal/core/domain/model/inventory"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"
)

type skuQuantity struct {
	skuID    kernel.UUID
	quantity int
}

// mutateStock loads, changes and conditionally saves the stock of every SKU
// in quantities, in order.
func mutateStock(
	ctx context.Context,
	products ports.ProductRepository,
	quantities []skuQuantity,
	mutate func(stock *inventory.Stock, quantity int) error,
) error {
	for _, q := range quantities {
		stock, err := products.GetStock(ctx, q.skuID)
		if err != nil {
			return err
		}
		if err = mutate(stock, q.quantity); err != nil {
			return fmt.Errorf("sku %s: %w", q.skuID, err)
		}
		if err = products.SaveStock(ctx, q.skuID, stock); err != nil {
			return err
		}
	}
	return nil
}

func reserveStock(ctx context.Context, products ports.ProductRepository, quantities []skuQuantity) error {
	return mutateStock(ctx, products, quantities, (*inventory.Stock).Reserve)
}

// applyTransitionToStock settles the stock of o after it moved from previous
// to its current status: entering Shipped consumes the reservation, leaving
// the reserving statuses any other way releases it.
func applyTransitionToStock(ctx context.Context, products ports.ProductRepository, o *order.Order, previous order.Status) error {
	current := o.Status()
	quantities := itemQuantities(o.Items())

	switch {
	case current == order.Shipped:
		return mutateStock(ctx, products, quantities, (*inventory.Stock).Consume)
	case previous.HoldsStockReservation() && !current.HoldsStockReservation():
		return mutateStock(ctx, products, quantities, (*inventory.Stock).ReleaseReservation)
	default:
		return nil
	}
}

func itemQuantities(items []order.OrderItem) []skuQuantity {
	quantities := make([]skuQuantity, 0, len(items))
	index := make(map[kernel.UUID]int, len(items))
	for _, item := range items {
		if i, ok := index[item.SKUID()]; ok {
			quantities[i].quantity += item.Quantity()
			continue
		}
		index[item.SKUID()] = len(quantities)
		quantities = append(quantities, skuQuantity{skuID: item.SKUID(), quantity: item.Quantity()})
	}
	return quantities
}

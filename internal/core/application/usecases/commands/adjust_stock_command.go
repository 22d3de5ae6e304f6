package commands

import (
	"errors"

	"shop/internal/core/domain/model/inventory"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var ErrAdjustStockCommandIsNotConstructed = errors.New(
	"AdjustStockCommand must be created via NewAdjustStockCommand constructor",
)

// AdjustStockCommand restocks or writes off units of a single SKU.
type AdjustStockCommand struct { //nolint:recvcheck //using for validation
	skuID      kernel.UUID
	adjustment inventory.StockAdjustment

	guard guard.ConstructorGuard
}

func NewAdjustStockCommand(skuID kernel.UUID, adjustment inventory.StockAdjustment) (AdjustStockCommand, error) {
	var quantityErr error
	if adjustment.Quantity() <= 0 {
		quantityErr = errs.NewInvalidStockError("adjustment quantity %d must be positive", adjustment.Quantity())
	}

	if err := errors.Join(skuID.Validate(), quantityErr); err != nil {
		return AdjustStockCommand{}, err
	}

	return AdjustStockCommand{
		skuID:      skuID,
		adjustment: adjustment,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AdjustStockCommand) Validate() error {
	return c.guard.Validate(ErrAdjustStockCommandIsNotConstructed)
}

func (c AdjustStockCommand) SKUID() kernel.UUID {
	return c.skuID
}

func (c AdjustStockCommand) Adjustment() inventory.StockAdjustment {
	return c.adjustment
}

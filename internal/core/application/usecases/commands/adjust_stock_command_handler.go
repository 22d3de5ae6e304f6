package commands

import (
	"context"
	"log/slog"

	"shop/internal/core/domain/model/inventory"
)

// AdjustStockCommandHandler applies a manual restock or write-off. The write
// is conditional on the version read, like every other stock mutation.
type AdjustStockCommandHandler struct {
	uowFactory StockUoWFactory
	logger     *slog.Logger
}

func NewAdjustStockCommandHandler(uowFactory StockUoWFactory, logger *slog.Logger) AdjustStockCommandHandler {
	return AdjustStockCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "adjust_stock_handler"),
	}
}

func (h AdjustStockCommandHandler) Handle(ctx context.Context, cmd AdjustStockCommand) (*inventory.Stock, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var adjusted *inventory.Stock
	err := mutateStock(ctx, uow.ProductRepository(),
		[]skuQuantity{{skuID: cmd.SKUID(), quantity: cmd.Adjustment().Quantity()}},
		func(stock *inventory.Stock, _ int) error {
			adjusted = stock
			return stock.Adjust(cmd.Adjustment())
		},
	)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "stock adjusted",
		"sku_id", cmd.SKUID().String(),
		"increase", cmd.Adjustment().IsIncrease(),
		"quantity", cmd.Adjustment().Quantity(),
		"available", adjusted.Available(),
	)
	return adjusted, nil
}

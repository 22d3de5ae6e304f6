package commands

import (
	"context"
	"log/slog"
)

// StaleOrderCancellationReason is stored as the note of automatically cancelled orders.
const StaleOrderCancellationReason = "cancelled automatically: payment was not received in time"

// CancelStaleOrdersCommandHandler cancels unpaid orders in one transaction
// and returns how many were cancelled.
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

func NewCancelStaleOrdersCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "cancel_stale_orders_handler"),
	}
}

func (h CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stale, err := uow.OrderRepository().GetPendingCreatedBefore(ctx, cmd.CreatedBefore(), cmd.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(stale) == 0 {
		return 0, nil
	}

	for _, o := range stale {
		if err = cancelOrder(ctx, uow, o, StaleOrderCancellationReason); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	for _, o := range stale {
		h.logger.InfoContext(ctx, "stale order cancelled",
			"order_id", o.ID().String(),
			"order_number", o.Number().String(),
			"created_at", o.CreatedAt(),
		)
	}
	return len(stale), nil
}

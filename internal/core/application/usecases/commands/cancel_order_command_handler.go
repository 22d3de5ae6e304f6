package commands

import (
	"context"
	"log/slog"

	"shop/internal/core/domain/model/order"
)

// CancelOrderCommandHandler cancels orders and releases their stock
// reservation when the order still holds one.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "cancel_order_handler"),
	}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = cancelOrder(ctx, uow, o, cmd.Reason()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "order cancelled", "order_id", o.ID().String(), "reason", cmd.Reason())
	return o, nil
}

// cancelOrder cancels o, releases its reservation and stores it inside uow's transaction.
func cancelOrder(ctx context.Context, uow OrderUoW, o *order.Order, reason string) error {
	previous := o.Status()
	if err := o.Cancel(reason); err != nil {
		return err
	}

	if err := applyTransitionToStock(ctx, uow.ProductRepository(), o, previous); err != nil {
		return err
	}

	return uow.OrderRepository().Update(ctx, o)
}

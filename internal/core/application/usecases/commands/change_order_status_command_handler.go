package commands

import (
	"context"
	"log/slog"

	"shop/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler applies a status transition and settles
// stock accordingly: shipping consumes the reserved units, cancelling or
// refunding before shipment releases them.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "change_order_status_handler"),
	}
}

// Handle returns the updated order. Transitions not in the status table fail
// with a BusinessRuleViolationError and leave everything untouched.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
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

	previous := o.Status()
	if err = o.TransitionTo(cmd.Status()); err != nil {
		return nil, err
	}

	if err = applyTransitionToStock(ctx, uow.ProductRepository(), o, previous); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "order status changed",
		"order_id", o.ID().String(),
		"from", previous.String(),
		"to", o.Status().String(),
	)

	return o, nil
}

package commands

import (
	"context"
	"log/slog"

	"shop/internal/core/domain/model/order"
)

// AddDeliveryInfoCommandHandler records carrier hand-off data on Paid or
// Processing orders.
type AddDeliveryInfoCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

func NewAddDeliveryInfoCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) AddDeliveryInfoCommandHandler {
	return AddDeliveryInfoCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "add_delivery_info_handler"),
	}
}

func (h AddDeliveryInfoCommandHandler) Handle(ctx context.Context, cmd AddDeliveryInfoCommand) (*order.Order, error) {
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

	if err = o.AddDeliveryInfo(cmd.DeliveryInfo()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "delivery info added",
		"order_id", o.ID().String(),
		"carrier", cmd.DeliveryInfo().Carrier(),
	)
	return o, nil
}

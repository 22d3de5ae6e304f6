package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/guard"
)

var ErrAddDeliveryInfoCommandIsNotConstructed = errors.New(
	"AddDeliveryInfoCommand must be created via NewAddDeliveryInfoCommand constructor",
)

// AddDeliveryInfoCommand attaches carrier and tracking data to an order.
type AddDeliveryInfoCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	info    order.DeliveryInfo

	guard guard.ConstructorGuard
}

func NewAddDeliveryInfoCommand(orderID kernel.UUID, info order.DeliveryInfo) (AddDeliveryInfoCommand, error) {
	if err := errors.Join(orderID.Validate(), info.Validate()); err != nil {
		return AddDeliveryInfoCommand{}, err
	}

	return AddDeliveryInfoCommand{
		orderID: orderID,
		info:    info,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AddDeliveryInfoCommand) Validate() error {
	return c.guard.Validate(ErrAddDeliveryInfoCommandIsNotConstructed)
}

func (c AddDeliveryInfoCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AddDeliveryInfoCommand) DeliveryInfo() order.DeliveryInfo {
	return c.info
}

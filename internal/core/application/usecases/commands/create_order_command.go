package commands

import (
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"unicode/utf8"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/services"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a checkout: who orders, what, how it is
// shipped and paid.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), customer, address,
//	    []services.LineRequest{{SKUID: skuID, Quantity: 2}},
//	    shippingMethodID, paymentMethodID, nil, "")
//	if err != nil {
//	    return fmt.Errorf("invalid checkout: %w", err)
//	}
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	customer         order.CustomerInfo
	address          order.Address
	lines            []services.LineRequest
	shippingMethodID kernel.UUID
	paymentMethodID  kernel.UUID
	paymentDetails   json.RawMessage
	note             string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates a checkout request. Lines for the same SKU
// are merged.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customer order.CustomerInfo,
	address order.Address,
	lines []services.LineRequest,
	shippingMethodID kernel.UUID,
	paymentMethodID kernel.UUID,
	paymentDetails json.RawMessage,
	note string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		customer:       customer,
		address:        address,
		paymentDetails: slices.Clone(paymentDetails),
		guard:          guard.NewConstructorGuard(),
	}

	var noteErr error
	cmd.note = strings.TrimSpace(note)
	if n := utf8.RuneCountInString(cmd.note); n > order.MaxNoteLength {
		noteErr = errs.NewValueIsOutOfRangeError("note length", n, 0, order.MaxNoteLength)
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		customer.Validate(),
		address.Validate(),
		cmd.setLines(lines),
		cmd.setShippingMethodID(shippingMethodID),
		cmd.setPaymentMethodID(paymentMethodID),
		noteErr,
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) Customer() order.CustomerInfo {
	return c.customer
}

func (c CreateOrderCommand) Address() order.Address {
	return c.address
}

// Lines returns the merged order lines in request order.
func (c CreateOrderCommand) Lines() []services.LineRequest {
	return slices.Clone(c.lines)
}

func (c CreateOrderCommand) ShippingMethodID() kernel.UUID {
	return c.shippingMethodID
}

func (c CreateOrderCommand) PaymentMethodID() kernel.UUID {
	return c.paymentMethodID
}

func (c CreateOrderCommand) PaymentDetails() json.RawMessage {
	return slices.Clone(c.paymentDetails)
}

func (c CreateOrderCommand) Note() string {
	return c.note
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []services.LineRequest) error {
	merged, err := services.MergeLines(lines)
	if err != nil {
		return err
	}
	c.lines = merged
	return nil
}

func (c *CreateOrderCommand) setShippingMethodID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shipping method id", err)
	}
	c.shippingMethodID = id
	return nil
}

func (c *CreateOrderCommand) setPaymentMethodID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("payment method id", err)
	}
	c.paymentMethodID = id
	return nil
}

package commands

import (
	"context"
	"log/slog"
	"time"

	"shop/internal/core/domain/model/catalog"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/services"
	"shop/internal/pkg/errs"
)

// CreateOrderCommandHandler places orders.
//
// Within one transaction it resolves the shipping and payment methods and the
// requested variants, reserves stock for every line, prices the order
// (payment fee from PaymentFeeCalculator, falling back to the method's flat
// fee), allocates the next order number of the current year and stores the
// order in Pending status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, logger)
//	o, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInsufficientStock) {
//	    // tell the customer
//	}
type CreateOrderCommandHandler struct {
	uowFactory    CheckoutUoWFactory
	feeCalculator services.PaymentFeeCalculator
	logger        *slog.Logger
	now           func() time.Time
}

func NewCreateOrderCommandHandler(uowFactory CheckoutUoWFactory, logger *slog.Logger) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:    uowFactory,
		feeCalculator: services.NewPaymentFeeCalculator(),
		logger:        logger.With("component", "create_order_handler"),
		now:           time.Now,
	}
}

// Handle places the order described by cmd and returns it.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	shippingMethod, err := uow.ShippingMethodRepository().FindByID(ctx, cmd.ShippingMethodID())
	if err != nil {
		return nil, err
	}
	if !shippingMethod.IsActive() {
		return nil, errs.NewBusinessRuleViolationError("shipping method %s is not available", shippingMethod.Name())
	}

	paymentMethod, err := uow.PaymentMethodRepository().FindByID(ctx, cmd.PaymentMethodID())
	if err != nil {
		return nil, err
	}
	if !paymentMethod.IsActive() {
		return nil, errs.NewBusinessRuleViolationError("payment method %s is not available", paymentMethod.Name())
	}

	products := uow.ProductRepository()
	lines := cmd.Lines()

	variants, err := products.FindVariantsByIDs(ctx, skuIDs(lines))
	if err != nil {
		return nil, err
	}

	items, err := buildOrderItems(variants, lines)
	if err != nil {
		return nil, err
	}

	if err = reserveStock(ctx, products, lineQuantities(lines)); err != nil {
		return nil, err
	}

	o, err := h.buildOrder(ctx, uow, cmd, items, shippingMethod, paymentMethod)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "order created",
		"order_id", o.ID().String(),
		"order_number", o.Number().String(),
		"total", o.Pricing().Total().Yen(),
	)

	return o, nil
}

func (h CreateOrderCommandHandler) buildOrder(
	ctx context.Context,
	uow CheckoutUoW,
	cmd CreateOrderCommand,
	items []order.OrderItem,
	shippingMethod catalog.ShippingMethod,
	paymentMethod catalog.PaymentMethod,
) (*order.Order, error) {
	subtotal := kernel.ZeroMoney()
	for _, item := range items {
		lineTotal, err := item.Subtotal()
		if err != nil {
			return nil, err
		}
		if subtotal, err = subtotal.Add(lineTotal); err != nil {
			return nil, err
		}
	}

	shipping, err := order.NewShippingInfo(shippingMethod.ID(), shippingMethod.Name(), shippingMethod.Fee(), cmd.Address())
	if err != nil {
		return nil, err
	}

	paymentFee := h.feeCalculator.FeeFor(paymentMethod, subtotal)
	payment, err := order.NewPaymentInfo(paymentMethod.ID(), paymentMethod.Name(), paymentFee, cmd.PaymentDetails())
	if err != nil {
		return nil, err
	}

	year := h.now().UTC().Year()
	sequence, err := uow.OrderRepository().GetNextSequenceNumber(ctx, year)
	if err != nil {
		return nil, err
	}
	number, err := order.NewOrderNumber(year, sequence)
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(cmd.OrderID(), number, cmd.Customer(), items, shipping, payment)
	if err != nil {
		return nil, err
	}
	if cmd.Note() != "" {
		if err = o.UpdateNote(cmd.Note()); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// buildOrderItems snapshots the variants into order items. A requested SKU
// missing from variants is reported as not found.
func buildOrderItems(variants []catalog.VariantSummary, lines []services.LineRequest) ([]order.OrderItem, error) {
	bySKU := services.IndexVariants(variants)

	items := make([]order.OrderItem, 0, len(lines))
	for _, line := range lines {
		v, ok := bySKU[line.SKUID]
		if !ok {
			return nil, errs.NewObjectNotFoundError("sku", line.SKUID)
		}
		if err := v.CheckPurchasable(line.Quantity); err != nil {
			return nil, err
		}

		item, err := order.NewOrderItem(v.SKUID(), v.SKUCode(), v.ProductName(), v.SKUName(), v.EffectivePrice(), line.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func skuIDs(lines []services.LineRequest) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.SKUID)
	}
	return ids
}

func lineQuantities(lines []services.LineRequest) []skuQuantity {
	quantities := make([]skuQuantity, 0, len(lines))
	for _, line := range lines {
		quantities = append(quantities, skuQuantity{skuID: line.SKUID, quantity: line.Quantity})
	}
	return quantities
}

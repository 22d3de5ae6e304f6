package order

import (
	"errors"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

// MaxNoteLength is the maximum number of characters of an order note.
const MaxNoteLength = 1000

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of a placed order.
//
// Order follows these invariants:
//   - Has at least one OrderItem
//   - Pricing is derived from items, shipping fee and payment fee at creation
//     and never changes afterwards
//   - Status only changes along the transition table of Status
//   - paidAt, shippedAt, deliveredAt and cancelledAt are set once, the first
//     time the corresponding status is entered
//   - The note is at most MaxNoteLength characters
//
// Child records are held by value; getters return copies.
type Order struct {
	id       kernel.UUID
	number   OrderNumber
	customer CustomerInfo
	items    []OrderItem
	shipping ShippingInfo
	payment  PaymentInfo
	pricing  OrderPricing
	status   Status

	deliveryInfo *DeliveryInfo
	note         string

	createdAt   time.Time
	updatedAt   time.Time
	paidAt      *time.Time
	shippedAt   *time.Time
	deliveredAt *time.Time
	cancelledAt *time.Time

	isConstructed bool
}

// NewOrder places a new order in Pending status and prices it.
//
// Parameters:
//   - id: unique identifier of the order
//   - number: externally visible order number
//   - customer, shipping, payment: validated value records
//   - items: at least one validated OrderItem
//
// Returns an InvalidProductDataError when items is empty, or the joined
// validation errors of the arguments.
//
// Example:
//
//	number, _ := order.NewOrderNumber(2024, 123)
//	o, err := order.NewOrder(kernel.NewUUID(), number, customer, items, shipping, payment)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(o.Pricing().Total())
func NewOrder(
	id kernel.UUID,
	number OrderNumber,
	customer CustomerInfo,
	items []OrderItem,
	shipping ShippingInfo,
	payment PaymentInfo,
) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomer(customer),
		o.setItems(items),
		o.setShipping(shipping),
		o.setPayment(payment),
	); err != nil {
		return nil, err
	}

	subtotal, err := itemsSubtotal(o.items)
	if err != nil {
		return nil, err
	}

	if o.pricing, err = CalculateOrderPricing(subtotal, shipping.Fee(), payment.Fee()); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrderParams carries the persisted state of an order.
type RestoreOrderParams struct {
	ID           kernel.UUID
	Number       OrderNumber
	Customer     CustomerInfo
	Items        []OrderItem
	Shipping     ShippingInfo
	Payment      PaymentInfo
	Pricing      OrderPricing
	Status       Status
	DeliveryInfo *DeliveryInfo
	Note         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	PaidAt       *time.Time
	ShippedAt    *time.Time
	DeliveredAt  *time.Time
	CancelledAt  *time.Time
}

// RestoreOrder rehydrates an order from persistence. Pricing is taken as
// stored (use RestoreOrderPricing to rebuild it) but must match the items.
func RestoreOrder(p RestoreOrderParams) (*Order, error) {
	o := &Order{
		pricing:      p.Pricing,
		deliveryInfo: p.DeliveryInfo,
		createdAt:    p.CreatedAt.UTC(),
		updatedAt:    p.UpdatedAt.UTC(),
		paidAt:       p.PaidAt,
		shippedAt:    p.ShippedAt,
		deliveredAt:  p.DeliveredAt,
		cancelledAt:  p.CancelledAt,

		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(p.ID),
		o.setNumber(p.Number),
		o.setCustomer(p.Customer),
		o.setItems(p.Items),
		o.setShipping(p.Shipping),
		o.setPayment(p.Payment),
		o.setNote(p.Note),
		p.Status.Validate(),
	); err != nil {
		return nil, err
	}
	o.status = p.Status

	subtotal, err := itemsSubtotal(o.items)
	if err != nil {
		return nil, err
	}
	if !subtotal.IsEqual(p.Pricing.Subtotal()) {
		return nil, errs.NewBusinessRuleViolationError(
			"stored subtotal %s does not match items subtotal %s", p.Pricing.Subtotal(), subtotal)
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Number() OrderNumber {
	return o.number
}

func (o *Order) Customer() CustomerInfo {
	return o.customer
}

// Items returns a copy of the order lines.
func (o *Order) Items() []OrderItem {
	return slices.Clone(o.items)
}

func (o *Order) Shipping() ShippingInfo {
	return o.shipping
}

func (o *Order) Payment() PaymentInfo {
	return o.payment
}

func (o *Order) Pricing() OrderPricing {
	return o.pricing
}

func (o *Order) Status() Status {
	return o.status
}

// DeliveryInfo returns a copy of the attached delivery info, or nil.
func (o *Order) DeliveryInfo() *DeliveryInfo {
	if o.deliveryInfo == nil {
		return nil
	}
	info := *o.deliveryInfo
	return &info
}

func (o *Order) Note() string {
	return o.note
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

func (o *Order) PaidAt() *time.Time {
	return copyTime(o.paidAt)
}

func (o *Order) ShippedAt() *time.Time {
	return copyTime(o.shippedAt)
}

func (o *Order) DeliveredAt() *time.Time {
	return copyTime(o.deliveredAt)
}

func (o *Order) CancelledAt() *time.Time {
	return copyTime(o.cancelledAt)
}

// TransitionTo moves the order to target if the transition table allows it.
// On success updatedAt is refreshed and the status timestamp is set if this
// is the first time target is reached. On failure the order is unchanged.
func (o *Order) TransitionTo(target Status) error {
	if err := o.status.ValidateTransition(target); err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = target
	o.updatedAt = now

	switch target { //nolint:exhaustive // only some statuses carry a timestamp
	case Paid:
		setOnce(&o.paidAt, now)
	case Shipped:
		setOnce(&o.shippedAt, now)
	case Delivered:
		setOnce(&o.deliveredAt, now)
	case Cancelled:
		setOnce(&o.cancelledAt, now)
	}

	return nil
}

// MarkAsPaid transitions the order to Paid.
func (o *Order) MarkAsPaid() error {
	return o.TransitionTo(Paid)
}

// StartProcessing transitions the order to Processing.
func (o *Order) StartProcessing() error {
	return o.TransitionTo(Processing)
}

// Ship transitions the order to Shipped.
func (o *Order) Ship() error {
	return o.TransitionTo(Shipped)
}

// MarkAsDelivered transitions the order to Delivered.
func (o *Order) MarkAsDelivered() error {
	return o.TransitionTo(Delivered)
}

// Refund transitions the order to Refunded.
func (o *Order) Refund() error {
	return o.TransitionTo(Refunded)
}

// Cancel transitions the order to Cancelled and records reason as the note.
// Delivered, Cancelled and Refunded orders cannot be cancelled.
func (o *Order) Cancel(reason string) error {
	if !o.status.IsCancellable() {
		return errs.NewBusinessRuleViolationError("order in status %s cannot be cancelled", o.status)
	}

	reason = strings.TrimSpace(reason)
	if err := validateNote(reason); err != nil {
		return err
	}

	if err := o.TransitionTo(Cancelled); err != nil {
		return err
	}

	o.note = reason
	return nil
}

// UpdateNote replaces the free-text note.
func (o *Order) UpdateNote(note string) error {
	if err := o.setNote(note); err != nil {
		return err
	}

	o.updatedAt = time.Now().UTC()
	return nil
}

// AddDeliveryInfo attaches carrier data. Only allowed while the order is Paid
// or Processing.
func (o *Order) AddDeliveryInfo(info DeliveryInfo) error {
	if o.status != Paid && o.status != Processing {
		return errs.NewBusinessRuleViolationError("delivery info cannot be added to an order in status %s", o.status)
	}
	if err := info.Validate(); err != nil {
		return err
	}

	o.deliveryInfo = &info
	o.updatedAt = time.Now().UTC()
	return nil
}

// TotalQuantity returns the number of units across all items.
func (o *Order) TotalQuantity() int {
	total := 0
	for _, item := range o.items {
		total += item.Quantity()
	}
	return total
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number OrderNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setCustomer(customer CustomerInfo) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return errs.NewInvalidProductDataError("order must contain at least one item")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = slices.Clone(items)
	return nil
}

func (o *Order) setShipping(shipping ShippingInfo) error {
	if err := shipping.Validate(); err != nil {
		return err
	}
	o.shipping = shipping
	return nil
}

func (o *Order) setPayment(payment PaymentInfo) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	o.payment = payment
	return nil
}

func (o *Order) setNote(note string) error {
	note = strings.TrimSpace(note)
	if err := validateNote(note); err != nil {
		return err
	}
	o.note = note
	return nil
}

func validateNote(note string) error {
	if n := utf8.RuneCountInString(note); n > MaxNoteLength {
		return errs.NewValueIsOutOfRangeError("note length", n, 0, MaxNoteLength)
	}
	return nil
}

func itemsSubtotal(items []OrderItem) (kernel.Money, error) {
	subtotal := kernel.ZeroMoney()
	for _, item := range items {
		lineTotal, err := item.Subtotal()
		if err != nil {
			return kernel.Money{}, err
		}
		if subtotal, err = subtotal.Add(lineTotal); err != nil {
			return kernel.Money{}, err
		}
	}
	return subtotal, nil
}

func setOnce(field **time.Time, at time.Time) {
	if *field == nil {
		*field = &at
	}
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

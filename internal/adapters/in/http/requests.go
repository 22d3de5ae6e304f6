package http

import (
	"encoding/json"
	"time"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/inventory"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/services"
)

type LineItemRequest struct {
	SKUID    string `json:"sku_id" validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"required,min=1,max=999"`
}

type CustomerRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,max=20"`
}

type AddressRequest struct {
	PostalCode string `json:"postal_code" validate:"required"`
	Prefecture string `json:"prefecture" validate:"required"`
	City       string `json:"city" validate:"required"`
	Line1      string `json:"line1" validate:"required"`
	Line2      string `json:"line2"`
}

// CreateOrderRequest is the payload of POST /api/v1/orders.
type CreateOrderRequest struct {
	Customer         CustomerRequest   `json:"customer"`
	ShippingAddress  AddressRequest    `json:"shipping_address"`
	Items            []LineItemRequest `json:"items" validate:"required,min=1,dive"`
	ShippingMethodID string            `json:"shipping_method_id" validate:"required,uuid"`
	PaymentMethodID  string            `json:"payment_method_id" validate:"required,uuid"`
	PaymentDetails   json.RawMessage   `json:"payment_details,omitempty"`
	Note             string            `json:"note" validate:"max=1000"`
}

type ChangeOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type CancelOrderRequest struct {
	Reason string `json:"reason" validate:"max=1000"`
}

type AddDeliveryInfoRequest struct {
	Carrier             string     `json:"carrier" validate:"required,max=100"`
	TrackingNumber      string     `json:"tracking_number" validate:"required,max=100"`
	EstimatedDeliveryAt *time.Time `json:"estimated_delivery_at,omitempty"`
}

type PreviewCartRequest struct {
	Items      []LineItemRequest `json:"items" validate:"required,min=1,dive"`
	CouponCode string            `json:"coupon_code" validate:"max=50"`
}

type RedeemCouponRequest struct {
	Items []LineItemRequest `json:"items" validate:"required,min=1,dive"`
}

type AdjustStockRequest struct {
	Direction string `json:"direction" validate:"required,oneof=increase decrease"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

func (r CreateOrderRequest) toCommand() (commands.CreateOrderCommand, error) {
	customer, err := order.NewCustomerInfo(r.Customer.Name, r.Customer.Email, r.Customer.Phone)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	address, err := order.NewAddress(
		r.ShippingAddress.PostalCode,
		r.ShippingAddress.Prefecture,
		r.ShippingAddress.City,
		r.ShippingAddress.Line1,
		r.ShippingAddress.Line2,
	)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	lines, err := toLines(r.Items)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	shippingMethodID, err := kernel.UUIDFromString(r.ShippingMethodID)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}
	paymentMethodID, err := kernel.UUIDFromString(r.PaymentMethodID)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	return commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		customer,
		address,
		lines,
		shippingMethodID,
		paymentMethodID,
		r.PaymentDetails,
		r.Note,
	)
}

func (r AddDeliveryInfoRequest) toCommand(orderID kernel.UUID) (commands.AddDeliveryInfoCommand, error) {
	info, err := order.NewDeliveryInfo(r.Carrier, r.TrackingNumber, r.EstimatedDeliveryAt)
	if err != nil {
		return commands.AddDeliveryInfoCommand{}, err
	}
	return commands.NewAddDeliveryInfoCommand(orderID, info)
}

func (r AdjustStockRequest) toCommand(skuID kernel.UUID) (commands.AdjustStockCommand, error) {
	adjustment := inventory.Decrease(r.Quantity)
	if r.Direction == "increase" {
		adjustment = inventory.Increase(r.Quantity)
	}
	return commands.NewAdjustStockCommand(skuID, adjustment)
}

func (r PreviewCartRequest) toQuery() (queries.PreviewCartQuery, error) {
	lines, err := toLines(r.Items)
	if err != nil {
		return queries.PreviewCartQuery{}, err
	}
	return queries.NewPreviewCartQuery(lines, r.CouponCode)
}

func toLines(items []LineItemRequest) ([]services.LineRequest, error) {
	lines := make([]services.LineRequest, 0, len(items))
	for _, item := range items {
		skuID, err := kernel.UUIDFromString(item.SKUID)
		if err != nil {
			return nil, err
		}
		lines = append(lines, services.LineRequest{SKUID: skuID, Quantity: item.Quantity})
	}
	return lines, nil
}

package queries

import (
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery looks up a single order by id.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	view, err := NewGetOrderQueryHandler(db).Handle(ctx, query)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, errs.NewValueIsRequiredErrorWithCause("order id", err)
	}

	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is a flat read model of an order. Amounts are in yen.
type GetOrderQueryResponse struct {
	ID       kernel.UUID
	Number   string
	Status   string
	Customer CustomerView
	Shipping ShippingView
	Payment  PaymentView
	Pricing  PricingView
	Delivery *DeliveryView
	Items    []OrderItemView
	Note     string

	CreatedAt   time.Time
	UpdatedAt   time.Time
	PaidAt      *time.Time
	ShippedAt   *time.Time
	DeliveredAt *time.Time
	CancelledAt *time.Time
}

type CustomerView struct {
	Name  string
	Email string
	Phone string
}

type ShippingView struct {
	MethodID   kernel.UUID
	MethodName string
	Fee        int64
	PostalCode string
	Prefecture string
	City       string
	Line1      string
	Line2      string
}

type PaymentView struct {
	MethodID   kernel.UUID
	MethodName string
	Fee        int64
	Details    []byte
}

type PricingView struct {
	Subtotal    int64
	ShippingFee int64
	PaymentFee  int64
	TaxAmount   int64
	Total       int64
}

type DeliveryView struct {
	Carrier        string
	TrackingNumber string
	EstimatedAt    *time.Time
}

type OrderItemView struct {
	SKUID       kernel.UUID
	SKUCode     string
	ProductName string
	SKUName     string
	UnitPrice   int64
	Quantity    int
	Subtotal    int64
}

// NewGetOrderQueryResponse projects an aggregate already in memory onto the
// read model, so write endpoints answer with the same shape as GetOrderQuery.
func NewGetOrderQueryResponse(o *order.Order) GetOrderQueryResponse {
	customer := o.Customer()
	shipping := o.Shipping()
	address := shipping.Address()
	payment := o.Payment()
	pricing := o.Pricing()

	response := GetOrderQueryResponse{
		ID:     o.ID(),
		Number: o.Number().String(),
		Status: o.Status().String(),
		Customer: CustomerView{
			Name:  customer.Name(),
			Email: customer.Email(),
			Phone: customer.Phone(),
		},
		Shipping: ShippingView{
			MethodID:   shipping.MethodID(),
			MethodName: shipping.MethodName(),
			Fee:        shipping.Fee().Yen(),
			PostalCode: address.PostalCode(),
			Prefecture: address.Prefecture(),
			City:       address.City(),
			Line1:      address.Line1(),
			Line2:      address.Line2(),
		},
		Payment: PaymentView{
			MethodID:   payment.MethodID(),
			MethodName: payment.MethodName(),
			Fee:        payment.Fee().Yen(),
			Details:    payment.Details(),
		},
		Pricing: PricingView{
			Subtotal:    pricing.Subtotal().Yen(),
			ShippingFee: pricing.ShippingFee().Yen(),
			PaymentFee:  pricing.PaymentFee().Yen(),
			TaxAmount:   pricing.TaxAmount().Yen(),
			Total:       pricing.Total().Yen(),
		},
		Note:        o.Note(),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
		PaidAt:      o.PaidAt(),
		ShippedAt:   o.ShippedAt(),
		DeliveredAt: o.DeliveredAt(),
		CancelledAt: o.CancelledAt(),
	}

	if info := o.DeliveryInfo(); info != nil {
		response.Delivery = &DeliveryView{
			Carrier:        info.Carrier(),
			TrackingNumber: info.TrackingNumber(),
			EstimatedAt:    info.EstimatedDeliveryAt(),
		}
	}

	items := o.Items()
	response.Items = make([]OrderItemView, 0, len(items))
	for _, item := range items {
		response.Items = append(response.Items, OrderItemView{
			SKUID:       item.SKUID(),
			SKUCode:     item.SKUCode(),
			ProductName: item.ProductName(),
			SKUName:     item.SKUName(),
			UnitPrice:   item.UnitPrice().Yen(),
			Quantity:    item.Quantity(),
			Subtotal:    item.UnitPrice().Yen() * int64(item.Quantity()),
		})
	}

	return response
}

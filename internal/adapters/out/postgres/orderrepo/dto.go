// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// Orders are stored in "orders" with their lines in "order_items"; order numbers are
// allocated from the per-year counters in "order_sequences".
package orderrepo

import (
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Value records of the aggregate are embedded as prefixed columns.
type OrderDTO struct {
	ID       uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Number   string         `gorm:"type:varchar(32);not null;uniqueIndex"`
	Customer CustomerDTO    `gorm:"embedded;embeddedPrefix:customer_"`
	Shipping ShippingDTO    `gorm:"embedded;embeddedPrefix:shipping_"`
	Payment  PaymentDTO     `gorm:"embedded;embeddedPrefix:payment_"`
	Pricing  PricingDTO     `gorm:"embedded;embeddedPrefix:pricing_"`
	Delivery DeliveryDTO    `gorm:"embedded;embeddedPrefix:delivery_"`
	Items    []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	Status      int       `gorm:"not null;index:idx_orders_status_created_at,priority:1"`
	Note        string    `gorm:"type:text;not null;default:''"`
	CreatedAt   time.Time `gorm:"not null;index:idx_orders_status_created_at,priority:2"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime:false"`
	PaidAt      *time.Time
	ShippedAt   *time.Time
	DeliveredAt *time.Time
	CancelledAt *time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

type CustomerDTO struct {
	Name  string `gorm:"type:varchar(100);not null"`
	Email string `gorm:"type:varchar(255);not null;index"`
	Phone string `gorm:"type:varchar(20);not null"`
}

type ShippingDTO struct {
	MethodID   uuid.UUID `gorm:"type:uuid;not null"`
	MethodName string    `gorm:"type:varchar(100);not null"`
	Fee        int64     `gorm:"not null"`
	PostalCode string    `gorm:"type:varchar(8);not null"`
	Prefecture string    `gorm:"type:varchar(20);not null"`
	City       string    `gorm:"type:varchar(100);not null"`
	Line1      string    `gorm:"type:varchar(255);not null"`
	Line2      string    `gorm:"type:varchar(255);not null;default:''"`
}

type PaymentDTO struct {
	MethodID   uuid.UUID `gorm:"type:uuid;not null"`
	MethodName string    `gorm:"type:varchar(100);not null"`
	Fee        int64     `gorm:"not null"`
	Details    []byte    `gorm:"type:jsonb"`
}

// PricingDTO holds the amounts fixed when the order was placed.
type PricingDTO struct {
	Subtotal    int64 `gorm:"not null"`
	ShippingFee int64 `gorm:"not null"`
	PaymentFee  int64 `gorm:"not null"`
	TaxAmount   int64 `gorm:"not null"`
	Total       int64 `gorm:"not null"`
}

// DeliveryDTO is all-null until delivery info is attached.
type DeliveryDTO struct {
	Carrier        *string `gorm:"type:varchar(100)"`
	TrackingNumber *string `gorm:"type:varchar(100)"`
	EstimatedAt    *time.Time
}

// OrderItemDTO is one order line. Position keeps the lines in placement order.
type OrderItemDTO struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Position    int       `gorm:"not null"`
	SKUID       uuid.UUID `gorm:"column:sku_id;type:uuid;not null;index"`
	SKUCode     string    `gorm:"column:sku_code;type:varchar(50);not null"`
	ProductName string    `gorm:"type:varchar(255);not null"`
	SKUName     string    `gorm:"column:sku_name;type:varchar(255);not null;default:''"`
	UnitPrice   int64     `gorm:"not null"`
	Quantity    int       `gorm:"not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// OrderSequenceDTO is the order number counter of one calendar year.
type OrderSequenceDTO struct {
	Year      int   `gorm:"primaryKey;autoIncrement:false"`
	LastValue int64 `gorm:"not null"`
}

func (OrderSequenceDTO) TableName() string {
	return "order_sequences"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()
	customer := o.Customer()
	shipping := o.Shipping()
	address := shipping.Address()
	payment := o.Payment()
	pricing := o.Pricing()

	items := make([]OrderItemDTO, 0, len(o.Items()))
	for i, item := range o.Items() {
		items = append(items, OrderItemDTO{
			OrderID:     orderID,
			Position:    i,
			SKUID:       item.SKUID().Bytes(),
			SKUCode:     item.SKUCode(),
			ProductName: item.ProductName(),
			SKUName:     item.SKUName(),
			UnitPrice:   item.UnitPrice().Yen(),
			Quantity:    item.Quantity(),
		})
	}

	var delivery DeliveryDTO
	if info := o.DeliveryInfo(); info != nil {
		carrier, tracking := info.Carrier(), info.TrackingNumber()
		delivery = DeliveryDTO{
			Carrier:        &carrier,
			TrackingNumber: &tracking,
			EstimatedAt:    info.EstimatedDeliveryAt(),
		}
	}

	return OrderDTO{
		ID:     orderID,
		Number: o.Number().String(),
		Customer: CustomerDTO{
			Name:  customer.Name(),
			Email: customer.Email(),
			Phone: customer.Phone(),
		},
		Shipping: ShippingDTO{
			MethodID:   shipping.MethodID().Bytes(),
			MethodName: shipping.MethodName(),
			Fee:        shipping.Fee().Yen(),
			PostalCode: address.PostalCode(),
			Prefecture: address.Prefecture(),
			City:       address.City(),
			Line1:      address.Line1(),
			Line2:      address.Line2(),
		},
		Payment: PaymentDTO{
			MethodID:   payment.MethodID().Bytes(),
			MethodName: payment.MethodName(),
			Fee:        payment.Fee().Yen(),
			Details:    payment.Details(),
		},
		Pricing: PricingDTO{
			Subtotal:    pricing.Subtotal().Yen(),
			ShippingFee: pricing.ShippingFee().Yen(),
			PaymentFee:  pricing.PaymentFee().Yen(),
			TaxAmount:   pricing.TaxAmount().Yen(),
			Total:       pricing.Total().Yen(),
		},
		Delivery:    delivery,
		Items:       items,
		Status:      int(o.Status()),
		Note:        o.Note(),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
		PaidAt:      o.PaidAt(),
		ShippedAt:   o.ShippedAt(),
		DeliveredAt: o.DeliveredAt(),
		CancelledAt: o.CancelledAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
// Items must be preloaded and ordered by position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	number, err := order.ParseOrderNumber(dto.Number)
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomerInfo(dto.Customer.Name, dto.Customer.Email, dto.Customer.Phone)
	if err != nil {
		return nil, err
	}

	shipping, err := shippingToDomain(dto.Shipping)
	if err != nil {
		return nil, err
	}

	payment, err := paymentToDomain(dto.Payment)
	if err != nil {
		return nil, err
	}

	pricing, err := pricingToDomain(dto.Pricing)
	if err != nil {
		return nil, err
	}

	items := make([]order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var delivery *order.DeliveryInfo
	if dto.Delivery.Carrier != nil && dto.Delivery.TrackingNumber != nil {
		info, infoErr := order.NewDeliveryInfo(*dto.Delivery.Carrier, *dto.Delivery.TrackingNumber, dto.Delivery.EstimatedAt)
		if infoErr != nil {
			return nil, infoErr
		}
		delivery = &info
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:           id,
		Number:       number,
		Customer:     customer,
		Items:        items,
		Shipping:     shipping,
		Payment:      payment,
		Pricing:      pricing,
		Status:       order.Status(dto.Status),
		DeliveryInfo: delivery,
		Note:         dto.Note,
		CreatedAt:    dto.CreatedAt,
		UpdatedAt:    dto.UpdatedAt,
		PaidAt:       utcOrNil(dto.PaidAt),
		ShippedAt:    utcOrNil(dto.ShippedAt),
		DeliveredAt:  utcOrNil(dto.DeliveredAt),
		CancelledAt:  utcOrNil(dto.CancelledAt),
	})
}

func shippingToDomain(dto ShippingDTO) (order.ShippingInfo, error) {
	methodID, err := kernel.UUIDFromBytes(dto.MethodID[:])
	if err != nil {
		return order.ShippingInfo{}, err
	}

	fee, err := kernel.MoneyFromYen(dto.Fee)
	if err != nil {
		return order.ShippingInfo{}, err
	}

	address, err := order.NewAddress(dto.PostalCode, dto.Prefecture, dto.City, dto.Line1, dto.Line2)
	if err != nil {
		return order.ShippingInfo{}, err
	}

	return order.NewShippingInfo(methodID, dto.MethodName, fee, address)
}

func paymentToDomain(dto PaymentDTO) (order.PaymentInfo, error) {
	methodID, err := kernel.UUIDFromBytes(dto.MethodID[:])
	if err != nil {
		return order.PaymentInfo{}, err
	}

	fee, err := kernel.MoneyFromYen(dto.Fee)
	if err != nil {
		return order.PaymentInfo{}, err
	}

	return order.NewPaymentInfo(methodID, dto.MethodName, fee, dto.Details)
}

func pricingToDomain(dto PricingDTO) (order.OrderPricing, error) {
	amounts := make([]kernel.Money, 0, 5)
	for _, yen := range []int64{dto.Subtotal, dto.ShippingFee, dto.PaymentFee, dto.TaxAmount, dto.Total} {
		m, err := kernel.MoneyFromYen(yen)
		if err != nil {
			return order.OrderPricing{}, err
		}
		amounts = append(amounts, m)
	}

	return order.RestoreOrderPricing(amounts[0], amounts[1], amounts[2], amounts[3], amounts[4])
}

func itemToDomain(dto OrderItemDTO) (order.OrderItem, error) {
	skuID, err := kernel.UUIDFromBytes(dto.SKUID[:])
	if err != nil {
		return order.OrderItem{}, err
	}

	unitPrice, err := kernel.MoneyFromYen(dto.UnitPrice)
	if err != nil {
		return order.OrderItem{}, err
	}

	return order.NewOrderItem(skuID, dto.SKUCode, dto.ProductName, dto.SKUName, unitPrice, dto.Quantity)
}

func utcOrNil(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	utc := t.UTC()
	return &utc
}

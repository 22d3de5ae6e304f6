package queries

import (
	"context"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads an order and its lines straight from the orders
// tables without going through the aggregate.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

type orderRow struct {
	ID                     uuid.UUID
	Number                 string
	Status                 int
	CustomerName           string
	CustomerEmail          string
	CustomerPhone          string
	ShippingMethodID       uuid.UUID
	ShippingMethodName     string
	ShippingFee            int64
	ShippingPostalCode     string
	ShippingPrefecture     string
	ShippingCity           string
	ShippingLine1          string
	ShippingLine2          string
	PaymentMethodID        uuid.UUID
	PaymentMethodName      string
	PaymentFee             int64
	PaymentDetails         []byte
	PricingSubtotal        int64
	PricingShippingFee     int64
	PricingPaymentFee      int64
	PricingTaxAmount       int64
	PricingTotal           int64
	DeliveryCarrier        *string
	DeliveryTrackingNumber *string
	DeliveryEstimatedAt    *time.Time
	Note                   string
	CreatedAt              time.Time
	UpdatedAt              time.Time
	PaidAt                 *time.Time
	ShippedAt              *time.Time
	DeliveredAt            *time.Time
	CancelledAt            *time.Time
}

// Handle returns the order, or an ObjectNotFoundError when no order has the id.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var row orderRow
	result := h.db.WithContext(ctx).Raw(`
		SELECT
			id, number, status,
			customer_name, customer_email, customer_phone,
			shipping_method_id, shipping_method_name, shipping_fee,
			shipping_postal_code, shipping_prefecture, shipping_city, shipping_line1, shipping_line2,
			payment_method_id, payment_method_name, payment_fee, payment_details,
			pricing_subtotal, pricing_shipping_fee, pricing_payment_fee, pricing_tax_amount, pricing_total,
			delivery_carrier, delivery_tracking_number, delivery_estimated_at,
			note, created_at, updated_at, paid_at, shipped_at, delivered_at, cancelled_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Scan(&row)
	if result.Error != nil {
		return GetOrderQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	response, err := row.toResponse()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	items, err := h.items(ctx, row.ID)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.Items = items

	return response, nil
}

func (h GetOrderQueryHandler) items(ctx context.Context, orderID uuid.UUID) ([]OrderItemView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT sku_id, sku_code, product_name, sku_name, unit_price, quantity
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemView, 0)
	for rows.Next() {
		var item OrderItemView
		var skuID uuid.UUID

		if err = rows.Scan(
			&skuID,
			&item.SKUCode,
			&item.ProductName,
			&item.SKUName,
			&item.UnitPrice,
			&item.Quantity,
		); err != nil {
			return nil, err
		}

		if item.SKUID, err = kernel.UUIDFromBytes(skuID[:]); err != nil {
			return nil, err
		}
		item.Subtotal = item.UnitPrice * int64(item.Quantity)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r orderRow) toResponse() (GetOrderQueryResponse, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	shippingMethodID, err := kernel.UUIDFromBytes(r.ShippingMethodID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	paymentMethodID, err := kernel.UUIDFromBytes(r.PaymentMethodID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	response := GetOrderQueryResponse{
		ID:     id,
		Number: r.Number,
		Status: order.Status(r.Status).String(),
		Customer: CustomerView{
			Name:  r.CustomerName,
			Email: r.CustomerEmail,
			Phone: r.CustomerPhone,
		},
		Shipping: ShippingView{
			MethodID:   shippingMethodID,
			MethodName: r.ShippingMethodName,
			Fee:        r.ShippingFee,
			PostalCode: r.ShippingPostalCode,
			Prefecture: r.ShippingPrefecture,
			City:       r.ShippingCity,
			Line1:      r.ShippingLine1,
			Line2:      r.ShippingLine2,
		},
		Payment: PaymentView{
			MethodID:   paymentMethodID,
			MethodName: r.PaymentMethodName,
			Fee:        r.PaymentFee,
			Details:    r.PaymentDetails,
		},
		Pricing: PricingView{
			Subtotal:    r.PricingSubtotal,
			ShippingFee: r.PricingShippingFee,
			PaymentFee:  r.PricingPaymentFee,
			TaxAmount:   r.PricingTaxAmount,
			Total:       r.PricingTotal,
		},
		Note:        r.Note,
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   r.UpdatedAt.UTC(),
		PaidAt:      r.PaidAt,
		ShippedAt:   r.ShippedAt,
		DeliveredAt: r.DeliveredAt,
		CancelledAt: r.CancelledAt,
	}

	if r.DeliveryCarrier != nil && r.DeliveryTrackingNumber != nil {
		response.Delivery = &DeliveryView{
			Carrier:        *r.DeliveryCarrier,
			TrackingNumber: *r.DeliveryTrackingNumber,
			EstimatedAt:    r.DeliveryEstimatedAt,
		}
	}

	return response, nil
}

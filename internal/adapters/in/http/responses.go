package http

import (
	"encoding/json"
	"time"

	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/inventory"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/services"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type OrderResponse struct {
	ID              string              `json:"id"`
	Number          string              `json:"number"`
	Status          string              `json:"status"`
	Customer        CustomerResponse    `json:"customer"`
	ShippingAddress AddressResponse     `json:"shipping_address"`
	ShippingMethod  MethodResponse      `json:"shipping_method"`
	PaymentMethod   MethodResponse      `json:"payment_method"`
	PaymentDetails  json.RawMessage     `json:"payment_details,omitempty"`
	Items           []OrderItemResponse `json:"items"`
	Pricing         PricingResponse     `json:"pricing"`
	Delivery        *DeliveryResponse   `json:"delivery,omitempty"`
	Note            string              `json:"note"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
	PaidAt          *time.Time          `json:"paid_at,omitempty"`
	ShippedAt       *time.Time          `json:"shipped_at,omitempty"`
	DeliveredAt     *time.Time          `json:"delivered_at,omitempty"`
	CancelledAt     *time.Time          `json:"cancelled_at,omitempty"`
}

type CustomerResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type AddressResponse struct {
	PostalCode string `json:"postal_code"`
	Prefecture string `json:"prefecture"`
	City       string `json:"city"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
}

type MethodResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Fee  int64  `json:"fee"`
}

type OrderItemResponse struct {
	SKUID       string `json:"sku_id"`
	SKUCode     string `json:"sku_code"`
	ProductName string `json:"product_name"`
	SKUName     string `json:"sku_name,omitempty"`
	UnitPrice   int64  `json:"unit_price"`
	Quantity    int    `json:"quantity"`
	Subtotal    int64  `json:"subtotal"`
}

type PricingResponse struct {
	Subtotal    int64 `json:"subtotal"`
	ShippingFee int64 `json:"shipping_fee"`
	PaymentFee  int64 `json:"payment_fee"`
	TaxAmount   int64 `json:"tax_amount"`
	Total       int64 `json:"total"`
}

type DeliveryResponse struct {
	Carrier             string     `json:"carrier"`
	TrackingNumber      string     `json:"tracking_number"`
	EstimatedDeliveryAt *time.Time `json:"estimated_delivery_at,omitempty"`
}

type CartResponse struct {
	Items         []CartLineResponse `json:"items"`
	ItemCount     int                `json:"item_count"`
	TotalQuantity int                `json:"total_quantity"`
	Subtotal      int64              `json:"subtotal"`
	TaxAmount     int64              `json:"tax_amount"`
	TotalWithTax  int64              `json:"total_with_tax"`
	Coupon        *CouponResponse    `json:"coupon,omitempty"`
}

type CartLineResponse struct {
	SKUID       string `json:"sku_id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	UnitPrice   int64  `json:"unit_price"`
	Quantity    int    `json:"quantity"`
	Subtotal    int64  `json:"subtotal"`
}

type CouponResponse struct {
	Code             string `json:"code"`
	Applied          bool   `json:"applied"`
	DiscountAmount   int64  `json:"discount_amount"`
	DiscountedAmount int64  `json:"discounted_amount"`
	Message          string `json:"message"`
}

type StockResponse struct {
	SKUID     string `json:"sku_id"`
	Total     int    `json:"total"`
	Reserved  int    `json:"reserved"`
	Available int    `json:"available"`
	LowStock  bool   `json:"low_stock"`
	SoldOut   bool   `json:"sold_out"`
}

func toOrderResponse(v queries.GetOrderQueryResponse) OrderResponse {
	resp := OrderResponse{
		ID:     v.ID.String(),
		Number: v.Number,
		Status: v.Status,
		Customer: CustomerResponse{
			Name:  v.Customer.Name,
			Email: v.Customer.Email,
			Phone: v.Customer.Phone,
		},
		ShippingAddress: AddressResponse{
			PostalCode: v.Shipping.PostalCode,
			Prefecture: v.Shipping.Prefecture,
			City:       v.Shipping.City,
			Line1:      v.Shipping.Line1,
			Line2:      v.Shipping.Line2,
		},
		ShippingMethod: MethodResponse{
			ID:   v.Shipping.MethodID.String(),
			Name: v.Shipping.MethodName,
			Fee:  v.Shipping.Fee,
		},
		PaymentMethod: MethodResponse{
			ID:   v.Payment.MethodID.String(),
			Name: v.Payment.MethodName,
			Fee:  v.Payment.Fee,
		},
		PaymentDetails: v.Payment.Details,
		Pricing: PricingResponse{
			Subtotal:    v.Pricing.Subtotal,
			ShippingFee: v.Pricing.ShippingFee,
			PaymentFee:  v.Pricing.PaymentFee,
			TaxAmount:   v.Pricing.TaxAmount,
			Total:       v.Pricing.Total,
		},
		Note:        v.Note,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
		PaidAt:      v.PaidAt,
		ShippedAt:   v.ShippedAt,
		DeliveredAt: v.DeliveredAt,
		CancelledAt: v.CancelledAt,
	}

	if v.Delivery != nil {
		resp.Delivery = &DeliveryResponse{
			Carrier:             v.Delivery.Carrier,
			TrackingNumber:      v.Delivery.TrackingNumber,
			EstimatedDeliveryAt: v.Delivery.EstimatedAt,
		}
	}

	resp.Items = make([]OrderItemResponse, len(v.Items))
	for i, item := range v.Items {
		resp.Items[i] = OrderItemResponse{
			SKUID:       item.SKUID.String(),
			SKUCode:     item.SKUCode,
			ProductName: item.ProductName,
			SKUName:     item.SKUName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal,
		}
	}

	return resp
}

func toCartResponse(v queries.PreviewCartQueryResponse) CartResponse {
	resp := CartResponse{
		ItemCount:     v.ItemCount,
		TotalQuantity: v.TotalQuantity,
		Subtotal:      v.Subtotal,
		TaxAmount:     v.TaxAmount,
		TotalWithTax:  v.TotalWithTax,
	}

	resp.Items = make([]CartLineResponse, len(v.Items))
	for i, line := range v.Items {
		resp.Items[i] = CartLineResponse{
			SKUID:       line.SKUID.String(),
			ProductID:   line.ProductID.String(),
			ProductName: line.ProductName,
			UnitPrice:   line.UnitPrice,
			Quantity:    line.Quantity,
			Subtotal:    line.Subtotal,
		}
	}

	if v.Coupon != nil {
		resp.Coupon = &CouponResponse{
			Code:             v.Coupon.Code,
			Applied:          v.Coupon.Applied,
			DiscountAmount:   v.Coupon.DiscountAmount,
			DiscountedAmount: v.Coupon.DiscountedAmount,
			Message:          v.Coupon.Message,
		}
	}

	return resp
}

func toRedemptionResponse(a services.CouponApplication) CouponResponse {
	return CouponResponse{
		Code:             a.CouponCode,
		Applied:          true,
		DiscountAmount:   a.DiscountAmount.Yen(),
		DiscountedAmount: a.DiscountedAmount.Yen(),
		Message:          a.Message,
	}
}

func toStockResponse(skuID kernel.UUID, s *inventory.Stock) StockResponse {
	return StockResponse{
		SKUID:     skuID.String(),
		Total:     s.Total(),
		Reserved:  s.Reserved(),
		Available: s.Available(),
		LowStock:  s.IsLowStock(),
		SoldOut:   s.IsSoldOut(),
	}
}

// Package catalogrepo reads the shipping and payment methods offered at checkout.
package catalogrepo

import (
	"shop/internal/core/domain/model/catalog"
	"shop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type ShippingMethodDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"type:varchar(100);not null"`
	Fee      int64     `gorm:"not null"`
	IsActive bool      `gorm:"not null;default:true"`
}

func (ShippingMethodDTO) TableName() string {
	return "shipping_methods"
}

// PaymentMethodDTO is a payment option. Code selects the fee rule, e.g. "cod".
type PaymentMethodDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code     string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name     string    `gorm:"type:varchar(100);not null"`
	Fee      int64     `gorm:"not null;default:0"`
	IsActive bool      `gorm:"not null;default:true"`
}

func (PaymentMethodDTO) TableName() string {
	return "payment_methods"
}

func shippingMethodToDomain(dto ShippingMethodDTO) (catalog.ShippingMethod, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return catalog.ShippingMethod{}, err
	}

	fee, err := kernel.MoneyFromYen(dto.Fee)
	if err != nil {
		return catalog.ShippingMethod{}, err
	}

	return catalog.NewShippingMethod(id, dto.Name, fee, dto.IsActive)
}

func paymentMethodToDomain(dto PaymentMethodDTO) (catalog.PaymentMethod, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return catalog.PaymentMethod{}, err
	}

	fee, err := kernel.MoneyFromYen(dto.Fee)
	if err != nil {
		return catalog.PaymentMethod{}, err
	}

	return catalog.NewPaymentMethod(id, dto.Code, dto.Name, fee, dto.IsActive)
}

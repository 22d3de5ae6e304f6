package catalogrepo

import (
	"context"
	"errors"

	"shop/internal/core/domain/model/catalog"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShippingMethodRepository implements ShippingMethodRepository using GORM.
type GormShippingMethodRepository struct {
	db *gorm.DB
}

func NewGormShippingMethodRepository(db *gorm.DB) *GormShippingMethodRepository {
	return &GormShippingMethodRepository{db: db}
}

// FindByID retrieves a shipping method, active or not.
func (r *GormShippingMethodRepository) FindByID(ctx context.Context, id kernel.UUID) (catalog.ShippingMethod, error) {
	if err := id.Validate(); err != nil {
		return catalog.ShippingMethod{}, err
	}

	var dto ShippingMethodDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.ShippingMethod{}, errs.NewObjectNotFoundError("shipping method", id.String())
		}
		return catalog.ShippingMethod{}, err
	}

	return shippingMethodToDomain(dto)
}

// GormPaymentMethodRepository implements PaymentMethodRepository using GORM.
type GormPaymentMethodRepository struct {
	db *gorm.DB
}

func NewGormPaymentMethodRepository(db *gorm.DB) *GormPaymentMethodRepository {
	return &GormPaymentMethodRepository{db: db}
}

// FindByID retrieves a payment method, active or not.
func (r *GormPaymentMethodRepository) FindByID(ctx context.Context, id kernel.UUID) (catalog.PaymentMethod, error) {
	if err := id.Validate(); err != nil {
		return catalog.PaymentMethod{}, err
	}

	var dto PaymentMethodDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.PaymentMethod{}, errs.NewObjectNotFoundError("payment method", id.String())
		}
		return catalog.PaymentMethod{}, err
	}

	return paymentMethodToDomain(dto)
}

package catalog

import (
	"errors"
	"strings"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

// Payment method codes with special fee handling.
const (
	PaymentCodeCashOnDelivery   = "cod"
	PaymentCodeConvenienceStore = "convenience_store"
)

// ShippingMethod is a delivery option offered at checkout.
type ShippingMethod struct {
	id       kernel.UUID
	name     string
	fee      kernel.Money
	isActive bool
}

func NewShippingMethod(id kernel.UUID, name string, fee kernel.Money, isActive bool) (ShippingMethod, error) {
	name = strings.TrimSpace(name)
	var nameErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("shipping method name")
	}
	if err := errors.Join(id.Validate(), nameErr); err != nil {
		return ShippingMethod{}, err
	}
	return ShippingMethod{id: id, name: name, fee: fee, isActive: isActive}, nil
}

func (m ShippingMethod) ID() kernel.UUID {
	return m.id
}

func (m ShippingMethod) Name() string {
	return m.name
}

func (m ShippingMethod) Fee() kernel.Money {
	return m.fee
}

func (m ShippingMethod) IsActive() bool {
	return m.isActive
}

// PaymentMethod is a payment option offered at checkout. Code selects the
// fee table; Fee is the flat fee used when the code has none.
type PaymentMethod struct {
	id       kernel.UUID
	code     string
	name     string
	fee      kernel.Money
	isActive bool
}

func NewPaymentMethod(id kernel.UUID, code, name string, fee kernel.Money, isActive bool) (PaymentMethod, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	name = strings.TrimSpace(name)

	var problems []error
	if err := id.Validate(); err != nil {
		problems = append(problems, err)
	}
	if code == "" {
		problems = append(problems, errs.NewValueIsRequiredError("payment method code"))
	}
	if name == "" {
		problems = append(problems, errs.NewValueIsRequiredError("payment method name"))
	}
	if err := errors.Join(problems...); err != nil {
		return PaymentMethod{}, err
	}

	return PaymentMethod{id: id, code: code, name: name, fee: fee, isActive: isActive}, nil
}

func (m PaymentMethod) ID() kernel.UUID {
	return m.id
}

func (m PaymentMethod) Code() string {
	return m.code
}

func (m PaymentMethod) Name() string {
	return m.name
}

func (m PaymentMethod) Fee() kernel.Money {
	return m.fee
}

func (m PaymentMethod) IsActive() bool {
	return m.isActive
}

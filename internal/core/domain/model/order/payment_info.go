package order

import (
	"encoding/json"
	"errors"
	"slices"
	"strings"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

// ErrPaymentInfoIsNotConstructed is returned when PaymentInfo was not created via NewPaymentInfo.
var ErrPaymentInfoIsNotConstructed = errors.New("PaymentInfo must be created via NewPaymentInfo constructor")

// PaymentInfo records the payment method chosen at checkout and the fee it
// cost. Details is an optional opaque JSON document (e.g. the convenience
// store chosen for payment); it is never interpreted by the domain.
type PaymentInfo struct {
	methodID   kernel.UUID
	methodName string
	fee        kernel.Money
	details    json.RawMessage

	guard guard.ConstructorGuard
}

// NewPaymentInfo creates validated payment details. details may be nil; when
// present it must be valid JSON.
func NewPaymentInfo(methodID kernel.UUID, methodName string, fee kernel.Money, details json.RawMessage) (PaymentInfo, error) {
	info := PaymentInfo{
		methodName: strings.TrimSpace(methodName),
		fee:        fee,
		guard:      guard.NewConstructorGuard(),
	}

	var nameErr, detailsErr error
	if info.methodName == "" {
		nameErr = errs.NewValueIsRequiredError("payment method name")
	}
	if len(details) > 0 {
		if json.Valid(details) {
			info.details = slices.Clone(details)
		} else {
			detailsErr = errs.NewValueIsInvalidError("payment details")
		}
	}

	if err := errors.Join(methodID.Validate(), nameErr, detailsErr); err != nil {
		return PaymentInfo{}, err
	}
	info.methodID = methodID

	return info, nil
}

func (p PaymentInfo) Validate() error {
	return p.guard.Validate(ErrPaymentInfoIsNotConstructed)
}

func (p PaymentInfo) MethodID() kernel.UUID {
	return p.methodID
}

func (p PaymentInfo) MethodName() string {
	return p.methodName
}

func (p PaymentInfo) Fee() kernel.Money {
	return p.fee
}

// Details returns a copy of the payment details, or nil.
func (p PaymentInfo) Details() json.RawMessage {
	return slices.Clone(p.details)
}

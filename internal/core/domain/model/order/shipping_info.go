package order

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var (
	// ErrShippingInfoIsNotConstructed is returned when ShippingInfo was not created via NewShippingInfo.
	ErrShippingInfoIsNotConstructed = errors.New("ShippingInfo must be created via NewShippingInfo constructor")

	// ErrAddressIsNotConstructed is returned when an Address was not created via NewAddress.
	ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

	postalCodePattern = regexp.MustCompile(`^[0-9]{3}-?[0-9]{4}$`)
)

// Address is a domestic delivery address.
type Address struct {
	postalCode string
	prefecture string
	city       string
	line1      string
	line2      string

	guard guard.ConstructorGuard
}

// NewAddress validates a delivery address. line2 (building, room) is optional.
func NewAddress(postalCode, prefecture, city, line1, line2 string) (Address, error) {
	addr := Address{
		prefecture: strings.TrimSpace(prefecture),
		city:       strings.TrimSpace(city),
		line1:      strings.TrimSpace(line1),
		line2:      strings.TrimSpace(line2),
		guard:      guard.NewConstructorGuard(),
	}

	var problems []error
	postalCode = strings.TrimSpace(postalCode)
	if !postalCodePattern.MatchString(postalCode) {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"postal code", fmt.Errorf("%q is not in NNN-NNNN form", postalCode)))
	}
	addr.postalCode = postalCode
	if addr.prefecture == "" {
		problems = append(problems, errs.NewValueIsRequiredError("prefecture"))
	}
	if addr.city == "" {
		problems = append(problems, errs.NewValueIsRequiredError("city"))
	}
	if addr.line1 == "" {
		problems = append(problems, errs.NewValueIsRequiredError("address line"))
	}
	if err := errors.Join(problems...); err != nil {
		return Address{}, err
	}

	return addr, nil
}

func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) PostalCode() string {
	return a.postalCode
}

func (a Address) Prefecture() string {
	return a.prefecture
}

func (a Address) City() string {
	return a.city
}

func (a Address) Line1() string {
	return a.line1
}

func (a Address) Line2() string {
	return a.line2
}

// String renders the address on one line.
func (a Address) String() string {
	parts := []string{"〒" + a.postalCode, a.prefecture + a.city + a.line1}
	if a.line2 != "" {
		parts = append(parts, a.line2)
	}
	return strings.Join(parts, " ")
}

// ShippingInfo records the shipping method chosen at checkout, the fee it
// cost at that time and where the parcel goes.
type ShippingInfo struct {
	methodID   kernel.UUID
	methodName string
	fee        kernel.Money
	address    Address

	guard guard.ConstructorGuard
}

// NewShippingInfo creates validated shipping details.
func NewShippingInfo(methodID kernel.UUID, methodName string, fee kernel.Money, address Address) (ShippingInfo, error) {
	info := ShippingInfo{
		methodName: strings.TrimSpace(methodName),
		fee:        fee,
		address:    address,
		guard:      guard.NewConstructorGuard(),
	}

	var nameErr error
	if info.methodName == "" {
		nameErr = errs.NewValueIsRequiredError("shipping method name")
	}

	if err := errors.Join(methodID.Validate(), nameErr, address.Validate()); err != nil {
		return ShippingInfo{}, err
	}
	info.methodID = methodID

	return info, nil
}

func (s ShippingInfo) Validate() error {
	return s.guard.Validate(ErrShippingInfoIsNotConstructed)
}

func (s ShippingInfo) MethodID() kernel.UUID {
	return s.methodID
}

func (s ShippingInfo) MethodName() string {
	return s.methodName
}

func (s ShippingInfo) Fee() kernel.Money {
	return s.fee
}

func (s ShippingInfo) Address() Address {
	return s.address
}

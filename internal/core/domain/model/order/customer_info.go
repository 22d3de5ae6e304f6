package order

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"

	"github.com/go-playground/validator/v10"
)

const maxCustomerNameLength = 100

var (
	// ErrCustomerInfoIsNotConstructed is returned when CustomerInfo was not created via NewCustomerInfo.
	ErrCustomerInfoIsNotConstructed = errors.New("CustomerInfo must be created via NewCustomerInfo constructor")

	// phonePattern accepts domestic numbers written with or without hyphens.
	phonePattern = regexp.MustCompile(`^\+?[0-9]+(-[0-9]+)*$`)

	fieldValidator = validator.New(validator.WithRequiredStructEnabled())
)

// CustomerInfo identifies the person placing the order.
type CustomerInfo struct {
	name  string
	email string
	phone string

	guard guard.ConstructorGuard
}

// NewCustomerInfo creates validated customer details. The email must be a
// plain address and the phone number must contain 10 to 15 digits.
func NewCustomerInfo(name, email, phone string) (CustomerInfo, error) {
	info := CustomerInfo{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		info.setName(name),
		info.setEmail(email),
		info.setPhone(phone),
	); err != nil {
		return CustomerInfo{}, err
	}

	return info, nil
}

// Validate ensures the record was created through NewCustomerInfo.
func (c CustomerInfo) Validate() error {
	return c.guard.Validate(ErrCustomerInfoIsNotConstructed)
}

func (c CustomerInfo) Name() string {
	return c.name
}

func (c CustomerInfo) Email() string {
	return c.email
}

func (c CustomerInfo) Phone() string {
	return c.phone
}

func (c *CustomerInfo) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	if utf8.RuneCountInString(name) > maxCustomerNameLength {
		return errs.NewValueIsOutOfRangeError("customer name length", utf8.RuneCountInString(name), 1, maxCustomerNameLength)
	}
	c.name = name
	return nil
}

func (c *CustomerInfo) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("customer email")
	}
	if err := fieldValidator.Var(email, "email,max=254"); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customer email", fmt.Errorf("%q is not a valid email address", email))
	}
	c.email = email
	return nil
}

func (c *CustomerInfo) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("customer phone")
	}

	digits := len(strings.NewReplacer("-", "", "+", "").Replace(phone))
	if !phonePattern.MatchString(phone) || digits < 10 || digits > 15 {
		return errs.NewValueIsInvalidErrorWithCause("customer phone", fmt.Errorf("%q is not a valid phone number", phone))
	}
	c.phone = phone
	return nil
}

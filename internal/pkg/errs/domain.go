package errs

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientStock     = errors.New("insufficient stock")
	ErrInvalidProductData    = errors.New("invalid product data")
	ErrInvalidPrice          = errors.New("invalid price")
	ErrInvalidSKUCode        = errors.New("invalid sku code")
	ErrInvalidStock          = errors.New("invalid stock")
	ErrBusinessRuleViolation = errors.New("business rule violation")
	ErrInvalidCoupon         = errors.New("invalid coupon")

	// ErrConcurrencyConflict is returned by persistence adapters when a conditional
	// update lost against a concurrent writer.
	ErrConcurrencyConflict = errors.New("concurrency conflict")
)

// InsufficientStockError is returned when a reservation or consumption asks for
// more units than are available.
type InsufficientStockError struct {
	Requested int
	Available int
}

func NewInsufficientStockError(requested, available int) *InsufficientStockError {
	return &InsufficientStockError{
		Requested: requested,
		Available: available,
	}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: requested %d, available %d", ErrInsufficientStock, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// InvalidProductDataError is the generic business-rule violation of the domain
// model: empty names, bad quantities, invalid transitions, arithmetic overflow.
type InvalidProductDataError struct {
	Message string
}

func NewInvalidProductDataError(format string, args ...any) *InvalidProductDataError {
	return &InvalidProductDataError{Message: fmt.Sprintf(format, args...)}
}

func (e *InvalidProductDataError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidProductData, e.Message)
}

func (e *InvalidProductDataError) Unwrap() error {
	return ErrInvalidProductData
}

type InvalidPriceError struct {
	Message string
}

func NewInvalidPriceError(format string, args ...any) *InvalidPriceError {
	return &InvalidPriceError{Message: fmt.Sprintf(format, args...)}
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidPrice, e.Message)
}

func (e *InvalidPriceError) Unwrap() error {
	return ErrInvalidPrice
}

type InvalidSKUCodeError struct {
	Code string
}

func NewInvalidSKUCodeError(code string) *InvalidSKUCodeError {
	return &InvalidSKUCodeError{Code: code}
}

func (e *InvalidSKUCodeError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidSKUCode, e.Code)
}

func (e *InvalidSKUCodeError) Unwrap() error {
	return ErrInvalidSKUCode
}

type InvalidStockError struct {
	Message string
}

func NewInvalidStockError(format string, args ...any) *InvalidStockError {
	return &InvalidStockError{Message: fmt.Sprintf(format, args...)}
}

func (e *InvalidStockError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidStock, e.Message)
}

func (e *InvalidStockError) Unwrap() error {
	return ErrInvalidStock
}

// BusinessRuleViolationError is the catch-all for rule breaches above the
// level of a single value object.
type BusinessRuleViolationError struct {
	Message string
}

func NewBusinessRuleViolationError(format string, args ...any) *BusinessRuleViolationError {
	return &BusinessRuleViolationError{Message: fmt.Sprintf(format, args...)}
}

func (e *BusinessRuleViolationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrBusinessRuleViolation, e.Message)
}

func (e *BusinessRuleViolationError) Unwrap() error {
	return ErrBusinessRuleViolation
}

// InvalidCouponError carries the coupon code and the reason it cannot be applied.
type InvalidCouponError struct {
	Code   string
	Reason string
}

func NewInvalidCouponError(code, reason string) *InvalidCouponError {
	return &InvalidCouponError{
		Code:   code,
		Reason: reason,
	}
}

func (e *InvalidCouponError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidCoupon, e.Code, e.Reason)
}

func (e *InvalidCouponError) Unwrap() error {
	return ErrInvalidCoupon
}

// IsNotFound reports whether err stems from a failed lookup.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrObjectNotFound)
}

// IsValidation reports whether err is a client-facing validation or
// business-rule failure.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrValueIsInvalid,
		ErrValueIsOutOfRange,
		ErrValueIsRequired,
		ErrInsufficientStock,
		ErrInvalidProductData,
		ErrInvalidPrice,
		ErrInvalidSKUCode,
		ErrInvalidStock,
		ErrBusinessRuleViolation,
		ErrInvalidCoupon,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

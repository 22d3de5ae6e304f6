// Package errs provides standardized error types for the shop application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes two groups of error types:
//   - Generic validation errors: ValueIsRequiredError, ValueIsInvalidError,
//     ValueIsOutOfRangeError and ObjectNotFoundError
//   - Domain errors raised by the order-processing core: InsufficientStockError,
//     InvalidProductDataError, InvalidPriceError, InvalidSKUCodeError, InvalidStockError,
//     BusinessRuleViolationError and InvalidCouponError
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify errors with errors.Is against the sentinels, or with the
// IsNotFound / IsValidation helpers when mapping them to a transport status.
package errs

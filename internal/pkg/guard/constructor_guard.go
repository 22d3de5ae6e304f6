// Package guard provides ConstructorGuard, a marker embedded in value objects,
// commands and queries so that zero-value instances can be told apart from
// instances built through their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing value went through its constructor.
//
// Example usage:
//
//	var ErrCartItemIsNotConstructed = errors.New("CartItem must be created via NewCartItem")
//
//	type CartItem struct {
//	    skuID    kernel.UUID
//	    quantity int
//	    guard    guard.ConstructorGuard
//	}
//
//	func (i CartItem) Validate() error {
//	    return i.guard.Validate(ErrCartItemIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed. Call it only from constructors.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}

package order

import (
	"errors"
	"regexp"
	"strings"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

const (
	MinItemQuantity = 1
	MaxItemQuantity = 999

	maxSKUCodeLength = 50
)

var (
	// ErrOrderItemIsNotConstructed is returned when an OrderItem was not created via NewOrderItem.
	ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")

	skuCodePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)
)

// OrderItem is an immutable snapshot of one purchased SKU: identifiers and
// names as they were at checkout, the unit price charged and the quantity.
type OrderItem struct {
	skuID       kernel.UUID
	skuCode     string
	productName string
	skuName     string
	unitPrice   kernel.Money
	quantity    int

	guard guard.ConstructorGuard
}

// NewOrderItem creates a validated order line.
//
// Business rules:
//   - skuCode is 1..50 characters of letters, digits, '-' and '_'
//   - productName is not blank; skuName may be empty for single-variant products
//   - unitPrice is positive
//   - quantity is within [MinItemQuantity, MaxItemQuantity]
func NewOrderItem(
	skuID kernel.UUID,
	skuCode string,
	productName string,
	skuName string,
	unitPrice kernel.Money,
	quantity int,
) (OrderItem, error) {
	item := OrderItem{
		skuName: strings.TrimSpace(skuName),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setSKUID(skuID),
		item.setSKUCode(skuCode),
		item.setProductName(productName),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return OrderItem{}, err
	}

	return item, nil
}

// Validate ensures the item was created through NewOrderItem.
func (i OrderItem) Validate() error {
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

func (i OrderItem) SKUID() kernel.UUID {
	return i.skuID
}

func (i OrderItem) SKUCode() string {
	return i.skuCode
}

func (i OrderItem) ProductName() string {
	return i.productName
}

func (i OrderItem) SKUName() string {
	return i.skuName
}

func (i OrderItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

func (i OrderItem) Quantity() int {
	return i.quantity
}

// Subtotal returns unit price × quantity.
func (i OrderItem) Subtotal() (kernel.Money, error) {
	return i.unitPrice.Multiply(int64(i.quantity))
}

// UpdateQuantity returns a copy of the item with a new, re-validated quantity.
// The receiver is left untouched.
func (i OrderItem) UpdateQuantity(quantity int) (OrderItem, error) {
	if err := i.setQuantity(quantity); err != nil {
		return OrderItem{}, err
	}
	return i, nil
}

func (i *OrderItem) setSKUID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.skuID = id
	return nil
}

func (i *OrderItem) setSKUCode(code string) error {
	code = strings.TrimSpace(code)
	if len(code) > maxSKUCodeLength || !skuCodePattern.MatchString(code) {
		return errs.NewInvalidSKUCodeError(code)
	}
	i.skuCode = code
	return nil
}

func (i *OrderItem) setProductName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewInvalidProductDataError("product name is required")
	}
	i.productName = name
	return nil
}

func (i *OrderItem) setUnitPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return errs.NewInvalidPriceError("unit price %s must be positive", price)
	}
	i.unitPrice = price
	return nil
}

func (i *OrderItem) setQuantity(quantity int) error {
	if quantity < MinItemQuantity || quantity > MaxItemQuantity {
		return errs.NewInvalidProductDataError(
			"quantity %d must be between %d and %d", quantity, MinItemQuantity, MaxItemQuantity)
	}
	i.quantity = quantity
	return nil
}

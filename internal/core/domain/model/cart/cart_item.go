package cart

import (
	"errors"
	"math"
	"strings"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

// ErrCartItemIsNotConstructed is returned when a CartItem was not created via NewCartItem.
var ErrCartItemIsNotConstructed = errors.New("CartItem must be created via NewCartItem constructor")

// CartItem is one line of a Cart: a SKU, the product it belongs to, the unit
// price at the time it was added and a positive quantity.
type CartItem struct { //nolint:recvcheck // value getters, pointer mutators
	skuID       kernel.UUID
	productID   kernel.UUID
	productName string
	unitPrice   kernel.Money
	quantity    int

	guard guard.ConstructorGuard
}

// NewCartItem creates a validated cart line.
//
// Returns an error when either identifier is invalid, the product name is
// blank, the unit price is not positive or the quantity is not positive.
//
// Example:
//
//	item, err := cart.NewCartItem(skuID, productID, "Linen Shirt", kernel.MustMoneyFromYen(4980), 2)
//	if err != nil {
//	    return err
//	}
func NewCartItem(
	skuID kernel.UUID,
	productID kernel.UUID,
	productName string,
	unitPrice kernel.Money,
	quantity int,
) (CartItem, error) {
	item := CartItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setSKUID(skuID),
		item.setProductID(productID),
		item.setProductName(productName),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return CartItem{}, err
	}

	return item, nil
}

// Validate ensures the item was created through NewCartItem.
func (i CartItem) Validate() error {
	return i.guard.Validate(ErrCartItemIsNotConstructed)
}

func (i CartItem) SKUID() kernel.UUID {
	return i.skuID
}

func (i CartItem) ProductID() kernel.UUID {
	return i.productID
}

func (i CartItem) ProductName() string {
	return i.productName
}

func (i CartItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

func (i CartItem) Quantity() int {
	return i.quantity
}

// Subtotal returns unit price × quantity.
func (i CartItem) Subtotal() (kernel.Money, error) {
	return i.unitPrice.Multiply(int64(i.quantity))
}

// IncreaseQuantity adds n units to the line.
func (i *CartItem) IncreaseQuantity(n int) error {
	if n <= 0 {
		return errs.NewInvalidProductDataError("quantity increment %d must be positive", n)
	}
	if i.quantity > math.MaxInt32-n {
		return errs.NewInvalidProductDataError("quantity overflow: %d + %d", i.quantity, n)
	}
	i.quantity += n
	return nil
}

// DecreaseQuantity removes n units from the line. The line must keep at least
// one unit; removing a line entirely is done through the owning Cart.
func (i *CartItem) DecreaseQuantity(n int) error {
	if n <= 0 {
		return errs.NewInvalidProductDataError("quantity decrement %d must be positive", n)
	}
	if n >= i.quantity {
		return errs.NewInvalidProductDataError("cannot decrease quantity %d by %d", i.quantity, n)
	}
	i.quantity -= n
	return nil
}

// UpdateQuantity replaces the quantity with a positive n.
func (i *CartItem) UpdateQuantity(n int) error {
	return i.setQuantity(n)
}

func (i *CartItem) setSKUID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.skuID = id
	return nil
}

func (i *CartItem) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.productID = id
	return nil
}

func (i *CartItem) setProductName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewInvalidProductDataError("product name is required")
	}
	i.productName = name
	return nil
}

func (i *CartItem) setUnitPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return errs.NewInvalidPriceError("unit price %s must be positive", price)
	}
	i.unitPrice = price
	return nil
}

func (i *CartItem) setQuantity(quantity int) error {
	if quantity <= 0 || quantity > math.MaxInt32 {
		return errs.NewInvalidProductDataError("quantity %d must be positive", quantity)
	}
	i.quantity = quantity
	return nil
}

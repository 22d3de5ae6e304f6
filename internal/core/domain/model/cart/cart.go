package cart

import (
	"errors"
	"slices"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

// ErrCartIsNotConstructed is returned when a Cart was not created via NewCart.
var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")

// Cart is an ordered collection of CartItem values, unique by SKU.
//
// Items are owned by value: Items returns a copy, so callers never observe or
// alter a line behind the cart's back. Every aggregate figure (Total, TaxAmount,
// TotalWithTax, TotalQuantity, ItemCount) is computed from the current lines on
// each call.
//
// Example:
//
//	c, _ := cart.NewCart(kernel.NewUUID())
//	_ = c.AddItem(shirt)   // quantity 2
//	_ = c.AddItem(shirt)   // same SKU: one line, quantity 4
//	total, err := c.TotalWithTax()
type Cart struct {
	id            kernel.UUID
	items         []CartItem
	isConstructed bool
}

// NewCart creates an empty cart.
func NewCart(id kernel.UUID) (*Cart, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Cart{
		id:            id,
		items:         make([]CartItem, 0),
		isConstructed: true,
	}, nil
}

// Validate ensures the cart was created through NewCart.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

func (c *Cart) ID() kernel.UUID {
	return c.id
}

// Items returns a copy of the cart lines in insertion order.
func (c *Cart) Items() []CartItem {
	return slices.Clone(c.items)
}

// AddItem appends item, or merges it into the existing line for the same SKU by
// increasing that line's quantity.
func (c *Cart) AddItem(item CartItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	if idx := c.indexOf(item.SKUID()); idx >= 0 {
		return c.items[idx].IncreaseQuantity(item.Quantity())
	}

	c.items = append(c.items, item)
	return nil
}

// RemoveItem deletes the line for skuID.
func (c *Cart) RemoveItem(skuID kernel.UUID) error {
	idx := c.indexOf(skuID)
	if idx < 0 {
		return errs.NewObjectNotFoundError("skuID", skuID.String())
	}

	c.items = slices.Delete(c.items, idx, idx+1)
	return nil
}

// UpdateItemQuantity sets the quantity of the line for skuID. A quantity of
// zero removes the line.
func (c *Cart) UpdateItemQuantity(skuID kernel.UUID, quantity int) error {
	if quantity == 0 {
		return c.RemoveItem(skuID)
	}

	idx := c.indexOf(skuID)
	if idx < 0 {
		return errs.NewObjectNotFoundError("skuID", skuID.String())
	}

	return c.items[idx].UpdateQuantity(quantity)
}

// Clear removes every line.
func (c *Cart) Clear() {
	c.items = c.items[:0]
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// ItemCount returns the number of distinct lines.
func (c *Cart) ItemCount() int {
	return len(c.items)
}

// TotalQuantity returns the number of units across all lines.
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity()
	}
	return total
}

// Total sums unit price × quantity over all lines, returning the first
// arithmetic error encountered.
func (c *Cart) Total() (kernel.Money, error) {
	total := kernel.ZeroMoney()
	for _, item := range c.items {
		subtotal, err := item.Subtotal()
		if err != nil {
			return kernel.Money{}, err
		}

		if total, err = total.Add(subtotal); err != nil {
			return kernel.Money{}, err
		}
	}
	return total, nil
}

// TaxAmount returns the consumption tax on Total.
func (c *Cart) TaxAmount() (kernel.Money, error) {
	total, err := c.Total()
	if err != nil {
		return kernel.Money{}, err
	}
	return total.TaxAmount()
}

// TotalWithTax returns Total plus its tax.
func (c *Cart) TotalWithTax() (kernel.Money, error) {
	total, err := c.Total()
	if err != nil {
		return kernel.Money{}, err
	}
	return total.WithTax()
}

// ProductIDs returns the distinct product identifiers in the cart.
func (c *Cart) ProductIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(c.items))
	for _, item := range c.items {
		if !slices.ContainsFunc(ids, item.ProductID().IsEqual) {
			ids = append(ids, item.ProductID())
		}
	}
	return ids
}

func (c *Cart) indexOf(skuID kernel.UUID) int {
	return slices.IndexFunc(c.items, func(item CartItem) bool {
		return item.SKUID().IsEqual(skuID)
	})
}

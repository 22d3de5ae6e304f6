// Package cart models a shopping cart: an in-memory, ordered collection of
// priced line items that is unique by SKU.
//
// Key business rules:
//   - A CartItem always has a positive quantity and a positive unit price
//   - Adding an item for a SKU already in the cart increases that line's quantity
//   - Setting a line's quantity to zero removes it
//   - Totals, tax and counts are derived on every call and never cached
package cart

// Package catalog holds the read models the ordering core consumes from the
// product catalogue: purchasable SKU variants and the shipping and payment
// methods offered at checkout.
package catalog

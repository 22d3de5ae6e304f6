// Package queries holds the read side of the ordering core. Query handlers
// never change state: GetOrderQueryHandler reads the orders tables directly,
// PreviewCartQueryHandler prices a prospective cart without reserving stock or
// counting a coupon redemption.
package queries

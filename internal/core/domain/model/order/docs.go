// Package order implements the Order aggregate root and the immutable value
// records composing an order snapshot.
//
// The package includes:
//   - Order: the aggregate root holding customer, items, shipping, payment,
//     pricing, status and lifecycle timestamps
//   - Status: the order lifecycle with an explicit transition table
//   - OrderItem, OrderPricing, CustomerInfo, ShippingInfo, Address, PaymentInfo,
//     DeliveryInfo and OrderNumber value records
//
// Key business rules:
//   - An order has at least one item and each item a quantity in 1..999
//   - Pricing is computed once at creation: tax is ceiling(10%) of
//     subtotal + shipping fee + payment fee
//   - Status follows Pending -> Paid -> Processing -> Shipped -> Delivered, with
//     cancellation before shipping and refunds after payment
//   - Each status timestamp is set the first time the status is entered
//   - Delivery info can only be attached while the order is Paid or Processing
package order

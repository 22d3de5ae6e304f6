// Package kernel provides the primitives shared by every aggregate of the shop
// domain model.
//
// The package includes:
//   - UUID: identifier value object wrapping github.com/google/uuid
//   - Money: non-negative integer yen with checked arithmetic and ceiling-rounded
//     percentage and tax helpers
//
// Both types are immutable values and safe for concurrent use.
package kernel

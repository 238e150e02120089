// Package kernel holds the value objects shared by every aggregate of the
// catering domain:
//   - UUID: identifier wrapper over github.com/google/uuid
//   - Money: non-negative decimal amount over github.com/shopspring/decimal
//
// Both are immutable and safe to copy by value.
package kernel

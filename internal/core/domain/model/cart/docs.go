// Package cart implements the Cart aggregate: the lines a customer collects
// for one event before checkout, priced per tray size and split between the
// primary provider and an optional backup provider.
//
// Key business rules:
//   - one cart per (event, customer) pair, created on first access
//   - quantity is at least 1; setting it to 0 or less removes the line
//   - removing an unknown line is a no-op
//   - totals: primary = Σ price×qty over non-backup lines, backup = Σ over backup lines
package cart

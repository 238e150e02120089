// Package order provides the Order aggregate of the catering marketplace:
// a customer's request to a primary provider for the lines of one cart, with
// an optional backup provider that takes over when the primary declines.
//
// The package includes:
//   - Order: the aggregate root holding an immutable snapshot of the cart lines
//   - LineItem: one snapshot line
//   - Status: the state machine Pending -> {Confirmed, Declined, Cancelled}
//
// Key business rules:
//   - TotalPrimary and TotalBackup are split by the backup flag of each line
//   - Confirmed, Declined and Cancelled are terminal
//   - Only a declined order with a backup provider derives a backup order;
//     the derived order charges the original TotalBackup and records the
//     original order as its source
package order

// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture:
// handlers read with SQL through GORM and return read models, never aggregates.
package queries

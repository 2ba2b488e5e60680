// Package kernel contains shared value objects used across the domain model:
// UUID identifiers for aggregates and the Barcode business key identifying a
// transport unit. Both are immutable and can only be created through their
// constructor functions.
package kernel

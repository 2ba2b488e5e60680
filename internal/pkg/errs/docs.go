// Package errs provides standardized error types for the transportation
// service. It implements a consistent pattern for error creation, formatting,
// and unwrapping used throughout the application.
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrValueIsRequired) for errors.Is checks
//   - a struct type with fields describing the failure
//   - constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Domain-specific errors, such as the transport-order state-change errors,
// live next to their domain types and follow the same conventions.
package errs

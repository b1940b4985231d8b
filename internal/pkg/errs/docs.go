// Package errs provides standardized error types for the shipment ledger.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package defines one error type per failure category:
//   - ValueIsRequiredError / ValueIsInvalidError: input validation failures
//   - ObjectNotFoundError: lookups that found nothing
//   - AuthorizationError: caller lacks the role an operation requires
//   - StateError: operation not admissible from the current lifecycle state
//   - DeadlineError: action attempted outside its time window
//   - DuplicateError: repeat of a non-idempotent operation
//   - InsufficientFundsError: token balance or allowance does not cover a transfer
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrNotAuthorized)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// Handlers and adapters never match on message strings; they classify errors
// with errors.Is against the sentinels and map them to transport-level codes.
package errs

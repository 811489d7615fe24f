// Package errs provides standardized error types for the marketplace
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package defines the rejection kinds the order-processing core can
// surface to callers:
//   - ObjectNotFoundError: a referenced user/product/order/item/return is missing
//   - ValueIsInvalidError: an argument value is invalid (bad quantity, filter, period)
//   - ValueIsRequiredError: a required value is missing
//   - UnauthorizedError: the caller does not own the resource it acts on
//   - InsufficientStockError: a checkout would oversell a product
//   - InvalidTransitionError: an illegal order-status change was requested
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify the kind
//
// Transport adapters map these kinds to response codes; the core never maps
// them itself.
package errs

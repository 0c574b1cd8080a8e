// Package errs provides standardized error types for the travel-order
// workflow. It implements a consistent pattern for error creation, formatting,
// and unwrapping that is used throughout the application.
//
// The package covers two families of errors:
//
// Generic value/object errors:
//   - ObjectNotFoundError: an entity is absent or soft-deleted
//   - ValueIsInvalidError: a value failed validation
//   - ValueIsOutOfRangeError: a numeric value is outside its allowed interval
//   - ValueIsRequiredError: a required value is missing
//
// Workflow business-rule errors:
//   - ForbiddenError: the actor lacks rights for an action on an entity
//   - InvalidTransitionError: an order status change violates the lifecycle
//   - DuplicateNameError: a name uniqueness violation
//   - ProtectedStatusError: deletion of a built-in order status
//   - ConflictError: a lost-update race on concurrent modification
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrForbidden)
//   - a struct type with fields for error details
//   - constructor functions, with and without cause where applicable
//   - Error() producing a human-readable, single-line message
//   - Unwrap() returning the sentinel so errors.Is classification works
//
// Business-rule errors are expected outcomes: handlers return them to the
// caller, which maps each sentinel to a transport-level response. Anything
// not in this taxonomy is treated as a fatal infrastructure failure.
package errs

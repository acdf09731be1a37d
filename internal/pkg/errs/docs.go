// Package errs provides standardized error types for the trade-fulfillment application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the failure taxonomy of the orchestration core:
//   - ObjectNotFoundError: entity absent or tenant mismatch (treated identically)
//   - InvalidTransitionError: a status change outside the entity's transition table
//   - MissingDependencyError: a required cross-entity reference is absent
//   - OwnershipViolationError: an actor operating on a resource it does not own
//   - IntegrityMismatchError: cross-entity references that must agree but do not
//   - TenantMismatchError: two records from different tenants being linked
//   - StaleStatusError: a conditional status write that lost a race
//   - ValueIsRequiredError / ValueIsInvalidError: constructor validation failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrInvalidTransition)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Structural errors from this package always abort the operation that raised them.
// Side-effect failures (audit events, best-effort case creation) are never raised
// through these types; they degrade to logged warnings in the calling service.
package errs

// Package errs provides standardized error types for the livehaul core.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping used throughout the application.
//
// The package carries the full caller-facing taxonomy of the core:
//   - UnauthorizedError: no actor identity present
//   - ForbiddenError: actor present but insufficient role/ownership
//   - ObjectNotFoundError: a referenced entity id does not resolve
//   - ConflictError: entity exists but is not in the required state
//   - ValueIsRequiredError / ValueIsInvalidError: malformed input
//   - InvalidStatusError: unrecognized status transition target
//   - InternalError: unexpected storage failure, always rolled back
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// The HTTP adapter maps these kinds onto status codes; all of them are
// recoverable, caller-facing outcomes rather than crashes. Conflict and
// NotFound are deliberately distinct so callers can tell "already assigned"
// from "does not exist".
package errs

// Package errs provides standardized error types for the food-ordering application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the failure taxonomy of the core:
//   - ObjectNotFoundError: lookups that find nothing (a normal outcome)
//   - ValueIsInvalidError: a supplied value failed validation
//   - ValueIsRequiredError: a required value is missing
//   - ValueAlreadyExistsError: uniqueness violations (duplicate username)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classification works
//
// No error from this package ever carries partial state: a command that
// returns one of these has either fully happened or not at all.
package errs

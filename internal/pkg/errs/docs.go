// Package errs provides the typed errors shared by the domain, the use cases and the adapters.
//
// Every error type follows the same shape: a sentinel (ErrValueIsRequired, ...), a struct carrying
// the offending parameter, New and NewWithCause constructors, and Unwrap returning the sentinel so
// callers classify with errors.Is instead of string matching.
//
// The HTTP adapter relies on that classification: ErrObjectNotFound maps to 404 and the
// validation sentinels (see IsValidationError) map to 422.
package errs

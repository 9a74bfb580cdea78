// Package apierr defines the error taxonomy for remote service calls.
//
// Remote failures are never masked: a transport failure surfaces as a
// RequestError and a non-success HTTP status as a StatusError, both of
// which unwrap to the underlying cause. Invalid inputs are rejected with
// sentinel errors before any network request is made. Empty results are
// not errors and have no representation here.
package apierr

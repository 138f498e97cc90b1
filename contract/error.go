// Package contract exposes the minimal backtrace-carrying error interface used by other packages.
//
// It depends only on github.com/pkg/errors so that tooling which walks cause chains
// (errors.Cause) or extracts traces (the StackTrace() convention) can consume wrapped
// errors without importing the backtrace package.
package contract

import "github.com/pkg/errors"

// Error is the minimal, stable surface that other packages can depend on.
//
// Implementations must:
//   - Return the wrapped error from both Unwrap() and Cause().
//   - Return the frames captured when the error was first wrapped from StackTrace(),
//     or nil when capture was disabled.
//   - Keep Error() to the wrapped error's message; the full report belongs to %+v.
type Error interface {
	error
	Unwrap() error
	Cause() error
	StackTrace() errors.StackTrace
}

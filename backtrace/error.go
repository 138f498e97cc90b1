package backtrace

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/next-trace/scg-backtrace/contract"
)

// Error pairs an inner error with the Backtrace captured when it was first wrapped.
//
// Values are built by Wrap, WrapAs, Convert and Ensure; there is no exported
// constructor that accepts a Backtrace, so a snapshot can only be captured or
// carried forward, never replaced.
type Error[E error] struct {
	inner     E
	backtrace Backtrace
}

// compile-time guarantee that *Error implements contract.Error
var (
	_ contract.Error = (*Error[error])(nil)
	_ fmt.Formatter  = (*Error[error])(nil)
)

// ------ standard error interface

// Error returns the inner error's message. Use Report or %+v for the trace.
func (e *Error[E]) Error() string {
	if e == nil {
		return "<nil>"
	}

	return message(e.inner)
}

func (e *Error[E]) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.inner
}

// ------ contract.Error getters

// Cause lets errors.Cause from github.com/pkg/errors walk past the wrapper.
func (e *Error[E]) Cause() error { return e.Unwrap() }

// StackTrace follows the github.com/pkg/errors stackTracer convention.
func (e *Error[E]) StackTrace() errors.StackTrace {
	if e == nil {
		return nil
	}

	return e.backtrace.Frames()
}

// ------ accessors

// Inner returns the wrapped error, or the zero E for a nil receiver.
func (e *Error[E]) Inner() E {
	if e == nil {
		var zero E
		return zero
	}

	return e.inner
}

// Backtrace returns the snapshot, or a disabled one for a nil receiver.
func (e *Error[E]) Backtrace() Backtrace {
	if e == nil {
		return Backtrace{}
	}

	return e.backtrace
}

func (e *Error[E]) carries() bool { return e != nil }

// ------ presentation

// Report renders the inner message and the snapshot:
//
//	Initial error: <message>
//	Error context:
//	<backtrace>
func (e *Error[E]) Report() string {
	if e == nil {
		return "<nil>"
	}

	return fmt.Sprintf("Initial error: %s\nError context:\n%s\n", message(e.inner), e.backtrace)
}

func (e *Error[E]) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, e.Report())
			return
		}

		fallthrough
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

func message(err error) string {
	if err == nil {
		return "<nil>"
	}

	return err.Error()
}

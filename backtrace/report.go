package backtrace

import (
	"fmt"

	"go.uber.org/zap"
)

// DefaultExpectMessage is printed, and used as the panic value, by UnwrapOrBacktrace.
const DefaultExpectMessage = "backtrace: UnwrapOrBacktrace found error"

// UnwrapOrBacktrace returns v when err is nil. Otherwise it prints
// DefaultExpectMessage, a blank line and err's report, then panics.
func UnwrapOrBacktrace[T any, E error](v T, err *Error[E], opts ...Option) T {
	return ExpectOrBacktrace(v, err, DefaultExpectMessage, opts...)
}

// ExpectOrBacktrace returns v when err is nil. Otherwise it prints msg, a
// blank line and err's report, logs the error, then panics with msg.
func ExpectOrBacktrace[T any, E error](v T, err *Error[E], msg string, opts ...Option) T {
	if err == nil {
		return v
	}

	newReporter(opts).report(msg, err, err.Report())
	panic(msg)
}

func (r *reporter) report(msg string, err error, report string) {
	_, _ = fmt.Fprintln(r.out, msg)
	_, _ = fmt.Fprintln(r.out)
	_, _ = fmt.Fprintln(r.out, report)

	// zap.Error adds the %+v rendering, i.e. the report, as errorVerbose.
	r.logger.Error(msg, zap.Error(err))
}

// Result holds either a value or a wrapped error.
type Result[T any, E error] struct {
	value T
	err   *Error[E]
}

// Ok returns a successful Result.
func Ok[T any, E error](v T) Result[T, E] { return Result[T, E]{value: v} }

// Fail returns a failed Result. Fail(nil) behaves like Ok of the zero value.
func Fail[T any, E error](err *Error[E]) Result[T, E] { return Result[T, E]{err: err} }

// From builds a Result from a (value, error) return pair.
func From[T any, E error](v T, err *Error[E]) Result[T, E] {
	return Result[T, E]{value: v, err: err}
}

func (r Result[T, E]) Value() T { return r.value }

func (r Result[T, E]) Err() *Error[E] { return r.err }

func (r Result[T, E]) IsOk() bool { return r.err == nil }

// UnwrapOrBacktrace is the method form of the package-level UnwrapOrBacktrace.
func (r Result[T, E]) UnwrapOrBacktrace(opts ...Option) T {
	return ExpectOrBacktrace(r.value, r.err, DefaultExpectMessage, opts...)
}

// ExpectOrBacktrace is the method form of the package-level ExpectOrBacktrace.
func (r Result[T, E]) ExpectOrBacktrace(msg string, opts ...Option) T {
	return ExpectOrBacktrace(r.value, r.err, msg, opts...)
}

package backtrace

import (
	"github.com/pkg/errors"
)

// carrier matches *Error[E] for any E.
type carrier interface {
	error
	Backtrace() Backtrace
	carries() bool
}

// Wrap lifts a plain error into an Error and captures the caller's stack.
// A nil error yields nil.
//
// If err already holds an *Error anywhere in its chain, for instance a wrapped
// error passed up as a plain error, that snapshot is reused and nothing is
// captured. Use Convert when the *Error value itself is at hand.
//
// Only a nil interface counts as nil: a typed nil pointer such as
// (*fs.PathError)(nil) is wrapped as is, and Error and Report then call its
// Error method.
//
//go:noinline
func Wrap[E error](err E) *Error[E] {
	if isNil(err) {
		return nil
	}

	bt, ok := carried(err)
	if !ok {
		bt = snapshot(1)
	}

	return &Error[E]{inner: err, backtrace: bt}
}

// WrapAs lifts a plain error into an Error of another inner type, capturing
// the caller's stack once. conv builds the inner value from err.
// Like Wrap, it reuses the snapshot of an *Error already held by err.
//
//go:noinline
func WrapAs[T, U error](err U, conv func(U) T) *Error[T] {
	if isNil(err) {
		return nil
	}

	bt, ok := carried(err)
	if !ok {
		bt = snapshot(1)
	}

	return &Error[T]{inner: conv(err), backtrace: bt}
}

// Convert re-types a wrapped error. The inner value goes through conv and the
// source's Backtrace is carried over unchanged. A nil source yields nil.
func Convert[T, U error](e *Error[U], conv func(U) T) *Error[T] {
	if e == nil {
		return nil
	}

	return &Error[T]{inner: conv(e.inner), backtrace: e.backtrace}
}

// Ensure converts any error to *Error[error].
//
// Behavior:
//   - nil input => nil output
//   - if err is already *Error[error] => returned as-is (same pointer)
//   - if the chain holds any non-nil *Error[E] => err is wrapped with that snapshot, no capture
//   - otherwise err is wrapped with a fresh snapshot of the caller's stack
//
//go:noinline
func Ensure(err error) *Error[error] {
	if err == nil {
		return nil
	}

	if e, ok := err.(*Error[error]); ok && e != nil {
		return e
	}

	bt, ok := carried(err)
	if !ok {
		bt = snapshot(1)
	}

	return &Error[error]{inner: err, backtrace: bt}
}

// carried returns the snapshot of the first *Error in err's chain.
// A typed nil *Error holds no snapshot and does not count.
func carried(err error) (Backtrace, bool) {
	var c carrier
	if !errors.As(err, &c) || !c.carries() {
		return Backtrace{}, false
	}

	return c.Backtrace(), true
}

func isNil[E error](err E) bool {
	return any(err) == nil
}

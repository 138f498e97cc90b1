// Package backtrace provides an error wrapper that captures a stack snapshot once, at the
// point a plain error is first wrapped, and renders it on demand.
//
// It exposes a single generic type Error[E] that implements contract.Error and integrates
// with the standard library's errors helpers (Is/As) via Unwrap and with
// github.com/pkg/errors via Cause and StackTrace.
//
// Key characteristics:
//   - Wrap and WrapAs are the only functions that capture a snapshot
//   - Convert re-types a wrapped error and carries the original snapshot forward
//   - Capture is gated by SCG_LIB_BACKTRACE / SCG_BACKTRACE, re-read on every call
//   - Report renders "Initial error" followed by the "Error context" trace
//   - UnwrapOrBacktrace and ExpectOrBacktrace print the report and panic
//
// Example:
//
//	type ConfigError struct{ Cause error }
//
//	func (e ConfigError) Error() string { return "config: " + e.Cause.Error() }
//
//	func open(path string) (*os.File, *backtrace.Error[error]) {
//		f, err := os.Open(path)
//		if err != nil {
//			return nil, backtrace.Wrap(err)
//		}
//		return f, nil
//	}
//
//	func load(path string) (*os.File, *backtrace.Error[ConfigError]) {
//		f, err := open(path)
//		if err != nil {
//			return nil, backtrace.Convert(err, func(e error) ConfigError { return ConfigError{e} })
//		}
//		return f, nil
//	}
//
//	f, err := load("/does-not-exist")
//	f = backtrace.UnwrapOrBacktrace(f, err)
package backtrace

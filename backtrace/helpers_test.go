package backtrace_test

import (
	"testing"
)

// Three layers, each with its own error type, as a wrapped error travels up
// from I/O to config loading to the application.

type ioError struct {
	path string
	msg  string
}

func (e ioError) Error() string { return e.path + ": " + e.msg }

type configError struct {
	section string
	cause   ioError
}

func (e configError) Error() string { return "config [" + e.section + "]: " + e.cause.Error() }

type appError struct {
	op    string
	cause configError
}

func (e appError) Error() string { return e.op + ": " + e.cause.Error() }

func toConfig(e ioError) configError { return configError{section: "server", cause: e} }

func toApp(e configError) appError { return appError{op: "startup", cause: e} }

func enableCapture(t *testing.T) {
	t.Helper()
	t.Setenv("SCG_LIB_BACKTRACE", "")
	t.Setenv("SCG_BACKTRACE", "1")
}

func disableCapture(t *testing.T) {
	t.Helper()
	t.Setenv("SCG_LIB_BACKTRACE", "")
	t.Setenv("SCG_BACKTRACE", "0")
}

package backtrace

import (
	"io"
	"os"

	"go.uber.org/zap"
)

// Option configures UnwrapOrBacktrace and ExpectOrBacktrace.
type Option func(*reporter)

// reporter writes the diagnostic report before a report-and-stop panics.
type reporter struct {
	out    io.Writer
	logger *zap.Logger
}

// WithOutput sets the diagnostic writer. Defaults to os.Stderr.
func WithOutput(w io.Writer) Option { return func(r *reporter) { r.out = w } }

// WithLogger sets the logger that records the report. Defaults to the package logger (see SetLogger).
func WithLogger(l *zap.Logger) Option { return func(r *reporter) { r.logger = l } }

func newReporter(opts []Option) *reporter {
	r := &reporter{
		out:    os.Stderr,
		logger: Logger,
	}
	for _, o := range opts {
		o(r)
	}

	if r.out == nil {
		r.out = io.Discard
	}

	if r.logger == nil {
		r.logger = zap.NewNop()
	}

	return r
}

package backtrace

import "go.uber.org/zap"

// Logger records every report-and-stop. It discards everything until SetLogger is called.
var Logger = zap.NewNop()

// SetLogger replaces the package logger. It is not safe to call concurrently with a report.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}

	Logger = l
}

// Package main demonstrates usage of the scg-backtrace package.
//
// Run with SCG_BACKTRACE=1 to see the captured frames:
//
//	SCG_BACKTRACE=1 go run ./example
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/next-trace/scg-backtrace/backtrace"
)

// ConfigError is the config layer's own error type.
type ConfigError struct {
	Path  string
	Cause error
}

func (e ConfigError) Error() string { return fmt.Sprintf("config %s: %v", e.Path, e.Cause) }

// StartupError is the application layer's own error type.
type StartupError struct {
	Stage string
	Cause ConfigError
}

func (e StartupError) Error() string { return fmt.Sprintf("startup (%s): %v", e.Stage, e.Cause) }

func openFile(path string) (*os.File, *backtrace.Error[error]) {
	f, err := os.Open(path)
	if err != nil {
		// Frames are captured here, once.
		return nil, backtrace.Wrap(err)
	}

	return f, nil
}

func loadConfig(path string) (*os.File, *backtrace.Error[ConfigError]) {
	f, err := openFile(path)
	if err != nil {
		return nil, backtrace.Convert(err, func(e error) ConfigError { return ConfigError{Path: path, Cause: e} })
	}

	return f, nil
}

func start(path string) (*os.File, *backtrace.Error[StartupError]) {
	f, err := loadConfig(path)
	if err != nil {
		return nil, backtrace.Convert(err, func(e ConfigError) StartupError { return StartupError{Stage: "config", Cause: e} })
	}

	return f, nil
}

func main() {
	logger, _ := zap.NewDevelopment()
	defer func() { _ = logger.Sync() }()

	backtrace.SetLogger(logger)

	// Short message for ordinary error handling, full report with %+v.
	_, err := start("/does-not-exist.nope")
	fmt.Println(err)
	fmt.Printf("%+v", err)

	// Prints the report of the openFile call site, then panics.
	f, err := start("/does-not-exist.nope")
	f = backtrace.ExpectOrBacktrace(f, err, "cannot start without a config file")
	_ = f.Close()
}

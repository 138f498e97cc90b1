package backtrace

import (
	"github.com/spf13/viper"
)

const (
	envPrefix = "scg"

	// SCG_LIB_BACKTRACE takes precedence over SCG_BACKTRACE when set.
	keyLibBacktrace = "lib_backtrace"
	keyBacktrace    = "backtrace"
)

// settings only binds environment variables, so every lookup goes back to
// the process environment.
var settings = newSettings()

func newSettings() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	// BindEnv only fails when called without a key.
	_ = v.BindEnv(keyLibBacktrace)
	_ = v.BindEnv(keyBacktrace)

	return v
}

// Enabled reports whether Capture, Wrap, WrapAs and Ensure record frames.
//
// SCG_LIB_BACKTRACE is consulted first, then SCG_BACKTRACE. A value of "0"
// disables capture, any other non-empty value enables it, and capture is off
// when neither variable is set.
func Enabled() bool {
	for _, key := range []string{keyLibBacktrace, keyBacktrace} {
		if val := settings.GetString(key); val != "" {
			return val != "0"
		}
	}

	return false
}

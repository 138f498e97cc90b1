package backtrace_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/next-trace/scg-backtrace/backtrace"
)

func TestEnabled_Precedence(t *testing.T) {
	tests := []struct {
		name string
		lib  string
		bt   string
		want bool
	}{
		{"neither set", "", "", false},
		{"backtrace on", "", "1", true},
		{"backtrace full", "", "full", true},
		{"backtrace off", "", "0", false},
		{"lib on overrides backtrace off", "1", "0", true},
		{"lib off overrides backtrace on", "0", "1", false},
		{"lib on alone", "1", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SCG_LIB_BACKTRACE", tt.lib)
			t.Setenv("SCG_BACKTRACE", tt.bt)
			assert.Equal(t, tt.want, backtrace.Enabled())
		})
	}
}

func TestEnabled_ReadOnEveryCall(t *testing.T) {
	disableCapture(t)
	require.False(t, backtrace.Enabled())
	require.Equal(t, backtrace.Disabled, backtrace.Capture().Status())

	t.Setenv("SCG_BACKTRACE", "1")
	require.True(t, backtrace.Enabled())
	require.Equal(t, backtrace.Captured, backtrace.Capture().Status())
}

func TestCapture_Disabled(t *testing.T) {
	disableCapture(t)

	bt := backtrace.Capture()
	assert.Equal(t, backtrace.Disabled, bt.Status())
	assert.Nil(t, bt.Frames())
	assert.Equal(t, "disabled backtrace", bt.String())
}

func TestCapture_StartsAtCaller(t *testing.T) {
	enableCapture(t)

	bt := backtrace.Capture()
	require.Equal(t, backtrace.Captured, bt.Status())
	require.NotEmpty(t, bt.Frames())

	top := fmt.Sprintf("%+v", bt.Frames()[0])
	assert.Contains(t, top, "TestCapture_StartsAtCaller")
	assert.Contains(t, top, "backtrace_test.go")
	assert.NotContains(t, bt.String(), "backtrace.capture")
}

func TestForceCapture_IgnoresToggle(t *testing.T) {
	disableCapture(t)

	bt := backtrace.ForceCapture()
	require.Equal(t, backtrace.Captured, bt.Status())
	assert.Contains(t, fmt.Sprintf("%+v", bt.Frames()[0]), "TestForceCapture_IgnoresToggle")
}

func TestBacktrace_ZeroValue(t *testing.T) {
	t.Parallel()

	var bt backtrace.Backtrace
	assert.Equal(t, backtrace.Disabled, bt.Status())
	assert.Nil(t, bt.Frames())
	assert.Equal(t, "disabled backtrace", bt.String())
	assert.Equal(t, "disabled backtrace", fmt.Sprintf("%+v", bt))
}

func TestBacktrace_StringNumbersFrames(t *testing.T) {
	t.Parallel()

	bt := backtrace.ForceCapture()
	lines := strings.Split(bt.String(), "\n")

	// Each frame renders as "   N: function" followed by "\tfile:line".
	require.Len(t, lines, 2*len(bt.Frames()))
	assert.True(t, strings.HasPrefix(lines[0], "   0: "), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "\t"), lines[1])
	assert.False(t, strings.HasSuffix(bt.String(), "\n"))
}

func TestBacktrace_Format(t *testing.T) {
	t.Parallel()

	bt := backtrace.ForceCapture()

	assert.Equal(t, bt.String(), fmt.Sprintf("%s", bt))
	assert.Equal(t, bt.String(), fmt.Sprintf("%v", bt))
	assert.Equal(t, fmt.Sprintf("%q", bt.String()), fmt.Sprintf("%q", bt))
	assert.Equal(t, fmt.Sprintf("%+v", bt.Frames()), fmt.Sprintf("%+v", bt))
}

func TestStatus_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "disabled", backtrace.Disabled.String())
	assert.Equal(t, "unsupported", backtrace.Unsupported.String())
	assert.Equal(t, "captured", backtrace.Captured.String())
	assert.Equal(t, "Status(9)", backtrace.Status(9).String())
}

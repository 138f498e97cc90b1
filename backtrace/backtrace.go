package backtrace

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// maxDepth bounds the number of frames recorded per snapshot.
const maxDepth = 64

// Status reports whether a Backtrace holds frames.
type Status int

const (
	// Disabled means capture was turned off when the snapshot was taken.
	Disabled Status = iota
	// Unsupported means capture was on but the runtime reported no frames.
	// Only the runtime produces it; the zero value and ForceCapture never do.
	Unsupported
	// Captured means the snapshot holds frames.
	Captured
)

func (s Status) String() string {
	switch s {
	case Disabled:
		return "disabled"
	case Unsupported:
		return "unsupported"
	case Captured:
		return "captured"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Backtrace is an immutable snapshot of the call stack.
// The zero value is a disabled snapshot.
type Backtrace struct {
	status Status
	frames errors.StackTrace
}

var _ fmt.Formatter = Backtrace{}

// Capture snapshots the caller's stack if capture is Enabled, and returns a
// disabled snapshot otherwise.
//
//go:noinline
func Capture() Backtrace {
	return snapshot(1)
}

// ForceCapture snapshots the caller's stack regardless of the process toggle.
//
//go:noinline
func ForceCapture() Backtrace {
	return capture(1)
}

// Status returns the snapshot status.
func (b Backtrace) Status() Status { return b.status }

// Frames returns the captured frames, nil unless Status is Captured.
func (b Backtrace) Frames() errors.StackTrace {
	if b.status != Captured {
		return nil
	}

	return b.frames
}

// String renders one numbered entry per frame, without a trailing newline.
func (b Backtrace) String() string {
	switch b.status {
	case Disabled:
		return "disabled backtrace"
	case Unsupported:
		return "unsupported backtrace"
	}

	var sb strings.Builder

	for i, f := range b.frames {
		if i > 0 {
			sb.WriteByte('\n')
		}

		fmt.Fprintf(&sb, "%4d: %+v", i, f)
	}

	return sb.String()
}

// Format prints String for %s and %v. For %+v on a captured snapshot it
// defers to errors.StackTrace formatting.
func (b Backtrace) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') && b.status == Captured {
			b.frames.Format(s, verb)
			return
		}

		fallthrough
	case 's':
		_, _ = io.WriteString(s, b.String())
	case 'q':
		fmt.Fprintf(s, "%q", b.String())
	}
}

// snapshot honors the toggle. skip 0 starts at the caller of snapshot.
//
//go:noinline
func snapshot(skip int) Backtrace {
	if !Enabled() {
		return Backtrace{status: Disabled}
	}

	return capture(skip + 1)
}

// capture records frames starting skip frames above its caller.
//
//go:noinline
func capture(skip int) Backtrace {
	pcs := make([]uintptr, maxDepth)

	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return Backtrace{status: Unsupported}
	}

	frames := make(errors.StackTrace, n)
	for i, pc := range pcs[:n] {
		frames[i] = errors.Frame(pc)
	}

	return Backtrace{status: Captured, frames: frames}
}

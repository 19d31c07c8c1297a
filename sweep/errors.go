package sweep

import (
	"fmt"
	"time"
)

// ExecutableUnavailableError means the workload binary is missing or not
// executable. Fatal for the whole run.
type ExecutableUnavailableError struct {
	Path   string
	Reason string
}

func (e *ExecutableUnavailableError) Error() string {
	return fmt.Sprintf("workload %s: %s", e.Path, e.Reason)
}

// TimeoutError means a single invocation exceeded the wall-clock bound.
// The attempt is not retried.
type TimeoutError struct {
	Size    int
	Threads int
	Limit   time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timed out after %s: size=%d threads=%d", e.Limit, e.Size, e.Threads)
}

// ParseError means the captured output lacked a required pattern. DumpPath
// points at the diagnostic file holding the raw output, when one was written.
type ParseError struct {
	Size     int
	Threads  int
	Missing  string
	Output   string
	DumpPath string
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("could not parse workload output for size=%d threads=%d: missing %s", e.Size, e.Threads, e.Missing)
	if e.DumpPath != "" {
		msg += fmt.Sprintf(" (raw output saved to %s)", e.DumpPath)
	}
	return msg
}

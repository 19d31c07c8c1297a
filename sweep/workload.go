package sweep

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strconv"
	"time"
)

// Workload abstracts the external program under measurement: two numeric
// parameters in, raw text out. Implementations report a single failure kind;
// the runner above decides what a failure means for the sweep.
type Workload interface {
	Execute(ctx context.Context, size, threads int) (string, error)
}

// ExecWorkload runs the workload binary as a child process with a hard
// wall-clock timeout per invocation. Only standard output is captured; the
// exit code is deliberately never inspected, success is decided by whether
// the output parses.
type ExecWorkload struct {
	Path    string
	Timeout time.Duration
}

// Check verifies the binary exists and carries an execute bit. Called once
// before the sweep starts and again on every invocation, since the file can
// disappear mid-run.
func (w *ExecWorkload) Check() error {
	info, err := os.Stat(w.Path)
	if err != nil {
		return &ExecutableUnavailableError{Path: w.Path, Reason: "not found"}
	}
	if info.IsDir() || info.Mode().Perm()&0o111 == 0 {
		return &ExecutableUnavailableError{Path: w.Path, Reason: "not executable"}
	}
	return nil
}

func (w *ExecWorkload) Execute(ctx context.Context, size, threads int) (string, error) {
	if err := w.Check(); err != nil {
		return "", err
	}

	runCtx := ctx
	if w.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, w.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, w.Path, strconv.Itoa(size), strconv.Itoa(threads))
	var out bytes.Buffer
	cmd.Stdout = &out

	err := cmd.Run()
	if runCtx.Err() == context.DeadlineExceeded {
		return "", &TimeoutError{Size: size, Threads: threads, Limit: w.Timeout}
	}
	// A non-zero exit still counts if the output parses. Whatever was
	// captured before a start failure is simply empty and fails parsing.
	_ = err
	return out.String(), nil
}

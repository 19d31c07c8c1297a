package sweep

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Sample is one successful measurement of the workload.
type Sample struct {
	ElapsedMS float64
	Count     int
}

// Runner executes one trial and turns the captured output into a Sample.
// On a parse failure the raw output is dumped to DumpDir under a name derived
// from the trial parameters, so the offending run can be diagnosed later.
type Runner struct {
	Workload Workload
	DumpDir  string
	Name     string // base name for dump files, usually the workload binary name
}

// RunOnce invokes the workload once for (size, threads) and parses its output.
func (r *Runner) RunOnce(ctx context.Context, size, threads int) (Sample, error) {
	out, err := r.Workload.Execute(ctx, size, threads)
	if err != nil {
		return Sample{}, err
	}
	elapsed, count, err := ParseOutput(size, threads, out)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.DumpPath = r.dump(size, threads, out)
		}
		return Sample{}, err
	}
	return Sample{ElapsedMS: elapsed, Count: count}, nil
}

// dump persists raw output for a failed parse. The name is deterministic in
// (size, threads) so repeated failures for the same cell overwrite each other
// instead of piling up.
func (r *Runner) dump(size, threads int, out string) string {
	name := fmt.Sprintf("%s_output_n%d_t%d.txt", r.Name, size, threads)
	path := filepath.Join(r.DumpDir, name)
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return ""
	}
	return path
}

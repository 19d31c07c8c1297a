// benchmark.go
// Wraps the full sweep to record harness-side context and resource usage, so
// runs captured on different machines can be told apart in the logs.

package benchmark

import (
	"log/slog"
	"os"
	"runtime"
	"time"
)

// Run executes f, logging a host snapshot before and elapsed wall time plus
// harness memory usage after. The measured workload runs out of process; this
// accounts only for the harness itself.
func Run(label string, logger *slog.Logger, f func() error) error {
	attrs := []any{
		"label", label,
		"timestamp", time.Now().Format(time.RFC1123),
		"go_version", runtime.Version(),
		"os_arch", runtime.GOOS + "/" + runtime.GOARCH,
		"cpu_cores", runtime.NumCPU(),
	}
	if host, err := os.Hostname(); err == nil {
		attrs = append(attrs, "hostname", host)
	}
	logger.Info("benchmark start", attrs...)

	runtime.GC()
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart)
	start := time.Now()

	err := f()

	elapsed := time.Since(start)
	runtime.ReadMemStats(&memEnd)
	logger.Info("benchmark done",
		"label", label,
		"elapsed", elapsed,
		"harness_alloc_mb", float64(memEnd.TotalAlloc-memStart.TotalAlloc)/1024.0/1024.0,
		"gc_cycles", memEnd.NumGC-memStart.NumGC,
	)
	return err
}

// Package report renders a finalized sweep into persistent artifacts: raw and
// normalized CSVs, three line charts, and a summary table image, all inside a
// timestamped per-run directory.
package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"primebench/sweep"
)

// Writer owns the output directory for one run and emits every artifact into
// it. The directory is created once and never shared with a prior run.
type Writer struct {
	Dir    string
	Logger *slog.Logger
}

// NewWriter creates root/trial_data_<timestamp>. Two runs started within the
// same second would collide, so an existing directory is an error rather than
// being reused.
func NewWriter(root string, logger *slog.Logger) (*Writer, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create output root: %w", err)
	}
	dir := filepath.Join(root, "trial_data_"+time.Now().Format("20060102_150405"))
	if err := os.Mkdir(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create run directory: %w", err)
	}
	return &Writer{Dir: dir, Logger: logger}, nil
}

// WriteAll emits every artifact for the result set. Speedups are computed once
// here so the CSVs, charts and table all render the same values.
func (w *Writer) WriteAll(rs *sweep.ResultSet) error {
	speedups := sweep.Speedups(rs)

	if err := w.WriteRawCSV(rs, speedups); err != nil {
		return err
	}
	if err := w.WriteNormalizedCSV(rs, speedups); err != nil {
		return err
	}
	if err := w.WriteCharts(rs, speedups); err != nil {
		return err
	}
	return w.WriteTable(rs, speedups)
}

package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"primebench/sweep"
)

// Artifact file names match the original harness output so downstream
// notebooks keep working.
const (
	rawCSVName        = "pprimes_bench.csv"
	normalizedCSVName = "pprimes_bench_seconds.csv"
)

// csvPrecision is the decimal precision of the normalized artifact.
const csvPrecision = 3

// WriteRawCSV emits one row per configured cell with per-trial milliseconds.
// Undefined averages and speedups are blank fields; a trial that did not
// succeed leaves its column blank. The result count keeps the -1 sentinel for
// cells with no successful trial, as the original file format does.
func (w *Writer) WriteRawCSV(rs *sweep.ResultSet, speedups map[sweep.Point]sweep.Measurement) error {
	header := []string{"N", "threads", "trials"}
	for i := 1; i <= rs.Trials; i++ {
		header = append(header, fmt.Sprintf("trial_%d_ms", i))
	}
	header = append(header, "avg_ms", "avg_sec", "speedup", "total_primes")

	records := [][]string{header}
	for _, c := range rs.Cells {
		rec := []string{
			strconv.Itoa(c.Point.Size),
			strconv.Itoa(c.Point.Threads),
			strconv.Itoa(c.Trials),
		}
		for i := 0; i < rs.Trials; i++ {
			if i < len(c.TimesMS) {
				rec = append(rec, formatFloat(c.TimesMS[i]))
			} else {
				rec = append(rec, "")
			}
		}
		rec = append(rec,
			measurementField(c.AvgMS, -1),
			measurementField(scale(c.AvgMS, 1.0/1000), -1),
			measurementField(speedups[c.Point], -1),
			strconv.Itoa(c.LastCount),
		)
		records = append(records, rec)
	}
	return w.writeCSV(rawCSVName, records)
}

// WriteNormalizedCSV emits the same grid in seconds, every numeric value
// rounded to csvPrecision decimals. Rounding happens once here; re-parsing
// and re-rounding the file reproduces it byte for byte.
func (w *Writer) WriteNormalizedCSV(rs *sweep.ResultSet, speedups map[sweep.Point]sweep.Measurement) error {
	header := []string{"N", "threads", "trials"}
	for i := 1; i <= rs.Trials; i++ {
		header = append(header, fmt.Sprintf("trial_%d_s", i))
	}
	header = append(header, "avg_sec", "speedup", "total_primes")

	records := [][]string{header}
	for _, c := range rs.Cells {
		rec := []string{
			strconv.Itoa(c.Point.Size),
			strconv.Itoa(c.Point.Threads),
			strconv.Itoa(c.Trials),
		}
		for i := 0; i < rs.Trials; i++ {
			if i < len(c.TimesMS) {
				rec = append(rec, formatFixed(c.TimesMS[i]/1000))
			} else {
				rec = append(rec, "")
			}
		}
		rec = append(rec,
			measurementField(scale(c.AvgMS, 1.0/1000), csvPrecision),
			measurementField(speedups[c.Point], csvPrecision),
			strconv.Itoa(c.LastCount),
		)
		records = append(records, rec)
	}
	return w.writeCSV(normalizedCSVName, records)
}

func (w *Writer) writeCSV(name string, records [][]string) error {
	path := filepath.Join(w.Dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	cw := csv.NewWriter(f)
	if err := cw.WriteAll(records); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	w.Logger.Info("wrote csv", "path", path)
	return nil
}

// scale multiplies a present measurement, passing no-data through.
func scale(m sweep.Measurement, factor float64) sweep.Measurement {
	if !m.Valid {
		return m
	}
	return sweep.Measured(m.Value * factor)
}

// measurementField renders a measurement for a CSV cell: blank when absent,
// full precision when prec < 0, fixed decimals otherwise.
func measurementField(m sweep.Measurement, prec int) string {
	if !m.Finite() {
		return ""
	}
	if prec < 0 {
		return formatFloat(m.Value)
	}
	return strconv.FormatFloat(m.Value, 'f', prec, 64)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatFixed(v float64) string {
	return strconv.FormatFloat(v, 'f', csvPrecision, 64)
}

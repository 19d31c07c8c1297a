package report

import (
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"primebench/sweep"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestWriter(t *testing.T) *Writer {
	t.Helper()
	w, err := NewWriter(t.TempDir(), discardLogger())
	require.NoError(t, err)
	return w
}

// testResultSet covers the interesting shapes: a full cell, a cell with a
// missing trial, and a cell where every trial failed.
func testResultSet() *sweep.ResultSet {
	return &sweep.ResultSet{Trials: 3, Cells: []sweep.Cell{
		{
			Point:     sweep.Point{Size: 10, Threads: 1},
			Trials:    3,
			TimesMS:   []float64{100, 200, 150},
			AvgMS:     sweep.Measured(150),
			LastCount: 4,
		},
		{
			Point:     sweep.Point{Size: 10, Threads: 2},
			Trials:    3,
			TimesMS:   []float64{50, 50},
			AvgMS:     sweep.Measured(50),
			LastCount: 4,
		},
		{
			Point:     sweep.Point{Size: 100, Threads: 1},
			Trials:    3,
			AvgMS:     sweep.NoData(),
			LastCount: -1,
		},
		{
			Point:     sweep.Point{Size: 100, Threads: 2},
			Trials:    3,
			TimesMS:   []float64{80, 90, 70},
			AvgMS:     sweep.Measured(80),
			LastCount: 25,
		},
	}}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestRawCSV(t *testing.T) {
	w := newTestWriter(t)
	rs := testResultSet()
	require.NoError(t, w.WriteRawCSV(rs, sweep.Speedups(rs)))

	records := readCSV(t, filepath.Join(w.Dir, rawCSVName))
	require.Len(t, records, 5, "header plus one row per configured cell")

	assert.Equal(t, []string{
		"N", "threads", "trials",
		"trial_1_ms", "trial_2_ms", "trial_3_ms",
		"avg_ms", "avg_sec", "speedup", "total_primes",
	}, records[0])

	assert.Equal(t, []string{"10", "1", "3", "100", "200", "150", "150", "0.15", "1", "4"}, records[1])
	assert.Equal(t, []string{"10", "2", "3", "50", "50", "", "50", "0.05", "3", "4"}, records[2])

	// The dead cell keeps its row: blanks for timings and speedup, -1 count.
	assert.Equal(t, []string{"100", "1", "3", "", "", "", "", "", "", "-1"}, records[3])

	// No baseline for size 100, so its threads=2 speedup is blank too.
	assert.Equal(t, []string{"100", "2", "3", "80", "90", "70", "80", "0.08", "", "25"}, records[4])
}

func TestNormalizedCSV(t *testing.T) {
	w := newTestWriter(t)
	rs := testResultSet()
	require.NoError(t, w.WriteNormalizedCSV(rs, sweep.Speedups(rs)))

	records := readCSV(t, filepath.Join(w.Dir, normalizedCSVName))
	require.Len(t, records, 5)

	assert.Equal(t, []string{
		"N", "threads", "trials",
		"trial_1_s", "trial_2_s", "trial_3_s",
		"avg_sec", "speedup", "total_primes",
	}, records[0])

	assert.Equal(t, []string{"10", "1", "3", "0.100", "0.200", "0.150", "0.150", "1.000", "4"}, records[1])
	assert.Equal(t, []string{"10", "2", "3", "0.050", "0.050", "", "0.050", "3.000", "4"}, records[2])
	assert.Equal(t, []string{"100", "1", "3", "", "", "", "", "", "-1"}, records[3])
}

func TestNormalizedCSVRoundingIsIdempotent(t *testing.T) {
	w := newTestWriter(t)
	rs := &sweep.ResultSet{Trials: 2, Cells: []sweep.Cell{
		{
			Point:     sweep.Point{Size: 10, Threads: 1},
			Trials:    2,
			TimesMS:   []float64{123.4567, 98.7654},
			AvgMS:     sweep.Measured(111.11105),
			LastCount: 4,
		},
	}}
	require.NoError(t, w.WriteNormalizedCSV(rs, sweep.Speedups(rs)))

	records := readCSV(t, filepath.Join(w.Dir, normalizedCSVName))
	row := records[1]

	// Re-parse every numeric timing field, round to 3 decimals again, and
	// check the rendering does not drift.
	for _, field := range row[3:7] {
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		require.NoError(t, err)
		assert.Equal(t, field, strconv.FormatFloat(v, 'f', 3, 64))
	}
}

func TestNewWriterCreatesRunDirectory(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, discardLogger())
	require.NoError(t, err)

	info, err := os.Stat(w.Dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, root, filepath.Dir(w.Dir))
	assert.Contains(t, filepath.Base(w.Dir), "trial_data_")
}

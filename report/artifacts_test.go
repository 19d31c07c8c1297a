package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"primebench/sweep"
)

func assertFileNotEmpty(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err, "expected artifact %s", path)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteChartsProducesAllThree(t *testing.T) {
	w := newTestWriter(t)
	rs := testResultSet()
	require.NoError(t, w.WriteCharts(rs, sweep.Speedups(rs)))

	for _, name := range []string{timeLinearChartName, timeLogChartName, speedupChartName} {
		assertFileNotEmpty(t, filepath.Join(w.Dir, name))
	}
}

func TestWriteChartsWithAllCellsFailed(t *testing.T) {
	// Nothing plottable, but the chart files must still render.
	w := newTestWriter(t)
	rs := &sweep.ResultSet{Trials: 3, Cells: []sweep.Cell{
		{Point: sweep.Point{Size: 10, Threads: 1}, Trials: 3, AvgMS: sweep.NoData(), LastCount: -1},
		{Point: sweep.Point{Size: 10, Threads: 2}, Trials: 3, AvgMS: sweep.NoData(), LastCount: -1},
	}}
	require.NoError(t, w.WriteCharts(rs, sweep.Speedups(rs)))

	for _, name := range []string{timeLinearChartName, timeLogChartName, speedupChartName} {
		assertFileNotEmpty(t, filepath.Join(w.Dir, name))
	}
}

func TestWriteTable(t *testing.T) {
	w := newTestWriter(t)
	rs := testResultSet()
	require.NoError(t, w.WriteTable(rs, sweep.Speedups(rs)))
	assertFileNotEmpty(t, filepath.Join(w.Dir, tableImageName))
}

func TestWriteAllEmitsEverything(t *testing.T) {
	w := newTestWriter(t)
	require.NoError(t, w.WriteAll(testResultSet()))

	want := []string{
		rawCSVName,
		normalizedCSVName,
		timeLinearChartName,
		timeLogChartName,
		speedupChartName,
		tableImageName,
	}
	for _, name := range want {
		assertFileNotEmpty(t, filepath.Join(w.Dir, name))
	}
}

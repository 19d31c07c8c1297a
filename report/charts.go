package report

import (
	"fmt"
	"image/color"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"primebench/sweep"
)

const (
	timeLinearChartName = "time_seconds_vs_problem_size_all_threads.png"
	timeLogChartName    = "time_milliseconds_logscale_vs_problem_size_all_threads.png"
	speedupChartName    = "speedup_vs_problem_size_all_threads.png"
)

// One color per thread level, cycled when the grid has more levels.
var seriesColors = []color.RGBA{
	{R: 0, G: 114, B: 178, A: 255},   // blue
	{R: 230, G: 159, B: 0, A: 255},   // orange
	{R: 0, G: 158, B: 115, A: 255},   // green
	{R: 213, G: 94, B: 0, A: 255},    // vermillion
	{R: 204, G: 121, B: 167, A: 255}, // purple
	{R: 86, G: 180, B: 233, A: 255},  // sky
	{R: 150, G: 150, B: 150, A: 255}, // gray
}

// chartSpec describes one of the line charts: how it is labeled, whether the
// value axis is logarithmic, and which per-cell value it plots.
type chartSpec struct {
	file   string
	title  string
	yLabel string
	logY   bool
	value  func(c sweep.Cell) sweep.Measurement
}

// WriteCharts renders the three line charts: execution time vs size on a
// linear time axis, the same on a log time axis, and speedup vs size. All use
// a log size axis and one series per thread level.
func (w *Writer) WriteCharts(rs *sweep.ResultSet, speedups map[sweep.Point]sweep.Measurement) error {
	specs := []chartSpec{
		{
			file:   timeLinearChartName,
			title:  "Execution Time vs Problem Size (seconds)",
			yLabel: "Execution Time (seconds)",
			value: func(c sweep.Cell) sweep.Measurement {
				return scale(c.AvgMS, 1.0/1000)
			},
		},
		{
			file:   timeLogChartName,
			title:  "Execution Time vs Problem Size (milliseconds, log scale)",
			yLabel: "Execution Time (ms, log scale)",
			logY:   true,
			value: func(c sweep.Cell) sweep.Measurement {
				return c.AvgMS
			},
		},
		{
			file:   speedupChartName,
			title:  "Speedup vs Problem Size (T1 / Tk)",
			yLabel: "Speedup (x)",
			value: func(c sweep.Cell) sweep.Measurement {
				return speedups[c.Point]
			},
		},
	}
	for _, spec := range specs {
		if err := w.writeLineChart(rs, spec); err != nil {
			return fmt.Errorf("render %s: %w", spec.file, err)
		}
	}
	return nil
}

// seriesLabel mirrors the legend wording of the original reports.
func seriesLabel(threads int) string {
	if threads == 1 {
		return "Sequential"
	}
	return fmt.Sprintf("%d threads", threads)
}

func (w *Writer) writeLineChart(rs *sweep.ResultSet, spec chartSpec) error {
	p := plot.New()
	p.Title.Text = spec.title
	p.X.Label.Text = "Input Number"
	p.Y.Label.Text = spec.yLabel
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	if spec.logY {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	plotted := 0
	for i, t := range rs.ThreadLevels() {
		pts := seriesPoints(rs, t, spec)
		if len(pts) == 0 {
			continue
		}
		line, scatter, err := plotter.NewLinePoints(pts)
		if err != nil {
			return err
		}
		col := seriesColors[i%len(seriesColors)]
		line.Color = col
		line.Width = vg.Points(1.5)
		scatter.Color = col
		p.Add(line, scatter)
		p.Legend.Add(seriesLabel(t), line, scatter)
		plotted++
	}

	// A grid where every cell failed still produces the chart file; pin the
	// axes so the log scales have a valid range to draw.
	if plotted == 0 {
		p.X.Min, p.X.Max = 1, 10
		p.Y.Min, p.Y.Max = 1, 10
	}

	path := filepath.Join(w.Dir, spec.file)
	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return err
	}
	w.Logger.Info("wrote chart", "path", path)
	return nil
}

// seriesPoints collects the plottable cells for one thread level, in the
// configured size order. Undefined values are skipped, never drawn as zero,
// and log axes additionally exclude non-positive coordinates.
func seriesPoints(rs *sweep.ResultSet, threads int, spec chartSpec) plotter.XYs {
	var pts plotter.XYs
	for _, c := range rs.Cells {
		if c.Point.Threads != threads {
			continue
		}
		v := spec.value(c)
		if !v.Finite() {
			continue
		}
		if c.Point.Size <= 0 {
			continue // log size axis
		}
		if spec.logY && v.Value <= 0 {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(c.Point.Size), Y: v.Value})
	}
	return pts
}

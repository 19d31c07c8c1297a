package report

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"primebench/sweep"
)

const tableImageName = "summary_table_seconds_sci.png"

// WriteTable renders the summary grid as an image: one row per cell with
// per-trial and average seconds in scientific notation, speedup to three
// decimals, and the result count. The table is laid out as labels on a
// hidden-axis plot with separator lines forming the grid.
func (w *Writer) WriteTable(rs *sweep.ResultSet, speedups map[sweep.Point]sweep.Measurement) error {
	header := []string{"N", "threads"}
	for i := 1; i <= rs.Trials; i++ {
		header = append(header, fmt.Sprintf("trial %d (sec)", i))
	}
	header = append(header, "avg (sec)", "speedup", "prime count")

	rows := make([][]string, 0, len(rs.Cells))
	for _, c := range rs.Cells {
		row := []string{
			strconv.Itoa(c.Point.Size),
			strconv.Itoa(c.Point.Threads),
		}
		for i := 0; i < rs.Trials; i++ {
			if i < len(c.TimesMS) {
				row = append(row, fmt.Sprintf("%.3e", c.TimesMS[i]/1000))
			} else {
				row = append(row, "")
			}
		}
		row = append(row,
			scientificField(scale(c.AvgMS, 1.0/1000)),
			fixedField(speedups[c.Point]),
			strconv.Itoa(c.LastCount),
		)
		rows = append(rows, row)
	}

	p := plot.New()
	p.Title.Text = "Benchmark Results (seconds, sci notation, 3 decimals)"
	p.HideAxes()

	cols := len(header)
	gridRows := len(rows) + 1 // header row included
	p.X.Min, p.X.Max = 0, float64(cols)
	p.Y.Min, p.Y.Max = 0, float64(gridRows)

	var xys plotter.XYs
	var labels []string
	addCell := func(col, row int, s string) {
		xys = append(xys, plotter.XY{
			X: float64(col) + 0.5,
			Y: float64(gridRows-row) - 0.5,
		})
		labels = append(labels, s)
	}
	for c, h := range header {
		addCell(c, 0, h)
	}
	for r, row := range rows {
		for c, v := range row {
			addCell(c, r+1, v)
		}
	}

	lbls, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return fmt.Errorf("table labels: %w", err)
	}
	for i := range lbls.TextStyle {
		lbls.TextStyle[i].XAlign = text.XCenter
		lbls.TextStyle[i].YAlign = text.YCenter
		lbls.TextStyle[i].Font.Size = vg.Points(9)
	}
	p.Add(lbls)

	gridColor := color.RGBA{R: 160, G: 160, B: 160, A: 255}
	for r := 0; r <= gridRows; r++ {
		if err := addRule(p, plotter.XYs{
			{X: 0, Y: float64(r)}, {X: float64(cols), Y: float64(r)},
		}, gridColor); err != nil {
			return err
		}
	}
	for c := 0; c <= cols; c++ {
		if err := addRule(p, plotter.XYs{
			{X: float64(c), Y: 0}, {X: float64(c), Y: float64(gridRows)},
		}, gridColor); err != nil {
			return err
		}
	}

	// Scale the canvas with the grid so long sweeps stay readable.
	width := vg.Points(float64(cols) * 85)
	height := vg.Points(float64(gridRows)*20 + 50)

	path := filepath.Join(w.Dir, tableImageName)
	if err := p.Save(width, height, path); err != nil {
		return err
	}
	w.Logger.Info("wrote table image", "path", path)
	return nil
}

func addRule(p *plot.Plot, pts plotter.XYs, col color.Color) error {
	ln, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	ln.Color = col
	ln.Width = vg.Points(0.5)
	p.Add(ln)
	return nil
}

func scientificField(m sweep.Measurement) string {
	if !m.Finite() {
		return ""
	}
	return fmt.Sprintf("%.3e", m.Value)
}

func fixedField(m sweep.Measurement) string {
	if !m.Finite() {
		return ""
	}
	return fmt.Sprintf("%.3f", m.Value)
}

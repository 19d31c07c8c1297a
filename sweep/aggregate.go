package sweep

import (
	"context"
	"fmt"
	"log/slog"
)

// Point identifies one (size, threads) cell of the sweep grid.
type Point struct {
	Size    int
	Threads int
}

// Cell is the aggregated outcome for one Point. Populated during the sweep,
// frozen once its trials complete.
type Cell struct {
	Point     Point
	Trials    int       // configured trial count, not the number that succeeded
	TimesMS   []float64 // successful samples only, in completion order
	AvgMS     Measurement
	LastCount int // result count from the last successful trial, -1 if none
}

// Config is the sweep parameter grid, supplied by the caller rather than read
// from ambient state. Sizes and Threads are iterated in the order given.
type Config struct {
	Sizes   []int
	Threads []int
	Trials  int
}

// ResultSet holds one Cell per configured point, in sweep order, plus the
// configured trial count the artifact columns are sized from.
type ResultSet struct {
	Trials int
	Cells  []Cell
}

// Lookup finds the cell for a point. The grid is small, linear scan is fine.
func (rs *ResultSet) Lookup(p Point) (Cell, bool) {
	for _, c := range rs.Cells {
		if c.Point == p {
			return c, true
		}
	}
	return Cell{}, false
}

// ThreadLevels returns the distinct thread counts in first-seen order.
func (rs *ResultSet) ThreadLevels() []int {
	seen := make(map[int]bool)
	var levels []int
	for _, c := range rs.Cells {
		if !seen[c.Point.Threads] {
			seen[c.Point.Threads] = true
			levels = append(levels, c.Point.Threads)
		}
	}
	return levels
}

// Aggregator drives repeated trials per cell and the full sweep over the grid.
type Aggregator struct {
	Runner *Runner
	Logger *slog.Logger
}

// RunTrials invokes the runner exactly trials times for the same parameters.
// A failed trial is logged and skipped; it never aborts the remaining trials.
// The average covers only the successful samples.
func (a *Aggregator) RunTrials(ctx context.Context, size, threads, trials int) Cell {
	cell := Cell{Point: Point{Size: size, Threads: threads}, Trials: trials, LastCount: -1}
	for i := 1; i <= trials; i++ {
		s, err := a.Runner.RunOnce(ctx, size, threads)
		if err != nil {
			a.Logger.Warn("trial failed",
				"size", size, "threads", threads,
				"trial", fmt.Sprintf("%d/%d", i, trials), "error", err)
			continue
		}
		cell.TimesMS = append(cell.TimesMS, s.ElapsedMS)
		cell.LastCount = s.Count
		a.Logger.Info("trial complete",
			"size", size, "threads", threads,
			"trial", fmt.Sprintf("%d/%d", i, trials),
			"elapsed_ms", s.ElapsedMS, "total", s.Count)
	}
	cell.AvgMS = MeanOf(cell.TimesMS)
	return cell
}

// Run sweeps the whole grid, sizes outer and threads inner, in the configured
// list order. Every configured point gets a cell even when all of its trials
// failed, so the emitted grid is always complete.
func (a *Aggregator) Run(ctx context.Context, cfg Config) *ResultSet {
	rs := &ResultSet{Trials: cfg.Trials}
	for _, n := range cfg.Sizes {
		for _, t := range cfg.Threads {
			rs.Cells = append(rs.Cells, a.RunTrials(ctx, n, t, cfg.Trials))
		}
	}
	return rs
}

package sweep

// Speedups derives the baseline-relative speedup for every cell. The baseline
// for a size is that size's threads==1 cell; sizes are never compared against
// each other or any global reference. A cell whose own average or whose
// baseline is unusable gets an undefined entry. The baseline's entry is
// exactly 1.0 whenever its average is finite and positive.
func Speedups(rs *ResultSet) map[Point]Measurement {
	baselines := make(map[int]Measurement)
	for _, c := range rs.Cells {
		if c.Point.Threads == 1 {
			baselines[c.Point.Size] = c.AvgMS
		}
	}

	out := make(map[Point]Measurement, len(rs.Cells))
	for _, c := range rs.Cells {
		out[c.Point] = ratio(baselines[c.Point.Size], c.AvgMS)
	}
	return out
}

// ratio is baseline/measured when both are finite and the denominator is
// strictly positive, else no data. A missing baseline arrives here as the
// zero Measurement and fails the Finite check.
func ratio(baseline, measured Measurement) Measurement {
	if !baseline.Finite() || !measured.Finite() || measured.Value <= 0 {
		return NoData()
	}
	return Measured(baseline.Value / measured.Value)
}

package sweep

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Measurement is a numeric result that may be absent. A cell whose trials all
// failed has no average; carrying the tag explicitly keeps "no data" visible
// until the report boundary decides how to render it, instead of leaking NaN
// or -1 sentinels through the pipeline.
type Measurement struct {
	Valid bool
	Value float64
}

// NoData is the absent measurement.
func NoData() Measurement { return Measurement{} }

// Measured wraps a present value.
func Measured(v float64) Measurement { return Measurement{Valid: true, Value: v} }

// Finite reports whether the measurement is present and a usable real number.
func (m Measurement) Finite() bool {
	return m.Valid && !math.IsNaN(m.Value) && !math.IsInf(m.Value, 0)
}

// MeanOf averages xs, reporting no data for an empty slice. The mean is a
// commutative reduction, so trial order never changes the result.
func MeanOf(xs []float64) Measurement {
	if len(xs) == 0 {
		return NoData()
	}
	return Measured(stat.Mean(xs, nil))
}

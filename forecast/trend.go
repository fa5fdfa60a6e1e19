package forecast

import "math"

// Trend is a first-degree least-squares fit of value over elapsed hours.
type Trend struct {
	// Slope is the fitted rate of change in meters per hour.
	Slope float64
	// Intercept is the fitted value at hour zero (the series start).
	Intercept float64
	// Sigma is the population standard deviation of the fit residuals
	// (divisor N, not N-1).
	Sigma float64
}

// At evaluates the fitted trend at the given offset in hours since the
// series start.
func (t Trend) At(hours float64) float64 {
	return t.Slope*hours + t.Intercept
}

// FitTrend fits an affine trend to an hourly series by ordinary least
// squares, with each point's x coordinate being its offset in hours from the
// first timestamp. The fit is deterministic: identical input always yields
// identical coefficients.
func FitTrend(series []Point) Trend {
	n := len(series)
	if n == 0 {
		return Trend{}
	}

	base := series[0].Timestamp
	xs := make([]float64, n)
	var sumX, sumY float64
	for i, p := range series {
		xs[i] = p.Timestamp.Sub(base).Hours()
		sumX += xs[i]
		sumY += p.Value
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var ssXY, ssXX float64
	for i, p := range series {
		dx := xs[i] - meanX
		ssXY += dx * (p.Value - meanY)
		ssXX += dx * dx
	}

	t := Trend{Slope: 0, Intercept: meanY}
	if ssXX != 0 {
		t.Slope = ssXY / ssXX
		t.Intercept = meanY - t.Slope*meanX
	}

	var ssRes float64
	for i, p := range series {
		r := p.Value - t.At(xs[i])
		ssRes += r * r
	}
	t.Sigma = math.Sqrt(ssRes / float64(n))

	return t
}

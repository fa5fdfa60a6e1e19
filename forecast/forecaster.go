package forecast

import (
	"fmt"
	"math"
	"time"
)

// Forecaster extrapolates a linear wave-height trend over a fixed horizon.
// It is a pure pipeline (resample, fit, generate) with no retained state, so
// a single instance is safe to share across request handlers.
type Forecaster struct {
	cfg Config
}

// NewForecaster constructs a Forecaster with the given configuration.
func NewForecaster(cfg Config) *Forecaster {
	return &Forecaster{cfg: cfg}
}

// Forecast resamples the observations to hourly resolution, fits a linear
// trend and extrapolates it HorizonHours past the last history point with a
// ±z·sigma confidence band. The forecast region starts at the last history
// timestamp (inclusive), so it holds HorizonHours+1 points.
//
// Returns ErrEmptyInput for an empty sequence and ErrInsufficientData when
// fewer than MinPoints hourly points are available after resampling.
func (f *Forecaster) Forecast(observations []Observation) (*Result, error) {
	history, err := ResampleHourly(observations)
	if err != nil {
		return nil, err
	}
	if len(history) < f.cfg.MinPoints {
		return nil, fmt.Errorf("%w: have %d hourly points, need %d",
			ErrInsufficientData, len(history), f.cfg.MinPoints)
	}

	trend := FitTrend(history)

	last := history[len(history)-1]
	lastOffset := last.Timestamp.Sub(history[0].Timestamp).Hours()

	n := f.cfg.HorizonHours + 1
	fc := make([]Point, n)
	lower := make([]Point, n)
	upper := make([]Point, n)
	margin := f.cfg.ConfidenceZ * trend.Sigma

	for i := 0; i < n; i++ {
		ts := last.Timestamp.Add(time.Duration(i) * time.Hour)
		v := trend.At(lastOffset + float64(i))
		fc[i] = Point{Timestamp: ts, Value: v}
		upper[i] = Point{Timestamp: ts, Value: v + margin}
		// wave height cannot go negative, clamp the lower side only
		lower[i] = Point{Timestamp: ts, Value: math.Max(0, v-margin)}
	}

	return &Result{
		History:   history,
		Forecast:  fc,
		LowerBand: lower,
		UpperBand: upper,
	}, nil
}

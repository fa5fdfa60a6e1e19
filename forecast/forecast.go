package forecast

import (
	"errors"
	"time"
)

// ErrEmptyInput indicates the caller supplied no observations at all.
var ErrEmptyInput = errors.New("empty observation sequence")

// ErrInsufficientData indicates there is not enough hourly history to fit a
// trend. Retrying without new upstream data is pointless; the caller should
// surface a "not enough history" state instead of a partial chart.
var ErrInsufficientData = errors.New("insufficient data to forecast")

// Observation is a single raw sensor reading (wave height in meters).
type Observation struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// Point is one entry of an hourly-resampled or forecast series.
type Point struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// Result bundles the resampled history with the forecast region. Forecast,
// LowerBand and UpperBand share identical timestamps and length horizon+1.
// The first forecast point coincides in time with the last history point but
// carries the fitted trend value there, not the raw observation, so the two
// series may visibly diverge at the seam.
type Result struct {
	History   []Point `json:"history"`
	Forecast  []Point `json:"forecast"`
	LowerBand []Point `json:"lower_band"`
	UpperBand []Point `json:"upper_band"`
}

// Config carries the forecaster tuning knobs.
type Config struct {
	// HorizonHours is how far past the last history point to extrapolate.
	HorizonHours int
	// MinPoints is the minimum number of hourly points required after
	// resampling before a trend fit is attempted.
	MinPoints int
	// ConfidenceZ scales the residual sigma into the confidence band.
	ConfidenceZ float64
}

// DefaultConfig returns the production configuration: a 24 hour horizon,
// at least 10 hourly points, and a ~95% normal band.
func DefaultConfig() Config {
	return Config{
		HorizonHours: 24,
		MinPoints:    10,
		ConfidenceZ:  1.96,
	}
}

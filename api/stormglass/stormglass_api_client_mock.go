package stormglass

import (
	"context"
	"math"
	"time"

	"marine-server/models"
)

// StormGlassApiClientMock embeds mocked logic for the storm glass api client.
// It synthesizes a deterministic swell pattern so local runs and tests work
// without an API key or network access.
type StormGlassApiClientMock struct {
}

// NewStormGlassApiClientMock creates a new instance of StormGlassApiClientMock
func NewStormGlassApiClientMock() *StormGlassApiClientMock {
	return &StormGlassApiClientMock{}
}

func (c *StormGlassApiClientMock) SetCredentials(apiKey string) {
	// no credentials needed for the mock
}

// GetMarineReadings generates one reading per hour in [start, end]: a daily
// swell cycle around 2.5 m with a slow rising trend.
func (c *StormGlassApiClientMock) GetMarineReadings(ctx context.Context, lat, lon float64, start, end time.Time) ([]models.MarineReading, error) {
	first := start.UTC().Truncate(time.Hour)
	if first.Before(start.UTC()) {
		first = first.Add(time.Hour)
	}

	var readings []models.MarineReading
	for ts := first; !ts.After(end.UTC()); ts = ts.Add(time.Hour) {
		hourOfDay := float64(ts.Hour())
		hoursSinceStart := ts.Sub(first).Hours()

		wave := 2.5 + 1.2*math.Sin(2*math.Pi*hourOfDay/24.0) + 0.01*hoursSinceStart
		readings = append(readings, models.MarineReading{
			Timestamp:        ts,
			WaveHeight:       wave,
			SwellHeight:      wave * 0.8,
			WindSpeed:        6.0 + 2.0*math.Cos(2*math.Pi*hourOfDay/24.0),
			WaterTemperature: 16.5,
			Lat:              lat,
			Lon:              lon,
		})
	}
	return readings, nil
}

package stormglass

import (
	"context"
	"time"

	"marine-server/models"
)

// StormGlassAPI defines the interface for fetching marine point readings
type StormGlassAPI interface {
	GetMarineReadings(ctx context.Context, lat, lon float64, start, end time.Time) ([]models.MarineReading, error)
	SetCredentials(apiKey string)
}

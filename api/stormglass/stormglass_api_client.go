package stormglass

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"time"

	"marine-server/api"
	"marine-server/models"
)

const MARINE_PARAMS = "waveHeight,swellHeight,windSpeed,waterTemperature"

// StormGlassApiClient embeds the common HTTPClient
type StormGlassApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
	apiKey          string
}

// NewStormGlassApiClient creates a new instance of StormGlassApiClient
func NewStormGlassApiClient(httpClient *api.HTTPClient) *StormGlassApiClient {
	return &StormGlassApiClient{
		HTTPClient: httpClient,
	}
}

// SetCredentials stores the API key sent in the Authorization header.
func (c *StormGlassApiClient) SetCredentials(apiKey string) {
	c.apiKey = apiKey
}

// GetMarineReadings fetches hourly marine readings for a position and time
// window, and flattens the per-source payload into clean rows.
func (c *StormGlassApiClient) GetMarineReadings(ctx context.Context, lat, lon float64, start, end time.Time) ([]models.MarineReading, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lng", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("params", MARINE_PARAMS)
	params.Set("start", strconv.FormatInt(start.UTC().Unix(), 10))
	params.Set("end", strconv.FormatInt(end.UTC().Unix(), 10))

	headers := map[string]string{"Authorization": c.apiKey}

	var response models.MarinePointResponse
	if err := c.Request("GET", "/weather/point", params, headers, nil, &response); err != nil {
		return nil, fmt.Errorf("fetching marine point data: %w", err)
	}

	readings := make([]models.MarineReading, 0, len(response.Hours))
	for _, h := range response.Hours {
		ts, err := time.Parse(time.RFC3339, h.Time)
		if err != nil {
			log.Printf("[StormGlassApiClient] Skipping hour with bad timestamp %q: %v", h.Time, err)
			continue
		}
		wave, ok := h.WaveHeight.Value()
		if !ok {
			log.Printf("[StormGlassApiClient] Skipping hour %s without wave height", h.Time)
			continue
		}
		swell, _ := h.SwellHeight.Value()
		wind, _ := h.WindSpeed.Value()
		temp, _ := h.WaterTemperature.Value()

		readings = append(readings, models.MarineReading{
			Timestamp:        ts,
			WaveHeight:       wave,
			SwellHeight:      swell,
			WindSpeed:        wind,
			WaterTemperature: temp,
			Lat:              lat,
			Lon:              lon,
		})
	}
	return readings, nil
}

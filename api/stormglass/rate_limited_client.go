package stormglass

import (
	"context"
	"fmt"
	"time"

	"marine-server/models"

	"golang.org/x/time/rate"
)

// RateLimitedStormGlassClient wraps a StormGlassAPI with rate limiting so
// the refresher cannot burn through the daily upstream quota.
type RateLimitedStormGlassClient struct {
	client  StormGlassAPI
	limiter *rate.Limiter
}

// NewRateLimitedStormGlassClient creates a new rate limited client.
// rps is the maximum requests per second allowed (can be fractional for less
// than 1 request per second), burst is the maximum burst size allowed.
func NewRateLimitedStormGlassClient(client StormGlassAPI, rps float64, burst int) *RateLimitedStormGlassClient {
	return &RateLimitedStormGlassClient{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// GetMarineReadings fetches readings, respecting rate limits
func (r *RateLimitedStormGlassClient) GetMarineReadings(ctx context.Context, lat, lon float64, start, end time.Time) ([]models.MarineReading, error) {
	// Wait for rate limiter permission or context cancellation
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.client.GetMarineReadings(ctx, lat, lon, start, end)
}

func (r *RateLimitedStormGlassClient) SetCredentials(apiKey string) {
	r.client.SetCredentials(apiKey)
}

// Verify the decorator implements the API interface
var _ StormGlassAPI = (*RateLimitedStormGlassClient)(nil)
var _ StormGlassAPI = (*StormGlassApiClient)(nil)
var _ StormGlassAPI = (*StormGlassApiClientMock)(nil)

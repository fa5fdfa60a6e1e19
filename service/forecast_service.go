package services

import (
	"log"
	"time"

	"marine-server/dao/redis"
	"marine-server/forecast"
	"marine-server/store"
)

// ForecastService computes the 24-hour wave-height forecast from the recent
// history window, with a read-through Redis cache in front of the
// computation. The cache key carries the newest observation timestamp, so a
// fresh ingest immediately produces a new entry instead of serving stale
// forecasts for the full TTL.
type ForecastService struct {
	marineStore *store.MarineStore
	forecastDao *redis.RedisForecastDAO
	forecaster  *forecast.Forecaster
	windowDays  int
	cacheTTL    time.Duration
}

// NewForecastService constructs a ForecastService with its dependencies.
func NewForecastService(
	marineStore *store.MarineStore,
	forecastDao *redis.RedisForecastDAO,
	forecaster *forecast.Forecaster,
	windowDays int,
	cacheTTL time.Duration,
) *ForecastService {
	return &ForecastService{
		marineStore: marineStore,
		forecastDao: forecastDao,
		forecaster:  forecaster,
		windowDays:  windowDays,
		cacheTTL:    cacheTTL,
	}
}

// GetWaveHeightForecast returns the forecast for the configured history
// window. Cache failures are logged and bypassed: the computation is cheap
// enough that a broken cache must never take the endpoint down.
func (fs *ForecastService) GetWaveHeightForecast() (*forecast.Result, error) {
	maxTS, err := fs.marineStore.MaxTimestamp()
	if err != nil {
		return nil, err
	}
	if maxTS.IsZero() {
		// empty store: let the forecaster produce its definitional error
		return fs.forecaster.Forecast(nil)
	}
	epoch := maxTS.Unix()

	cached, err := fs.forecastDao.GetForecast(fs.windowDays, epoch)
	if err != nil {
		log.Printf("[ForecastService] Cache read failed, recomputing: %v", err)
	}
	if cached != nil {
		return cached, nil
	}

	observations, err := fs.marineStore.LoadRecentWaveHeights(fs.windowDays)
	if err != nil {
		return nil, err
	}

	result, err := fs.forecaster.Forecast(observations)
	if err != nil {
		return nil, err
	}

	if err := fs.forecastDao.SetForecast(fs.windowDays, epoch, result, fs.cacheTTL); err != nil {
		log.Printf("[ForecastService] Cache write failed: %v", err)
	}
	return result, nil
}

// WindowDays exposes the configured history window for handlers and charts.
func (fs *ForecastService) WindowDays() int {
	return fs.windowDays
}

// InvalidateCache drops every cached forecast. Needed after a backfill
// rewrites rows under the current epoch, where the epoch key alone would
// keep serving the stale entry until its TTL.
func (fs *ForecastService) InvalidateCache() error {
	return fs.forecastDao.InvalidateForecasts()
}

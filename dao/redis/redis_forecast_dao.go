package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"marine-server/db"
	"marine-server/forecast"
	"marine-server/models"
)

// FORECAST_CACHE_KEY_FORMAT keys a cached forecast by its history window in
// days and a cache epoch (the newest observation timestamp the forecast was
// computed from). A new ingest moves the epoch, which naturally invalidates
// the old entry; the TTL bounds staleness between ingests.
const FORECAST_CACHE_KEY_FORMAT = "wave_forecast_v1:%dd:%d"

// The threshold is encoded with full precision: two distinct thresholds must
// never share a cache entry, however close they are.
const DAY_SUMMARY_CACHE_KEY_FORMAT = "day_summary_v1:%s:%s:%s"
const HOURLY_PATTERN_CACHE_KEY_FORMAT = "hourly_pattern_v1:%s"

// RedisForecastDAO caches computed forecast results and day summaries.
// Entries are immutable once written: writers use insert-if-absent, so
// concurrent recomputations of the same key race harmlessly.
type RedisForecastDAO struct {
	client db.RedisClient
}

// NewRedisForecastDAO initializes a RedisForecastDAO with the Redis client.
func NewRedisForecastDAO(client db.RedisClient) *RedisForecastDAO {
	return &RedisForecastDAO{client: client}
}

func daySummaryKey(date, timeFilter string, threshold float64) string {
	return fmt.Sprintf(DAY_SUMMARY_CACHE_KEY_FORMAT, date, timeFilter,
		strconv.FormatFloat(threshold, 'f', -1, 64))
}

// SetForecast caches a forecast result for the given window and epoch.
func (dao *RedisForecastDAO) SetForecast(windowDays int, epoch int64, result *forecast.Result, ttl time.Duration) error {
	key := fmt.Sprintf(FORECAST_CACHE_KEY_FORMAT, windowDays, epoch)
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal forecast for %s: %w", key, err)
	}
	written, err := dao.client.SetNXWithTTL(key, string(data), ttl)
	if err != nil {
		return fmt.Errorf("failed to set forecast in redis: %w", err)
	}
	if !written {
		log.Printf("[RedisForecastDAO] Forecast %s already cached, keeping existing entry", key)
	}
	return nil
}

// GetForecast retrieves a cached forecast, or (nil, nil) on a cache miss.
func (dao *RedisForecastDAO) GetForecast(windowDays int, epoch int64) (*forecast.Result, error) {
	key := fmt.Sprintf(FORECAST_CACHE_KEY_FORMAT, windowDays, epoch)
	str, err := dao.client.Get(key)
	if err != nil {
		if errors.Is(err, db.ErrCacheMiss) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get forecast from redis: %w", err)
	}
	var result forecast.Result
	if err := json.Unmarshal([]byte(str), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal forecast JSON: %w", err)
	}
	return &result, nil
}

// SetDaySummary caches the KPI summary for a date/time/threshold combination.
func (dao *RedisForecastDAO) SetDaySummary(summary *models.DaySummary, ttl time.Duration) error {
	key := daySummaryKey(summary.Date, summary.Time, summary.DangerThreshold)
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal day summary for %s: %w", key, err)
	}
	if _, err := dao.client.SetNXWithTTL(key, string(data), ttl); err != nil {
		return fmt.Errorf("failed to set day summary in redis: %w", err)
	}
	return nil
}

// GetDaySummary retrieves a cached day summary, or (nil, nil) on a miss.
func (dao *RedisForecastDAO) GetDaySummary(date, timeFilter string, threshold float64) (*models.DaySummary, error) {
	key := daySummaryKey(date, timeFilter, threshold)
	str, err := dao.client.Get(key)
	if err != nil {
		if errors.Is(err, db.ErrCacheMiss) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get day summary from redis: %w", err)
	}
	var summary models.DaySummary
	if err := json.Unmarshal([]byte(str), &summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal day summary JSON: %w", err)
	}
	return &summary, nil
}

// SetHourlyPattern caches the per-hour average wave heights for a date.
func (dao *RedisForecastDAO) SetHourlyPattern(date string, pattern []models.HourlyPatternBucket, ttl time.Duration) error {
	key := fmt.Sprintf(HOURLY_PATTERN_CACHE_KEY_FORMAT, date)
	data, err := json.Marshal(pattern)
	if err != nil {
		return fmt.Errorf("failed to marshal hourly pattern for %s: %w", key, err)
	}
	if _, err := dao.client.SetNXWithTTL(key, string(data), ttl); err != nil {
		return fmt.Errorf("failed to set hourly pattern in redis: %w", err)
	}
	return nil
}

// GetHourlyPattern retrieves a cached hourly pattern, or (nil, nil) on a miss.
func (dao *RedisForecastDAO) GetHourlyPattern(date string) ([]models.HourlyPatternBucket, error) {
	key := fmt.Sprintf(HOURLY_PATTERN_CACHE_KEY_FORMAT, date)
	str, err := dao.client.Get(key)
	if err != nil {
		if errors.Is(err, db.ErrCacheMiss) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get hourly pattern from redis: %w", err)
	}
	var pattern []models.HourlyPatternBucket
	if err := json.Unmarshal([]byte(str), &pattern); err != nil {
		return nil, fmt.Errorf("failed to unmarshal hourly pattern JSON: %w", err)
	}
	return pattern, nil
}

// ListCachedForecastKeys returns all live forecast cache keys.
func (dao *RedisForecastDAO) ListCachedForecastKeys() ([]string, error) {
	keys, err := dao.client.Keys("wave_forecast_v1:*")
	if err != nil {
		return nil, fmt.Errorf("failed to list forecast cache keys: %w", err)
	}
	return keys, nil
}

// InvalidateForecasts drops every cached forecast. Used after a manual
// backfill rewrites history under existing epochs.
func (dao *RedisForecastDAO) InvalidateForecasts() error {
	keys, err := dao.ListCachedForecastKeys()
	if err != nil {
		return err
	}
	for _, k := range keys {
		if err := dao.client.Del(k); err != nil {
			return fmt.Errorf("failed to delete forecast cache key %s: %w", k, err)
		}
	}
	log.Printf("[RedisForecastDAO] Invalidated %d cached forecasts", len(keys))
	return nil
}

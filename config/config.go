package config

import (
	"os"
	"strconv"
)

// Http server config
const HTTP_SERVER_ADDRESS = ":8080"

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Forecast config
const FORECAST_HORIZON_HOURS = 24
const FORECAST_MIN_POINTS_REQUIRED = 10
const FORECAST_CONFIDENCE_Z = 1.96
const FORECAST_HISTORY_WINDOW_DAYS = 3

// Cache TTLs, in seconds. The forecast window query is the expensive one,
// day-level summaries refresh more often.
const FORECAST_CACHE_TTL_SECONDS = 300
const SUMMARY_CACHE_TTL_SECONDS = 60

// Summary config
const DEFAULT_DANGER_THRESHOLD_METERS = 6.0

// Ingest refresher config
const INGEST_REFRESHER_SCHEDULE_MINUTES = 30
const INGEST_FETCH_WINDOW_HOURS = 6

// StormGlass API
const STORM_GLASS_ENDPOINT_BASE_V2 = "https://api.stormglass.io/v2"
const STORM_GLASS_REQUESTS_PER_SECOND = 0.5
const STORM_GLASS_BURST = 2

// Default station position (Nazare, Portugal)
const DEFAULT_LAT = 39.60475
const DEFAULT_LON = -9.085443

// SQLite observation store
const MARINE_DB_PATH_DEFAULT = "data/marine.db"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const OBSERVATIONS_SEED_RESOURCE = "observations_seed.json"

// GetEnv returns the value of an environment variable or the given fallback.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetEnvFloat returns a float env var or the fallback when unset or invalid.
func GetEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

// RedisAddress resolves the redis address, allowing an env override for local runs.
func RedisAddress() string {
	return GetEnv("REDIS_ADDRESS", REDIS_DB_ADDRESS)
}

// StormGlassAPIKey reads the upstream API key from the environment.
func StormGlassAPIKey() string {
	return os.Getenv("STORM_GLASS_API_KEY")
}

// MarineDBPath resolves the SQLite database path.
func MarineDBPath() string {
	return GetEnv("MARINE_DB_PATH", MARINE_DB_PATH_DEFAULT)
}

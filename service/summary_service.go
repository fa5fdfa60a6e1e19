package services

import (
	"errors"
	"log"
	"time"

	"marine-server/dao/redis"
	"marine-server/models"
	"marine-server/store"
)

// ErrNoData indicates the store holds no readings for the requested date.
var ErrNoData = errors.New("no readings for requested date")

// SummaryService computes the per-day KPI tiles, map points, relationship
// scatter pairs and the hourly wave pattern, caching results briefly.
type SummaryService struct {
	marineStore *store.MarineStore
	forecastDao *redis.RedisForecastDAO
	cacheTTL    time.Duration
}

// NewSummaryService constructs a SummaryService with its dependencies.
func NewSummaryService(
	marineStore *store.MarineStore,
	forecastDao *redis.RedisForecastDAO,
	cacheTTL time.Duration,
) *SummaryService {
	return &SummaryService{
		marineStore: marineStore,
		forecastDao: forecastDao,
		cacheTTL:    cacheTTL,
	}
}

// GetDateRange reports the span of dates with data, nil when the store is
// empty.
func (ss *SummaryService) GetDateRange() (*models.DateRange, error) {
	return ss.marineStore.GetDateRange()
}

// GetObservations returns the raw readings for a date.
func (ss *SummaryService) GetObservations(date string) ([]models.MarineReading, error) {
	readings, err := ss.marineStore.LoadDay(date)
	if err != nil {
		return nil, err
	}
	if len(readings) == 0 {
		return nil, ErrNoData
	}
	return readings, nil
}

// GetDaySummary computes the KPI summary for a date. When timeFilter
// (HH:MM) is given, only readings at that exact time are summarized; if no
// reading matches, the full day is used instead so the tiles never go blank
// for a valid date.
func (ss *SummaryService) GetDaySummary(date, timeFilter string, dangerThreshold float64) (*models.DaySummary, error) {
	cached, err := ss.forecastDao.GetDaySummary(date, timeFilter, dangerThreshold)
	if err != nil {
		log.Printf("[SummaryService] Cache read failed, recomputing: %v", err)
	}
	if cached != nil {
		return cached, nil
	}

	readings, err := ss.marineStore.LoadDay(date)
	if err != nil {
		return nil, err
	}
	if len(readings) == 0 {
		return nil, ErrNoData
	}

	filtered := filterByTime(readings, timeFilter)
	if len(filtered) == 0 {
		log.Printf("[SummaryService] No readings at %s on %s, summarizing the full day", timeFilter, date)
		filtered = readings
	}

	summary := summarize(filtered, date, timeFilter, dangerThreshold)

	if err := ss.forecastDao.SetDaySummary(summary, ss.cacheTTL); err != nil {
		log.Printf("[SummaryService] Cache write failed: %v", err)
	}
	return summary, nil
}

// GetHourlyPattern returns the average wave height per hour of day.
func (ss *SummaryService) GetHourlyPattern(date string) ([]models.HourlyPatternBucket, error) {
	cached, err := ss.forecastDao.GetHourlyPattern(date)
	if err != nil {
		log.Printf("[SummaryService] Cache read failed, recomputing: %v", err)
	}
	if cached != nil {
		return cached, nil
	}

	readings, err := ss.marineStore.LoadDay(date)
	if err != nil {
		return nil, err
	}
	if len(readings) == 0 {
		return nil, ErrNoData
	}

	var sums [24]float64
	var counts [24]int
	for _, r := range readings {
		h := r.Timestamp.UTC().Hour()
		sums[h] += r.WaveHeight
		counts[h]++
	}

	var pattern []models.HourlyPatternBucket
	for h := 0; h < 24; h++ {
		if counts[h] == 0 {
			continue
		}
		pattern = append(pattern, models.HourlyPatternBucket{
			Hour:          h,
			AvgWaveHeight: sums[h] / float64(counts[h]),
		})
	}

	if err := ss.forecastDao.SetHourlyPattern(date, pattern, ss.cacheTTL); err != nil {
		log.Printf("[SummaryService] Cache write failed: %v", err)
	}
	return pattern, nil
}

func filterByTime(readings []models.MarineReading, timeFilter string) []models.MarineReading {
	if timeFilter == "" {
		return readings
	}
	var filtered []models.MarineReading
	for _, r := range readings {
		if r.Timestamp.UTC().Format("15:04") == timeFilter {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func summarize(readings []models.MarineReading, date, timeFilter string, dangerThreshold float64) *models.DaySummary {
	summary := &models.DaySummary{
		Date:            date,
		Time:            timeFilter,
		DangerThreshold: dangerThreshold,
	}

	var sumWave, sumWind, sumSwell float64
	for _, r := range readings {
		sumWave += r.WaveHeight
		sumWind += r.WindSpeed
		sumSwell += r.SwellHeight
		if r.WaveHeight > summary.MaxWaveHeight {
			summary.MaxWaveHeight = r.WaveHeight
		}

		danger := r.WaveHeight > dangerThreshold
		if danger {
			summary.DangerRecords++
		} else {
			summary.SafeRecords++
		}

		summary.MapPoints = append(summary.MapPoints, models.MapPoint{
			Lat:    r.Lat,
			Lon:    r.Lon,
			Danger: danger,
		})
		summary.WindVsWave = append(summary.WindVsWave, models.ScatterPoint{X: r.WindSpeed, Y: r.WaveHeight})
		summary.SwellVsWave = append(summary.SwellVsWave, models.ScatterPoint{X: r.SwellHeight, Y: r.WaveHeight})
	}

	n := float64(len(readings))
	summary.AvgWaveHeight = sumWave / n
	summary.AvgWindSpeed = sumWind / n
	summary.AvgSwellHeight = sumSwell / n
	return summary
}

package models

// DaySummary holds the KPI tiles for one day (optionally narrowed to a
// single HH:MM reading time).
type DaySummary struct {
	Date            string  `json:"date"`
	Time            string  `json:"time,omitempty"`
	AvgWaveHeight   float64 `json:"avg_wave_height"`
	MaxWaveHeight   float64 `json:"max_wave_height"`
	AvgWindSpeed    float64 `json:"avg_wind_speed"`
	AvgSwellHeight  float64 `json:"avg_swell_height"`
	DangerThreshold float64 `json:"danger_threshold"`
	DangerRecords   int     `json:"danger_records"`
	SafeRecords     int     `json:"safe_records"`

	MapPoints []MapPoint `json:"map_points"`

	WindVsWave  []ScatterPoint `json:"wind_vs_wave"`
	SwellVsWave []ScatterPoint `json:"swell_vs_wave"`
}

// MapPoint is one plottable position, flagged when the wave height at that
// reading exceeded the danger threshold.
type MapPoint struct {
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Danger bool    `json:"danger"`
}

// ScatterPoint pairs two sensor measurements for relationship charts.
type ScatterPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// HourlyPatternBucket is the average wave height for one hour of the day.
type HourlyPatternBucket struct {
	Hour          int     `json:"hour"`
	AvgWaveHeight float64 `json:"avg_wave_height"`
}

// DateRange reports the span of dates available in the observation store.
type DateRange struct {
	MinDate string `json:"min_date"`
	MaxDate string `json:"max_date"`
}

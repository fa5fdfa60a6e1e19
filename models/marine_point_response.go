package models

import "sort"

// MarinePointResponse mirrors the StormGlass /weather/point payload: a list
// of hourly entries, each measurement keyed by data source.
type MarinePointResponse struct {
	Hours []MarinePointHour `json:"hours"`
	Meta  MarinePointMeta   `json:"meta"`
}

// MarinePointHour is one hourly entry of the point response.
type MarinePointHour struct {
	Time             string       `json:"time"`
	WaveHeight       SourceValues `json:"waveHeight"`
	SwellHeight      SourceValues `json:"swellHeight"`
	WindSpeed        SourceValues `json:"windSpeed"`
	WaterTemperature SourceValues `json:"waterTemperature"`
}

// MarinePointMeta carries the request echo and quota info.
type MarinePointMeta struct {
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	RequestCount int     `json:"requestCount"`
	DailyQuota   int     `json:"dailyQuota"`
}

// SourceValues maps a data-source name (e.g. "sg", "noaa") to its value for
// one measurement.
type SourceValues map[string]float64

// Value returns the preferred reading: the "sg" merged source when present,
// otherwise the first source in name order so the pick stays deterministic.
func (s SourceValues) Value() (float64, bool) {
	if v, ok := s["sg"]; ok {
		return v, true
	}
	if len(s) == 0 {
		return 0, false
	}
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return s[names[0]], true
}

package models

import (
	"fmt"
	"time"
)

// MarineReading represents one cleaned row of the marine sensor table.
type MarineReading struct {
	Timestamp        time.Time `json:"timestamp"`
	WaveHeight       float64   `json:"wave_height"`
	SwellHeight      float64   `json:"swell_height"`
	WindSpeed        float64   `json:"wind_speed"`
	WaterTemperature float64   `json:"water_temperature"`
	Lat              float64   `json:"lat"`
	Lon              float64   `json:"lon"`
}

func (r *MarineReading) ToString() string {
	return fmt.Sprintf("MarineReading(ts=%s, wave=%.2f, swell=%.2f, wind=%.2f, temp=%.2f)",
		r.Timestamp.Format(time.RFC3339), r.WaveHeight, r.SwellHeight, r.WindSpeed, r.WaterTemperature)
}

package models

import (
	"strings"
	"testing"
	"time"
)

func TestMarineReading_ToString(t *testing.T) {
	r := MarineReading{
		Timestamp:        time.Date(2025, 11, 3, 6, 0, 0, 0, time.UTC),
		WaveHeight:       2.45,
		SwellHeight:      1.96,
		WindSpeed:        7.2,
		WaterTemperature: 16.5,
	}

	s := r.ToString()
	for _, want := range []string{"2025-11-03T06:00:00Z", "wave=2.45", "swell=1.96", "wind=7.20", "temp=16.50"} {
		if !strings.Contains(s, want) {
			t.Errorf("Expected %q in %q", want, s)
		}
	}
}

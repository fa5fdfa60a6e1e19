package util

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"marine-server/forecast"
)

func sampleResult(t *testing.T) *forecast.Result {
	t.Helper()

	base := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	obs := make([]forecast.Observation, 12)
	for i := range obs {
		obs[i] = forecast.Observation{
			Timestamp: base.Add(time.Duration(i) * time.Hour),
			Value:     2.0 + 0.1*float64(i),
		}
	}

	result, err := forecast.NewForecaster(forecast.DefaultConfig()).Forecast(obs)
	if err != nil {
		t.Fatalf("Failed to build sample forecast: %v", err)
	}
	return result
}

func TestRenderForecastChart(t *testing.T) {
	result := sampleResult(t)

	var buf bytes.Buffer
	err := RenderForecastChart(&buf, result, "Wave Height Forecast")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	html := buf.String()
	for _, want := range []string{"History", "Forecast", "Upper 95%", "Lower 95%", "echarts"} {
		if !strings.Contains(html, want) {
			t.Errorf("Expected rendered chart to contain %q", want)
		}
	}
}

func TestForecastChartTitle(t *testing.T) {
	generatedAt := time.Date(2025, 11, 3, 12, 0, 0, 0, time.UTC)

	title := ForecastChartTitle(3, generatedAt)

	if !strings.Contains(title, "last 3 days") {
		t.Errorf("Expected window in title, got %q", title)
	}
	if !strings.Contains(title, "2025-11-03 12:00") {
		t.Errorf("Expected timestamp in title, got %q", title)
	}
}

package util

import (
	"fmt"
	"io"
	"time"

	"marine-server/forecast"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const chartTimeLayout = "2006-01-02 15:04"

// RenderForecastChart renders the history, the 24-hour forecast and its
// confidence band as an HTML line chart. The shared x axis holds the history
// timestamps followed by the forecast region; each series is padded with
// nulls outside its own region so echarts leaves gaps instead of drawing
// lines to zero.
func RenderForecastChart(w io.Writer, result *forecast.Result, title string) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Wave Height Forecast",
			Width:     "1000px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: "History, linear trend forecast and ~95% confidence band",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Wave Height (m)"}),
	)

	historyLen := len(result.History)
	// forecast[0] shares its timestamp with the last history point
	forecastTail := result.Forecast[1:]

	axis := make([]string, 0, historyLen+len(forecastTail))
	for _, p := range result.History {
		axis = append(axis, p.Timestamp.UTC().Format(chartTimeLayout))
	}
	for _, p := range forecastTail {
		axis = append(axis, p.Timestamp.UTC().Format(chartTimeLayout))
	}
	total := len(axis)

	historySeries := make([]opts.LineData, total)
	forecastSeries := make([]opts.LineData, total)
	upperSeries := make([]opts.LineData, total)
	lowerSeries := make([]opts.LineData, total)

	for i := range axis {
		historySeries[i] = opts.LineData{Value: nil}
		forecastSeries[i] = opts.LineData{Value: nil}
		upperSeries[i] = opts.LineData{Value: nil}
		lowerSeries[i] = opts.LineData{Value: nil}
	}
	for i, p := range result.History {
		historySeries[i] = opts.LineData{Value: p.Value}
	}
	// the forecast region starts at the last history slot
	for i := range result.Forecast {
		slot := historyLen - 1 + i
		forecastSeries[slot] = opts.LineData{Value: result.Forecast[i].Value}
		upperSeries[slot] = opts.LineData{Value: result.UpperBand[i].Value}
		lowerSeries[slot] = opts.LineData{Value: result.LowerBand[i].Value}
	}

	line.SetXAxis(axis).
		AddSeries("History", historySeries).
		AddSeries("Forecast", forecastSeries).
		AddSeries("Upper 95%", upperSeries,
			charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed"})).
		AddSeries("Lower 95%", lowerSeries,
			charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed"})).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(false)}))

	return line.Render(w)
}

// ForecastChartTitle composes the chart title for a given history window.
func ForecastChartTitle(windowDays int, generatedAt time.Time) string {
	return fmt.Sprintf("Wave Height Forecast (Next 24 Hours) - last %d days, generated %s",
		windowDays, generatedAt.UTC().Format(chartTimeLayout))
}

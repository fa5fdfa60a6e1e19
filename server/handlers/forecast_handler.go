package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"marine-server/forecast"
	services "marine-server/service"
	"marine-server/util"
)

// ForecastHandler serves the wave-height forecast as JSON and as a rendered
// chart page.
type ForecastHandler struct {
	forecastService *services.ForecastService
}

func NewForecastHandler(forecastService *services.ForecastService) *ForecastHandler {
	return &ForecastHandler{forecastService: forecastService}
}

// GetWaveHeightForecast handles GET /v1/forecast/wave-height
func (h *ForecastHandler) GetWaveHeightForecast(w http.ResponseWriter, r *http.Request) {
	result, ok := h.loadForecast(w)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Println("Error encoding forecast response:", err)
	}
}

// GetWaveHeightForecastChart handles GET /v1/forecast/wave-height/chart
func (h *ForecastHandler) GetWaveHeightForecastChart(w http.ResponseWriter, r *http.Request) {
	result, ok := h.loadForecast(w)
	if !ok {
		return
	}

	title := util.ForecastChartTitle(h.forecastService.WindowDays(), time.Now())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.RenderForecastChart(w, result, title); err != nil {
		log.Println("Error rendering forecast chart:", err)
	}
}

// InvalidateForecastCache handles POST /v1/forecast/cache/invalidate
// Drops every cached forecast, forcing recomputation on the next request.
// Meant for operators after a manual backfill rewrites stored history.
func (h *ForecastHandler) InvalidateForecastCache(w http.ResponseWriter, r *http.Request) {
	if err := h.forecastService.InvalidateCache(); err != nil {
		log.Println("Error invalidating forecast cache:", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "invalidated"}); err != nil {
		log.Println("Error encoding invalidation response:", err)
	}
}

// loadForecast runs the forecast and writes the error response on failure.
// A data-density failure is definitional, not transient, so it maps to 422
// with a "not enough history" body rather than a retryable 5xx.
func (h *ForecastHandler) loadForecast(w http.ResponseWriter) (*forecast.Result, bool) {
	result, err := h.forecastService.GetWaveHeightForecast()
	if err != nil {
		switch {
		case errors.Is(err, forecast.ErrEmptyInput):
			writeError(w, http.StatusUnprocessableEntity,
				"no history available yet; run ingestion first")
		case errors.Is(err, forecast.ErrInsufficientData):
			writeError(w, http.StatusUnprocessableEntity,
				"not enough history to build a forecast; ingest more data")
		default:
			log.Println("Error computing forecast:", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return nil, false
	}
	return result, true
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

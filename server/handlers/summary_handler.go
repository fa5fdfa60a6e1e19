package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"marine-server/config"
	services "marine-server/service"
)

const (
	DATE_QUERY_ARG      = "date"
	TIME_QUERY_ARG      = "time"
	THRESHOLD_QUERY_ARG = "threshold"
)

// SummaryHandler serves the per-day KPI summary, hourly pattern, raw
// observations and the available date range.
type SummaryHandler struct {
	summaryService *services.SummaryService
}

func NewSummaryHandler(summaryService *services.SummaryService) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// GetDaySummary handles GET /v1/summary
// expects ?date=YYYY-MM-DD[&time=HH:MM][&threshold=6.0]
func (h *SummaryHandler) GetDaySummary(w http.ResponseWriter, r *http.Request) {
	date, timeFilter, threshold, ok := h.parseArgs(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	summary, err := h.summaryService.GetDaySummary(date, timeFilter, threshold)
	if err != nil {
		h.writeServiceError(w, date, err)
		return
	}
	writeJSON(w, summary)
}

// GetHourlyPattern handles GET /v1/summary/hourly
func (h *SummaryHandler) GetHourlyPattern(w http.ResponseWriter, r *http.Request) {
	date, ok := h.parseDate(r.URL.Query(), w)
	if !ok {
		return
	}

	pattern, err := h.summaryService.GetHourlyPattern(date)
	if err != nil {
		h.writeServiceError(w, date, err)
		return
	}
	writeJSON(w, pattern)
}

// GetObservations handles GET /v1/observations
func (h *SummaryHandler) GetObservations(w http.ResponseWriter, r *http.Request) {
	date, ok := h.parseDate(r.URL.Query(), w)
	if !ok {
		return
	}

	readings, err := h.summaryService.GetObservations(date)
	if err != nil {
		h.writeServiceError(w, date, err)
		return
	}
	writeJSON(w, readings)
}

// GetDates handles GET /v1/dates
func (h *SummaryHandler) GetDates(w http.ResponseWriter, r *http.Request) {
	dateRange, err := h.summaryService.GetDateRange()
	if err != nil {
		log.Println("Error loading date range:", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if dateRange == nil {
		writeError(w, http.StatusNotFound, "no data available; run ingestion first")
		return
	}
	writeJSON(w, dateRange)
}

// Ping handles GET /ping
func (h *SummaryHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "pong"})
}

func (h *SummaryHandler) parseArgs(vals url.Values, w http.ResponseWriter) (
	date, timeFilter string, threshold float64, ok bool,
) {
	date, ok = h.parseDate(vals, w)
	if !ok {
		return
	}

	timeFilter = vals.Get(TIME_QUERY_ARG)
	if timeFilter != "" {
		if _, err := time.Parse("15:04", timeFilter); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid argument "+TIME_QUERY_ARG)
			ok = false
			return
		}
	}

	threshold = config.DEFAULT_DANGER_THRESHOLD_METERS
	if v := vals.Get(THRESHOLD_QUERY_ARG); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "Invalid argument "+THRESHOLD_QUERY_ARG)
			ok = false
			return
		}
		threshold = parsed
	}
	return
}

func (h *SummaryHandler) parseDate(vals url.Values, w http.ResponseWriter) (string, bool) {
	date := vals.Get(DATE_QUERY_ARG)
	if _, err := time.Parse("2006-01-02", date); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid argument "+DATE_QUERY_ARG)
		return "", false
	}
	return date, true
}

func (h *SummaryHandler) writeServiceError(w http.ResponseWriter, date string, err error) {
	if errors.Is(err, services.ErrNoData) {
		writeError(w, http.StatusNotFound, "no data found for "+date)
		return
	}
	log.Println("Error serving summary request:", err)
	writeError(w, http.StatusInternalServerError, "internal server error")
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Error encoding response:", err)
	}
}

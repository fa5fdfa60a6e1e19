package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
)

// MockForecastHandler is a mock implementation of the forecast routes.
type MockForecastHandler struct{}

func (h *MockForecastHandler) GetWaveHeightForecast(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "forecast"}`))
}

func (h *MockForecastHandler) GetWaveHeightForecastChart(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`<html>chart</html>`))
}

func (h *MockForecastHandler) InvalidateForecastCache(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "invalidated"}`))
}

// MockSummaryHandler is a mock implementation of the summary routes.
type MockSummaryHandler struct{}

func (h *MockSummaryHandler) GetDaySummary(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "summary"}`))
}

func (h *MockSummaryHandler) GetHourlyPattern(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "hourly"}`))
}

func (h *MockSummaryHandler) GetObservations(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "observations"}`))
}

func (h *MockSummaryHandler) GetDates(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "dates"}`))
}

func (h *MockSummaryHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "pong"}`))
}

func TestRouter_RegisterRoutes(t *testing.T) {
	// Setup
	router := mux.NewRouter()
	appRouter := NewRouter(&MockForecastHandler{}, &MockSummaryHandler{}, router)
	appRouter.RegisterRoutes()

	// Test Cases
	tests := []struct {
		name       string
		method     string
		path       string
		statusCode int
		response   string
	}{
		{
			name:       "Get Wave Height Forecast",
			method:     "GET",
			path:       "/v1/forecast/wave-height",
			statusCode: http.StatusOK,
			response:   `{"message": "forecast"}`,
		},
		{
			name:       "Get Forecast Chart",
			method:     "GET",
			path:       "/v1/forecast/wave-height/chart",
			statusCode: http.StatusOK,
			response:   `<html>chart</html>`,
		},
		{
			name:       "Invalidate Forecast Cache",
			method:     "POST",
			path:       "/v1/forecast/cache/invalidate",
			statusCode: http.StatusOK,
			response:   `{"status": "invalidated"}`,
		},
		{
			name:       "Get Day Summary",
			method:     "GET",
			path:       "/v1/summary",
			statusCode: http.StatusOK,
			response:   `{"message": "summary"}`,
		},
		{
			name:       "Get Hourly Pattern",
			method:     "GET",
			path:       "/v1/summary/hourly",
			statusCode: http.StatusOK,
			response:   `{"message": "hourly"}`,
		},
		{
			name:       "Get Observations",
			method:     "GET",
			path:       "/v1/observations",
			statusCode: http.StatusOK,
			response:   `{"message": "observations"}`,
		},
		{
			name:       "Get Dates",
			method:     "GET",
			path:       "/v1/dates",
			statusCode: http.StatusOK,
			response:   `{"message": "dates"}`,
		},
		{
			name:       "Ping Route",
			method:     "GET",
			path:       "/ping",
			statusCode: http.StatusOK,
			response:   `{"status": "pong"}`,
		},
		{
			name:       "Invalid Route",
			method:     "GET",
			path:       "/invalid",
			statusCode: http.StatusNotFound,
		},
		{
			name:       "Wrong Method",
			method:     "POST",
			path:       "/v1/summary",
			statusCode: http.StatusMethodNotAllowed,
		},
	}

	// Run tests
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(test.method, test.path, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			// Assert status code
			if rr.Code != test.statusCode {
				t.Errorf("Expected status %d, got %d", test.statusCode, rr.Code)
			}

			// Assert response body, if applicable
			if test.response != "" && rr.Body.String() != test.response {
				t.Errorf("Expected response %s, got %s", test.response, rr.Body.String())
			}
		})
	}
}

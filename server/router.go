package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// ForecastRoutes is the handler surface for the forecast endpoints.
type ForecastRoutes interface {
	GetWaveHeightForecast(w http.ResponseWriter, r *http.Request)
	GetWaveHeightForecastChart(w http.ResponseWriter, r *http.Request)
	InvalidateForecastCache(w http.ResponseWriter, r *http.Request)
}

// DashboardRoutes is the handler surface for the summary endpoints.
type DashboardRoutes interface {
	GetDaySummary(w http.ResponseWriter, r *http.Request)
	GetHourlyPattern(w http.ResponseWriter, r *http.Request)
	GetObservations(w http.ResponseWriter, r *http.Request)
	GetDates(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	forecastHandler ForecastRoutes
	summaryHandler  DashboardRoutes
	router          *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	forecastHandler ForecastRoutes,
	summaryHandler DashboardRoutes,
	router *mux.Router) *Router {
	return &Router{
		forecastHandler: forecastHandler,
		summaryHandler:  summaryHandler,
		router:          router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/v1/forecast/wave-height", r.forecastHandler.GetWaveHeightForecast).Methods("GET")
	r.router.HandleFunc("/v1/forecast/wave-height/chart", r.forecastHandler.GetWaveHeightForecastChart).Methods("GET")
	r.router.HandleFunc("/v1/forecast/cache/invalidate", r.forecastHandler.InvalidateForecastCache).Methods("POST")

	// expects ?date={YYYY-MM-DD}&time={HH:MM}&threshold={meters(float)}
	r.router.HandleFunc("/v1/summary", r.summaryHandler.GetDaySummary).Methods("GET")
	r.router.HandleFunc("/v1/summary/hourly", r.summaryHandler.GetHourlyPattern).Methods("GET")
	r.router.HandleFunc("/v1/observations", r.summaryHandler.GetObservations).Methods("GET")
	r.router.HandleFunc("/v1/dates", r.summaryHandler.GetDates).Methods("GET")

	r.router.HandleFunc("/ping", r.summaryHandler.Ping).Methods("GET")
}

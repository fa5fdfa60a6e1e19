package di

import (
	"context"
	"log"
	"time"

	"marine-server/api"
	"marine-server/api/stormglass"
	"marine-server/config"
	"marine-server/dao/redis"
	"marine-server/db"
	"marine-server/forecast"
	"marine-server/server"
	"marine-server/server/handlers"
	services "marine-server/service"
	"marine-server/store"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient            db.RedisClient
	RedisForecastDao       *redis.RedisForecastDAO
	MarineStore            *store.MarineStore
	StormGlassAPI          stormglass.StormGlassAPI
	ForecastService        *services.ForecastService
	SummaryService         *services.SummaryService
	IngestRefresherService *services.IngestRefresherService
	ForecastHandler        *handlers.ForecastHandler
	SummaryHandler         *handlers.SummaryHandler
	MuxRouter              *mux.Router
	Router                 *server.Router
	MarineHttpServer       *server.MarineHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	// Initialize cache client. Outside of prod an in-memory client keeps
	// local runs free of a Redis dependency.
	var redisClient db.RedisClient
	if env != "prod" {
		log.Printf("Using in-memory cache client")
		redisClient = db.NewMockRedisClient(ctx)
	} else {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     config.RedisAddress(),
			Password: config.REDIS_DB_PASSWORD,
			DB:       config.REDIS_DB,
		})
		redisClient = db.NewMarineRedisClient(ctx, redisInternalClient)
	}

	// Initialize forecast DAO on top of the cache
	redisForecastDao := redis.NewRedisForecastDAO(redisClient)

	// Initialize the observation store
	marineStore, err := store.NewMarineStore(config.MarineDBPath())
	if err != nil {
		log.Fatalf("Failed to open marine store: %v", err)
	}

	// Initialize StormGlassAPI - mocked outside of prod
	var stormGlassApiClient stormglass.StormGlassAPI
	if env != "prod" {
		stormGlassApiClient = stormglass.NewStormGlassApiClientMock()
		log.Printf("Using mock storm glass api")
	} else {
		log.Printf("Using prod storm glass api")
		httpClient := api.NewHTTPClient(config.STORM_GLASS_ENDPOINT_BASE_V2)

		realClient := stormglass.NewStormGlassApiClient(httpClient)
		realClient.SetCredentials(config.StormGlassAPIKey())

		stormGlassApiClient = stormglass.NewRateLimitedStormGlassClient(
			realClient,
			config.STORM_GLASS_REQUESTS_PER_SECOND,
			config.STORM_GLASS_BURST,
		)
	}

	// Initialize service layer
	forecastService := services.NewForecastService(
		marineStore,
		redisForecastDao,
		forecast.NewForecaster(forecast.Config{
			HorizonHours: config.FORECAST_HORIZON_HOURS,
			MinPoints:    config.FORECAST_MIN_POINTS_REQUIRED,
			ConfidenceZ:  config.FORECAST_CONFIDENCE_Z,
		}),
		config.FORECAST_HISTORY_WINDOW_DAYS,
		config.FORECAST_CACHE_TTL_SECONDS*time.Second,
	)
	summaryService := services.NewSummaryService(
		marineStore,
		redisForecastDao,
		config.SUMMARY_CACHE_TTL_SECONDS*time.Second,
	)
	ingestRefresherService := services.NewIngestRefresherService(
		marineStore,
		stormGlassApiClient,
		config.GetEnvFloat("STATION_LAT", config.DEFAULT_LAT),
		config.GetEnvFloat("STATION_LON", config.DEFAULT_LON),
		config.INGEST_FETCH_WINDOW_HOURS*time.Hour,
	)

	// Initialize handlers
	forecastHandler := handlers.NewForecastHandler(forecastService)
	summaryHandler := handlers.NewSummaryHandler(summaryService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(forecastHandler, summaryHandler, muxRouter)

	// Initialize marine server
	marineHttpServer := server.NewMarineHttpServer(router, muxRouter, config.HTTP_SERVER_ADDRESS)

	return &Container{
		RedisClient:            redisClient,
		RedisForecastDao:       redisForecastDao,
		MarineStore:            marineStore,
		StormGlassAPI:          stormGlassApiClient,
		ForecastService:        forecastService,
		SummaryService:         summaryService,
		IngestRefresherService: ingestRefresherService,
		ForecastHandler:        forecastHandler,
		SummaryHandler:         summaryHandler,
		MuxRouter:              muxRouter,
		Router:                 router,
		MarineHttpServer:       marineHttpServer,
	}
}

package main

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"marine-server/config"
	"marine-server/di"
	"marine-server/util"

	"github.com/joho/godotenv"
)

// seedStore loads the bundled observation fixture into an empty store so
// that local runs have data to chart before the first ingest cycle.
func seedStore(container *di.Container) {
	last, err := container.MarineStore.MaxTimestamp()
	if err != nil {
		log.Printf("[MAIN] Failed to check store contents, skipping seed: %v", err)
		return
	}
	if !last.IsZero() {
		return
	}

	seedPath := filepath.Join(config.RESOURCES_PATH_PREFIX, config.OBSERVATIONS_SEED_RESOURCE)
	readings, err := util.ReadMarineReadingsFromJSON(seedPath)
	if err != nil {
		log.Printf("[MAIN] No seed data loaded: %v", err)
		return
	}
	if err := container.MarineStore.UpsertReadings(readings); err != nil {
		log.Printf("[MAIN] Failed to seed store: %v", err)
		return
	}
	log.Printf("[MAIN] Seeded store with %d readings", len(readings))
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	env := config.GetEnv("APP_ENV", "dev")
	container := di.NewContainer(env)
	defer container.MarineStore.Close()

	if env != "prod" {
		seedStore(container)
	}

	ctx := context.Background()

	log.Println("[MAIN] Running initial ingest")
	if err := container.IngestRefresherService.RefreshMarineData(ctx); err != nil {
		log.Printf("[MAIN] Initial ingest failed: %v", err)
	}

	log.Println("[MAIN] Starting periodic ingest job")
	container.IngestRefresherService.StartPeriodicJob(ctx, config.INGEST_REFRESHER_SCHEDULE_MINUTES*time.Minute)

	log.Println("[MAIN] Starting server")
	container.MarineHttpServer.Start()
}

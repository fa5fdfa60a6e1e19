package services

import (
	"context"
	"log"
	"time"

	"marine-server/api/stormglass"
	"marine-server/store"
)

// IngestRefresherService periodically pulls fresh marine readings from the
// upstream point API into the observation store.
type IngestRefresherService struct {
	marineStore   *store.MarineStore
	stormGlassAPI stormglass.StormGlassAPI
	lat           float64
	lon           float64
	fetchWindow   time.Duration
	now           func() time.Time
}

// NewIngestRefresherService constructs a refresher for one station position.
func NewIngestRefresherService(
	marineStore *store.MarineStore,
	stormGlassAPI stormglass.StormGlassAPI,
	lat, lon float64,
	fetchWindow time.Duration,
) *IngestRefresherService {
	return &IngestRefresherService{
		marineStore:   marineStore,
		stormGlassAPI: stormGlassAPI,
		lat:           lat,
		lon:           lon,
		fetchWindow:   fetchWindow,
		now:           time.Now,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (ir *IngestRefresherService) StartPeriodicJob(ctx context.Context, interval time.Duration) {
	go ir.startPeriodicJob(ctx, interval)
}

func (ir *IngestRefresherService) startPeriodicJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[IngestRefresherService] Stopping periodic ingest job.")
			return
		case <-ticker.C:
			log.Println("[IngestRefresherService] Running periodic ingest job.")
			if err := ir.RefreshMarineData(ctx); err != nil {
				log.Printf("[IngestRefresherService] RefreshMarineData returned error: %v", err)
			} else {
				log.Println("[IngestRefresherService] RefreshMarineData completed successfully.")
			}
		}
	}
}

// RefreshMarineData fetches the window since the newest stored reading (at
// most fetchWindow back) and upserts it. Overlapping fetches are harmless:
// rows are keyed by timestamp.
func (ir *IngestRefresherService) RefreshMarineData(ctx context.Context) error {
	end := ir.now().UTC()
	start := end.Add(-ir.fetchWindow)

	last, err := ir.marineStore.MaxTimestamp()
	if err != nil {
		return err
	}
	if !last.IsZero() && last.After(start) {
		start = last
	}

	log.Printf("[IngestRefresherService] Fetching readings for (%.5f, %.5f) from %s to %s",
		ir.lat, ir.lon, start.Format(time.RFC3339), end.Format(time.RFC3339))

	readings, err := ir.stormGlassAPI.GetMarineReadings(ctx, ir.lat, ir.lon, start, end)
	if err != nil {
		return err
	}
	if len(readings) == 0 {
		log.Println("[IngestRefresherService] Upstream returned no readings for the window.")
		return nil
	}

	if err := ir.marineStore.UpsertReadings(readings); err != nil {
		return err
	}
	newest := readings[len(readings)-1]
	log.Printf("[IngestRefresherService] Upserted %d readings, newest: %s", len(readings), newest.ToString())
	return nil
}

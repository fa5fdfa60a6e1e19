package util

import (
	"encoding/json"
	"fmt"
	"os"

	"marine-server/models"
)

// ReadMarineReadingsFromJSON loads seed readings from a JSON file. Used to
// preload the observation store in non-prod environments without hitting the
// upstream API.
func ReadMarineReadingsFromJSON(path string) ([]models.MarineReading, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file %s: %w", path, err)
	}

	var readings []models.MarineReading
	if err := json.Unmarshal(data, &readings); err != nil {
		return nil, fmt.Errorf("parsing seed file %s: %w", path, err)
	}
	return readings, nil
}

package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadMarineReadingsFromJSON(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "seed_reader_test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "seed.json")
	content := `[
		{"timestamp": "2025-11-03T06:00:00Z", "wave_height": 2.4, "swell_height": 1.9,
		 "wind_speed": 7.0, "water_temperature": 16.1, "lat": 39.60475, "lon": -9.085443},
		{"timestamp": "2025-11-03T07:00:00Z", "wave_height": 2.6}
	]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write seed file: %v", err)
	}

	readings, err := ReadMarineReadingsFromJSON(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(readings) != 2 {
		t.Fatalf("Expected 2 readings, got %d", len(readings))
	}
	if readings[0].WaveHeight != 2.4 {
		t.Errorf("Expected wave height 2.4, got %f", readings[0].WaveHeight)
	}
	if readings[1].SwellHeight != 0 {
		t.Errorf("Expected missing swell to default to 0, got %f", readings[1].SwellHeight)
	}
}

func TestReadMarineReadingsFromJSON_MissingFile(t *testing.T) {
	if _, err := ReadMarineReadingsFromJSON("does/not/exist.json"); err == nil {
		t.Fatal("Expected an error for a missing file, got nil")
	}
}

func TestReadMarineReadingsFromJSON_MalformedJSON(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "seed_reader_bad")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "bad.json")
	if err := os.WriteFile(path, []byte(`{not json`), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if _, err := ReadMarineReadingsFromJSON(path); err == nil {
		t.Fatal("Expected a parse error, got nil")
	}
}

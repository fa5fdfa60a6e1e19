package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"marine-server/forecast"
	"marine-server/models"

	_ "modernc.org/sqlite"
)

// sqliteTimeLayout is SQLite's canonical datetime text format. Storing
// timestamps in this exact layout keeps string comparison, date() and the
// datetime() window cutoff all consistent.
const sqliteTimeLayout = "2006-01-02 15:04:05"

// MarineStore persists cleaned marine sensor readings in SQLite and serves
// the queries the dashboard and forecaster need. Timestamps are stored as
// UTC text in sqliteTimeLayout.
type MarineStore struct {
	db *sql.DB
}

// NewMarineStore opens (or creates) the database at dbPath and ensures the
// schema exists.
func NewMarineStore(dbPath string) (*MarineStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening marine database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS marine_clean (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp TEXT NOT NULL,
			wave_height REAL NOT NULL,
			swell_height REAL,
			wind_speed REAL,
			water_temperature REAL,
			lat REAL,
			lon REAL
		);
		CREATE UNIQUE INDEX IF NOT EXISTS idx_marine_clean_timestamp ON marine_clean(timestamp);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating marine_clean table: %w", err)
	}

	return &MarineStore{db: db}, nil
}

func (s *MarineStore) Close() error {
	return s.db.Close()
}

// UpsertReadings inserts readings, replacing any existing row with the same
// timestamp. Re-ingesting an overlapping window is therefore idempotent.
func (s *MarineStore) UpsertReadings(readings []models.MarineReading) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning upsert transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO marine_clean
			(timestamp, wave_height, swell_height, wind_speed, water_temperature, lat, lon)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(timestamp) DO UPDATE SET
			wave_height = excluded.wave_height,
			swell_height = excluded.swell_height,
			wind_speed = excluded.wind_speed,
			water_temperature = excluded.water_temperature,
			lat = excluded.lat,
			lon = excluded.lon
	`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("preparing upsert statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range readings {
		_, err := stmt.Exec(
			r.Timestamp.UTC().Format(sqliteTimeLayout),
			r.WaveHeight, r.SwellHeight, r.WindSpeed, r.WaterTemperature,
			r.Lat, r.Lon,
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("upserting reading at %s: %w", r.Timestamp, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing upsert transaction: %w", err)
	}
	return nil
}

// GetDateRange returns the min and max dates present, or nil when the table
// is empty.
func (s *MarineStore) GetDateRange() (*models.DateRange, error) {
	var minDate, maxDate sql.NullString
	err := s.db.QueryRow(
		`SELECT MIN(date(timestamp)), MAX(date(timestamp)) FROM marine_clean`,
	).Scan(&minDate, &maxDate)
	if err != nil {
		return nil, fmt.Errorf("querying date range: %w", err)
	}
	if !minDate.Valid || !maxDate.Valid {
		return nil, nil
	}
	return &models.DateRange{MinDate: minDate.String, MaxDate: maxDate.String}, nil
}

// LoadDay returns all readings for a date (YYYY-MM-DD), ordered by timestamp.
func (s *MarineStore) LoadDay(date string) ([]models.MarineReading, error) {
	rows, err := s.db.Query(`
		SELECT timestamp, wave_height, swell_height, wind_speed, water_temperature, lat, lon
		FROM marine_clean
		WHERE date(timestamp) = ?
		ORDER BY timestamp
	`, date)
	if err != nil {
		return nil, fmt.Errorf("querying readings for %s: %w", date, err)
	}
	defer rows.Close()

	return scanReadings(rows)
}

// LoadRecentWaveHeights returns wave-height observations for the last N days
// relative to the newest timestamp in the table, ordered by timestamp. The
// window anchors to the data, not the wall clock, so a stalled ingest still
// yields a full window.
func (s *MarineStore) LoadRecentWaveHeights(days int) ([]forecast.Observation, error) {
	rows, err := s.db.Query(`
		SELECT timestamp, wave_height
		FROM marine_clean
		WHERE timestamp >= (SELECT datetime(MAX(timestamp), ?) FROM marine_clean)
		ORDER BY timestamp
	`, fmt.Sprintf("-%d days", days))
	if err != nil {
		return nil, fmt.Errorf("querying recent wave heights: %w", err)
	}
	defer rows.Close()

	var observations []forecast.Observation
	for rows.Next() {
		var ts string
		var value float64
		if err := rows.Scan(&ts, &value); err != nil {
			return nil, fmt.Errorf("scanning wave height row: %w", err)
		}
		parsed, err := parseStoredTime(ts)
		if err != nil {
			return nil, fmt.Errorf("parsing timestamp %q: %w", ts, err)
		}
		observations = append(observations, forecast.Observation{Timestamp: parsed, Value: value})
	}
	return observations, rows.Err()
}

// MaxTimestamp returns the newest reading timestamp, or the zero time when
// the table is empty.
func (s *MarineStore) MaxTimestamp() (time.Time, error) {
	var ts sql.NullString
	err := s.db.QueryRow(`SELECT MAX(timestamp) FROM marine_clean`).Scan(&ts)
	if err != nil {
		return time.Time{}, fmt.Errorf("querying max timestamp: %w", err)
	}
	if !ts.Valid {
		return time.Time{}, nil
	}
	parsed, err := parseStoredTime(ts.String)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing max timestamp %q: %w", ts.String, err)
	}
	return parsed, nil
}

func scanReadings(rows *sql.Rows) ([]models.MarineReading, error) {
	var readings []models.MarineReading
	for rows.Next() {
		var ts string
		var r models.MarineReading
		err := rows.Scan(&ts, &r.WaveHeight, &r.SwellHeight, &r.WindSpeed,
			&r.WaterTemperature, &r.Lat, &r.Lon)
		if err != nil {
			return nil, fmt.Errorf("scanning reading row: %w", err)
		}
		parsed, err := parseStoredTime(ts)
		if err != nil {
			return nil, fmt.Errorf("parsing timestamp %q: %w", ts, err)
		}
		r.Timestamp = parsed
		readings = append(readings, r)
	}
	return readings, rows.Err()
}

func parseStoredTime(ts string) (time.Time, error) {
	return time.Parse(sqliteTimeLayout, ts)
}

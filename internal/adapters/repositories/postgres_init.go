package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createLocationsQuery := `
	CREATE TABLE IF NOT EXISTS store_locations (
		store_id TEXT PRIMARY KEY,
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL,
		city TEXT NOT NULL DEFAULT ''
	);
	`

	createTransfersQuery := `
	CREATE TABLE IF NOT EXISTS interstore_transfers (
		transfer_id BIGSERIAL PRIMARY KEY,
		product_id TEXT NOT NULL,
		from_store TEXT NOT NULL,
		to_store TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		road_km DOUBLE PRECISION NOT NULL DEFAULT 0
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_interstore_transfers_to_store
	ON interstore_transfers(to_store);
	`

	statements := []string{
		createLocationsQuery,
		createTransfersQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type LocationSeed struct {
	StoreID string  `json:"store_id"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	City    string  `json:"city"`
}

type TransferSeed struct {
	ProductID string  `json:"product_id"`
	FromStore string  `json:"from_store"`
	ToStore   string  `json:"to_store"`
	Quantity  int     `json:"quantity"`
	RoadKm    float64 `json:"road_km"`
}

type RouteDataSeed struct {
	Locations []LocationSeed `json:"locations"`
	Transfers []TransferSeed `json:"transfers"`
}

// Populate the database with store locations and pending transfers from a
// JSON file produced by the rebalancing pipeline.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed route data: read %q: %w", jsonPath, err)
	}

	var data RouteDataSeed
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("seed route data: parse json: %w", err)
	}

	for i, l := range data.Locations {
		if strings.TrimSpace(l.StoreID) == "" {
			return fmt.Errorf("seed route data: location at index %d: store_id cannot be empty", i+1)
		}
	}
	for i, t := range data.Transfers {
		if strings.TrimSpace(t.FromStore) == "" || strings.TrimSpace(t.ToStore) == "" {
			return fmt.Errorf("seed route data: transfer at index %d: from_store and to_store cannot be empty", i+1)
		}
		if t.Quantity < 0 {
			return fmt.Errorf("seed route data: transfer at index %d: negative quantity %d", i+1, t.Quantity)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed route data: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	locStmt, err := tx.Prepare(`
	INSERT INTO store_locations (store_id, lat, lon, city)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (store_id) DO UPDATE
	SET lat = EXCLUDED.lat,
		lon = EXCLUDED.lon,
		city = EXCLUDED.city;
	`)
	if err != nil {
		return fmt.Errorf("seed route data: prepare location insert: %w", err)
	}
	defer locStmt.Close()

	for _, l := range data.Locations {
		if _, err := locStmt.Exec(l.StoreID, l.Lat, l.Lon, l.City); err != nil {
			return fmt.Errorf("seed route data: insert store_id=%q: %w", l.StoreID, err)
		}
	}

	// Transfers are replaced wholesale: the seed file is the authoritative
	// snapshot of the pending transfer list.
	if _, err := tx.Exec(`DELETE FROM interstore_transfers;`); err != nil {
		return fmt.Errorf("seed route data: clear transfers: %w", err)
	}

	trStmt, err := tx.Prepare(`
	INSERT INTO interstore_transfers (product_id, from_store, to_store, quantity, road_km)
	VALUES ($1, $2, $3, $4, $5);
	`)
	if err != nil {
		return fmt.Errorf("seed route data: prepare transfer insert: %w", err)
	}
	defer trStmt.Close()

	for _, t := range data.Transfers {
		if _, err := trStmt.Exec(t.ProductID, t.FromStore, t.ToStore, t.Quantity, t.RoadKm); err != nil {
			return fmt.Errorf("seed route data: insert transfer %q -> %q: %w", t.FromStore, t.ToStore, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed route data: commit tx: %w", err)
	}

	return nil
}

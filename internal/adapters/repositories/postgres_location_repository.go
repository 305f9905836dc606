package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"transfer-route-service/internal/domain"
)

// Postgres-backed implementation of the LocationRepository port.
type PostgresLocationRepository struct{ DB *sql.DB }

func NewPostgresLocationRepository(db *sql.DB) *PostgresLocationRepository {
	return &PostgresLocationRepository{DB: db}
}

// Return every geocoded store location keyed by store id.
func (s *PostgresLocationRepository) ListLocations(ctx context.Context) (map[domain.StoreID]domain.Location, error) {
	if s.DB == nil {
		return nil, errors.New("location repository: DB is nil")
	}

	query := `
	SELECT
		store_id,
		lat,
		lon,
		city
	FROM store_locations;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list locations: query store_locations table: %w", err)
	}
	defer rows.Close()

	locations := make(map[domain.StoreID]domain.Location, 32)
	for rows.Next() {
		var (
			id, city string
			lat, lon float64
		)
		if err := rows.Scan(&id, &lat, &lon, &city); err != nil {
			return nil, fmt.Errorf("list locations: scan row: %w", err)
		}
		locations[domain.StoreID(id)] = domain.Location{
			ID:   domain.StoreID(id),
			Lat:  lat,
			Lon:  lon,
			City: city,
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list locations: row iteration: %w", err)
	}

	return locations, nil
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"transfer-route-service/internal/domain"
)

// Postgres-backed implementation of the TransferRepository port.
type PostgresTransferRepository struct{ DB *sql.DB }

func NewPostgresTransferRepository(db *sql.DB) *PostgresTransferRepository {
	return &PostgresTransferRepository{DB: db}
}

// Return the distinct destination stores that have pending transfers.
func (s *PostgresTransferRepository) ListDestinations(ctx context.Context) ([]domain.StoreID, error) {
	if s.DB == nil {
		return nil, errors.New("transfer repository: DB is nil")
	}

	query := `
	SELECT DISTINCT to_store
	FROM interstore_transfers
	ORDER BY to_store;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list destinations: query interstore_transfers table: %w", err)
	}
	defer rows.Close()

	destinations := make([]domain.StoreID, 0, 16)
	for rows.Next() {
		var dest string
		if err := rows.Scan(&dest); err != nil {
			return nil, fmt.Errorf("list destinations: scan row: %w", err)
		}
		destinations = append(destinations, domain.StoreID(dest))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list destinations: row iteration: %w", err)
	}

	return destinations, nil
}

// Return all transfers headed to one destination. The transfer_id ordering
// keeps origin enumeration stable across runs, which the visiting-order
// tie-break relies on.
func (s *PostgresTransferRepository) ListTransfers(ctx context.Context, destination domain.StoreID) ([]domain.Transfer, error) {
	if s.DB == nil {
		return nil, errors.New("transfer repository: DB is nil")
	}

	query := `
	SELECT
		product_id,
		from_store,
		quantity,
		road_km
	FROM interstore_transfers
	WHERE to_store = $1
	ORDER BY transfer_id;
	`
	rows, err := s.DB.QueryContext(ctx, query, string(destination))
	if err != nil {
		return nil, fmt.Errorf("list transfers: query interstore_transfers table: %w", err)
	}
	defer rows.Close()

	transfers := make([]domain.Transfer, 0, 32)
	for rows.Next() {
		var (
			productID, fromStore string
			quantity             int
			roadKm               float64
		)
		if err := rows.Scan(&productID, &fromStore, &quantity, &roadKm); err != nil {
			return nil, fmt.Errorf("list transfers: scan row: %w", err)
		}
		transfers = append(transfers, domain.Transfer{
			ProductID: productID,
			FromStore: domain.StoreID(fromStore),
			Quantity:  quantity,
			RoadKm:    roadKm,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list transfers: row iteration: %w", err)
	}

	return transfers, nil
}

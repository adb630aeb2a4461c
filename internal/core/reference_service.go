package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ReferenceService supplies read-only reference data from the warehouse.
// Empty result sets are valid ("no data available"), never errors.
type ReferenceService interface {
	// GetDealers returns all dealers with non-null code and name, ordered by name.
	GetDealers(ctx context.Context) ([]Dealer, error)

	// GetVehicles returns the live vehicle catalog: publishable vehicles in
	// status Published or Being Sold, ordered by code.
	GetVehicles(ctx context.Context) ([]Vehicle, error)
}

type referenceService struct {
	pool *pgxpool.Pool
}

func NewReferenceService(pool *pgxpool.Pool) ReferenceService {
	return &referenceService{pool: pool}
}

func (s *referenceService) GetDealers(ctx context.Context) ([]Dealer, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT DISTINCT dealer_code, dealer_name
		FROM dealers
		WHERE dealer_code IS NOT NULL AND dealer_name IS NOT NULL
		ORDER BY dealer_name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query dealers: %w", err)
	}
	defer rows.Close()

	var dealers []Dealer
	for rows.Next() {
		var d Dealer
		if err := rows.Scan(&d.Code, &d.Name); err != nil {
			return nil, fmt.Errorf("failed to scan dealer: %w", err)
		}
		dealers = append(dealers, d)
	}
	return dealers, rows.Err()
}

func (s *referenceService) GetVehicles(ctx context.Context) ([]Vehicle, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT vehicle_code,
		       COALESCE(make, 'Unknown'),
		       COALESCE(model, 'Unknown'),
		       COALESCE(year, 0)
		FROM vehicles
		WHERE current_status IN ('Published', 'Being Sold')
		ORDER BY vehicle_code
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicle catalog: %w", err)
	}
	defer rows.Close()

	var vehicles []Vehicle
	for rows.Next() {
		var v Vehicle
		if err := rows.Scan(&v.Code, &v.Make, &v.Model, &v.Year); err != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

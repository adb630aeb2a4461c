package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DiscountService reads the discount snapshots from the warehouse and resolves
// submission candidates. Snapshots are refreshed by an external pipeline; each
// read is a point-in-time view.
type DiscountService interface {
	GetEligibility(ctx context.Context) ([]DiscountEligibility, error)
	GetQuotes(ctx context.Context) ([]DiscountQuote, error)

	// GetCandidates reads both snapshots and returns their intersection in
	// eligibility order.
	GetCandidates(ctx context.Context) ([]DiscountCandidate, error)

	// GetCandidate returns the candidate for one vehicle, or NotFoundError if
	// the vehicle is not currently a valid submission candidate.
	GetCandidate(ctx context.Context, vehicleCode string) (*DiscountCandidate, error)
}

type discountService struct {
	pool *pgxpool.Pool
}

func NewDiscountService(pool *pgxpool.Pool) DiscountService {
	return &discountService{pool: pool}
}

func (s *discountService) GetEligibility(ctx context.Context) ([]DiscountEligibility, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT vehicle_code, days_in_consignment, showroom_displayed_count,
		       queue_count, eligible, status
		FROM discount_eligibility
		ORDER BY vehicle_code
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query discount eligibility: %w", err)
	}
	defer rows.Close()

	var snapshot []DiscountEligibility
	for rows.Next() {
		var e DiscountEligibility
		if err := rows.Scan(&e.VehicleCode, &e.DaysInConsignment, &e.ShowroomDisplayedCount,
			&e.QueueCount, &e.Eligible, &e.Status); err != nil {
			return nil, fmt.Errorf("failed to scan discount eligibility: %w", err)
		}
		snapshot = append(snapshot, e)
	}
	return snapshot, rows.Err()
}

func (s *discountService) GetQuotes(ctx context.Context) ([]DiscountQuote, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT vehicle_code, flash_price, consignment_price, speed_discount_price
		FROM discount_quotes
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query discount quotes: %w", err)
	}
	defer rows.Close()

	var quotes []DiscountQuote
	for rows.Next() {
		var q DiscountQuote
		if err := rows.Scan(&q.VehicleCode, &q.FlashPrice, &q.ConsignmentPrice, &q.SpeedDiscountPrice); err != nil {
			return nil, fmt.Errorf("failed to scan discount quote: %w", err)
		}
		quotes = append(quotes, q)
	}
	return quotes, rows.Err()
}

func (s *discountService) GetCandidates(ctx context.Context) ([]DiscountCandidate, error) {
	eligibility, err := s.GetEligibility(ctx)
	if err != nil {
		return nil, err
	}
	quotes, err := s.GetQuotes(ctx)
	if err != nil {
		return nil, err
	}
	return ResolveDiscountCandidates(eligibility, quotes), nil
}

func (s *discountService) GetCandidate(ctx context.Context, vehicleCode string) (*DiscountCandidate, error) {
	var e DiscountEligibility
	err := s.pool.QueryRow(ctx, `
		SELECT vehicle_code, days_in_consignment, showroom_displayed_count,
		       queue_count, eligible, status
		FROM discount_eligibility
		WHERE vehicle_code = $1
	`, vehicleCode).Scan(&e.VehicleCode, &e.DaysInConsignment, &e.ShowroomDisplayedCount,
		&e.QueueCount, &e.Eligible, &e.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{ID: vehicleCode}
		}
		return nil, fmt.Errorf("failed to fetch eligibility for %s: %w", vehicleCode, err)
	}
	if !e.Eligible {
		return nil, validationErr("vehicle_code", "vehicle %s is not eligible for discount (%s)", vehicleCode, e.Status)
	}

	var q DiscountQuote
	err = s.pool.QueryRow(ctx, `
		SELECT vehicle_code, flash_price, consignment_price, speed_discount_price
		FROM discount_quotes
		WHERE vehicle_code = $1
	`, vehicleCode).Scan(&q.VehicleCode, &q.FlashPrice, &q.ConsignmentPrice, &q.SpeedDiscountPrice)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, validationErr("vehicle_code", "vehicle %s has no discount quote", vehicleCode)
		}
		return nil, fmt.Errorf("failed to fetch quote for %s: %w", vehicleCode, err)
	}

	return &DiscountCandidate{VehicleCode: vehicleCode, Eligibility: e, Quote: q}, nil
}

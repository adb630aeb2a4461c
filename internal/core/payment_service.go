package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PaymentService persists payment records in the warehouse and drives the
// pending → sold/returned lifecycle.
type PaymentService interface {
	// CreatePayment validates the input and inserts a new pending record.
	// Validation failures abort before any write.
	CreatePayment(ctx context.Context, in PaymentInput) (*PaymentRecord, error)

	// MarkSold transitions a pending record to sold as of today.
	// Returns InvalidStateError if the record is already terminal.
	MarkSold(ctx context.Context, id string) (*PaymentRecord, error)

	// MarkReturned transitions a pending record to returned as of today.
	// Returns InvalidStateError if the record is already terminal.
	MarkReturned(ctx context.Context, id string) (*PaymentRecord, error)

	// GetPayment fetches a single record by ID.
	GetPayment(ctx context.Context, id string) (*PaymentRecord, error)

	// GetPending returns records with neither terminal date set,
	// newest payment date first.
	GetPending(ctx context.Context) ([]PaymentRecord, error)

	// GetCompleted returns up to limit sold or returned records, most
	// recently completed first.
	GetCompleted(ctx context.Context, limit int) ([]PaymentRecord, error)
}

type paymentService struct {
	pool *pgxpool.Pool
}

func NewPaymentService(pool *pgxpool.Pool) PaymentService {
	return &paymentService{pool: pool}
}

const paymentColumns = `
	id, vehicle_code, dealer_code, payment_date::text, payment_amount,
	sold_date::text, returned, return_date::text, request_id, submitted_by, created_at`

func (s *paymentService) CreatePayment(ctx context.Context, in PaymentInput) (*PaymentRecord, error) {
	record, err := NewPaymentRecord(in)
	if err != nil {
		return nil, err
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO showroom_payments
			(id, vehicle_code, dealer_code, payment_date, payment_amount,
			 sold_date, returned, return_date, request_id, submitted_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, record.ID, record.VehicleCode, record.DealerCode, record.PaymentDate, record.Amount,
		record.SoldDate, record.Returned, record.ReturnDate, record.RequestID, record.SubmittedBy, record.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert payment record: %w", err)
	}
	return record, nil
}

// MarkSold is a compare-and-swap: the WHERE clause requires the row to still
// be pending, so two concurrent transitions cannot both land — the loser sees
// zero rows affected and gets InvalidStateError instead of silently
// overwriting the winner's status.
func (s *paymentService) MarkSold(ctx context.Context, id string) (*PaymentRecord, error) {
	tag, err := s.pool.Exec(ctx, `
		UPDATE showroom_payments
		SET sold_date = CURRENT_DATE
		WHERE id = $1 AND sold_date IS NULL AND return_date IS NULL
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to mark payment %s sold: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, s.transitionConflict(ctx, id)
	}
	return s.GetPayment(ctx, id)
}

// MarkReturned uses the same compare-and-swap guard as MarkSold.
func (s *paymentService) MarkReturned(ctx context.Context, id string) (*PaymentRecord, error) {
	tag, err := s.pool.Exec(ctx, `
		UPDATE showroom_payments
		SET returned = TRUE, return_date = CURRENT_DATE
		WHERE id = $1 AND sold_date IS NULL AND return_date IS NULL
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to mark payment %s returned: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, s.transitionConflict(ctx, id)
	}
	return s.GetPayment(ctx, id)
}

// transitionConflict distinguishes "no such record" from "record already
// terminal" after a CAS update matched nothing.
func (s *paymentService) transitionConflict(ctx context.Context, id string) error {
	record, err := s.GetPayment(ctx, id)
	if err != nil {
		return err
	}
	return &InvalidStateError{ID: id, Status: record.Status()}
}

func (s *paymentService) GetPayment(ctx context.Context, id string) (*PaymentRecord, error) {
	var p PaymentRecord
	err := s.pool.QueryRow(ctx,
		"SELECT"+paymentColumns+" FROM showroom_payments WHERE id = $1", id,
	).Scan(
		&p.ID, &p.VehicleCode, &p.DealerCode, &p.PaymentDate, &p.Amount,
		&p.SoldDate, &p.Returned, &p.ReturnDate, &p.RequestID, &p.SubmittedBy, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("failed to fetch payment %s: %w", id, err)
	}
	return &p, nil
}

func (s *paymentService) GetPending(ctx context.Context) ([]PaymentRecord, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT`+paymentColumns+`
		FROM showroom_payments
		WHERE sold_date IS NULL AND return_date IS NULL
		ORDER BY payment_date DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending payments: %w", err)
	}
	defer rows.Close()
	return scanPayments(rows)
}

func (s *paymentService) GetCompleted(ctx context.Context, limit int) ([]PaymentRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.pool.Query(ctx, `
		SELECT`+paymentColumns+`
		FROM showroom_payments
		WHERE sold_date IS NOT NULL OR return_date IS NOT NULL
		ORDER BY COALESCE(sold_date, return_date) DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query completed payments: %w", err)
	}
	defer rows.Close()
	return scanPayments(rows)
}

func scanPayments(rows pgx.Rows) ([]PaymentRecord, error) {
	var records []PaymentRecord
	for rows.Next() {
		var p PaymentRecord
		if err := rows.Scan(
			&p.ID, &p.VehicleCode, &p.DealerCode, &p.PaymentDate, &p.Amount,
			&p.SoldDate, &p.Returned, &p.ReturnDate, &p.RequestID, &p.SubmittedBy, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payment record: %w", err)
		}
		records = append(records, p)
	}
	return records, rows.Err()
}

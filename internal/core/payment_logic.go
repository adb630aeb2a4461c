package core

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentInput is the raw form input for a new payment record.
type PaymentInput struct {
	VehicleCode string
	DealerCode  string
	PaymentDate string // YYYY-MM-DD; empty means today
	Amount      decimal.Decimal
	SubmittedBy string
}

// Normalize cleans up form input before validation: trims whitespace and
// defaults an empty payment date to today.
func (in *PaymentInput) Normalize() {
	in.VehicleCode = strings.TrimSpace(in.VehicleCode)
	in.DealerCode = strings.TrimSpace(in.DealerCode)
	in.PaymentDate = strings.TrimSpace(in.PaymentDate)
	in.SubmittedBy = strings.TrimSpace(in.SubmittedBy)

	if in.PaymentDate == "" {
		in.PaymentDate = Today()
	}
}

// Validate enforces the creation preconditions. It returns a ValidationError
// on the first violation; callers must not persist anything when it fails.
func (in *PaymentInput) Validate() error {
	if in.VehicleCode == "" {
		return validationErr("vehicle_code", "vehicle code is required")
	}
	if in.DealerCode == "" {
		return validationErr("dealer_code", "dealer code is required")
	}
	if _, err := time.Parse(dateLayout, in.PaymentDate); err != nil {
		return validationErr("payment_date", "invalid date %q, expected YYYY-MM-DD", in.PaymentDate)
	}
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return validationErr("payment_amount", "amount must be > 0, got %s", in.Amount)
	}
	if !IsKnownSubmitter(in.SubmittedBy) {
		return validationErr("submitted_by", "unknown submitter %q", in.SubmittedBy)
	}
	return nil
}

// NewPaymentRecord validates the input and builds a pending record with a
// fresh random ID. SoldDate, Returned and ReturnDate start unset.
func NewPaymentRecord(in PaymentInput) (*PaymentRecord, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return &PaymentRecord{
		ID:          uuid.NewString(),
		VehicleCode: in.VehicleCode,
		DealerCode:  in.DealerCode,
		PaymentDate: in.PaymentDate,
		Amount:      in.Amount,
		SubmittedBy: in.SubmittedBy,
		CreatedAt:   time.Now(),
	}, nil
}

// MarkSold transitions a pending record to sold as of soldDate.
// Non-pending records yield InvalidStateError.
func (p *PaymentRecord) MarkSold(soldDate string) error {
	if st := p.Status(); st != StatusPending {
		return &InvalidStateError{ID: p.ID, Status: st}
	}
	p.SoldDate = &soldDate
	return nil
}

// MarkReturned transitions a pending record to returned as of returnDate.
// Non-pending records yield InvalidStateError.
func (p *PaymentRecord) MarkReturned(returnDate string) error {
	if st := p.Status(); st != StatusPending {
		return &InvalidStateError{ID: p.ID, Status: st}
	}
	t := true
	p.Returned = &t
	p.ReturnDate = &returnDate
	return nil
}

// Today returns the current calendar date in the record date format.
func Today() string {
	return time.Now().Format(dateLayout)
}

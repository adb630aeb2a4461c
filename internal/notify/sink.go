// Package notify delivers fire-and-forget event notifications to the
// downstream workflow-automation webhook. Delivery is best-effort and
// single-attempt: a failed publish is reported to the caller as a warning,
// never escalated into a store failure.
package notify

import (
	"context"

	"showroom-payments/internal/core"
)

// Event kinds, carried in the communication_type field of every payload.
const (
	KindPaid     = "paid"
	KindReturned = "returned"
	KindDiscount = "discount"
)

// Sink accepts event notifications. Publish returns an error only to signal a
// delivery failure; callers treat it as a soft warning.
type Sink interface {
	Publish(ctx context.Context, event any) error
}

// PaidEvent is emitted after a payment record has been persisted.
type PaidEvent struct {
	ID                string  `json:"id"`
	VehicleCode       string  `json:"vehicle_code"`
	DealerCode        string  `json:"dealer_code"`
	PaymentDate       string  `json:"payment_date"`
	PaymentAmount     float64 `json:"payment_amount"`
	SubmittedBy       string  `json:"submitted_by"`
	CommunicationType string  `json:"communication_type"`
}

// NewPaidEvent builds the paid payload from a persisted record.
func NewPaidEvent(p *core.PaymentRecord) PaidEvent {
	return PaidEvent{
		ID:                p.ID,
		VehicleCode:       p.VehicleCode,
		DealerCode:        p.DealerCode,
		PaymentDate:       p.PaymentDate,
		PaymentAmount:     p.Amount.InexactFloat64(),
		SubmittedBy:       p.SubmittedBy,
		CommunicationType: KindPaid,
	}
}

// ReturnedEvent is emitted after a record has transitioned to returned.
type ReturnedEvent struct {
	ID                string  `json:"id"`
	VehicleCode       string  `json:"vehicle_code"`
	DealerCode        string  `json:"dealer_code"`
	PaymentDate       string  `json:"payment_date"`
	PaymentAmount     float64 `json:"payment_amount"`
	ReturnDate        string  `json:"return_date"`
	Returned          bool    `json:"returned"`
	CommunicationType string  `json:"communication_type"`
}

// NewReturnedEvent builds the returned payload from a transitioned record.
func NewReturnedEvent(p *core.PaymentRecord) ReturnedEvent {
	returnDate := ""
	if p.ReturnDate != nil {
		returnDate = *p.ReturnDate
	}
	return ReturnedEvent{
		ID:                p.ID,
		VehicleCode:       p.VehicleCode,
		DealerCode:        p.DealerCode,
		PaymentDate:       p.PaymentDate,
		PaymentAmount:     p.Amount.InexactFloat64(),
		ReturnDate:        returnDate,
		Returned:          true,
		CommunicationType: KindReturned,
	}
}

// DiscountEvent forwards a discount submission to the workflow. No durable
// record of the submission is kept on our side.
type DiscountEvent struct {
	core.DiscountSubmission
	CommunicationType string `json:"communication_type"`
}

// NewDiscountEvent wraps a submission with its event kind.
func NewDiscountEvent(sub core.DiscountSubmission) DiscountEvent {
	return DiscountEvent{DiscountSubmission: sub, CommunicationType: KindDiscount}
}

package app

import (
	"context"
	"errors"
)

// ErrDeliveryFailed marks an operation whose only effect was a webhook
// delivery that did not succeed. Persisted operations never return it; their
// delivery failures surface as result warnings instead.
var ErrDeliveryFailed = errors.New("notification delivery failed")

// ApplicationService is the single interface all UI adapters call. It
// decouples presentation from business logic: implementations contain no
// rendering concerns and own the "persist first, notify best-effort" policy.
type ApplicationService interface {
	// ListDealers returns the dealer reference list, ordered by name.
	ListDealers(ctx context.Context) (*DealerListResult, error)

	// ListVehicles returns the live vehicle catalog for the form dropdown.
	ListVehicles(ctx context.Context) (*VehicleListResult, error)

	// SubmitPayment validates and persists a new pending payment record, then
	// emits a paid event. A failed emit does not fail the submission — the
	// result carries a warning and the persisted record.
	SubmitPayment(ctx context.Context, req SubmitPaymentRequest) (*PaymentResult, error)

	// GetPayment returns a single payment record by ID.
	GetPayment(ctx context.Context, id string) (*PaymentResult, error)

	// ListPendingPayments returns all pending records plus summary metrics.
	ListPendingPayments(ctx context.Context) (*PaymentListResult, error)

	// ListCompletedPayments returns the most recent sold/returned records.
	ListCompletedPayments(ctx context.Context, limit int) (*PaymentListResult, error)

	// MarkSold transitions a pending record to sold. No event is emitted for
	// this transition.
	MarkSold(ctx context.Context, id string) (*PaymentResult, error)

	// MarkReturned transitions a pending record to returned, then emits a
	// returned event. The committed transition stands even if the emit fails;
	// the result carries a warning in that case.
	MarkReturned(ctx context.Context, id string) (*PaymentResult, error)

	// ListDiscountCandidates returns vehicles that are both eligible and
	// quoted, in eligibility order.
	ListDiscountCandidates(ctx context.Context) (*DiscountCandidatesResult, error)

	// SubmitDiscount forwards a discount submission for one candidate vehicle
	// to the workflow sink. Nothing is persisted locally; a delivery failure
	// fails the operation with ErrDeliveryFailed.
	SubmitDiscount(ctx context.Context, req SubmitDiscountRequest) (*DiscountSubmissionResult, error)
}

package app

import (
	"showroom-payments/internal/core"

	"github.com/shopspring/decimal"
)

// DealerListResult is returned by ListDealers.
type DealerListResult struct {
	Dealers []core.Dealer `json:"dealers"`
}

// VehicleListResult is returned by ListVehicles.
type VehicleListResult struct {
	Vehicles []core.Vehicle `json:"vehicles"`
}

// PaymentResult is returned by payment lifecycle operations. NotifyWarning is
// non-empty when the operation itself succeeded but the follow-up webhook
// delivery did not.
type PaymentResult struct {
	Payment       *core.PaymentRecord `json:"payment"`
	Status        core.PaymentStatus  `json:"status"`
	NotifyWarning string              `json:"notify_warning,omitempty"`
}

// PendingSummary carries the metrics shown above the pending list.
type PendingSummary struct {
	Count         int             `json:"count"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	UniqueDealers int             `json:"unique_dealers"`
}

// PaymentListResult is returned by the list queries. Summary is only set for
// pending lists.
type PaymentListResult struct {
	Payments []core.PaymentRecord `json:"payments"`
	Summary  *PendingSummary      `json:"summary,omitempty"`
}

// DiscountCandidatesResult is returned by ListDiscountCandidates.
type DiscountCandidatesResult struct {
	Candidates []core.DiscountCandidate `json:"candidates"`
}

// DiscountSubmissionResult echoes the payload that was delivered to the sink.
type DiscountSubmissionResult struct {
	Submission core.DiscountSubmission `json:"submission"`
}

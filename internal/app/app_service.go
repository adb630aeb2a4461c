package app

import (
	"context"
	"fmt"
	"log"

	"showroom-payments/internal/core"
	"showroom-payments/internal/notify"

	"github.com/shopspring/decimal"
)

type appService struct {
	payments  core.PaymentService
	reference core.ReferenceService
	discounts core.DiscountService
	sink      notify.Sink
}

// NewAppService constructs an appService that satisfies ApplicationService.
func NewAppService(
	payments core.PaymentService,
	reference core.ReferenceService,
	discounts core.DiscountService,
	sink notify.Sink,
) ApplicationService {
	return &appService{
		payments:  payments,
		reference: reference,
		discounts: discounts,
		sink:      sink,
	}
}

func (s *appService) ListDealers(ctx context.Context) (*DealerListResult, error) {
	dealers, err := s.reference.GetDealers(ctx)
	if err != nil {
		return nil, err
	}
	return &DealerListResult{Dealers: dealers}, nil
}

func (s *appService) ListVehicles(ctx context.Context) (*VehicleListResult, error) {
	vehicles, err := s.reference.GetVehicles(ctx)
	if err != nil {
		return nil, err
	}
	return &VehicleListResult{Vehicles: vehicles}, nil
}

// SubmitPayment persists first, notifies second. The two outcomes are
// independent: a webhook failure after a committed insert is reported as a
// warning on the result, never as an operation error.
func (s *appService) SubmitPayment(ctx context.Context, req SubmitPaymentRequest) (*PaymentResult, error) {
	record, err := s.payments.CreatePayment(ctx, core.PaymentInput{
		VehicleCode: req.VehicleCode,
		DealerCode:  req.DealerCode,
		PaymentDate: req.PaymentDate,
		Amount:      req.Amount,
		SubmittedBy: req.SubmittedBy,
	})
	if err != nil {
		return nil, err
	}

	result := &PaymentResult{Payment: record, Status: record.Status()}
	if err := s.sink.Publish(ctx, notify.NewPaidEvent(record)); err != nil {
		log.Printf("paid event for %s not delivered: %v", record.ID, err)
		result.NotifyWarning = fmt.Sprintf("payment recorded, but webhook notification failed: %v", err)
	}
	return result, nil
}

func (s *appService) GetPayment(ctx context.Context, id string) (*PaymentResult, error) {
	record, err := s.payments.GetPayment(ctx, id)
	if err != nil {
		return nil, err
	}
	return &PaymentResult{Payment: record, Status: record.Status()}, nil
}

func (s *appService) ListPendingPayments(ctx context.Context) (*PaymentListResult, error) {
	records, err := s.payments.GetPending(ctx)
	if err != nil {
		return nil, err
	}

	summary := &PendingSummary{Count: len(records)}
	dealers := make(map[string]struct{})
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Amount)
		dealers[r.DealerCode] = struct{}{}
	}
	summary.TotalAmount = total
	summary.UniqueDealers = len(dealers)

	return &PaymentListResult{Payments: records, Summary: summary}, nil
}

func (s *appService) ListCompletedPayments(ctx context.Context, limit int) (*PaymentListResult, error) {
	records, err := s.payments.GetCompleted(ctx, limit)
	if err != nil {
		return nil, err
	}
	return &PaymentListResult{Payments: records}, nil
}

func (s *appService) MarkSold(ctx context.Context, id string) (*PaymentResult, error) {
	record, err := s.payments.MarkSold(ctx, id)
	if err != nil {
		return nil, err
	}
	// Asymmetric with MarkReturned: sold transitions emit no event.
	return &PaymentResult{Payment: record, Status: record.Status()}, nil
}

func (s *appService) MarkReturned(ctx context.Context, id string) (*PaymentResult, error) {
	record, err := s.payments.MarkReturned(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &PaymentResult{Payment: record, Status: record.Status()}
	if err := s.sink.Publish(ctx, notify.NewReturnedEvent(record)); err != nil {
		log.Printf("returned event for %s not delivered: %v", record.ID, err)
		result.NotifyWarning = fmt.Sprintf("return recorded, but webhook notification failed: %v", err)
	}
	return result, nil
}

func (s *appService) ListDiscountCandidates(ctx context.Context) (*DiscountCandidatesResult, error) {
	candidates, err := s.discounts.GetCandidates(ctx)
	if err != nil {
		return nil, err
	}
	return &DiscountCandidatesResult{Candidates: candidates}, nil
}

// SubmitDiscount has no persistence leg: the webhook IS the operation, so a
// delivery failure fails the whole submission.
func (s *appService) SubmitDiscount(ctx context.Context, req SubmitDiscountRequest) (*DiscountSubmissionResult, error) {
	if req.DealerCode == "" {
		return nil, &core.ValidationError{Field: "dealer_code", Msg: "dealer code is required"}
	}

	candidate, err := s.discounts.GetCandidate(ctx, req.VehicleCode)
	if err != nil {
		return nil, err
	}

	submission := core.BuildDiscountSubmission(req.VehicleCode, req.DealerCode, candidate.Eligibility, candidate.Quote)
	if err := s.sink.Publish(ctx, notify.NewDiscountEvent(submission)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	return &DiscountSubmissionResult{Submission: submission}, nil
}

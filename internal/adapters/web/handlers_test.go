package web_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"showroom-payments/internal/adapters/web"
	"showroom-payments/internal/app"
	"showroom-payments/internal/core"

	"github.com/shopspring/decimal"
)

// stubApp implements app.ApplicationService with per-method function hooks so
// each test controls exactly the calls it expects.
type stubApp struct {
	submitPayment  func(ctx context.Context, req app.SubmitPaymentRequest) (*app.PaymentResult, error)
	getPayment     func(ctx context.Context, id string) (*app.PaymentResult, error)
	markSold       func(ctx context.Context, id string) (*app.PaymentResult, error)
	markReturned   func(ctx context.Context, id string) (*app.PaymentResult, error)
	listCompleted  func(ctx context.Context, limit int) (*app.PaymentListResult, error)
	submitDiscount func(ctx context.Context, req app.SubmitDiscountRequest) (*app.DiscountSubmissionResult, error)
}

func (s *stubApp) ListDealers(ctx context.Context) (*app.DealerListResult, error) {
	return &app.DealerListResult{Dealers: []core.Dealer{{Code: "D-5", Name: "Alamal Motors"}}}, nil
}

func (s *stubApp) ListVehicles(ctx context.Context) (*app.VehicleListResult, error) {
	return &app.VehicleListResult{}, nil
}

func (s *stubApp) SubmitPayment(ctx context.Context, req app.SubmitPaymentRequest) (*app.PaymentResult, error) {
	return s.submitPayment(ctx, req)
}

func (s *stubApp) GetPayment(ctx context.Context, id string) (*app.PaymentResult, error) {
	return s.getPayment(ctx, id)
}

func (s *stubApp) ListPendingPayments(ctx context.Context) (*app.PaymentListResult, error) {
	return &app.PaymentListResult{Summary: &app.PendingSummary{}}, nil
}

func (s *stubApp) ListCompletedPayments(ctx context.Context, limit int) (*app.PaymentListResult, error) {
	return s.listCompleted(ctx, limit)
}

func (s *stubApp) MarkSold(ctx context.Context, id string) (*app.PaymentResult, error) {
	return s.markSold(ctx, id)
}

func (s *stubApp) MarkReturned(ctx context.Context, id string) (*app.PaymentResult, error) {
	return s.markReturned(ctx, id)
}

func (s *stubApp) ListDiscountCandidates(ctx context.Context) (*app.DiscountCandidatesResult, error) {
	return &app.DiscountCandidatesResult{}, nil
}

func (s *stubApp) SubmitDiscount(ctx context.Context, req app.SubmitDiscountRequest) (*app.DiscountSubmissionResult, error) {
	return s.submitDiscount(ctx, req)
}

func serve(t *testing.T, svc app.ApplicationService, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	handler := web.NewHandler(svc, "")

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeErrorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("error body is not JSON: %v (%s)", err, rec.Body.String())
	}
	return resp.Code
}

func TestHealth(t *testing.T) {
	rec := serve(t, &stubApp{}, http.MethodGet, "/api/health", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("body: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("status field = %q, want ok", resp["status"])
	}
}

func TestSubmitPayment_Created(t *testing.T) {
	svc := &stubApp{
		submitPayment: func(ctx context.Context, req app.SubmitPaymentRequest) (*app.PaymentResult, error) {
			record := &core.PaymentRecord{
				ID:          "pay-1",
				VehicleCode: req.VehicleCode,
				DealerCode:  req.DealerCode,
				PaymentDate: req.PaymentDate,
				Amount:      req.Amount,
				SubmittedBy: req.SubmittedBy,
			}
			return &app.PaymentResult{Payment: record, Status: core.StatusPending}, nil
		},
	}

	body := `{"vehicle_code":"C-1001","dealer_code":"D-5","payment_date":"2025-06-01","payment_amount":"1500.00","submitted_by":"Mai"}`
	rec := serve(t, svc, http.MethodPost, "/api/payments", body)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	var resp app.PaymentResult
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("body: %v", err)
	}
	if resp.Payment.ID != "pay-1" {
		t.Errorf("payment id = %q, want pay-1", resp.Payment.ID)
	}
	if resp.Status != core.StatusPending {
		t.Errorf("status = %q, want pending", resp.Status)
	}
	if !resp.Payment.Amount.Equal(decimal.RequireFromString("1500.00")) {
		t.Errorf("amount = %s, want 1500.00", resp.Payment.Amount)
	}
}

func TestSubmitPayment_InvalidJSON(t *testing.T) {
	rec := serve(t, &stubApp{}, http.MethodPost, "/api/payments", "{not json")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if code := decodeErrorCode(t, rec); code != "BAD_REQUEST" {
		t.Errorf("code = %q, want BAD_REQUEST", code)
	}
}

func TestSubmitPayment_ValidationError(t *testing.T) {
	svc := &stubApp{
		submitPayment: func(ctx context.Context, req app.SubmitPaymentRequest) (*app.PaymentResult, error) {
			return nil, &core.ValidationError{Field: "payment_amount", Msg: "must be positive"}
		},
	}

	body := `{"vehicle_code":"C-1001","dealer_code":"D-5","payment_amount":"-5","submitted_by":"Mai"}`
	rec := serve(t, svc, http.MethodPost, "/api/payments", body)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if code := decodeErrorCode(t, rec); code != "VALIDATION_ERROR" {
		t.Errorf("code = %q, want VALIDATION_ERROR", code)
	}
}

func TestMarkSold_Conflict(t *testing.T) {
	svc := &stubApp{
		markSold: func(ctx context.Context, id string) (*app.PaymentResult, error) {
			return nil, &core.InvalidStateError{ID: id, Status: core.StatusReturned}
		},
	}

	rec := serve(t, svc, http.MethodPost, "/api/payments/pay-1/sold", "")

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
	if code := decodeErrorCode(t, rec); code != "INVALID_STATE" {
		t.Errorf("code = %q, want INVALID_STATE", code)
	}
}

func TestGetPayment_NotFound(t *testing.T) {
	svc := &stubApp{
		getPayment: func(ctx context.Context, id string) (*app.PaymentResult, error) {
			return nil, &core.NotFoundError{ID: id}
		},
	}

	rec := serve(t, svc, http.MethodGet, "/api/payments/missing", "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if code := decodeErrorCode(t, rec); code != "NOT_FOUND" {
		t.Errorf("code = %q, want NOT_FOUND", code)
	}
}

func TestListCompleted_LimitHandling(t *testing.T) {
	var gotLimit int
	svc := &stubApp{
		listCompleted: func(ctx context.Context, limit int) (*app.PaymentListResult, error) {
			gotLimit = limit
			return &app.PaymentListResult{}, nil
		},
	}

	rec := serve(t, svc, http.MethodGet, "/api/payments/completed?limit=25", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotLimit != 25 {
		t.Errorf("limit = %d, want 25", gotLimit)
	}

	rec = serve(t, svc, http.MethodGet, "/api/payments/completed", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotLimit != 10 {
		t.Errorf("default limit = %d, want 10", gotLimit)
	}

	rec = serve(t, svc, http.MethodGet, "/api/payments/completed?limit=abc", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for non-numeric limit", rec.Code)
	}

	rec = serve(t, svc, http.MethodGet, "/api/payments/completed?limit=0", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for non-positive limit", rec.Code)
	}
}

func TestMarkReturned_WarningPassthrough(t *testing.T) {
	svc := &stubApp{
		markReturned: func(ctx context.Context, id string) (*app.PaymentResult, error) {
			returnDate := "2025-06-12"
			return &app.PaymentResult{
				Payment:       &core.PaymentRecord{ID: id, ReturnDate: &returnDate},
				Status:        core.StatusReturned,
				NotifyWarning: "return recorded, but webhook notification failed: timeout",
			}, nil
		},
	}

	rec := serve(t, svc, http.MethodPost, "/api/payments/pay-1/returned", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp app.PaymentResult
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("body: %v", err)
	}
	if resp.NotifyWarning == "" {
		t.Error("expected notify_warning in response body")
	}
}

func TestSubmitDiscount_DeliveryFailure(t *testing.T) {
	svc := &stubApp{
		submitDiscount: func(ctx context.Context, req app.SubmitDiscountRequest) (*app.DiscountSubmissionResult, error) {
			return nil, fmt.Errorf("%w: webhook returned status 503", app.ErrDeliveryFailed)
		},
	}

	body := `{"vehicle_code":"V7","dealer_code":"D-9"}`
	rec := serve(t, svc, http.MethodPost, "/api/discounts/submit", body)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
	if code := decodeErrorCode(t, rec); code != "NOTIFY_FAILED" {
		t.Errorf("code = %q, want NOTIFY_FAILED", code)
	}
}

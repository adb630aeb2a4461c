package notify_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"showroom-payments/internal/core"
	"showroom-payments/internal/notify"

	"github.com/shopspring/decimal"
)

func sampleRecord() *core.PaymentRecord {
	returnDate := "2025-06-12"
	return &core.PaymentRecord{
		ID:          "pay-123",
		VehicleCode: "C-1001",
		DealerCode:  "D-5",
		PaymentDate: "2025-06-01",
		Amount:      decimal.RequireFromString("1500.50"),
		ReturnDate:  &returnDate,
		SubmittedBy: "Mai",
	}
}

func TestWebhookSink_PublishPaidEvent(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %s, want application/json", ct)
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &received); err != nil {
			t.Errorf("payload is not valid JSON: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sink := notify.NewWebhookSink(server.URL, 0)
	event := notify.NewPaidEvent(sampleRecord())

	if err := sink.Publish(context.Background(), event); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	if got := received["communication_type"]; got != "paid" {
		t.Errorf("communication_type = %v, want paid", got)
	}
	if got := received["vehicle_code"]; got != "C-1001" {
		t.Errorf("vehicle_code = %v, want C-1001", got)
	}
	if got := received["payment_amount"]; got != 1500.5 {
		t.Errorf("payment_amount = %v, want 1500.5", got)
	}
}

func TestWebhookSink_PublishReturnedEvent(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &received)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	sink := notify.NewWebhookSink(server.URL, 0)
	event := notify.NewReturnedEvent(sampleRecord())

	if err := sink.Publish(context.Background(), event); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	if got := received["communication_type"]; got != "returned" {
		t.Errorf("communication_type = %v, want returned", got)
	}
	if got := received["returned"]; got != true {
		t.Errorf("returned = %v, want true", got)
	}
	if got := received["return_date"]; got != "2025-06-12" {
		t.Errorf("return_date = %v, want 2025-06-12", got)
	}
}

func TestWebhookSink_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	sink := notify.NewWebhookSink(server.URL, 0)
	if err := sink.Publish(context.Background(), notify.NewPaidEvent(sampleRecord())); err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestWebhookSink_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	sink := notify.NewWebhookSink(server.URL, 20*time.Millisecond)
	if err := sink.Publish(context.Background(), notify.NewPaidEvent(sampleRecord())); err == nil {
		t.Fatal("expected error when endpoint exceeds the timeout")
	}
}

func TestWebhookSink_MissingURL(t *testing.T) {
	sink := notify.NewWebhookSink("", 0)
	if err := sink.Publish(context.Background(), notify.NewPaidEvent(sampleRecord())); err == nil {
		t.Fatal("expected error when no URL is configured")
	}
}

func TestNewDiscountEvent(t *testing.T) {
	sub := core.DiscountSubmission{
		VehicleCode: "V7",
		DealerCode:  "D-9",
		FlashPrice:  decimal.RequireFromString("10500"),
	}
	event := notify.NewDiscountEvent(sub)

	body, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := payload["communication_type"]; got != "discount" {
		t.Errorf("communication_type = %v, want discount", got)
	}
	if got := payload["vehicle_code"]; got != "V7" {
		t.Errorf("vehicle_code = %v, want V7", got)
	}
}

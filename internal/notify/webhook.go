package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single delivery attempt. Expiry is a delivery
// failure, not a fatal error.
const DefaultTimeout = 10 * time.Second

// WebhookSink POSTs JSON events to a single configured webhook endpoint.
// Success is any 2xx status; there is no retry.
type WebhookSink struct {
	url     string
	client  *http.Client
	timeout time.Duration
}

// NewWebhookSink creates a sink for the given endpoint. timeout <= 0 falls
// back to DefaultTimeout. The shared client keeps idle connections for reuse;
// per-attempt deadlines come from the request context.
func NewWebhookSink(url string, timeout time.Duration) *WebhookSink {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &WebhookSink{
		url: url,
		client: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
			},
		},
		timeout: timeout,
	}
}

func (s *WebhookSink) Publish(ctx context.Context, event any) error {
	if s.url == "" {
		return fmt.Errorf("webhook URL not configured")
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode webhook payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook delivery failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook returned status %s", resp.Status)
	}
	return nil
}

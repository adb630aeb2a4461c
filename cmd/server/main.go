package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	webAdapter "showroom-payments/internal/adapters/web"
	"showroom-payments/internal/app"
	"showroom-payments/internal/core"
	"showroom-payments/internal/db"
	"showroom-payments/internal/notify"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("warehouse: %v", err)
	}
	defer pool.Close()

	paymentService := core.NewPaymentService(pool)
	referenceService := core.NewReferenceService(pool)
	discountService := core.NewDiscountService(pool)

	webhookURL := os.Getenv("WEBHOOK_URL")
	if webhookURL == "" {
		log.Println("Warning: WEBHOOK_URL is not set; notifications will fail soft")
	}
	sink := notify.NewWebhookSink(webhookURL, webhookTimeout())

	svc := app.NewAppService(paymentService, referenceService, discountService, sink)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	handler := webAdapter.NewHandler(svc, allowedOrigins)

	log.Printf("server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}

// webhookTimeout reads WEBHOOK_TIMEOUT_SECONDS, falling back to the sink default.
func webhookTimeout() time.Duration {
	raw := os.Getenv("WEBHOOK_TIMEOUT_SECONDS")
	if raw == "" {
		return notify.DefaultTimeout
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs <= 0 {
		log.Printf("Warning: invalid WEBHOOK_TIMEOUT_SECONDS %q, using default", raw)
		return notify.DefaultTimeout
	}
	return time.Duration(secs) * time.Second
}

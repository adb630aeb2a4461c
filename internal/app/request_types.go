package app

import "github.com/shopspring/decimal"

// SubmitPaymentRequest is the input for recording a new showroom payment.
type SubmitPaymentRequest struct {
	VehicleCode string          `json:"vehicle_code"`
	DealerCode  string          `json:"dealer_code"`
	PaymentDate string          `json:"payment_date"` // YYYY-MM-DD; empty means today
	Amount      decimal.Decimal `json:"payment_amount"`
	SubmittedBy string          `json:"submitted_by"`
}

// SubmitDiscountRequest is the input for forwarding a discount submission.
type SubmitDiscountRequest struct {
	VehicleCode string `json:"vehicle_code"`
	DealerCode  string `json:"dealer_code"`
}

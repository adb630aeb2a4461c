package core

import "github.com/shopspring/decimal"

// DiscountEligibility is a point-in-time eligibility snapshot for one vehicle,
// refreshed externally. The core never writes it.
type DiscountEligibility struct {
	VehicleCode            string `json:"vehicle_code"`
	DaysInConsignment      int    `json:"days_in_consignment"`
	ShowroomDisplayedCount int    `json:"showroom_displayed_count"`
	QueueCount             int    `json:"queue_count"`
	Eligible               bool   `json:"eligible"`
	Status                 string `json:"status"`
}

// DiscountQuote holds the externally computed discount prices for a vehicle.
// Any price may be absent in the snapshot.
type DiscountQuote struct {
	VehicleCode        string           `json:"vehicle_code"`
	FlashPrice         *decimal.Decimal `json:"flash_price,omitempty"`
	ConsignmentPrice   *decimal.Decimal `json:"consignment_price,omitempty"`
	SpeedDiscountPrice *decimal.Decimal `json:"speed_discount_price,omitempty"`
}

// DiscountCandidate pairs an eligible vehicle with its quote. Only vehicles
// present in both snapshots qualify.
type DiscountCandidate struct {
	VehicleCode string              `json:"vehicle_code"`
	Eligibility DiscountEligibility `json:"eligibility"`
	Quote       DiscountQuote       `json:"quote"`
}

// DiscountSubmission is the payload forwarded to the workflow sink when an
// operator submits a vehicle for discount approval. It is not persisted.
// Absent prices are carried as zero, never omitted.
type DiscountSubmission struct {
	VehicleCode            string          `json:"vehicle_code"`
	DealerCode             string          `json:"dealer_code"`
	FlashPrice             decimal.Decimal `json:"flash_price"`
	ConsignmentPrice       decimal.Decimal `json:"consignment_price"`
	SpeedDiscountPrice     decimal.Decimal `json:"speed_discount_price"`
	DaysInConsignment      int             `json:"days_in_consignment"`
	ShowroomDisplayedCount int             `json:"showroom_displayed_count"`
	QueueCount             int             `json:"queue_count"`
}

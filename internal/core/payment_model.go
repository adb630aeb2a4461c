package core

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is derived from the terminal-date columns, never stored.
type PaymentStatus string

const (
	StatusPending  PaymentStatus = "pending"
	StatusSold     PaymentStatus = "sold"
	StatusReturned PaymentStatus = "returned"
)

// dateLayout is the calendar-date format used throughout: payment, sold and
// return dates carry no time component.
const dateLayout = "2006-01-02"

// Submitters is the closed set of people allowed to submit payment records.
// Free-text submitter names are rejected at validation time.
var Submitters = []string{"Nawal", "Mostafa", "Mai", "Yousif", "Mamdouh", "test"}

// IsKnownSubmitter reports whether name is in the Submitters set.
func IsKnownSubmitter(name string) bool {
	for _, s := range Submitters {
		if s == name {
			return true
		}
	}
	return false
}

// PaymentRecord is one showroom payment event.
//
// A record is created pending and later transitions at most once:
//
//	Pending → Sold     (SoldDate set, terminal)
//	Pending → Returned (Returned + ReturnDate set, terminal)
//
// SoldDate and ReturnDate are mutually exclusive; once set they are never
// cleared or changed. The store enforces this with compare-and-swap updates,
// the domain with MarkSold/MarkReturned guards.
type PaymentRecord struct {
	ID          string          `json:"id"`
	VehicleCode string          `json:"vehicle_code"`
	DealerCode  string          `json:"dealer_code"`
	PaymentDate string          `json:"payment_date"` // YYYY-MM-DD
	Amount      decimal.Decimal `json:"payment_amount"`
	SoldDate    *string         `json:"sold_date,omitempty"`
	Returned    *bool           `json:"returned,omitempty"`
	ReturnDate  *string         `json:"return_date,omitempty"`
	RequestID   *string         `json:"request_id,omitempty"` // reserved for the downstream workflow, NULL at creation
	SubmittedBy string          `json:"submitted_by"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Status derives the lifecycle state from the terminal-date fields.
func (p *PaymentRecord) Status() PaymentStatus {
	switch {
	case p.SoldDate != nil:
		return StatusSold
	case p.ReturnDate != nil:
		return StatusReturned
	default:
		return StatusPending
	}
}

// Dealer is a reference-data row: one showroom dealer.
type Dealer struct {
	Code string `json:"dealer_code"`
	Name string `json:"dealer_name"`
}

// Vehicle is a reference-data row from the live vehicle catalog.
type Vehicle struct {
	Code  string `json:"vehicle_code"`
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  int    `json:"year"`
}

// Label renders the dropdown display form, e.g. "C-12345 - Toyota Camry (2020)".
func (v Vehicle) Label() string {
	return fmt.Sprintf("%s - %s %s (%d)", v.Code, v.Make, v.Model, v.Year)
}

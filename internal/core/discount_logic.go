package core

import "github.com/shopspring/decimal"

// ResolveDiscountCandidates intersects the eligibility snapshot with the quote
// snapshot: a vehicle qualifies only if it is flagged eligible AND has a quote.
// The result preserves eligibility-list order (stable filter, no sort). Either
// input being empty yields an empty result — "no candidates", not an error.
func ResolveDiscountCandidates(eligibility []DiscountEligibility, quotes []DiscountQuote) []DiscountCandidate {
	if len(eligibility) == 0 || len(quotes) == 0 {
		return nil
	}

	quotesByVehicle := make(map[string]DiscountQuote, len(quotes))
	for _, q := range quotes {
		quotesByVehicle[q.VehicleCode] = q
	}

	var candidates []DiscountCandidate
	for _, e := range eligibility {
		if !e.Eligible {
			continue
		}
		q, ok := quotesByVehicle[e.VehicleCode]
		if !ok {
			continue
		}
		candidates = append(candidates, DiscountCandidate{
			VehicleCode: e.VehicleCode,
			Eligibility: e,
			Quote:       q,
		})
	}
	return candidates
}

// BuildDiscountSubmission projects a candidate into the sink payload.
// Missing quote prices become 0.0 — downstream consumers expect a number for
// every price field, never an absent one.
func BuildDiscountSubmission(vehicleCode, dealerCode string, e DiscountEligibility, q DiscountQuote) DiscountSubmission {
	return DiscountSubmission{
		VehicleCode:            vehicleCode,
		DealerCode:             dealerCode,
		FlashPrice:             priceOrZero(q.FlashPrice),
		ConsignmentPrice:       priceOrZero(q.ConsignmentPrice),
		SpeedDiscountPrice:     priceOrZero(q.SpeedDiscountPrice),
		DaysInConsignment:      e.DaysInConsignment,
		ShowroomDisplayedCount: e.ShowroomDisplayedCount,
		QueueCount:             e.QueueCount,
	}
}

func priceOrZero(p *decimal.Decimal) decimal.Decimal {
	if p == nil {
		return decimal.Zero
	}
	return *p
}

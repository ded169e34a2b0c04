package eligibility

import (
	"property-finance-engine/internal/models"
)

// Flat stamp duty rates. This is a deliberate simplification of the banded
// UK schedule: a single rate applied to the whole purchase price, reduced
// for first-time buyers.
const (
	StampDutyRateFirstTimeBuyer = 0.02
	StampDutyRateStandard       = 0.03
)

// CalculateStampDuty computes the tax due on a purchase. Pure function.
func CalculateStampDuty(price float64, firstTimeBuyer bool) models.StampDutyResult {
	rate := StampDutyRateStandard
	if firstTimeBuyer {
		rate = StampDutyRateFirstTimeBuyer
	}
	return models.StampDutyResult{
		StampDuty: price * rate,
		Rate:      rate,
	}
}

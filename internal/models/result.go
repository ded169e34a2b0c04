// Package models defines the data structures for the property finance engine.
package models

import (
	"time"
)

// Range is an inclusive numeric band with Min <= Max.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// EligibilityResult is the outcome of scoring a borrower profile. It is
// produced whole on every scoring call and never partially updated.
type EligibilityResult struct {
	ApprovalLikelihood  int      `json:"approval_likelihood"`
	DebtToIncomeRatio   float64  `json:"debt_to_income_ratio"`
	EstimatedAmount     float64  `json:"estimated_amount"`
	InterestRateRange   Range    `json:"interest_rate_range"`
	MonthlyPaymentRange Range    `json:"monthly_payment_range"`
	CriteriaMatched     []string `json:"criteria_matched"`
}

// StampDutyResult is the outcome of a stamp duty calculation.
type StampDutyResult struct {
	StampDuty float64 `json:"stamp_duty"`
	Rate      float64 `json:"rate"`
}

// EligibilityRecord is one persisted scoring run. Records are append-only:
// every submission inserts a fresh row keyed by a new record id.
type EligibilityRecord struct {
	ID        string            `json:"id" db:"id"`
	UserID    string            `json:"user_id" db:"user_id"`
	Profile   BorrowerProfile   `json:"profile"`
	Result    EligibilityResult `json:"result"`
	CreatedAt time.Time         `json:"created_at" db:"created_at"`
}

// TopMatchesRecord is the latest top-3 provider matches for a user. One row
// per user; a new matching run replaces the previous one.
type TopMatchesRecord struct {
	UserID    string          `json:"user_id" db:"user_id"`
	Matches   []ProviderMatch `json:"matches"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

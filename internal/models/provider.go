// Package models defines the data structures for the property finance engine.
package models

import (
	"time"
)

// ProviderKind represents the type of service provider.
type ProviderKind string

const (
	ProviderKindBroker ProviderKind = "mortgage_broker"
	ProviderKindLawyer ProviderKind = "conveyancing_lawyer"
)

// ServiceProvider represents a mortgage broker or conveyancing lawyer from
// the provider catalog. The catalog is owned by the external store and is
// read-only input to matching.
type ServiceProvider struct {
	ID              string       `json:"id" db:"id"`
	Name            string       `json:"name" db:"name"`
	Kind            ProviderKind `json:"kind" db:"kind"`
	MinCreditScore  int          `json:"min_credit_score" db:"min_credit_score"`
	Specializations []string     `json:"specializations" db:"specializations"`
	MinLoanAmount   float64      `json:"min_loan_amount" db:"min_loan_amount"`
	ApprovalRate    float64      `json:"approval_rate" db:"approval_rate"`
	Rating          float64      `json:"rating" db:"rating"`
	CreatedAt       time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at" db:"updated_at"`
	IsActive        bool         `json:"is_active" db:"is_active"`
}

// ProviderMatch is the result of scoring one provider against one profile.
type ProviderMatch struct {
	ProviderID   string   `json:"provider_id"`
	ProviderName string   `json:"provider_name,omitempty"`
	MatchScore   int      `json:"match_score"`
	MatchReasons []string `json:"match_reasons"`
}

// Package models defines the data structures for the property finance engine.
package models

// EmploymentStatus represents the employment status of a borrower.
type EmploymentStatus string

const (
	EmploymentStatusFullTime     EmploymentStatus = "full_time"
	EmploymentStatusPartTime     EmploymentStatus = "part_time"
	EmploymentStatusSelfEmployed EmploymentStatus = "self_employed"
	EmploymentStatusContractor   EmploymentStatus = "contractor"
	EmploymentStatusOther        EmploymentStatus = "other"
)

// Credit score bounds accepted by the engine.
const (
	MinCreditScore = 300
	MaxCreditScore = 850
)

// ValidEmploymentStatuses returns all valid employment status values.
func ValidEmploymentStatuses() []EmploymentStatus {
	return []EmploymentStatus{
		EmploymentStatusFullTime,
		EmploymentStatusPartTime,
		EmploymentStatusSelfEmployed,
		EmploymentStatusContractor,
		EmploymentStatusOther,
	}
}

// IsValid checks if the employment status is valid.
func (e EmploymentStatus) IsValid() bool {
	for _, valid := range ValidEmploymentStatuses() {
		if e == valid {
			return true
		}
	}
	return false
}

// BorrowerProfile is a fully validated borrower submission. Profiles are
// immutable once built: a new submission produces a new snapshot, historical
// scoring records are never rewritten.
type BorrowerProfile struct {
	Income              float64          `json:"income"`
	EmploymentStatus    EmploymentStatus `json:"employment_status"`
	CreditScore         int              `json:"credit_score"`
	RequestedLoanAmount float64          `json:"requested_loan_amount"`
}

// RawProfile is a loosely-typed borrower submission as it arrives from a
// form. Numeric fields may be strings or numbers; the validator converts
// them exactly once into a BorrowerProfile.
type RawProfile struct {
	Income              any    `json:"income"`
	EmploymentStatus    string `json:"employment_status"`
	CreditScore         any    `json:"credit_score"`
	RequestedLoanAmount any    `json:"requested_loan_amount,omitempty"`
}

// Package models defines the data structures for the property finance engine.
package models

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors
var (
	ErrInvalidEmploymentStatus = errors.New("invalid employment status")
	ErrInvalidCreditScore      = errors.New("credit score must be between 300 and 850")
	ErrInvalidIncome           = errors.New("income cannot be negative")
	ErrInvalidLoanAmount       = errors.New("requested loan amount cannot be negative")
)

// ValidationError reports a single invalid field on a raw submission. It is
// always recoverable: the caller fixes the field and resubmits.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// DependencyError reports an unreachable external collaborator (provider
// catalog or persistence store). Surfaced to callers as a 5xx-equivalent,
// never silently swallowed; retries belong to the embedding layer.
type DependencyError struct {
	Dependency string
	Err        error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("dependency %s unavailable: %v", e.Dependency, e.Err)
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}

// NormalizeEmploymentStatus converts common form spellings of employment
// status to the canonical enum values.
func NormalizeEmploymentStatus(status string) EmploymentStatus {
	normalized := strings.ToLower(strings.TrimSpace(status))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	normalized = strings.ReplaceAll(normalized, "-", "_")

	statusMap := map[string]EmploymentStatus{
		"full_time":       EmploymentStatusFullTime,
		"fulltime":        EmploymentStatusFullTime,
		"employed":        EmploymentStatusFullTime,
		"permanent":       EmploymentStatusFullTime,
		"part_time":       EmploymentStatusPartTime,
		"parttime":        EmploymentStatusPartTime,
		"self_employed":   EmploymentStatusSelfEmployed,
		"selfemployed":    EmploymentStatusSelfEmployed,
		"self_employment": EmploymentStatusSelfEmployed,
		"business_owner":  EmploymentStatusSelfEmployed,
		"freelancer":      EmploymentStatusSelfEmployed,
		"contractor":      EmploymentStatusContractor,
		"contract":        EmploymentStatusContractor,
		"fixed_term":      EmploymentStatusContractor,
		"other":           EmploymentStatusOther,
		"retired":         EmploymentStatusOther,
		"unemployed":      EmploymentStatusOther,
		"student":         EmploymentStatusOther,
	}

	if mapped, ok := statusMap[normalized]; ok {
		return mapped
	}

	// Return as-is if no mapping found (will fail validation)
	return EmploymentStatus(normalized)
}

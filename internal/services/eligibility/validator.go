// Package eligibility implements the financial eligibility engine: profile
// validation, approval-likelihood scoring and the stamp duty calculator.
package eligibility

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"property-finance-engine/internal/models"
)

// ValidateProfile converts a raw, loosely-typed form submission into a fully
// typed BorrowerProfile. Numeric fields may arrive as strings or numbers.
// The first invalid field aborts validation with a ValidationError; there are
// no side effects.
func ValidateProfile(raw models.RawProfile) (*models.BorrowerProfile, error) {
	income, err := toFloat(raw.Income)
	if err != nil {
		return nil, models.NewValidationError("income", err.Error())
	}
	if income < 0 {
		return nil, models.NewValidationError("income", models.ErrInvalidIncome.Error())
	}

	status := models.NormalizeEmploymentStatus(raw.EmploymentStatus)
	if !status.IsValid() {
		return nil, models.NewValidationError("employment_status", models.ErrInvalidEmploymentStatus.Error())
	}

	creditScore, err := toInt(raw.CreditScore)
	if err != nil {
		return nil, models.NewValidationError("credit_score", err.Error())
	}
	if creditScore < models.MinCreditScore || creditScore > models.MaxCreditScore {
		return nil, models.NewValidationError("credit_score", models.ErrInvalidCreditScore.Error())
	}

	loanAmount := 0.0
	if raw.RequestedLoanAmount != nil {
		loanAmount, err = toFloat(raw.RequestedLoanAmount)
		if err != nil {
			return nil, models.NewValidationError("requested_loan_amount", err.Error())
		}
		if loanAmount < 0 {
			return nil, models.NewValidationError("requested_loan_amount", models.ErrInvalidLoanAmount.Error())
		}
	}

	return &models.BorrowerProfile{
		Income:              income,
		EmploymentStatus:    status,
		CreditScore:         creditScore,
		RequestedLoanAmount: loanAmount,
	}, nil
}

// toFloat converts a form value (string, number or json.Number) to float64.
func toFloat(v any) (float64, error) {
	switch val := v.(type) {
	case nil:
		return 0, fmt.Errorf("value is required")
	case float64:
		return val, nil
	case float32:
		return float64(val), nil
	case int:
		return float64(val), nil
	case int64:
		return float64(val), nil
	case json.Number:
		return val.Float64()
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return 0, fmt.Errorf("value is required")
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, fmt.Errorf("%q is not a number", val)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("unsupported value type %T", v)
	}
}

// toInt converts a form value to int, rejecting fractional numbers.
func toInt(v any) (int, error) {
	f, err := toFloat(v)
	if err != nil {
		return 0, err
	}
	i := int(f)
	if float64(i) != f {
		return 0, fmt.Errorf("%v is not a whole number", v)
	}
	return i, nil
}

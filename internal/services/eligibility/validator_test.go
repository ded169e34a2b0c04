package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-finance-engine/internal/models"
)

// rawProfile builds a valid raw submission with optional overrides.
func rawProfile(overrides map[string]interface{}) models.RawProfile {
	raw := models.RawProfile{
		Income:              75000.0,
		EmploymentStatus:    "full_time",
		CreditScore:         720,
		RequestedLoanAmount: 250000.0,
	}

	if v, ok := overrides["income"]; ok {
		raw.Income = v
	}
	if v, ok := overrides["employment_status"]; ok {
		raw.EmploymentStatus = v.(string)
	}
	if v, ok := overrides["credit_score"]; ok {
		raw.CreditScore = v
	}
	if v, ok := overrides["requested_loan_amount"]; ok {
		raw.RequestedLoanAmount = v
	}

	return raw
}

func TestValidateProfile_Valid(t *testing.T) {
	profile, err := ValidateProfile(rawProfile(nil))
	require.NoError(t, err)

	assert.Equal(t, 75000.0, profile.Income)
	assert.Equal(t, models.EmploymentStatusFullTime, profile.EmploymentStatus)
	assert.Equal(t, 720, profile.CreditScore)
	assert.Equal(t, 250000.0, profile.RequestedLoanAmount)
}

func TestValidateProfile_NumericStrings(t *testing.T) {
	profile, err := ValidateProfile(rawProfile(map[string]interface{}{
		"income":                "85000",
		"credit_score":          "755",
		"requested_loan_amount": "300000.50",
	}))
	require.NoError(t, err)

	assert.Equal(t, 85000.0, profile.Income)
	assert.Equal(t, 755, profile.CreditScore)
	assert.Equal(t, 300000.50, profile.RequestedLoanAmount)
}

func TestValidateProfile_NormalizesEmploymentStatus(t *testing.T) {
	cases := map[string]models.EmploymentStatus{
		"Full-time":     models.EmploymentStatusFullTime,
		"FULL TIME":     models.EmploymentStatusFullTime,
		"self employed": models.EmploymentStatusSelfEmployed,
		"Contractor":    models.EmploymentStatusContractor,
		"part-time":     models.EmploymentStatusPartTime,
		"Other":         models.EmploymentStatusOther,
	}

	for input, expected := range cases {
		profile, err := ValidateProfile(rawProfile(map[string]interface{}{
			"employment_status": input,
		}))
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, expected, profile.EmploymentStatus, "input %q", input)
	}
}

func TestValidateProfile_CreditScoreBoundaries(t *testing.T) {
	for _, score := range []int{300, 850} {
		profile, err := ValidateProfile(rawProfile(map[string]interface{}{
			"credit_score": score,
		}))
		require.NoError(t, err, "score %d", score)
		assert.Equal(t, score, profile.CreditScore)
	}

	for _, score := range []int{299, 900} {
		_, err := ValidateProfile(rawProfile(map[string]interface{}{
			"credit_score": score,
		}))
		require.Error(t, err, "score %d", score)

		var verr *models.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "credit_score", verr.Field)
	}
}

func TestValidateProfile_NegativeIncome(t *testing.T) {
	_, err := ValidateProfile(rawProfile(map[string]interface{}{
		"income": -1.0,
	}))
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "income", verr.Field)
}

func TestValidateProfile_NegativeLoanAmount(t *testing.T) {
	_, err := ValidateProfile(rawProfile(map[string]interface{}{
		"requested_loan_amount": "-500",
	}))
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "requested_loan_amount", verr.Field)
}

func TestValidateProfile_UnparseableNumber(t *testing.T) {
	_, err := ValidateProfile(rawProfile(map[string]interface{}{
		"income": "lots",
	}))
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "income", verr.Field)
}

func TestValidateProfile_FractionalCreditScore(t *testing.T) {
	_, err := ValidateProfile(rawProfile(map[string]interface{}{
		"credit_score": 720.5,
	}))
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "credit_score", verr.Field)
}

func TestValidateProfile_UnknownEmploymentStatus(t *testing.T) {
	_, err := ValidateProfile(rawProfile(map[string]interface{}{
		"employment_status": "astronaut",
	}))
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "employment_status", verr.Field)
}

func TestValidateProfile_MissingLoanAmountDefaultsToZero(t *testing.T) {
	raw := rawProfile(nil)
	raw.RequestedLoanAmount = nil

	profile, err := ValidateProfile(raw)
	require.NoError(t, err)
	assert.Equal(t, 0.0, profile.RequestedLoanAmount)
}

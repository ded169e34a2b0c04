package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-finance-engine/internal/models"
)

// profile builds a borrower profile with sensible defaults.
func profile(income float64, creditScore int, status models.EmploymentStatus) models.BorrowerProfile {
	return models.BorrowerProfile{
		Income:              income,
		EmploymentStatus:    status,
		CreditScore:         creditScore,
		RequestedLoanAmount: 250000,
	}
}

func TestScore_TopTierProfile(t *testing.T) {
	scorer := NewScorer()
	result := scorer.Score(profile(100000, 750, models.EmploymentStatusFullTime))

	assert.Equal(t, 100, result.ApprovalLikelihood)
	assert.Equal(t, models.Range{Min: 3.5, Max: 4.0}, result.InterestRateRange)
	assert.Equal(t, []string{
		LabelExcellentCredit,
		LabelStrongIncome,
		LabelStableEmployment,
	}, result.CriteriaMatched)
}

func TestScore_LikelihoodWithinBounds(t *testing.T) {
	scorer := NewScorer()

	for score := models.MinCreditScore; score <= models.MaxCreditScore; score += 25 {
		for _, status := range models.ValidEmploymentStatuses() {
			for _, income := range []float64{0, 20000, 100000, 500000} {
				result := scorer.Score(profile(income, score, status))
				assert.GreaterOrEqual(t, result.ApprovalLikelihood, 0)
				assert.LessOrEqual(t, result.ApprovalLikelihood, 100)
			}
		}
	}
}

func TestScore_CreditMonotonicity(t *testing.T) {
	scorer := NewScorer()

	prev := -1
	for score := models.MinCreditScore; score <= models.MaxCreditScore; score++ {
		result := scorer.Score(profile(60000, score, models.EmploymentStatusPartTime))
		assert.GreaterOrEqual(t, result.ApprovalLikelihood, prev,
			"likelihood dropped at credit score %d", score)
		prev = result.ApprovalLikelihood
	}
}

func TestScore_IncomeComponentSaturates(t *testing.T) {
	scorer := NewScorer()

	atReference := scorer.Score(profile(ReferenceIncome, 600, models.EmploymentStatusOther))
	aboveReference := scorer.Score(profile(ReferenceIncome*10, 600, models.EmploymentStatusOther))

	assert.Equal(t, atReference.ApprovalLikelihood, aboveReference.ApprovalLikelihood)
}

func TestScore_InterestRateBands(t *testing.T) {
	scorer := NewScorer()

	cases := []struct {
		creditScore int
		expected    models.Range
	}{
		{850, models.Range{Min: 3.5, Max: 4.0}},
		{750, models.Range{Min: 3.5, Max: 4.0}},
		{749, models.Range{Min: 4.0, Max: 4.5}},
		{700, models.Range{Min: 4.0, Max: 4.5}},
		{699, models.Range{Min: 4.5, Max: 5.0}},
		{300, models.Range{Min: 4.5, Max: 5.0}},
	}

	for _, tc := range cases {
		result := scorer.Score(profile(50000, tc.creditScore, models.EmploymentStatusFullTime))
		assert.Equal(t, tc.expected, result.InterestRateRange, "credit score %d", tc.creditScore)
	}
}

func TestScore_EstimatedAmount(t *testing.T) {
	scorer := NewScorer()
	result := scorer.Score(profile(100000, 750, models.EmploymentStatusFullTime))

	// income * 0.28 / 12 * 360
	assert.InDelta(t, 840000, result.EstimatedAmount, 1e-6)
}

func TestScore_RangesOrdered(t *testing.T) {
	scorer := NewScorer()

	for _, creditScore := range []int{300, 650, 700, 750, 850} {
		result := scorer.Score(profile(80000, creditScore, models.EmploymentStatusContractor))
		assert.LessOrEqual(t, result.InterestRateRange.Min, result.InterestRateRange.Max)
		assert.LessOrEqual(t, result.MonthlyPaymentRange.Min, result.MonthlyPaymentRange.Max)
		assert.Greater(t, result.MonthlyPaymentRange.Min, 0.0)
	}
}

func TestScore_MonthlyPaymentAmortization(t *testing.T) {
	scorer := NewScorer()
	result := scorer.Score(profile(100000, 750, models.EmploymentStatusFullTime))

	// 840000 at 3.5% over 360 months: a known fixed-rate payment.
	assert.InDelta(t, 3771.95, result.MonthlyPaymentRange.Min, 0.5)
	// Higher rate, higher payment.
	assert.Greater(t, result.MonthlyPaymentRange.Max, result.MonthlyPaymentRange.Min)
}

func TestScore_Deterministic(t *testing.T) {
	scorer := NewScorer()
	p := profile(64000, 710, models.EmploymentStatusSelfEmployed)

	first := scorer.Score(p)
	second := scorer.Score(p)

	assert.Equal(t, first, second)
}

func TestScore_DefaultDebtToIncomeRatio(t *testing.T) {
	scorer := NewScorer()
	result := scorer.Score(profile(50000, 700, models.EmploymentStatusFullTime))

	assert.Equal(t, 0.35, result.DebtToIncomeRatio)
}

func TestScore_CustomDebtToIncomeEstimator(t *testing.T) {
	scorer := NewScorerWithEstimator(FixedRatioEstimator{Ratio: 0.42})
	result := scorer.Score(profile(50000, 700, models.EmploymentStatusFullTime))

	assert.Equal(t, 0.42, result.DebtToIncomeRatio)
}

func TestScore_CriteriaOrderAndPartialMatch(t *testing.T) {
	scorer := NewScorer()

	// Strong income and stable employment, unremarkable credit.
	result := scorer.Score(profile(90000, 700, models.EmploymentStatusFullTime))
	require.Equal(t, []string{LabelStrongIncome, LabelStableEmployment}, result.CriteriaMatched)

	// Nothing notable.
	result = scorer.Score(profile(30000, 640, models.EmploymentStatusOther))
	assert.Empty(t, result.CriteriaMatched)
}

func TestScore_EmploymentAwardsOrdering(t *testing.T) {
	scorer := NewScorer()

	fullTime := scorer.Score(profile(60000, 700, models.EmploymentStatusFullTime))
	selfEmployed := scorer.Score(profile(60000, 700, models.EmploymentStatusSelfEmployed))
	partTime := scorer.Score(profile(60000, 700, models.EmploymentStatusPartTime))
	other := scorer.Score(profile(60000, 700, models.EmploymentStatusOther))

	assert.Greater(t, fullTime.ApprovalLikelihood, selfEmployed.ApprovalLikelihood)
	assert.Greater(t, selfEmployed.ApprovalLikelihood, partTime.ApprovalLikelihood)
	assert.Greater(t, partTime.ApprovalLikelihood, other.ApprovalLikelihood)
}

package eligibility

import (
	"math"

	"property-finance-engine/internal/models"
)

// Component weights for the approval-likelihood score. They sum to 100.
// The historical client-side variant weighted credit 40 / income 40 /
// employment 20; this table is the canonical one.
const (
	CreditWeight     = 30.0
	IncomeWeight     = 40.0
	EmploymentWeight = 30.0
)

// ReferenceIncome is the annual income at which the income component
// saturates at full weight.
const ReferenceIncome = 100000.0

// Credit tier fractions applied to CreditWeight.
const (
	creditTierExcellent = 1.0 // score >= 750
	creditTierHigh      = 0.8 // score >= 700
	creditTierMedium    = 0.6 // score >= 650
	creditTierLow       = 0.3
)

// Loan ceiling estimation constants: 28% of gross income serviced over a
// 360-month term. A multiplier, not a true amortization.
const (
	maxDebtServiceShare = 0.28
	loanTermMonths      = 360
)

// defaultDebtToIncomeRatio is the placeholder used until real debt data is
// wired in through a DebtToIncomeEstimator.
const defaultDebtToIncomeRatio = 0.35

// Criteria labels, appended in evaluation order: credit, income, employment.
const (
	LabelExcellentCredit  = "Excellent credit score"
	LabelStrongIncome     = "Strong income"
	LabelStableEmployment = "Stable employment"
)

// employmentAwards maps employment status to its component contribution.
var employmentAwards = map[models.EmploymentStatus]float64{
	models.EmploymentStatusFullTime:     30,
	models.EmploymentStatusSelfEmployed: 22,
	models.EmploymentStatusContractor:   22,
	models.EmploymentStatusPartTime:     15,
	models.EmploymentStatusOther:        10,
}

// DebtToIncomeEstimator supplies the borrower's debt-to-income ratio. The
// engine has no real debt data yet, so the default is a fixed placeholder;
// implementations backed by credit bureau data can be substituted without
// touching the scorer.
type DebtToIncomeEstimator interface {
	Estimate(profile models.BorrowerProfile) float64
}

// FixedRatioEstimator returns a constant debt-to-income ratio.
type FixedRatioEstimator struct {
	Ratio float64
}

// Estimate returns the fixed ratio regardless of profile.
func (e FixedRatioEstimator) Estimate(models.BorrowerProfile) float64 {
	return e.Ratio
}

// Scorer computes eligibility results from validated borrower profiles.
// It is stateless apart from its estimator and safe for concurrent use.
type Scorer struct {
	dti DebtToIncomeEstimator
}

// NewScorer creates a scorer with the placeholder debt-to-income estimator.
func NewScorer() *Scorer {
	return &Scorer{dti: FixedRatioEstimator{Ratio: defaultDebtToIncomeRatio}}
}

// NewScorerWithEstimator creates a scorer backed by a custom estimator.
func NewScorerWithEstimator(est DebtToIncomeEstimator) *Scorer {
	return &Scorer{dti: est}
}

// Score computes the full eligibility result for a validated profile.
// Deterministic and pure: identical profiles produce identical results.
func (s *Scorer) Score(profile models.BorrowerProfile) models.EligibilityResult {
	criteria := make([]string, 0, 3)

	// Credit component: tiered.
	creditComponent := CreditWeight * creditTier(profile.CreditScore)
	if profile.CreditScore >= 750 {
		criteria = append(criteria, LabelExcellentCredit)
	}

	// Income component: smooth ramp up to the reference income.
	incomeRatio := profile.Income / ReferenceIncome
	if incomeRatio > 1 {
		incomeRatio = 1
	}
	incomeComponent := IncomeWeight * incomeRatio
	if incomeRatio >= 0.75 {
		criteria = append(criteria, LabelStrongIncome)
	}

	// Employment component: fixed award per status.
	employmentComponent := employmentAwards[profile.EmploymentStatus]
	if profile.EmploymentStatus == models.EmploymentStatusFullTime {
		criteria = append(criteria, LabelStableEmployment)
	}

	likelihood := int(math.Round(creditComponent + incomeComponent + employmentComponent))
	if likelihood < 0 {
		likelihood = 0
	}
	if likelihood > 100 {
		likelihood = 100
	}

	estimatedAmount := estimateLoanAmount(profile.Income)
	rateRange := interestRateRange(profile.CreditScore)

	return models.EligibilityResult{
		ApprovalLikelihood: likelihood,
		DebtToIncomeRatio:  s.dti.Estimate(profile),
		EstimatedAmount:    estimatedAmount,
		InterestRateRange:  rateRange,
		MonthlyPaymentRange: models.Range{
			Min: monthlyPayment(estimatedAmount, rateRange.Min),
			Max: monthlyPayment(estimatedAmount, rateRange.Max),
		},
		CriteriaMatched: criteria,
	}
}

// creditTier maps a credit score to its weight fraction.
func creditTier(score int) float64 {
	switch {
	case score >= 750:
		return creditTierExcellent
	case score >= 700:
		return creditTierHigh
	case score >= 650:
		return creditTierMedium
	default:
		return creditTierLow
	}
}

// estimateLoanAmount derives the loan ceiling from annual income.
func estimateLoanAmount(income float64) float64 {
	maxMonthlyDebtPayment := income * maxDebtServiceShare / 12
	return maxMonthlyDebtPayment * loanTermMonths
}

// interestRateRange returns the annual rate band for a credit score, in
// percentage points.
func interestRateRange(score int) models.Range {
	switch {
	case score >= 750:
		return models.Range{Min: 3.5, Max: 4.0}
	case score >= 700:
		return models.Range{Min: 4.0, Max: 4.5}
	default:
		return models.Range{Min: 4.5, Max: 5.0}
	}
}

// monthlyPayment applies the standard fixed-rate amortization formula over
// the 360-month term. annualRate is in percentage points.
func monthlyPayment(amount, annualRate float64) float64 {
	monthlyRate := annualRate / 100 / 12
	if monthlyRate == 0 {
		return amount / loanTermMonths
	}
	return amount * monthlyRate / (1 - math.Pow(1+monthlyRate, -loanTermMonths))
}

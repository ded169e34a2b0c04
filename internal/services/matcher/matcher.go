// Package matcher scores service providers against borrower profiles and
// produces a ranked match list with human-readable reasons.
package matcher

import (
	"fmt"
	"sort"
	"strings"

	"property-finance-engine/internal/models"
)

// Additive component scores. Total possible is 100.
const (
	CreditGateScore     = 30
	SpecializationScore = 25
	LoanAmountScore     = 20
	ApprovalRateScore   = 15
	RatingScore         = 10
)

// Bonus thresholds.
const (
	highApprovalRate = 80.0
	highRating       = 4.5
)

// DefaultTopN is the number of matches returned per run.
const DefaultTopN = 3

// Matcher ranks providers for a profile. Stateless and safe for concurrent
// use across requests.
type Matcher struct {
	topN     int
	minScore int
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithTopN overrides the number of matches returned.
func WithTopN(n int) Option {
	return func(m *Matcher) { m.topN = n }
}

// WithMinScore drops matches below the given score. The default of zero
// keeps the source behavior: providers matching no criteria still rank.
func WithMinScore(score int) Option {
	return func(m *Matcher) { m.minScore = score }
}

// New creates a matcher returning the top 3 with no minimum score.
func New(opts ...Option) *Matcher {
	m := &Matcher{topN: DefaultTopN}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Match scores every provider against the profile and returns the top N by
// score, descending, ties broken by provider id ascending. An empty catalog
// yields an empty result, not an error. The full catalog is re-scanned per
// call; at tens to low hundreds of providers no index is warranted.
func (m *Matcher) Match(profile models.BorrowerProfile, providers []models.ServiceProvider) []models.ProviderMatch {
	matches := make([]models.ProviderMatch, 0, len(providers))

	for _, provider := range providers {
		match := scoreProvider(profile, provider)
		if match.MatchScore < m.minScore {
			continue
		}
		matches = append(matches, match)
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].MatchScore != matches[j].MatchScore {
			return matches[i].MatchScore > matches[j].MatchScore
		}
		return matches[i].ProviderID < matches[j].ProviderID
	})

	if len(matches) > m.topN {
		matches = matches[:m.topN]
	}
	return matches
}

// scoreProvider computes the additive match score for one provider. The
// component order fixes the reason ordering, not the sum.
func scoreProvider(profile models.BorrowerProfile, provider models.ServiceProvider) models.ProviderMatch {
	score := 0
	reasons := make([]string, 0, 5)

	if profile.CreditScore >= provider.MinCreditScore {
		score += CreditGateScore
		reasons = append(reasons, "Credit score meets requirements")
	}

	if hasSpecialization(provider.Specializations, string(profile.EmploymentStatus)) {
		score += SpecializationScore
		reasons = append(reasons, fmt.Sprintf("Specializes in %s borrowers", profile.EmploymentStatus))
	}

	if profile.RequestedLoanAmount >= provider.MinLoanAmount {
		score += LoanAmountScore
		reasons = append(reasons, "Loan amount within acceptable range")
	}

	if provider.ApprovalRate > highApprovalRate {
		score += ApprovalRateScore
		reasons = append(reasons, "High approval rate")
	}

	if provider.Rating >= highRating {
		score += RatingScore
		reasons = append(reasons, "Highly rated by customers")
	}

	return models.ProviderMatch{
		ProviderID:   provider.ID,
		ProviderName: provider.Name,
		MatchScore:   score,
		MatchReasons: reasons,
	}
}

// hasSpecialization checks the provider's specialization set for the
// employment status, case-insensitively.
func hasSpecialization(specializations []string, status string) bool {
	for _, s := range specializations {
		if strings.EqualFold(strings.TrimSpace(s), status) {
			return true
		}
	}
	return false
}

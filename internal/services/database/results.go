// Package database is the persistence adapter for the property finance engine.
package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"property-finance-engine/internal/models"
)

// EligibilityRecordRepository stores scoring runs. The table is append-only:
// every submission inserts a new row, historical scores are never rewritten.
type EligibilityRecordRepository struct {
	db *DB
}

// NewEligibilityRecordRepository creates a new eligibility record repository.
func NewEligibilityRecordRepository(db *DB) *EligibilityRecordRepository {
	return &EligibilityRecordRepository{db: db}
}

// Insert appends one scoring record for a user and returns its id.
func (r *EligibilityRecordRepository) Insert(ctx context.Context, userID string, profile models.BorrowerProfile, result models.EligibilityResult) (string, error) {
	criteriaJSON, err := json.Marshal(result.CriteriaMatched)
	if err != nil {
		return "", fmt.Errorf("failed to marshal criteria: %w", err)
	}

	id := uuid.New().String()
	now := time.Now().UTC()

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO eligibility_records (
			id, user_id, income, employment_status, credit_score, requested_loan_amount,
			approval_likelihood, debt_to_income_ratio, estimated_amount,
			interest_rate_min, interest_rate_max,
			monthly_payment_min, monthly_payment_max,
			criteria_matched, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		id, userID,
		profile.Income, string(profile.EmploymentStatus), profile.CreditScore, profile.RequestedLoanAmount,
		result.ApprovalLikelihood, result.DebtToIncomeRatio, result.EstimatedAmount,
		result.InterestRateRange.Min, result.InterestRateRange.Max,
		result.MonthlyPaymentRange.Min, result.MonthlyPaymentRange.Max,
		criteriaJSON, now,
	)
	if err != nil {
		return "", &models.DependencyError{Dependency: "persistence store", Err: err}
	}

	return id, nil
}

// GetByUserID retrieves a user's scoring history, newest first.
func (r *EligibilityRecordRepository) GetByUserID(ctx context.Context, userID string, limit int) ([]models.EligibilityRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, income, employment_status, credit_score, requested_loan_amount,
			   approval_likelihood, debt_to_income_ratio, estimated_amount,
			   interest_rate_min, interest_rate_max,
			   monthly_payment_min, monthly_payment_max,
			   criteria_matched, created_at
		FROM eligibility_records
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`,
		userID, limit)
	if err != nil {
		return nil, &models.DependencyError{Dependency: "persistence store", Err: err}
	}
	defer rows.Close()

	var records []models.EligibilityRecord
	for rows.Next() {
		var rec models.EligibilityRecord
		var status string
		var criteriaJSON []byte

		err := rows.Scan(
			&rec.ID, &rec.UserID,
			&rec.Profile.Income, &status, &rec.Profile.CreditScore, &rec.Profile.RequestedLoanAmount,
			&rec.Result.ApprovalLikelihood, &rec.Result.DebtToIncomeRatio, &rec.Result.EstimatedAmount,
			&rec.Result.InterestRateRange.Min, &rec.Result.InterestRateRange.Max,
			&rec.Result.MonthlyPaymentRange.Min, &rec.Result.MonthlyPaymentRange.Max,
			&criteriaJSON, &rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan eligibility record: %w", err)
		}

		rec.Profile.EmploymentStatus = models.EmploymentStatus(status)
		if len(criteriaJSON) > 0 {
			_ = json.Unmarshal(criteriaJSON, &rec.Result.CriteriaMatched)
		}

		records = append(records, rec)
	}
	return records, nil
}

// TopMatchesRepository stores the latest top-3 provider matches per user.
// One row per user: a new matching run replaces the prior one.
type TopMatchesRepository struct {
	db *DB
}

// NewTopMatchesRepository creates a new top matches repository.
func NewTopMatchesRepository(db *DB) *TopMatchesRepository {
	return &TopMatchesRepository{db: db}
}

// Upsert replaces the user's top matches with the latest run.
func (r *TopMatchesRepository) Upsert(ctx context.Context, userID string, matches []models.ProviderMatch) error {
	matchesJSON, err := json.Marshal(matches)
	if err != nil {
		return fmt.Errorf("failed to marshal matches: %w", err)
	}

	now := time.Now().UTC()

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO top_matches (user_id, matches, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		ON CONFLICT (user_id) DO UPDATE SET
			matches = EXCLUDED.matches,
			updated_at = EXCLUDED.updated_at`,
		userID, matchesJSON, now,
	)
	if err != nil {
		return &models.DependencyError{Dependency: "persistence store", Err: err}
	}

	return nil
}

// GetByUserID retrieves the user's latest top matches, or nil if none.
func (r *TopMatchesRepository) GetByUserID(ctx context.Context, userID string) (*models.TopMatchesRecord, error) {
	var rec models.TopMatchesRecord
	var matchesJSON []byte

	err := r.db.QueryRowContext(ctx, `
		SELECT user_id, matches, created_at, updated_at
		FROM top_matches
		WHERE user_id = $1`,
		userID).Scan(&rec.UserID, &matchesJSON, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, &models.DependencyError{Dependency: "persistence store", Err: err}
	}

	if err := json.Unmarshal(matchesJSON, &rec.Matches); err != nil {
		return nil, fmt.Errorf("failed to unmarshal matches: %w", err)
	}

	return &rec, nil
}

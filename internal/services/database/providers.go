// Package database is the persistence adapter for the property finance engine.
package database

import (
	"context"
	"encoding/json"
	"fmt"

	"property-finance-engine/internal/models"
)

// ProviderRepository reads the service provider catalog. The catalog is
// owned by the hosted store; the engine only reads it.
type ProviderRepository struct {
	db *DB
}

// NewProviderRepository creates a new provider repository.
func NewProviderRepository(db *DB) *ProviderRepository {
	return &ProviderRepository{db: db}
}

const providerColumns = `
	id, name, kind, min_credit_score, specializations, min_loan_amount,
	approval_rate, rating, created_at, updated_at, is_active`

// GetAllActive retrieves all active providers, ordered by id for
// deterministic downstream tie-breaking.
func (r *ProviderRepository) GetAllActive(ctx context.Context) ([]models.ServiceProvider, error) {
	query := `SELECT ` + providerColumns + `
		FROM service_providers
		WHERE is_active = true
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, &models.DependencyError{Dependency: "provider catalog", Err: err}
	}
	defer rows.Close()

	return scanProviders(rows)
}

// GetByKind retrieves active providers of one kind (broker or lawyer).
func (r *ProviderRepository) GetByKind(ctx context.Context, kind models.ProviderKind) ([]models.ServiceProvider, error) {
	query := `SELECT ` + providerColumns + `
		FROM service_providers
		WHERE is_active = true AND kind = $1
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, string(kind))
	if err != nil {
		return nil, &models.DependencyError{Dependency: "provider catalog", Err: err}
	}
	defer rows.Close()

	return scanProviders(rows)
}

// scanProviders scans provider rows, decoding the specializations JSON array.
func scanProviders(rows interface {
	Next() bool
	Scan(...interface{}) error
}) ([]models.ServiceProvider, error) {
	var providers []models.ServiceProvider
	for rows.Next() {
		var p models.ServiceProvider
		var kind string
		var specializationsJSON []byte

		err := rows.Scan(
			&p.ID, &p.Name, &kind, &p.MinCreditScore, &specializationsJSON,
			&p.MinLoanAmount, &p.ApprovalRate, &p.Rating,
			&p.CreatedAt, &p.UpdatedAt, &p.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan provider: %w", err)
		}

		p.Kind = models.ProviderKind(kind)
		if len(specializationsJSON) > 0 {
			if err := json.Unmarshal(specializationsJSON, &p.Specializations); err != nil {
				// Treat an unreadable set as no specializations
				p.Specializations = nil
			}
		}

		providers = append(providers, p)
	}
	return providers, nil
}

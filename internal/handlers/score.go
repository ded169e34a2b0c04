// Package handlers provides API Gateway handlers for the property finance engine.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	appConfig "property-finance-engine/internal/config"
	"property-finance-engine/internal/models"
	"property-finance-engine/internal/services/database"
	"property-finance-engine/internal/services/eligibility"
	"property-finance-engine/internal/utils"
)

// ScoreHandler handles POST /score-eligibility requests.
type ScoreHandler struct {
	scorer  *eligibility.Scorer
	records *database.EligibilityRecordRepository
	db      *database.DB
}

// ScoreRequest is the request body for eligibility scoring. Numeric fields
// come from a form and may be strings or numbers.
type ScoreRequest struct {
	UserID              string `json:"user_id,omitempty"`
	Income              any    `json:"income"`
	EmploymentStatus    string `json:"employment_status"`
	CreditScore         any    `json:"credit_score"`
	RequestedLoanAmount any    `json:"requested_loan_amount,omitempty"`
}

// NewScoreHandler creates a score handler. The database is optional: without
// it results are returned but not snapshotted.
func NewScoreHandler() (*ScoreHandler, error) {
	h := &ScoreHandler{scorer: eligibility.NewScorer()}

	cfg, err := appConfig.Load()
	if err != nil {
		return h, nil
	}

	db, err := database.New(cfg)
	if err != nil {
		utils.GetLogger().Warn("Scoring will run without persistence", zap.Error(err))
		return h, nil
	}

	h.db = db
	h.records = database.NewEligibilityRecordRepository(db)
	return h, nil
}

// Handle processes an eligibility scoring request.
func (h *ScoreHandler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger := utils.GetLogger()
	headers := corsHeaders()

	if request.HTTPMethod == "OPTIONS" {
		return preflightResponse(headers)
	}

	var req ScoreRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return errorResponse(headers, http.StatusBadRequest, "invalid JSON in request body")
	}

	profile, err := eligibility.ValidateProfile(models.RawProfile{
		Income:              req.Income,
		EmploymentStatus:    req.EmploymentStatus,
		CreditScore:         req.CreditScore,
		RequestedLoanAmount: req.RequestedLoanAmount,
	})
	if err != nil {
		return errorResponse(headers, http.StatusBadRequest, err.Error())
	}

	result := h.scorer.Score(*profile)

	// Snapshot persistence is append-only and never fails the scoring call.
	if h.records != nil && req.UserID != "" {
		if _, err := h.records.Insert(ctx, req.UserID, *profile, result); err != nil {
			logger.Error("Failed to persist eligibility record",
				zap.String("user_id", req.UserID),
				zap.Error(err))
		}
	}

	logger.Info("Scored eligibility",
		zap.Int("approval_likelihood", result.ApprovalLikelihood),
		zap.Int("credit_score", profile.CreditScore))

	return jsonResponse(headers, http.StatusOK, result)
}

// Close cleans up resources.
func (h *ScoreHandler) Close() {
	if h.db != nil {
		h.db.Close()
	}
}

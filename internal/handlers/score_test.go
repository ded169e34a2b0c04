package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-finance-engine/internal/models"
	"property-finance-engine/internal/services/eligibility"
)

// scoreHandler builds a handler without persistence, the same shape the
// constructor produces when the database is unreachable.
func scoreHandler() *ScoreHandler {
	return &ScoreHandler{scorer: eligibility.NewScorer()}
}

func TestScoreHandler_TopTierProfile(t *testing.T) {
	h := scoreHandler()

	body := `{"income": 100000, "employment_status": "Full-time", "credit_score": 750}`
	resp, err := h.Handle(context.Background(), postRequest(body))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result models.EligibilityResult
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &result))

	assert.Equal(t, 100, result.ApprovalLikelihood)
	assert.Equal(t, models.Range{Min: 3.5, Max: 4.0}, result.InterestRateRange)
	assert.Equal(t, []string{
		eligibility.LabelExcellentCredit,
		eligibility.LabelStrongIncome,
		eligibility.LabelStableEmployment,
	}, result.CriteriaMatched)
}

func TestScoreHandler_StringNumericFields(t *testing.T) {
	h := scoreHandler()

	body := `{"income": "55000", "employment_status": "contractor", "credit_score": "705"}`
	resp, err := h.Handle(context.Background(), postRequest(body))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result models.EligibilityResult
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &result))
	assert.Equal(t, models.Range{Min: 4.0, Max: 4.5}, result.InterestRateRange)
}

func TestScoreHandler_InvalidCreditScore(t *testing.T) {
	h := scoreHandler()

	body := `{"income": 50000, "employment_status": "full_time", "credit_score": 900}`
	resp, err := h.Handle(context.Background(), postRequest(body))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var payload map[string]string
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &payload))
	assert.Contains(t, payload["error"], "credit_score")
}

func TestScoreHandler_InvalidJSON(t *testing.T) {
	h := scoreHandler()

	resp, err := h.Handle(context.Background(), postRequest(`not json`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestScoreHandler_EmptyBody(t *testing.T) {
	h := scoreHandler()

	resp, err := h.Handle(context.Background(), postRequest(""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

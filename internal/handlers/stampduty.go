// Package handlers provides API Gateway handlers for the property finance engine.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"property-finance-engine/internal/services/eligibility"
)

// StampDutyHandler handles POST /stamp-duty requests. Stateless.
type StampDutyHandler struct{}

// NewStampDutyHandler creates a stamp duty handler.
func NewStampDutyHandler() *StampDutyHandler {
	return &StampDutyHandler{}
}

// StampDutyRequest is the request body for a stamp duty calculation.
type StampDutyRequest struct {
	Price          *float64 `json:"price"`
	FirstTimeBuyer bool     `json:"first_time_buyer"`
}

// Handle processes a stamp duty calculation request.
func (h *StampDutyHandler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	headers := corsHeaders()

	if request.HTTPMethod == "OPTIONS" {
		return preflightResponse(headers)
	}

	var req StampDutyRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return errorResponse(headers, http.StatusBadRequest, "invalid JSON in request body")
	}

	if req.Price == nil {
		return errorResponse(headers, http.StatusBadRequest, "missing required field: price")
	}
	if *req.Price < 0 {
		return errorResponse(headers, http.StatusBadRequest, "price cannot be negative")
	}

	result := eligibility.CalculateStampDuty(*req.Price, req.FirstTimeBuyer)

	return jsonResponse(headers, http.StatusOK, result)
}

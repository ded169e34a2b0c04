// Package handlers provides API Gateway handlers for the property finance engine.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	appConfig "property-finance-engine/internal/config"
	"property-finance-engine/internal/models"
	"property-finance-engine/internal/services/cache"
	"property-finance-engine/internal/services/database"
	"property-finance-engine/internal/services/eligibility"
	"property-finance-engine/internal/services/matcher"
	"property-finance-engine/internal/services/ses"
	"property-finance-engine/internal/utils"
)

// MatchHandler handles POST /match-providers requests. Providers are fetched
// from the catalog (cache-aside), never supplied by the caller.
type MatchHandler struct {
	matcher    *matcher.Matcher
	db         *database.DB
	providers  *database.ProviderRepository
	topMatches *database.TopMatchesRepository
	cache      *cache.ProviderCache
	notifier   *ses.Notifier
}

// MatchRequest is the request body for provider matching.
type MatchRequest struct {
	UserID  string            `json:"user_id,omitempty"`
	Email   string            `json:"email,omitempty"`
	Profile models.RawProfile `json:"profile"`
}

// MatchResponse contains the ranked matches.
type MatchResponse struct {
	Matches []models.ProviderMatch `json:"matches"`
}

// NewMatchHandler creates a match handler with its catalog, cache and
// persistence dependencies.
func NewMatchHandler() (*MatchHandler, error) {
	cfg, err := appConfig.Load()
	if err != nil {
		return nil, err
	}

	db, err := database.New(cfg)
	if err != nil {
		return nil, err
	}

	h := &MatchHandler{
		matcher:    matcher.New(matcher.WithTopN(cfg.MatchTopN), matcher.WithMinScore(cfg.MatchMinScore)),
		db:         db,
		providers:  database.NewProviderRepository(db),
		topMatches: database.NewTopMatchesRepository(db),
		cache:      cache.NewProviderCache(cfg.RedisAddr, cfg.ProviderCacheTTL),
	}

	// Notification is optional; matching works without SES.
	if cfg.SESSenderEmail != "" {
		notifier, err := ses.NewNotifier(context.Background())
		if err != nil {
			utils.GetLogger().Warn("Match notifications disabled", zap.Error(err))
		} else {
			h.notifier = notifier
		}
	}

	return h, nil
}

// Handle processes a provider matching request.
func (h *MatchHandler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger := utils.GetLogger()
	headers := corsHeaders()

	if request.HTTPMethod == "OPTIONS" {
		return preflightResponse(headers)
	}

	var req MatchRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return errorResponse(headers, http.StatusBadRequest, "invalid JSON in request body")
	}

	profile, err := eligibility.ValidateProfile(req.Profile)
	if err != nil {
		return errorResponse(headers, http.StatusBadRequest, err.Error())
	}

	providers, err := h.loadProviders(ctx)
	if err != nil {
		logger.Error("Failed to load provider catalog", zap.Error(err))
		return errorResponse(headers, http.StatusBadGateway, "provider catalog unavailable")
	}

	matches := h.matcher.Match(*profile, providers)

	logger.Info("Matched providers",
		zap.Int("catalog_size", len(providers)),
		zap.Int("matches", len(matches)))

	// Upsert replaces the user's previous top matches. Failures are reported
	// in the log but do not fail the matching response.
	if req.UserID != "" && len(matches) > 0 {
		if err := h.topMatches.Upsert(ctx, req.UserID, matches); err != nil {
			logger.Error("Failed to persist top matches",
				zap.String("user_id", req.UserID),
				zap.Error(err))
		}
	}

	if h.notifier != nil && req.Email != "" && len(matches) > 0 {
		go h.notify(req.Email, matches)
	}

	return jsonResponse(headers, http.StatusOK, MatchResponse{Matches: matches})
}

// loadProviders reads the active catalog, cache first.
func (h *MatchHandler) loadProviders(ctx context.Context) ([]models.ServiceProvider, error) {
	if providers, ok := h.cache.Get(ctx); ok {
		return providers, nil
	}

	providers, err := h.providers.GetAllActive(ctx)
	if err != nil {
		return nil, err
	}

	h.cache.Set(ctx, providers)
	return providers, nil
}

// notify sends the match email in the background with its own deadline.
func (h *MatchHandler) notify(email string, matches []models.ProviderMatch) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := h.notifier.SendTopMatches(ctx, email, matches); err != nil {
		utils.GetLogger().Warn("Match notification failed", zap.Error(err))
	}
}

// Close cleans up resources.
func (h *MatchHandler) Close() {
	if h.db != nil {
		h.db.Close()
	}
	if h.cache != nil {
		_ = h.cache.Close()
	}
}

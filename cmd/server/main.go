// Package main provides a local HTTP server for development and testing.
// It exposes the same scoring, matching and stamp duty endpoints that run
// behind API Gateway in production.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"property-finance-engine/internal/config"
	"property-finance-engine/internal/models"
	"property-finance-engine/internal/services/cache"
	"property-finance-engine/internal/services/database"
	"property-finance-engine/internal/services/eligibility"
	"property-finance-engine/internal/services/matcher"
	"property-finance-engine/internal/utils"
)

// Server holds all dependencies
type Server struct {
	db         *database.DB
	providers  *database.ProviderRepository
	records    *database.EligibilityRecordRepository
	topMatches *database.TopMatchesRepository
	cache      *cache.ProviderCache
	scorer     *eligibility.Scorer
	matcher    *matcher.Matcher
	config     *config.Config
}

// ScoreRequest is the scoring request body; numeric fields may be strings.
type ScoreRequest struct {
	UserID              string `json:"user_id,omitempty"`
	Income              any    `json:"income"`
	EmploymentStatus    string `json:"employment_status"`
	CreditScore         any    `json:"credit_score"`
	RequestedLoanAmount any    `json:"requested_loan_amount,omitempty"`
}

// MatchRequest is the matching request body.
type MatchRequest struct {
	UserID  string            `json:"user_id,omitempty"`
	Profile models.RawProfile `json:"profile"`
}

// StampDutyRequest is the stamp duty request body.
type StampDutyRequest struct {
	Price          *float64 `json:"price"`
	FirstTimeBuyer bool     `json:"first_time_buyer"`
}

func main() {
	if err := utils.InitLogger(os.Getenv("LOG_LEVEL")); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer utils.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Printf("Warning: Could not load config from environment: %v", err)
		cfg = &config.Config{MatchTopN: matcher.DefaultTopN}
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Printf("Warning: Could not connect to database: %v", err)
		log.Println("Server will run without persistence and provider catalog")
	}

	server := &Server{
		scorer:  eligibility.NewScorer(),
		matcher: matcher.New(matcher.WithTopN(cfg.MatchTopN), matcher.WithMinScore(cfg.MatchMinScore)),
		config:  cfg,
	}

	if db != nil {
		server.db = db
		server.providers = database.NewProviderRepository(db)
		server.records = database.NewEligibilityRecordRepository(db)
		server.topMatches = database.NewTopMatchesRepository(db)
		server.cache = cache.NewProviderCache(cfg.RedisAddr, cfg.ProviderCacheTTL)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/health", server.healthHandler)
	mux.HandleFunc("/api/health", server.healthHandler)

	mux.HandleFunc("/score-eligibility", server.scoreHandler)
	mux.HandleFunc("/api/score-eligibility", server.scoreHandler)

	mux.HandleFunc("/match-providers", server.matchHandler)
	mux.HandleFunc("/api/match-providers", server.matchHandler)

	mux.HandleFunc("/stamp-duty", server.stampDutyHandler)
	mux.HandleFunc("/api/stamp-duty", server.stampDutyHandler)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	handler := c.Handler(mux)

	port := getEnvOrDefault("PORT", "8080")
	addr := fmt.Sprintf("0.0.0.0:%s", port)

	log.Printf("Property Finance Engine API Server")
	log.Printf("Listening on http://localhost:%s", port)
	log.Printf("Health: http://localhost:%s/health", port)

	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	dbStatus := "not configured"
	if s.db != nil {
		dbStatus = "connected"
		if err := s.db.HealthCheck(r.Context()); err != nil {
			dbStatus = "disconnected"
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"database":  dbStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   "1.0.0",
	})
}

func (s *Server) scoreHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON in request body")
		return
	}

	profile, err := eligibility.ValidateProfile(models.RawProfile{
		Income:              req.Income,
		EmploymentStatus:    req.EmploymentStatus,
		CreditScore:         req.CreditScore,
		RequestedLoanAmount: req.RequestedLoanAmount,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := s.scorer.Score(*profile)

	if s.records != nil && req.UserID != "" {
		if _, err := s.records.Insert(r.Context(), req.UserID, *profile, result); err != nil {
			utils.GetLogger().Error("Failed to persist eligibility record",
				zap.String("user_id", req.UserID),
				zap.Error(err))
		}
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) matchHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if s.providers == nil {
		writeError(w, http.StatusBadGateway, "provider catalog unavailable")
		return
	}

	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON in request body")
		return
	}

	profile, err := eligibility.ValidateProfile(req.Profile)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	providers, err := s.loadProviders(r.Context())
	if err != nil {
		var derr *models.DependencyError
		if errors.As(err, &derr) {
			writeError(w, http.StatusBadGateway, "provider catalog unavailable")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	matches := s.matcher.Match(*profile, providers)

	if s.topMatches != nil && req.UserID != "" && len(matches) > 0 {
		if err := s.topMatches.Upsert(r.Context(), req.UserID, matches); err != nil {
			utils.GetLogger().Error("Failed to persist top matches",
				zap.String("user_id", req.UserID),
				zap.Error(err))
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"matches": matches})
}

func (s *Server) stampDutyHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req StampDutyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON in request body")
		return
	}

	if req.Price == nil {
		writeError(w, http.StatusBadRequest, "missing required field: price")
		return
	}
	if *req.Price < 0 {
		writeError(w, http.StatusBadRequest, "price cannot be negative")
		return
	}

	writeJSON(w, http.StatusOK, eligibility.CalculateStampDuty(*req.Price, req.FirstTimeBuyer))
}

func (s *Server) loadProviders(ctx context.Context) ([]models.ServiceProvider, error) {
	if s.cache != nil {
		if providers, ok := s.cache.Get(ctx); ok {
			return providers, nil
		}
	}

	providers, err := s.providers.GetAllActive(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, providers)
	}
	return providers, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/foryou-news/foryou-feed/internal/datasources"
	"github.com/foryou-news/foryou-feed/internal/domain"
)

// Health reports liveness plus whether the personalization path is even
// worth attempting.
type Health struct {
	Ranking   datasources.HealthChecker
	ModelName string
}

type HealthResponse struct {
	Status            string    `json:"status"`
	RankingConfigured bool      `json:"ranking_configured"`
	RankingModel      string    `json:"ranking_model,omitempty"`
	Timestamp         time.Time `json:"timestamp"`
}

func (c Health) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(HealthResponse{
		Status:            "ok",
		RankingConfigured: c.Ranking.Configured(),
		RankingModel:      c.ModelName,
		Timestamp:         time.Now().UTC(),
	}); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write health response", "error", err)
	}
}

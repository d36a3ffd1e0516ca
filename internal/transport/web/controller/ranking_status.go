package controller

import (
	"encoding/json"
	"net/http"

	"github.com/foryou-news/foryou-feed/internal/datasources"
	"github.com/foryou-news/foryou-feed/internal/domain"
)

// RankingStatus passes the remote model's status through for operators.
// A failing remote is reported in the body, not as an HTTP error: the
// service itself is fine either way.
type RankingStatus struct {
	Ranking datasources.HealthChecker
}

type RankingStatusResponse struct {
	Configured bool           `json:"configured"`
	Model      map[string]any `json:"model,omitempty"`
	Error      string         `json:"error,omitempty"`
	Message    string         `json:"message"`
}

func (c RankingStatus) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	w.Header().Set("Content-Type", "application/json")

	var resp RankingStatusResponse
	switch {
	case !c.Ranking.Configured():
		resp = RankingStatusResponse{
			Configured: false,
			Message:    "ranking service not configured",
		}
	default:
		status, err := c.Ranking.ModelStatus(ctx)
		if err != nil {
			logger.WarnContext(ctx, "unable to fetch ranking model status", "error", err)
			resp = RankingStatusResponse{
				Configured: true,
				Error:      err.Error(),
				Message:    "ranking service configured but model may not be ready",
			}
		} else {
			resp = RankingStatusResponse{
				Configured: true,
				Model:      status,
				Message:    "ranking service reachable",
			}
		}
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.ErrorContext(ctx, "unable to write ranking status to response", "error", err)
	}
}

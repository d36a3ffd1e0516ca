package controller

import (
	"encoding/json"
	"net/http"

	"github.com/foryou-news/foryou-feed/internal/command"
	"github.com/foryou-news/foryou-feed/internal/domain"
)

// FeedPersonalized re-ranks a candidate story set for the authenticated user
// via the ranking gateway. A degraded response is still a full response:
// the fallback ordering with personalized=false.
type FeedPersonalized struct {
	Command *command.RankFeed
}

type FeedPersonalizedRequest struct {
	Stories []domain.Story `json:"stories"`
}

type FeedPersonalizedResponse struct {
	Stories      []domain.Story `json:"stories"`
	Personalized bool           `json:"personalized"`
}

func (c FeedPersonalized) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var req FeedPersonalizedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.ErrorContext(ctx, "unable to parse personalized feed request", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	stories, personalized := c.Command.Execute(ctx, userID, req.Stories)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(FeedPersonalizedResponse{
		Stories:      stories,
		Personalized: personalized,
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write personalized feed to response", "error", err)
	}
}

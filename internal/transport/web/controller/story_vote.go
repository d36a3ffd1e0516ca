package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/foryou-news/foryou-feed/internal/datasources"
	"github.com/foryou-news/foryou-feed/internal/domain"
)

// StoryVote applies a vote to the per-user vote ledger. Repeating the same
// direction is a no-op; switching direction undoes the earlier vote first.
type StoryVote struct {
	Votes datasources.VoteRecorder
}

type StoryVoteResponse struct {
	StoryID     int                  `json:"story_id"`
	Direction   domain.VoteDirection `json:"direction"`
	PointsDelta int                  `json:"points_delta"`
}

func (c StoryVote) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)

	storyID, err := strconv.Atoi(vars["story_id"])
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse story ID", "story_id", vars["story_id"])
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	direction := domain.VoteDirection(vars["direction"])
	if !domain.ValidVoteDirection(direction) {
		logger.ErrorContext(ctx, "invalid vote direction", "direction", vars["direction"])
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	delta, err := c.Votes.RecordVote(ctx, userID, storyID, direction)
	if err != nil {
		logger.ErrorContext(ctx, "unable to record vote", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(StoryVoteResponse{
		StoryID:     storyID,
		Direction:   direction,
		PointsDelta: delta,
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write vote result to response", "error", err)
	}
}

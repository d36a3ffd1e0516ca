package controller

import (
	"encoding/json"
	"net/http"

	"github.com/foryou-news/foryou-feed/internal/command"
	"github.com/foryou-news/foryou-feed/internal/domain"
)

// EngagementTrack accepts engagement events from the UI. Acceptance is
// local; forwarding to the ranking service happens in the background and
// never affects the response.
type EngagementTrack struct {
	Command *command.RecordEngagement
}

type EngagementTrackRequest struct {
	StoryID   int              `json:"story_id"`
	EventType domain.EventKind `json:"event_type"`
	Metadata  map[string]any   `json:"metadata,omitempty"`
}

type EngagementTrackResponse struct {
	EventID string `json:"event_id"`
}

func (c EngagementTrack) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var req EngagementTrackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.ErrorContext(ctx, "unable to parse engagement event", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	event, err := c.Command.Execute(ctx, domain.EngagementEvent{
		UserID:   userID,
		StoryID:  req.StoryID,
		Kind:     req.EventType,
		Metadata: req.Metadata,
	})
	if err != nil {
		logger.ErrorContext(ctx, "unable to record engagement event", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	if err := json.NewEncoder(w).Encode(EngagementTrackResponse{EventID: event.ID}); err != nil {
		logger.ErrorContext(ctx, "unable to write event acceptance to response", "error", err)
	}
}

package datasources

import (
	"context"

	"github.com/foryou-news/foryou-feed/internal/domain"
)

// EventAppender accepts engagement events into an append-only log.
type EventAppender interface {
	AppendEvent(ctx context.Context, event domain.EngagementEvent) error
}

// VoteRecorder applies a vote to the per-user vote ledger and returns the
// resulting points adjustment for the story.
type VoteRecorder interface {
	RecordVote(
		ctx context.Context,
		userID string,
		storyID int,
		direction domain.VoteDirection,
	) (delta int, err error)
}

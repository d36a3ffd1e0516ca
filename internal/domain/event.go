package domain

import (
	"time"
)

// EventKind is the closed set of engagement event types.
type EventKind string

const (
	EventClick   EventKind = "click"
	EventUpvote  EventKind = "upvote"
	EventComment EventKind = "comment"
)

var ValidEventKinds = []EventKind{
	EventClick,
	EventUpvote,
	EventComment,
}

// EngagementEvent records one user interaction with a story. Events are
// immutable once created and only ever appended, never updated or deleted.
// Metadata is opaque key-value data forwarded as-is to the ranking service.
type EngagementEvent struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	StoryID   int            `json:"story_id"`
	Kind      EventKind      `json:"event_type"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"timestamp"`
}

func ValidEventKind(kind EventKind) bool {
	for _, k := range ValidEventKinds {
		if k == kind {
			return true
		}
	}
	return false
}

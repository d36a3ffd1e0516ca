package memory

import (
	"context"
	"sync"

	"github.com/foryou-news/foryou-feed/internal/datasources"
	"github.com/foryou-news/foryou-feed/internal/domain"
)

var _ datasources.EventAppender = (*EventLog)(nil)

// EventLog is the in-process append-only engagement log. Events are never
// mutated or removed once appended.
type EventLog struct {
	mu     sync.RWMutex
	events []domain.EngagementEvent
}

func NewEventLog() *EventLog {
	return &EventLog{}
}

func (l *EventLog) AppendEvent(_ context.Context, event domain.EngagementEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.events = append(l.events, event)
	return nil
}

// Events returns a copy of the log in append order.
func (l *EventLog) Events() []domain.EngagementEvent {
	l.mu.RLock()
	defer l.mu.RUnlock()

	events := make([]domain.EngagementEvent, len(l.events))
	copy(events, l.events)
	return events
}

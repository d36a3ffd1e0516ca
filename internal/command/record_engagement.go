package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/foryou-news/foryou-feed/internal/datasources"
	"github.com/foryou-news/foryou-feed/internal/domain"
	"github.com/foryou-news/foryou-feed/internal/metrics"
)

const DefaultForwardTimeout = 5 * time.Second

// forwardQueueSize bounds how many accepted events may be waiting for
// forwarding. Events beyond this are dropped, never blocking the caller.
const forwardQueueSize = 100

// RecordEngagement accepts engagement events into the local append-only log
// and forwards them to the ranking service best-effort, from a background
// worker decoupled from the request that produced them. Acceptance never
// depends on the forwarding outcome.
type RecordEngagement struct {
	log       datasources.EventAppender
	forwarder interface {
		datasources.EventForwarder
		datasources.HealthChecker
	}
	timeout time.Duration
	queue   chan domain.EngagementEvent
}

func NewRecordEngagement(
	ctx context.Context,
	log datasources.EventAppender,
	forwarder interface {
		datasources.EventForwarder
		datasources.HealthChecker
	},
	timeout time.Duration,
) *RecordEngagement {
	if timeout <= 0 {
		timeout = DefaultForwardTimeout
	}

	c := &RecordEngagement{
		log:       log,
		forwarder: forwarder,
		timeout:   timeout,
		queue:     make(chan domain.EngagementEvent, forwardQueueSize),
	}

	// If the service shuts down, queued events are lost with it; the log
	// they came from is in-process anyway.
	go c.forwardLoop(context.WithoutCancel(ctx))

	return c
}

// Execute validates and accepts an event, assigning an ID and timestamp when
// absent, and enqueues it for forwarding. Success reflects local acceptance
// only.
func (c *RecordEngagement) Execute(
	ctx context.Context,
	event domain.EngagementEvent,
) (domain.EngagementEvent, error) {
	if !domain.ValidEventKind(event.Kind) {
		return domain.EngagementEvent{}, fmt.Errorf("invalid event type [%s]", event.Kind)
	}

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	if err := c.log.AppendEvent(ctx, event); err != nil {
		return domain.EngagementEvent{}, fmt.Errorf("appending event: %w", err)
	}

	select {
	case c.queue <- event:
	default:
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "forwarding queue full, dropping event", "event_id", event.ID)
		metrics.EventsDropped.Inc()
	}

	return event, nil
}

func (c *RecordEngagement) forwardLoop(ctx context.Context) {
	for event := range c.queue {
		logger := domain.LoggerFromContext(ctx).With("event_id", event.ID)

		if !c.forwarder.Configured() {
			logger.DebugContext(ctx, "ranking service not configured, skipping event forwarding")
			continue
		}

		forwardCtx, cancel := context.WithTimeout(ctx, c.timeout)
		err := c.forwarder.ForwardEvent(forwardCtx, event)
		cancel()

		if err != nil {
			logger.WarnContext(ctx, "failed to forward engagement event", "error", err)
			metrics.EventForwardFailures.Inc()
			continue
		}

		metrics.EventsForwarded.Inc()
	}
}

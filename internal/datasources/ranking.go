package datasources

import (
	"context"
	"errors"

	"github.com/foryou-news/foryou-feed/internal/domain"
)

// ErrNotConfigured is returned by ranking service drivers when no remote
// service is configured. It marks a recognized state, not a failure.
var ErrNotConfigured = errors.New("ranking service not configured")

// RankingService combines every capability of the remote ranking backend.
type RankingService interface {
	StoryRanker
	EventForwarder
	HealthChecker
}

type StoryRanker interface {
	// RankStories requests a personalized ordering of up to limit stories
	// for a user. The result may cover fewer stories than requested.
	RankStories(ctx context.Context, userID string, limit int) (domain.RankingResult, error)
}

type EventForwarder interface {
	ForwardEvent(ctx context.Context, event domain.EngagementEvent) error
}

type HealthChecker interface {
	// Configured reports whether a remote ranking service is available at
	// all. When false, callers skip straight to fallback behaviour.
	Configured() bool

	// ModelStatus fetches the remote model's status document.
	ModelStatus(ctx context.Context) (map[string]any, error)
}

// NullRankingService is the driver used when no ranking service is
// configured. Every call reports the unconfigured state.
type NullRankingService struct{}

var _ RankingService = NullRankingService{}

func (NullRankingService) RankStories(_ context.Context, _ string, _ int) (domain.RankingResult, error) {
	return domain.RankingResult{}, ErrNotConfigured
}

func (NullRankingService) ForwardEvent(_ context.Context, _ domain.EngagementEvent) error {
	return ErrNotConfigured
}

func (NullRankingService) Configured() bool {
	return false
}

func (NullRankingService) ModelStatus(_ context.Context) (map[string]any, error) {
	return nil, ErrNotConfigured
}

package command

import (
	"context"
	"time"

	"github.com/foryou-news/foryou-feed/internal/datasources"
	"github.com/foryou-news/foryou-feed/internal/domain"
	"github.com/foryou-news/foryou-feed/internal/metrics"
)

const DefaultRankTimeout = 5 * time.Second

// RankFeed asks the remote ranking service for a personalized ordering of a
// candidate story set, falling back to raw popularity order whenever the
// service is unconfigured, unreachable, or returns garbage.
type RankFeed struct {
	Ranker interface {
		datasources.StoryRanker
		datasources.HealthChecker
	}
	Timeout time.Duration
}

// Execute returns the reordered candidates and whether the ordering is
// personalized. It never returns an error and never drops a candidate: the
// worst case is the fallback ordering with no rank scores attached.
func (c *RankFeed) Execute(
	ctx context.Context,
	userID string,
	candidates []domain.Story,
) ([]domain.Story, bool) {
	if len(candidates) == 0 {
		return []domain.Story{}, false
	}

	if !c.Ranker.Configured() {
		metrics.RankFallbacks.WithLabelValues(metrics.ReasonUnconfigured).Inc()
		return domain.SortByPoints(candidates), false
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultRankTimeout
	}
	rankCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	metrics.RankRequests.Inc()
	result, err := c.Ranker.RankStories(rankCtx, userID, len(candidates))
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "personalized ranking unavailable, serving fallback ordering",
			"user_id", userID,
			"candidates", len(candidates),
			"error", err,
		)
		metrics.RankFallbacks.WithLabelValues(metrics.ReasonRemoteError).Inc()
		return domain.SortByPoints(candidates), false
	}

	return domain.ApplyRanking(candidates, result), true
}

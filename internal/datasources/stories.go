package datasources

import (
	"context"

	"github.com/foryou-news/foryou-feed/internal/domain"
)

// StorySource supplies externally-sourced stories. Implementations include
// the Hacker News API client and the Redis cache wrapped around it.
type StorySource interface {
	TopStoryLister
	StoryFetcher
}

type TopStoryLister interface {
	TopStoryIDs(ctx context.Context, limit int) ([]int, error)
}

type StoryFetcher interface {
	FetchStories(ctx context.Context, ids []int) ([]domain.Story, error)
}

package storycache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/foryou-news/foryou-feed/internal/datasources"
	"github.com/foryou-news/foryou-feed/internal/domain"
)

// listTTL is deliberately short: the upstream top-stories list churns far
// faster than individual story records do.
const listTTL = time.Minute

var _ datasources.StorySource = (*RedisCache)(nil)

// RedisCache sits in front of another StorySource and caches its results in
// Redis as JSON with a TTL. Cache failures are logged and fall through to
// the wrapped source; the cache never turns a working source into an error.
type RedisCache struct {
	rdb      *redis.Client
	source   datasources.StorySource
	storyTTL time.Duration
}

func New(rdb *redis.Client, source datasources.StorySource, storyTTL time.Duration) *RedisCache {
	return &RedisCache{
		rdb:      rdb,
		source:   source,
		storyTTL: storyTTL,
	}
}

func topStoriesKey(limit int) string {
	return fmt.Sprintf("feed:topstories:%d", limit)
}

func storyKey(id int) string {
	return fmt.Sprintf("feed:story:%d", id)
}

func (c *RedisCache) TopStoryIDs(ctx context.Context, limit int) ([]int, error) {
	logger := domain.LoggerFromContext(ctx)

	cached, err := c.rdb.Get(ctx, topStoriesKey(limit)).Bytes()
	if err == nil {
		var ids []int
		if unmarshalErr := json.Unmarshal(cached, &ids); unmarshalErr == nil {
			return ids, nil
		}
		logger.WarnContext(ctx, "discarding unreadable cached top stories list", "limit", limit)
	} else if err != redis.Nil {
		logger.WarnContext(ctx, "top stories cache read failed", "error", err)
	}

	ids, err := c.source.TopStoryIDs(ctx, limit)
	if err != nil {
		return nil, err
	}

	if encoded, marshalErr := json.Marshal(ids); marshalErr == nil {
		if setErr := c.rdb.Set(ctx, topStoriesKey(limit), encoded, listTTL).Err(); setErr != nil {
			logger.WarnContext(ctx, "top stories cache write failed", "error", setErr)
		}
	}

	return ids, nil
}

func (c *RedisCache) FetchStories(ctx context.Context, ids []int) ([]domain.Story, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	logger := domain.LoggerFromContext(ctx)

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = storyKey(id)
	}

	byID := make(map[int]domain.Story, len(ids))
	cached, err := c.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		logger.WarnContext(ctx, "story cache read failed", "error", err)
		cached = nil
	}

	for _, value := range cached {
		raw, ok := value.(string)
		if !ok {
			continue
		}
		var story domain.Story
		if unmarshalErr := json.Unmarshal([]byte(raw), &story); unmarshalErr != nil {
			continue
		}
		byID[story.ID] = story
	}

	var missing []int
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 {
		fetched, err := c.source.FetchStories(ctx, missing)
		if err != nil {
			return nil, err
		}

		for _, story := range fetched {
			byID[story.ID] = story
			if encoded, marshalErr := json.Marshal(story); marshalErr == nil {
				if setErr := c.rdb.Set(ctx, storyKey(story.ID), encoded, c.storyTTL).Err(); setErr != nil {
					logger.WarnContext(ctx, "story cache write failed", "story_id", story.ID, "error", setErr)
				}
			}
		}
	}

	stories := make([]domain.Story, 0, len(ids))
	for _, id := range ids {
		if story, ok := byID[id]; ok {
			stories = append(stories, story)
		}
	}

	return stories, nil
}

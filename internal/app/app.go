package app

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/foryou-news/foryou-feed/internal/command"
	"github.com/foryou-news/foryou-feed/internal/datasources"
	"github.com/foryou-news/foryou-feed/internal/datasources/hackernews"
	"github.com/foryou-news/foryou-feed/internal/datasources/memory"
	"github.com/foryou-news/foryou-feed/internal/datasources/shaped"
	"github.com/foryou-news/foryou-feed/internal/datasources/storycache"
	"github.com/foryou-news/foryou-feed/internal/domain"
	"github.com/foryou-news/foryou-feed/internal/transport/web/router"
	"github.com/foryou-news/foryou-feed/internal/transport/web/server"
	"github.com/foryou-news/foryou-feed/internal/transport/web/tokens"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	source, err := setupStorySource(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up story source: %w", err)
	}

	ranking, modelName := setupRankingService(ctx)

	users, err := setupUserStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up user store: %w", err)
	}

	signer := tokens.NewSigner(
		MustGetEnvAsString(ctx, "SESSION_SECRET"),
		GetEnvAsDurationOrDefault(ctx, "SESSION_TTL", 24*time.Hour),
	)

	rankFeedCmd := &command.RankFeed{
		Ranker:  ranking,
		Timeout: GetEnvAsDurationOrDefault(ctx, "SHAPED_TIMEOUT", command.DefaultRankTimeout),
	}

	recordEngagementCmd := command.NewRecordEngagement(
		ctx,
		memory.NewEventLog(),
		ranking,
		GetEnvAsDurationOrDefault(ctx, "SHAPED_TIMEOUT", command.DefaultForwardTimeout),
	)

	httpRouter, err := router.MakeRouter(router.Config{
		Source:           source,
		Ranking:          ranking,
		Users:            users,
		Votes:            memory.NewVoteLedger(),
		RankFeed:         rankFeedCmd,
		RecordEngagement: recordEngagementCmd,
		Signer:           signer,
		ModelName:        modelName,
		FetchLimit:       GetEnvAsIntOrDefault(ctx, "FEED_FETCH_LIMIT", 30),
		FeedBaseURL:      GetEnvAsStringOrDefault("FEED_BASE_URL", "http://localhost:8080"),
		FeedCacheMaxAge:  GetEnvAsDurationOrDefault(ctx, "FEED_CACHE_MAX_AGE", time.Minute),
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:      MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:  MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostname: GetEnvAsStringOrDefault("HTTP_AUTOCERT_HOSTNAME", ""),
			Router:           httpRouter,
		},
	}, nil
}

func setupStorySource(ctx context.Context) (datasources.StorySource, error) {
	client := hackernews.NewClient(
		GetEnvAsStringOrDefault("HN_API_BASE_URL", hackernews.DefaultBaseURL),
		GetEnvAsDurationOrDefault(ctx, "HN_API_TIMEOUT", 10*time.Second),
	)

	redisAddr := GetEnvAsStringOrDefault("REDIS_ADDR", "")
	if redisAddr == "" {
		return client, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: GetEnvAsStringOrDefault("REDIS_PASSWORD", ""),
		DB:       GetEnvAsIntOrDefault(ctx, "REDIS_DB", 0),
	})

	return storycache.New(
		rdb,
		client,
		GetEnvAsDurationOrDefault(ctx, "STORY_CACHE_TTL", 10*time.Minute),
	), nil
}

func setupRankingService(ctx context.Context) (datasources.RankingService, string) {
	modelName := GetEnvAsStringOrDefault("SHAPED_MODEL_NAME", "hn_personalization")

	apiKey := GetEnvAsStringOrDefault("SHAPED_API_KEY", "")
	if apiKey == "" {
		logger := domain.LoggerFromContext(ctx)
		logger.InfoContext(ctx, "no ranking service credential, personalization disabled")
		return datasources.NullRankingService{}, modelName
	}

	return shaped.NewClient(
		GetEnvAsStringOrDefault("SHAPED_BASE_URL", shaped.DefaultBaseURL),
		apiKey,
		modelName,
		GetEnvAsDurationOrDefault(ctx, "SHAPED_TIMEOUT", command.DefaultRankTimeout),
	), modelName
}

// setupUserStore seeds the in-memory store with the demo account so the UI
// has something to log into out of the box.
func setupUserStore(ctx context.Context) (datasources.UserRepository, error) {
	users := memory.NewUserStore()

	_, err := users.CreateUser(ctx, domain.User{
		Email:       GetEnvAsStringOrDefault("DEMO_USER_EMAIL", "demo@example.com"),
		Name:        "Demo User",
		Preferences: []domain.Topic{domain.TopicTechnology, domain.TopicStartups, domain.TopicWeb},
	}, GetEnvAsStringOrDefault("DEMO_USER_PASSWORD", "password"))
	if err != nil {
		return nil, fmt.Errorf("seeding demo user: %w", err)
	}

	return users, nil
}

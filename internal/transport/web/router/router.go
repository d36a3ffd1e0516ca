package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/foryou-news/foryou-feed/internal/command"
	"github.com/foryou-news/foryou-feed/internal/datasources"
	"github.com/foryou-news/foryou-feed/internal/transport/web/controller"
	"github.com/foryou-news/foryou-feed/internal/transport/web/tokens"
)

type Config struct {
	Source           datasources.StorySource
	Ranking          datasources.RankingService
	Users            datasources.UserRepository
	Votes            datasources.VoteRecorder
	RankFeed         *command.RankFeed
	RecordEngagement *command.RecordEngagement
	Signer           *tokens.Signer
	ModelName        string
	FetchLimit       int
	FeedBaseURL      string
	FeedCacheMaxAge  time.Duration
}

func MakeRouter(cfg Config) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(NewAuthMiddleware([]AuthValidator{
		NewSessionTokenValidator(cfg.Signer),
	}))

	r.Handle("/v1/auth/signup", controller.AuthSignup{
		Users:  cfg.Users,
		Signer: cfg.Signer,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/auth/login", controller.AuthLogin{
		Users:  cfg.Users,
		Signer: cfg.Signer,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/feed", controller.FeedList{
		Source:      cfg.Source,
		Users:       cfg.Users,
		FetchLimit:  cfg.FetchLimit,
		CacheMaxAge: cfg.FeedCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/feed/personalized", requireAuthMiddleware(controller.FeedPersonalized{
		Command: cfg.RankFeed,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/engagement/track", requireAuthMiddleware(controller.EngagementTrack{
		Command: cfg.RecordEngagement,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/stories/{story_id}/vote/{direction}", requireAuthMiddleware(controller.StoryVote{
		Votes: cfg.Votes,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/health", controller.Health{
		Ranking:   cfg.Ranking,
		ModelName: cfg.ModelName,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/ranking/status", controller.RankingStatus{
		Ranking: cfg.Ranking,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/rss", controller.RSS{
		FeedHostname: cfg.FeedBaseURL,
		FeedPath:     "/rss",
		Source:       cfg.Source,
		FetchLimit:   cfg.FetchLimit,
		CacheMaxAge:  cfg.FeedCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r, nil
}

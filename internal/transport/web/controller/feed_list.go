package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/foryou-news/foryou-feed/internal/datasources"
	"github.com/foryou-news/foryou-feed/internal/domain"
)

// FeedList serves the main feed: stories from the item source, filtered,
// relevance-sorted, and paginated.
type FeedList struct {
	Source      datasources.StorySource
	Users       datasources.UserGetter
	FetchLimit  int
	CacheMaxAge time.Duration
}

type FeedListResponse struct {
	Data     []domain.Story   `json:"data"`
	Metadata FeedListMetadata `json:"metadata"`
}

type FeedListMetadata struct {
	Count   int  `json:"count"`
	HasMore bool `json:"has_more"`
}

func (c FeedList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	category, err := categoryFromQuery(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse category in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	page, pageSize, err := parsePagination(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse pagination in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	preferences, err := c.preferencesForRequest(r)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse topics in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	ids, err := c.Source.TopStoryIDs(ctx, c.FetchLimit)
	if err != nil {
		logger.ErrorContext(ctx, "unable to list top story IDs", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	stories, err := c.Source.FetchStories(ctx, ids)
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch stories", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	visible, hasMore := domain.ComposeFeed(stories, category, preferences, pageSize, page)

	w.Header().Set("Content-Type", "application/json")
	if domain.UserIDFromContext(ctx) == "" && len(preferences) == 0 {
		w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))
	}

	if err := json.NewEncoder(w).Encode(FeedListResponse{
		Data: visible,
		Metadata: FeedListMetadata{
			Count:   len(visible),
			HasMore: hasMore,
		},
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}

// preferencesForRequest resolves the topic preferences for a request: an
// explicit topics parameter wins, otherwise an authenticated user's stored
// preferences apply, otherwise no personalization.
func (c FeedList) preferencesForRequest(r *http.Request) ([]domain.Topic, error) {
	q := r.URL.Query()
	if q.Has("topics") {
		raw := strings.Split(q.Get("topics"), ",")
		if len(raw) == 1 && strings.TrimSpace(raw[0]) == "" {
			return nil, nil
		}
		return domain.ParseTopics(raw)
	}

	userID := domain.UserIDFromContext(r.Context())
	if userID == "" || c.Users == nil {
		return nil, nil
	}

	user, err := c.Users.GetUser(r.Context(), userID)
	if err != nil {
		// A stale session is not an error for a public listing.
		return nil, nil
	}

	return user.Preferences, nil
}

func categoryFromQuery(q url.Values) (domain.Category, error) {
	if !q.Has("category") {
		return domain.CategoryAll, nil
	}

	category := domain.Category(strings.ToLower(q.Get("category")))
	if category == domain.CategoryAll {
		return domain.CategoryAll, nil
	}
	if !slices.Contains(domain.ValidCategories, category) {
		return "", fmt.Errorf("unrecognised category [%s]", category)
	}

	return category, nil
}

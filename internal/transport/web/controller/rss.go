package controller

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/feeds"

	"github.com/foryou-news/foryou-feed/internal/datasources"
	"github.com/foryou-news/foryou-feed/internal/domain"
)

// RSS serves the current top feed as RSS, for readers that would rather not
// use the JSON API.
type RSS struct {
	FeedHostname string
	FeedPath     string
	Source       datasources.StorySource
	FetchLimit   int
	CacheMaxAge  time.Duration
}

func (c RSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	feed := &feeds.Feed{
		Title:       "For You Feed",
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: "Top externally-sourced news stories",
		Created:     time.Now(),
	}

	ids, err := c.Source.TopStoryIDs(ctx, c.FetchLimit)
	if err != nil {
		logger.ErrorContext(ctx, "unable to list top story IDs for feed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	stories, err := c.Source.FetchStories(ctx, ids)
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch stories for feed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	sorted, _ := domain.ComposeFeed(stories, domain.CategoryAll, nil, len(stories), 1)
	for _, story := range sorted {
		link := story.URL
		if link == "" {
			link = "https://news.ycombinator.com/item?id=" + strconv.Itoa(story.ID)
		}

		feed.Items = append(feed.Items, &feeds.Item{
			Id:          strconv.Itoa(story.ID),
			IsPermaLink: "false",
			Title:       story.Title,
			Link:        &feeds.Link{Href: link},
			Description: fmt.Sprintf("%d points, %d comments", story.Points, story.Comments),
			Author:      &feeds.Author{Name: story.Author},
			Created:     story.CreatedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}

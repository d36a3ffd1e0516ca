package hackernews

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/foryou-news/foryou-feed/internal/datasources"
	"github.com/foryou-news/foryou-feed/internal/domain"
)

const DefaultBaseURL = "https://hacker-news.firebaseio.com/v0"

// maxConcurrentFetches bounds the item fan-out per FetchStories call.
const maxConcurrentFetches = 8

var _ datasources.StorySource = (*Client)(nil)

// Client is a minimal Hacker News API client.
// Docs: https://github.com/HackerNews/API
type Client struct {
	baseURL    string
	httpClient *http.Client
	now        func() time.Time
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		now:        time.Now,
	}
}

// item mirrors the subset of HN item fields the feed cares about.
type item struct {
	ID          int    `json:"id"`
	Type        string `json:"type"`
	By          string `json:"by"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Time        int64  `json:"time"`
	Descendants int    `json:"descendants"`
	Score       int    `json:"score"`
	Deleted     bool   `json:"deleted"`
	Dead        bool   `json:"dead"`
}

// TopStoryIDs returns up to limit IDs from the top stories list.
func (c *Client) TopStoryIDs(ctx context.Context, limit int) ([]int, error) {
	var ids []int
	if err := c.get(ctx, "/topstories.json", &ids); err != nil {
		return nil, fmt.Errorf("listing top stories: %w", err)
	}

	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}

	return ids, nil
}

// FetchStories resolves item IDs into stories with bounded concurrency.
// Items that fail to fetch, or that come back deleted or dead, are skipped
// rather than failing the whole batch.
func (c *Client) FetchStories(ctx context.Context, ids []int) ([]domain.Story, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	results := make([]*domain.Story, len(ids))

	grp, grpCtx := errgroup.WithContext(ctx)
	grp.SetLimit(maxConcurrentFetches)
	for i, id := range ids {
		grp.Go(func() error {
			it, err := c.fetchItem(grpCtx, id)
			if err != nil {
				logger := domain.LoggerFromContext(grpCtx)
				logger.WarnContext(grpCtx, "skipping unfetchable story", "story_id", id, "error", err)
				return nil
			}
			if it.Deleted || it.Dead || it.Title == "" {
				return nil
			}

			story := c.convertItem(it)
			results[i] = &story
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return nil, fmt.Errorf("fetching stories: %w", err)
	}

	stories := make([]domain.Story, 0, len(ids))
	for _, story := range results {
		if story != nil {
			stories = append(stories, *story)
		}
	}

	return stories, nil
}

func (c *Client) fetchItem(ctx context.Context, id int) (item, error) {
	var it item
	if err := c.get(ctx, fmt.Sprintf("/item/%d.json", id), &it); err != nil {
		return item{}, err
	}
	return it, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status [%d] from [%s]", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response from [%s]: %w", path, err)
	}

	return nil
}

func (c *Client) convertItem(it item) domain.Story {
	author := it.By
	if author == "" {
		author = "unknown"
	}

	createdAt := time.Unix(it.Time, 0).UTC()

	return domain.Story{
		ID:        it.ID,
		Title:     it.Title,
		URL:       it.URL,
		Points:    it.Score,
		Author:    author,
		TimeAgo:   AgeString(createdAt, c.now()),
		CreatedAt: createdAt,
		Comments:  it.Descendants,
		Category:  domain.CategoryForStory(it.Type, it.Title),
	}
}

// AgeString renders a timestamp as the human-readable age shown in the feed.
func AgeString(created, now time.Time) string {
	age := now.Sub(created)
	switch {
	case age < time.Minute:
		return "just now"
	case age < time.Hour:
		return fmt.Sprintf("%d minutes ago", int(age.Minutes()))
	case age < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(age.Hours()))
	default:
		return fmt.Sprintf("%d days ago", int(age.Hours()/24))
	}
}

package shaped

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/foryou-news/foryou-feed/internal/datasources"
	"github.com/foryou-news/foryou-feed/internal/domain"
)

const DefaultBaseURL = "https://api.shaped.ai"

var _ datasources.RankingService = (*Client)(nil)

// Client talks to the Shaped ranking and event API. All calls carry the
// bearer credential; a client constructed without one reports unconfigured
// and callers are expected to skip remote calls entirely.
type Client struct {
	baseURL    string
	apiKey     string
	modelName  string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey, modelName string, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		modelName:  modelName,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type rankRequest struct {
	ModelName string `json:"model_name"`
	UserID    string `json:"user_id"`
	Limit     int    `json:"limit"`
}

type rankResponse struct {
	IDs    []string  `json:"ids"`
	Scores []float64 `json:"scores"`
}

// RankStories requests a personalized ordering for a user. A response whose
// identifier and score lists disagree in length is treated as malformed.
func (c *Client) RankStories(
	ctx context.Context,
	userID string,
	limit int,
) (domain.RankingResult, error) {
	if !c.Configured() {
		return domain.RankingResult{}, datasources.ErrNotConfigured
	}

	var resp rankResponse
	err := c.do(ctx, http.MethodPost, "/v1/rank", rankRequest{
		ModelName: c.modelName,
		UserID:    userID,
		Limit:     limit,
	}, &resp)
	if err != nil {
		return domain.RankingResult{}, fmt.Errorf("requesting ranking: %w", err)
	}

	if len(resp.IDs) != len(resp.Scores) {
		return domain.RankingResult{}, fmt.Errorf(
			"malformed ranking response: %d ids but %d scores", len(resp.IDs), len(resp.Scores))
	}

	return domain.RankingResult{IDs: resp.IDs, Scores: resp.Scores}, nil
}

type eventPayload struct {
	UserID     string         `json:"user_id"`
	ItemID     string         `json:"item_id"`
	EventType  string         `json:"event_type"`
	Timestamp  string         `json:"timestamp"`
	Properties map[string]any `json:"properties"`
}

// ForwardEvent sends an engagement event to the event sink. Story IDs are
// stringified and the metadata travels as free-form properties.
func (c *Client) ForwardEvent(ctx context.Context, event domain.EngagementEvent) error {
	if !c.Configured() {
		return datasources.ErrNotConfigured
	}

	properties := make(map[string]any, len(event.Metadata)+1)
	for k, v := range event.Metadata {
		properties[k] = v
	}
	properties["story_id"] = event.StoryID

	err := c.do(ctx, http.MethodPost, "/v1/events", eventPayload{
		UserID:     event.UserID,
		ItemID:     strconv.Itoa(event.StoryID),
		EventType:  string(event.Kind),
		Timestamp:  event.CreatedAt.UTC().Format(time.RFC3339),
		Properties: properties,
	}, nil)
	if err != nil {
		return fmt.Errorf("forwarding event [%s]: %w", event.ID, err)
	}

	return nil
}

// ModelStatus fetches the remote model's status document as-is.
func (c *Client) ModelStatus(ctx context.Context) (map[string]any, error) {
	if !c.Configured() {
		return nil, datasources.ErrNotConfigured
	}

	var status map[string]any
	err := c.do(ctx, http.MethodGet, "/v1/models/"+c.modelName, nil, &status)
	if err != nil {
		return nil, fmt.Errorf("fetching model status: %w", err)
	}

	return status, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status [%d] from [%s]: %s", resp.StatusCode, path, msg)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response from [%s]: %w", path, err)
	}

	return nil
}

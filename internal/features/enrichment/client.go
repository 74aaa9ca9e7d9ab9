package enrichment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go-contacthub/internal/config"
)

// ClientError is raised for any network failure or non-2xx response from the
// relationship-intelligence API. Callers are expected to catch it and fall
// back to the placeholder dataset; enrichment never blocks contact display.
type ClientError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("relationship api: %s (caused by: %v)", e.Message, e.Cause)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("relationship api: %d %s", e.StatusCode, e.Message)
	}
	return "relationship api: " + e.Message
}

func (e *ClientError) Unwrap() error { return e.Cause }

// Client talks to the external relationship-intelligence REST API.
type Client interface {
	FetchProfiles(ctx context.Context, opts FetchOptions) ([]Profile, error)
	GetAIInsights(ctx context.Context, profileID string) (*AIInsights, error)
	GetRecentInteractions(ctx context.Context, profileID string, limit, days int) ([]Interaction, error)
	GetRecommendedActions(ctx context.Context) ([]RecommendedAction, error)
}

type HTTPClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &HTTPClient{
		baseURL: cfg.RelationshipAPIURL,
		apiKey:  cfg.RelationshipAPIKey,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *HTTPClient) FetchProfiles(ctx context.Context, opts FetchOptions) ([]Profile, error) {
	q := url.Values{}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Offset > 0 {
		q.Set("offset", strconv.Itoa(opts.Offset))
	}
	q.Set("include_score", strconv.FormatBool(opts.IncludeScore))
	q.Set("include_trend", strconv.FormatBool(opts.IncludeTrend))
	q.Set("include_insights", strconv.FormatBool(opts.IncludeInsight))

	var resp struct {
		Profiles []Profile `json:"profiles"`
	}
	if err := c.get(ctx, "/profiles?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	return resp.Profiles, nil
}

func (c *HTTPClient) GetAIInsights(ctx context.Context, profileID string) (*AIInsights, error) {
	var resp struct {
		Insights *AIInsights `json:"insights"`
	}
	err := c.get(ctx, "/profiles/"+url.PathEscape(profileID)+"/insights", &resp)
	if err != nil {
		var clientErr *ClientError
		// No insights generated yet comes back as 404; that is a nil result.
		if errors.As(err, &clientErr) && clientErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	return resp.Insights, nil
}

func (c *HTTPClient) GetRecentInteractions(ctx context.Context, profileID string, limit, days int) ([]Interaction, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if days > 0 {
		q.Set("days", strconv.Itoa(days))
	}

	var resp struct {
		Interactions []Interaction `json:"interactions"`
	}
	if err := c.get(ctx, "/profiles/"+url.PathEscape(profileID)+"/interactions?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	return resp.Interactions, nil
}

func (c *HTTPClient) GetRecommendedActions(ctx context.Context) ([]RecommendedAction, error) {
	var resp struct {
		Actions []RecommendedAction `json:"actions"`
	}
	if err := c.get(ctx, "/recommended-actions", &resp); err != nil {
		return nil, err
	}
	return resp.Actions, nil
}

func (c *HTTPClient) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &ClientError{Message: "failed to build request", Cause: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &ClientError{Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ClientError{StatusCode: resp.StatusCode, Message: "failed to read response", Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ClientError{StatusCode: resp.StatusCode, Message: upstreamMessage(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &ClientError{StatusCode: resp.StatusCode, Message: "invalid response body", Cause: err}
	}
	return nil
}

// upstreamMessage pulls the API's error field out of a failure body.
func upstreamMessage(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return "unexpected response"
}

package gsync

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"go-contacthub/internal/config"
)

// ProviderClient talks to the external contacts provider bridge. Every
// request carries the shared-secret API key; every failure body has an
// "error" field.
type ProviderClient interface {
	AuthorizeURL(ctx context.Context, workspaceID string) (string, error)
	TriggerSync(ctx context.Context, req TriggerRequest) (*SyncJob, error)
	GetSyncStatus(ctx context.Context, syncID string) (*SyncJob, error)
	PreviewContacts(ctx context.Context, workspaceID string) ([]PreviewCandidate, error)
	ImportSelected(ctx context.Context, workspaceID string, candidates []PreviewCandidate) (*ImportResult, error)
	PushContacts(ctx context.Context, workspaceID string, contacts []PushContact) (*PushResult, error)
	GetAutoSync(ctx context.Context, workspaceID string) (*AutoSyncConfig, error)
	UpdateAutoSync(ctx context.Context, workspaceID string, cfg AutoSyncConfig) (*AutoSyncConfig, error)
}

type HTTPProviderClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewProviderClient(cfg *config.Config) ProviderClient {
	return &HTTPProviderClient{
		baseURL: cfg.ProviderAPIURL,
		apiKey:  cfg.ProviderAPIKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPProviderClient) AuthorizeURL(ctx context.Context, workspaceID string) (string, error) {
	var resp struct {
		URL string `json:"url"`
	}
	if err := c.do(ctx, http.MethodGet, "/oauth/authorize-url?workspace_id="+url.QueryEscape(workspaceID), nil, &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}

func (c *HTTPProviderClient) TriggerSync(ctx context.Context, req TriggerRequest) (*SyncJob, error) {
	var job SyncJob
	if err := c.do(ctx, http.MethodPost, "/sync", req, &job); err != nil {
		return nil, err
	}
	if job.Status == "" {
		job.Status = StatusInProgress
	}
	return &job, nil
}

func (c *HTTPProviderClient) GetSyncStatus(ctx context.Context, syncID string) (*SyncJob, error) {
	var job SyncJob
	if err := c.do(ctx, http.MethodGet, "/sync/"+url.PathEscape(syncID)+"/status", nil, &job); err != nil {
		return nil, err
	}
	if job.SyncID == "" {
		job.SyncID = syncID
	}
	return &job, nil
}

func (c *HTTPProviderClient) PreviewContacts(ctx context.Context, workspaceID string) ([]PreviewCandidate, error) {
	var resp struct {
		Contacts []PreviewCandidate `json:"contacts"`
	}
	if err := c.do(ctx, http.MethodGet, "/contacts/preview?workspace_id="+url.QueryEscape(workspaceID), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Contacts, nil
}

func (c *HTTPProviderClient) ImportSelected(ctx context.Context, workspaceID string, candidates []PreviewCandidate) (*ImportResult, error) {
	req := struct {
		WorkspaceID string             `json:"workspace_id"`
		Contacts    []PreviewCandidate `json:"contacts"`
	}{WorkspaceID: workspaceID, Contacts: candidates}

	var result ImportResult
	if err := c.do(ctx, http.MethodPost, "/contacts/import-selected", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPProviderClient) PushContacts(ctx context.Context, workspaceID string, contacts []PushContact) (*PushResult, error) {
	req := struct {
		WorkspaceID string        `json:"workspace_id"`
		Contacts    []PushContact `json:"contacts"`
	}{WorkspaceID: workspaceID, Contacts: contacts}

	var result PushResult
	if err := c.do(ctx, http.MethodPost, "/contacts/push-to-google", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPProviderClient) GetAutoSync(ctx context.Context, workspaceID string) (*AutoSyncConfig, error) {
	var cfg AutoSyncConfig
	if err := c.do(ctx, http.MethodGet, "/auto-sync?workspace_id="+url.QueryEscape(workspaceID), nil, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *HTTPProviderClient) UpdateAutoSync(ctx context.Context, workspaceID string, cfg AutoSyncConfig) (*AutoSyncConfig, error) {
	req := struct {
		WorkspaceID      string `json:"workspace_id"`
		Enabled          bool   `json:"enabled"`
		IntervalHours    int    `json:"interval_hours"`
		AutoLabelEnabled bool   `json:"auto_label_enabled"`
	}{
		WorkspaceID:      workspaceID,
		Enabled:          cfg.Enabled,
		IntervalHours:    cfg.IntervalHours,
		AutoLabelEnabled: cfg.AutoLabelEnabled,
	}

	var updated AutoSyncConfig
	if err := c.do(ctx, http.MethodPut, "/auto-sync", req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *HTTPProviderClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &ProviderError{Kind: KindInvalid, Message: "failed to encode request", Cause: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &ProviderError{Kind: KindInvalid, Message: "failed to build request", Cause: err}
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &ProviderError{Kind: KindTransient, Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ProviderError{Kind: KindTransient, StatusCode: resp.StatusCode, Message: "failed to read response", Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := upstreamError(raw)
		return &ProviderError{
			Kind:       classifyProvider(resp.StatusCode, message),
			StatusCode: resp.StatusCode,
			Message:    message,
		}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return &ProviderError{Kind: KindTransient, StatusCode: resp.StatusCode, Message: "invalid response body", Cause: err}
		}
	}
	return nil
}

func upstreamError(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return "unexpected response"
}

package gsync

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-contacthub/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProviderClient(t *testing.T, handler http.HandlerFunc) ProviderClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewProviderClient(&config.Config{
		ProviderAPIURL: srv.URL,
		ProviderAPIKey: "test-key",
	})
}

func TestProviderClientSendsAPIKey(t *testing.T) {
	var gotKey string
	client := newTestProviderClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-Api-Key")
		json.NewEncoder(w).Encode(SyncJob{SyncID: "sync-1", Status: StatusInProgress})
	})

	_, err := client.TriggerSync(context.Background(), TriggerRequest{WorkspaceID: "ws-1"})
	require.NoError(t, err)
	assert.Equal(t, "test-key", gotKey)
}

func TestProviderClientTriggerSync(t *testing.T) {
	client := newTestProviderClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/sync", r.URL.Path)

		var req TriggerRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ws-1", req.WorkspaceID)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"sync_id": "sync-42",
		})
	})

	job, err := client.TriggerSync(context.Background(), TriggerRequest{WorkspaceID: "ws-1"})
	require.NoError(t, err)
	assert.Equal(t, "sync-42", job.SyncID)
	assert.Equal(t, StatusInProgress, job.Status, "missing status defaults to in_progress")
}

func TestProviderClientGetSyncStatus(t *testing.T) {
	client := newTestProviderClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sync/sync-42/status", r.URL.Path)
		json.NewEncoder(w).Encode(SyncJob{
			Status:              StatusCompleted,
			TotalContacts:       20,
			Synced:              17,
			Failed:              1,
			SkippedNoIdentifier: 2,
		})
	})

	job, err := client.GetSyncStatus(context.Background(), "sync-42")
	require.NoError(t, err)
	assert.Equal(t, "sync-42", job.SyncID, "sync id backfilled from request")
	assert.Equal(t, StatusCompleted, job.Status)
	assert.Equal(t, 17, job.Synced)
	assert.Equal(t, 2, job.SkippedNoIdentifier)
}

func TestProviderClientPushEndpoint(t *testing.T) {
	client := newTestProviderClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/contacts/push-to-google", r.URL.Path)

		var req struct {
			WorkspaceID string        `json:"workspace_id"`
			Contacts    []PushContact `json:"contacts"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Len(t, req.Contacts, 2)

		json.NewEncoder(w).Encode(PushResult{Created: 1, Updated: 1})
	})

	result, err := client.PushContacts(context.Background(), "ws-1", []PushContact{
		{ID: "c-1", Name: "Maria Lopez"},
		{ID: "c-2", Name: "James Carter"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Updated)
}

func TestProviderClientUpdateAutoSyncSendsFullTriple(t *testing.T) {
	client := newTestProviderClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/auto-sync", r.URL.Path)

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req, "enabled")
		assert.Contains(t, req, "interval_hours")
		assert.Contains(t, req, "auto_label_enabled")

		json.NewEncoder(w).Encode(AutoSyncConfig{Enabled: true, IntervalHours: 12})
	})

	updated, err := client.UpdateAutoSync(context.Background(), "ws-1", AutoSyncConfig{
		Enabled:       true,
		IntervalHours: 12,
	})
	require.NoError(t, err)
	assert.Equal(t, 12, updated.IntervalHours)
}

func TestProviderClientErrorClassification(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind ErrorKind
	}{
		{"unauthorized", http.StatusUnauthorized, `{"error":"missing credentials"}`, KindAuthRequired},
		{"forbidden", http.StatusForbidden, `{"error":"scope denied"}`, KindAuthRequired},
		{"oauth message on 400", http.StatusBadRequest, `{"error":"oauth token expired"}`, KindAuthRequired},
		{"authorize message on 500", http.StatusInternalServerError, `{"error":"please authorize the workspace"}`, KindAuthRequired},
		{"plain bad request", http.StatusBadRequest, `{"error":"unknown workspace"}`, KindInvalid},
		{"server error", http.StatusInternalServerError, `{"error":"upstream down"}`, KindTransient},
		{"unparseable body", http.StatusBadGateway, `<html>`, KindTransient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestProviderClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := client.GetSyncStatus(context.Background(), "sync-1")
			require.Error(t, err)

			var pe *ProviderError
			require.True(t, errors.As(err, &pe), "error should be a ProviderError")
			assert.Equal(t, tt.wantKind, pe.Kind)
			assert.Equal(t, tt.status, pe.StatusCode)
		})
	}
}

func TestIsAuthRequired(t *testing.T) {
	assert.True(t, IsAuthRequired(&ProviderError{Kind: KindAuthRequired}))
	assert.False(t, IsAuthRequired(&ProviderError{Kind: KindTransient}))
	assert.False(t, IsAuthRequired(errors.New("plain error")))
	assert.False(t, IsAuthRequired(nil))
}

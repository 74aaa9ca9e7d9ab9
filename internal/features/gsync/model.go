package gsync

import (
	"time"

	"go-contacthub/pkg/condition"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SyncStatus is the provider-reported job state. Completed and failed are
// absorbing; transitions are driven entirely by the provider side.
type SyncStatus string

const (
	StatusInProgress SyncStatus = "in_progress"
	StatusCompleted  SyncStatus = "completed"
	StatusFailed     SyncStatus = "failed"
)

// Terminal reports whether the status will never change again.
func (s SyncStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// SyncJob is one in-flight or completed provider sync. It is read-only from
// the caller's perspective: only polling mutates the local view.
type SyncJob struct {
	SyncID              string     `json:"sync_id"`
	Status              SyncStatus `json:"status"`
	TotalContacts       int        `json:"total_contacts"`
	Synced              int        `json:"synced"`
	Failed              int        `json:"failed"`
	SkippedNoIdentifier int        `json:"skipped_no_identifier"`
	FailedDatabaseError int        `json:"failed_database_error"`
	Message             string     `json:"message,omitempty"`
}

// AutoSyncConfig is the single recurring-sync configuration per workspace.
// Updates replace the whole {enabled, interval, auto-label} triple; there is
// no partial-merge contract.
type AutoSyncConfig struct {
	Enabled          bool       `json:"enabled"`
	IntervalHours    int        `json:"interval_hours"`
	LastSyncAt       *time.Time `json:"last_sync_at,omitempty"`
	NextSyncAt       *time.Time `json:"next_sync_at,omitempty"`
	AutoLabelEnabled bool       `json:"auto_label_enabled"`
}

// PreviewCandidate is one external record offered for selective import.
type PreviewCandidate struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Source    string `json:"source,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
	Label     string `json:"label,omitempty"`
}

// ImportResult is the outcome of a selective import. A candidate with neither
// email nor phone lands in SkippedNoIdentifier, never Failed.
type ImportResult struct {
	Imported            int `json:"imported"`
	Failed              int `json:"failed"`
	SkippedNoIdentifier int `json:"skipped_no_identifier"`
}

// PushResult is the outcome of a reverse push. Existing remote matches are
// updated, not duplicated.
type PushResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
}

// PushContact is the outbound wire shape for a unified contact.
type PushContact struct {
	ID         string `json:"id"`
	OriginType string `json:"origin_type"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	DonorStage string `json:"donor_stage,omitempty"`
	Label      string `json:"label,omitempty"`
}

// TriggerRequest starts a provider sync for a workspace, optionally scoped by
// a provider-side filter expression.
type TriggerRequest struct {
	WorkspaceID string `json:"workspace_id"`
	Filter      string `json:"filter,omitempty"`
}

// ProgressEvent is published to the websocket hub on every poll.
type ProgressEvent struct {
	SyncID              string     `json:"sync_id"`
	Status              SyncStatus `json:"status"`
	TotalContacts       int        `json:"total_contacts"`
	Synced              int        `json:"synced"`
	Failed              int        `json:"failed"`
	SkippedNoIdentifier int        `json:"skipped_no_identifier"`
}

// Operation kinds recorded in the sync history.
const (
	OpTrigger = "trigger"
	OpImport  = "import_selected"
	OpPush    = "push"
)

// SyncLog is one run recorded in the operational store.
type SyncLog struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	OperationID string             `json:"operation_id" bson:"operation_id"`
	WorkspaceID string             `json:"workspace_id" bson:"workspace_id"`
	Kind        string             `json:"kind" bson:"kind"` // trigger | import_selected | push
	SyncID      string             `json:"sync_id,omitempty" bson:"sync_id,omitempty"`
	StartTime   time.Time          `json:"start_time" bson:"start_time"`
	EndTime     time.Time          `json:"end_time" bson:"end_time"`
	Status      string             `json:"status" bson:"status"` // "success", "failed", "in_progress"
	Counts      map[string]int     `json:"counts,omitempty" bson:"counts,omitempty"`
	Error       string             `json:"error,omitempty" bson:"error,omitempty"`
}

// SyncSetting mirrors the workspace auto-sync configuration locally and adds
// the backend-only knobs: the push filter and the auto-label script.
type SyncSetting struct {
	ID               primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	WorkspaceID      string               `json:"workspace_id" bson:"workspace_id"`
	Enabled          bool                 `json:"enabled" bson:"enabled"`
	IntervalHours    int                  `json:"interval_hours" bson:"interval_hours"`
	AutoLabelEnabled bool                 `json:"auto_label_enabled" bson:"auto_label_enabled"`
	AutoLabelScript  string               `json:"auto_label_script,omitempty" bson:"auto_label_script,omitempty"`
	PushFilter       *condition.RuleGroup `json:"push_filter,omitempty" bson:"push_filter,omitempty"`
	CreatedAt        time.Time            `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at" bson:"updated_at"`
}

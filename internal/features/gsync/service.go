package gsync

import (
	"context"
	"fmt"
	"time"

	"go-contacthub/internal/features/contact"
	"go-contacthub/pkg/condition"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Poll defaults; callers can override both.
const (
	DefaultPollAttempts = 60
	DefaultPollInterval = 2 * time.Second
)

// ProgressPublisher receives a snapshot on every poll. The websocket hub
// implements it; a no-op is fine in tests.
type ProgressPublisher interface {
	PublishProgress(event ProgressEvent)
}

// SyncService orchestrates provider syncs: trigger, poll-to-terminal,
// preview/selective import, reverse push, and the auto-sync configuration
// surface.
type SyncService interface {
	AuthorizeURL(ctx context.Context, workspaceID string) (string, error)
	TriggerSync(ctx context.Context, req TriggerRequest) (*SyncJob, error)
	GetStatus(ctx context.Context, syncID string) (*SyncJob, error)
	PollStatus(ctx context.Context, syncID string, onProgress func(*SyncJob), maxAttempts int, interval time.Duration) (*SyncJob, error)
	WaitForCompletion(ctx context.Context, syncID string) (*SyncJob, error)
	PreviewContacts(ctx context.Context, workspaceID string) ([]PreviewCandidate, error)
	ImportSelected(ctx context.Context, workspaceID string, selectedIDs []string) (*ImportResult, error)
	PushToGoogle(ctx context.Context, workspaceID string) (*PushResult, error)
	GetAutoSync(ctx context.Context, workspaceID string) (*AutoSyncConfig, error)
	UpdateAutoSync(ctx context.Context, workspaceID string, cfg AutoSyncConfig) (*AutoSyncConfig, error)
	ListLogs(ctx context.Context, workspaceID string, limit int64) ([]SyncLog, error)
	RunScheduledSync(workspaceID string)
}

type SyncServiceImpl struct {
	client         ProviderClient
	settingRepo    SyncSettingRepository
	logRepo        SyncLogRepository
	contactService contact.ContactService
	publisher      ProgressPublisher
	evaluator      *condition.Evaluator
	logger         *zap.Logger
}

func NewSyncService(
	client ProviderClient,
	settingRepo SyncSettingRepository,
	logRepo SyncLogRepository,
	contactService contact.ContactService,
	publisher ProgressPublisher,
	logger *zap.Logger,
) SyncService {
	return &SyncServiceImpl{
		client:         client,
		settingRepo:    settingRepo,
		logRepo:        logRepo,
		contactService: contactService,
		publisher:      publisher,
		evaluator:      condition.NewEvaluator(),
		logger:         logger,
	}
}

func (s *SyncServiceImpl) AuthorizeURL(ctx context.Context, workspaceID string) (string, error) {
	return s.client.AuthorizeURL(ctx, workspaceID)
}

func (s *SyncServiceImpl) TriggerSync(ctx context.Context, req TriggerRequest) (*SyncJob, error) {
	job, err := s.client.TriggerSync(ctx, req)
	if err != nil {
		return nil, err
	}

	log := &SyncLog{
		OperationID: uuid.NewString(),
		WorkspaceID: req.WorkspaceID,
		Kind:        OpTrigger,
		SyncID:      job.SyncID,
		StartTime:   time.Now(),
		Status:      "in_progress",
	}
	if err := s.logRepo.Create(ctx, log); err != nil {
		s.logger.Warn("failed to record sync log", zap.Error(err))
	}

	s.logger.Info("sync triggered",
		zap.String("workspace_id", req.WorkspaceID),
		zap.String("sync_id", job.SyncID))
	return job, nil
}

func (s *SyncServiceImpl) GetStatus(ctx context.Context, syncID string) (*SyncJob, error) {
	return s.client.GetSyncStatus(ctx, syncID)
}

// PollStatus fetches the job status up to maxAttempts times, invoking
// onProgress on every poll (terminal included), and returns as soon as the
// job reaches completed or failed. One poll at a time: the loop sleeps
// between attempts rather than spawning anything. Exhausting maxAttempts
// yields ErrPollTimeout, which is distinct from a provider-reported failure.
func (s *SyncServiceImpl) PollStatus(ctx context.Context, syncID string, onProgress func(*SyncJob), maxAttempts int, interval time.Duration) (*SyncJob, error) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultPollAttempts
	}
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		job, err := s.client.GetSyncStatus(ctx, syncID)
		if err != nil {
			return nil, err
		}

		if onProgress != nil {
			onProgress(job)
		}
		s.publisher.PublishProgress(ProgressEvent{
			SyncID:              job.SyncID,
			Status:              job.Status,
			TotalContacts:       job.TotalContacts,
			Synced:              job.Synced,
			Failed:              job.Failed,
			SkippedNoIdentifier: job.SkippedNoIdentifier,
		})

		if job.Status.Terminal() {
			return job, nil
		}

		if attempt == maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(interval):
		}
	}

	return nil, fmt.Errorf("%w: sync %s after %d attempts", ErrPollTimeout, syncID, maxAttempts)
}

// WaitForCompletion runs the default poll loop and settles the sync log.
func (s *SyncServiceImpl) WaitForCompletion(ctx context.Context, syncID string) (*SyncJob, error) {
	job, err := s.PollStatus(ctx, syncID, nil, DefaultPollAttempts, DefaultPollInterval)
	if err != nil {
		return nil, err
	}

	s.settleTriggerLog(ctx, job)
	return job, nil
}

// settleTriggerLog finds the in-progress log for the sync and records the
// terminal outcome. Best effort; history gaps are tolerated.
func (s *SyncServiceImpl) settleTriggerLog(ctx context.Context, job *SyncJob) {
	logs, err := s.logRepo.List(ctx, "", 50)
	if err != nil {
		s.logger.Warn("failed to load sync logs for settlement", zap.Error(err))
		return
	}

	for i := range logs {
		if logs[i].SyncID != job.SyncID || logs[i].Status != "in_progress" {
			continue
		}
		logs[i].EndTime = time.Now()
		logs[i].Status = "success"
		if job.Status == StatusFailed {
			logs[i].Status = "failed"
			logs[i].Error = job.Message
		}
		logs[i].Counts = map[string]int{
			"total":                 job.TotalContacts,
			"synced":                job.Synced,
			"failed":                job.Failed,
			"skipped_no_identifier": job.SkippedNoIdentifier,
			"failed_database_error": job.FailedDatabaseError,
		}
		if err := s.logRepo.Update(ctx, &logs[i]); err != nil {
			s.logger.Warn("failed to settle sync log", zap.Error(err))
		}
		return
	}
}

func (s *SyncServiceImpl) PreviewContacts(ctx context.Context, workspaceID string) ([]PreviewCandidate, error) {
	return s.client.PreviewContacts(ctx, workspaceID)
}

// ImportSelected imports only the chosen subset of preview candidates. A
// candidate with neither email nor phone is counted as skipped locally and
// never sent; it can't be matched or deduplicated downstream.
func (s *SyncServiceImpl) ImportSelected(ctx context.Context, workspaceID string, selectedIDs []string) (*ImportResult, error) {
	candidates, err := s.client.PreviewContacts(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	selected := make(map[string]bool, len(selectedIDs))
	for _, id := range selectedIDs {
		selected[id] = true
	}

	labeler, err := s.loadLabeler(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	var importable []PreviewCandidate
	skipped := 0
	for _, candidate := range candidates {
		if !selected[candidate.ID] {
			continue
		}
		if candidate.Email == "" && candidate.Phone == "" {
			skipped++
			continue
		}
		if labeler != nil {
			label, err := labeler.Label(ctx, candidate)
			if err != nil {
				s.logger.Warn("auto-label failed, importing unlabeled",
					zap.String("candidate_id", candidate.ID), zap.Error(err))
			} else {
				candidate.Label = label
			}
		}
		importable = append(importable, candidate)
	}

	result := &ImportResult{SkippedNoIdentifier: skipped}
	if len(importable) > 0 {
		providerResult, err := s.client.ImportSelected(ctx, workspaceID, importable)
		if err != nil {
			return nil, err
		}
		result.Imported = providerResult.Imported
		result.Failed = providerResult.Failed
		result.SkippedNoIdentifier += providerResult.SkippedNoIdentifier
	}

	s.recordRun(ctx, workspaceID, OpImport, map[string]int{
		"imported":              result.Imported,
		"failed":                result.Failed,
		"skipped_no_identifier": result.SkippedNoIdentifier,
	})
	return result, nil
}

// PushToGoogle sends the local unified contact list outward. The stored push
// filter scopes which contacts leave; the provider side updates existing
// matches instead of duplicating them.
func (s *SyncServiceImpl) PushToGoogle(ctx context.Context, workspaceID string) (*PushResult, error) {
	contacts, err := s.contactService.GetByType(ctx, contact.OriginAll)
	if err != nil {
		return nil, err
	}

	setting, err := s.settingRepo.GetByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	var filter *condition.RuleGroup
	if setting != nil {
		filter = setting.PushFilter
	}

	var outbound []PushContact
	for i := range contacts {
		match, err := s.evaluator.Evaluate(filter, contacts[i].FieldMap())
		if err != nil {
			return nil, fmt.Errorf("invalid push filter: %w", err)
		}
		if !match {
			continue
		}
		outbound = append(outbound, toPushContact(&contacts[i]))
	}

	result, err := s.client.PushContacts(ctx, workspaceID, outbound)
	if err != nil {
		return nil, err
	}

	s.recordRun(ctx, workspaceID, OpPush, map[string]int{
		"created": result.Created,
		"updated": result.Updated,
		"failed":  result.Failed,
	})
	return result, nil
}

func (s *SyncServiceImpl) GetAutoSync(ctx context.Context, workspaceID string) (*AutoSyncConfig, error) {
	return s.client.GetAutoSync(ctx, workspaceID)
}

// UpdateAutoSync replaces the provider-side config wholesale and mirrors it
// into the local sync setting. Callers must send the full triple every time.
func (s *SyncServiceImpl) UpdateAutoSync(ctx context.Context, workspaceID string, cfg AutoSyncConfig) (*AutoSyncConfig, error) {
	if cfg.IntervalHours <= 0 {
		return nil, &ProviderError{Kind: KindInvalid, Message: "interval_hours must be a positive integer"}
	}

	updated, err := s.client.UpdateAutoSync(ctx, workspaceID, cfg)
	if err != nil {
		return nil, err
	}

	setting, err := s.settingRepo.GetByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		setting = &SyncSetting{WorkspaceID: workspaceID}
	}
	setting.Enabled = updated.Enabled
	setting.IntervalHours = updated.IntervalHours
	setting.AutoLabelEnabled = updated.AutoLabelEnabled

	if err := s.settingRepo.Upsert(ctx, setting); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *SyncServiceImpl) ListLogs(ctx context.Context, workspaceID string, limit int64) ([]SyncLog, error) {
	return s.logRepo.List(ctx, workspaceID, limit)
}

// RunScheduledSync is the cron entry point: trigger a sync for the workspace
// and wait for its terminal status, publishing progress along the way.
func (s *SyncServiceImpl) RunScheduledSync(workspaceID string) {
	ctx := context.Background()

	job, err := s.TriggerSync(ctx, TriggerRequest{WorkspaceID: workspaceID})
	if err != nil {
		if IsAuthRequired(err) {
			s.logger.Warn("scheduled sync needs re-authorization",
				zap.String("workspace_id", workspaceID))
			return
		}
		s.logger.Error("scheduled sync trigger failed",
			zap.String("workspace_id", workspaceID), zap.Error(err))
		return
	}

	final, err := s.WaitForCompletion(ctx, job.SyncID)
	if err != nil {
		s.logger.Error("scheduled sync did not complete",
			zap.String("workspace_id", workspaceID),
			zap.String("sync_id", job.SyncID), zap.Error(err))
		return
	}

	s.logger.Info("scheduled sync finished",
		zap.String("workspace_id", workspaceID),
		zap.String("sync_id", final.SyncID),
		zap.String("status", string(final.Status)),
		zap.Int("synced", final.Synced),
		zap.Int("failed", final.Failed))
}

func (s *SyncServiceImpl) loadLabeler(ctx context.Context, workspaceID string) (*Labeler, error) {
	setting, err := s.settingRepo.GetByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	if setting == nil || !setting.AutoLabelEnabled || setting.AutoLabelScript == "" {
		return nil, nil
	}
	return NewLabeler(setting.AutoLabelScript), nil
}

func (s *SyncServiceImpl) recordRun(ctx context.Context, workspaceID, kind string, counts map[string]int) {
	now := time.Now()
	status := "success"
	if counts["failed"] > 0 {
		status = "failed"
	}

	log := &SyncLog{
		OperationID: uuid.NewString(),
		WorkspaceID: workspaceID,
		Kind:        kind,
		StartTime:   now,
		EndTime:     now,
		Status:      status,
		Counts:      counts,
	}
	if err := s.logRepo.Create(ctx, log); err != nil {
		s.logger.Warn("failed to record sync log", zap.String("kind", kind), zap.Error(err))
	}
}

func toPushContact(u *contact.UnifiedContact) PushContact {
	out := PushContact{
		ID:         u.ID,
		OriginType: string(u.OriginType),
		Name:       u.Name,
		DonorStage: u.DonorStage,
	}
	if u.Email != nil {
		out.Email = *u.Email
	}
	if u.Phone != nil {
		out.Phone = *u.Phone
	}
	return out
}

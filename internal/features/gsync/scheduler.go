package gsync

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// AutoSyncScheduler keeps one cron entry per workspace with auto-sync
// enabled. Entries are rebuilt from the stored sync settings on startup and
// adjusted in place when a workspace changes its configuration.
type AutoSyncScheduler struct {
	settingRepo SyncSettingRepository
	syncService SyncService
	logger      *zap.Logger

	scheduler *cron.Cron
	entries   map[string]cron.EntryID
	mu        sync.RWMutex
}

func NewAutoSyncScheduler(settingRepo SyncSettingRepository, syncService SyncService, logger *zap.Logger) *AutoSyncScheduler {
	return &AutoSyncScheduler{
		settingRepo: settingRepo,
		syncService: syncService,
		logger:      logger,
		entries:     make(map[string]cron.EntryID),
	}
}

func (s *AutoSyncScheduler) Initialize(ctx context.Context) error {
	s.scheduler = cron.New()

	settings, err := s.settingRepo.ListEnabled(ctx)
	if err != nil {
		return fmt.Errorf("failed to load enabled sync settings: %w", err)
	}

	for i := range settings {
		if err := s.register(settings[i].WorkspaceID, settings[i].IntervalHours); err != nil {
			s.logger.Error("failed to register auto-sync entry",
				zap.String("workspace_id", settings[i].WorkspaceID), zap.Error(err))
		}
	}

	s.scheduler.Start()
	s.logger.Info("auto-sync scheduler started", zap.Int("workspaces", len(settings)))
	return nil
}

func (s *AutoSyncScheduler) Stop() error {
	if s.scheduler != nil {
		ctx := s.scheduler.Stop()
		<-ctx.Done()
	}
	return nil
}

// Apply reconciles the cron entry for one workspace with its new
// configuration. Disabled removes the entry; enabled replaces it.
func (s *AutoSyncScheduler) Apply(workspaceID string, enabled bool, intervalHours int) error {
	s.unregister(workspaceID)
	if !enabled {
		return nil
	}
	return s.register(workspaceID, intervalHours)
}

func (s *AutoSyncScheduler) register(workspaceID string, intervalHours int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.scheduler == nil {
		return fmt.Errorf("scheduler not initialized")
	}
	if intervalHours <= 0 {
		return fmt.Errorf("interval must be positive, got %d", intervalHours)
	}

	jobFunc := func() {
		// Re-check enablement at fire time; the setting may have been
		// disabled between registration and execution.
		setting, err := s.settingRepo.GetByWorkspace(context.Background(), workspaceID)
		if err != nil || setting == nil || !setting.Enabled {
			return
		}
		s.syncService.RunScheduledSync(workspaceID)
	}

	entryID, err := s.scheduler.AddFunc(fmt.Sprintf("@every %dh", intervalHours), jobFunc)
	if err != nil {
		return fmt.Errorf("failed to add auto-sync entry: %w", err)
	}

	s.entries[workspaceID] = entryID
	return nil
}

func (s *AutoSyncScheduler) unregister(workspaceID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entryID, exists := s.entries[workspaceID]; exists {
		s.scheduler.Remove(entryID)
		delete(s.entries, workspaceID)
	}
}

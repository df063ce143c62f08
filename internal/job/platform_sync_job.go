package job

import (
	"DevQuest/internal/pkg/logger"
	"DevQuest/internal/repository"
	"DevQuest/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// PlatformSyncJob 每日全量同步所有已绑定的平台账号
type PlatformSyncJob struct {
	platformRepo repository.PlatformRepo
	syncService  service.SyncService
}

func NewPlatformSyncJob(platformRepo repository.PlatformRepo, syncService service.SyncService) *PlatformSyncJob {
	return &PlatformSyncJob{
		platformRepo: platformRepo,
		syncService:  syncService,
	}
}

func (s *PlatformSyncJob) Run() {
	traceID := "job-platform-sync-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	accounts, err := s.platformRepo.GetAllAccounts(ctx)
	if err != nil {
		log.ErrorContext(ctx, "list platform accounts error", "err", err)
		return
	}

	log.InfoContext(ctx, "PlatformSyncJob processing", "account_count", len(accounts))

	var failed int
	for _, account := range accounts {
		if _, err := s.syncService.SyncPlatform(ctx, account.UserID, account.Platform.Slug); err != nil {
			failed++
			log.WarnContext(ctx, "平台账号同步失败",
				"user_id", account.UserID,
				"slug", account.Platform.Slug,
				"username", account.Username,
				"err", err,
			)
		}
	}

	log.InfoContext(ctx, "PlatformSyncJob finished", "total", len(accounts), "failed", failed)
}

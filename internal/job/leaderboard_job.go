package job

import (
	"DevQuest/internal/pkg/logger"
	"DevQuest/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// LeaderboardJob 定时从数据库重建排行榜 ZSET
type LeaderboardJob struct {
	leaderboardService service.LeaderboardService
}

func NewLeaderboardJob(leaderboardService service.LeaderboardService) *LeaderboardJob {
	return &LeaderboardJob{leaderboardService: leaderboardService}
}

func (s *LeaderboardJob) Run() {
	traceID := "job-leaderboard-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	if err := s.leaderboardService.Rebuild(ctx); err != nil {
		log.ErrorContext(ctx, "排行榜重建失败", "err", err)
		return
	}
	log.InfoContext(ctx, "LeaderboardJob finished")
}

package service

import (
	"DevQuest/internal/api/dto"
	"DevQuest/internal/pkg/consts"
	"DevQuest/internal/pkg/redis"
	"DevQuest/internal/pkg/xp"
	"DevQuest/internal/repository"
	"context"
	"strconv"
)

type LeaderboardService interface {
	GetTop(ctx context.Context, limit int) ([]*dto.LeaderboardEntryDTO, error)
	Rebuild(ctx context.Context) error
}

type LeaderboardServiceImpl struct {
	statsRepo repository.StatsRepo
	userRepo  repository.UserRepo
}

func NewLeaderboardService(statsRepo repository.StatsRepo, userRepo repository.UserRepo) LeaderboardService {
	return &LeaderboardServiceImpl{
		statsRepo: statsRepo,
		userRepo:  userRepo,
	}
}

// GetTop 排行榜走 redis ZSET，ZSET 读不到时退回数据库
func (s *LeaderboardServiceImpl) GetTop(ctx context.Context, limit int) ([]*dto.LeaderboardEntryDTO, error) {
	if limit <= 0 || limit > consts.LeaderboardSize {
		limit = consts.LeaderboardSize
	}

	members, err := redis.ZRevRangeWithScores(ctx, consts.LeaderboardKey, 0, int64(limit-1))
	if err != nil || len(members) == 0 {
		return s.topFromDB(ctx, limit)
	}

	entries := make([]*dto.LeaderboardEntryDTO, 0, len(members))
	for i, member := range members {
		userID, err := strconv.ParseUint(member.Member.(string), 10, 64)
		if err != nil {
			continue
		}

		username := ""
		if user, err := s.userRepo.GetUserById(ctx, userID); err == nil && user != nil {
			username = user.Username
		}

		totalXP := int(member.Score)
		entries = append(entries, &dto.LeaderboardEntryDTO{
			Rank:     i + 1,
			UserID:   userID,
			Username: username,
			TotalXP:  totalXP,
			Level:    xp.Level(totalXP),
		})
	}
	return entries, nil
}

// Rebuild 从统计表全量重灌 ZSET，定时任务调用
func (s *LeaderboardServiceImpl) Rebuild(ctx context.Context) error {
	rows, err := s.statsRepo.ListTopByTotalXP(ctx, consts.LeaderboardSize)
	if err != nil {
		return err
	}

	if err = redis.DeleteKey(ctx, consts.LeaderboardKey); err != nil {
		return err
	}
	for _, row := range rows {
		member := strconv.FormatUint(row.UserID, 10)
		if err = redis.ZAdd(ctx, consts.LeaderboardKey, float64(row.TotalXP), member); err != nil {
			return err
		}
	}
	return nil
}

func (s *LeaderboardServiceImpl) topFromDB(ctx context.Context, limit int) ([]*dto.LeaderboardEntryDTO, error) {
	rows, err := s.statsRepo.ListTopByTotalXP(ctx, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]*dto.LeaderboardEntryDTO, 0, len(rows))
	for i, row := range rows {
		username := ""
		if user, err := s.userRepo.GetUserById(ctx, row.UserID); err == nil && user != nil {
			username = user.Username
		}
		entries = append(entries, &dto.LeaderboardEntryDTO{
			Rank:     i + 1,
			UserID:   row.UserID,
			Username: username,
			TotalXP:  row.TotalXP,
			Level:    row.Level,
		})
	}
	return entries, nil
}

package service

import (
	"DevQuest/internal/api/dto"
	"DevQuest/internal/pkg/util"
	"DevQuest/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type StatsService interface {
	GetDashboard(ctx context.Context, userID uint64) (*dto.DashboardDTO, error)
	GetProfile(ctx context.Context, userID uint64) (*dto.ProfileDTO, error)
	GetStats(ctx context.Context, userID uint64) (*dto.StatsDTO, error)
	GetHeatmap(ctx context.Context, userID uint64, days int) ([]*dto.HeatmapCellDTO, error)
}

type StatsServiceImpl struct {
	statsRepo    repository.StatsRepo
	taskRepo     repository.TaskRepo
	studyRepo    repository.StudyRepo
	userRepo     repository.UserRepo
	platformRepo repository.PlatformRepo
	activityRepo repository.ActivityRepo
}

func NewStatsService(
	statsRepo repository.StatsRepo,
	taskRepo repository.TaskRepo,
	studyRepo repository.StudyRepo,
	userRepo repository.UserRepo,
	platformRepo repository.PlatformRepo,
	activityRepo repository.ActivityRepo,
) StatsService {
	return &StatsServiceImpl{
		statsRepo:    statsRepo,
		taskRepo:     taskRepo,
		studyRepo:    studyRepo,
		userRepo:     userRepo,
		platformRepo: platformRepo,
		activityRepo: activityRepo,
	}
}

func (s *StatsServiceImpl) GetDashboard(ctx context.Context, userID uint64) (*dto.DashboardDTO, error) {
	total, completed, err := s.taskRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	todayMinutes, err := s.studyRepo.SumMinutesOnDate(ctx, userID, util.Today())
	if err != nil {
		return nil, err
	}

	streakDTO := &dto.StreakDTO{}
	if streak, err := s.studyRepo.GetStreakByUser(ctx, userID); err == nil && streak != nil {
		streakDTO.CurrentStreak = streak.CurrentStreak
		streakDTO.LongestStreak = streak.LongestStreak
		streakDTO.LastActive = streak.LastActive
	}

	progressPct := 0
	if total > 0 {
		progressPct = int(completed * 100 / total)
	}

	return &dto.DashboardDTO{
		TotalTasks:     total,
		CompletedTasks: completed,
		ProgressPct:    progressPct,
		TodayMinutes:   todayMinutes,
		Streak:         streakDTO,
	}, nil
}

func (s *StatsServiceImpl) GetProfile(ctx context.Context, userID uint64) (*dto.ProfileDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	userDTO := &dto.UserDTO{}
	if err = copier.Copy(userDTO, user); err != nil {
		return nil, err
	}

	statsDTO, err := s.GetStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	totalMinutes, err := s.studyRepo.SumMinutes(ctx, userID)
	if err != nil {
		return nil, err
	}

	accounts, err := s.platformRepo.GetAccountsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	accountDTOs := make([]*dto.AccountDTO, 0, len(accounts))
	for _, account := range accounts {
		accountDTOs = append(accountDTOs, toAccountDTO(account))
	}

	return &dto.ProfileDTO{
		User:         userDTO,
		Stats:        statsDTO,
		TotalMinutes: totalMinutes,
		Accounts:     accountDTOs,
	}, nil
}

func (s *StatsServiceImpl) GetStats(ctx context.Context, userID uint64) (*dto.StatsDTO, error) {
	stats, err := s.statsRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	statsDTO := &dto.StatsDTO{}
	if err = copier.Copy(statsDTO, stats); err != nil {
		return nil, err
	}
	return statsDTO, nil
}

func (s *StatsServiceImpl) GetHeatmap(ctx context.Context, userID uint64, days int) ([]*dto.HeatmapCellDTO, error) {
	if days <= 0 || days > 366 {
		days = 365
	}
	since := util.Today().AddDate(0, 0, -days)

	rows, err := s.activityRepo.ListHeatmapByUser(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	cells := make([]*dto.HeatmapCellDTO, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, &dto.HeatmapCellDTO{
			Date:          row.Date,
			TotalXP:       row.TotalXP,
			ActivityScore: row.ActivityScore,
		})
	}
	return cells, nil
}

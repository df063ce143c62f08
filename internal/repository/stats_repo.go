package repository

import (
	"DevQuest/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type StatsRepo interface {
	GetByUser(ctx context.Context, userID uint64) (*model.UserStats, error)
	GetOrCreate(ctx context.Context, userID uint64) (*model.UserStats, error)
	Save(ctx context.Context, stats *model.UserStats) error
	ListTopByTotalXP(ctx context.Context, limit int) ([]*model.UserStats, error)
}

type StatsRepoImpl struct {
	db *gorm.DB
}

func NewStatsRepo(db *gorm.DB) StatsRepo {
	return &StatsRepoImpl{db: db}
}

func (s *StatsRepoImpl) GetByUser(ctx context.Context, userID uint64) (*model.UserStats, error) {
	stats := &model.UserStats{}
	result := s.db.WithContext(ctx).Where("user_id = ?", userID).First(stats)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return stats, nil
}

func (s *StatsRepoImpl) GetOrCreate(ctx context.Context, userID uint64) (*model.UserStats, error) {
	stats, err := s.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if stats != nil {
		return stats, nil
	}

	stats = &model.UserStats{UserID: userID, Level: 1}
	if err = s.db.WithContext(ctx).Create(stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *StatsRepoImpl) Save(ctx context.Context, stats *model.UserStats) error {
	return s.db.WithContext(ctx).Save(stats).Error
}

func (s *StatsRepoImpl) ListTopByTotalXP(ctx context.Context, limit int) ([]*model.UserStats, error) {
	rows := make([]*model.UserStats, 0)
	err := s.db.WithContext(ctx).
		Order("total_xp DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

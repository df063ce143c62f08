package repository

import (
	"DevQuest/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DailyXPSum 台账按日期聚合的结果行
type DailyXPSum struct {
	Date    time.Time
	Commits int
	XP      int
}

type ActivityRepo interface {
	UpsertDailyActivity(ctx context.Context, row *model.DailyActivity) error
	ListByAccount(ctx context.Context, accountID uint64, limit int) ([]*model.DailyActivity, error)
	DeleteByAccount(ctx context.Context, accountID uint64) error
	SumByDateForUser(ctx context.Context, userID uint64) ([]*DailyXPSum, error)

	RebuildHeatmap(ctx context.Context, userID uint64, rows []*model.UserHeatmap) error
	ListHeatmapByUser(ctx context.Context, userID uint64, since time.Time) ([]*model.UserHeatmap, error)
}

type ActivityRepoImpl struct {
	db *gorm.DB
}

func NewActivityRepo(db *gorm.DB) ActivityRepo {
	return &ActivityRepoImpl{db: db}
}

// UpsertDailyActivity (account, date) 冲突时整行覆盖，重复同步不累加
func (s *ActivityRepoImpl) UpsertDailyActivity(ctx context.Context, row *model.DailyActivity) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"commits", "xp"}),
		}).
		Create(row).Error
}

func (s *ActivityRepoImpl) ListByAccount(ctx context.Context, accountID uint64, limit int) ([]*model.DailyActivity, error) {
	rows := make([]*model.DailyActivity, 0)
	query := s.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("date DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *ActivityRepoImpl) DeleteByAccount(ctx context.Context, accountID uint64) error {
	return s.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Delete(&model.DailyActivity{}).Error
}

func (s *ActivityRepoImpl) SumByDateForUser(ctx context.Context, userID uint64) ([]*DailyXPSum, error) {
	sums := make([]*DailyXPSum, 0)
	err := s.db.WithContext(ctx).
		Model(&model.DailyActivity{}).
		Select("daily_activities.date AS date, SUM(daily_activities.commits) AS commits, SUM(daily_activities.xp) AS xp").
		Joins("JOIN platform_accounts ON platform_accounts.id = daily_activities.account_id").
		Where("platform_accounts.user_id = ?", userID).
		Group("daily_activities.date").
		Order("daily_activities.date").
		Scan(&sums).Error
	if err != nil {
		return nil, err
	}
	return sums, nil
}

// RebuildHeatmap 热力图从台账全量重建，先清后写保证没有残留日期
func (s *ActivityRepoImpl) RebuildHeatmap(ctx context.Context, userID uint64, rows []*model.UserHeatmap) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&model.UserHeatmap{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

func (s *ActivityRepoImpl) ListHeatmapByUser(ctx context.Context, userID uint64, since time.Time) ([]*model.UserHeatmap, error) {
	rows := make([]*model.UserHeatmap, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, since).
		Order("date").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

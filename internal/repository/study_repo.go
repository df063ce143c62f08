package repository

import (
	"DevQuest/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type StudyRepo interface {
	CreateSession(ctx context.Context, session *model.StudySession) error
	ListSessionsByUser(ctx context.Context, userID uint64, limit int) ([]*model.StudySession, error)
	SumMinutes(ctx context.Context, userID uint64) (int64, error)
	SumMinutesOnDate(ctx context.Context, userID uint64, date time.Time) (int64, error)

	GetStreakByUser(ctx context.Context, userID uint64) (*model.StudyStreak, error)
	SaveStreak(ctx context.Context, streak *model.StudyStreak) error
}

type StudyRepoImpl struct {
	db *gorm.DB
}

func NewStudyRepo(db *gorm.DB) StudyRepo {
	return &StudyRepoImpl{db: db}
}

func (s *StudyRepoImpl) CreateSession(ctx context.Context, session *model.StudySession) error {
	return s.db.WithContext(ctx).Create(session).Error
}

func (s *StudyRepoImpl) ListSessionsByUser(ctx context.Context, userID uint64, limit int) ([]*model.StudySession, error) {
	sessions := make([]*model.StudySession, 0)
	query := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("study_date DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (s *StudyRepoImpl) SumMinutes(ctx context.Context, userID uint64) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).
		Model(&model.StudySession{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(duration_minutes), 0)").
		Scan(&total).Error
	return total, err
}

func (s *StudyRepoImpl) SumMinutesOnDate(ctx context.Context, userID uint64, date time.Time) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).
		Model(&model.StudySession{}).
		Where("user_id = ? AND study_date = ?", userID, date.Format("2006-01-02")).
		Select("COALESCE(SUM(duration_minutes), 0)").
		Scan(&total).Error
	return total, err
}

func (s *StudyRepoImpl) GetStreakByUser(ctx context.Context, userID uint64) (*model.StudyStreak, error) {
	streak := &model.StudyStreak{}
	result := s.db.WithContext(ctx).Where("user_id = ?", userID).First(streak)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return streak, nil
}

func (s *StudyRepoImpl) SaveStreak(ctx context.Context, streak *model.StudyStreak) error {
	return s.db.WithContext(ctx).Save(streak).Error
}

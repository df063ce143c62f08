package repository

import (
	"DevQuest/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type GoalRepo interface {
	GetGoalById(ctx context.Context, id uint64) (*model.LearningGoal, error)
	ListByUser(ctx context.Context, userID uint64) ([]*model.LearningGoal, error)
	CreateGoal(ctx context.Context, goal *model.LearningGoal) error
	UpdateGoal(ctx context.Context, goal *model.LearningGoal) error
	DeleteGoal(ctx context.Context, id uint64) error
}

type GoalRepoImpl struct {
	db *gorm.DB
}

func NewGoalRepo(db *gorm.DB) GoalRepo {
	return &GoalRepoImpl{db: db}
}

func (s *GoalRepoImpl) GetGoalById(ctx context.Context, id uint64) (*model.LearningGoal, error) {
	goal := &model.LearningGoal{}
	result := s.db.WithContext(ctx).First(goal, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return goal, nil
}

func (s *GoalRepoImpl) ListByUser(ctx context.Context, userID uint64) ([]*model.LearningGoal, error) {
	goals := make([]*model.LearningGoal, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goals).Error
	if err != nil {
		return nil, err
	}
	return goals, nil
}

func (s *GoalRepoImpl) CreateGoal(ctx context.Context, goal *model.LearningGoal) error {
	return s.db.WithContext(ctx).Create(goal).Error
}

func (s *GoalRepoImpl) UpdateGoal(ctx context.Context, goal *model.LearningGoal) error {
	return s.db.WithContext(ctx).Save(goal).Error
}

func (s *GoalRepoImpl) DeleteGoal(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.LearningGoal{}, id).Error
}

package repository

import (
	"DevQuest/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type TaskRepo interface {
	GetTaskById(ctx context.Context, id uint64) (*model.Task, error)
	ListByUser(ctx context.Context, userID uint64) ([]*model.Task, error)
	CountByUser(ctx context.Context, userID uint64) (total int64, completed int64, err error)
	CreateTask(ctx context.Context, task *model.Task) error
	UpdateTask(ctx context.Context, task *model.Task) error
	DeleteTask(ctx context.Context, id uint64) error
}

type TaskRepoImpl struct {
	db *gorm.DB
}

func NewTaskRepo(db *gorm.DB) TaskRepo {
	return &TaskRepoImpl{db: db}
}

func (s *TaskRepoImpl) GetTaskById(ctx context.Context, id uint64) (*model.Task, error) {
	task := &model.Task{}
	result := s.db.WithContext(ctx).First(task, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return task, nil
}

func (s *TaskRepoImpl) ListByUser(ctx context.Context, userID uint64) ([]*model.Task, error) {
	tasks := make([]*model.Task, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("completed, deadline IS NULL, deadline").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *TaskRepoImpl) CountByUser(ctx context.Context, userID uint64) (int64, int64, error) {
	var total, completed int64
	if err := s.db.WithContext(ctx).Model(&model.Task{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err := s.db.WithContext(ctx).Model(&model.Task{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Count(&completed).Error; err != nil {
		return 0, 0, err
	}
	return total, completed, nil
}

func (s *TaskRepoImpl) CreateTask(ctx context.Context, task *model.Task) error {
	return s.db.WithContext(ctx).Create(task).Error
}

func (s *TaskRepoImpl) UpdateTask(ctx context.Context, task *model.Task) error {
	return s.db.WithContext(ctx).Save(task).Error
}

func (s *TaskRepoImpl) DeleteTask(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Task{}, id).Error
}

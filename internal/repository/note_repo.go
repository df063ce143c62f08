package repository

import (
	"DevQuest/internal/model"
	"DevQuest/internal/pkg/consts"
	"context"
	"errors"

	"gorm.io/gorm"
)

type NoteRepo interface {
	GetNoteById(ctx context.Context, id uint64) (*model.Note, error)
	ListByUser(ctx context.Context, userID uint64) ([]*model.Note, error)
	ListPublicExcludingUser(ctx context.Context, userID uint64, offset, limit int) ([]*model.Note, error)
	CreateNote(ctx context.Context, note *model.Note) error
	UpdateNote(ctx context.Context, note *model.Note) error
	DeleteNote(ctx context.Context, id uint64) error
}

type NoteRepoImpl struct {
	db *gorm.DB
}

func NewNoteRepo(db *gorm.DB) NoteRepo {
	return &NoteRepoImpl{db: db}
}

func (s *NoteRepoImpl) GetNoteById(ctx context.Context, id uint64) (*model.Note, error) {
	note := &model.Note{}
	result := s.db.WithContext(ctx).First(note, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return note, nil
}

func (s *NoteRepoImpl) ListByUser(ctx context.Context, userID uint64) ([]*model.Note, error) {
	notes := make([]*model.Note, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// ListPublicExcludingUser 公共笔记库列表，不含查询者本人的笔记
func (s *NoteRepoImpl) ListPublicExcludingUser(ctx context.Context, userID uint64, offset, limit int) ([]*model.Note, error) {
	notes := make([]*model.Note, 0)
	err := s.db.WithContext(ctx).
		Where("visibility = ? AND user_id <> ?", consts.NoteVisibilityPublic, userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (s *NoteRepoImpl) CreateNote(ctx context.Context, note *model.Note) error {
	return s.db.WithContext(ctx).Create(note).Error
}

func (s *NoteRepoImpl) UpdateNote(ctx context.Context, note *model.Note) error {
	return s.db.WithContext(ctx).Save(note).Error
}

func (s *NoteRepoImpl) DeleteNote(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Note{}, id).Error
}

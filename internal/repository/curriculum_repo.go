package repository

import (
	"DevQuest/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CurriculumRepo interface {
	ListTracks(ctx context.Context) ([]*model.LearningTrack, error)
	ListSubjectsByTrack(ctx context.Context, trackID uint64) ([]*model.Subject, error)
	GetSubjectById(ctx context.Context, id uint64) (*model.Subject, error)
	ListTopicsBySubject(ctx context.Context, subjectID uint64) ([]*model.Topic, error)
	GetTopicById(ctx context.Context, id uint64) (*model.Topic, error)
	ListResourcesByTopic(ctx context.Context, topicID uint64) ([]*model.Resource, error)
	ListProblemsByTopic(ctx context.Context, topicID uint64) ([]*model.Problem, error)

	GetProgress(ctx context.Context, userID, topicID uint64) (*model.UserTopicProgress, error)
	UpsertProgress(ctx context.Context, progress *model.UserTopicProgress) error
	ListProgressByUser(ctx context.Context, userID uint64) ([]*model.UserTopicProgress, error)
}

type CurriculumRepoImpl struct {
	db *gorm.DB
}

func NewCurriculumRepo(db *gorm.DB) CurriculumRepo {
	return &CurriculumRepoImpl{db: db}
}

func (s *CurriculumRepoImpl) ListTracks(ctx context.Context) ([]*model.LearningTrack, error) {
	tracks := make([]*model.LearningTrack, 0)
	if err := s.db.WithContext(ctx).Order("id").Find(&tracks).Error; err != nil {
		return nil, err
	}
	return tracks, nil
}

func (s *CurriculumRepoImpl) ListSubjectsByTrack(ctx context.Context, trackID uint64) ([]*model.Subject, error) {
	subjects := make([]*model.Subject, 0)
	err := s.db.WithContext(ctx).
		Where("track_id = ?", trackID).
		Order("id").
		Find(&subjects).Error
	if err != nil {
		return nil, err
	}
	return subjects, nil
}

func (s *CurriculumRepoImpl) GetSubjectById(ctx context.Context, id uint64) (*model.Subject, error) {
	subject := &model.Subject{}
	result := s.db.WithContext(ctx).First(subject, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return subject, nil
}

func (s *CurriculumRepoImpl) ListTopicsBySubject(ctx context.Context, subjectID uint64) ([]*model.Topic, error) {
	topics := make([]*model.Topic, 0)
	err := s.db.WithContext(ctx).
		Where("subject_id = ?", subjectID).
		Order("id").
		Find(&topics).Error
	if err != nil {
		return nil, err
	}
	return topics, nil
}

func (s *CurriculumRepoImpl) GetTopicById(ctx context.Context, id uint64) (*model.Topic, error) {
	topic := &model.Topic{}
	result := s.db.WithContext(ctx).First(topic, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return topic, nil
}

func (s *CurriculumRepoImpl) ListResourcesByTopic(ctx context.Context, topicID uint64) ([]*model.Resource, error) {
	resources := make([]*model.Resource, 0)
	err := s.db.WithContext(ctx).
		Where("topic_id = ?", topicID).
		Order("is_best DESC, id").
		Find(&resources).Error
	if err != nil {
		return nil, err
	}
	return resources, nil
}

func (s *CurriculumRepoImpl) ListProblemsByTopic(ctx context.Context, topicID uint64) ([]*model.Problem, error) {
	problems := make([]*model.Problem, 0)
	err := s.db.WithContext(ctx).
		Where("topic_id = ?", topicID).
		Order("id").
		Find(&problems).Error
	if err != nil {
		return nil, err
	}
	return problems, nil
}

func (s *CurriculumRepoImpl) GetProgress(ctx context.Context, userID, topicID uint64) (*model.UserTopicProgress, error) {
	progress := &model.UserTopicProgress{}
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND topic_id = ?", userID, topicID).
		First(progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return progress, nil
}

func (s *CurriculumRepoImpl) UpsertProgress(ctx context.Context, progress *model.UserTopicProgress) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "topic_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "mastery", "last_studied"}),
		}).
		Create(progress).Error
}

func (s *CurriculumRepoImpl) ListProgressByUser(ctx context.Context, userID uint64) ([]*model.UserTopicProgress, error) {
	rows := make([]*model.UserTopicProgress, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

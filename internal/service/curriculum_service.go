package service

import (
	"DevQuest/internal/api/dto"
	"DevQuest/internal/model"
	"DevQuest/internal/pkg/util"
	"DevQuest/internal/repository"
	"context"
)

type CurriculumService interface {
	ListTracks(ctx context.Context) ([]*model.LearningTrack, error)
	ListSubjects(ctx context.Context, trackID uint64) ([]*model.Subject, error)
	ListTopics(ctx context.Context, subjectID uint64) ([]*model.Topic, error)
	GetTopicDetail(ctx context.Context, userID, topicID uint64) (*model.Topic, []*model.Resource, []*model.Problem, *model.UserTopicProgress, error)
	SaveProgress(ctx context.Context, userID uint64, dto *dto.TopicProgressDTO) error
	ListProgress(ctx context.Context, userID uint64) ([]*model.UserTopicProgress, error)
}

type CurriculumServiceImpl struct {
	curriculumRepo repository.CurriculumRepo
}

func NewCurriculumService(curriculumRepo repository.CurriculumRepo) CurriculumService {
	return &CurriculumServiceImpl{curriculumRepo: curriculumRepo}
}

func (s *CurriculumServiceImpl) ListTracks(ctx context.Context) ([]*model.LearningTrack, error) {
	return s.curriculumRepo.ListTracks(ctx)
}

func (s *CurriculumServiceImpl) ListSubjects(ctx context.Context, trackID uint64) ([]*model.Subject, error) {
	return s.curriculumRepo.ListSubjectsByTrack(ctx, trackID)
}

func (s *CurriculumServiceImpl) ListTopics(ctx context.Context, subjectID uint64) ([]*model.Topic, error) {
	return s.curriculumRepo.ListTopicsBySubject(ctx, subjectID)
}

func (s *CurriculumServiceImpl) GetTopicDetail(ctx context.Context, userID, topicID uint64) (*model.Topic, []*model.Resource, []*model.Problem, *model.UserTopicProgress, error) {
	topic, err := s.curriculumRepo.GetTopicById(ctx, topicID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if topic == nil {
		return nil, nil, nil, nil, ErrTopicNotFound
	}

	resources, err := s.curriculumRepo.ListResourcesByTopic(ctx, topicID)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	problems, err := s.curriculumRepo.ListProblemsByTopic(ctx, topicID)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	progress, err := s.curriculumRepo.GetProgress(ctx, userID, topicID)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	return topic, resources, problems, progress, nil
}

func (s *CurriculumServiceImpl) SaveProgress(ctx context.Context, userID uint64, progressDTO *dto.TopicProgressDTO) error {
	topic, err := s.curriculumRepo.GetTopicById(ctx, progressDTO.TopicID)
	if err != nil {
		return err
	}
	if topic == nil {
		return ErrTopicNotFound
	}

	today := util.Today()
	progress := &model.UserTopicProgress{
		UserID:      userID,
		TopicID:     progressDTO.TopicID,
		Status:      progressDTO.Status,
		Mastery:     progressDTO.Mastery,
		LastStudied: &today,
	}
	if progress.Status == "" {
		progress.Status = "learning"
	}
	return s.curriculumRepo.UpsertProgress(ctx, progress)
}

func (s *CurriculumServiceImpl) ListProgress(ctx context.Context, userID uint64) ([]*model.UserTopicProgress, error) {
	return s.curriculumRepo.ListProgressByUser(ctx, userID)
}

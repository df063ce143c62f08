package service

import (
	"DevQuest/internal/api/dto"
	"DevQuest/internal/model"
	"DevQuest/internal/pkg/consts"
	"DevQuest/internal/pkg/llm"
	"DevQuest/internal/pkg/redis"
	"DevQuest/internal/repository"
	"context"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
)

type GoalService interface {
	CreateGoal(ctx context.Context, userID uint64, dto *dto.GoalBaseDTO) (*dto.GoalDTO, error)
	ListGoals(ctx context.Context, userID uint64) ([]*dto.GoalDTO, error)
	StartLearning(ctx context.Context, userID, goalID uint64) (*dto.GoalDTO, error)
	CompleteGoal(ctx context.Context, userID, goalID uint64) error
	SubmitSatisfaction(ctx context.Context, userID, goalID uint64, dto *dto.GoalSatisfactionDTO) error
	ExtractTopics(ctx context.Context, userID, goalID uint64) (*dto.GoalTopicsDTO, error)
	DeleteGoal(ctx context.Context, userID, goalID uint64) error
}

type GoalServiceImpl struct {
	goalRepo repository.GoalRepo
}

func NewGoalService(goalRepo repository.GoalRepo) GoalService {
	return &GoalServiceImpl{goalRepo: goalRepo}
}

func (s *GoalServiceImpl) CreateGoal(ctx context.Context, userID uint64, baseDTO *dto.GoalBaseDTO) (*dto.GoalDTO, error) {
	goal := &model.LearningGoal{
		UserID: userID,
		Title:  baseDTO.Title,
		Status: consts.GoalStatusPlanned,
	}
	if err := s.goalRepo.CreateGoal(ctx, goal); err != nil {
		return nil, err
	}
	return s.toDTO(goal)
}

func (s *GoalServiceImpl) ListGoals(ctx context.Context, userID uint64) ([]*dto.GoalDTO, error) {
	goals, err := s.goalRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	goalDTOs := make([]*dto.GoalDTO, 0, len(goals))
	for _, goal := range goals {
		goalDTO, err := s.toDTO(goal)
		if err != nil {
			return nil, err
		}
		goalDTOs = append(goalDTOs, goalDTO)
	}
	return goalDTOs, nil
}

// StartLearning 目标进入学习态。AI 路线图一个目标只生成一次，
// 已有的直接复用。
func (s *GoalServiceImpl) StartLearning(ctx context.Context, userID, goalID uint64) (*dto.GoalDTO, error) {
	goal, err := s.ownedGoal(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	if goal.AiSolution == "" {
		solution, err := llm.GenerateRoadmap(ctx, goal.Title)
		if err != nil {
			return nil, err
		}
		goal.AiSolution = solution
	}

	goal.Status = consts.GoalStatusLearning
	if err = s.goalRepo.UpdateGoal(ctx, goal); err != nil {
		return nil, err
	}
	return s.toDTO(goal)
}

func (s *GoalServiceImpl) CompleteGoal(ctx context.Context, userID, goalID uint64) error {
	goal, err := s.ownedGoal(ctx, userID, goalID)
	if err != nil {
		return err
	}
	goal.Status = consts.GoalStatusCompleted
	return s.goalRepo.UpdateGoal(ctx, goal)
}

func (s *GoalServiceImpl) SubmitSatisfaction(ctx context.Context, userID, goalID uint64, satDTO *dto.GoalSatisfactionDTO) error {
	goal, err := s.ownedGoal(ctx, userID, goalID)
	if err != nil {
		return err
	}
	goal.IsSatisfied = satDTO.Satisfied
	goal.SatisfactionNote = satDTO.Note
	return s.goalRepo.UpdateGoal(ctx, goal)
}

// ExtractTopics 结果在 redis 缓存一天，标题不变重复提炼没有意义
func (s *GoalServiceImpl) ExtractTopics(ctx context.Context, userID, goalID uint64) (*dto.GoalTopicsDTO, error) {
	goal, err := s.ownedGoal(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	key := consts.GoalRoadmapKey + strconv.FormatUint(goal.ID, 10)
	if value, err := redis.GetValue(ctx, key); err == nil && value != "" {
		var topics []string
		if err = json.Unmarshal([]byte(value), &topics); err == nil {
			return &dto.GoalTopicsDTO{GoalID: goal.ID, Topics: topics}, nil
		}
	}

	topics, err := llm.ExtractTopics(ctx, goal.Title)
	if err != nil {
		return nil, err
	}

	if jsonStr, err := json.Marshal(topics); err == nil {
		_ = redis.SetWithExpiration(ctx, key, string(jsonStr), time.Hour*24)
	}

	return &dto.GoalTopicsDTO{GoalID: goal.ID, Topics: topics}, nil
}

func (s *GoalServiceImpl) DeleteGoal(ctx context.Context, userID, goalID uint64) error {
	goal, err := s.ownedGoal(ctx, userID, goalID)
	if err != nil {
		return err
	}
	return s.goalRepo.DeleteGoal(ctx, goal.ID)
}

func (s *GoalServiceImpl) ownedGoal(ctx context.Context, userID, goalID uint64) (*model.LearningGoal, error) {
	goal, err := s.goalRepo.GetGoalById(ctx, goalID)
	if err != nil {
		return nil, err
	}
	if goal == nil || goal.UserID != userID {
		return nil, ErrGoalNotFound
	}
	return goal, nil
}

func (s *GoalServiceImpl) toDTO(goal *model.LearningGoal) (*dto.GoalDTO, error) {
	goalDTO := &dto.GoalDTO{}
	if err := copier.Copy(goalDTO, goal); err != nil {
		return nil, err
	}
	return goalDTO, nil
}

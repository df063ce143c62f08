package service

import (
	"DevQuest/internal/api/dto"
	"DevQuest/internal/model"
	"DevQuest/internal/pkg/consts"
	"DevQuest/internal/pkg/docparse"
	"DevQuest/internal/pkg/llm"
	"DevQuest/internal/pkg/mongo"
	"DevQuest/internal/repository"
	"context"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
)

type TaskService interface {
	CreateTask(ctx context.Context, userID uint64, dto *dto.TaskBaseDTO) (*dto.TaskDTO, error)
	ListTasks(ctx context.Context, userID uint64) ([]*dto.TaskDTO, error)
	UpdateTask(ctx context.Context, userID, taskID uint64, dto *dto.TaskBaseDTO) error
	ToggleComplete(ctx context.Context, userID, taskID uint64) (*dto.TaskDTO, error)
	DeleteTask(ctx context.Context, userID, taskID uint64) error

	AskHelp(ctx context.Context, userID, taskID uint64, question string) (*dto.TaskMessageDTO, error)
	GetHelpHistory(ctx context.Context, userID, taskID uint64) ([]*dto.TaskMessageDTO, error)
}

type TaskServiceImpl struct {
	taskRepo     repository.TaskRepo
	messageRepo  mongo.TaskMessageRepo
	studyService StudyService
}

func NewTaskService(taskRepo repository.TaskRepo, messageRepo mongo.TaskMessageRepo, studyService StudyService) TaskService {
	return &TaskServiceImpl{
		taskRepo:     taskRepo,
		messageRepo:  messageRepo,
		studyService: studyService,
	}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, userID uint64, baseDTO *dto.TaskBaseDTO) (*dto.TaskDTO, error) {
	task := &model.Task{
		UserID:         userID,
		Title:          baseDTO.Title,
		SubjectID:      baseDTO.SubjectID,
		CustomSubject:  baseDTO.CustomSubject,
		TaskType:       baseDTO.TaskType,
		EstimatedHours: baseDTO.EstimatedHours,
	}
	if task.TaskType == "" {
		task.TaskType = model.TaskTypeStudy
	}

	if baseDTO.Deadline != nil {
		deadline, err := time.ParseInLocation("2006-01-02", *baseDTO.Deadline, time.Local)
		if err != nil {
			return nil, ErrParamInvalid
		}
		task.Deadline = &deadline
	}

	if baseDTO.MaterialText != "" {
		task.Difficulty = docparse.EstimateDifficulty(baseDTO.MaterialText)
	}

	if err := s.taskRepo.CreateTask(ctx, task); err != nil {
		return nil, err
	}
	return s.toDTO(task)
}

func (s *TaskServiceImpl) ListTasks(ctx context.Context, userID uint64) ([]*dto.TaskDTO, error) {
	tasks, err := s.taskRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	taskDTOs := make([]*dto.TaskDTO, 0, len(tasks))
	for _, task := range tasks {
		taskDTO, err := s.toDTO(task)
		if err != nil {
			return nil, err
		}
		taskDTOs = append(taskDTOs, taskDTO)
	}
	return taskDTOs, nil
}

func (s *TaskServiceImpl) UpdateTask(ctx context.Context, userID, taskID uint64, baseDTO *dto.TaskBaseDTO) error {
	task, err := s.ownedTask(ctx, userID, taskID)
	if err != nil {
		return err
	}

	task.Title = baseDTO.Title
	task.SubjectID = baseDTO.SubjectID
	task.CustomSubject = baseDTO.CustomSubject
	if baseDTO.TaskType != "" {
		task.TaskType = baseDTO.TaskType
	}
	task.EstimatedHours = baseDTO.EstimatedHours

	task.Deadline = nil
	if baseDTO.Deadline != nil {
		deadline, err := time.ParseInLocation("2006-01-02", *baseDTO.Deadline, time.Local)
		if err != nil {
			return ErrParamInvalid
		}
		task.Deadline = &deadline
	}

	if baseDTO.MaterialText != "" {
		task.Difficulty = docparse.EstimateDifficulty(baseDTO.MaterialText)
	}

	return s.taskRepo.UpdateTask(ctx, task)
}

// ToggleComplete 完成任务算一次当日学习活动，推动连续天数
func (s *TaskServiceImpl) ToggleComplete(ctx context.Context, userID, taskID uint64) (*dto.TaskDTO, error) {
	task, err := s.ownedTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	task.Completed = !task.Completed
	if err = s.taskRepo.UpdateTask(ctx, task); err != nil {
		return nil, err
	}

	if task.Completed {
		if _, err = s.studyService.TouchStreak(ctx, userID); err != nil {
			return nil, err
		}
	}
	return s.toDTO(task)
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, userID, taskID uint64) error {
	task, err := s.ownedTask(ctx, userID, taskID)
	if err != nil {
		return err
	}
	if err = s.taskRepo.DeleteTask(ctx, task.ID); err != nil {
		return err
	}
	return s.messageRepo.DeleteByTask(ctx, task.ID)
}

// AskHelp 把任务上下文和问题发给模型，双方消息都进 mongo 留痕
func (s *TaskServiceImpl) AskHelp(ctx context.Context, userID, taskID uint64, question string) (*dto.TaskMessageDTO, error) {
	task, err := s.ownedTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	taskContext := fmt.Sprintf("Title: %s\nType: %s\nDifficulty: %d/5", task.Title, task.TaskType, task.Difficulty)
	if task.CustomSubject != "" {
		taskContext += "\nSubject: " + task.CustomSubject
	}

	answer, err := llm.TaskHelp(ctx, taskContext, question)
	if err != nil {
		return nil, err
	}

	userMsg := &mongo.TaskMessage{
		TaskID:  task.ID,
		UserID:  userID,
		Sender:  consts.TaskSenderUser,
		Content: question,
	}
	if err = s.messageRepo.SaveMessage(ctx, userMsg); err != nil {
		return nil, err
	}

	aiMsg := &mongo.TaskMessage{
		TaskID:  task.ID,
		UserID:  userID,
		Sender:  consts.TaskSenderAI,
		Content: answer,
	}
	if err = s.messageRepo.SaveMessage(ctx, aiMsg); err != nil {
		return nil, err
	}

	return &dto.TaskMessageDTO{
		Sender:    aiMsg.Sender,
		Content:   aiMsg.Content,
		CreatedAt: aiMsg.CreatedAt,
	}, nil
}

func (s *TaskServiceImpl) GetHelpHistory(ctx context.Context, userID, taskID uint64) ([]*dto.TaskMessageDTO, error) {
	if _, err := s.ownedTask(ctx, userID, taskID); err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.GetByTask(ctx, taskID, 50)
	if err != nil {
		return nil, err
	}

	messageDTOs := make([]*dto.TaskMessageDTO, 0, len(messages))
	for _, msg := range messages {
		messageDTOs = append(messageDTOs, &dto.TaskMessageDTO{
			Sender:    msg.Sender,
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt,
		})
	}
	return messageDTOs, nil
}

func (s *TaskServiceImpl) ownedTask(ctx context.Context, userID, taskID uint64) (*model.Task, error) {
	task, err := s.taskRepo.GetTaskById(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil || task.UserID != userID {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

func (s *TaskServiceImpl) toDTO(task *model.Task) (*dto.TaskDTO, error) {
	taskDTO := &dto.TaskDTO{}
	if err := copier.Copy(taskDTO, task); err != nil {
		return nil, err
	}
	return taskDTO, nil
}

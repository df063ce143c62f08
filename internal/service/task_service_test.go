package service

import (
	"DevQuest/internal/api/dto"
	"DevQuest/internal/model"
	"DevQuest/internal/pkg/mongo"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTaskRepo struct {
	tasks  map[uint64]*model.Task
	nextID uint64
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[uint64]*model.Task)}
}

func (f *fakeTaskRepo) GetTaskById(ctx context.Context, id uint64) (*model.Task, error) {
	return f.tasks[id], nil
}

func (f *fakeTaskRepo) ListByUser(ctx context.Context, userID uint64) ([]*model.Task, error) {
	out := make([]*model.Task, 0)
	for _, task := range f.tasks {
		if task.UserID == userID {
			out = append(out, task)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) CountByUser(ctx context.Context, userID uint64) (int64, int64, error) {
	var total, completed int64
	for _, task := range f.tasks {
		if task.UserID == userID {
			total++
			if task.Completed {
				completed++
			}
		}
	}
	return total, completed, nil
}

func (f *fakeTaskRepo) CreateTask(ctx context.Context, task *model.Task) error {
	f.nextID++
	task.ID = f.nextID
	f.tasks[task.ID] = task
	return nil
}

func (f *fakeTaskRepo) UpdateTask(ctx context.Context, task *model.Task) error {
	f.tasks[task.ID] = task
	return nil
}

func (f *fakeTaskRepo) DeleteTask(ctx context.Context, id uint64) error {
	delete(f.tasks, id)
	return nil
}

type fakeMessageRepo struct {
	messages map[uint64][]*mongo.TaskMessage
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{messages: make(map[uint64][]*mongo.TaskMessage)}
}

func (f *fakeMessageRepo) SaveMessage(ctx context.Context, msg *mongo.TaskMessage) error {
	f.messages[msg.TaskID] = append(f.messages[msg.TaskID], msg)
	return nil
}

func (f *fakeMessageRepo) GetByTask(ctx context.Context, taskID uint64, limit int) ([]*mongo.TaskMessage, error) {
	return f.messages[taskID], nil
}

func (f *fakeMessageRepo) DeleteByTask(ctx context.Context, taskID uint64) error {
	delete(f.messages, taskID)
	return nil
}

type taskFixture struct {
	taskRepo  *fakeTaskRepo
	msgRepo   *fakeMessageRepo
	studyRepo *fakeStudyRepo
	svc       TaskService
}

func newTaskFixture() *taskFixture {
	f := &taskFixture{
		taskRepo:  newFakeTaskRepo(),
		msgRepo:   newFakeMessageRepo(),
		studyRepo: newFakeStudyRepo(),
	}
	f.svc = NewTaskService(f.taskRepo, f.msgRepo, NewStudyService(f.studyRepo, NoopLocker{}))
	return f
}

func TestCreateTaskDefaultsAndDifficulty(t *testing.T) {
	fx := newTaskFixture()

	taskDTO, err := fx.svc.CreateTask(context.Background(), 1, &dto.TaskBaseDTO{
		Title:        "背包问题专题",
		MaterialText: "dynamic programming algorithm with complexity proof",
	})
	require.NoError(t, err)

	assert.Equal(t, model.TaskTypeStudy, taskDTO.TaskType)
	assert.GreaterOrEqual(t, taskDTO.Difficulty, 2, "关键词命中应抬高难度档")
	assert.False(t, taskDTO.Completed)
}

func TestCreateTaskRejectsBadDeadline(t *testing.T) {
	fx := newTaskFixture()

	bad := "03/01/2025"
	_, err := fx.svc.CreateTask(context.Background(), 1, &dto.TaskBaseDTO{
		Title:    "提交实验报告",
		Deadline: &bad,
	})
	assert.ErrorIs(t, err, ErrParamInvalid)
	assert.Empty(t, fx.taskRepo.tasks)
}

func TestToggleCompleteTouchesStreakOnlyOnCompletion(t *testing.T) {
	fx := newTaskFixture()
	taskDTO, err := fx.svc.CreateTask(context.Background(), 1, &dto.TaskBaseDTO{Title: "刷题"})
	require.NoError(t, err)

	toggled, err := fx.svc.ToggleComplete(context.Background(), 1, taskDTO.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)
	require.NotNil(t, fx.studyRepo.streaks[1])
	assert.Equal(t, 1, fx.studyRepo.streaks[1].CurrentStreak)

	// 取消完成不应再次推动连续天数
	toggled, err = fx.svc.ToggleComplete(context.Background(), 1, taskDTO.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Completed)
	assert.Equal(t, 1, fx.studyRepo.streaks[1].CurrentStreak)
}

func TestTaskOwnershipEnforced(t *testing.T) {
	fx := newTaskFixture()
	taskDTO, err := fx.svc.CreateTask(context.Background(), 1, &dto.TaskBaseDTO{Title: "复习线代"})
	require.NoError(t, err)

	_, err = fx.svc.ToggleComplete(context.Background(), 2, taskDTO.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)

	err = fx.svc.DeleteTask(context.Background(), 2, taskDTO.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)

	err = fx.svc.UpdateTask(context.Background(), 2, taskDTO.ID, &dto.TaskBaseDTO{Title: "改标题"})
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestDeleteTaskClearsHelpHistory(t *testing.T) {
	fx := newTaskFixture()
	taskDTO, err := fx.svc.CreateTask(context.Background(), 1, &dto.TaskBaseDTO{Title: "课程设计"})
	require.NoError(t, err)

	_ = fx.msgRepo.SaveMessage(context.Background(), &mongo.TaskMessage{
		TaskID: taskDTO.ID, UserID: 1, Sender: "user", Content: "怎么拆分模块？",
	})

	err = fx.svc.DeleteTask(context.Background(), 1, taskDTO.ID)
	require.NoError(t, err)

	assert.Empty(t, fx.taskRepo.tasks)
	assert.Empty(t, fx.msgRepo.messages[taskDTO.ID])
}

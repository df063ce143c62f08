package handler

import (
	"DevQuest/internal/api/dto"
	"DevQuest/internal/api/middleware"
	"DevQuest/internal/pkg/docparse"
	"DevQuest/internal/pkg/response"
	"DevQuest/internal/pkg/util"
	"DevQuest/internal/service"
	"errors"
	"io"
	log "log/slog"
	"strconv"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	taskSvc service.TaskService
}

func NewTaskHandler(taskSvc service.TaskService) *TaskHandler {
	return &TaskHandler{taskSvc: taskSvc}
}

func (s *TaskHandler) Create(c *gin.Context) {
	var baseDTO dto.TaskBaseDTO
	if err := c.ShouldBind(&baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	taskDTO, err := s.taskSvc.CreateTask(c.Request.Context(), middleware.GetUserID(c), &baseDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, taskDTO)
}

// CreateFromFile 上传学习材料创建任务，正文用于难度估算
func (s *TaskHandler) CreateFromFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	title := c.PostForm("title")
	if title == "" {
		title = file.Filename
	}

	reader, err := file.Open()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer func() { _ = reader.Close() }()

	data, err := io.ReadAll(reader)
	if err != nil {
		response.Error(c, service.UnExpectedError)
		return
	}

	text, err := docparse.ExtractText(file.Filename, data)
	if err != nil {
		if errors.Is(err, docparse.ErrUnsupportedFormat) {
			response.Error(c, service.ErrParamInvalid)
			return
		}
		log.WarnContext(c.Request.Context(), "材料解析失败", "filename", file.Filename, "err", err)
		text = ""
	}

	baseDTO := dto.TaskBaseDTO{
		Title:        title,
		TaskType:     c.PostForm("task_type"),
		MaterialText: text,
	}
	if err := util.ValidateDTO(&baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	taskDTO, err := s.taskSvc.CreateTask(c.Request.Context(), middleware.GetUserID(c), &baseDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, taskDTO)
}

func (s *TaskHandler) List(c *gin.Context) {
	tasks, err := s.taskSvc.ListTasks(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, tasks)
}

func (s *TaskHandler) Update(c *gin.Context) {
	taskID, err := strconv.ParseUint(c.Param("task_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var baseDTO dto.TaskBaseDTO
	if err := c.ShouldBind(&baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.taskSvc.UpdateTask(c.Request.Context(), middleware.GetUserID(c), taskID, &baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *TaskHandler) ToggleComplete(c *gin.Context) {
	taskID, err := strconv.ParseUint(c.Param("task_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	taskDTO, err := s.taskSvc.ToggleComplete(c.Request.Context(), middleware.GetUserID(c), taskID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, taskDTO)
}

func (s *TaskHandler) Delete(c *gin.Context) {
	taskID, err := strconv.ParseUint(c.Param("task_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := s.taskSvc.DeleteTask(c.Request.Context(), middleware.GetUserID(c), taskID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *TaskHandler) AskHelp(c *gin.Context) {
	taskID, err := strconv.ParseUint(c.Param("task_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var helpDTO dto.TaskHelpDTO
	if err := c.ShouldBind(&helpDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&helpDTO); err != nil {
		response.Error(c, err)
		return
	}
	reply, err := s.taskSvc.AskHelp(c.Request.Context(), middleware.GetUserID(c), taskID, helpDTO.Question)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, reply)
}

func (s *TaskHandler) HelpHistory(c *gin.Context) {
	taskID, err := strconv.ParseUint(c.Param("task_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	messages, err := s.taskSvc.GetHelpHistory(c.Request.Context(), middleware.GetUserID(c), taskID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, messages)
}

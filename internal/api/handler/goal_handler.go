package handler

import (
	"DevQuest/internal/api/dto"
	"DevQuest/internal/api/middleware"
	"DevQuest/internal/pkg/response"
	"DevQuest/internal/pkg/util"
	"DevQuest/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type GoalHandler struct {
	goalSvc service.GoalService
}

func NewGoalHandler(goalSvc service.GoalService) *GoalHandler {
	return &GoalHandler{goalSvc: goalSvc}
}

func (s *GoalHandler) Create(c *gin.Context) {
	var baseDTO dto.GoalBaseDTO
	if err := c.ShouldBind(&baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	goalDTO, err := s.goalSvc.CreateGoal(c.Request.Context(), middleware.GetUserID(c), &baseDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, goalDTO)
}

func (s *GoalHandler) List(c *gin.Context) {
	goals, err := s.goalSvc.ListGoals(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, goals)
}

// StartLearning 首次调用生成 AI 路线图并进入 learning 状态
func (s *GoalHandler) StartLearning(c *gin.Context) {
	goalID, err := strconv.ParseUint(c.Param("goal_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	goalDTO, err := s.goalSvc.StartLearning(c.Request.Context(), middleware.GetUserID(c), goalID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, goalDTO)
}

func (s *GoalHandler) Complete(c *gin.Context) {
	goalID, err := strconv.ParseUint(c.Param("goal_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := s.goalSvc.CompleteGoal(c.Request.Context(), middleware.GetUserID(c), goalID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *GoalHandler) Satisfaction(c *gin.Context) {
	goalID, err := strconv.ParseUint(c.Param("goal_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var satisfactionDTO dto.GoalSatisfactionDTO
	if err := c.ShouldBind(&satisfactionDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&satisfactionDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.goalSvc.SubmitSatisfaction(c.Request.Context(), middleware.GetUserID(c), goalID, &satisfactionDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *GoalHandler) Topics(c *gin.Context) {
	goalID, err := strconv.ParseUint(c.Param("goal_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	topicsDTO, err := s.goalSvc.ExtractTopics(c.Request.Context(), middleware.GetUserID(c), goalID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, topicsDTO)
}

func (s *GoalHandler) Delete(c *gin.Context) {
	goalID, err := strconv.ParseUint(c.Param("goal_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := s.goalSvc.DeleteGoal(c.Request.Context(), middleware.GetUserID(c), goalID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

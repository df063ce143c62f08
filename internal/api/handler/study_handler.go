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

type StudyHandler struct {
	studySvc service.StudyService
}

func NewStudyHandler(studySvc service.StudyService) *StudyHandler {
	return &StudyHandler{studySvc: studySvc}
}

func (s *StudyHandler) LogSession(c *gin.Context) {
	var logDTO dto.LogSessionDTO
	if err := c.ShouldBind(&logDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&logDTO); err != nil {
		response.Error(c, err)
		return
	}
	sessionDTO, err := s.studySvc.LogSession(c.Request.Context(), middleware.GetUserID(c), &logDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, sessionDTO)
}

func (s *StudyHandler) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	historyDTO, err := s.studySvc.GetHistory(c.Request.Context(), middleware.GetUserID(c), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, historyDTO)
}

func (s *StudyHandler) Streak(c *gin.Context) {
	streakDTO, err := s.studySvc.GetStreak(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, streakDTO)
}

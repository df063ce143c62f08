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

type CurriculumHandler struct {
	curriculumSvc service.CurriculumService
}

func NewCurriculumHandler(curriculumSvc service.CurriculumService) *CurriculumHandler {
	return &CurriculumHandler{curriculumSvc: curriculumSvc}
}

func (s *CurriculumHandler) Tracks(c *gin.Context) {
	tracks, err := s.curriculumSvc.ListTracks(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, tracks)
}

func (s *CurriculumHandler) Subjects(c *gin.Context) {
	trackID, err := strconv.ParseUint(c.Param("track_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	subjects, err := s.curriculumSvc.ListSubjects(c.Request.Context(), trackID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, subjects)
}

func (s *CurriculumHandler) Topics(c *gin.Context) {
	subjectID, err := strconv.ParseUint(c.Param("subject_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	topics, err := s.curriculumSvc.ListTopics(c.Request.Context(), subjectID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, topics)
}

func (s *CurriculumHandler) TopicDetail(c *gin.Context) {
	topicID, err := strconv.ParseUint(c.Param("topic_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	topic, resources, problems, progress, err := s.curriculumSvc.GetTopicDetail(c.Request.Context(), middleware.GetUserID(c), topicID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{
		"topic":     topic,
		"resources": resources,
		"problems":  problems,
		"progress":  progress,
	})
}

func (s *CurriculumHandler) SaveProgress(c *gin.Context) {
	var progressDTO dto.TopicProgressDTO
	if err := c.ShouldBind(&progressDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&progressDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.curriculumSvc.SaveProgress(c.Request.Context(), middleware.GetUserID(c), &progressDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *CurriculumHandler) MyProgress(c *gin.Context) {
	progress, err := s.curriculumSvc.ListProgress(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, progress)
}

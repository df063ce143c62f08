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

type NoteHandler struct {
	noteSvc service.NoteService
}

func NewNoteHandler(noteSvc service.NoteService) *NoteHandler {
	return &NoteHandler{noteSvc: noteSvc}
}

func (s *NoteHandler) Create(c *gin.Context) {
	var baseDTO dto.NoteBaseDTO
	if err := c.ShouldBind(&baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	noteDTO, err := s.noteSvc.CreateNote(c.Request.Context(), middleware.GetUserID(c), &baseDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, noteDTO)
}

func (s *NoteHandler) ListMine(c *gin.Context) {
	notes, err := s.noteSvc.ListMyNotes(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, notes)
}

func (s *NoteHandler) Update(c *gin.Context) {
	noteID, err := strconv.ParseUint(c.Param("note_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var baseDTO dto.NoteBaseDTO
	if err := c.ShouldBind(&baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.noteSvc.UpdateNote(c.Request.Context(), middleware.GetUserID(c), noteID, &baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *NoteHandler) Delete(c *gin.Context) {
	noteID, err := strconv.ParseUint(c.Param("note_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := s.noteSvc.DeleteNote(c.Request.Context(), middleware.GetUserID(c), noteID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// Library 公共笔记库，带 keyword 时走 ES 检索
func (s *NoteHandler) Library(c *gin.Context) {
	var searchDTO dto.SearchNotesDTO
	if err := c.ShouldBindQuery(&searchDTO); err != nil {
		response.Error(c, err)
		return
	}
	from, size := searchDTO.Normalize()

	userID := middleware.GetUserID(c)
	notes, err := s.noteSvc.SearchLibrary(c.Request.Context(), userID, searchDTO.Keyword, from, size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, notes)
}

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

type PlatformHandler struct {
	syncSvc service.SyncService
}

func NewPlatformHandler(syncSvc service.SyncService) *PlatformHandler {
	return &PlatformHandler{syncSvc: syncSvc}
}

// Connect 绑定平台账号，绑定前先到平台侧校验用户名
func (s *PlatformHandler) Connect(c *gin.Context) {
	var connectDTO dto.ConnectAccountDTO
	if err := c.ShouldBind(&connectDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&connectDTO); err != nil {
		response.Error(c, err)
		return
	}
	accountDTO, err := s.syncSvc.Connect(c.Request.Context(), middleware.GetUserID(c), &connectDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, accountDTO)
}

func (s *PlatformHandler) ListAccounts(c *gin.Context) {
	accounts, err := s.syncSvc.ListAccounts(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, accounts)
}

func (s *PlatformHandler) Sync(c *gin.Context) {
	statsDTO, err := s.syncSvc.SyncPlatform(c.Request.Context(), middleware.GetUserID(c), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, statsDTO)
}

func (s *PlatformHandler) SyncAll(c *gin.Context) {
	statsDTO, err := s.syncSvc.SyncAll(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, statsDTO)
}

func (s *PlatformHandler) Disconnect(c *gin.Context) {
	if err := s.syncSvc.Disconnect(c.Request.Context(), middleware.GetUserID(c), c.Param("slug")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *PlatformHandler) GithubActivity(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	activityDTO, err := s.syncSvc.GetGithubActivity(c.Request.Context(), middleware.GetUserID(c), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, activityDTO)
}

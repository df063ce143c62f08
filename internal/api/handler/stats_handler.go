package handler

import (
	"DevQuest/internal/api/middleware"
	"DevQuest/internal/pkg/response"
	"DevQuest/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsSvc       service.StatsService
	leaderboardSvc service.LeaderboardService
}

func NewStatsHandler(statsSvc service.StatsService, leaderboardSvc service.LeaderboardService) *StatsHandler {
	return &StatsHandler{
		statsSvc:       statsSvc,
		leaderboardSvc: leaderboardSvc,
	}
}

func (s *StatsHandler) Dashboard(c *gin.Context) {
	dashboardDTO, err := s.statsSvc.GetDashboard(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dashboardDTO)
}

func (s *StatsHandler) Profile(c *gin.Context) {
	profileDTO, err := s.statsSvc.GetProfile(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profileDTO)
}

func (s *StatsHandler) Stats(c *gin.Context) {
	statsDTO, err := s.statsSvc.GetStats(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, statsDTO)
}

func (s *StatsHandler) Heatmap(c *gin.Context) {
	days, _ := strconv.Atoi(c.Query("days"))
	cells, err := s.statsSvc.GetHeatmap(c.Request.Context(), middleware.GetUserID(c), days)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, cells)
}

func (s *StatsHandler) Leaderboard(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	entries, err := s.leaderboardSvc.GetTop(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, entries)
}

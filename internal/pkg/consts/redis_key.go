package consts

const (
	TokenDenyKey   = "token:deny:"
	UserStatsKey   = "user:stats:"
	UserHeatmapKey = "user:heatmap:"
	LeaderboardKey = "leaderboard:total_xp"
	GoalRoadmapKey = "goal:roadmap:"
)

const (
	StatsSyncLock = "stats:sync:lock:"
	StreakLock    = "streak:lock:"
)

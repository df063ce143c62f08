package dto

import "time"

// StatsDTO 用户统计汇总
type StatsDTO struct {
	TotalCommits int `json:"total_commits"`
	GithubRepos  int `json:"github_repos"`
	GithubXP     int `json:"github_xp"`

	LeetcodeSolved int `json:"leetcode_solved"`
	LeetcodeEasy   int `json:"leetcode_easy"`
	LeetcodeMedium int `json:"leetcode_medium"`
	LeetcodeHard   int `json:"leetcode_hard"`
	LeetcodeXP     int `json:"leetcode_xp"`

	GfgSolved int `json:"gfg_solved"`
	GfgScore  int `json:"gfg_score"`
	GfgXP     int `json:"gfg_xp"`

	CodeforcesSolved int `json:"codeforces_solved"`
	CodeforcesXP     int `json:"codeforces_xp"`

	HackerrankSolved int `json:"hackerrank_solved"`
	HackerrankXP     int `json:"hackerrank_xp"`

	TotalXP       int `json:"total_xp"`
	TotalProblems int `json:"total_problems"`
	Level         int `json:"level"`

	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`

	LastUpdated time.Time `json:"last_updated"`
}

// HeatmapCellDTO 热力图单日
type HeatmapCellDTO struct {
	Date          time.Time `json:"date"`
	TotalXP       int       `json:"total_xp"`
	ActivityScore int       `json:"activity_score"`
}

// LeaderboardEntryDTO 排行榜条目
type LeaderboardEntryDTO struct {
	Rank     int    `json:"rank"`
	UserID   uint64 `json:"user_id"`
	Username string `json:"username"`
	TotalXP  int    `json:"total_xp"`
	Level    int    `json:"level"`
}

// DashboardDTO 首页汇总
type DashboardDTO struct {
	TotalTasks     int64      `json:"total_tasks"`
	CompletedTasks int64      `json:"completed_tasks"`
	ProgressPct    int        `json:"progress_pct"`
	TodayMinutes   int64      `json:"today_minutes"`
	Streak         *StreakDTO `json:"streak"`
}

// ProfileDTO 个人主页聚合
type ProfileDTO struct {
	User         *UserDTO      `json:"user"`
	Stats        *StatsDTO     `json:"stats"`
	TotalMinutes int64         `json:"total_minutes"`
	Accounts     []*AccountDTO `json:"accounts"`
}

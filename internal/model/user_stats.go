package model

import "time"

// UserStats 用户统计汇总行。total_xp 与 level 永远由各平台小计经
// xp.Total / xp.Level 推导，不允许独立修改。
type UserStats struct {
	ID     uint64 `gorm:"primaryKey"`
	UserID uint64 `gorm:"not null;uniqueIndex:idx_stats_user"`

	TotalCommits int `gorm:"not null;default:0"`
	GithubRepos  int `gorm:"not null;default:0"`
	GithubXP     int `gorm:"not null;default:0"`

	LeetcodeSolved int `gorm:"not null;default:0"`
	LeetcodeEasy   int `gorm:"not null;default:0"`
	LeetcodeMedium int `gorm:"not null;default:0"`
	LeetcodeHard   int `gorm:"not null;default:0"`
	LeetcodeXP     int `gorm:"not null;default:0"`

	GfgSolved int `gorm:"not null;default:0"`
	GfgScore  int `gorm:"not null;default:0"`
	GfgXP     int `gorm:"not null;default:0"`

	CodeforcesSolved int `gorm:"not null;default:0"`
	CodeforcesXP     int `gorm:"not null;default:0"`

	HackerrankSolved int `gorm:"not null;default:0"`
	HackerrankXP     int `gorm:"not null;default:0"`

	TotalXP       int `gorm:"not null;default:0"`
	TotalProblems int `gorm:"not null;default:0"`
	Level         int `gorm:"not null;default:1"`

	CurrentStreak int `gorm:"not null;default:0"`
	LongestStreak int `gorm:"not null;default:0"`

	LastUpdated time.Time `gorm:"autoUpdateTime"`
}

func (UserStats) TableName() string {
	return "user_stats"
}

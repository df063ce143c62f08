package dto

import "time"

// ConnectAccountDTO 绑定平台账号
type ConnectAccountDTO struct {
	Slug        string  `json:"slug" binding:"required" validate:"oneof=github leetcode gfg codeforces hackerrank"`
	Username    string  `json:"username" binding:"required" validate:"min=1,max=150"`
	AccessToken *string `json:"access_token"`
}

// AccountDTO 平台账号绑定
type AccountDTO struct {
	ID         uint64     `json:"id"`
	Slug       string     `json:"slug"`
	Platform   string     `json:"platform"`
	Username   string     `json:"username"`
	LastSynced *time.Time `json:"last_synced,omitempty"`
}

// ActivityRowDTO 台账行
type ActivityRowDTO struct {
	Date    time.Time `json:"date"`
	Commits int       `json:"commits"`
	XP      int       `json:"xp"`
}

// GithubActivityDTO GitHub 活动列表及累计
type GithubActivityDTO struct {
	Account      *AccountDTO       `json:"account"`
	Rows         []*ActivityRowDTO `json:"rows"`
	TotalCommits int               `json:"total_commits"`
	TotalXP      int               `json:"total_xp"`
}

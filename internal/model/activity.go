package model

import "time"

// DailyActivity 账号级每日活动台账，(account, date) 唯一，同步时整行覆盖
type DailyActivity struct {
	ID        uint64    `gorm:"primaryKey"`
	AccountID uint64    `gorm:"not null;uniqueIndex:idx_account_date"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_account_date"`
	Commits   int       `gorm:"not null;default:0"`
	XP        int       `gorm:"not null;default:0"`
	CreatedAt time.Time
}

func (DailyActivity) TableName() string {
	return "daily_activities"
}

// UserHeatmap 用户级每日热力图，由台账聚合重建，不允许手工修改
type UserHeatmap struct {
	ID            uint64    `gorm:"primaryKey"`
	UserID        uint64    `gorm:"not null;uniqueIndex:idx_user_date"`
	Date          time.Time `gorm:"type:date;not null;uniqueIndex:idx_user_date"`
	TotalXP       int       `gorm:"not null;default:0"`
	ActivityScore int       `gorm:"not null;default:0"`
	UpdatedAt     time.Time
}

func (UserHeatmap) TableName() string {
	return "user_heatmaps"
}
